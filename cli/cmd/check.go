package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/clasp/args"
	"github.com/ardnew/clasp/log"
)

// Check compiles a schema and lists its flags in declaration order.
type Check struct {
	Schema string `help:"Schema text, e.g. 'l,p#,d*'." required:"" short:"s"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	sch, err := args.Compile(c.Schema)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "schema valid",
		slog.String("schema", c.Schema),
		slog.Int("flags", sch.Len()),
	)

	var sb strings.Builder

	for flag, kind := range sch.All() {
		fmt.Fprintf(&sb, "-%c\t%s\n", flag, kind)
	}

	_, err = fmt.Fprint(stdout(ctx), sb.String())
	if err != nil {
		return ErrRender.Wrap(err)
	}

	return nil
}

// Usage prints the one-line usage synopsis of a schema.
type Usage struct {
	Schema string `help:"Schema text, e.g. 'l,p#,d*'." short:"s"`
}

// Run executes the usage command.
func (u *Usage) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(stdout(ctx), args.Usage(u.Schema))
	if err != nil {
		return ErrRender.Wrap(err)
	}

	return nil
}

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/ardnew/clasp/args"
	"github.com/ardnew/clasp/log"
)

// Bench parses the same tokens repeatedly and logs the elapsed time.
// Combined with --pprof-mode it is a profiling target for the parse engine.
type Bench struct {
	Schema     string   `help:"Schema text, e.g. 'l,p#,d*'."            required:"" short:"s"`
	Iterations int      `default:"10000" help:"Number of parses to run." short:"n"`
	NoCache    bool     `help:"Compile the schema on every parse."`
	Tokens     []string `arg:""          help:"Tokens to parse, usually given after '--'." optional:""`
}

// Run executes the bench command.
func (b *Bench) Run(ctx context.Context) error {
	opts := []args.Option{args.WithCache(!b.NoCache)}

	start := time.Now()

	for range max(b.Iterations, 0) {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := args.ParseContext(ctx, b.Schema, b.Tokens, opts...)
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(start)

	perOp := time.Duration(0)
	if b.Iterations > 0 {
		perOp = elapsed / time.Duration(b.Iterations)
	}

	log.InfoContext(ctx, "bench complete",
		slog.Int("iterations", b.Iterations),
		slog.Bool("cache", !b.NoCache),
		slog.Duration("elapsed", elapsed),
		slog.Duration("per_op", perOp),
	)

	return nil
}

package cmd

import (
	"context"
	"log/slog"
	"slices"

	"github.com/ardnew/clasp/args"
	"github.com/ardnew/clasp/log"
)

// Parse parses tokens against a schema and renders the result.
type Parse struct {
	Schema     string   `help:"Schema text, e.g. 'l,p#,d*'."                                  required:"" short:"s"`
	Format     string   `default:"json" enum:"json,yaml,text" help:"Output format (${enum})." short:"f"`
	Indent     int      `default:"2"                          help:"Indent width for json and yaml output."           short:"i"`
	Query      string   `help:"Expression evaluated against the parsed values instead of rendering them."              short:"q"`
	Collect    bool     `help:"Report every unexpected flag instead of only the first."`
	TokensFile string   `help:"Read newline-separated tokens from file or '-' for stdin, before any given tokens." name:"tokens-file" placeholder:"FILE" short:"t"`
	Tokens     []string `arg:""         help:"Tokens to parse, usually given after '--'." optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tokens, err := p.tokens(ctx)
	if err != nil {
		return err
	}

	a, err := args.ParseContext(ctx, p.Schema, tokens,
		args.WithLogger(log.Default()),
		args.WithCollectUnexpected(p.Collect),
	)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "parsed tokens",
		slog.String("schema", p.Schema),
		slog.Int("tokens", len(tokens)),
		slog.Int("cardinality", a.Cardinality()),
	)

	if p.Query != "" {
		return query(stdout(ctx), a, p.Query)
	}

	return render(ctx, stdout(ctx), a, p.Format, p.Indent)
}

// tokens returns the tokens read from TokensFile followed by Tokens.
func (p *Parse) tokens(ctx context.Context) ([]string, error) {
	if p.TokensFile == "" {
		return p.Tokens, nil
	}

	tokens, err := readTokensFile(ctx, p.TokensFile)
	if err != nil {
		return nil, err
	}

	return slices.Concat(tokens, p.Tokens), nil
}

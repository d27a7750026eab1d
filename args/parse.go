package args

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/clasp/log"
)

// flagMarker introduces a flag cluster token.
const flagMarker = "-"

// Option configures a parse.
type Option func(*parser)

// WithLogger sets the structured logger for trace-level diagnostics.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// WithCollectUnexpected controls how undeclared flags are reported.
//
// By default the first undeclared flag aborts the parse with a single
// [ErrUnexpectedArgument]. When collect is true, scanning continues past
// undeclared flags and, if any were seen, the parse fails with an [Errors]
// holding one [ErrUnexpectedArgument] per distinct flag, ordered by flag.
// Missing and invalid parameters still abort immediately.
func WithCollectUnexpected(collect bool) Option {
	return func(p *parser) {
		p.collect = collect
	}
}

// WithCache controls whether the compiled schema is looked up in, and stored
// into, the process-wide schema cache. The cache is enabled by default.
func WithCache(enable bool) Option {
	return func(p *parser) {
		p.cache = enable
	}
}

// parser holds the configuration of one parse.
type parser struct {
	logger  log.Logger
	collect bool
	cache   bool
}

// applyDefaults sets default option values on a parser.
func applyDefaults(p *parser) {
	p.cache = true
}

// applyOptions applies functional options to a parser.
func applyOptions(p *parser, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
}

// Parse compiles schema and parses tokens against it.
//
// Tokens beginning with "-" are flag clusters: every following character is
// a flag, processed left to right. A flag declared with a value-bearing kind
// consumes the next unread token. Tokens that are neither clusters nor
// consumed as parameters are ignored.
//
// Parse either returns a fully populated [Args] or an error describing the
// first failure. The error is an *[Error], or [Errors] when collecting
// unexpected arguments.
func Parse(schema string, tokens []string, opts ...Option) (*Args, error) {
	return ParseContext(context.Background(), schema, tokens, opts...)
}

// ParseContext is like [Parse] and passes ctx to the logger.
// Parsing never blocks, so ctx is not checked for cancellation.
func ParseContext(
	ctx context.Context,
	schema string,
	tokens []string,
	opts ...Option,
) (*Args, error) {
	var p parser

	applyDefaults(&p)
	applyOptions(&p, opts...)

	sch, err := p.compile(ctx, schema)
	if err != nil {
		p.logger.TraceContext(ctx, "parse failed",
			slog.String("state", "compiling"),
			slog.Any("error", err),
		)

		return nil, err
	}

	a := newArgs(sch)

	err = p.scan(ctx, a, newStream(tokens...))
	if err != nil {
		p.logger.TraceContext(ctx, "parse failed",
			slog.String("state", "scanning"),
			slog.Any("error", err),
		)

		return nil, err
	}

	p.logger.TraceContext(ctx, "parse succeeded",
		slog.Int("tokens", len(tokens)),
		slog.Int("cardinality", a.Cardinality()),
	)

	return a, nil
}

// compile compiles schema, through the cache if enabled.
func (p *parser) compile(ctx context.Context, schema string) (*Schema, error) {
	var (
		sch *Schema
		hit bool
		err error
	)

	if p.cache {
		sch, hit, err = compileCached(schema)
	} else {
		sch, err = compile(schema)
	}

	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "schema compiled",
		slog.String("schema", schema),
		slog.Int("flags", sch.Len()),
		slog.Bool("cache_hit", hit),
	)

	return sch, nil
}

// scan walks the token stream once, dispatching every flag in every cluster
// to its slot. Slots share s, so value-bearing flags pull their parameters
// from the same cursor.
func (p *parser) scan(ctx context.Context, a *Args, s *stream) error {
	var unexpected []rune

	for s.More() {
		tok, _ := s.Next()

		cluster, ok := strings.CutPrefix(tok, flagMarker)
		if !ok {
			continue
		}

		p.logger.TraceContext(ctx, "scan cluster",
			slog.String("token", tok),
			slog.Int("position", s.Pos()-1),
		)

		for _, flag := range cluster {
			slot, declared := a.values[flag]
			if !declared {
				if !p.collect {
					return ErrUnexpectedArgument.forFlag(flag)
				}

				if !slices.Contains(unexpected, flag) {
					unexpected = append(unexpected, flag)
				}

				continue
			}

			if cerr := slot.consume(s); cerr != nil {
				return cerr.forFlag(flag)
			}

			a.found[flag] = struct{}{}

			p.logger.TraceContext(ctx, "flag consumed",
				slog.String("flag", string(flag)),
				slog.String("kind", slot.Kind().String()),
				slog.Any("value", slot),
				slog.Int("position", s.Pos()),
			)
		}
	}

	if len(unexpected) > 0 {
		slices.Sort(unexpected)

		errs := make(Errors, len(unexpected))
		for i, flag := range unexpected {
			errs[i] = ErrUnexpectedArgument.forFlag(flag)
		}

		return errs
	}

	return nil
}

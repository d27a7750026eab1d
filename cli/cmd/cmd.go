package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/klauspost/readahead"

	"github.com/ardnew/clasp/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the standard output of the kong context stored in ctx, or
// os.Stdout if there is none.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readTokensFile reads newline-separated tokens from the file at path, or
// from stdin if path is "-".
func readTokensFile(ctx context.Context, path string) ([]string, error) {
	var r io.Reader = os.Stdin

	if path != stdinSource {
		file, err := os.Open(path)
		if err != nil {
			return nil, ErrReadTokens.
				With(slog.String("file", path)).
				Wrap(err)
		}
		defer file.Close()

		r = file
	}

	tokens, err := readTokens(ctx, r)
	if err != nil {
		return nil, ErrReadTokens.
			With(slog.String("file", path)).
			Wrap(err)
	}

	return tokens, nil
}

// readTokens returns every line of r as one token. A trailing carriage
// return is removed from each line; blank lines are kept as empty tokens.
func readTokens(ctx context.Context, r io.Reader) ([]string, error) {
	// Wrap reader with async read-ahead so the next chunk is fetched while
	// the current one is split.
	ra := readahead.NewReader(r)
	defer ra.Close()

	var tokens []string

	scanner := bufio.NewScanner(ra)
	for scanner.Scan() {
		tokens = append(tokens, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	err := scanner.Err()
	if err != nil {
		return nil, err
	}

	log.TraceContext(ctx, "read tokens",
		slog.Int("count", len(tokens)),
		slog.Bool("read_ahead", true),
	)

	return tokens, nil
}

package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

// newContext returns a context holding a kong context for cli whose standard
// output is out.
func newContext(
	t *testing.T,
	cli any,
	out io.Writer,
	vars kong.Vars,
	args ...string,
) context.Context {
	t.Helper()

	parser, err := kong.New(cli,
		kong.Writers(out, out),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		vars,
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

func TestKongContextFrom(t *testing.T) {
	if ktx := kongContextFrom(context.Background()); ktx != nil {
		t.Errorf("kongContextFrom(empty) = %v, want nil", ktx)
	}

	var buf bytes.Buffer

	ctx := newContext(t, &struct{}{}, &buf, kong.Vars{})
	if kongContextFrom(ctx) == nil {
		t.Fatal("kongContextFrom() = nil, want kong context")
	}

	if w := stdout(ctx); w != &buf {
		t.Errorf("stdout() = %v, want kong writer", w)
	}

	if w := stdout(context.Background()); w != os.Stdout {
		t.Errorf("stdout() = %v, want os.Stdout", w)
	}
}

func TestReadTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "-l", []string{"-l"}},
		{"trailing newline", "-p\n8080\n", []string{"-p", "8080"}},
		{"crlf", "-d\r\n/tmp\r\n", []string{"-d", "/tmp"}},
		{"blank line kept", "-d\n\n-l\n", []string{"-d", "", "-l"}},
		{"spaces kept", "-d\n/my docs\n", []string{"-d", "/my docs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readTokens(context.Background(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readTokens() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readTokens() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadTokensFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens")
	if err := os.WriteFile(path, []byte("-p\n42\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := readTokensFile(context.Background(), path)
	if err != nil {
		t.Fatalf("readTokensFile() error = %v", err)
	}

	if diff := cmp.Diff([]string{"-p", "42"}, got); diff != "" {
		t.Errorf("readTokensFile() mismatch (-want +got):\n%s", diff)
	}

	_, err = readTokensFile(context.Background(), path+".missing")
	if !errors.Is(err, ErrReadTokens) {
		t.Errorf("readTokensFile(missing) error = %v, want ErrReadTokens", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readTokensFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := ErrRender.With().Wrap(cause)

	if got, want := err.Error(), "render result: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrRender) {
		t.Error("errors.Is(err, ErrRender) = false")
	}

	if errors.Is(err, ErrQuery) {
		t.Error("errors.Is(err, ErrQuery) = true")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}

	if got := NewError("").Wrap(cause).Error(); got != "boom" {
		t.Errorf("Error() = %q, want %q", got, "boom")
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/clasp/args"
)

// Output formats accepted by [render].
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// render writes a to w in the given format.
func render(
	ctx context.Context,
	w io.Writer,
	a *args.Args,
	format string,
	indent int,
) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(a, "", strings.Repeat(" ", indent))
		data = append(data, '\n')

	case formatYAML:
		data, err = yaml.MarshalContext(ctx, yamlView(a), yaml.Indent(indent))

	case formatText:
		data = textView(a)

	default:
		err = fmt.Errorf("unknown format %q", format)
	}

	if err != nil {
		return ErrRender.
			With(slog.String("format", format)).
			Wrap(err)
	}

	_, err = w.Write(data)
	if err != nil {
		return ErrRender.
			With(slog.String("format", format)).
			Wrap(err)
	}

	return nil
}

// yamlView mirrors the JSON encoding of [args.Args].
func yamlView(a *args.Args) any {
	return struct {
		Values map[string]any `yaml:"values"`
		Found  []string       `yaml:"found"`
	}{
		Values: a.ToMap(),
		Found:  foundNames(a),
	}
}

// textView writes one line per declared flag, in declaration order:
//
//	flag kind value found
func textView(a *args.Args) []byte {
	var sb strings.Builder

	for flag, kind := range a.Schema().All() {
		value, _ := a.Value(flag)

		text := fmt.Sprint(value)
		if s, ok := value.(string); ok {
			text = strconv.Quote(s)
		}

		fmt.Fprintf(&sb, "%c\t%s\t%s\t%t\n", flag, kind, text, a.Has(flag))
	}

	return []byte(sb.String())
}

// foundNames returns the found flags of a as strings, sorted.
func foundNames(a *args.Args) []string {
	found := a.Found()

	names := make([]string, len(found))
	for i, flag := range found {
		names[i] = string(flag)
	}

	return names
}

// queryEnv returns the expression environment for a: every declared flag
// bound to its value, plus has(flag), cardinality, and found.
func queryEnv(a *args.Args) map[string]any {
	env := a.ToMap()

	env["has"] = func(flag string) bool {
		r := []rune(flag)

		return len(r) == 1 && a.Has(r[0])
	}
	env["cardinality"] = a.Cardinality()
	env["found"] = foundNames(a)

	return env
}

// query evaluates the expression source against a and writes the result to w.
func query(w io.Writer, a *args.Args, source string) error {
	env := queryEnv(a)

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return ErrQuery.
			With(slog.String("query", source)).
			Wrap(err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return ErrQuery.
			With(slog.String("query", source)).
			Wrap(err)
	}

	_, err = fmt.Fprintln(w, out)
	if err != nil {
		return ErrRender.Wrap(err)
	}

	return nil
}

package args

import (
	"errors"
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []struct {
		schema string
		tokens string
	}{
		{"", ""},
		{"", "-a"},
		{"i#,a", "ignored -i 124 -a"},
		{"s*", "-s"},
		{"d##", "-d notanumber"},
		{"a,b*,c#,d,e*,f#", "-cab 124 TestString -e TestString -f 124"},
		{"a~", "-a"},
		{"é,ß*", "-éß x"},
	}

	for _, s := range seeds {
		f.Add(s.schema, s.tokens, false)
		f.Add(s.schema, s.tokens, true)
	}

	f.Fuzz(func(t *testing.T, schema, line string, collect bool) {
		tokens := strings.Fields(line)

		a, err := Parse(schema, tokens,
			WithCollectUnexpected(collect), WithCache(false))

		if err != nil {
			if a != nil {
				t.Fatal("partial result returned alongside error")
			}

			var (
				ae   *Error
				errs Errors
			)

			if !errors.As(err, &errs) && !errors.As(err, &ae) {
				t.Fatalf("error %T is neither *Error nor Errors", err)
			}

			return
		}

		if a.Cardinality() != len(a.Found()) {
			t.Fatalf("Cardinality() = %d, Found() = %q",
				a.Cardinality(), a.Found())
		}

		for _, flag := range a.Found() {
			if _, ok := a.Kind(flag); !ok {
				t.Fatalf("found undeclared flag %q", flag)
			}
		}
	})
}

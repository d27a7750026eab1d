package args

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Schema is a compiled schema: the declared kind of every flag.
// A Schema is immutable and safe to share between parses.
type Schema struct {
	source string
	kinds  map[rune]Kind
	order  []rune // first declaration order
}

// Compile compiles schema text into a [Schema].
//
// The schema is a comma-separated list of elements. Whitespace around each
// element is ignored, and empty elements are skipped. Each element is a flag
// letter followed by an optional type suffix (see [ParseKind]). A later
// element for the same flag replaces the kind declared by an earlier one.
//
// Compiled schemas are cached; see [ClearCache].
func Compile(schema string) (*Schema, error) {
	sch, _, err := compileCached(schema)
	if err != nil {
		return nil, err
	}

	return sch, nil
}

// compile compiles schema without consulting the cache.
func compile(schema string) (*Schema, error) {
	sch := &Schema{
		source: schema,
		kinds:  make(map[rune]Kind),
	}

	for element := range strings.SplitSeq(schema, ",") {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}

		flag, size := utf8.DecodeRuneInString(element)
		if !unicode.IsLetter(flag) {
			return nil, ErrInvalidArgumentName.forFlag(flag).
				withParameter(element)
		}

		suffix := element[size:]

		kind, ok := ParseKind(suffix)
		if !ok {
			return nil, ErrInvalidArgumentFormat.forFlag(flag).
				withParameter(suffix)
		}

		if _, seen := sch.kinds[flag]; !seen {
			sch.order = append(sch.order, flag)
		}

		sch.kinds[flag] = kind
	}

	return sch, nil
}

// Lookup returns the kind declared for flag.
func (s *Schema) Lookup(flag rune) (Kind, bool) {
	kind, ok := s.kinds[flag]

	return kind, ok
}

// Flags returns the declared flags in order of first declaration.
func (s *Schema) Flags() []rune {
	return append([]rune(nil), s.order...)
}

// All returns an iterator over declared flags and their kinds, in order of
// first declaration.
func (s *Schema) All() iter.Seq2[rune, Kind] {
	return func(yield func(rune, Kind) bool) {
		for _, flag := range s.order {
			if !yield(flag, s.kinds[flag]) {
				return
			}
		}
	}
}

// Len returns the number of distinct declared flags.
func (s *Schema) Len() int { return len(s.order) }

// String returns the schema source text.
func (s *Schema) String() string { return s.source }

// Usage returns a one-line usage synopsis for schema: "-[" + schema + "]",
// or the empty string if schema is empty.
func Usage(schema string) string {
	if schema == "" {
		return ""
	}

	return "-[" + schema + "]"
}

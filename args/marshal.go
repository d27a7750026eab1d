package args

import (
	"errors"
	"log/slog"
	"regexp"
	"strconv"
)

// Kind is the value type declared for a flag in a schema.
type Kind int

const (
	// KindBoolean flags take no parameter; their presence sets true.
	KindBoolean Kind = iota

	// KindString flags take the next token verbatim.
	KindString

	// KindInteger flags take the next token as a base-10 signed integer.
	KindInteger

	// KindDouble flags take the next token as a floating-point number.
	KindDouble
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Suffix returns the schema type suffix that declares the kind.
func (k Kind) Suffix() string {
	switch k {
	case KindString:
		return "*"
	case KindInteger:
		return "#"
	case KindDouble:
		return "##"
	default:
		return ""
	}
}

// ParseKind maps a schema type suffix to its kind:
//
//	""   → KindBoolean
//	"*"  → KindString
//	"#"  → KindInteger
//	"##" → KindDouble
//
// Any other suffix reports false.
func ParseKind(suffix string) (Kind, bool) {
	switch suffix {
	case "":
		return KindBoolean, true
	case "*":
		return KindString, true
	case "#":
		return KindInteger, true
	case "##":
		return KindDouble, true
	default:
		return 0, false
	}
}

// Value is the typed slot holding the decoded value of one flag.
// Exactly one of the value fields is meaningful, selected by kind.
type Value struct {
	kind    Kind
	boolean bool
	str     string
	integer int
	double  float64
}

// newValue returns a slot of the given kind holding its zero value.
func newValue(kind Kind) *Value {
	return &Value{kind: kind}
}

// Kind returns the declared kind of the slot.
func (v *Value) Kind() Kind { return v.kind }

// Any returns the current value as bool, string, int, or float64.
func (v *Value) Any() any {
	switch v.kind {
	case KindBoolean:
		return v.boolean
	case KindString:
		return v.str
	case KindInteger:
		return v.integer
	case KindDouble:
		return v.double
	default:
		return nil
	}
}

// LogValue implements slog.LogValuer.
func (v *Value) LogValue() slog.Value {
	return slog.AnyValue(v.Any())
}

// consume stores a new value into the slot, reading as many tokens from s as
// the kind requires. The returned *Error does not name a flag; the caller
// attaches it.
func (v *Value) consume(s *stream) *Error {
	switch v.kind {
	case KindBoolean:
		v.boolean = true

		return nil

	case KindString:
		tok, err := s.Next()
		if err != nil {
			return ErrMissingString.Wrap(err)
		}

		v.str = tok

		return nil

	case KindInteger:
		tok, err := s.Next()
		if err != nil {
			return ErrMissingInteger.Wrap(err)
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			return ErrInvalidInteger.withParameter(tok).Wrap(numError(err))
		}

		v.integer = n

		return nil

	case KindDouble:
		tok, err := s.Next()
		if err != nil {
			return ErrMissingDouble.Wrap(err)
		}

		f, err := parseDouble(tok)
		if err != nil {
			return ErrInvalidDouble.withParameter(tok).Wrap(numError(err))
		}

		v.double = f

		return nil

	default:
		panic("args: consume on slot of unknown kind " + v.kind.String())
	}
}

// numError unwraps a *strconv.NumError to its reason (ErrSyntax or
// ErrRange); the rejected literal is already carried by the *Error.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}

// decimalPattern matches an optionally signed decimal literal with optional
// fraction and exponent, "Infinity", or "NaN".
var decimalPattern = regexp.MustCompile(
	`^(?:NaN|[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?))$`,
)

// parseDouble parses tok in decimal notation. Go-only syntax accepted by
// strconv.ParseFloat (digit separators, hex mantissas, "inf") is rejected
// with strconv.ErrSyntax.
func parseDouble(tok string) (float64, error) {
	if !decimalPattern.MatchString(tok) {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(tok, 64)
}

package args

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const (
	errArg   = 'x'
	errParam = "ErrorParameter"
)

func TestError_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"unexpected argument",
			ErrUnexpectedArgument.forFlag(errArg),
			"argument -x unexpected",
		},
		{
			"missing string",
			ErrMissingString.forFlag(errArg),
			"could not find string parameter for -x",
		},
		{
			"invalid integer",
			ErrInvalidInteger.forFlag(errArg).withParameter(errParam),
			`argument -x expects an integer but was "ErrorParameter"`,
		},
		{
			"missing integer",
			ErrMissingInteger.forFlag(errArg),
			"could not find integer parameter for -x",
		},
		{
			"invalid double",
			ErrInvalidDouble.forFlag(errArg).withParameter(errParam),
			`argument -x expects a double but was "ErrorParameter"`,
		},
		{
			"missing double",
			ErrMissingDouble.forFlag(errArg),
			"could not find double parameter for -x",
		},
		{
			"invalid argument name",
			ErrInvalidArgumentName.forFlag(errArg),
			"'x' is not a valid argument name",
		},
		{
			"invalid argument format",
			ErrInvalidArgumentFormat.forFlag(errArg).withParameter(errParam),
			`argument x has invalid format "ErrorParameter"`,
		},
		{
			"unknown code",
			NewError(ErrorCode(0)),
			"unknown argument error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsMatchesCodeOnly(t *testing.T) {
	t.Parallel()

	err := ErrInvalidInteger.forFlag('n').withParameter("abc")

	if !errors.Is(err, ErrInvalidInteger) {
		t.Error("refined error does not match its sentinel")
	}
	if errors.Is(err, ErrInvalidDouble) {
		t.Error("refined error matches a different sentinel")
	}
	if errors.Is(err, errors.New("argument -n expects an integer")) {
		t.Error("refined error matches a foreign error")
	}
}

func TestError_RefinementIsImmutable(t *testing.T) {
	t.Parallel()

	base := ErrMissingString
	refined := base.forFlag('s').With(slog.String("k", "v"))

	if _, ok := base.Flag(); ok {
		t.Error("forFlag modified the sentinel")
	}
	if len(base.attrs) != 0 {
		t.Error("With modified the sentinel")
	}
	if flag, ok := refined.Flag(); !ok || flag != 's' {
		t.Errorf("Flag() = %q, %v; want 's', true", flag, ok)
	}
}

func TestError_NULFlagIsAFlag(t *testing.T) {
	t.Parallel()

	err := ErrUnexpectedArgument.forFlag(0)

	if flag, ok := err.Flag(); !ok || flag != 0 {
		t.Errorf("Flag() = %q, %v; want '\\x00', true", flag, ok)
	}

	errs := Errors{err, ErrUnexpectedArgument.forFlag('z')}
	if got := errs.Flags(); len(got) != 2 || got[0] != 0 || got[1] != 'z' {
		t.Errorf("Flags() = %q, want ['\\x00' 'z']", got)
	}
}

func TestError_WrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := ErrMissingDouble.forFlag('d').Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
	if errors.Unwrap(ErrMissingDouble) != nil {
		t.Error("sentinel gained a cause")
	}
}

func TestError_LogValue(t *testing.T) {
	t.Parallel()

	err := ErrInvalidInteger.forFlag('n').withParameter("abc").
		With(slog.String("extra", "value"))

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"code":      "InvalidInteger",
		"flag":      "n",
		"parameter": "abc",
		"extra":     "value",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("LogValue()[%q] = %q, want %q", k, got[k], v)
		}
	}

	if !strings.Contains(got["error"], "expects an integer") {
		t.Errorf("LogValue() error message = %q", got["error"])
	}
}

func TestErrors_AsFindsMembers(t *testing.T) {
	t.Parallel()

	errs := Errors{
		ErrUnexpectedArgument.forFlag('p'),
		ErrUnexpectedArgument.forFlag('q'),
	}

	var ae *Error
	if !errors.As(error(errs), &ae) {
		t.Fatal("errors.As found no member")
	}
	if flag, _ := ae.Flag(); flag != 'p' {
		t.Errorf("first member flag = %q, want 'p'", flag)
	}

	if len(errs.LogValue().Group()) != 2 {
		t.Error("LogValue() does not group every member")
	}
}

func TestErrorCode_String(t *testing.T) {
	t.Parallel()

	for code := CodeInvalidArgumentName; code <= CodeInvalidDouble; code++ {
		if s := code.String(); s == "Unknown" || s == "" {
			t.Errorf("ErrorCode(%d).String() = %q", code, s)
		}
	}
}

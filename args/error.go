package args

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// ErrorCode identifies the kind of failure carried by an [Error].
type ErrorCode int

const (
	CodeInvalidArgumentName ErrorCode = iota + 1
	CodeInvalidArgumentFormat
	CodeUnexpectedArgument
	CodeMissingString
	CodeMissingInteger
	CodeInvalidInteger
	CodeMissingDouble
	CodeInvalidDouble
)

// String returns the name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidArgumentName:
		return "InvalidArgumentName"
	case CodeInvalidArgumentFormat:
		return "InvalidArgumentFormat"
	case CodeUnexpectedArgument:
		return "UnexpectedArgument"
	case CodeMissingString:
		return "MissingString"
	case CodeMissingInteger:
		return "MissingInteger"
	case CodeInvalidInteger:
		return "InvalidInteger"
	case CodeMissingDouble:
		return "MissingDouble"
	case CodeInvalidDouble:
		return "InvalidDouble"
	default:
		return "Unknown"
	}
}

// Predefined errors (sentinel values).
// Any *Error matches the sentinel with the same code under [errors.Is].
var (
	ErrInvalidArgumentName   = NewError(CodeInvalidArgumentName)
	ErrInvalidArgumentFormat = NewError(CodeInvalidArgumentFormat)
	ErrUnexpectedArgument    = NewError(CodeUnexpectedArgument)
	ErrMissingString         = NewError(CodeMissingString)
	ErrMissingInteger        = NewError(CodeMissingInteger)
	ErrInvalidInteger        = NewError(CodeInvalidInteger)
	ErrMissingDouble         = NewError(CodeMissingDouble)
	ErrInvalidDouble         = NewError(CodeInvalidDouble)
)

// Error is a structured parse failure.
// It implements both error and slog.LogValuer interfaces.
//
// An Error is immutable; the methods that refine it return copies.
type Error struct {
	code    ErrorCode
	flag    rune        // Offending flag, valid if hasFlag
	hasFlag bool        // Set by forFlag; any rune, including 0, is a flag
	param   string      // Offending literal (schema suffix or token)
	err     error       // Wrapped cause (for errors.Unwrap)
	attrs   []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with the given code.
func NewError(code ErrorCode) *Error {
	return &Error{code: code}
}

// Code returns the kind of failure.
func (e *Error) Code() ErrorCode { return e.code }

// Flag returns the offending flag and whether one is set.
func (e *Error) Flag() (rune, bool) { return e.flag, e.hasFlag }

// Parameter returns the offending literal, if any.
// For [CodeInvalidArgumentFormat] it is the schema type suffix; for
// [CodeInvalidInteger] and [CodeInvalidDouble] it is the rejected token.
func (e *Error) Parameter() string { return e.param }

// Error implements the error interface.
func (e *Error) Error() string {
	flag := string(e.flag)

	switch e.code {
	case CodeUnexpectedArgument:
		return "argument -" + flag + " unexpected"
	case CodeMissingString:
		return "could not find string parameter for -" + flag
	case CodeMissingInteger:
		return "could not find integer parameter for -" + flag
	case CodeInvalidInteger:
		return "argument -" + flag + " expects an integer but was " +
			strconv.Quote(e.param)
	case CodeMissingDouble:
		return "could not find double parameter for -" + flag
	case CodeInvalidDouble:
		return "argument -" + flag + " expects a double but was " +
			strconv.Quote(e.param)
	case CodeInvalidArgumentName:
		return strconv.QuoteRune(e.flag) + " is not a valid argument name"
	case CodeInvalidArgumentFormat:
		return "argument " + flag + " has invalid format " +
			strconv.Quote(e.param)
	default:
		return "unknown argument error"
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same code.
// This lets callers test against the sentinel values regardless of the flag
// and parameter carried by e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.code == e.code
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	attrs = append(attrs,
		slog.String("error", e.Error()),
		slog.String("code", e.code.String()),
	)

	if e.hasFlag {
		attrs = append(attrs, slog.String("flag", string(e.flag)))
	}

	if e.param != "" {
		attrs = append(attrs, slog.String("parameter", e.param))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error as its cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return &c
}

// forFlag returns a copy of e naming flag as the offender.
func (e *Error) forFlag(flag rune) *Error {
	c := *e
	c.flag = flag
	c.hasFlag = true

	return &c
}

// withParameter returns a copy of e carrying the offending literal.
func (e *Error) withParameter(param string) *Error {
	c := *e
	c.param = param

	return &c
}

// Errors is a collection of failures reported together.
// It is returned only when collecting unexpected arguments with
// [WithCollectUnexpected].
type Errors []error

// Error joins the messages of all errors with "; ".
func (e Errors) Error() string {
	var sb strings.Builder

	for i, err := range e {
		if i > 0 {
			sb.WriteString("; ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Unwrap returns the errors contained in the receiver.
func (e Errors) Unwrap() []error { return e }

// LogValue implements slog.LogValuer, grouping each member by index.
func (e Errors) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(e))
	for i, err := range e {
		attrs[i] = slog.Any(strconv.Itoa(i), err)
	}

	return slog.GroupValue(attrs...)
}

// Flags returns the offending flags of every *Error in the collection, in
// order.
func (e Errors) Flags() []rune {
	flags := make([]rune, 0, len(e))

	for _, err := range e {
		var ae *Error
		if errors.As(err, &ae) {
			if f, ok := ae.Flag(); ok {
				flags = append(flags, f)
			}
		}
	}

	return flags
}

// Package args parses command-line style token lists against a compact
// textual schema.
//
// # Schema
//
// A schema is a comma-separated list of elements, each a single letter naming
// a flag followed by an optional type suffix:
//
//	a      boolean (no parameter)
//	s*     string
//	n#     integer
//	x##    double
//
// Whitespace around elements is ignored; an empty schema declares no flags.
//
// # Tokens
//
// A token beginning with "-" is a flag cluster. Each character after the
// dash is one flag, processed left to right. A value-bearing flag consumes
// the next unread token, so in
//
//	-cab 124 TestString
//
// with schema "a,b*,c#", c takes 124, a is set, and b takes TestString.
// Tokens that are not clusters and not consumed as parameters are ignored.
//
// # Example
//
//	a, err := args.Parse("l,p#,d*", []string{"-lp", "8080", "-d", "/tmp"})
//	if err != nil {
//		return err
//	}
//	a.GetBoolean('l') // true
//	a.GetInt('p')     // 8080
//	a.GetString('d')  // "/tmp"
//
// # Errors
//
// Every failure is an *[Error] carrying an [ErrorCode], the offending flag,
// and the offending literal where one exists. Test for a kind of failure
// with [errors.Is] against the sentinel values, e.g. [ErrMissingInteger].
// Parsing is fail-fast unless [WithCollectUnexpected] is given.
//
// Queries never fail: a flag that is undeclared, not found, or declared with
// a different kind yields the zero value of the requested type.
package args

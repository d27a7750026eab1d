package args

import "errors"

// errExhausted reports that a stream has no tokens left.
// Marshalers translate it into a type-specific Missing* error, which carries
// it only as the unexported cause.
var errExhausted = errors.New("argument stream exhausted")

// stream is a forward-only cursor over a token list.
//
// The parse engine and the active marshaler share a single stream, so a
// value-bearing flag consumes the token that immediately follows the cluster
// it appeared in, however many flags precede it in that cluster.
type stream struct {
	tokens []string
	pos    int
}

// newStream creates a stream positioned before the first token.
// The slice is not copied and must not be modified while the stream is in
// use.
func newStream(tokens ...string) *stream {
	return &stream{tokens: tokens}
}

// Next returns the next token and advances the cursor.
// It fails with an exhaustion error if no tokens remain.
func (s *stream) Next() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", errExhausted
	}

	tok := s.tokens[s.pos]
	s.pos++

	return tok, nil
}

// More reports whether any tokens remain.
func (s *stream) More() bool { return s.pos < len(s.tokens) }

// Pos returns the number of tokens consumed so far.
func (s *stream) Pos() int { return s.pos }

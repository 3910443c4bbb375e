package lexer

import (
	"errors"
	"fmt"
)

// ErrInvalidString is returned by New when input contains a non-ASCII byte.
var ErrInvalidString = errors.New("lexer: invalid string (non-ASCII)")

// UnknownCharError is returned by Scanner.Next when it encounters a byte
// absent from the table's alphabet. It is reported immediately, even if a
// shorter accepting match is already pending: the alphabet defines what the
// scanner is allowed to see at all.
type UnknownCharError struct {
	Char     byte
	Position int
}

func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("lexer: unknown char %q at position %d", e.Char, e.Position)
}

// UnexpectedEndError is returned by Scanner.Next when no accepting match is
// available starting at Position: either the input ran out, or a
// transition dead-ended, with no candidate match recorded either way. It
// covers both end-of-input-without-match and a mid-stream dead end.
type UnexpectedEndError struct {
	Position int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("lexer: unexpected end at position %d", e.Position)
}

func invalidStringErrorf(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidString, s)
}

package lexer

import (
	"io"

	"github.com/go-mtable/mtable/core"
)

// Scanner pulls one token at a time from input by maximal-munch scanning
// over table, starting each pull where the previous one left off.
//
// A Scanner is not safe for concurrent use by multiple goroutines, since its
// cursor is private, mutable state, but multiple Scanners, even over the
// same table, may run concurrently with each other and with Get, since
// none of them ever call Add.
type Scanner[T any] struct {
	table *core.Table[T]
	input string
	start int
}

// New returns a Scanner over input, driven by table. It rejects non-ASCII
// input immediately; every subsequent error is reported per-pull from
// Next, never here.
func New[T any](table *core.Table[T], input string) (*Scanner[T], error) {
	if !isASCII(input) {
		return nil, invalidStringErrorf(input)
	}
	return &Scanner[T]{table: table, input: input}, nil
}

// Next advances the scanner and returns the next token, or io.EOF once
// input is fully consumed.
//
// On UnknownCharError or UnexpectedEndError, the scanner's cursor does not
// advance past the failing position: the next call to Next will attempt
// the same scan again and, ordinarily, fail the same way. Next does not
// skip-and-resume automatically; a caller that wants to recover must
// advance the underlying input itself (e.g. by constructing a new Scanner
// over input[s.start+1:], adjusting reported positions).
func (s *Scanner[T]) Next() (Token[T], error) {
	if s.start >= len(s.input) {
		return Token[T]{}, io.EOF
	}

	node := s.table.Root()
	p := s.start

	// The longest accepting prefix seen so far, tracked as scalar state
	// rather than a stack: a new accepting position is only ever recorded
	// deeper than the last one, so the most recent candidate is always the
	// longest, and nothing earlier is ever needed once a dead end is hit.
	// This keeps the scan allocation-free on the hot path.
	haveMatch := false
	var matchEnd int
	var matchValue T

	for {
		if p >= len(s.input) {
			return s.emit(haveMatch, matchEnd, matchValue)
		}

		b := s.input[p]
		if !s.table.InAlphabet(b) {
			return Token[T]{}, &UnknownCharError{Char: b, Position: p}
		}

		next, ok := s.table.Transition(node, b)
		if !ok {
			return s.emit(haveMatch, matchEnd, matchValue)
		}

		node = next
		p++
		if v, has := s.table.ValueAt(node); has {
			haveMatch = true
			matchEnd = p - 1
			matchValue = v
		}
	}
}

// emit finalizes the current pull: either the pending candidate match, or
// UnexpectedEndError if none was recorded.
func (s *Scanner[T]) emit(haveMatch bool, matchEnd int, matchValue T) (Token[T], error) {
	if !haveMatch {
		return Token[T]{}, &UnexpectedEndError{Position: s.start}
	}
	text := s.input[s.start : matchEnd+1]
	s.start = matchEnd + 1
	return Token[T]{Value: matchValue, Text: text}, nil
}

// Tokens drives a fresh Scanner over input to exhaustion and collects every
// token into a slice, stopping and returning the first error encountered
// (if any). It performs no scanning of its own beyond what Scanner.Next
// already does.
func Tokens[T any](table *core.Table[T], input string, opts ...ScanOption[T]) ([]Token[T], error) {
	cfg := defaultScanConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := New(table, input)
	if err != nil {
		return nil, err
	}

	var tokens []Token[T]
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		if cfg.onToken != nil {
			if err := cfg.onToken(tok); err != nil {
				return tokens, err
			}
		}
		tokens = append(tokens, tok)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

package lexer_test

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-mtable/mtable/core"
	"github.com/go-mtable/mtable/lexer"
)

type kind int

const (
	number kind = iota
	plus
	space
)

func arithmeticTable(t *testing.T) *core.Table[kind] {
	t.Helper()
	tbl := core.NewTable[kind]("0123456789+ ")
	require.NoError(t, tbl.Add("[0123456789]+", number))
	require.NoError(t, tbl.Add("+", plus))
	require.NoError(t, tbl.Add(" +", space))
	return tbl
}

func drain(t *testing.T, s *lexer.Scanner[kind]) ([]lexer.Token[kind], error) {
	t.Helper()
	var tokens []lexer.Token[kind]
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func TestScannerMaximalMunch(t *testing.T) {
	tbl := arithmeticTable(t)
	s, err := lexer.New(tbl, "12+345")
	require.NoError(t, err)

	tokens, err := drain(t, s)
	require.NoError(t, err)

	want := []lexer.Token[kind]{
		{Value: number, Text: "12"},
		{Value: plus, Text: "+"},
		{Value: number, Text: "345"},
	}
	require.Empty(t, cmp.Diff(want, tokens))
}

func TestScannerConsumesWhitespaceRun(t *testing.T) {
	tbl := arithmeticTable(t)
	s, err := lexer.New(tbl, "1   2")
	require.NoError(t, err)

	tokens, err := drain(t, s)
	require.NoError(t, err)

	want := []lexer.Token[kind]{
		{Value: number, Text: "1"},
		{Value: space, Text: "   "},
		{Value: number, Text: "2"},
	}
	require.Empty(t, cmp.Diff(want, tokens))
}

func TestScannerUnknownChar(t *testing.T) {
	tbl := arithmeticTable(t)
	s, err := lexer.New(tbl, "1*2")
	require.NoError(t, err)

	// '*' is reported at once; the pending "1" is not emitted before it.
	tok, err := s.Next()
	require.Equal(t, lexer.Token[kind]{}, tok)

	var unknown *lexer.UnknownCharError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte('*'), unknown.Char)
	require.Equal(t, 1, unknown.Position)
}

func TestScannerCursorDoesNotAdvanceOnError(t *testing.T) {
	tbl := arithmeticTable(t)
	s, err := lexer.New(tbl, "*")
	require.NoError(t, err)

	_, err1 := s.Next()
	_, err2 := s.Next()
	require.Error(t, err1)
	require.Error(t, err2)
	require.Equal(t, err1, err2)
}

func TestScannerUnexpectedEndOnDeadEndWithNoMatch(t *testing.T) {
	tbl := core.NewTable[kind]("ab")
	require.NoError(t, tbl.Add("ab", number))

	s, err := lexer.New(tbl, "b")
	require.NoError(t, err)

	_, err = s.Next()
	var unexpectedEnd *lexer.UnexpectedEndError
	require.ErrorAs(t, err, &unexpectedEnd)
	require.Equal(t, 0, unexpectedEnd.Position)
}

func TestScannerEmptyInputIsImmediateEOF(t *testing.T) {
	tbl := arithmeticTable(t)
	s, err := lexer.New(tbl, "")
	require.NoError(t, err)

	_, err = s.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestNewRejectsNonASCIIInput(t *testing.T) {
	tbl := arithmeticTable(t)
	_, err := lexer.New(tbl, "\xff")
	require.ErrorIs(t, err, lexer.ErrInvalidString)
}

func TestTokensCollectsWholeInput(t *testing.T) {
	tbl := arithmeticTable(t)
	tokens, err := lexer.Tokens(tbl, "1+2+3")
	require.NoError(t, err)

	want := []lexer.Token[kind]{
		{Value: number, Text: "1"},
		{Value: plus, Text: "+"},
		{Value: number, Text: "2"},
		{Value: plus, Text: "+"},
		{Value: number, Text: "3"},
	}
	require.Empty(t, cmp.Diff(want, tokens))
}

func TestTokensStopsOnFirstError(t *testing.T) {
	tbl := arithmeticTable(t)
	tokens, err := lexer.Tokens(tbl, "1*2")

	var unknown *lexer.UnknownCharError
	require.ErrorAs(t, err, &unknown)
	// The pending "1" is dropped: '*' fails the very first pull.
	require.Nil(t, tokens)
}

func TestTokensWithOnTokenHook(t *testing.T) {
	tbl := arithmeticTable(t)
	var seen []string
	tokens, err := lexer.Tokens(tbl, "1+2", lexer.WithOnToken(func(tok lexer.Token[kind]) error {
		seen = append(seen, tok.Text)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, []string{"1", "+", "2"}, seen)
}

func TestTokensWithOnTokenHookError(t *testing.T) {
	tbl := arithmeticTable(t)
	sentinel := errSentinel{}
	tokens, err := lexer.Tokens(tbl, "1+2", lexer.WithOnToken(func(tok lexer.Token[kind]) error {
		if tok.Text == "+" {
			return sentinel
		}
		return nil
	}))
	require.Equal(t, sentinel, err)
	require.Equal(t, []lexer.Token[kind]{{Value: number, Text: "1"}}, tokens)
}

type errSentinel struct{}

func (errSentinel) Error() string { return "stop" }

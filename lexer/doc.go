// Package lexer drives a core.Table as a maximal-munch tokeniser.
//
// Scanner walks a compiled core.Table one byte at a time, remembering the
// rightmost node it has passed through that carries an accept value, and
// emits the longest accepting prefix at each dead end, the standard
// "maximal munch" policy used by hand-written lexers. Scanner only calls
// core.Table's exported, read-only methods (Root, Transition, ValueAt,
// InAlphabet); it never reaches into the table's internals, so any number
// of Scanners may run concurrently over the same *core.Table as long as
// nothing is concurrently calling Add on it.
//
//	t := core.NewTable[Kind]("0123456789+")
//	t.Add("[0123456789]+", Number)
//	t.Add("+", Add)
//	s, _ := lexer.New(t, "1+2")
//	for {
//	    tok, err := s.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // handle tok or err
//	}
//
// Tokens is a convenience wrapper that drives a Scanner to exhaustion and
// collects every token (or the first error) into a slice; it adds no
// scanning behavior beyond what Scanner.Next already does.
package lexer

// Package core implements a table-driven lexer automaton: a node arena
// addressed by dense integer ids, and a pattern compiler that extends it.
//
// A Table[T] starts life as a single root node over a fixed alphabet of
// ASCII bytes. Each call to Add compiles one pattern (a literal, a
// bracketed character class, or either followed by '+' for one-or-more
// repetition) into new transitions and, at most once per node, an accept
// value of type T. Get walks the automaton for exact-match lookups; the
// sibling lexer package drives the same table for maximal-munch scanning.
//
//	t := core.NewTable[string]("abcdefghijklmnopqrstuvwxyz")
//	t.Add("cat", "animal")
//	t.Add("ca[rt]", "ambiguous-example")
//	v, ok, err := t.Get("cat")
//
// Table is a flat, append-only arena (see node.go): no node is ever freed
// or reassigned, so NodeID values returned by internal helpers stay valid
// for the table's entire lifetime. There is no internal locking: Add must
// never run concurrently with readers (Get, or a lexer.Scanner), but many
// readers may run concurrently with each other once compilation is done.
// See the Table type's documentation for the full discipline.
package core

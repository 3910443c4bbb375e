// Package mtable is the root of a table-driven lexer construction library:
// build a transition table once from a set of patterns, then use it to look
// up exact matches or drive a maximal-munch scanner over arbitrary input.
//
// The library is organized under two subpackages:
//
//	core/  — Table[T], the node arena and pattern compiler (Add, Get)
//	lexer/ — Scanner[T] and Tokens, maximal-munch scanning over a core.Table
//
// This package itself holds no code; it exists so the module has a stable
// root import path and a place for overview documentation like this one.
//
//	t := core.NewTable[string]("0123456789+ ")
//	t.Add("[0123456789]+", "number")
//	t.Add("+", "plus")
//	t.Add(" +", "space")
//
//	tokens, err := lexer.Tokens(t, "12 + 7")
//
// See core's and lexer's own package docs for the construction and
// scanning contracts, respectively.
package mtable

package core

// This file exposes a thin, read-only accessor facade on top of Table.
// It contains no algorithmic logic of its own: compilation lives in
// compile.go, lookup in query.go, arena mechanics in node.go.

// Alphabet returns the ordered sequence of ASCII bytes this table was
// constructed with.
//
// Complexity: O(1).
func (t *Table[T]) Alphabet() string {
	return t.alphabet
}

// NodeCount returns the number of nodes currently in the arena, including
// the root. It grows monotonically as Add compiles patterns and never
// shrinks (spec invariant: node ids are stable for the table's lifetime).
//
// Complexity: O(1).
func (t *Table[T]) NodeCount() int {
	return len(t.nodes)
}

// AmbiguityPolicy returns the policy this table was constructed with.
//
// Complexity: O(1).
func (t *Table[T]) AmbiguityPolicy() AmbiguityPolicy {
	return t.policy
}

// Root returns the id of the always-present starting node. Both Get and
// any lexer.Scanner begin a walk here.
//
// Complexity: O(1).
func (t *Table[T]) Root() NodeID {
	return root
}

// InAlphabet reports whether ch is a member of this table's alphabet.
//
// Complexity: O(A), A = len(Alphabet()).
func (t *Table[T]) InAlphabet(ch byte) bool {
	_, ok := t.positionOf(ch)
	return ok
}

// Transition reads the outgoing edge from n on byte ch. It reports false if
// ch is not in the alphabet, or if n has no transition on ch. This is the
// only way callers outside this package (notably the lexer package's
// Scanner) walk the automaton; the scan path never reaches into Table's
// unexported fields.
//
// Complexity: O(A).
func (t *Table[T]) Transition(n NodeID, ch byte) (NodeID, bool) {
	pos, ok := t.positionOf(ch)
	if !ok {
		return noChild, false
	}
	return t.transition(n, pos)
}

// ValueAt returns the accept value installed on node n, if any.
//
// Complexity: O(1).
func (t *Table[T]) ValueAt(n NodeID) (T, bool) {
	return t.valueAt(n)
}

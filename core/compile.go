package core

// Add compiles pattern into the table, installing value at every node the
// pattern accepts.
//
// A pattern is a sequence of atoms; each atom is a literal byte or a
// bracketed character class "[...]", optionally followed by '+' for
// one-or-more repetition. Compilation walks a frontier (the set of node
// ids representing every position reachable after the atoms consumed so
// far), starting from {Root()}. Each atom either reuses an existing
// transition out of a frontier node or allocates a fresh one (extendFrontier,
// the Go counterpart of the reference implementation's append_node); a
// trailing '+' then wires every node in the new frontier back to itself for
// every byte in that atom's range (self-loops), which is the sole mechanism
// invariant 3 relies on for one-or-more repetition.
//
// Add is non-transactional: a pattern that fails partway through may have
// already allocated nodes and installed transitions. The table is left in
// whatever state compilation reached; callers who need rollback must
// snapshot NodeCount() beforehand and are on their own for reverting any
// transitions written into pre-existing nodes. A cleaner design would
// buffer edits and commit atomically; that is not attempted here, matching
// the reference implementation this package ports.
func (t *Table[T]) Add(pattern string, value T) error {
	if !isASCII(pattern) {
		return invalidStringErrorf(pattern)
	}

	currents := []NodeID{root}
	i := 0
	for i < len(pattern) {
		var atomRange []int
		var err error

		if pattern[i] == '[' {
			atomRange, i, err = t.parseClass(pattern, i)
		} else {
			ch := pattern[i]
			pos, ok := t.positionOf(ch)
			if !ok {
				return &InvalidInputError{Char: ch}
			}
			atomRange = []int{pos}
			i++
		}
		if err != nil {
			return err
		}

		currents, err = t.extendFrontier(currents, atomRange)
		if err != nil {
			return err
		}

		if i < len(pattern) && pattern[i] == '+' {
			i++
			if err := t.installSelfLoops(currents, atomRange); err != nil {
				return err
			}
		}
	}

	return t.installValue(currents, value)
}

// parseClass parses a bracketed character class starting at pattern[i]
// (which must be '['). Every byte up to the next ']' is a class member
// (duplicates collapse, preserving first-seen order; an inner '[' is just
// another member byte, looked up in the alphabet like any other, so
// "[[ab]]" fails with InvalidInputError('[') rather than nesting). It
// returns the de-duplicated
// alphabet positions, the index just past the closing ']', and an error if
// the class is empty or never closed.
func (t *Table[T]) parseClass(pattern string, i int) ([]int, int, error) {
	i++ // consume '['

	var positions []int
	seen := make(map[byte]bool)
	for i < len(pattern) && pattern[i] != ']' {
		ch := pattern[i]
		if !seen[ch] {
			pos, ok := t.positionOf(ch)
			if !ok {
				return nil, i, &InvalidInputError{Char: ch}
			}
			seen[ch] = true
			positions = append(positions, pos)
		}
		i++
	}
	if i >= len(pattern) || pattern[i] != ']' {
		return nil, i, ErrInvalidRange
	}
	i++ // consume ']'

	if len(positions) == 0 {
		return nil, i, ErrInvalidRange
	}
	return positions, i, nil
}

// extendFrontier advances every node in currents by every position in
// atomRange, reusing an existing transition where one is already present
// and allocating a fresh node otherwise. It is the direct counterpart of
// the reference implementation's add_from_range/append_node pair.
func (t *Table[T]) extendFrontier(currents []NodeID, atomRange []int) ([]NodeID, error) {
	next := make([]NodeID, 0, len(currents)*len(atomRange))
	for _, cur := range currents {
		for _, pos := range atomRange {
			child, ok := t.transition(cur, pos)
			if !ok {
				child = t.allocate()
				// The slot was just confirmed absent, so link cannot
				// report ambiguity here regardless of policy.
				if err := t.link(cur, pos, child, t.alphabet[pos]); err != nil {
					return nil, err
				}
			}
			next = append(next, child)
		}
	}
	return next, nil
}

// installSelfLoops wires every node in frontier back to itself for every
// position in atomRange: the one-or-more construct. A conflict (a node
// already routes that byte elsewhere, e.g. from an earlier, unrelated Add)
// is resolved per the table's AmbiguityPolicy via link.
func (t *Table[T]) installSelfLoops(frontier []NodeID, atomRange []int) error {
	for _, n := range frontier {
		for _, pos := range atomRange {
			if err := t.link(n, pos, n, t.alphabet[pos]); err != nil {
				return err
			}
		}
	}
	return nil
}

// installValue de-duplicates the final frontier and installs value on each
// distinct node, surfacing ValueAlreadyDefinedError for any node that
// already carries one.
func (t *Table[T]) installValue(frontier []NodeID, value T) error {
	seen := make(map[NodeID]bool, len(frontier))
	for _, n := range frontier {
		if seen[n] {
			continue
		}
		seen[n] = true
		if err := t.setValue(n, value); err != nil {
			return err
		}
	}
	return nil
}

package core

// Get reports the accept value reached by walking key through the
// automaton from the root, consuming it exactly. A partial walk that runs
// out of input before reaching an accepting node, or that dead-ends before
// consuming all of key, both report ok == false with a nil error.
//
// An error is only returned for a malformed key itself: non-ASCII
// (ErrInvalidString) or a byte absent from the alphabet (InvalidInputError).
// A normal "no match" is never an error.
func (t *Table[T]) Get(key string) (value T, ok bool, err error) {
	if !isASCII(key) {
		err = invalidStringErrorf(key)
		return
	}

	n := root
	for i := 0; i < len(key); i++ {
		pos, found := t.positionOf(key[i])
		if !found {
			err = &InvalidInputError{Char: key[i]}
			return
		}
		next, present := t.transition(n, pos)
		if !present {
			return
		}
		n = next
	}

	value, ok = t.valueAt(n)
	return
}

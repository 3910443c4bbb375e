package core

// AmbiguityPolicy selects how Add resolves a link that would redirect an
// existing transition to a different node, the situation character classes
// and self-loops create when two compilation paths converge on the same
// byte from different frontier nodes.
//
// Both policies are real, documented behaviors: this is a construction-time
// option, not a hidden default one of them shadows.
type AmbiguityPolicy int

const (
	// Permissive leaves the first-installed transition in place and treats
	// the redirect as a harmless no-op. Patterns like "[ab]+[ab]" compile
	// successfully under Permissive and are semantically equivalent to
	// "[ab]+". This is the default.
	Permissive AmbiguityPolicy = iota

	// Strict rejects a redirect with AmbiguousPatternError identifying the
	// offending byte.
	Strict
)

// tableConfig holds construction-time settings applied by TableOption
// values, resolved once inside NewTable.
type tableConfig struct {
	policy       AmbiguityPolicy
	capacityHint int
}

func defaultTableConfig() tableConfig {
	return tableConfig{policy: Permissive}
}

// TableOption configures a Table at construction time.
type TableOption func(*tableConfig)

// WithAmbiguityPolicy selects Strict or Permissive handling of converging
// transitions. The default, if no option is given, is Permissive.
func WithAmbiguityPolicy(p AmbiguityPolicy) TableOption {
	return func(c *tableConfig) { c.policy = p }
}

// WithCapacityHint preallocates room for approximately n nodes. It has no
// effect on any observable behavior, only on how many times the internal
// node slice must grow, and is purely an ambient convenience for callers
// who know roughly how large their compiled table will be.
func WithCapacityHint(n int) TableOption {
	return func(c *tableConfig) {
		if n > 0 {
			c.capacityHint = n
		}
	}
}

// Table is a compiled transition-table automaton over a fixed alphabet of
// ASCII bytes, with a generic accept payload of type T installed at some
// subset of its nodes by Add.
//
// Table is not safe for concurrent use by multiple goroutines if any of
// them may call Add: Add requires exclusive access and must never be
// interleaved with Get, a lexer.Scanner, or another Add. Once compilation
// is finished, any number of readers (Get, lexer.Scanner instances) may run
// concurrently against the same Table, since none of them mutate it.
type Table[T any] struct {
	alphabet string
	nodes    []node[T]
	policy   AmbiguityPolicy
}

// NewTable constructs an empty table over alphabet (an ordered sequence of
// distinct ASCII bytes) with a single root node (NodeID 0). alphabet is
// not validated for duplicates or ASCII-ness up front; non-ASCII alphabet
// bytes simply can never be reached by any pattern, since Add and Get both
// reject non-ASCII input before consulting the alphabet.
func NewTable[T any](alphabet string, opts ...TableOption) *Table[T] {
	cfg := defaultTableConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table[T]{
		alphabet: alphabet,
		policy:   cfg.policy,
	}
	capacity := cfg.capacityHint
	if capacity < 1 {
		capacity = 1
	}
	t.nodes = make([]node[T], 0, capacity)
	t.nodes = append(t.nodes, newNode[T](len(alphabet)))
	return t
}

// positionOf returns the index of ch within the alphabet (a linear scan; the
// alphabet is expected to be small) and whether it was found.
func (t *Table[T]) positionOf(ch byte) (int, bool) {
	for i := 0; i < len(t.alphabet); i++ {
		if t.alphabet[i] == ch {
			return i, true
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

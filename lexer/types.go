package lexer

// Token is one maximal-munch match: the accept value installed on the node
// the scan ended on, and the exact input slice that produced it.
type Token[T any] struct {
	Value T
	Text  string
}

// scanConfig holds settings applied by ScanOption values, resolved once by
// Tokens. Scanner.Next itself takes no options: it has nothing to configure
// beyond the table and input already fixed by New.
type scanConfig[T any] struct {
	onToken func(Token[T]) error
}

func defaultScanConfig[T any]() scanConfig[T] {
	return scanConfig[T]{}
}

// ScanOption configures the eager Tokens helper.
type ScanOption[T any] func(*scanConfig[T])

// WithOnToken registers a callback invoked after each token Tokens collects,
// before it is appended to the result. If fn returns an error, Tokens stops
// and returns that error instead of continuing to scan.
func WithOnToken[T any](fn func(Token[T]) error) ScanOption[T] {
	return func(c *scanConfig[T]) { c.onToken = fn }
}

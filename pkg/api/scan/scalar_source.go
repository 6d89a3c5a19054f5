package scan

// ScalarSource yields one Unicode code point at a time from an underlying
// text source. It reports io.EOF when the source is exhausted.
type ScalarSource interface {
	// Next returns the next code point from the source.
	Next() (rune, error)
}

// Pushback is a ScalarSource whose pending input can be amended: code points
// that were read ahead can be put back so that later reads observe the
// original stream order.
type Pushback interface {
	ScalarSource

	// Prepend inserts the given code points before everything currently
	// queued, preserving their relative order.
	Prepend(scalars ...rune)

	// Append inserts the given code points after everything currently
	// queued but before anything not yet read from the source.
	Append(scalars ...rune)
}

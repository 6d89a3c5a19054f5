package write

// Option configures a Writer.
type Option func(*Writer) error

// WithFieldDelimiter sets the field delimiter.
func WithFieldDelimiter(delim string) Option {
	return func(w *Writer) error {
		if delim == "" {
			return errEmptyDelimiter
		}
		w.fieldDelim = delim
		return nil
	}
}

// WithRowDelimiter sets the row delimiter.
func WithRowDelimiter(delim string) Option {
	return func(w *Writer) error {
		if delim == "" {
			return errEmptyDelimiter
		}
		w.rowDelim = delim
		return nil
	}
}

// WithQuote sets the quote character.
func WithQuote(quote rune) Option {
	return func(w *Writer) error {
		w.quote = quote
		return nil
	}
}

// WithAlwaysQuote quotes every field regardless of content. Useful when the
// reading side is configured with a trim set that would otherwise eat
// significant whitespace.
func WithAlwaysQuote() Option {
	return func(w *Writer) error {
		w.alwaysQuote = true
		return nil
	}
}

package reader

// Option configures a Reader. Delimiters and header presence left
// unconfigured are inferred from the stream at construction.
type Option func(*Reader) error

// WithFieldDelimiter fixes the field delimiter instead of inferring it.
func WithFieldDelimiter(delim string) Option {
	return func(r *Reader) error {
		if delim == "" {
			return errEmptyDelimiter
		}
		r.fieldDelim = []rune(delim)
		return nil
	}
}

// WithRowDelimiter fixes the row delimiter instead of inferring it.
func WithRowDelimiter(delim string) Option {
	return func(r *Reader) error {
		if delim == "" {
			return errEmptyDelimiter
		}
		r.rowDelim = []rune(delim)
		return nil
	}
}

// WithQuote sets the quote character. The default is '"'.
func WithQuote(quote rune) Option {
	return func(r *Reader) error {
		r.quote = quote
		return nil
	}
}

// WithTrim sets the code points stripped from both ends of unquoted fields.
// Quoted fields are never trimmed.
func WithTrim(scalars string) Option {
	return func(r *Reader) error {
		r.trim = make(map[rune]bool, len(scalars))
		for _, scalar := range scalars {
			r.trim[scalar] = true
		}
		return nil
	}
}

// WithHeader fixes header presence instead of inferring it.
func WithHeader(has bool) Option {
	return func(r *Reader) error {
		r.hasHeader = &has
		return nil
	}
}

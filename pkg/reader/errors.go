package reader

import (
	"errors"
	"fmt"
)

var (
	errNilSource        = errors.New("reader: scalar source cannot be nil")
	errEmptyDelimiter   = errors.New("reader: delimiter cannot be empty")
	errEqualDelimiters  = errors.New("reader: field and row delimiters are equal")
	errDelimiterPrefix  = errors.New("reader: one delimiter is a prefix of the other")
	errQuoteInDelimiter = errors.New("reader: quote character appears in a delimiter")
	errTrimConflict     = errors.New("reader: trim set overlaps a delimiter or the quote character")

	// ErrMalformedQuote reports text between a closing quote and the next
	// delimiter.
	ErrMalformedQuote = errors.New("reader: unexpected character after closing quote")

	// ErrUnterminatedQuote reports end of input inside a quoted field.
	ErrUnterminatedQuote = errors.New("reader: unterminated quoted field at end of input")
)

// ParseError locates a malformed-input failure in the stream.
type ParseError struct {
	Row    int
	Column int
	Scalar rune
	Err    error
}

func (e *ParseError) Error() string {
	if e.Scalar != 0 {
		return fmt.Sprintf("%v (row %d, column %d, at %q)", e.Err, e.Row, e.Column, e.Scalar)
	}
	return fmt.Sprintf("%v (row %d, column %d)", e.Err, e.Row, e.Column)
}

func (e *ParseError) Unwrap() error { return e.Err }

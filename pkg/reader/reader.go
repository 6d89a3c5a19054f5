// Package reader parses a stream of code points into CSV rows and fields,
// applying quoting, escaping, and trimming rules over fixed or inferred
// delimiters.
package reader

import (
	"context"
	"io"
	"log/slog"
	"strings"

	apiCodec "csvcodec/pkg/api/codec"
	apiScan "csvcodec/pkg/api/scan"
	"csvcodec/pkg/sniff"
)

var _ apiCodec.RowReader = (*Reader)(nil)

type parseState int

const (
	stateFieldStart parseState = iota
	stateUnquoted
	stateQuoted
	stateQuoteEnd
)

// Reader is the row/field parsing session. Its configuration is resolved
// once at construction, by explicit options or by inference over the stream
// prefix, and never changes afterwards.
type Reader struct {
	src        apiScan.Pushback
	fieldDelim []rune
	rowDelim   []rune
	quote      rune
	trim       map[rune]bool
	hasHeader  *bool

	header   []string
	rowIndex int
	err      error
}

// NewReader builds a parsing session over the given pushback buffer.
// Anything not fixed by options is inferred from the stream prefix; the
// prefix is restored before parsing starts, so the session consumes the
// stream from its very first code point.
func NewReader(src apiScan.Pushback, opts ...Option) (*Reader, error) {
	if src == nil {
		return nil, errNilSource
	}
	r := &Reader{src: src, quote: '"'}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	var err error
	switch {
	case r.fieldDelim == nil && r.rowDelim == nil:
		r.fieldDelim, r.rowDelim, err = sniff.Delimiters(src, r.quote)
	case r.fieldDelim == nil:
		r.fieldDelim, err = sniff.FieldDelimiter(src, r.quote, r.rowDelim)
	case r.rowDelim == nil:
		r.rowDelim, err = sniff.RowDelimiter(src, r.quote, r.fieldDelim)
	}
	if err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	if r.hasHeader == nil {
		has, err := sniff.Header(src, r.quote, r.fieldDelim, r.rowDelim)
		if err != nil {
			return nil, err
		}
		r.hasHeader = &has
	}
	if *r.hasHeader {
		fields, err := r.parseRow()
		if err == io.EOF {
			return r, nil
		}
		if err != nil {
			return nil, err
		}
		r.header = fields
	}
	return r, nil
}

// validate rejects contradictory or unusable settings before any parsing.
func (r *Reader) validate() error {
	if len(r.fieldDelim) == 0 || len(r.rowDelim) == 0 {
		return errEmptyDelimiter
	}
	field, row := string(r.fieldDelim), string(r.rowDelim)
	if field == row {
		return errEqualDelimiters
	}
	if strings.HasPrefix(field, row) || strings.HasPrefix(row, field) {
		return errDelimiterPrefix
	}
	if strings.ContainsRune(field, r.quote) || strings.ContainsRune(row, r.quote) {
		return errQuoteInDelimiter
	}
	for scalar := range r.trim {
		if scalar == r.quote || strings.ContainsRune(field, scalar) || strings.ContainsRune(row, scalar) {
			return errTrimConflict
		}
	}
	return nil
}

// Header implements codec.RowReader.
func (r *Reader) Header() []string { return r.header }

// HasHeader reports whether the session treats the first stream row as a
// header.
func (r *Reader) HasHeader() bool { return r.hasHeader != nil && *r.hasHeader }

// FieldDelimiter returns the resolved field delimiter.
func (r *Reader) FieldDelimiter() string { return string(r.fieldDelim) }

// RowDelimiter returns the resolved row delimiter.
func (r *Reader) RowDelimiter() string { return string(r.rowDelim) }

// Quote returns the quote character.
func (r *Reader) Quote() rune { return r.quote }

// ReadRow implements codec.RowReader. Parse errors are fatal for the
// session; every later call returns the same error.
func (r *Reader) ReadRow(ctx context.Context) (apiCodec.Row, error) {
	if r.err != nil {
		return apiCodec.Row{}, r.err
	}
	select {
	case <-ctx.Done():
		return apiCodec.Row{}, ctx.Err()
	default:
	}

	fields, err := r.parseRow()
	if err == io.EOF {
		slog.DebugContext(ctx, "end of CSV stream", "rows", r.rowIndex)
		r.err = io.EOF
		return apiCodec.Row{}, io.EOF
	}
	if err != nil {
		r.err = err
		return apiCodec.Row{}, err
	}
	row := apiCodec.Row{Index: r.rowIndex, Fields: fields}
	r.rowIndex++
	return row, nil
}

// parseRow runs the state machine until one row boundary. A final row
// without a trailing row delimiter is still emitted; end of input inside a
// quoted field is not.
func (r *Reader) parseRow() ([]string, error) {
	var fields []string
	var field []rune
	quoted := false
	state := stateFieldStart

	endField := func() {
		fields = append(fields, r.finishField(field, quoted))
		field = nil
		quoted = false
		state = stateFieldStart
	}

	for {
		scalar, err := r.src.Next()
		if err == io.EOF {
			if state == stateQuoted {
				return nil, &ParseError{Row: r.rowIndex, Column: len(fields), Err: ErrUnterminatedQuote}
			}
			if state == stateFieldStart && len(fields) == 0 && len(field) == 0 {
				return nil, io.EOF
			}
			endField()
			return fields, nil
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case stateFieldStart:
			switch {
			case scalar == r.quote:
				quoted = true
				state = stateQuoted
			case r.matchDelimiter(scalar, r.fieldDelim):
				endField()
			case r.matchDelimiter(scalar, r.rowDelim):
				endField()
				return fields, nil
			default:
				field = append(field, scalar)
				state = stateUnquoted
			}

		case stateUnquoted:
			switch {
			case r.matchDelimiter(scalar, r.fieldDelim):
				endField()
			case r.matchDelimiter(scalar, r.rowDelim):
				endField()
				return fields, nil
			default:
				field = append(field, scalar)
			}

		case stateQuoted:
			if scalar == r.quote {
				state = stateQuoteEnd
			} else {
				field = append(field, scalar)
			}

		case stateQuoteEnd:
			switch {
			case scalar == r.quote:
				// doubled quote: literal quote character
				field = append(field, r.quote)
				state = stateQuoted
			case r.matchDelimiter(scalar, r.fieldDelim):
				endField()
			case r.matchDelimiter(scalar, r.rowDelim):
				endField()
				return fields, nil
			default:
				return nil, &ParseError{Row: r.rowIndex, Column: len(fields), Scalar: scalar, Err: ErrMalformedQuote}
			}
		}
	}
}

// matchDelimiter reports whether the delimiter starts at the already-read
// scalar, consuming the rest of it on a match. Over-read scalars are put
// back on a mismatch so the stream is unchanged.
func (r *Reader) matchDelimiter(first rune, delim []rune) bool {
	if first != delim[0] {
		return false
	}
	var ahead []rune
	for _, want := range delim[1:] {
		scalar, err := r.src.Next()
		if err != nil {
			r.src.Prepend(ahead...)
			return false
		}
		ahead = append(ahead, scalar)
		if scalar != want {
			r.src.Prepend(ahead...)
			return false
		}
	}
	return true
}

// finishField materializes a completed field, trimming unquoted fields when
// a trim set is configured. Quoted content is literal and never trimmed.
func (r *Reader) finishField(field []rune, quoted bool) string {
	if quoted || len(r.trim) == 0 {
		return string(field)
	}
	start, end := 0, len(field)
	for start < end && r.trim[field[start]] {
		start++
	}
	for end > start && r.trim[field[end-1]] {
		end--
	}
	return string(field[start:end])
}

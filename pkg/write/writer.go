// Package write frames fields into CSV rows, quoting and escaping where the
// content demands it, and emits the text through a scalar encoder.
package write

import (
	"context"
	"strings"

	apiCodec "csvcodec/pkg/api/codec"
)

var _ apiCodec.RowWriter = (*Writer)(nil)

// Writer assembles rows for one write session. Delimiters and quote are
// fixed at construction and must match what the eventual reader expects.
type Writer struct {
	enc         apiCodec.ScalarEncoder
	fieldDelim  string
	rowDelim    string
	quote       rune
	alwaysQuote bool
}

// NewWriter builds a row writer on top of the given scalar encoder. The
// defaults are comma, linefeed, and a double quote.
func NewWriter(enc apiCodec.ScalarEncoder, opts ...Option) (*Writer, error) {
	if enc == nil {
		return nil, errNilEncoder
	}
	w := &Writer{enc: enc, fieldDelim: ",", rowDelim: "\n", quote: '"'}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	if w.fieldDelim == w.rowDelim {
		return nil, errEqualDelimiters
	}
	if strings.ContainsRune(w.fieldDelim, w.quote) || strings.ContainsRune(w.rowDelim, w.quote) {
		return nil, errQuoteInDelimiter
	}
	return w, nil
}

// WriteRow implements codec.RowWriter. Any encoder failure is fatal for the
// write session; the sink may hold a partial row at that point.
func (w *Writer) WriteRow(ctx context.Context, fields []string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	for i, field := range fields {
		if i > 0 {
			if err := w.emit(w.fieldDelim); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	return w.emit(w.rowDelim)
}

func (w *Writer) writeField(field string) error {
	if !w.alwaysQuote && !w.needsQuoting(field) {
		return w.emit(field)
	}
	if err := w.enc.EncodeScalar(w.quote); err != nil {
		return err
	}
	for _, scalar := range field {
		if scalar == w.quote {
			if err := w.enc.EncodeScalar(w.quote); err != nil {
				return err
			}
		}
		if err := w.enc.EncodeScalar(scalar); err != nil {
			return err
		}
	}
	return w.enc.EncodeScalar(w.quote)
}

// needsQuoting reports whether the field must be quoted to survive a parse:
// it contains the quote character or any scalar of either delimiter.
func (w *Writer) needsQuoting(field string) bool {
	if strings.ContainsRune(field, w.quote) {
		return true
	}
	return strings.ContainsAny(field, w.fieldDelim) || strings.ContainsAny(field, w.rowDelim)
}

func (w *Writer) emit(text string) error {
	for _, scalar := range text {
		if err := w.enc.EncodeScalar(scalar); err != nil {
			return err
		}
	}
	return nil
}

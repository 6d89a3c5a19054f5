package codec

import "context"

// ScalarEncoder converts code points into bytes for one text encoding and
// writes them to the sink it was constructed around. An encoder either emits
// the complete byte sequence for a code point or fails without emitting any
// of it.
type ScalarEncoder interface {
	// EncodeScalar writes the encoded form of one code point.
	EncodeScalar(scalar rune) error
}

// RowWriter frames fields into CSV rows and emits them through a
// ScalarEncoder, quoting and escaping as required.
type RowWriter interface {
	// WriteRow writes one row followed by the row delimiter.
	WriteRow(ctx context.Context, fields []string) error
}

package codec

import "context"

// Row is one parsed CSV record: its fields in column order plus its 0-based
// position among the data rows of the stream. Rows are immutable once
// produced; callers receive them as read-only views.
type Row struct {
	Index  int
	Fields []string
}

// RowReader produces rows from a CSV text source in stream order.
type RowReader interface {
	// ReadRow returns the next row. It reports io.EOF when the source is
	// exhausted. Any parse error is fatal for the session; subsequent
	// calls return the same error.
	ReadRow(ctx context.Context) (Row, error)

	// Header returns the header row fields, or nil when the stream has no
	// header.
	Header() []string
}

// RowBuffer serves rows and fields by position, absorbing out-of-order
// requests from a consumer on top of a strictly sequential RowReader.
type RowBuffer interface {
	// Row returns the row at the given 0-based index, advancing the
	// underlying reader as needed.
	Row(ctx context.Context, index int) (Row, error)

	// Field returns one field of the row at the given index.
	Field(ctx context.Context, row, col int) (string, error)
}

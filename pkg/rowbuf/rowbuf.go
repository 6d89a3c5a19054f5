// Package rowbuf caches parsed rows so a structured decoding layer can
// request rows and fields out of sequential order on top of a strictly
// sequential parser.
package rowbuf

import (
	"context"

	apiCodec "csvcodec/pkg/api/codec"
)

// Policy selects how many previously parsed rows stay accessible.
type Policy int

const (
	// KeepAll retains every parsed row, allowing arbitrary forward and
	// backward row re-access at the cost of memory.
	KeepAll Policy = iota

	// Sequential retains only the row currently being consumed. Jumping
	// forward discards intervening rows permanently; revisiting a
	// discarded row fails.
	Sequential
)

func (p Policy) String() string {
	switch p {
	case KeepAll:
		return "keep-all"
	case Sequential:
		return "sequential"
	}
	return "policy(?)"
}

var _ apiCodec.RowBuffer = (*Buffer)(nil)

// Buffer absorbs out-of-order row access for one decode session. The policy
// is fixed at construction and cannot change mid-stream.
type Buffer struct {
	reader apiCodec.RowReader
	policy Policy

	rows    []apiCodec.Row // KeepAll retention
	current apiCodec.Row   // Sequential retention
	next    int            // index the reader will produce next
}

// New builds a buffer over the given reader with the given policy.
func New(reader apiCodec.RowReader, policy Policy) (*Buffer, error) {
	if reader == nil {
		return nil, errNilReader
	}
	if policy != KeepAll && policy != Sequential {
		return nil, errUnknownPolicy
	}
	return &Buffer{reader: reader, policy: policy}, nil
}

// Row implements codec.RowBuffer. Under KeepAll any index at or below the
// highest produced row is served from cache; under Sequential an index below
// the current row is a buffer failure.
func (b *Buffer) Row(ctx context.Context, index int) (apiCodec.Row, error) {
	if index < 0 {
		return apiCodec.Row{}, &AccessError{Index: index, Current: b.next - 1, Err: ErrRowDiscarded}
	}
	if b.policy == KeepAll {
		if index < len(b.rows) {
			return b.rows[index], nil
		}
		return b.advanceKeepAll(ctx, index)
	}

	if index == b.next-1 {
		return b.current, nil
	}
	if index < b.next-1 {
		return apiCodec.Row{}, &AccessError{Index: index, Current: b.next - 1, Err: ErrRowDiscarded}
	}
	return b.advanceSequential(ctx, index)
}

// Field implements codec.RowBuffer. Fields within the served row may be
// requested in any order under either policy.
func (b *Buffer) Field(ctx context.Context, row, col int) (string, error) {
	r, err := b.Row(ctx, row)
	if err != nil {
		return "", err
	}
	if col < 0 || col >= len(r.Fields) {
		return "", &AccessError{Index: row, Current: b.next - 1, Err: ErrColumnOutOfRange}
	}
	return r.Fields[col], nil
}

func (b *Buffer) advanceKeepAll(ctx context.Context, index int) (apiCodec.Row, error) {
	for b.next <= index {
		row, err := b.reader.ReadRow(ctx)
		if err != nil {
			return apiCodec.Row{}, err
		}
		b.rows = append(b.rows, row)
		b.next++
	}
	return b.rows[index], nil
}

func (b *Buffer) advanceSequential(ctx context.Context, index int) (apiCodec.Row, error) {
	for b.next <= index {
		row, err := b.reader.ReadRow(ctx)
		if err != nil {
			return apiCodec.Row{}, err
		}
		b.current = row
		b.next++
	}
	return b.current, nil
}

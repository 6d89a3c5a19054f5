package stream

import "io"

// A sink that returns (0, nil) gets this many total attempts before the
// write fails.
const maxZeroProgressAttempts = 2

// Writer pushes byte buffers to a sink, blocking until every byte has been
// accepted or the write is known to have failed. The caller owns opening and
// closing the sink; the writer only uses it.
type Writer struct {
	sink io.Writer
}

// NewWriter wraps an open sink. A nil sink is a precondition failure.
func NewWriter(sink io.Writer) (*Writer, error) {
	if sink == nil {
		return nil, ErrSinkNotOpen
	}
	return &Writer{sink: sink}, nil
}

// WriteAll writes all of p to the sink, in order. Zero-progress writes are
// retried up to the attempt budget; a sink error fails the write
// immediately. On failure the returned error records how many bytes landed.
func (w *Writer) WriteAll(p []byte) error {
	if w == nil || w.sink == nil {
		return ErrSinkNotOpen
	}

	total := len(p)
	written := 0
	attempts := 0
	for written < total {
		n, err := w.sink.Write(p[written:])
		if n < 0 {
			n = 0
		}
		written += n
		attempts++
		if err != nil {
			return &WriteError{Written: written, Total: total, Attempts: attempts, Err: err}
		}
		if n == 0 {
			if attempts >= maxZeroProgressAttempts {
				return &WriteError{Written: written, Total: total, Attempts: attempts, Err: ErrNoProgress}
			}
			continue
		}
		attempts = 0
	}
	return nil
}

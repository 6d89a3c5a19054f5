package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrSinkNotOpen is returned when the writer is constructed or used
	// without an open output sink.
	ErrSinkNotOpen = errors.New("stream: output sink is not open")

	// ErrNoProgress is returned when the sink keeps accepting zero bytes
	// without reporting an error, past the retry budget.
	ErrNoProgress = errors.New("stream: sink made no progress")
)

// WriteError reports a failed write together with how far it got.
type WriteError struct {
	Written  int
	Total    int
	Attempts int
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("stream: wrote %d of %d bytes after %d attempts: %v",
		e.Written, e.Total, e.Attempts, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

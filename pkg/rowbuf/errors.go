package rowbuf

import (
	"errors"
	"fmt"
)

var (
	errNilReader     = errors.New("rowbuf: row reader cannot be nil")
	errUnknownPolicy = errors.New("rowbuf: unknown retention policy")

	// ErrRowDiscarded reports a request for a row the sequential policy
	// has already dropped. The data no longer exists; this is fatal for
	// the decode session.
	ErrRowDiscarded = errors.New("rowbuf: row already discarded under sequential retention")

	// ErrColumnOutOfRange reports a field request outside the row.
	ErrColumnOutOfRange = errors.New("rowbuf: column out of range")
)

// AccessError locates a failed buffer access.
type AccessError struct {
	Index   int
	Current int
	Err     error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%v (requested row %d, current row %d)", e.Err, e.Index, e.Current)
}

func (e *AccessError) Unwrap() error { return e.Err }

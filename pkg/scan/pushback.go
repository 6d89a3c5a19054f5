package scan

import (
	"io"

	apiScan "csvcodec/pkg/api/scan"
)

var _ apiScan.Pushback = (*Pushback)(nil)

// Pushback is a deque of not-yet-consumed code points in front of an
// io.RuneReader. Queued code points drain before the reader is touched, so
// look-ahead consumers can read ahead and put everything back without the
// downstream parser noticing.
type Pushback struct {
	source io.RuneReader
	queue  []rune
}

// NewPushback wraps the given rune reader. A nil reader behaves as an empty
// source.
func NewPushback(source io.RuneReader) *Pushback {
	return &Pushback{source: source}
}

// Next returns the next queued code point, or reads one from the underlying
// source when the queue is empty. It reports io.EOF when both are exhausted.
func (p *Pushback) Next() (rune, error) {
	if len(p.queue) > 0 {
		scalar := p.queue[0]
		p.queue = p.queue[1:]
		return scalar, nil
	}
	if p.source == nil {
		return 0, io.EOF
	}
	scalar, _, err := p.source.ReadRune()
	if err != nil {
		return 0, err
	}
	return scalar, nil
}

// Prepend inserts the given code points before everything currently queued,
// preserving their relative order. Prepending what was just read restores
// the stream to its prior state.
func (p *Pushback) Prepend(scalars ...rune) {
	if len(scalars) == 0 {
		return
	}
	merged := make([]rune, 0, len(scalars)+len(p.queue))
	merged = append(merged, scalars...)
	merged = append(merged, p.queue...)
	p.queue = merged
}

// Append inserts the given code points after everything currently queued but
// before anything still unread from the source.
func (p *Pushback) Append(scalars ...rune) {
	p.queue = append(p.queue, scalars...)
}

// Len returns the number of queued code points.
func (p *Pushback) Len() int {
	return len(p.queue)
}

package scan

import (
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, p *Pushback) string {
	t.Helper()
	var sb strings.Builder
	for {
		scalar, err := p.Next()
		if err == io.EOF {
			return sb.String()
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		sb.WriteRune(scalar)
	}
}

func TestNextDrainsSourceInOrder(t *testing.T) {
	p := NewPushback(strings.NewReader("héllo"))
	if got := drain(t, p); got != "héllo" {
		t.Errorf("drained %q, want %q", got, "héllo")
	}
}

func TestPrependRestoresStreamOrder(t *testing.T) {
	p := NewPushback(strings.NewReader("world"))

	// read ahead three scalars, then put them back
	var ahead []rune
	for i := 0; i < 3; i++ {
		scalar, err := p.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		ahead = append(ahead, scalar)
	}
	p.Prepend(ahead...)

	if got := drain(t, p); got != "world" {
		t.Errorf("drained %q, want %q", got, "world")
	}
}

func TestPrependBeforeQueued(t *testing.T) {
	p := NewPushback(strings.NewReader("cd"))
	p.Prepend('b')
	p.Prepend('a')
	if got := drain(t, p); got != "abcd" {
		t.Errorf("drained %q, want %q", got, "abcd")
	}
}

func TestAppendAfterQueued(t *testing.T) {
	p := NewPushback(strings.NewReader("d"))
	p.Prepend('a')
	p.Append('b', 'c')
	if got := drain(t, p); got != "abcd" {
		t.Errorf("drained %q, want %q", got, "abcd")
	}
}

// TestQueueModel replays a mixed operation sequence against a plain slice
// model of the deque.
func TestQueueModel(t *testing.T) {
	type op struct {
		prepend bool
		scalars []rune
	}
	ops := []op{
		{true, []rune{'1', '2'}},
		{false, []rune{'3'}},
		{true, []rune{'4'}},
		{false, []rune{'5', '6'}},
		{true, []rune{'7', '8', '9'}},
	}

	p := NewPushback(nil)
	var model []rune
	for _, o := range ops {
		if o.prepend {
			p.Prepend(o.scalars...)
			model = append(append([]rune{}, o.scalars...), model...)
		} else {
			p.Append(o.scalars...)
			model = append(model, o.scalars...)
		}
	}
	if got, want := drain(t, p), string(model); got != want {
		t.Errorf("drained %q, want %q", got, want)
	}
}

func TestNextAfterExhaustionKeepsReportingEOF(t *testing.T) {
	p := NewPushback(strings.NewReader("x"))
	drain(t, p)
	for i := 0; i < 2; i++ {
		if _, err := p.Next(); err != io.EOF {
			t.Fatalf("Next after EOF = %v, want io.EOF", err)
		}
	}
	p.Prepend('y')
	scalar, err := p.Next()
	if err != nil || scalar != 'y' {
		t.Fatalf("Next after Prepend = %q, %v; want 'y', nil", scalar, err)
	}
}

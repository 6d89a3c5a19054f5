package rowbuf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"csvcodec/pkg/reader"
	"csvcodec/pkg/scan"
)

func TestBufferOverParser(t *testing.T) {
	const input = "name,score\nann,10\nbob,20\ncid,30\n"
	r, err := reader.NewReader(scan.NewPushback(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	ctx := context.Background()

	t.Run("keep-all", func(t *testing.T) {
		buf, err := New(r, KeepAll)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		name, err := buf.Field(ctx, 2, 0)
		if err != nil || name != "cid" {
			t.Fatalf("Field(2,0) = %q, %v", name, err)
		}
		// backwards after the jump
		score, err := buf.Field(ctx, 0, 1)
		if err != nil || score != "10" {
			t.Fatalf("Field(0,1) = %q, %v", score, err)
		}
	})
}

func TestSequentialBufferOverParser(t *testing.T) {
	const input = "1,a\n2,b\n3,c\n"
	r, err := reader.NewReader(scan.NewPushback(strings.NewReader(input)),
		reader.WithFieldDelimiter(","), reader.WithRowDelimiter("\n"), reader.WithHeader(false))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	buf, err := New(r, Sequential)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	row, err := buf.Row(ctx, 1)
	if err != nil || row.Fields[1] != "b" {
		t.Fatalf("Row(1) = %+v, %v", row, err)
	}
	if _, err := buf.Row(ctx, 0); !errors.Is(err, ErrRowDiscarded) {
		t.Fatalf("Row(0) = %v, want ErrRowDiscarded", err)
	}
}

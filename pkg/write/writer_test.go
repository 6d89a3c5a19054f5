package write

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/xyproto/randomstring"

	"csvcodec/pkg/encode"
	"csvcodec/pkg/reader"
	"csvcodec/pkg/scan"
)

func newUTF8Writer(t *testing.T, buf *bytes.Buffer, opts ...Option) *Writer {
	t.Helper()
	enc, err := encode.NewScalarEncoder(encode.UTF8, buf, nil)
	if err != nil {
		t.Fatalf("NewScalarEncoder: %v", err)
	}
	w, err := NewWriter(enc, opts...)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	return w
}

func parseBack(t *testing.T, text string) [][]string {
	t.Helper()
	r, err := reader.NewReader(scan.NewPushback(strings.NewReader(text)),
		reader.WithFieldDelimiter(","), reader.WithRowDelimiter("\n"), reader.WithHeader(false))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	var rows [][]string
	for {
		row, err := r.ReadRow(context.Background())
		if err == io.EOF {
			return rows
		}
		if err != nil {
			t.Fatalf("ReadRow(%q): %v", text, err)
		}
		rows = append(rows, row.Fields)
	}
}

func TestWriteRowPlain(t *testing.T) {
	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf)
	if err := w.WriteRow(context.Background(), []string{"a", "b", "c"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if buf.String() != "a,b,c\n" {
		t.Errorf("output = %q, want %q", buf.String(), "a,b,c\n")
	}
}

func TestWriteRowQuotesWhenNeeded(t *testing.T) {
	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf)
	fields := []string{"a,b", "line\nbreak", `say "hi"`, "plain"}
	if err := w.WriteRow(context.Background(), fields); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	want := "\"a,b\",\"line\nbreak\",\"say \"\"hi\"\"\",plain\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	rows := [][]string{
		{"plain", "with,comma", "with\nnewline"},
		{`quote"inside`, `"fully quoted"`, ""},
		{"", "", ""},
		{"trailing,", ",leading", `""`},
		{"unicode é あ", "mixed,\"all\"\nof it"},
	}
	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf)
	for _, row := range rows {
		if err := w.WriteRow(context.Background(), row); err != nil {
			t.Fatalf("WriteRow(%v): %v", row, err)
		}
	}
	if got := parseBack(t, buf.String()); !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip:\n got %q\nwant %q", got, rows)
	}
}

func TestRoundTripRandomFields(t *testing.T) {
	specials := []string{",", "\n", `"`, `""`, "\r\n"}
	var rows [][]string
	for i := 0; i < 20; i++ {
		var row []string
		for f := 0; f < 4; f++ {
			field := randomstring.HumanFriendlyEnglishString(8)
			// salt some fields with the characters that force quoting
			if f%2 == 0 {
				field = field + specials[len(rows)%len(specials)] + field
			}
			row = append(row, field)
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf)
	for _, row := range rows {
		if err := w.WriteRow(context.Background(), row); err != nil {
			t.Fatalf("WriteRow(%v): %v", row, err)
		}
	}
	if got := parseBack(t, buf.String()); !reflect.DeepEqual(got, rows) {
		t.Errorf("random round trip mismatch:\n got %q\nwant %q", got, rows)
	}
}

func TestQuotingIdempotence(t *testing.T) {
	// a field that already requires quoting survives a second trip intact
	field := `already "quoted", with extras`
	for i := 0; i < 2; i++ {
		var buf bytes.Buffer
		w := newUTF8Writer(t, &buf)
		if err := w.WriteRow(context.Background(), []string{field}); err != nil {
			t.Fatalf("WriteRow: %v", err)
		}
		rows := parseBack(t, buf.String())
		if len(rows) != 1 || len(rows[0]) != 1 {
			t.Fatalf("parsed %q", rows)
		}
		field = rows[0][0]
	}
	if field != `already "quoted", with extras` {
		t.Errorf("field after two trips = %q", field)
	}
}

func TestAlwaysQuote(t *testing.T) {
	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf, WithAlwaysQuote())
	if err := w.WriteRow(context.Background(), []string{" padded ", "x"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if buf.String() != "\" padded \",\"x\"\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCustomDelimiters(t *testing.T) {
	var buf bytes.Buffer
	w := newUTF8Writer(t, &buf, WithFieldDelimiter(";"), WithRowDelimiter("\r\n"))
	if err := w.WriteRow(context.Background(), []string{"a;b", "c"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if buf.String() != "\"a;b\";c\r\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriterValidation(t *testing.T) {
	var buf bytes.Buffer
	enc, _ := encode.NewScalarEncoder(encode.UTF8, &buf, nil)
	if _, err := NewWriter(nil); err == nil {
		t.Error("NewWriter(nil) succeeded")
	}
	if _, err := NewWriter(enc, WithFieldDelimiter(","), WithRowDelimiter(",")); err == nil {
		t.Error("equal delimiters accepted")
	}
	if _, err := NewWriter(enc, WithFieldDelimiter("\"")); err == nil {
		t.Error("quote inside delimiter accepted")
	}
}

func TestEncodingFailureSurfaces(t *testing.T) {
	var buf bytes.Buffer
	enc, err := encode.NewScalarEncoder(encode.ASCII, &buf, nil)
	if err != nil {
		t.Fatalf("NewScalarEncoder: %v", err)
	}
	w, err := NewWriter(enc)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteRow(context.Background(), []string{"café"}); err == nil {
		t.Error("WriteRow with unrepresentable scalar succeeded")
	}
}

func BenchmarkWriteRow(b *testing.B) {
	const fieldsPerRow = 8
	fields := make([]string, fieldsPerRow)
	for i := range fields {
		fields[i] = randomstring.HumanFriendlyEnglishString(12)
		if i%3 == 0 {
			fields[i] = "\"" + fields[i] + "\",“"
		}
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		enc, err := encode.NewScalarEncoder(encode.UTF8, &buf, nil)
		if err != nil {
			b.Fatal(err)
		}
		w, err := NewWriter(enc)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 100; j++ {
			if err := w.WriteRow(ctx, fields); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// Package sniff infers the field delimiter, row delimiter, and header
// presence of a CSV stream from a bounded prefix. All sampling goes through
// the pushback buffer and every consumed code point is restored before any
// function returns, success or failure, so the parser always sees the
// untouched stream.
package sniff

import (
	"log/slog"

	apiScan "csvcodec/pkg/api/scan"
)

const (
	// Sampling stops at whichever limit is hit first.
	maxSampleScalars = 64 * 1024
	maxSampleRows    = 64

	minSampleRows = 2
)

// Field delimiter candidates, in tie-break order.
var fieldCandidates = []rune{',', ';', '\t', '|', ':'}

// Delimiters jointly infers the field and row delimiters when neither is
// known. The row delimiter is chosen first from raw terminator frequencies,
// then the field delimiter is picked by field-count consistency over the
// sampled rows.
func Delimiters(src apiScan.Pushback, quote rune) (field, row []rune, err error) {
	prefix := sample(src)
	defer src.Prepend(prefix...)

	row, err = rowDelimiter(prefix, quote)
	if err != nil {
		return nil, nil, err
	}
	field, err = fieldDelimiter(prefix, quote, row)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("inferred delimiters", "field", string(field), "row", string(row))
	return field, row, nil
}

// FieldDelimiter infers the field delimiter when the row delimiter is known.
func FieldDelimiter(src apiScan.Pushback, quote rune, rowDelim []rune) ([]rune, error) {
	prefix := sample(src)
	defer src.Prepend(prefix...)
	return fieldDelimiter(prefix, quote, rowDelim)
}

// RowDelimiter infers the row delimiter when the field delimiter is known.
func RowDelimiter(src apiScan.Pushback, quote rune, fieldDelim []rune) ([]rune, error) {
	prefix := sample(src)
	defer src.Prepend(prefix...)

	row, err := rowDelimiter(prefix, quote)
	if err != nil {
		return nil, err
	}
	if equalRunes(row, fieldDelim) {
		return nil, ErrNoConsistentDelimiter
	}
	return row, nil
}

// sample reads up to the sampling limits from the buffer. The caller is
// responsible for prepending the returned prefix back.
func sample(src apiScan.Pushback) []rune {
	var prefix []rune
	for len(prefix) < maxSampleScalars {
		scalar, err := src.Next()
		if err != nil {
			break
		}
		prefix = append(prefix, scalar)
	}
	return prefix
}

// rowDelimiter picks the dominant row terminator among CRLF, LF, and CR,
// counted outside quoted regions. Ties prefer the two-scalar convention.
func rowDelimiter(prefix []rune, quote rune) ([]rune, error) {
	crlf := countOutsideQuotes(prefix, []rune{'\r', '\n'}, quote)
	lf := countOutsideQuotes(prefix, []rune{'\n'}, quote) - crlf
	cr := countOutsideQuotes(prefix, []rune{'\r'}, quote) - crlf

	switch {
	case crlf >= lf && crlf >= cr && crlf > 0:
		return []rune{'\r', '\n'}, nil
	case lf >= cr && lf > 0:
		return []rune{'\n'}, nil
	case cr > 0:
		return []rune{'\r'}, nil
	}
	return nil, ErrInsufficientSample
}

// fieldDelimiter picks the candidate whose per-row occurrence count is
// positive and shared by a majority of the sampled rows. Ties break on
// higher total occurrences, then candidate order.
func fieldDelimiter(prefix []rune, quote rune, rowDelim []rune) ([]rune, error) {
	rows := sampleRows(prefix, quote, rowDelim)
	if len(rows) < minSampleRows {
		return nil, ErrInsufficientSample
	}

	var (
		best        []rune
		bestSupport int
		bestTotal   int
	)
	for _, cand := range fieldCandidates {
		delim := []rune{cand}
		if equalRunes(delim, rowDelim) {
			continue
		}
		counts := make(map[int]int)
		total := 0
		for _, row := range rows {
			n := countOutsideQuotes(row, delim, quote)
			counts[n]++
			total += n
		}
		// modal positive count and its support
		modal, support := 0, 0
		for n, c := range counts {
			if n > 0 && (c > support || (c == support && n > modal)) {
				modal, support = n, c
			}
		}
		if modal == 0 || support*2 < len(rows)+1 {
			continue
		}
		if support > bestSupport || (support == bestSupport && total > bestTotal) {
			best, bestSupport, bestTotal = delim, support, total
		}
	}
	if best == nil {
		return nil, ErrNoConsistentDelimiter
	}
	return best, nil
}

// sampleRows splits the prefix on the row delimiter outside quoted regions,
// dropping a trailing empty row and capping at the row sampling limit.
func sampleRows(prefix []rune, quote rune, rowDelim []rune) [][]rune {
	var rows [][]rune
	start := 0
	inQuotes := false
	for i := 0; i < len(prefix) && len(rows) < maxSampleRows; {
		if prefix[i] == quote {
			inQuotes = !inQuotes
			i++
			continue
		}
		if !inQuotes && hasPrefixAt(prefix, rowDelim, i) {
			rows = append(rows, prefix[start:i])
			i += len(rowDelim)
			start = i
			continue
		}
		i++
	}
	if start < len(prefix) && len(rows) < maxSampleRows {
		rows = append(rows, prefix[start:])
	}
	return rows
}

func countOutsideQuotes(text []rune, needle []rune, quote rune) int {
	count := 0
	inQuotes := false
	for i := 0; i < len(text); {
		if text[i] == quote {
			inQuotes = !inQuotes
			i++
			continue
		}
		if !inQuotes && hasPrefixAt(text, needle, i) {
			count++
			i += len(needle)
			continue
		}
		i++
	}
	return count
}

func hasPrefixAt(text, needle []rune, at int) bool {
	if at+len(needle) > len(text) {
		return false
	}
	for j, scalar := range needle {
		if text[at+j] != scalar {
			return false
		}
	}
	return true
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

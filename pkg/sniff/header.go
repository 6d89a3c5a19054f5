package sniff

import (
	"strconv"
	"strings"

	apiScan "csvcodec/pkg/api/scan"
)

// Header decides whether the first row is a header once both delimiters are
// resolved. The signal: some column is numeric-looking in every sampled row
// after the first but not in the first row, and the first row has no
// duplicate cells. Quoted cells count as non-numeric.
func Header(src apiScan.Pushback, quote rune, fieldDelim, rowDelim []rune) (bool, error) {
	prefix := sample(src)
	defer src.Prepend(prefix...)

	rows := sampleRows(prefix, quote, rowDelim)
	if len(rows) < minSampleRows {
		return false, ErrInsufficientSample
	}

	cells := make([][]cell, len(rows))
	for i, row := range rows {
		cells[i] = splitCells(row, quote, fieldDelim)
	}

	first := cells[0]
	seen := make(map[string]bool, len(first))
	for _, c := range first {
		key := strings.ToLower(strings.TrimSpace(c.text))
		if seen[key] {
			return false, nil
		}
		seen[key] = true
	}

	for col := range first {
		if numericLooking(first[col]) {
			continue
		}
		numericBelow := true
		for _, row := range cells[1:] {
			if col >= len(row) || !numericLooking(row[col]) {
				numericBelow = false
				break
			}
		}
		if numericBelow {
			return true, nil
		}
	}
	return false, nil
}

type cell struct {
	text   string
	quoted bool
}

// splitCells naively splits one sampled row on the field delimiter outside
// quoted regions. It only needs to be faithful enough for shape comparison;
// the real parser does the authoritative splitting.
func splitCells(row []rune, quote rune, fieldDelim []rune) []cell {
	var cells []cell
	var current []rune
	quoted := false
	inQuotes := false
	for i := 0; i < len(row); {
		if row[i] == quote {
			inQuotes = !inQuotes
			quoted = true
			i++
			continue
		}
		if !inQuotes && hasPrefixAt(row, fieldDelim, i) {
			cells = append(cells, cell{text: string(current), quoted: quoted})
			current = current[:0]
			quoted = false
			i += len(fieldDelim)
			continue
		}
		current = append(current, row[i])
		i++
	}
	return append(cells, cell{text: string(current), quoted: quoted})
}

func numericLooking(c cell) bool {
	if c.quoted {
		return false
	}
	text := strings.TrimSpace(c.text)
	if text == "" {
		return false
	}
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}

// Package convert holds the default pluggable per-value strategies a
// structured decoding layer hooks into: nil sentinels, booleans, dates,
// decimals, binary blobs, and key renaming. Each strategy is invoked at a
// single point per value; swapping one out never touches the codec core.
package convert

import (
	"encoding/base64"
	"strings"
	"time"

	apiConvert "csvcodec/pkg/api/convert"
)

var (
	_ apiConvert.NilChecker    = (*nilChecker)(nil)
	_ apiConvert.BoolConverter = (*boolConverter)(nil)
	_ apiConvert.DateConverter = (*dateConverter)(nil)
	_ apiConvert.DataConverter = (*dataConverter)(nil)
)

type nilChecker struct {
	sentinels map[string]bool
}

// NewNilChecker treats the given sentinels as nil markers, case
// insensitively. Without arguments the empty string, "nil", and "null" are
// the sentinels.
func NewNilChecker(sentinels ...string) apiConvert.NilChecker {
	if len(sentinels) == 0 {
		sentinels = []string{"", "nil", "null"}
	}
	set := make(map[string]bool, len(sentinels))
	for _, s := range sentinels {
		set[strings.ToLower(s)] = true
	}
	return nilChecker{sentinels: set}
}

// IsNil implements convert.NilChecker.
func (n nilChecker) IsNil(field string) bool {
	return n.sentinels[strings.ToLower(strings.TrimSpace(field))]
}

type boolConverter struct{}

// NewBoolConverter returns the default boolean strategy: true/false,
// yes/no, and 1/0, case insensitively.
func NewBoolConverter() apiConvert.BoolConverter {
	return boolConverter{}
}

// ConvertBool implements convert.BoolConverter.
func (boolConverter) ConvertBool(field string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return false, ErrNotBool
}

type dateConverter struct {
	layouts []string
}

// NewDateConverter tries the given layouts in order. Without arguments it
// knows RFC 3339 and the common date-only and date-time forms.
func NewDateConverter(layouts ...string) apiConvert.DateConverter {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05", "02/01/2006"}
	}
	return dateConverter{layouts: layouts}
}

// ConvertDate implements convert.DateConverter.
func (d dateConverter) ConvertDate(field string) (time.Time, error) {
	field = strings.TrimSpace(field)
	for _, layout := range d.layouts {
		if ts, err := time.Parse(layout, field); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrNoDateLayout
}

type dataConverter struct{}

// NewDataConverter returns the default blob strategy, standard base64.
func NewDataConverter() apiConvert.DataConverter {
	return dataConverter{}
}

// ConvertData implements convert.DataConverter.
func (dataConverter) ConvertData(field string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimSpace(field))
}

package convert

import "time"

// NilChecker decides whether a field's text denotes the absence of a value.
type NilChecker interface {
	// IsNil reports whether the field text is a nil sentinel.
	IsNil(field string) bool
}

// BoolConverter parses a field's text into a boolean.
type BoolConverter interface {
	// ConvertBool parses the field text. It returns an error when the
	// text denotes neither truth value.
	ConvertBool(field string) (bool, error)
}

// DateConverter parses a field's text into a point in time.
type DateConverter interface {
	// ConvertDate parses the field text. It returns an error when no
	// known layout matches.
	ConvertDate(field string) (time.Time, error)
}

// DataConverter decodes a field's text into a binary blob.
type DataConverter interface {
	// ConvertData decodes the field text.
	ConvertData(field string) ([]byte, error)
}

// KeyMapper transforms a column key into the name used by the consuming
// layer, e.g. snake_case into camelCase.
type KeyMapper interface {
	// MapKey returns the transformed key.
	MapKey(key string) string
}

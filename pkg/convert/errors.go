package convert

import "errors"

var (
	// ErrNotBool is returned when a field denotes neither truth value.
	ErrNotBool = errors.New("convert: field is not a boolean")

	// ErrNoDateLayout is returned when no configured layout parses the
	// field.
	ErrNoDateLayout = errors.New("convert: field matches no date layout")
)

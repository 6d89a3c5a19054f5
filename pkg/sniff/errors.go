package sniff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDelimiter is the base condition for every inference
	// failure: the sampled prefix does not determine a usable delimiter
	// or header answer.
	ErrInvalidDelimiter = errors.New("sniff: could not determine a valid delimiter")

	// ErrInsufficientSample is returned when the sampled prefix holds too
	// few rows to infer anything (an empty or single-row input).
	ErrInsufficientSample = fmt.Errorf("%w: sample has fewer than two rows", ErrInvalidDelimiter)

	// ErrNoConsistentDelimiter is returned when no candidate yields a
	// consistent field count across the sampled rows.
	ErrNoConsistentDelimiter = fmt.Errorf("%w: no candidate yields a consistent field count", ErrInvalidDelimiter)
)

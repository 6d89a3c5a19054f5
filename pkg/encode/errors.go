package encode

import (
	"errors"
	"fmt"
)

// ErrUnsupportedEncoding is returned when an encoder is requested for an
// encoding the factory does not know. No bytes are written in that case.
var ErrUnsupportedEncoding = errors.New("encode: unsupported encoding")

// EncodingError reports a code point that the chosen encoding cannot
// represent.
type EncodingError struct {
	Encoding Encoding
	Scalar   rune
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode: %s cannot represent %q (U+%04X)", e.Encoding, e.Scalar, e.Scalar)
}

func (e *EncodingError) Unwrap() error { return e.Err }

package encode

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	apiCodec "csvcodec/pkg/api/codec"
	"csvcodec/pkg/stream"
)

var _ apiCodec.ScalarEncoder = (*scalarEncoder)(nil)

// byteOrderMark is the preamble the default UTF-16 variant writes, in its
// big-endian form.
var byteOrderMark = []byte{0xFE, 0xFF}

// scalarEncoder converts one code point at a time into bytes for a fixed
// encoding and pushes them to the sink through the stream writer. The byte
// sequence for a code point is assembled completely before any of it is
// written, so a failure never leaves a partial code point in the sink.
type scalarEncoder struct {
	encoding Encoding
	writer   *stream.Writer
	scratch  [4]byte
	table    *encoding.Encoder // Shift JIS
}

// NewScalarEncoder builds an encoder for the requested encoding bound to the
// given sink, writing the caller-supplied preamble (if any) up front. The
// default UTF-16 variant additionally writes its byte order mark; callers
// must not supply one themselves. An unsupported encoding fails before any
// bytes are written.
func NewScalarEncoder(enc Encoding, sink io.Writer, preamble []byte) (apiCodec.ScalarEncoder, error) {
	switch enc {
	case ASCII, UTF8, UTF16, UTF16BE, UTF16LE, UTF32BE, UTF32LE, ShiftJIS, Windows1252:
	default:
		return nil, ErrUnsupportedEncoding
	}

	writer, err := stream.NewWriter(sink)
	if err != nil {
		return nil, err
	}
	s := &scalarEncoder{encoding: enc, writer: writer}
	if enc == ShiftJIS {
		s.table = japanese.ShiftJIS.NewEncoder()
	}

	if len(preamble) > 0 {
		if err := writer.WriteAll(preamble); err != nil {
			return nil, err
		}
	}
	if enc == UTF16 {
		if err := writer.WriteAll(byteOrderMark); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// EncodeScalar implements codec.ScalarEncoder.
func (s *scalarEncoder) EncodeScalar(scalar rune) error {
	if !utf8.ValidRune(scalar) {
		return &EncodingError{Encoding: s.encoding, Scalar: scalar}
	}

	switch s.encoding {
	case ASCII:
		if scalar > 0x7F {
			return &EncodingError{Encoding: s.encoding, Scalar: scalar}
		}
		s.scratch[0] = byte(scalar)
		return s.writer.WriteAll(s.scratch[:1])

	case UTF8:
		n := utf8.EncodeRune(s.scratch[:], scalar)
		return s.writer.WriteAll(s.scratch[:n])

	case UTF16, UTF16BE:
		return s.encodeUTF16(scalar, false)
	case UTF16LE:
		return s.encodeUTF16(scalar, true)

	case UTF32BE:
		s.scratch[0] = byte(scalar >> 24)
		s.scratch[1] = byte(scalar >> 16)
		s.scratch[2] = byte(scalar >> 8)
		s.scratch[3] = byte(scalar)
		return s.writer.WriteAll(s.scratch[:4])
	case UTF32LE:
		s.scratch[0] = byte(scalar)
		s.scratch[1] = byte(scalar >> 8)
		s.scratch[2] = byte(scalar >> 16)
		s.scratch[3] = byte(scalar >> 24)
		return s.writer.WriteAll(s.scratch[:4])

	case ShiftJIS:
		encoded, err := s.table.Bytes([]byte(string(scalar)))
		if err != nil {
			return &EncodingError{Encoding: s.encoding, Scalar: scalar, Err: err}
		}
		return s.writer.WriteAll(encoded)

	case Windows1252:
		b, ok := charmap.Windows1252.EncodeRune(scalar)
		if !ok {
			return &EncodingError{Encoding: s.encoding, Scalar: scalar}
		}
		s.scratch[0] = b
		return s.writer.WriteAll(s.scratch[:1])
	}
	return ErrUnsupportedEncoding
}

// encodeUTF16 writes one or two 16-bit units, splitting each into bytes in
// the requested order. Code points beyond the basic plane become a
// surrogate pair.
func (s *scalarEncoder) encodeUTF16(scalar rune, littleEndian bool) error {
	put := func(buf []byte, unit uint16) {
		if littleEndian {
			buf[0] = byte(unit)
			buf[1] = byte(unit >> 8)
		} else {
			buf[0] = byte(unit >> 8)
			buf[1] = byte(unit)
		}
	}

	if scalar <= 0xFFFF {
		put(s.scratch[:2], uint16(scalar))
		return s.writer.WriteAll(s.scratch[:2])
	}
	high, low := utf16.EncodeRune(scalar)
	put(s.scratch[:2], uint16(high))
	put(s.scratch[2:4], uint16(low))
	return s.writer.WriteAll(s.scratch[:4])
}

package encode

import "fmt"

// Encoding identifies a supported target text encoding.
type Encoding int

const (
	// ASCII maps each code point to a single byte 0-127.
	ASCII Encoding = iota
	// UTF8 is standard variable-width UTF-8.
	UTF8
	// UTF16 is UTF-16 in the implementation default byte order
	// (big-endian) with a byte order mark written up front.
	UTF16
	// UTF16BE is UTF-16 big-endian without a byte order mark.
	UTF16BE
	// UTF16LE is UTF-16 little-endian without a byte order mark.
	UTF16LE
	// UTF32BE is UTF-32 big-endian.
	UTF32BE
	// UTF32LE is UTF-32 little-endian.
	UTF32LE
	// ShiftJIS is the Shift JIS double-byte legacy encoding.
	ShiftJIS
	// Windows1252 is the Windows-1252 single-byte legacy encoding.
	Windows1252
)

var encodingNames = map[Encoding]string{
	ASCII:       "ascii",
	UTF8:        "utf-8",
	UTF16:       "utf-16",
	UTF16BE:     "utf-16be",
	UTF16LE:     "utf-16le",
	UTF32BE:     "utf-32be",
	UTF32LE:     "utf-32le",
	ShiftJIS:    "shift-jis",
	Windows1252: "windows-1252",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("encoding(%d)", int(e))
}

// ParseEncoding resolves an encoding name as used on the command line.
// Unknown names fail with ErrUnsupportedEncoding.
func ParseEncoding(name string) (Encoding, error) {
	for enc, n := range encodingNames {
		if n == name {
			return enc, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

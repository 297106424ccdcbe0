// Package transcode handles the optional 16-bit text encoding of delimited
// documents. A stream starting with a UTF-16 byte-order mark is converted to
// UTF-8 before tokenization; on save the rendered text is converted back and
// prefixed with the matching byte-order mark. Streams without a marker pass
// through untouched.
package transcode

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies the on-disk text encoding of a document.
type Encoding int

const (
	// None means the stream is already in the internal (UTF-8) representation.
	None Encoding = iota
	// UTF16LE is little-endian UTF-16 with byte-order mark.
	UTF16LE
	// UTF16BE is big-endian UTF-16 with byte-order mark.
	UTF16BE
)

// String returns the name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "none"
	}
}

// Detect inspects the first bytes of data for a UTF-16 byte-order mark.
func Detect(data []byte) Encoding {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return UTF16LE
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return UTF16BE
		}
	}
	return None
}

// Decode converts raw document bytes to the internal representation.
// The detected encoding is returned so the document can be written back the
// same way it was read.
func Decode(data []byte) (string, Encoding, error) {
	enc := Detect(data)
	if enc == None {
		return string(data), None, nil
	}

	dec := unicode.UTF16(endianness(enc), unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", enc, err
	}
	return string(out), enc, nil
}

// Encode converts internal-representation text back to document bytes.
// For UTF-16 encodings the output is prefixed with the byte-order mark.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc == None {
		return []byte(text), nil
	}

	e := unicode.UTF16(endianness(enc), unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(e, []byte(text))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func endianness(enc Encoding) unicode.Endianness {
	if enc == UTF16BE {
		return unicode.BigEndian
	}
	return unicode.LittleEndian
}

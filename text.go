package hexcodec

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// ToUtf8 decodes a hex string into UTF-8 text. Decoding stops at the first
// zero byte, so "0x6100" and "0x610062" both yield "a".
func ToUtf8(h string) (string, error) {
	b, err := decodeHex(h)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidFormat, "hex %q does not encode UTF-8 text", h)
	}
	return string(b), nil
}

// FromUtf8 hex-encodes the UTF-8 bytes of s up to its first NUL character.
func FromUtf8(s string) (string, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if !utf8.ValidString(s) {
		return "", errors.Wrapf(ErrInvalidFormat, "%q is not valid UTF-8", s)
	}
	return encodeHex([]byte(s)), nil
}

// ToAscii decodes a hex string one byte per character (Latin-1). Zero bytes
// are kept. Digits pair up from the left and an odd trailing digit is a byte
// of its own.
func ToAscii(h string) (string, error) {
	b, err := decodePairs(h)
	if err != nil {
		return "", err
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidFormat, "hex %q: %v", h, err)
	}
	return string(s), nil
}

// FromAscii hex-encodes s one byte per character. Characters above U+00FF
// cannot be represented.
func FromAscii(s string) (string, error) {
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidArgument, "%q is not Latin-1 text: %v", s, err)
	}
	return encodeHex([]byte(b)), nil
}

package hexcodec

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/rawbytedev/hexcodec/internal/common"
)

const hexPrefix = "0x"

// IsHexPrefixed reports whether s starts with "0x". The remainder is not validated.
func IsHexPrefixed(s string) bool {
	return strings.HasPrefix(s, hexPrefix)
}

// StripHexPrefix removes a leading "0x" from s, if present.
func StripHexPrefix(s string) string {
	if IsHexPrefixed(s) {
		return s[len(hexPrefix):]
	}
	return s
}

// StripHexPrefixAny is StripHexPrefix for values of unknown type.
func StripHexPrefixAny(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrInvalidType, "cannot strip hex prefix from %T", v)
	}
	return StripHexPrefix(s), nil
}

// PadToEven prepends a single "0" to s when its length is odd.
func PadToEven(s string) string {
	if len(s)%2 != 0 {
		return "0" + s
	}
	return s
}

// PadToEvenAny is PadToEven for values of unknown type.
func PadToEvenAny(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrInvalidType, "cannot pad %T to even length", v)
	}
	return PadToEven(s), nil
}

// GetBinarySize returns the number of bytes s occupies when encoded as UTF-8.
// Invalid UTF-8 sequences are counted as raw bytes, not as replacement characters.
func GetBinarySize(s string) int {
	return len(s)
}

// GetBinarySizeAny is GetBinarySize for values of unknown type.
func GetBinarySizeAny(v any) (int, error) {
	s, ok := v.(string)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidType, "cannot size %T as UTF-8", v)
	}
	return GetBinarySize(s), nil
}

// IsHexString reports whether s is "0x" followed by zero or more hex digits.
func IsHexString(s string) bool {
	if !IsHexPrefixed(s) {
		return false
	}
	for i := len(hexPrefix); i < len(s); i++ {
		if !common.IsHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsHexStringOfLength is IsHexString that additionally requires s to encode
// exactly length bytes. A length <= 0 imposes no constraint.
func IsHexStringOfLength(s string, length int) bool {
	if !IsHexString(s) {
		return false
	}
	if length > 0 && len(s) != len(hexPrefix)+2*length {
		return false
	}
	return true
}

// decodeHex strips an optional prefix, pads to even length and decodes.
func decodeHex(s string) ([]byte, error) {
	return decodeDigits(PadToEven(StripHexPrefix(s)), s)
}

// decodePairs strips an optional prefix and decodes digit pairs from the left.
// A trailing unpaired digit becomes a byte of its own, so "0x616" is {0x61, 0x06}.
func decodePairs(s string) ([]byte, error) {
	digits := StripHexPrefix(s)
	if len(digits)%2 == 0 {
		return decodeDigits(digits, s)
	}
	b, err := decodeDigits(digits[:len(digits)-1], s)
	if err != nil {
		return nil, err
	}
	last, err := decodeDigits("0"+digits[len(digits)-1:], s)
	if err != nil {
		return nil, err
	}
	return append(b, last...), nil
}

func decodeDigits(digits, orig string) ([]byte, error) {
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "malformed hex %q: %v", orig, err)
	}
	return b, nil
}

func encodeHex(b []byte) string {
	return hexPrefix + hex.EncodeToString(b)
}

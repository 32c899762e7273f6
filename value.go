package hexcodec

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rawbytedev/hexcodec/internal/common"
)

// Kind identifies which representation a Value holds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBytes
	KindIntegerSequence
	KindText
	KindInteger
	KindBigInt
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBytes:
		return "bytes"
	case KindIntegerSequence:
		return "integer sequence"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindBigInt:
		return "big integer"
	default:
		return "unknown"
	}
}

// Value is one of the representations ToBuffer knows how to normalize.
// The zero Value is absent.
type Value struct {
	kind    Kind
	bytes   []byte
	ints    []int
	text    string
	integer int64
	big     *big.Int
}

// BytesValue wraps an existing byte slice.
func BytesValue(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// IntsValue wraps a sequence of byte values.
func IntsValue(ints []int) Value { return Value{kind: KindIntegerSequence, ints: ints} }

// TextValue wraps a string, hex when 0x-prefixed and raw text otherwise.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// IntValue wraps a scalar integer.
func IntValue(i int64) Value { return Value{kind: KindInteger, integer: i} }

// AbsentValue returns the absent Value, same as the zero Value.
func AbsentValue() Value { return Value{} }

// BigIntValue wraps an arbitrary-precision integer.
func BigIntValue(n *big.Int) Value { return Value{kind: KindBigInt, big: n} }

// Kind returns the representation v holds.
func (v Value) Kind() Kind { return v.kind }

// ToBuffer normalizes v into a byte slice.
//
// Bytes are returned as is. Integer sequences must hold values in 0..255.
// Text is hex-decoded when it carries a "0x" prefix (odd digit counts are
// left-padded with a zero) and taken as raw UTF-8 otherwise. Integers and big
// integers go through their even-length hex form. Absent yields an empty slice.
func ToBuffer(v Value) ([]byte, error) {
	switch v.kind {
	case KindBytes:
		return v.bytes, nil
	case KindIntegerSequence:
		out := make([]byte, len(v.ints))
		for i, x := range v.ints {
			b, ok := common.ByteFromInt64(int64(x))
			if !ok {
				return nil, errors.Wrapf(ErrInvalidArgument, "element %d is not a byte value: %d", i, x)
			}
			out[i] = b
		}
		return out, nil
	case KindText:
		if IsHexPrefixed(v.text) {
			return decodeHex(v.text)
		}
		return []byte(v.text), nil
	case KindInteger:
		return IntToBuffer(v.integer)
	case KindAbsent:
		return []byte{}, nil
	case KindBigInt:
		return BigToBuffer(v.big)
	default:
		return nil, errors.Wrapf(ErrInvalidType, "cannot convert %s value to bytes", v.kind)
	}
}

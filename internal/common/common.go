package common

import (
	"math"
	"reflect"
)

// IsSignedKind reports whether k is a signed integer kind.
func IsSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// IsUnsignedKind reports whether k is an unsigned integer kind.
func IsUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsIntegerKind reports whether k is any integer kind.
func IsIntegerKind(k reflect.Kind) bool {
	return IsSignedKind(k) || IsUnsignedKind(k)
}

func IsFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsSequenceKind reports whether k is a slice or array kind.
func IsSequenceKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

// IsFalsy reports whether v is nil, false, a numeric zero, NaN, an empty string or a nil pointer.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	k := rv.Kind()
	switch {
	case k == reflect.Bool:
		return !rv.Bool()
	case k == reflect.String:
		return rv.Len() == 0
	case IsSignedKind(k):
		return rv.Int() == 0
	case IsUnsignedKind(k):
		return rv.Uint() == 0
	case IsFloatKind(k):
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case k == reflect.Pointer, k == reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsHexDigit reports whether c is in [0-9a-fA-F].
func IsHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// ByteFromInt64 narrows x to a byte value, reporting false when x is outside 0..255.
func ByteFromInt64(x int64) (byte, bool) {
	if x < 0 || x > math.MaxUint8 {
		return 0, false
	}
	return byte(x), true
}

// ByteFromValue narrows an integer or integral float held by v, unwrapping
// interfaces, to a byte value. Anything else reports false.
func ByteFromValue(v reflect.Value) (byte, bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	k := v.Kind()
	switch {
	case IsSignedKind(k):
		return ByteFromInt64(v.Int())
	case IsUnsignedKind(k):
		return ByteFromUint64(v.Uint())
	case IsFloatKind(k):
		f := v.Float()
		if f != math.Trunc(f) || f < 0 || f > math.MaxUint8 {
			return 0, false
		}
		return byte(f), true
	default:
		return 0, false
	}
}

// ByteFromUint64 narrows x to a byte value, reporting false when x exceeds 255.
func ByteFromUint64(x uint64) (byte, bool) {
	if x > math.MaxUint8 {
		return 0, false
	}
	return byte(x), true
}

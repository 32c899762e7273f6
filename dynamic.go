package hexcodec

import (
	"math"
	"math/big"
	"reflect"

	"github.com/pkg/errors"

	"github.com/rawbytedev/hexcodec/internal/common"
)

// ByteArrayer is implemented by big-number types that expose their
// big-endian digits as a byte array.
type ByteArrayer interface {
	ToArray() []byte
}

// ValueOf classifies a dynamically typed value, e.g. one decoded from a
// JSON-RPC payload, into a Value.
//
// Accepted are nil, []byte, Bytes, string, integer kinds, integral
// non-negative floats, slices and arrays of numbers (including []any as
// produced by JSON decoding), *big.Int and ByteArrayer implementations.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return AbsentValue(), nil
	case Value:
		return t, nil
	case []byte:
		return BytesValue(t), nil
	case Bytes:
		return BytesValue(t), nil
	case string:
		return TextValue(t), nil
	case *big.Int:
		if t == nil {
			return AbsentValue(), nil
		}
		return BigIntValue(t), nil
	case ByteArrayer:
		return BytesValue(t.ToArray()), nil
	}

	rv := reflect.ValueOf(v)
	k := rv.Kind()
	switch {
	case common.IsSignedKind(k):
		return IntValue(rv.Int()), nil
	case common.IsUnsignedKind(k):
		u := rv.Uint()
		if u > math.MaxInt64 {
			return BigIntValue(new(big.Int).SetUint64(u)), nil
		}
		return IntValue(int64(u)), nil
	case common.IsFloatKind(k):
		return floatValue(rv.Float())
	case common.IsSequenceKind(k) && isNumericElem(rv.Type().Elem().Kind()):
		return sequenceValue(rv)
	}
	return Value{}, errors.Wrapf(ErrInvalidType, "cannot convert %T to bytes", v)
}

// ToBufferAny is ToBuffer for values of unknown type, see ValueOf.
func ToBufferAny(v any) ([]byte, error) {
	val, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	return ToBuffer(val)
}

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Value{}, errors.Wrapf(ErrInvalidArgument, "number is not an integer: %v", f)
	}
	if f < 0 {
		return Value{}, errors.Wrapf(ErrInvalidArgument, "number must be non-negative, got %v", f)
	}
	if f >= math.MaxInt64 {
		n, _ := big.NewFloat(f).Int(nil)
		return BigIntValue(n), nil
	}
	return IntValue(int64(f)), nil
}

// isNumericElem reports whether a sequence with elements of kind k may hold
// byte values. Interface elements are checked one by one.
func isNumericElem(k reflect.Kind) bool {
	return common.IsIntegerKind(k) || common.IsFloatKind(k) || k == reflect.Interface
}

func sequenceValue(rv reflect.Value) (Value, error) {
	ints := make([]int, rv.Len())
	for i := range ints {
		b, ok := common.ByteFromValue(rv.Index(i))
		if !ok {
			return Value{}, errors.Wrapf(ErrInvalidArgument, "element %d is not a byte value: %v", i, rv.Index(i).Interface())
		}
		ints[i] = int(b)
	}
	return IntsValue(ints), nil
}

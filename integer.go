package hexcodec

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// IntToHex formats a non-negative integer as "0x" followed by an even number of
// lower-case hex digits, e.g. 255 -> "0xff", 0 -> "0x00".
func IntToHex(i int64) (string, error) {
	if i < 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "integer must be non-negative, got %d", i)
	}
	return hexPrefix + PadToEven(strconv.FormatInt(i, 16)), nil
}

// IntToBuffer returns the big-endian bytes of IntToHex(i).
func IntToBuffer(i int64) ([]byte, error) {
	h, err := IntToHex(i)
	if err != nil {
		return nil, err
	}
	return decodeHex(h)
}

// BigToHex is IntToHex for arbitrary-precision integers.
func BigToHex(n *big.Int) (string, error) {
	if n == nil {
		return "", errors.Wrap(ErrInvalidArgument, "big integer is nil")
	}
	if n.Sign() < 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "big integer must be non-negative, got %s", n)
	}
	return hexPrefix + PadToEven(n.Text(16)), nil
}

// BigToBuffer returns the big-endian bytes of BigToHex(n).
func BigToBuffer(n *big.Int) ([]byte, error) {
	h, err := BigToHex(n)
	if err != nil {
		return nil, err
	}
	return decodeHex(h)
}

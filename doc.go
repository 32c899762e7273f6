// Package hexcodec converts between byte slices, 0x-prefixed hex strings,
// non-negative integers, UTF-8 text and Latin-1 ("ASCII") text, the way
// blockchain JSON-RPC APIs represent binary values.
//
// All functions are pure and safe for concurrent use. Validation is strict:
// every failure wraps one of ErrInvalidType, ErrInvalidArgument or
// ErrInvalidFormat, so callers can branch with errors.Is.
package hexcodec

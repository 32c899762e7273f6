package hexcodec

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidType is returned when an argument has the wrong kind, e.g. a non-string where text is required.
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidArgument is returned for out-of-range values like negative integers or non-sequences.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFormat is returned when textual input is malformed (bad hex digits, invalid UTF-8, non-string record values).
	ErrInvalidFormat = errors.New("invalid format")
)

package interval

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a bound is absent or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRange is returned when from is not strictly before to.
	ErrInvalidRange = errors.New("invalid range")
)

package timeutil

import (
	"errors"
)

// timeutil errors
var (
	ErrInvalidDatetimeFormat = errors.New("invalid datetime format")
)

package stream

import (
	"errors"
)

// stream errors
var (
	ErrClosed = errors.New("connection closed")
)

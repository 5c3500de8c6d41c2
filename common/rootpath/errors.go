package rootpath

import (
	"errors"
)

// rootpath errors
var (
	ErrNotFound = errors.New("not found in search path")
)

package number

import (
	"errors"
)

// number errors
var (
	ErrInvalidAmountFormat = errors.New("invalid amount format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidPrecision    = errors.New("invalid precision")
)

package sandbox

import (
	"errors"
)

// sandbox errors
var (
	ErrEmptyFixture      = errors.New("empty fixture")
	ErrUnknownMarket     = errors.New("unknown market")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBadSignature      = errors.New("bad signature")
)

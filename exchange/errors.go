package exchange

import (
	"errors"
)

// exchange errors
var (
	ErrExchangeNotAvailable = errors.New("exchange not available")
	ErrAuthentication       = errors.New("authentication failed")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrOrderNotFound        = errors.New("order not found")
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrBadRequest           = errors.New("bad request")
	ErrBadResponse          = errors.New("bad response")
	ErrMarketNotFound       = errors.New("market not found")
)

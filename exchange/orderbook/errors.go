package orderbook

import (
	"errors"
)

// orderbook errors
var (
	ErrOutOfOrderNonce = errors.New("out of order nonce")
)

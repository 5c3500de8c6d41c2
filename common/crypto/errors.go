package crypto

import (
	"errors"
)

// crypto errors
var (
	ErrInvalidDigestSize      = errors.New("invalid digest size")
	ErrInvalidSignatureFormat = errors.New("invalid signature format")
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrInvalidPublicKey       = errors.New("invalid public key")
	ErrInvalidPrivateKey      = errors.New("invalid private key")
	ErrUnsupportedAlgorithm   = errors.New("unsupported algorithm")
)

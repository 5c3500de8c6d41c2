package crypto

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// SignEddsa signs the message with the ed25519 private key.
func SignEddsa(message []byte, priv ed25519.PrivateKey) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	return ed25519.Sign(priv, message), nil
}

// VerifyEddsa checks the ed25519 signature of the message.
func VerifyEddsa(message, sig []byte, pub ed25519.PublicKey) error {
	if len(pub) != ed25519.PublicKeySize {
		return errors.WithStack(ErrInvalidPublicKey)
	}
	if !ed25519.Verify(pub, message, sig) {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

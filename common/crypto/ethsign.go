package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"

	ecrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SignRecoverable signs the 32 byte digest with the secp256k1 private key
// and returns the 65 byte [R || S || V] signature.
func SignRecoverable(digest, privKey []byte) ([]byte, error) {
	priv, err := ecrypto.ToECDSA(privKey)
	if err != nil {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	sig, err := ecrypto.Sign(digest, priv)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sig, nil
}

// RecoverPubkey recovers the compressed public key using the digest and the
// 65 byte recoverable signature.
func RecoverPubkey(digest, sig []byte) ([]byte, error) {
	bs, err := ecrypto.Ecrecover(digest, sig)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	X, Y := elliptic.Unmarshal(ecrypto.S256(), bs)
	key := ecrypto.CompressPubkey(&ecdsa.PublicKey{
		Curve: ecrypto.S256(),
		X:     X,
		Y:     Y,
	})
	return key, nil
}

// VerifyRecoverable checks the signature with the public key and the digest,
// ignoring the recovery byte.
func VerifyRecoverable(pubkey, digest, sig []byte) error {
	if len(sig) < 64 {
		return errors.WithStack(ErrInvalidSignatureFormat)
	}
	if !ecrypto.VerifySignature(pubkey, digest, sig[:64]) {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

// KeccakDigest returns the Keccak-256 digest used by the recoverable scheme.
func KeccakDigest(data []byte) []byte {
	return ecrypto.Keccak256(data)
}

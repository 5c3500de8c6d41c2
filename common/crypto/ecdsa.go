package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// SignSecp256k1 signs the 32 byte digest with the secp256k1 private key and
// returns the 64 byte [R || S] signature.
func SignSecp256k1(digest, privKey []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, errors.WithStack(ErrInvalidDigestSize)
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKey)
	sig, err := priv.Sign(digest)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return serializeRS(sig.R, sig.S), nil
}

// SignSecp256k1DER signs the 32 byte digest with the secp256k1 private key
// and returns the DER encoded signature.
func SignSecp256k1DER(digest, privKey []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, errors.WithStack(ErrInvalidDigestSize)
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privKey)
	sig, err := priv.Sign(digest)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sig.Serialize(), nil
}

// VerifySecp256k1 checks a 64 byte [R || S] signature over the digest with
// the compressed or uncompressed public key.
func VerifySecp256k1(digest, sig, pubKey []byte) error {
	if len(sig) != 64 {
		return errors.WithStack(ErrInvalidSignatureFormat)
	}
	pub, err := btcec.ParsePubKey(pubKey, btcec.S256())
	if err != nil {
		return errors.WithStack(ErrInvalidPublicKey)
	}
	s := &btcec.Signature{
		R: new(big.Int).SetBytes(sig[:32]),
		S: new(big.Int).SetBytes(sig[32:]),
	}
	if !s.Verify(digest, pub) {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

// Secp256k1Pubkey derives the compressed public key of the private key.
func Secp256k1Pubkey(privKey []byte) []byte {
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), privKey)
	return pub.SerializeCompressed()
}

// SignP256 signs the 32 byte digest with the P-256 private key and returns
// the 64 byte [R || S] signature.
func SignP256(digest []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	if priv.Curve != elliptic.P256() {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return serializeRS(r, s), nil
}

// VerifyP256 checks a 64 byte [R || S] signature over the digest.
func VerifyP256(digest, sig []byte, pub *ecdsa.PublicKey) error {
	if len(sig) != 64 {
		return errors.WithStack(ErrInvalidSignatureFormat)
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if !ecdsa.Verify(pub, digest, r, s) {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

func serializeRS(r, s *big.Int) []byte {
	out := make([]byte, 64)
	r.FillBytes(out[:32])
	s.FillBytes(out[32:])
	return out
}

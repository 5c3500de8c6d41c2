package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

// SignRsa256 signs the data with RSA PKCS #1 v1.5 over SHA-256.
func SignRsa256(data []byte, priv *rsa.PrivateKey) ([]byte, error) {
	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sig, nil
}

// VerifyRsa256 checks an RSA PKCS #1 v1.5 SHA-256 signature of the data.
func VerifyRsa256(data, sig []byte, pub *rsa.PublicKey) error {
	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig); err != nil {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

// ParseRsaPrivateKeyPEM parses a PKCS #1 or PKCS #8 encoded RSA private key.
func ParseRsaPrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.WithStack(ErrInvalidPrivateKey)
	}
	return key, nil
}

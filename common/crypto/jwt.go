package crypto

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// Jwt builds a signed JSON web token of the claims. The key must match the
// algorithm: []byte for HS256/HS384/HS512, *rsa.PrivateKey for RS256 and
// *ecdsa.PrivateKey for ES256.
func Jwt(claims map[string]interface{}, key interface{}, alg string) (string, error) {
	header := map[string]interface{}{
		"alg": alg,
		"typ": "JWT",
	}
	hb, err := json.Marshal(header)
	if err != nil {
		return "", errors.WithStack(err)
	}
	cb, err := json.Marshal(claims)
	if err != nil {
		return "", errors.WithStack(err)
	}
	signing := base64.RawURLEncoding.EncodeToString(hb) + "." + base64.RawURLEncoding.EncodeToString(cb)

	var sig []byte
	switch alg {
	case "HS256", "HS384", "HS512":
		secret, ok := key.([]byte)
		if !ok {
			return "", errors.WithStack(ErrInvalidPrivateKey)
		}
		algo := AlgoSha256
		switch alg {
		case "HS384":
			algo = AlgoSha384
		case "HS512":
			algo = AlgoSha512
		}
		sig = Hmac([]byte(signing), secret, algo)
	case "RS256":
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return "", errors.WithStack(ErrInvalidPrivateKey)
		}
		sig, err = SignRsa256([]byte(signing), priv)
		if err != nil {
			return "", err
		}
	case "ES256":
		priv, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return "", errors.WithStack(ErrInvalidPrivateKey)
		}
		digest := sha256.Sum256([]byte(signing))
		sig, err = SignP256(digest[:], priv)
		if err != nil {
			return "", err
		}
	default:
		return "", errors.WithStack(ErrUnsupportedAlgorithm)
	}
	return signing + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"hash"
)

// HashAlgo selects the digest of an HMAC
type HashAlgo int

// hmac digests
const (
	AlgoSha256 HashAlgo = iota
	AlgoSha384
	AlgoSha512
	AlgoMd5
)

func (a HashAlgo) factory() func() hash.Hash {
	switch a {
	case AlgoSha384:
		return sha512.New384
	case AlgoSha512:
		return sha512.New
	case AlgoMd5:
		return md5.New
	default:
		return sha256.New
	}
}

// Hmac returns the HMAC of the payload under the secret
func Hmac(payload, secret []byte, algo HashAlgo) []byte {
	m := hmac.New(algo.factory(), secret)
	m.Write(payload)
	return m.Sum(nil)
}

// HmacHex returns the hex encoded HMAC of the payload under the secret
func HmacHex(payload, secret []byte, algo HashAlgo) string {
	return hex.EncodeToString(Hmac(payload, secret, algo))
}

// HmacBase64 returns the base64 encoded HMAC of the payload under the secret
func HmacBase64(payload, secret []byte, algo HashAlgo) string {
	return base64.StdEncoding.EncodeToString(Hmac(payload, secret, algo))
}

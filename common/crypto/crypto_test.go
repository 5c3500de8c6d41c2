package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigests(t *testing.T) {
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", hex.EncodeToString(Sha256([]byte("hello"))))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(Sha256(nil)))
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", hex.EncodeToString(Md5([]byte("hello"))))
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(Keccak256(nil)))
	assert.Equal(t, "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8", hex.EncodeToString(Keccak256([]byte("hello"))))
	assert.Equal(t, int32(0x414fa339), Crc32([]byte("The quick brown fox jumps over the lazy dog")))
}

func TestHmac(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")
	key := []byte("key")
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", HmacHex(msg, key, AlgoSha256))
	assert.Equal(t, "80070713463e7749b90c2dc24911e275", HmacHex(msg, key, AlgoMd5))
	assert.True(t, strings.HasPrefix(HmacHex(msg, key, AlgoSha512), "b42af09057bac1e2d41708e48a902e09"))
	assert.Equal(t, 48, len(Hmac(msg, key, AlgoSha384)))
	assert.NotEmpty(t, HmacBase64(msg, key, AlgoSha256))
}

func TestSecp256k1(t *testing.T) {
	priv := Sha256([]byte("test key seed"))
	pub := Secp256k1Pubkey(priv)
	require.Equal(t, 33, len(pub))

	digest := Sha256([]byte("payload"))
	sig, err := SignSecp256k1(digest, priv)
	require.NoError(t, err)
	require.Equal(t, 64, len(sig))
	require.NoError(t, VerifySecp256k1(digest, sig, pub))

	bad := make([]byte, 64)
	copy(bad, sig)
	bad[10] ^= 0xff
	err = VerifySecp256k1(digest, bad, pub)
	assert.Equal(t, ErrInvalidSignature, errors.Cause(err))

	err = VerifySecp256k1(Sha256([]byte("other")), sig, pub)
	assert.Equal(t, ErrInvalidSignature, errors.Cause(err))

	err = VerifySecp256k1(digest, sig[:10], pub)
	assert.Equal(t, ErrInvalidSignatureFormat, errors.Cause(err))

	_, err = SignSecp256k1([]byte("short"), priv)
	assert.Equal(t, ErrInvalidDigestSize, errors.Cause(err))

	der, err := SignSecp256k1DER(digest, priv)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), der[0])
}

func TestRecoverable(t *testing.T) {
	priv := Sha256([]byte("recoverable key seed"))
	digest := KeccakDigest([]byte("payload"))

	sig, err := SignRecoverable(digest, priv)
	require.NoError(t, err)
	require.Equal(t, 65, len(sig))

	pub, err := RecoverPubkey(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, Secp256k1Pubkey(priv), pub)
	require.NoError(t, VerifyRecoverable(pub, digest, sig))

	err = VerifyRecoverable(pub, KeccakDigest([]byte("other")), sig)
	assert.Error(t, err)
}

func TestP256(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	digest := Sha256([]byte("payload"))

	sig, err := SignP256(digest, priv)
	require.NoError(t, err)
	require.Equal(t, 64, len(sig))
	require.NoError(t, VerifyP256(digest, sig, &priv.PublicKey))

	sig[0] ^= 0xff
	assert.Error(t, VerifyP256(digest, sig, &priv.PublicKey))
}

func TestRsa(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	sig, err := SignRsa256([]byte("payload"), priv)
	require.NoError(t, err)
	require.NoError(t, VerifyRsa256([]byte("payload"), sig, &priv.PublicKey))
	assert.Error(t, VerifyRsa256([]byte("other"), sig, &priv.PublicKey))
}

func TestJwt(t *testing.T) {
	claims := map[string]interface{}{"sub": "trader", "iat": 1600000000}
	secret := []byte("secret")

	token, err := Jwt(claims, secret, "HS256")
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Equal(t, 3, len(parts))

	want := base64.RawURLEncoding.EncodeToString(Hmac([]byte(parts[0]+"."+parts[1]), secret, AlgoSha256))
	assert.Equal(t, want, parts[2])

	_, err = Jwt(claims, secret, "none")
	assert.Equal(t, ErrUnsupportedAlgorithm, errors.Cause(err))

	_, err = Jwt(claims, "not bytes", "HS256")
	assert.Equal(t, ErrInvalidPrivateKey, errors.Cause(err))

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token, err = Jwt(claims, rsaKey, "RS256")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	token, err = Jwt(claims, ecKey, "ES256")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))
}

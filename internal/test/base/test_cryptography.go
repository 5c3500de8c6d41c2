package base

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/MarcelRaschke/ccxt/common/crypto"
)

// checkCryptography exercises the digests, the MACs and the signature
// schemes against known vectors
func checkCryptography() error {
	hello := []byte("hello")
	digests := []struct {
		name string
		got  []byte
		want string
	}{
		{"sha256", crypto.Sha256(hello), "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"sha256 empty", crypto.Sha256(nil), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"md5", crypto.Md5(hello), "5d41402abc4b2a76b9719d911017c592"},
		{"keccak256 empty", crypto.Keccak256(nil), "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"keccak256", crypto.Keccak256(hello), "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}
	for _, v := range digests {
		if got := hex.EncodeToString(v.got); got != v.want {
			return mismatch(v.name, got, v.want)
		}
	}
	if len(crypto.Sha384(hello)) != 48 || len(crypto.Sha512(hello)) != 64 {
		return mismatch("sha384/sha512 size", "wrong", "48/64 bytes")
	}

	fox := []byte("The quick brown fox jumps over the lazy dog")
	key := []byte("key")
	macs := []struct {
		name string
		algo crypto.HashAlgo
		want string
	}{
		{"hmac-sha256", crypto.AlgoSha256, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8"},
		{"hmac-sha512", crypto.AlgoSha512, "b42af09057bac1e2d41708e48a902e09b5ff7f12ab428a4fe86653c73dd248fb82f948a549f7b791a5b41915ee4d1ec3935357e4e2317250d0372afa2ebeeb3a"},
		{"hmac-md5", crypto.AlgoMd5, "80070713463e7749b90c2dc24911e275"},
	}
	for _, v := range macs {
		if got := crypto.HmacHex(fox, key, v.algo); got != v.want {
			return mismatch(v.name, got, v.want)
		}
	}
	b64 := crypto.HmacBase64(fox, key, crypto.AlgoSha256)
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return err
	}
	if hex.EncodeToString(raw) != macs[0].want {
		return mismatch("hmac base64", hex.EncodeToString(raw), macs[0].want)
	}

	if got := crypto.Crc32(fox); got != 0x414fa339 {
		return mismatch("crc32", got, int32(0x414fa339))
	}

	priv := crypto.Sha256([]byte("base check secp256k1 key"))
	digest := crypto.Sha256(fox)
	sig, err := crypto.SignSecp256k1(digest, priv)
	if err != nil {
		return err
	}
	if err := crypto.VerifySecp256k1(digest, sig, crypto.Secp256k1Pubkey(priv)); err != nil {
		return err
	}
	der, err := crypto.SignSecp256k1DER(digest, priv)
	if err != nil {
		return err
	}
	if len(der) < 8 || der[0] != 0x30 {
		return mismatch("secp256k1 DER header", der[0], byte(0x30))
	}

	ethDigest := crypto.KeccakDigest(fox)
	rsig, err := crypto.SignRecoverable(ethDigest, priv)
	if err != nil {
		return err
	}
	if len(rsig) != 65 {
		return mismatch("recoverable signature size", len(rsig), 65)
	}
	pubkey, err := crypto.RecoverPubkey(ethDigest, rsig)
	if err != nil {
		return err
	}
	if !bytes.Equal(pubkey, crypto.Secp256k1Pubkey(priv)) {
		return mismatch("recovered pubkey", hex.EncodeToString(pubkey), hex.EncodeToString(crypto.Secp256k1Pubkey(priv)))
	}
	if err := crypto.VerifyRecoverable(pubkey, ethDigest, rsig); err != nil {
		return err
	}

	edPriv := ed25519.NewKeyFromSeed(crypto.Sha256([]byte("base check ed25519 seed")))
	edSig, err := crypto.SignEddsa(fox, edPriv)
	if err != nil {
		return err
	}
	if err := crypto.VerifyEddsa(fox, edSig, edPriv.Public().(ed25519.PublicKey)); err != nil {
		return err
	}

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	rsaSig, err := crypto.SignRsa256(fox, rsaKey)
	if err != nil {
		return err
	}
	if err := crypto.VerifyRsa256(fox, rsaSig, &rsaKey.PublicKey); err != nil {
		return err
	}

	token, err := crypto.Jwt(map[string]interface{}{"sub": "base"}, []byte("secret"), "HS256")
	if err != nil {
		return err
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return mismatch("jwt segments", len(parts), 3)
	}
	expected := crypto.Hmac([]byte(parts[0]+"."+parts[1]), []byte("secret"), crypto.AlgoSha256)
	sigPart, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return err
	}
	if !bytes.Equal(sigPart, expected) {
		return mismatch("jwt signature", hex.EncodeToString(sigPart), hex.EncodeToString(expected))
	}
	if _, err := crypto.Jwt(nil, []byte("secret"), "XX512"); err == nil {
		return mismatch("jwt unsupported algorithm", "no error", "error")
	}
	return nil
}

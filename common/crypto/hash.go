package crypto

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"hash/crc32"

	"golang.org/x/crypto/sha3"
)

// Sha256 returns the SHA-256 digest of the data
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Sha384 returns the SHA-384 digest of the data
func Sha384(data []byte) []byte {
	h := sha512.Sum384(data)
	return h[:]
}

// Sha512 returns the SHA-512 digest of the data
func Sha512(data []byte) []byte {
	h := sha512.Sum512(data)
	return h[:]
}

// Md5 returns the MD5 digest of the data
func Md5(data []byte) []byte {
	h := md5.Sum(data)
	return h[:]
}

// Keccak256 returns the legacy Keccak-256 digest of the data
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Crc32 returns the IEEE CRC-32 checksum of the data as a signed value
func Crc32(data []byte) int32 {
	return int32(crc32.ChecksumIEEE(data))
}

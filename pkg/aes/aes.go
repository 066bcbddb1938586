// Package aes implements the block cipher and non-authenticated mode
// wrappers (ECB/CBC/CFB/OFB/CTR) over FIPS-197 AES-128/192/256 (C8).
// The key schedule and single-block primitive are the standard
// library's crypto/aes. Only the mode wiring and the authenticated
// modes (aead.go) are this package's own.
package aes

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// BlockSize is the AES block size in bytes, fixed by FIPS-197
// regardless of key size.
const BlockSize = aes.BlockSize

// Cipher holds the expanded round keys for one AES key. It carries
// no mode state of its own: every mode
// wrapper takes its IV/counter explicitly from the caller, matching
// the data model's "keys and IVs are opaque octet blocks" invariant.
type Cipher struct {
	block   cipher.Block
	keyBits int
}

// NewCipher expands key into round keys. key must be 16, 24, or 32
// bytes (AES-128/192/256); any other length fails with
// sclerr.InvalidKey.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, sclerr.InvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, sclerr.InvalidKey
	}
	return &Cipher{block: block, keyBits: len(key) * 8}, nil
}

// KeyBits reports the key size this Cipher was constructed with (128,
// 192, or 256).
func (c *Cipher) KeyBits() int { return c.keyBits }

func checkBlockAligned(dst, src []byte) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return sclerr.InvalidLength
	}
	if len(dst) != len(src) {
		return sclerr.InvalidLength
	}
	return nil
}

// EncryptECB encrypts src into dst one block at a time, independently
// (SP 800-38A ECB). len(src) must be a nonzero multiple of BlockSize.
func (c *Cipher) EncryptECB(dst, src []byte) error {
	if err := checkBlockAligned(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += BlockSize {
		c.block.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}

// DecryptECB is the inverse of EncryptECB.
func (c *Cipher) DecryptECB(dst, src []byte) error {
	if err := checkBlockAligned(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += BlockSize {
		c.block.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}

// EncryptCBC encrypts src into dst under CBC with the given iv
// (SP 800-38A). len(iv) must be BlockSize; len(src) must be a nonzero
// multiple of BlockSize.
func (c *Cipher) EncryptCBC(iv, dst, src []byte) error {
	if len(iv) != BlockSize {
		return sclerr.InvalidLength
	}
	if err := checkBlockAligned(dst, src); err != nil {
		return err
	}
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(dst, src)
	return nil
}

// DecryptCBC is the inverse of EncryptCBC.
func (c *Cipher) DecryptCBC(iv, dst, src []byte) error {
	if len(iv) != BlockSize {
		return sclerr.InvalidLength
	}
	if err := checkBlockAligned(dst, src); err != nil {
		return err
	}
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(dst, src)
	return nil
}

func checkStreamLen(iv, dst, src []byte) error {
	if len(iv) != BlockSize {
		return sclerr.InvalidLength
	}
	if len(src) == 0 || len(dst) != len(src) {
		return sclerr.InvalidLength
	}
	return nil
}

// EncryptCFB encrypts src into dst under CFB (SP 800-38A), a stream
// mode with no block-alignment requirement.
func (c *Cipher) EncryptCFB(iv, dst, src []byte) error {
	if err := checkStreamLen(iv, dst, src); err != nil {
		return err
	}
	cipher.NewCFBEncrypter(c.block, iv).XORKeyStream(dst, src)
	return nil
}

// DecryptCFB is the inverse of EncryptCFB.
func (c *Cipher) DecryptCFB(iv, dst, src []byte) error {
	if err := checkStreamLen(iv, dst, src); err != nil {
		return err
	}
	cipher.NewCFBDecrypter(c.block, iv).XORKeyStream(dst, src)
	return nil
}

// CryptOFB applies OFB keystream XOR (SP 800-38A); OFB is symmetric,
// so the same call encrypts or decrypts.
func (c *Cipher) CryptOFB(iv, dst, src []byte) error {
	if err := checkStreamLen(iv, dst, src); err != nil {
		return err
	}
	cipher.NewOFB(c.block, iv).XORKeyStream(dst, src)
	return nil
}

// CryptCTR applies CTR keystream XOR (SP 800-38A); like OFB, CTR is
// symmetric between encrypt and decrypt.
func (c *Cipher) CryptCTR(iv, dst, src []byte) error {
	if err := checkStreamLen(iv, dst, src); err != nil {
		return err
	}
	cipher.NewCTR(c.block, iv).XORKeyStream(dst, src)
	return nil
}

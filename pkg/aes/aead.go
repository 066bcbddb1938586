package aes

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"

	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// SealGCM encrypts plaintext into dst and writes the authentication
// tag into tag (SP 800-38D). len(tag) selects the GCM tag size (12-16
// bytes); len(nonce) must match the underlying cipher.AEAD's nonce
// size (12 for standard GCM).
func (c *Cipher) SealGCM(dst, tag, nonce, plaintext, aad []byte) error {
	gcm, err := cipher.NewGCMWithTagSize(c.block, len(tag))
	if err != nil {
		return sclerr.InvalidLength
	}
	if len(nonce) != gcm.NonceSize() || len(dst) != len(plaintext) {
		return sclerr.InvalidLength
	}
	out := gcm.Seal(nil, nonce, plaintext, aad)
	copy(dst, out[:len(plaintext)])
	copy(tag, out[len(plaintext):])
	return nil
}

// OpenGCM verifies tag and, on success, decrypts ciphertext into dst.
// On a tag mismatch dst is zeroed and sclerr.InvalidTag is returned,
// matching the error-handling design's "AEAD decrypt failures zero the
// destination before returning" rule.
func (c *Cipher) OpenGCM(dst, nonce, ciphertext, tag, aad []byte) error {
	gcm, err := cipher.NewGCMWithTagSize(c.block, len(tag))
	if err != nil {
		return sclerr.InvalidLength
	}
	if len(nonce) != gcm.NonceSize() || len(dst) != len(ciphertext) {
		return sclerr.InvalidLength
	}
	combined := make([]byte, 0, len(ciphertext)+len(tag))
	combined = append(combined, ciphertext...)
	combined = append(combined, tag...)

	pt, err := gcm.Open(nil, nonce, combined, aad)
	if err != nil {
		zero(dst)
		return sclerr.InvalidTag
	}
	copy(dst, pt)
	return nil
}

// ccmA0 builds the CTR counter block (RFC 3610 / SP 800-38C "A_i")
// with counter 0: octet 0 holds L-1, the nonce fills the middle, and
// the trailing L octets (the counter field) start at zero.
func ccmA0(l int, nonce []byte) [BlockSize]byte {
	var a0 [BlockSize]byte
	a0[0] = byte(l - 1)
	copy(a0[1:BlockSize-l], nonce)
	return a0
}

// ccmMAC computes the raw (unmasked) CBC-MAC tag over the B_0 header
// block, the encoded AAD length + AAD, and the plaintext, per
// RFC 3610 §2.2. The caller XORs the result with S_0 to get the final
// tag.
func (c *Cipher) ccmMAC(l, m int, nonce, plaintext, aad []byte) []byte {
	var b0 [BlockSize]byte
	b0[0] = byte((m-2)/2) << 3
	b0[0] |= byte(l - 1)
	if len(aad) > 0 {
		b0[0] |= 1 << 6
	}
	copy(b0[1:BlockSize-l], nonce)
	putBigEndian(b0[BlockSize-l:], uint64(len(plaintext)))

	mac := make([]byte, BlockSize)
	c.block.Encrypt(mac, b0[:])

	if len(aad) > 0 {
		var lenPrefix []byte
		n := uint64(len(aad))
		switch {
		case n <= 0xfeff:
			lenPrefix = make([]byte, 2)
			binary.BigEndian.PutUint16(lenPrefix, uint16(n))
		case n < 1<<32:
			lenPrefix = make([]byte, 6)
			binary.BigEndian.PutUint16(lenPrefix[:2], 0xfffe)
			binary.BigEndian.PutUint32(lenPrefix[2:], uint32(n))
		default:
			lenPrefix = make([]byte, 10)
			binary.BigEndian.PutUint16(lenPrefix[:2], 0xffff)
			binary.BigEndian.PutUint64(lenPrefix[2:], n)
		}
		cbcMACAppend(c.block, mac, append(lenPrefix, aad...))
	}
	if len(plaintext) > 0 {
		cbcMACAppend(c.block, mac, plaintext)
	}
	return mac[:m]
}

// cbcMACAppend feeds data through CBC-MAC (zero-padding the final
// partial block), updating mac in place.
func cbcMACAppend(block cipher.Block, mac, data []byte) {
	var buf [BlockSize]byte
	for len(data) > 0 {
		n := copy(buf[:], data)
		for i := n; i < BlockSize; i++ {
			buf[i] = 0
		}
		for i := 0; i < BlockSize; i++ {
			mac[i] ^= buf[i]
		}
		block.Encrypt(mac, mac)
		data = data[n:]
	}
}

func putBigEndian(dst []byte, n uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(n)
		n >>= 8
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// SealCCM encrypts plaintext into dst and writes the tag (SP 800-38C /
// RFC 3610). len(tag) is CCM's M parameter (4-16, even); len(nonce)
// determines L = 15-len(nonce), which must land in [2, 8] (nonce
// 7-13 bytes).
func (c *Cipher) SealCCM(dst, tag, nonce, plaintext, aad []byte) error {
	m := len(tag)
	if m < 4 || m > 16 || m%2 != 0 {
		return sclerr.InvalidLength
	}
	l := 15 - len(nonce)
	if l < 2 || l > 8 {
		return sclerr.InvalidLength
	}
	if len(dst) != len(plaintext) {
		return sclerr.InvalidLength
	}

	rawTag := c.ccmMAC(l, m, nonce, plaintext, aad)

	a0 := ccmA0(l, nonce)
	var s0 [BlockSize]byte
	c.block.Encrypt(s0[:], a0[:])
	for i := range rawTag {
		tag[i] = rawTag[i] ^ s0[i]
	}

	ctrIV := a0
	ctrIV[BlockSize-1] |= 1
	cipher.NewCTR(c.block, ctrIV[:]).XORKeyStream(dst, plaintext)
	return nil
}

// OpenCCM verifies tag and, on success, decrypts ciphertext into dst.
// On a tag mismatch dst is zeroed and sclerr.InvalidTag is returned.
func (c *Cipher) OpenCCM(dst, nonce, ciphertext, tag, aad []byte) error {
	m := len(tag)
	if m < 4 || m > 16 || m%2 != 0 {
		return sclerr.InvalidLength
	}
	l := 15 - len(nonce)
	if l < 2 || l > 8 {
		return sclerr.InvalidLength
	}
	if len(dst) != len(ciphertext) {
		return sclerr.InvalidLength
	}

	a0 := ccmA0(l, nonce)
	ctrIV := a0
	ctrIV[BlockSize-1] |= 1
	cipher.NewCTR(c.block, ctrIV[:]).XORKeyStream(dst, ciphertext)

	rawTag := c.ccmMAC(l, m, nonce, dst, aad)
	var s0 [BlockSize]byte
	c.block.Encrypt(s0[:], a0[:])
	computed := make([]byte, m)
	for i := range computed {
		computed[i] = rawTag[i] ^ s0[i]
	}

	if subtle.ConstantTimeCompare(computed, tag) != 1 {
		zero(dst)
		return sclerr.InvalidTag
	}
	return nil
}

// Package hmac implements keyed-hash message authentication on top of
// package hash's streaming Context (C6). A Context does not take a
// caller's hash.Context: Init creates and owns its inner hash.Context,
// and Finish builds a fresh outer one.
package hmac

import (
	"context"

	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Context holds ipad/opad-derived key material (one block each) plus
// the mode and backend needed to rebuild the outer hash at Finish.
type Context struct {
	mode    hash.Mode
	backend hash.Backend
	ipadKey []byte
	opadKey []byte
	inner   *hash.Context
}

// Init derives the ipad/opad keys per the HMAC construction: keys
// longer than one block are hashed down first; shorter keys are
// zero-padded on the right to block size. The inner hash is started
// and fed ipad_key immediately. A nil backend selects hash.Software.
func Init(ctx context.Context, mode hash.Mode, backend hash.Backend, key []byte) (*Context, error) {
	blockSize, err := hash.BlockSize(mode)
	if err != nil {
		return nil, err
	}

	processed := key
	if len(key) > blockSize {
		digest, err := hash.Sum(ctx, mode, key)
		if err != nil {
			return nil, err
		}
		processed = digest
	}

	ipadKey := make([]byte, blockSize)
	opadKey := make([]byte, blockSize)
	copy(ipadKey, processed)
	copy(opadKey, processed)
	for i := range ipadKey {
		ipadKey[i] ^= ipadByte
		opadKey[i] ^= opadByte
	}

	inner, err := hash.Init(mode, backend)
	if err != nil {
		return nil, err
	}
	if err := inner.Core(ctx, ipadKey); err != nil {
		return nil, err
	}

	return &Context{mode: mode, backend: backend, ipadKey: ipadKey, opadKey: opadKey, inner: inner}, nil
}

// Core forwards p to the inner hash.
func (c *Context) Core(ctx context.Context, p []byte) error {
	if c == nil {
		return sclerr.InvalidInput
	}
	return c.inner.Core(ctx, p)
}

// Finish finalizes the inner hash, re-initializes the outer hash fed
// with opad_key then the inner digest, and returns the MAC truncated
// to macLen bytes. macLen must not exceed the hash's full digest size.
func (c *Context) Finish(ctx context.Context, macLen int) ([]byte, error) {
	if c == nil {
		return nil, sclerr.InvalidInput
	}
	innerDigest, err := c.inner.Finish(ctx)
	if err != nil {
		return nil, err
	}
	if macLen > len(innerDigest) {
		return nil, sclerr.InvalidLength
	}

	outer, err := hash.Init(c.mode, c.backend)
	if err != nil {
		return nil, err
	}
	if err := outer.Core(ctx, c.opadKey); err != nil {
		return nil, err
	}
	if err := outer.Core(ctx, innerDigest); err != nil {
		return nil, err
	}
	mac, err := outer.Finish(ctx)
	if err != nil {
		return nil, err
	}
	return mac[:macLen], nil
}

// Sum is a one-shot convenience wrapper computing HMAC(key, data) with
// the Software backend, truncated to macLen bytes.
func Sum(ctx context.Context, mode hash.Mode, key, data []byte, macLen int) ([]byte, error) {
	c, err := Init(ctx, mode, nil, key)
	if err != nil {
		return nil, err
	}
	if err := c.Core(ctx, data); err != nil {
		return nil, err
	}
	return c.Finish(ctx, macLen)
}

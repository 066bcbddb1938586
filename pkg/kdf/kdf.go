// Package kdf implements the ANSI X9.63 §3.6.1 counter-mode key
// derivation function on top of package hash (C6).
package kdf

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// Context records the shared-info octets and the hash mode/backend
// used to derive key material; it holds no streaming state of its own
// since each Derive call drives its own sequence of fresh hash
// contexts internally.
type Context struct {
	mode       hash.Mode
	backend    hash.Backend
	sharedInfo []byte
}

// Init records mode, backend (nil selects hash.Software), and the
// shared-info octets to be appended after the counter in every block.
func Init(mode hash.Mode, backend hash.Backend, sharedInfo []byte) (*Context, error) {
	if _, err := hash.Size(mode); err != nil {
		return nil, err
	}
	return &Context{mode: mode, backend: backend, sharedInfo: sharedInfo}, nil
}

// Derive produces derivedKeyLen bytes of key material from inputKey:
// for counter = 1, 2, ..., it hashes inputKey || counter_be32 ||
// sharedInfo and concatenates the blocks, returning the leading
// derivedKeyLen bytes of the concatenation.
func (c *Context) Derive(ctx context.Context, inputKey []byte, derivedKeyLen int) ([]byte, error) {
	if c == nil || derivedKeyLen < 0 {
		return nil, sclerr.InvalidInput
	}
	hashSize, err := hash.Size(c.mode)
	if err != nil {
		return nil, err
	}
	if uint64(derivedKeyLen) > uint64(math.MaxUint32)*uint64(hashSize) {
		return nil, sclerr.InvalidLength
	}

	out := make([]byte, 0, derivedKeyLen)
	var counterBytes [4]byte
	for counter := uint32(1); len(out) < derivedKeyLen; counter++ {
		binary.BigEndian.PutUint32(counterBytes[:], counter)

		hctx, err := hash.Init(c.mode, c.backend)
		if err != nil {
			return nil, err
		}
		if err := hctx.Core(ctx, inputKey); err != nil {
			return nil, err
		}
		if err := hctx.Core(ctx, counterBytes[:]); err != nil {
			return nil, err
		}
		if err := hctx.Core(ctx, c.sharedInfo); err != nil {
			return nil, err
		}
		block, err := hctx.Finish(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out[:derivedKeyLen], nil
}

// Derive is a one-shot convenience wrapper using the Software backend.
func Derive(ctx context.Context, mode hash.Mode, inputKey, sharedInfo []byte, derivedKeyLen int) ([]byte, error) {
	c, err := Init(mode, nil, sharedInfo)
	if err != nil {
		return nil, err
	}
	return c.Derive(ctx, inputKey, derivedKeyLen)
}

package hash

import (
	"context"
	"encoding/binary"

	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// Context is the mutable streaming state for one hash computation: the
// three-call init/core/finish contract. It is not safe for concurrent
// use by multiple goroutines.
type Context struct {
	mode    Mode
	info    modeInfo
	backend Backend

	state32 [8]uint32
	state64 [8]uint64

	buf     []byte // pending bytes shorter than one full block
	written uint64 // total input bytes absorbed so far, for the length suffix

	finished bool // set by Finish; further Core/Finish calls fail
}

// Init starts a new computation for mode, driven by backend. A nil
// backend selects Software.
func Init(mode Mode, backend Backend) (*Context, error) {
	info, err := lookupMode(mode)
	if err != nil {
		return nil, err
	}
	if backend == nil {
		backend = Software{}
	}
	c := &Context{mode: mode, info: info, backend: backend, buf: make([]byte, 0, info.blockSize)}
	if info.is64 {
		c.state64 = info.iv64
	} else {
		c.state32 = info.iv32
	}
	return c, nil
}

// Core absorbs len(p) bytes of message data. It may be called any
// number of times with arbitrarily sized chunks before Finish. ctx
// bounds any blocking the backend does internally (an HCA poll loop);
// it fails with sclerr.HWTimeout if that bound is exceeded. Core fails
// with sclerr.InvalidInput once Finish has been called: Finish
// invalidates the context.
func (c *Context) Core(ctx context.Context, p []byte) error {
	if c == nil || c.finished {
		return sclerr.InvalidInput
	}
	c.written += uint64(len(p))

	if len(c.buf) > 0 {
		need := c.info.blockSize - len(c.buf)
		if need > len(p) {
			c.buf = append(c.buf, p...)
			return nil
		}
		c.buf = append(c.buf, p[:need]...)
		if err := c.backend.CompressBlock(ctx, c.info.is64, &c.state32, &c.state64, c.buf); err != nil {
			return err
		}
		c.buf = c.buf[:0]
		p = p[need:]
	}

	for len(p) >= c.info.blockSize {
		if err := c.backend.CompressBlock(ctx, c.info.is64, &c.state32, &c.state64, p[:c.info.blockSize]); err != nil {
			return err
		}
		p = p[c.info.blockSize:]
	}

	c.buf = append(c.buf, p...)
	return nil
}

// Finish applies the FIPS 180-4 padding (a single 0x80 byte, zero
// fill, and a big-endian bit-length suffix) to the remaining partial
// block, absorbs the final block(s), and returns the output digest
// (truncated for SHA-224/384). Finish invalidates c: any further Core
// or Finish call fails with sclerr.InvalidInput.
func (c *Context) Finish(ctx context.Context) ([]byte, error) {
	if c == nil || c.finished {
		return nil, sclerr.InvalidInput
	}
	c.finished = true

	lenFieldSize := 8
	if c.info.is64 {
		lenFieldSize = 16
	}
	bitLen := c.written * 8

	pad := append(c.buf, 0x80)
	for (len(pad)+lenFieldSize)%c.info.blockSize != 0 {
		pad = append(pad, 0)
	}
	lenField := make([]byte, lenFieldSize)
	if lenFieldSize == 16 {
		binary.BigEndian.PutUint64(lenField[8:], bitLen)
	} else {
		binary.BigEndian.PutUint64(lenField, bitLen)
	}
	pad = append(pad, lenField...)

	for off := 0; off < len(pad); off += c.info.blockSize {
		if err := c.backend.CompressBlock(ctx, c.info.is64, &c.state32, &c.state64, pad[off:off+c.info.blockSize]); err != nil {
			return nil, err
		}
	}

	full := make([]byte, c.info.fullDigest)
	if c.info.is64 {
		for i, w := range c.state64 {
			binary.BigEndian.PutUint64(full[i*8:], w)
		}
	} else {
		for i, w := range c.state32 {
			binary.BigEndian.PutUint32(full[i*4:], w)
		}
	}
	return full[:c.info.outDigest], nil
}

// Sum is a one-shot convenience wrapper around Init/Core/Finish using
// the Software backend, which never blocks on ctx.
func Sum(ctx context.Context, mode Mode, data []byte) ([]byte, error) {
	c, err := Init(mode, nil)
	if err != nil {
		return nil, err
	}
	if err := c.Core(ctx, data); err != nil {
		return nil, err
	}
	return c.Finish(ctx)
}

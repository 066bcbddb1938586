package hash

import "context"

// Backend performs the compression step of the streaming engine: one
// full-size internal block in, one updated state out. Context drives a
// Backend without caring whether it runs in software or is forwarded
// to a memory-mapped accelerator (see package hwaccel, which
// implements this interface against a simulated HCA register set and
// can fail with sclerr.HWTimeout if its bounded poll loop expires).
type Backend interface {
	// CompressBlock absorbs exactly one block (64 bytes for SHA-224/256,
	// 128 bytes for SHA-384/512) into state. state32 is used when is64
	// is false, state64 otherwise; the unused half is left untouched.
	// ctx bounds any blocking the backend does (an HCA poll loop); the
	// Software backend ignores it, since it never blocks.
	CompressBlock(ctx context.Context, is64 bool, state32 *[8]uint32, state64 *[8]uint64, block []byte) error
}

// Software is the pure-Go Backend: the default, and the only backend
// this package depends on directly.
type Software struct{}

func (Software) CompressBlock(ctx context.Context, is64 bool, state32 *[8]uint32, state64 *[8]uint64, block []byte) error {
	if is64 {
		compress512(state64, block)
	} else {
		compress256(state32, block)
	}
	return nil
}

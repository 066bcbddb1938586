package hwaccel

import (
	"context"
	"time"

	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/log"
)

// Backend adapts a Device to hash.Backend: CompressBlock submits the
// block, runs the simulated device, and polls for completion bounded
// by the caller's ctx before reading the digest back out, exactly as
// the engine's concurrency model requires of the HCA path.
type Backend struct {
	Device *Device

	// compute is the software math actually run "inside" the simulated
	// device; a real target wires each half to the SoC's accelerator
	// instead. The simulator must still produce byte-identical digests.
	compute hash.Software

	// Logger receives HCA poll-timeout diagnostics; defaults to
	// log.Module("hwaccel") if left nil.
	Logger log.Logger
}

// NewBackend returns a Backend driving a fresh Device.
func NewBackend() *Backend {
	return &Backend{Device: NewDevice(), Logger: log.Module("hwaccel")}
}

func (b *Backend) CompressBlock(ctx context.Context, is64 bool, state32 *[8]uint32, state64 *[8]uint64, block []byte) error {
	b.Device.Reset()
	if is64 {
		b.Device.digest64 = *state64
	} else {
		b.Device.digest32 = *state32
	}
	b.Device.submitBlock(is64, block,
		func(s *[8]uint32, blk []byte) { _ = b.compute.CompressBlock(ctx, false, s, nil, blk) },
		func(s *[8]uint64, blk []byte) { _ = b.compute.CompressBlock(ctx, true, nil, s, blk) },
	)

	start := time.Now()
	if err := b.Device.PollStatus(ctx); err != nil {
		if b.Logger != nil {
			log.HCATimeout(b.Logger, "hwaccel.CompressBlock", time.Since(start))
		}
		return err
	}

	if is64 {
		*state64 = b.Device.digest64
	} else {
		*state32 = b.Device.digest32
	}
	return nil
}

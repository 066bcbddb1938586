// Package hwaccel simulates a memory-mapped hash accelerator (HCA): a
// FIFO input register, a status register polled in a bounded loop, and
// a digest-readback register set, modeled after the job-submit/poll
// shape of the usbarmory/tamago CAAM driver. It implements
// hash.Backend so package hash's Context can drive either this
// simulator or the pure-software path without knowing which.
package hwaccel

import (
	"context"
	"time"

	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// statusBit mirrors the single DONE bit a real HCA would expose in its
// status register; the simulator sets it synchronously since there is
// no real asynchronous device to wait on.
type statusBit uint32

const (
	statusIdle statusBit = 0
	statusDone statusBit = 1
)

// Device models the MMIO register file of a hash accelerator: a block
// FIFO, a status register, and per-word digest output registers. All
// fields simulate volatile hardware registers; real target code would
// back this struct with pointers into a device's memory-mapped region
// instead of plain Go fields.
type Device struct {
	// PollInterval is how often the simulated poll loop rechecks the
	// status register. Real hardware would spin without a ticker; the
	// ticker exists here purely to make the bounded-timeout poll loop
	// genuinely exercise the context passed to it.
	PollInterval time.Duration

	fifo   []byte
	status statusBit
	digest32 [8]uint32
	digest64 [8]uint64
}

// NewDevice returns a Device ready to accept blocks.
func NewDevice() *Device {
	return &Device{PollInterval: time.Microsecond}
}

// PollStatus blocks until the status register reads Done, the context
// is canceled, or the context's deadline passes, mirroring the HCA
// poll loop named in the engine's concurrency model: the only bounded
// blocking point at the API surface, which must fail with
// sclerr.HWTimeout rather than loop forever.
func (d *Device) PollStatus(ctx context.Context) error {
	interval := d.PollInterval
	if interval <= 0 {
		interval = time.Microsecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if d.status == statusDone {
			return nil
		}
		select {
		case <-ctx.Done():
			return sclerr.HWTimeout
		case <-ticker.C:
		}
	}
}

// submitBlock writes one block to the FIFO register and runs the
// compression, simulating the write-then-poll protocol: the device
// computes synchronously but still reports status through the same
// PollStatus path every real caller must use.
func (d *Device) submitBlock(is64 bool, block []byte, compress32 func(*[8]uint32, []byte), compress64 func(*[8]uint64, []byte)) {
	d.fifo = append(d.fifo[:0], block...)
	if is64 {
		compress64(&d.digest64, d.fifo)
	} else {
		compress32(&d.digest32, d.fifo)
	}
	d.status = statusDone
}

// Reset clears the status register, matching the HCA finalize-and-
// rearm step a driver performs between independent hash computations.
func (d *Device) Reset() {
	d.status = statusIdle
}

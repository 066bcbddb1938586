package hwaccel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// TestBackendMatchesSoftware checks that driving a hash.Context through
// the simulated HCA backend produces byte-identical digests to the
// pure-software backend, for both the 32-bit and 64-bit word paths.
func TestBackendMatchesSoftware(t *testing.T) {
	ctx := context.Background()
	msg := []byte("the quick brown fox jumps over the lazy dog, repeated enough to cross a block boundary")

	for _, mode := range []hash.Mode{hash.SHA256, hash.SHA512} {
		want, err := hash.Sum(ctx, mode, msg)
		if err != nil {
			t.Fatalf("mode %d: software Sum: %v", mode, err)
		}

		hwCtx, err := hash.Init(mode, NewBackend())
		if err != nil {
			t.Fatalf("mode %d: Init: %v", mode, err)
		}
		if err := hwCtx.Core(ctx, msg); err != nil {
			t.Fatalf("mode %d: Core: %v", mode, err)
		}
		got, err := hwCtx.Finish(ctx)
		if err != nil {
			t.Fatalf("mode %d: Finish: %v", mode, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("mode %d: hwaccel digest %x != software digest %x", mode, got, want)
		}
	}
}

// TestPollStatusTimesOutWhenNeverDone exercises the bounded poll loop
// directly: a Device whose status register is never marked Done must
// fail with sclerr.HWTimeout once the context expires, not hang.
func TestPollStatusTimesOutWhenNeverDone(t *testing.T) {
	d := NewDevice()
	d.PollInterval = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.PollStatus(ctx)
	if err != sclerr.HWTimeout {
		t.Fatalf("PollStatus on a never-done device: got %v, want sclerr.HWTimeout", err)
	}
}

// TestPollStatusReturnsOnceDone confirms the happy path: once the
// simulated device's status register is set, PollStatus returns
// immediately without waiting for the context to expire.
func TestPollStatusReturnsOnceDone(t *testing.T) {
	d := NewDevice()
	d.PollInterval = time.Millisecond
	d.status = statusDone

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.PollStatus(ctx); err != nil {
		t.Fatalf("PollStatus on a done device: %v", err)
	}
}

package backend

import (
	"bytes"
	"context"
	"testing"

	"github.com/rvcrypto/sclcore/pkg/ecc"
	"github.com/rvcrypto/sclcore/pkg/ecdsa"
	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/hwaccel"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

func TestSoftwareHandleDrivesHashEngine(t *testing.T) {
	h := NewSoftware(DefaultConfig())
	ctx := context.Background()

	c, err := hash.Init(hash.SHA256, h)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := c.Core(ctx, []byte("hello")); err != nil {
		t.Fatalf("Core: %v", err)
	}
	got, err := c.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want, err := hash.Sum(ctx, hash.SHA256, []byte("hello"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("backend-driven digest %x != direct digest %x", got, want)
	}
}

func TestHardwareAcceleratedHandleMatchesSoftware(t *testing.T) {
	ctx := context.Background()
	h := NewHardwareAccelerated(DefaultConfig(), hwaccel.NewBackend())

	c, err := hash.Init(hash.SHA512, h)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := c.Core(ctx, []byte("a message long enough to cross a block boundary in sha-512")); err != nil {
		t.Fatalf("Core: %v", err)
	}
	got, err := c.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want, err := hash.Sum(ctx, hash.SHA512, []byte("a message long enough to cross a block boundary in sha-512"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("hardware-accelerated digest %x != software digest %x", got, want)
	}
}

func TestNilEntryPointsFailWithAPIEntryPoint(t *testing.T) {
	h := &Handle{}
	ctx := context.Background()

	var s32 [8]uint32
	if err := h.CompressBlock(ctx, false, &s32, nil, make([]byte, 64)); err != sclerr.APIEntryPoint {
		t.Errorf("CompressBlock with nil Hash: got %v, want sclerr.APIEntryPoint", err)
	}
	if _, err := h.NewCipher(make([]byte, 16)); err != sclerr.APIEntryPoint {
		t.Errorf("NewCipher with nil Cipher: got %v, want sclerr.APIEntryPoint", err)
	}
	if _, err := h.Sign(ctx, nil, nil, nil, nil); err != sclerr.APIEntryPoint {
		t.Errorf("Sign with nil Signer: got %v, want sclerr.APIEntryPoint", err)
	}
	if err := h.Verify(nil, ecc.Affine{}, ecdsa.Signature{}, nil); err != sclerr.APIEntryPoint {
		t.Errorf("Verify with nil Signer: got %v, want sclerr.APIEntryPoint", err)
	}
	if _, err := h.ECDH(nil, nil, ecc.Affine{}); err != sclerr.APIEntryPoint {
		t.Errorf("ECDH with nil Signer: got %v, want sclerr.APIEntryPoint", err)
	}
}

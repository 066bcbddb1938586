// Package backend realizes the engine's "backend dispatch table" as a
// caller-constructed struct of interfaces instead of the source's
// process-wide function-pointer table: a Handle is built once (all
// software, or hash dispatched to an HCA) and passed to whichever
// component needs it. A nil entry point fails the call with
// sclerr.APIEntryPoint, preserving the source's ERROR_API_ENTRY_POINT
// semantics without a global variable.
package backend

import (
	"context"
	"time"

	"github.com/rvcrypto/sclcore/pkg/aes"
	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
	"github.com/rvcrypto/sclcore/pkg/ecc"
	"github.com/rvcrypto/sclcore/pkg/ecdsa"
	"github.com/rvcrypto/sclcore/pkg/hash"
	"github.com/rvcrypto/sclcore/pkg/log"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
	"github.com/rvcrypto/sclcore/pkg/trng"
)

// Config mirrors the source's metal_scl_t context struct, translated
// into an explicit, caller-owned collaborator: the HCA's poll timeout
// and the TRNG's retry ceiling, rather than process-wide globals.
type Config struct {
	HCAPollTimeout   time.Duration
	TRNGRetryCeiling int
}

// DefaultConfig returns this module's conservative defaults.
func DefaultConfig() Config {
	return Config{TRNGRetryCeiling: trng.DefaultRetryCeiling}
}

// CipherBackend is the AES engine's software/hardware seam: Software
// wraps package aes directly. No hardware AES accelerator is
// implemented by this module, but a real target's driver would
// satisfy this interface the same way hwaccel.Backend satisfies
// hash.Backend.
type CipherBackend interface {
	NewCipher(key []byte) (*aes.Cipher, error)
}

type softwareCipherBackend struct{}

func (softwareCipherBackend) NewCipher(key []byte) (*aes.Cipher, error) {
	return aes.NewCipher(key)
}

// SignBackend is the ECDSA/ECDH engine's software/hardware seam.
type SignBackend interface {
	Sign(ctx context.Context, p *curve.Params, d bignum.Int, h []byte, src trng.Source) (ecdsa.Signature, error)
	Verify(p *curve.Params, Q ecc.Affine, sig ecdsa.Signature, h []byte) error
	ECDH(p *curve.Params, priv bignum.Int, peerPub ecc.Affine) (bignum.Int, error)
}

type softwareSignBackend struct{}

func (softwareSignBackend) Sign(ctx context.Context, p *curve.Params, d bignum.Int, h []byte, src trng.Source) (ecdsa.Signature, error) {
	return ecdsa.Sign(ctx, p, d, h, src)
}

func (softwareSignBackend) Verify(p *curve.Params, Q ecc.Affine, sig ecdsa.Signature, h []byte) error {
	return ecdsa.Verify(p, Q, sig, h)
}

func (softwareSignBackend) ECDH(p *curve.Params, priv bignum.Int, peerPub ecc.Affine) (bignum.Int, error) {
	return ecdsa.ECDH(p, priv, peerPub)
}

// Handle is the realized backend dispatch table, constructed once and
// passed by the caller to whichever component needs it.
type Handle struct {
	Hash   hash.Backend
	Cipher CipherBackend
	Signer SignBackend

	Config Config
	Logger log.Logger
}

// NewSoftware returns a Handle wired entirely to this module's
// software implementations — the default for a hosted build or any
// target without an HCA.
func NewSoftware(cfg Config) *Handle {
	l := log.Module("backend")
	log.BackendSelected(l, "all", "software")
	return &Handle{
		Hash:   hash.Software{},
		Cipher: softwareCipherBackend{},
		Signer: softwareSignBackend{},
		Config: cfg,
		Logger: l,
	}
}

// NewHardwareAccelerated returns a Handle whose hash component is
// dispatched to hca (pkg/hwaccel's simulator, or a real MMIO driver on
// target); AES and ECDSA/ECDH remain software, since the HCA register
// set this module targets covers only the hash engine.
func NewHardwareAccelerated(cfg Config, hca hash.Backend) *Handle {
	l := log.Module("backend")
	log.BackendSelected(l, "hash", "hardware")
	log.BackendSelected(l, "cipher+sign", "software")
	return &Handle{
		Hash:   hca,
		Cipher: softwareCipherBackend{},
		Signer: softwareSignBackend{},
		Config: cfg,
		Logger: l,
	}
}

// CompressBlock forwards to h.Hash; Handle itself satisfies
// hash.Backend so it can be passed directly to hash.Init.
func (h *Handle) CompressBlock(ctx context.Context, is64 bool, state32 *[8]uint32, state64 *[8]uint64, block []byte) error {
	if h.Hash == nil {
		return sclerr.APIEntryPoint
	}
	return h.Hash.CompressBlock(ctx, is64, state32, state64, block)
}

// NewCipher forwards to h.Cipher.
func (h *Handle) NewCipher(key []byte) (*aes.Cipher, error) {
	if h.Cipher == nil {
		return nil, sclerr.APIEntryPoint
	}
	return h.Cipher.NewCipher(key)
}

// Sign forwards to h.Signer.Sign.
func (h *Handle) Sign(ctx context.Context, p *curve.Params, d bignum.Int, hData []byte, src trng.Source) (ecdsa.Signature, error) {
	if h.Signer == nil {
		return ecdsa.Signature{}, sclerr.APIEntryPoint
	}
	return h.Signer.Sign(ctx, p, d, hData, src)
}

// Verify forwards to h.Signer.Verify.
func (h *Handle) Verify(p *curve.Params, Q ecc.Affine, sig ecdsa.Signature, hData []byte) error {
	if h.Signer == nil {
		return sclerr.APIEntryPoint
	}
	return h.Signer.Verify(p, Q, sig, hData)
}

// ECDH forwards to h.Signer.ECDH.
func (h *Handle) ECDH(p *curve.Params, priv bignum.Int, peerPub ecc.Affine) (bignum.Int, error) {
	if h.Signer == nil {
		return nil, sclerr.APIEntryPoint
	}
	return h.Signer.ECDH(p, priv, peerPub)
}

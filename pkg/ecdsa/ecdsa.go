// Package ecdsa implements signing and verification against (bignum,
// curve, ecc), the TRNG gate, and the hash engine (C5), plus ECDH shared-
// secret derivation built on the same primitives.
package ecdsa

import (
	"context"

	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
	"github.com/rvcrypto/sclcore/pkg/ecc"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
	"github.com/rvcrypto/sclcore/pkg/trng"
)

// Signature is the raw (r, s) pair as curve-word-sized bignum.Int values.
// This type carries no octet or ASN.1/DER encoding of them.
type Signature struct {
	R, S bignum.Int
}

// validHashLen enforces the hash-length policy: hLen must be one of
// {28, 32, 48, 64} and, for every curve but SECP521R1, must be at least
// curve.ByteSize (a signing-strength guard against pairing a weak hash
// with a strong curve). SECP521R1 is explicitly exempted: SHA-512's 64
// bytes is accepted even though 64 < 66.
func validHashLen(p *curve.Params, hLen int) error {
	switch hLen {
	case 28, 32, 48, 64:
	default:
		return sclerr.HashLenInvalid
	}
	if p.ByteSize > hLen && p.Name != curve.SECP521R1 {
		return sclerr.HashLenInvalid
	}
	return nil
}

// hashToScalar truncates h to the leftmost L bytes if longer, or zero-
// extends on the left if shorter, then interprets the result as a big-
// endian L-byte integer (L = curve.ByteSize).
func hashToScalar(p *curve.Params, h []byte) bignum.Int {
	L := p.ByteSize
	var trimmed []byte
	if len(h) > L {
		trimmed = h[:L]
	} else {
		trimmed = h
	}
	return bignum.FromBytesBE(trimmed, p.WordSize)
}

// Sign computes an ECDSA signature over digest h using private scalar
// d. d is a curve-word-sized bignum.Int; h is the message digest
// octets.
func Sign(ctx context.Context, p *curve.Params, d bignum.Int, h []byte, src trng.Source) (Signature, error) {
	if d == nil || h == nil {
		return Signature{}, sclerr.InvalidInput
	}
	if err := validHashLen(p, len(h)); err != nil {
		return Signature{}, err
	}

	nField := p.OrderField
	one := bignum.New(p.WordSize)
	one[0] = 1
	nMinus1 := bignum.New(p.WordSize)
	bignum.Sub(nMinus1, p.N, one)

	e := nField.Reduce(hashToScalar(p, h))
	g := ecc.Affine{X: p.Gx, Y: p.Gy}

	for attempt := 0; attempt < trng.DefaultRetryCeiling; attempt++ {
		k, err := trng.RejectionBignum(ctx, src, one, nMinus1, trng.DefaultRetryCeiling)
		if err != nil {
			return Signature{}, err
		}

		pt, err := ecc.MultCoZ(p, g, k)
		if err != nil {
			return Signature{}, err
		}
		r := nField.Reduce(pt.X)
		if bignum.IsZero(r) {
			continue
		}

		kInv, err := nField.Inv(k)
		if err != nil {
			continue
		}
		rd := nField.Mul(r, d)
		sum := nField.Add(e, rd)
		s := nField.Mul(kInv, sum)
		if bignum.IsZero(s) {
			continue
		}

		return Signature{R: r, S: s}, nil
	}
	return Signature{}, sclerr.RNGError
}

// Verify checks signature sig over digest h against public point Q.
func Verify(p *curve.Params, Q ecc.Affine, sig Signature, h []byte) error {
	if h == nil {
		return sclerr.InvalidInput
	}
	if err := validHashLen(p, len(h)); err != nil {
		return err
	}

	one := bignum.New(p.WordSize)
	one[0] = 1
	nMinus1 := bignum.New(p.WordSize)
	bignum.Sub(nMinus1, p.N, one)

	if bignum.Compare(sig.R, one) < 0 || bignum.Compare(sig.R, nMinus1) > 0 {
		return sclerr.InvalidSignature
	}
	if bignum.Compare(sig.S, one) < 0 || bignum.Compare(sig.S, nMinus1) > 0 {
		return sclerr.InvalidSignature
	}

	if err := ecc.PointOnCurve(p, Q); err != nil {
		return sclerr.InvalidKey
	}

	nField := p.OrderField
	e := nField.Reduce(hashToScalar(p, h))

	w, err := nField.Inv(sig.S)
	if err != nil {
		return sclerr.InvalidSignature
	}
	u1 := nField.Mul(e, w)
	u2 := nField.Mul(sig.R, w)

	g := ecc.Affine{X: p.Gx, Y: p.Gy}
	p1, err := ecc.MultCoZ(p, g, u1)
	if err != nil {
		return sclerr.InvalidSignature
	}
	p2, err := ecc.MultCoZ(p, Q, u2)
	if err != nil {
		return sclerr.InvalidSignature
	}

	sum := ecc.Add(p, ecc.ToJacobian(p, p1), ecc.ToJacobian(p, p2))
	if sum.IsInfinity() {
		return sclerr.InvalidSignature
	}
	result, err := sum.ToAffine(p)
	if err != nil {
		return sclerr.InvalidSignature
	}

	x1 := nField.Reduce(result.X)
	if bignum.Compare(x1, sig.R) != 0 {
		return sclerr.InvalidSignature
	}
	return nil
}

// ECDH computes the shared secret's raw x-coordinate for a private
// scalar and a peer's public point, curve-generic, matching
// original_source/src/backend/software/asymmetric/ecc/soft_ecdh.c's
// mult_coz(priv, peer_pub).x.
func ECDH(p *curve.Params, priv bignum.Int, peerPub ecc.Affine) (bignum.Int, error) {
	if err := ecc.PointOnCurve(p, peerPub); err != nil {
		return nil, sclerr.InvalidKey
	}
	shared, err := ecc.MultCoZ(p, peerPub, priv)
	if err != nil {
		return nil, err
	}
	return shared.X, nil
}

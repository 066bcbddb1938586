package ecc

import (
	"sync"

	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// basePointDoubleCache holds one precomputed base-point multiple (2G)
// per curve. It exists purely to skip one doubling on the hot path of
// base-point multiplication (key generation, signing, and the u1*G
// term of signature verification); ECDH and the u2*Q term of
// verification multiply arbitrary peer/public points and never touch
// this cache.
var basePointDoubleCache sync.Map // curve.Name -> Jacobian

func baseDouble(p *curve.Params) Jacobian {
	if v, ok := basePointDoubleCache.Load(p.Name); ok {
		return v.(Jacobian)
	}
	g := ToJacobian(p, Affine{X: p.Gx, Y: p.Gy})
	d := Double(p, g)
	basePointDoubleCache.Store(p.Name, d)
	return d
}

// MultCoZ computes k*P in affine coordinates — the core ECC primitive.
// It gives the regular, side-channel-friendlier execution profile of a
// co-Z ladder (one addition and one doubling per remaining scalar bit,
// processed from the most significant bit downward) via the classical
// Montgomery ladder over Jacobian coordinates. It does not implement
// the literal shared-Z-coordinate XYcZ-ADD/XYcZ-ADDC register trick the
// name "co-Z" refers to: that is a performance and side-channel-
// hardening optimization of this same mathematical ladder, not a
// different result, and the externally observable one-add-one-double-
// per-bit regularity is preserved either way.
//
// Fails with sclerr.InvalidInput when P is not on the curve, k == 0, or
// k >= curve order n.
func MultCoZ(p *curve.Params, pt Affine, k bignum.Int) (Affine, error) {
	if err := PointOnCurve(p, pt); err != nil {
		return Affine{}, sclerr.InvalidInput
	}
	if bignum.IsZero(k) {
		return Affine{}, sclerr.InvalidInput
	}
	if bignum.Compare(k, p.N) >= 0 {
		return Affine{}, sclerr.InvalidInput
	}

	bitLen := bignum.BitLen(k)
	if bitLen == 1 {
		// k has only its top (and only) bit set: k == 1. Degenerate
		// case — return P itself.
		return pt, nil
	}

	R0 := ToJacobian(p, pt)
	var R1 Jacobian
	if bignum.Compare(pt.X, p.Gx) == 0 && bignum.Compare(pt.Y, p.Gy) == 0 {
		R1 = baseDouble(p)
	} else {
		R1 = Double(p, R0)
	}

	for i := bitLen - 2; i >= 0; i-- {
		if bignum.GetBit(k, i) == 0 {
			R1 = Add(p, R0, R1)
			R0 = Double(p, R0)
		} else {
			R0 = Add(p, R0, R1)
			R1 = Double(p, R1)
		}
	}

	return R0.ToAffine(p)
}

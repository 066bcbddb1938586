// Package ecc implements Jacobian and affine point arithmetic over the
// curves in package curve, including the regular-structure scalar ladder
// that is the core primitive of the asymmetric layer (C4).
package ecc

import (
	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// Affine is an (x, y) point in curve-word-array form. Conversion to and
// from the big-endian octet strings that cross the public API boundary
// is package bignum's job (FromBytesBE/ToBytesBE), not this package's —
// ecc only ever sees already-parsed coordinates.
type Affine struct {
	X, Y bignum.Int
}

// Jacobian is (X, Y, Z) with affine equivalent (X/Z^2, Y/Z^3). Z == 0
// represents the point at infinity, which has no affine form.
type Jacobian struct {
	X, Y, Z bignum.Int
}

// Infinity returns the point at infinity for a curve of the given word
// size.
func Infinity(wordSize int) Jacobian {
	return Jacobian{X: bignum.New(wordSize), Y: bignum.New(wordSize), Z: bignum.New(wordSize)}
}

// IsInfinity reports whether j represents the point at infinity.
func (j Jacobian) IsInfinity() bool { return bignum.IsZero(j.Z) }

// ToJacobian lifts an affine point with Z = 1.
func ToJacobian(p *curve.Params, a Affine) Jacobian {
	one := bignum.New(p.WordSize)
	one[0] = 1
	return Jacobian{X: a.X.Clone(), Y: a.Y.Clone(), Z: one}
}

// ToAffine projects j back to affine form, failing on the point at
// infinity (Z = 0).
func (j Jacobian) ToAffine(p *curve.Params) (Affine, error) {
	if j.IsInfinity() {
		return Affine{}, sclerr.NotOnCurve
	}
	f := p.Field
	zInv, err := f.Inv(j.Z)
	if err != nil {
		return Affine{}, sclerr.NotOnCurve
	}
	zInv2 := f.Square(zInv)
	zInv3 := f.Mul(zInv2, zInv)
	return Affine{
		X: f.Mul(j.X, zInv2),
		Y: f.Mul(j.Y, zInv3),
	}, nil
}

// IsOnCurve reports whether a satisfies y^2 = x^3 + Ax + B mod P.
func IsOnCurve(p *curve.Params, a Affine) bool {
	f := p.Field
	y2 := f.Square(a.Y)
	x3 := f.Mul(f.Square(a.X), a.X)
	ax := f.Mul(p.A, a.X)
	rhs := f.Add(f.Add(x3, ax), p.B)
	return bignum.Compare(y2, rhs) == 0
}

// PointOnCurve is IsOnCurve wrapped in the component's error contract:
// the point at infinity (conventionally X=Y=0 here) and any point failing
// the curve equation both fail with sclerr.NotOnCurve.
func PointOnCurve(p *curve.Params, a Affine) error {
	if bignum.IsZero(a.X) && bignum.IsZero(a.Y) {
		return sclerr.NotOnCurve
	}
	if !IsOnCurve(p, a) {
		return sclerr.NotOnCurve
	}
	return nil
}

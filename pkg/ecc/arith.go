package ecc

import (
	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
)

// Jacobian point doubling and addition use the general short-Weierstrass
// formulas (dbl-2007-bl / add-2007-bl, as catalogued on the Explicit-
// Formulas Database) that hold for any curve coefficient A — secp256k1's
// A = 0 needs no special case, unlike the A = -3 shortcut some libraries
// take for the NIST curves.

func mulSmall(f bignum.Field, x bignum.Int, k int) bignum.Int {
	acc := x
	for i := 1; i < k; i++ {
		acc = f.Add(acc, x)
	}
	return acc
}

// Double computes 2*P in Jacobian coordinates.
func Double(p *curve.Params, P Jacobian) Jacobian {
	f := p.Field
	if P.IsInfinity() || bignum.IsZero(P.Y) {
		return Infinity(p.WordSize)
	}
	X1, Y1, Z1 := P.X, P.Y, P.Z

	Y1Y1 := f.Square(Y1)
	S := mulSmall(f, f.Mul(X1, Y1Y1), 4)
	Z1Z1 := f.Square(Z1)
	Z1Z1Z1Z1 := f.Square(Z1Z1)
	M := f.Add(mulSmall(f, f.Square(X1), 3), f.Mul(p.A, Z1Z1Z1Z1))

	X3 := f.Sub(f.Square(M), mulSmall(f, S, 2))
	Y1Y1Y1Y1 := f.Square(Y1Y1)
	Y3 := f.Sub(f.Mul(M, f.Sub(S, X3)), mulSmall(f, Y1Y1Y1Y1, 8))
	Z3 := mulSmall(f, f.Mul(Y1, Z1), 2)

	return Jacobian{X: X3, Y: Y3, Z: Z3}
}

// Add computes P + Q in Jacobian coordinates, falling back to Double when
// P == Q and to the point at infinity when P == -Q.
func Add(p *curve.Params, P, Q Jacobian) Jacobian {
	f := p.Field
	if P.IsInfinity() {
		return Q
	}
	if Q.IsInfinity() {
		return P
	}

	Z1Z1 := f.Square(P.Z)
	Z2Z2 := f.Square(Q.Z)
	U1 := f.Mul(P.X, Z2Z2)
	U2 := f.Mul(Q.X, Z1Z1)
	S1 := f.Mul(P.Y, f.Mul(Q.Z, Z2Z2))
	S2 := f.Mul(Q.Y, f.Mul(P.Z, Z1Z1))

	H := f.Sub(U2, U1)
	if bignum.IsZero(H) {
		if bignum.Compare(S1, S2) == 0 {
			return Double(p, P)
		}
		return Infinity(p.WordSize)
	}

	I := f.Square(mulSmall(f, H, 2))
	J := f.Mul(H, I)
	r := mulSmall(f, f.Sub(S2, S1), 2)
	V := f.Mul(U1, I)

	X3 := f.Sub(f.Sub(f.Square(r), J), mulSmall(f, V, 2))
	Y3 := f.Sub(f.Mul(r, f.Sub(V, X3)), mulSmall(f, f.Mul(S1, J), 2))
	zSum := f.Square(f.Add(P.Z, Q.Z))
	Z3 := f.Mul(f.Sub(f.Sub(zSum, Z1Z1), Z2Z2), H)

	return Jacobian{X: X3, Y: Y3, Z: Z3}
}

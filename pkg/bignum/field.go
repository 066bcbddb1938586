package bignum

import "github.com/rvcrypto/sclcore/pkg/sclerr"

// Field is a modulus installed explicitly on a value, replacing the
// source library's process-wide "installed modulus" pointer (Design
// Notes §9 flags this as a global-state escape hatch to avoid; every
// Field-typed value here carries its own P, so two Fields over different
// curves can be used concurrently without interfering with each other).
type Field struct {
	P Int // odd prime modulus, curve.word_size words
}

// NewField installs p as a field modulus.
func NewField(p Int) Field { return Field{P: p.Clone()} }

// Reduce computes a mod f.P, returning a value of len(f.P) words.
func (f Field) Reduce(a Int) Int {
	r, err := Mod(a, f.P)
	if err != nil {
		// f.P is never zero for a validly constructed Field; a zero
		// modulus here means the caller built a Field incorrectly.
		panic("bignum: field modulus is zero")
	}
	return r
}

// Add computes (a + b) mod f.P. a and b must already be reduced
// (0 <= a, b < f.P) and of length len(f.P).
func (f Field) Add(a, b Int) Int {
	n := len(f.P)
	wide := make(Int, n+1)
	carry := Add(wide[:n], a, b)
	wide[n] = carry
	out := make(Int, n)
	if carry != 0 || Compare(wide[:n], f.P) >= 0 {
		Sub(out, wide[:n], f.P)
		return out
	}
	copy(out, wide[:n])
	return out
}

// Sub computes (a - b) mod f.P.
func (f Field) Sub(a, b Int) Int {
	n := len(f.P)
	out := make(Int, n)
	borrow := Sub(out, a, b)
	if borrow != 0 {
		Add(out, out, f.P)
	}
	return out
}

// Mul computes (a * b) mod f.P.
func (f Field) Mul(a, b Int) Int {
	n := len(f.P)
	prod := make(Int, 2*n)
	Mult(prod, a, b)
	return f.Reduce(prod)
}

// Square computes (a * a) mod f.P.
func (f Field) Square(a Int) Int {
	return f.Mul(a, a)
}

// signed is an internal bignum with an explicit sign, used only for the
// bookkeeping coefficients of the extended binary gcd below. It is not a
// general-purpose signed-integer type: magnitudes are assumed bounded by
// 2*f.P throughout, matching the algorithm's own invariant.
type signed struct {
	neg bool
	mag Int
}

func zeroSigned(n int) signed { return signed{mag: make(Int, n)} }

func (s signed) isEven() bool { return GetBit(s.mag, 0) == 0 }

func addSigned(a, b signed) signed {
	n := len(a.mag)
	out := signed{mag: make(Int, n)}
	if a.neg == b.neg {
		Add(out.mag, a.mag, b.mag)
		out.neg = a.neg
	} else if Compare(a.mag, b.mag) >= 0 {
		Sub(out.mag, a.mag, b.mag)
		out.neg = a.neg
	} else {
		Sub(out.mag, b.mag, a.mag)
		out.neg = b.neg
	}
	if IsZero(out.mag) {
		out.neg = false
	}
	return out
}

func subSigned(a, b signed) signed {
	flipped := signed{neg: !b.neg, mag: b.mag}
	if IsZero(flipped.mag) {
		flipped.neg = false
	}
	return addSigned(a, flipped)
}

func halveSigned(a signed) signed {
	out := signed{neg: a.neg, mag: make(Int, len(a.mag))}
	ShiftRight(out.mag, a.mag, 1)
	if IsZero(out.mag) {
		out.neg = false
	}
	return out
}

// modReduceSigned folds a signed value into [0, m).
func modReduceSigned(a signed, m Int) Int {
	out, err := Mod(a.mag, m)
	if err != nil {
		panic("bignum: field modulus is zero")
	}
	if a.neg && !IsZero(out) {
		Sub(out, m, out)
	}
	return out
}

// Inv computes the modular inverse of a with respect to f.P using the
// binary extended gcd algorithm (HAC Algorithm 14.61), which only needs
// shifts, compares, and add/sub — the same primitives as the rest of this
// package — rather than the word-at-a-time quotient estimation that a
// classical extended Euclid would need. f.P must be odd, true of every
// prime curve modulus in the registry. Returns sclerr.NotInvertible if
// gcd(a, f.P) != 1 (including a == 0).
func (f Field) Inv(a Int) (Int, error) {
	n := len(f.P)
	if IsZero(a) {
		return nil, sclerr.NotInvertible
	}
	x := a
	if Compare(x, f.P) >= 0 {
		x = f.Reduce(x)
	}

	u := x.Clone()
	v := f.P.Clone()
	guard := n + 1
	A := signed{mag: make(Int, guard)}
	A.mag[0] = 1
	B := zeroSigned(guard)
	C := zeroSigned(guard)
	D := signed{mag: make(Int, guard)}
	D.mag[0] = 1

	m := signed{mag: append(f.P.Clone(), 0)}
	xs := signed{mag: append(x.Clone(), 0)}

	for !IsZero(u) {
		for GetBit(u, 0) == 0 {
			ShiftRight(u, u, 1)
			if A.isEven() && B.isEven() {
				A = halveSigned(A)
				B = halveSigned(B)
			} else {
				A = halveSigned(addSigned(A, m))
				B = halveSigned(subSigned(B, xs))
			}
		}
		for GetBit(v, 0) == 0 {
			ShiftRight(v, v, 1)
			if C.isEven() && D.isEven() {
				C = halveSigned(C)
				D = halveSigned(D)
			} else {
				C = halveSigned(addSigned(C, m))
				D = halveSigned(subSigned(D, xs))
			}
		}
		if Compare(u, v) >= 0 {
			Sub(u, u, v)
			A = subSigned(A, C)
			B = subSigned(B, D)
		} else {
			Sub(v, v, u)
			C = subSigned(C, A)
			D = subSigned(D, B)
		}
	}

	one := make(Int, n)
	one[0] = 1
	if Compare(v, one) != 0 {
		return nil, sclerr.NotInvertible
	}
	return modReduceSigned(C, f.P), nil
}

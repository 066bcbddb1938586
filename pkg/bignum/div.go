package bignum

import "github.com/rvcrypto/sclcore/pkg/sclerr"

// Div computes q = num / den and r = num % den by bit-serial restoring
// long division. q must have at least BitLen(num) bits of room (in
// practice, len(num) words is always sufficient since q <= num); r must
// have at least len(den) words. q and r must not alias num or den.
//
// The source library uses a word-at-a-time Knuth algorithm D with a
// trial-digit estimate and correction step; this engine trades that
// performance for a bit-at-a-time shift-and-subtract scheme that has no
// trial-digit estimation to get wrong, appropriate for a reference
// software backend whose hot path is modular reduction of already-small
// (curve-sized) values rather than arbitrary-precision division.
func Div(q, r, num, den Int) error {
	if IsZero(den) {
		return sclerr.InvalidInput
	}
	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}
	// The running remainder carries one word above den so the shift
	// cannot drop a bit when den's top bit is set.
	rem := make(Int, len(den)+1)
	nBits := BitLen(num)
	for i := nBits - 1; i >= 0; i-- {
		ShiftLeft1(rem)
		if GetBit(num, i) != 0 {
			rem[0] |= 1
		}
		if Compare(rem, den) >= 0 {
			Sub(rem, rem, den)
			SetBit(q, i, 1)
		}
	}
	copy(r, rem)
	return nil
}

// Mod reduces a modulo m into a freshly allocated Int of len(m) words.
func Mod(a, m Int) (Int, error) {
	q := make(Int, len(a))
	r := make(Int, len(m))
	if err := Div(q, r, a, m); err != nil {
		return nil, err
	}
	return r, nil
}

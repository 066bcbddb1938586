// Package trng adapts a raw random-word oracle into the bounded,
// rejection-sampled big integers the asymmetric layer needs (C7). It
// does not generate entropy itself — the oracle is an explicit external
// collaborator the core never constructs on its own.
package trng

import (
	"context"

	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// Source is the word oracle the core assumes. A real target wires this
// to a hardware TRNG peripheral; tests and hosted builds can wire it to
// crypto/rand.
type Source interface {
	// NextWord returns one 32-bit random word, or an error if the
	// underlying entropy source is exhausted or unhealthy.
	NextWord(ctx context.Context) (uint32, error)
}

// DefaultRetryCeiling is the hard limit on rejection-sampling attempts
// before giving up with sclerr.RNGError.
const DefaultRetryCeiling = 128

func drawWords(ctx context.Context, src Source, n int) (bignum.Int, error) {
	out := bignum.New(n)
	for i := 0; i < n; i++ {
		w, err := src.NextWord(ctx)
		if err != nil {
			return nil, sclerr.RNGError
		}
		out[i] = w
	}
	return out, nil
}

// maskTopWord clears bits above bitLen in the top word of a value that
// is wordSize words wide, so a draw for an upper bound with a non-
// multiple-of-32 bit length (e.g. SECP521R1's n) doesn't waste nearly an
// entire extra word of rejections.
func maskTopWord(a bignum.Int, bitLen int) {
	wordSize := len(a)
	topBits := bitLen - (wordSize-1)*32
	if topBits >= 32 || topBits < 0 {
		return
	}
	mask := uint32(1)<<uint(topBits) - 1
	a[wordSize-1] &= mask
}

// RejectionBignum draws a full-width sample, masks it to the bit length
// of upper, and accepts iff lower <= sample <= upper, else redraws.
// ECDSA nonce generation uses this policy with bounds [1, n-1].
func RejectionBignum(ctx context.Context, src Source, lower, upper bignum.Int, retryCeiling int) (bignum.Int, error) {
	if retryCeiling <= 0 {
		retryCeiling = DefaultRetryCeiling
	}
	bitLen := bignum.BitLen(upper)
	wordSize := len(upper)
	for attempt := 0; attempt < retryCeiling; attempt++ {
		sample, err := drawWords(ctx, src, wordSize)
		if err != nil {
			return nil, err
		}
		maskTopWord(sample, bitLen)
		if bignum.Compare(sample, lower) >= 0 && bignum.Compare(sample, upper) <= 0 {
			return sample, nil
		}
	}
	return nil, sclerr.RNGError
}

// ModularBignum draws a wider sample (2x the curve word size) and
// reduces it modulo (upper - lower + 1), then adds lower. This never
// retries, at the cost
// of a small statistical bias toward the low end of the range — hence
// "biased but bounded" rather than strict rejection sampling.
func ModularBignum(ctx context.Context, src Source, lower, upper bignum.Int) (bignum.Int, error) {
	wordSize := len(upper)
	wide, err := drawWords(ctx, src, 2*wordSize)
	if err != nil {
		return nil, err
	}

	span := bignum.New(wordSize + 1)
	_ = bignum.Sub(span[:wordSize], upper, lower)
	span[wordSize] = bignum.Inc(span[:wordSize])

	q := bignum.New(len(wide))
	r := bignum.New(wordSize + 1)
	if err := bignum.Div(q, r, wide, span[:wordSize+1]); err != nil {
		return nil, err
	}

	out := bignum.New(wordSize)
	bignum.Add(out, r[:wordSize], lower)
	return out, nil
}

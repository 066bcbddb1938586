package ecc

import (
	"context"

	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/curve"
	"github.com/rvcrypto/sclcore/pkg/trng"
)

// GenerateKey draws a private scalar d in [1, n-1] via the TRNG gate's
// strict rejection policy and computes the public point Q = d*G,
// matching original_source/src/asymmetric/ecc/scl_ecc_keygen.c's
// reject-sample-then-multiply shape. It is a direct composition of
// MultCoZ and the trng rejection sampler, guaranteeing Q = d*G with Q
// on the curve.
func GenerateKey(ctx context.Context, p *curve.Params, src trng.Source) (d bignum.Int, Q Affine, err error) {
	lower := bignum.New(p.WordSize)
	lower[0] = 1
	upper := bignum.New(p.WordSize)
	bignum.Sub(upper, p.N, lower)

	d, err = trng.RejectionBignum(ctx, src, lower, upper, trng.DefaultRetryCeiling)
	if err != nil {
		return nil, Affine{}, err
	}

	g := Affine{X: p.Gx, Y: p.Gy}
	Q, err = MultCoZ(p, g, d)
	if err != nil {
		return nil, Affine{}, err
	}
	return d, Q, nil
}

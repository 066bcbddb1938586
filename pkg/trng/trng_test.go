package trng

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/rvcrypto/sclcore/pkg/bignum"
)

// cryptoRandSource wires crypto/rand as a concrete NextWord oracle, the
// same role a hosted (non-embedded) build would give it.
type cryptoRandSource struct{}

func (cryptoRandSource) NextWord(ctx context.Context) (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

type failingSource struct{}

func (failingSource) NextWord(ctx context.Context) (uint32, error) {
	return 0, errors.New("entropy source offline")
}

// exhaustedSource always draws a value outside [lower, upper], forcing
// RejectionBignum to exhaust its retry ceiling.
type exhaustedSource struct{}

func (exhaustedSource) NextWord(ctx context.Context) (uint32, error) {
	return 0xffffffff, nil
}

func TestRejectionBignumInRange(t *testing.T) {
	lower := bignum.Int{1}
	upper := bignum.Int{100}
	for i := 0; i < 20; i++ {
		sample, err := RejectionBignum(context.Background(), cryptoRandSource{}, lower, upper, 0)
		if err != nil {
			t.Fatalf("RejectionBignum: %v", err)
		}
		if bignum.Compare(sample, lower) < 0 || bignum.Compare(sample, upper) > 0 {
			t.Fatalf("sample %v out of [%v, %v]", sample, lower, upper)
		}
	}
}

func TestRejectionBignumOracleError(t *testing.T) {
	lower := bignum.Int{1}
	upper := bignum.Int{100}
	if _, err := RejectionBignum(context.Background(), failingSource{}, lower, upper, 4); err == nil {
		t.Fatalf("want error from failing oracle, got nil")
	}
}

func TestRejectionBignumRetryCeiling(t *testing.T) {
	lower := bignum.Int{1}
	upper := bignum.Int{100} // the 7-bit mask turns every 0xffffffff sample into 127, so this never falls in range
	if _, err := RejectionBignum(context.Background(), exhaustedSource{}, lower, upper, 8); err == nil {
		t.Fatalf("want RNGError after exhausting retries, got nil")
	}
}

func TestModularBignumInRange(t *testing.T) {
	lower := bignum.Int{10}
	upper := bignum.Int{20}
	for i := 0; i < 20; i++ {
		sample, err := ModularBignum(context.Background(), cryptoRandSource{}, lower, upper)
		if err != nil {
			t.Fatalf("ModularBignum: %v", err)
		}
		if bignum.Compare(sample, lower) < 0 || bignum.Compare(sample, upper) > 0 {
			t.Fatalf("sample %v out of [%v, %v]", sample, lower, upper)
		}
	}
}

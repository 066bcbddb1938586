// Package curve holds the compile-time domain-parameter table for the
// named short-Weierstrass curves this core supports (C3). Parameters are
// published standard values (SEC 2, FIPS 186-4, RFC 5639); each is parsed
// once at package init time into fixed-width bignum.Int words and two
// derived helpers (InverseTwo, SquareP) are computed rather than
// hand-copied as a second set of hex literals, so the only place a typo
// in a magic constant can hide is the textbook parameter itself.
package curve

import (
	"encoding/hex"
	"strings"

	"github.com/rvcrypto/sclcore/pkg/bignum"
	"github.com/rvcrypto/sclcore/pkg/sclerr"
)

// Name tags a supported curve. Every Params record is looked up via this
// enum rather than compared by pointer, so curve equality is ordinary
// Go value equality.
type Name int

const (
	SECP224R1 Name = iota
	SECP256R1
	SECP256K1
	SECP384R1
	SECP521R1
	BP256R1
	BP384R1
	BP512R1
)

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "unknown curve"
}

var names = map[Name]string{
	SECP224R1: "secp224r1",
	SECP256R1: "secp256r1",
	SECP256K1: "secp256k1",
	SECP384R1: "secp384r1",
	SECP521R1: "secp521r1",
	BP256R1:   "brainpoolP256r1",
	BP384R1:   "brainpoolP384r1",
	BP512R1:   "brainpoolP512r1",
}

// Params is an immutable domain-parameter record: a short-Weierstrass
// curve y^2 = x^3 + Ax + B over F_P with generator (Gx, Gy), subgroup
// order N, and cofactor 1. WordSize is ceil(BitSize/32); for SECP521R1
// the top word carries only 9 significant bits of its 32.
type Params struct {
	Name     Name
	BitSize  int
	ByteSize int
	WordSize int

	P, A, B Int
	Gx, Gy  Int
	N       Int

	Field      bignum.Field // modulus P
	OrderField bignum.Field // modulus N, for ECDSA scalar arithmetic

	InverseTwo Int // 2^-1 mod P
	SquareP    Int // 2^(2*BitSize) mod P
}

// Int is an alias so curve literals read as plain bignum.Int without an
// import-qualified name at every field in the table below.
type Int = bignum.Int

func hx(s string, words int) Int {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\t', '\r':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(clean)
	if err != nil {
		panic("curve: malformed literal: " + err.Error())
	}
	return bignum.FromBytesBE(b, words)
}

type rawParams struct {
	name             Name
	bitSize          int
	p, a, b, gx, gy, n string
}

var rawTable = []rawParams{
	{
		name: SECP224R1, bitSize: 224,
		p:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF 00000000 00000000 00000001",
		a:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF FFFFFFFF FFFFFFFE",
		b:  "B4050A85 0C04B3AB F5413256 5044B0B7 D7BFD8BA 270B3943 2355FFB4",
		gx: "B70E0CBD 6BB4BF7F 321390B9 4A03C1D3 56C21122 343280D6 115C1D21",
		gy: "BD376388 B5F723FB 4C22DFE6 CD4375A0 5A074764 44D58199 85007E34",
		n:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFF16A2 E0B8F03E 13DD2945 5C5C2A3D",
	},
	{
		name: SECP256R1, bitSize: 256,
		p:  "FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFF",
		a:  "FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFC",
		b:  "5AC635D8 AA3A93E7 B3EBBD55 769886BC 651D06B0 CC53B0F6 3BCE3C3E 27D2604B",
		gx: "6B17D1F2 E12C4247 F8BCE6E5 63A440F2 77037D81 2DEB33A0 F4A13945 D898C296",
		gy: "4FE342E2 FE1A7F9B 8EE7EB4A 7C0F9E16 2BCE3357 6B315ECE CBB64068 37BF51F5",
		n:  "FFFFFFFF 00000000 FFFFFFFF FFFFFFFF BCE6FAAD A7179E84 F3B9CAC2 FC632551",
	},
	{
		name: SECP256K1, bitSize: 256,
		p:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFC2F",
		a:  "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000",
		b:  "00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000007",
		gx: "79BE667E F9DCBBAC 55A06295 CE870B07 029BFCDB 2DCE28D9 59F2815B 16F81798",
		gy: "483ADA77 26A3C465 5DA4FBFC 0E1108A8 FD17B448 A6855419 9C47D08F FB10D4B8",
		n:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE BAAEDCE6 AF48A03B BFD25E8C D0364141",
	},
	{
		name: SECP384R1, bitSize: 384,
		p:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF 00000000 00000000 FFFFFFFF",
		a:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFFFF 00000000 00000000 FFFFFFFC",
		b:  "B3312FA7 E23EE7E4 988E056B E3F82D19 181D9C6E FE814112 0314088F 5013875A C656398D 8A2ED19D 2A85C8ED D3EC2AEF",
		gx: "AA87CA22 BE8B0537 8EB1C71E F320AD74 6E1D3B62 8BA79B98 59F741E0 82542A38 5502F25D BF55296C 3A545E38 72760AB7",
		gy: "3617DE4A 96262C6F 5D9E98BF 9292DC29 F8F41DBD 289A147C E9DA3113 B5F0B8C0 0A60B1CE 1D7E819D 7A431D7C 90EA0E5F",
		n:  "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF C7634D81 F4372DDF 581A0DB2 48B0A77A ECEC196A CCC52973",
	},
	{
		name: SECP521R1, bitSize: 521,
		p:  "01FFFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF",
		a:  "01FFFFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFC",
		b:  "0051 953EB961 8E1C9A1F 929A21A0 B68540EE A2DA725B 99B315F3 B8B48991 8EF109E1 56193951 EC7E937B 1652C0BD 3BB1BF07 3573DF88 3D2C34F1 EF451FD4 6B503F00",
		gx: "00C6 858E06B7 0404E9CD 9E3ECB66 2395B442 9C648139 053FB521 F828AF60 6B4D3DBA A14B5E77 EFE75928 FE1DC127 A2FFA8DE 3348B3C1 856A429B F97E7E31 C2E5BD66",
		gy: "0118 39296A78 9A3BC004 5C8A5FB4 2C7D1BD9 98F54449 579B4468 17AFBD17 273E662C 97EE7299 5EF42640 C550B901 3FAD0761 353C7086 A272C240 88BE9476 9FD16650",
		n:  "01FF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFA 51868783 BF2F966B 7FCC0148 F709A5D0 3BB5C9B8 899C47AE BB6FB71E 91386409",
	},
	{
		name: BP256R1, bitSize: 256,
		p:  "A9FB57DB A1EEA9BC 3E660A90 9D838D72 6E3BF623 D5262028 2013481D 1F6E5377",
		a:  "7D5A0975 FC2C3057 EEF67530 417AFFE7 FB8055C1 26DC5C6C E94A4B44 F330B5D9",
		b:  "26DC5C6C E94A4B44 F330B5D9 BBD77CBF 95841629 5CF7E1CE 6BCCDC18 FF8C07B6",
		gx: "8BD2AEB9 CB7E57CB 2C4B482F FC81B7AF B9DE27E1 E3BD23C2 3A4453BD 9ACE3262",
		gy: "547EF835 C3DAC4FD 97F8461A 14611DC9 C2774513 2DED8E54 5C1D54C7 2F046997",
		n:  "A9FB57DB A1EEA9BC 3E660A90 9D838D71 8C397AA3 B561A6F7 901E0E82 974856A7",
	},
	{
		name: BP384R1, bitSize: 384,
		p:  "8CB91E82 A3386D28 0F5D6F7E 50E641DF 152F7109 ED5456B4 12B1DA19 7FB71123 ACD3A729 901D1A71 87470013 3107EC53",
		a:  "7BC382C6 3D8C150C 3C72080A CE05AFA0 C2BEA28E 4FB22787 139165EF BA91F90F 8AA5814A 503AD4EB 04A8C7DD 22CE2826",
		b:  "04A8C7DD 22CE2826 8B39B554 16F0447C 2FB77DE1 07DCD2A6 2E880EA5 3EEB62D5 7CB43902 95DBC994 3AB78696 FA504C11",
		gx: "1D1C64F0 68CF45FF A2A63A81 B7C13F6B 8847A3E7 7EF14FE3 DB7FCAFE 0CBD10E8 E826E034 36D646AA EF87B2E2 47D4AF1E",
		gy: "8ABE1D75 20F9C2A4 5CB1EB8E 95CFD552 62B70B29 FEEC5864 E19C054F F9912928 0E464621 77918111 42820341 263C5315",
		n:  "8CB91E82 A3386D28 0F5D6F7E 50E641DF 152F7109 ED5456B3 1F166E6C AC0425A7 CF3AB6AF 6B7FC310 3B883202 E9046565",
	},
	{
		name: BP512R1, bitSize: 512,
		p:  "AADD9DB8 DBE9C48B 3FD4E6AE 33C9FC07 CB308DB3 B3C9D20E D6639CCA 70330871 7D4D9B00 9BC66842 AECDA12A E6A380E6 2881FF2F 2D82C685 28AA6056 583A48F3",
		a:  "7830A331 8B603B89 E2327145 AC234CC5 94CBDD8D 3DF91610 A83441CA EA9863BC 2DED5D5A A8253AA1 0A2EF1C9 8B9AC8B5 7F1117A7 2BF2C7B9 E7C1AC4D 77FC94CA",
		b:  "3DF91610 A83441CA EA9863BC 2DED5D5A A8253AA1 0A2EF1C9 8B9AC8B5 7F1117A7 2BF2C7B9 E7C1AC4D 77FC94CA DC083E67 984050B7 5EBAE5DD 2809BD63 8016F723",
		gx: "81AEE4BD D82ED964 5A21322E 9C4C6A93 85ED9F70 B5D916C1 B43B62EE F4D0098E FF3B1F78 E2D0D48D 50D1687B 93B97D5F 7C6D5047 406A5E68 8B352209 BCB9F822",
		gy: "7DDE385D 566332EC C0EABFA9 CF7822FD F209F700 24A57B1A A000C55B 881F8111 B2DCDE49 4A5F485E 5BCA4BD8 8A2763AE D1CA2B2F A8F05406 78CD1E0F 3AD80892",
		n:  "AADD9DB8 DBE9C48B 3FD4E6AE 33C9FC07 CB308DB3 B3C9D20E D6639CCA 70330870 553E5C41 4CA92619 41866119 7FAC1047 1DB1D381 085DDADD B5879682 9CA90069",
	},
}

var table map[Name]*Params

func init() {
	table = make(map[Name]*Params, len(rawTable))
	for _, raw := range rawTable {
		byteSize := bignum.ByteLen(raw.bitSize)
		wordSize := (raw.bitSize + 31) / 32

		p := hx(raw.p, wordSize)
		a := hx(raw.a, wordSize)
		b := hx(raw.b, wordSize)
		gx := hx(raw.gx, wordSize)
		gy := hx(raw.gy, wordSize)
		n := hx(raw.n, wordSize)

		field := bignum.NewField(p)
		orderField := bignum.NewField(n)

		two := bignum.New(wordSize)
		two[0] = 2
		invTwo, err := field.Inv(two)
		if err != nil {
			panic("curve: 2 is not invertible mod p for " + raw.name.String())
		}

		shiftAmt := 2 * raw.bitSize
		bigWords := shiftAmt/32 + 2
		one := bignum.New(bigWords)
		one[0] = 1
		shifted := bignum.New(bigWords)
		bignum.ShiftLeft(shifted, one, shiftAmt)
		squareP := field.Reduce(shifted)

		table[raw.name] = &Params{
			Name:       raw.name,
			BitSize:    raw.bitSize,
			ByteSize:   byteSize,
			WordSize:   wordSize,
			P:          p,
			A:          a,
			B:          b,
			Gx:         gx,
			Gy:         gy,
			N:          n,
			Field:      field,
			OrderField: orderField,
			InverseTwo: invTwo,
			SquareP:    squareP,
		}
	}
}

// Lookup returns the domain-parameter record for n, or
// sclerr.InvalidLength if n is not a recognized curve tag.
func Lookup(n Name) (*Params, error) {
	p, ok := table[n]
	if !ok {
		return nil, sclerr.InvalidLength
	}
	return p, nil
}

// Equal is the curve-equality predicate: two Params are the same curve
// iff they carry the same tag.
func Equal(a, b *Params) bool {
	return a != nil && b != nil && a.Name == b.Name
}

// All returns every supported curve tag, in a stable order, for use by
// table-driven tests that want to exercise the whole registry.
func All() []Name {
	return []Name{SECP224R1, SECP256R1, SECP256K1, SECP384R1, SECP521R1, BP256R1, BP384R1, BP512R1}
}

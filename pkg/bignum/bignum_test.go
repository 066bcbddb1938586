package bignum

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Int
		want int
	}{
		{Int{1, 0}, Int{1, 0}, 0},
		{Int{0, 1}, Int{0xffffffff}, 1},
		{Int{1}, Int{2}, -1},
		{Int{}, Int{0, 0}, 0},
	}
	for i, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("case %d: Compare(%v, %v) = %d, want %d", i, c.a, c.b, got, c.want)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := Int{0xffffffff, 0x1}
	b := Int{0x1, 0x0}
	sum := make(Int, 2)
	carry := Add(sum, a, b)
	if carry != 0 {
		t.Fatalf("unexpected carry out: %d", carry)
	}
	if Compare(sum, Int{0, 2}) != 0 {
		t.Fatalf("sum = %v, want {0, 2}", sum)
	}
	back := make(Int, 2)
	borrow := Sub(back, sum, b)
	if borrow != 0 {
		t.Fatalf("unexpected borrow: %d", borrow)
	}
	if Compare(back, a) != 0 {
		t.Fatalf("back = %v, want %v", back, a)
	}
}

func TestSubBorrow(t *testing.T) {
	out := make(Int, 1)
	borrow := Sub(out, Int{0}, Int{1})
	if borrow != 1 {
		t.Fatalf("borrow = %d, want 1", borrow)
	}
	if out[0] != 0xffffffff {
		t.Fatalf("out = %#x, want 0xffffffff", out[0])
	}
}

func TestMult(t *testing.T) {
	a := Int{0xffffffff}
	b := Int{0xffffffff}
	dst := make(Int, 2)
	Mult(dst, a, b)
	// (2^32-1)^2 = 2^64 - 2^33 + 1 = 0xFFFFFFFE00000001
	if dst[0] != 0x00000001 || dst[1] != 0xFFFFFFFE {
		t.Fatalf("dst = %#x %#x, want 1 fffffffe", dst[0], dst[1])
	}
}

func TestShiftLeftRightInPlace(t *testing.T) {
	a := Int{1, 0}
	ShiftLeft(a, a, 33)
	if Compare(a, Int{0, 2}) != 0 {
		t.Fatalf("after <<33: %v, want {0,2}", a)
	}
	ShiftRight(a, a, 33)
	if Compare(a, Int{1, 0}) != 0 {
		t.Fatalf("after >>33: %v, want {1,0}", a)
	}
}

func TestBitLenGetSetBit(t *testing.T) {
	a := Int{0, 0}
	if BitLen(a) != 0 {
		t.Fatalf("BitLen(0) = %d, want 0", BitLen(a))
	}
	SetBit(a, 40, 1)
	if BitLen(a) != 41 {
		t.Fatalf("BitLen after SetBit(40) = %d, want 41", BitLen(a))
	}
	if GetBit(a, 40) != 1 {
		t.Fatalf("GetBit(40) = 0, want 1")
	}
	SetBit(a, 40, 0)
	if GetBit(a, 40) != 0 {
		t.Fatalf("GetBit(40) after clear = 1, want 0")
	}
}

func TestDiv(t *testing.T) {
	num := Int{100}
	den := Int{7}
	q := make(Int, 1)
	r := make(Int, 1)
	if err := Div(q, r, num, den); err != nil {
		t.Fatalf("Div: %v", err)
	}
	if q[0] != 14 || r[0] != 2 {
		t.Fatalf("100/7 = %d rem %d, want 14 rem 2", q[0], r[0])
	}
}

func TestDivByZero(t *testing.T) {
	num := Int{1}
	den := Int{0}
	q := make(Int, 1)
	r := make(Int, 1)
	if err := Div(q, r, num, den); err == nil {
		t.Fatalf("Div by zero: want error, got nil")
	}
}

func TestFromToBytesBERoundTrip(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	v := FromBytesBE(src, 2)
	out := ToBytesBE(v, len(src))
	if len(out) != len(src) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(src))
	}
	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, out[i], src[i])
		}
	}
}

func TestByteLenCeilingDivision(t *testing.T) {
	// Regression for the source's operator-precedence bug in
	// copy_n_u8_2_m_u64_be: ceiling division must round up, not silently
	// floor for any remainder.
	cases := []struct {
		bits, want int
	}{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {521, 66}, {528, 66},
	}
	for _, c := range cases {
		if got := ByteLen(c.bits); got != c.want {
			t.Errorf("ByteLen(%d) = %d, want %d", c.bits, got, c.want)
		}
	}
}

func TestFieldAddSubMul(t *testing.T) {
	p := Int{0xfffffff1} // a small prime-like modulus for test arithmetic
	f := NewField(p)
	a := Int{5}
	b := Int{0xfffffff0}
	sum := f.Add(a, b)
	// 5 + (p-1) mod p = 4
	if Compare(sum, Int{4}) != 0 {
		t.Fatalf("Add wraparound = %v, want {4}", sum)
	}
	diff := f.Sub(Int{2}, Int{5})
	// 2 - 5 mod p = p - 3
	want := Int{0xfffffff1 - 3}
	if Compare(diff, want) != 0 {
		t.Fatalf("Sub underflow = %v, want %v", diff, want)
	}
	prod := f.Mul(Int{3}, Int{4})
	if Compare(prod, Int{12}) != 0 {
		t.Fatalf("Mul = %v, want {12}", prod)
	}
}

func TestFieldInvRoundTrip(t *testing.T) {
	// p = 2^31 - 1, a Mersenne prime small enough to hand-verify.
	p := Int{0x7fffffff}
	f := NewField(p)
	for _, x := range []uint32{2, 3, 12345, 0x7ffffffe} {
		a := Int{x}
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%d): %v", x, err)
		}
		prod := f.Mul(a, inv)
		if Compare(prod, Int{1}) != 0 {
			t.Fatalf("Inv(%d)*%d mod p = %v, want {1}", x, x, prod)
		}
		back, err := f.Inv(inv)
		if err != nil {
			t.Fatalf("Inv(Inv(%d)): %v", x, err)
		}
		if Compare(back, a) != 0 {
			t.Fatalf("Inv(Inv(%d)) = %v, want %v", x, back, a)
		}
	}
}

func TestFieldInvNotInvertible(t *testing.T) {
	// p = 15 is not prime (not a real curve modulus) but lets us
	// manufacture a gcd != 1 case deterministically: gcd(3, 15) = 3.
	p := Int{15}
	f := NewField(p)
	if _, err := f.Inv(Int{3}); err == nil {
		t.Fatalf("Inv(3) mod 15: want error, got nil")
	}
}

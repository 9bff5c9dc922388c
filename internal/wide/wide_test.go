// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wide_test

import (
	"math"
	"math/big"
	"math/bits"
	"math/rand"
	"testing"

	. "github.com/taichimaeda/dragonbox/internal/wide"
)

var edges = []uint64{
	0, 1, 2, 3,
	math.MaxUint32 - 1, math.MaxUint32, math.MaxUint32 + 1,
	1 << 63, 1<<63 - 1, 1<<63 + 1,
	math.MaxUint64 - 1, math.MaxUint64,
	0xcccccccccccccccd, 0xff77b1fcbebcdc4f, 0x25e8e89c13bb0f7b,
}

func operands(n int) []uint64 {
	r := rand.New(rand.NewSource(1))
	ops := append([]uint64(nil), edges...)
	for i := 0; i < n; i++ {
		ops = append(ops, r.Uint64())
	}
	return ops
}

func toBig(u Uint128) *big.Int {
	x := new(big.Int).SetUint64(u.Hi)
	x.Lsh(x, 64)
	return x.Or(x, new(big.Int).SetUint64(u.Lo))
}

func TestAdd64(t *testing.T) {
	tests := []struct {
		u    Uint128
		n    uint64
		want Uint128
	}{
		{Uint128{0, 0}, 0, Uint128{0, 0}},
		{Uint128{0, math.MaxUint64}, 1, Uint128{1, 0}},
		{Uint128{7, math.MaxUint64 - 1}, 3, Uint128{8, 1}},
		{Uint128{math.MaxUint64, 5}, 10, Uint128{math.MaxUint64, 15}},
	}
	for _, tt := range tests {
		if got := Add64(tt.u, tt.n); got != tt.want {
			t.Errorf("Add64(%#x, %#x) = %#x, want %#x", tt.u, tt.n, got, tt.want)
		}
	}
}

func TestMul128(t *testing.T) {
	ops := operands(200)
	for _, x := range ops {
		for _, y := range ops {
			hi, lo := bits.Mul64(x, y)
			if got := Mul128(x, y); got != (Uint128{hi, lo}) {
				t.Fatalf("Mul128(%#x, %#x) = %#x, want {%#x %#x}", x, y, got, hi, lo)
			}
			if got := Mul128Upper64(x, y); got != hi {
				t.Fatalf("Mul128Upper64(%#x, %#x) = %#x, want %#x", x, y, got, hi)
			}
		}
	}
}

func TestMul96(t *testing.T) {
	ops := operands(200)
	for _, x64 := range ops {
		x := uint32(x64)
		for _, y := range ops {
			hi, lo := bits.Mul64(uint64(x), y)
			// The product fits in 96 bits: hi holds at most 32 of them.
			wantUpper := hi<<32 | lo>>32
			if got := Mul96Upper64(x, y); got != wantUpper {
				t.Fatalf("Mul96Upper64(%#x, %#x) = %#x, want %#x", x, y, got, wantUpper)
			}
			if got := Mul96Lower64(x, y); got != lo {
				t.Fatalf("Mul96Lower64(%#x, %#x) = %#x, want %#x", x, y, got, lo)
			}
		}
	}
}

func TestMul192(t *testing.T) {
	ops := operands(60)
	mask128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	for _, x := range ops {
		for _, yh := range ops {
			for _, yl := range ops[:20] {
				y := Uint128{yh, yl}
				prod := new(big.Int).Mul(new(big.Int).SetUint64(x), toBig(y))

				wantUpper := new(big.Int).Rsh(prod, 64)
				if got := Mul192Upper128(x, y); toBig(got).Cmp(wantUpper) != 0 {
					t.Fatalf("Mul192Upper128(%#x, %#x) = %#x, want %#x", x, y, got, wantUpper)
				}
				wantLower := new(big.Int).And(prod, mask128)
				if got := Mul192Lower128(x, y); toBig(got).Cmp(wantLower) != 0 {
					t.Fatalf("Mul192Lower128(%#x, %#x) = %#x, want %#x", x, y, got, wantLower)
				}
			}
		}
	}
}

func BenchmarkMul192Upper128(b *testing.B) {
	x := uint64(0x1fffffffffffff)
	y := Uint128{0xff77b1fcbebcdc4f, 0x25e8e89c13bb0f7b}
	var sink Uint128
	for b.Loop() {
		sink = Mul192Upper128(x, y)
	}
	_ = sink
}

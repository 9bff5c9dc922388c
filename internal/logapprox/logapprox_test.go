// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logapprox

import (
	"math"
	"math/big"
	"testing"
)

// exactFloorLog returns the largest k with base^k ≤ 2^e * num/den.
func exactFloorLog(base int64, e int, num, den int64) int {
	x := new(big.Rat).SetFrac64(num, den)
	p2 := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(abs(e))))
	if e >= 0 {
		x.Mul(x, p2)
	} else {
		x.Quo(x, p2)
	}

	pow := func(k int) *big.Rat {
		p := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(abs(k))), nil))
		if k < 0 {
			p.Inv(p)
		}
		return p
	}

	// Start from a float estimate and correct it exactly.
	k := int(math.Floor((float64(e)*math.Ln2 + math.Log(float64(num)/float64(den))) / math.Log(float64(base))))
	for pow(k+1).Cmp(x) <= 0 {
		k++
	}
	for pow(k).Cmp(x) > 0 {
		k--
	}
	return k
}

func abs(k int) int {
	if k < 0 {
		return -k
	}
	return k
}

func TestFloorLogs(t *testing.T) {
	tests := []struct {
		name     string
		f        func(int) int
		min, max int
		base     int64
		num, den int64
	}{
		{"FloorLog10Pow2", FloorLog10Pow2, -2620, 2620, 10, 1, 1},
		{"FloorLog10Pow2MinusLog10_4Over3", FloorLog10Pow2MinusLog10_4Over3, -2985, 2936, 10, 3, 4},
		{"FloorLog5Pow2", FloorLog5Pow2, -1831, 1831, 5, 1, 1},
		{"FloorLog5Pow2MinusLog5_3", FloorLog5Pow2MinusLog5_3, -3543, 2427, 5, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for e := tt.min; e <= tt.max; e++ {
				if got, want := tt.f(e), exactFloorLog(tt.base, e, tt.num, tt.den); got != want {
					t.Fatalf("%s(%d) = %d, want %d", tt.name, e, got, want)
				}
			}
		})
	}
}

func TestFloorLog2Pow10(t *testing.T) {
	for e := -1233; e <= 1233; e++ {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(e))), nil)
		// 10^|e| is a power of two only for e = 0.
		want := p.BitLen() - 1
		if e < 0 {
			want = -p.BitLen()
		}
		if got := FloorLog2Pow10(e); got != want {
			t.Fatalf("FloorLog2Pow10(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestFloorLog2(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{1, 0}, {2, 1}, {3, 1}, {33, 5}, {1 << 63, 63}, {math.MaxUint64, 63},
	}
	for _, tt := range tests {
		if got := FloorLog2(tt.n); got != tt.want {
			t.Errorf("FloorLog2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox_test

import (
	"fmt"
	"math"
	"math/big"
	"runtime"
	"strconv"
	"testing"

	"golang.org/x/sync/errgroup"

	. "github.com/taichimaeda/dragonbox"
)

// exactValue returns the value of the finite pattern raw as a rational.
func exactValue(l Layout, raw uint64) *big.Rat {
	return new(big.Rat).SetFloat64(math.Float64frombits(ToBinary64(l, raw)))
}

func pow10Rat(k int) *big.Rat {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(max(k, -k))), nil)
	r := new(big.Rat).SetInt(p)
	if k < 0 {
		r.Inv(r)
	}
	return r
}

// floorLog10 returns ⌊log10(x)⌋ for x > 0.
func floorLog10(x *big.Rat) int {
	f, _ := x.Float64()
	k := int(math.Floor(math.Log10(f)))
	for pow10Rat(k).Cmp(x) > 0 {
		k--
	}
	for pow10Rat(k+1).Cmp(x) <= 0 {
		k++
	}
	return k
}

// roundingInterval returns the endpoints of the interval of reals that
// round to the positive finite pattern raw, and whether they are included.
func roundingInterval(l Layout, raw uint64) (lo, hi *big.Rat, closed bool) {
	v := exactValue(l, raw)
	prev := new(big.Rat)
	if raw > 0 {
		prev = exactValue(l, raw-1)
	}
	var next *big.Rat
	if l.Classify(raw+1) == Finite {
		next = exactValue(l, raw+1)
	} else {
		// The successor of the largest finite value is one ulp above it.
		next = new(big.Rat).Sub(v, prev)
		next.Add(next, v)
	}
	half := big.NewRat(1, 2)
	lo = new(big.Rat).Add(prev, v)
	lo.Mul(lo, half)
	hi = new(big.Rat).Add(v, next)
	hi.Mul(hi, half)
	return lo, hi, raw&1 == 0
}

// checkShortest verifies the rendering of the positive pattern raw and
// of its negation against an exact search of the rounding interval.
func checkShortest(l Layout, raw uint64) error {
	got := FormatFloat(l, raw)
	negRaw := raw | 1<<(l.Width()-1)
	gotNeg := FormatFloat(l, negRaw)

	switch l.Classify(raw) {
	case NaN:
		if got != "nan" || gotNeg != "nan" {
			return fmt.Errorf("%v %#x: got %q and %q, want nan", l, raw, got, gotNeg)
		}
		return nil
	case Inf, Zero:
		if gotNeg != "-"+got {
			return fmt.Errorf("%v %#x: got %q and %q", l, raw, got, gotNeg)
		}
		return nil
	}
	if gotNeg != "-"+got {
		return fmt.Errorf("%v %#x: negation renders as %q, want -%s", l, negRaw, gotNeg, got)
	}

	d, ok := Shortest(l, raw)
	if !ok || d.String() != got {
		return fmt.Errorf("%v %#x: Shortest = %+v, %v, rendering %q", l, raw, d, ok, got)
	}
	if d.Significand%10 == 0 {
		return fmt.Errorf("%v %#x: significand %d has trailing zeros", l, raw, d.Significand)
	}

	lo, hi, closed := roundingInterval(l, raw)
	inside := func(x *big.Rat) bool {
		a, b := x.Cmp(lo), x.Cmp(hi)
		if closed {
			return a >= 0 && b <= 0
		}
		return a > 0 && b < 0
	}

	r, ok := new(big.Rat).SetString(got)
	if !ok || !inside(r) {
		return fmt.Errorf("%v %#x: %q does not read back", l, raw, got)
	}

	// Any decimal with fewer digits is a multiple of 10^(⌊log10 lo⌋-nd+2).
	nd := len(strconv.FormatUint(d.Significand, 10))
	if nd > 1 {
		step := pow10Rat(floorLog10(lo) - nd + 2)
		q := new(big.Rat).Quo(lo, step)
		c := new(big.Int).Quo(q.Num(), q.Denom()) // ⌊lo/step⌋, lo > 0
		for range 2 {
			cand := new(big.Rat).Mul(new(big.Rat).SetInt(c), step)
			if inside(cand) {
				return fmt.Errorf("%v %#x: %q is not shortest, %s also reads back", l, raw, got, cand.FloatString(30))
			}
			c.Add(c, big.NewInt(1))
		}
	}

	// Of the two neighbouring candidates on the same grid, the result
	// must be the closer one that reads back, with ties to even.
	v := exactValue(l, raw)
	step := pow10Rat(d.Exponent)
	q := new(big.Rat).Quo(v, step)
	down := new(big.Int).Quo(q.Num(), q.Denom())
	up := new(big.Int).Add(down, big.NewInt(1))
	want := down
	downVal := new(big.Rat).Mul(new(big.Rat).SetInt(down), step)
	upVal := new(big.Rat).Mul(new(big.Rat).SetInt(up), step)
	switch {
	case !inside(downVal):
		want = up
	case inside(upVal):
		distDown := new(big.Rat).Sub(v, downVal)
		distUp := new(big.Rat).Sub(upVal, v)
		if c := distUp.Cmp(distDown); c < 0 || (c == 0 && up.Bit(0) == 0) {
			want = up
		}
	}
	if !want.IsUint64() || want.Uint64() != d.Significand {
		return fmt.Errorf("%v %#x: significand %d, want %s", l, raw, d.Significand, want)
	}
	return nil
}

func TestExhaustive16(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive test in short mode")
	}
	for _, l := range []Layout{Binary16, BFloat16} {
		t.Run(l.String(), func(t *testing.T) {
			t.Parallel()
			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))
			const shard = 1 << 10
			positive := uint64(1) << (l.Width() - 1)
			for start := uint64(0); start < positive; start += shard {
				g.Go(func() error {
					for raw := start; raw < start+shard; raw++ {
						if err := checkShortest(l, raw); err != nil {
							return err
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestSampled32(t *testing.T) {
	var g errgroup.Group
	for shard := range 8 {
		g.Go(func() error {
			// Stride through every exponent, hitting both interval cases.
			for raw := uint64(shard) * 0x20001; raw < 0x7f800000; raw += 0x100003 {
				if err := checkShortest(Binary32, raw); err != nil {
					return err
				}
				if err := checkShortest(Binary32, raw&^0x7fffff); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestFloat8Tables(t *testing.T) {
	for _, l := range []Layout{Float8E4M3, Float8E4M3FNUZ, Float8E5M2, Float8E5M2FNUZ} {
		t.Run(l.String(), func(t *testing.T) {
			for raw := uint64(0); raw < 256; raw++ {
				got := FormatFloat(l, raw)
				want := FormatFloat(Binary64, ToBinary64(l, raw))
				if got != want {
					t.Errorf("FormatFloat(%v, %#02x) = %q, want %q", l, raw, got, want)
				}
				d, ok := Shortest(l, raw)
				d64, ok64 := Shortest(Binary64, ToBinary64(l, raw))
				if d != d64 || ok != ok64 {
					t.Errorf("Shortest(%v, %#02x) = %+v, %v, want %+v, %v", l, raw, d, ok, d64, ok64)
				}
				if ok && d.String() != got {
					t.Errorf("Shortest(%v, %#02x) renders as %q, want %q", l, raw, d, got)
				}
			}
		})
	}
}

func TestFloat8Specials(t *testing.T) {
	tests := []struct {
		l    Layout
		raw  uint64
		want string
	}{
		{Float8E4M3, 0x7f, "nan"},
		{Float8E4M3, 0xff, "nan"},
		{Float8E4M3, 0x7e, "448.0"},
		{Float8E4M3, 0x80, "-0.0"},
		{Float8E4M3FNUZ, 0x80, "nan"},
		{Float8E4M3FNUZ, 0x7f, "240.0"},
		{Float8E5M2, 0x7c, "inf"},
		{Float8E5M2, 0xfc, "-inf"},
		{Float8E5M2, 0x7d, "nan"},
		{Float8E5M2, 0x7b, "57344.0"},
		{Float8E5M2, 0x01, "1.52587890625e-05"},
		{Float8E5M2FNUZ, 0x80, "nan"},
		{Float8E5M2FNUZ, 0x00, "0.0"},
		{Float8E5M2FNUZ, 0x7f, "57344.0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.l, tt.raw); got != tt.want {
			t.Errorf("FormatFloat(%v, %#02x) = %q, want %q", tt.l, tt.raw, got, tt.want)
		}
	}
}

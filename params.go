// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

import "github.com/taichimaeda/dragonbox/internal/logapprox"

// params holds the constants of the Dragonbox algorithm for one layout.
// They depend only on the layout and are derived once at initialization,
// following the formulas of the reference implementation.
type params struct {
	carrierBits int // 32 or 64
	cacheBits   int // Q = 2*q
	sigBits     int // p
	bias        int
	minExponent int // Emin, the binary exponent of the smallest normal
	maxExponent int // Emax

	kappa        int    // κ
	smallDivisor uint32 // 10^κ
	bigDivisor   uint32 // 10^(κ+1)

	// The cache must cover k ∈ [minK, maxK].
	minK, maxK int

	// In the shorter interval case, the left endpoint x is an integer
	// iff e ∈ [2, leftEndpointUpper], and y has fractional part 1/2
	// iff e ∈ [tieLower, tieUpper].
	leftEndpointUpper  int
	tieLower, tieUpper int

	// n*divMagic masked to divShift bits is below divMagic iff
	// 10^κ divides n, for n ≤ 10^(κ+1).
	divMagic uint64
	divShift uint
}

var (
	binary16Params = newParams(Binary16)
	bfloat16Params = newParams(BFloat16)
	binary32Params = newParams(Binary32)
	binary64Params = newParams(Binary64)
)

// params returns the extraction constants of l, or nil for the 8-bit
// layouts, which are rendered from tables.
func (l Layout) params() *params {
	switch l {
	case Binary16:
		return &binary16Params
	case BFloat16:
		return &bfloat16Params
	case Binary32:
		return &binary32Params
	case Binary64:
		return &binary64Params
	}
	return nil
}

func newParams(l Layout) params {
	f := &layouts[l]
	p := params{
		carrierBits: 32,
		cacheBits:   64,
		sigBits:     int(f.sigBits),
		bias:        f.bias,
		minExponent: 1 - f.bias,
		maxExponent: 1<<f.expBits - 2 - f.bias,
	}
	if f.width > 32 {
		p.carrierBits, p.cacheBits = 64, 128
	}

	p.kappa = logapprox.FloorLog10Pow2(p.carrierBits-p.sigBits-2) - 1
	p.smallDivisor = uint32(pow10(p.kappa))
	p.bigDivisor = uint32(pow10(p.kappa + 1))

	// Both interval cases are bounded by the smallest and largest e.
	emin := p.minExponent - p.sigBits
	emax := p.maxExponent - p.sigBits
	p.minK = min(-logapprox.FloorLog10Pow2MinusLog10_4Over3(emax), -logapprox.FloorLog10Pow2(emax)+p.kappa)
	p.maxK = max(-logapprox.FloorLog10Pow2MinusLog10_4Over3(emin), -logapprox.FloorLog10Pow2(emin)+p.kappa)

	// Count the factors of 5 in 2^(p+2)-1.
	n, fives := uint64(1)<<(p.sigBits+2)-1, 0
	for n%5 == 0 {
		n /= 5
		fives++
	}
	p.leftEndpointUpper = 2 + logapprox.FloorLog2(pow10(fives+1)/3)
	p.tieLower = -logapprox.FloorLog5Pow2MinusLog5_3(p.sigBits+4) - 2 - p.sigBits
	p.tieUpper = -logapprox.FloorLog5Pow2(p.sigBits+2) - 2 - p.sigBits

	p.divMagic, p.divShift = divisibilityMagic(p.kappa)
	return p
}

// divisibilityMagic returns the multiplier and shift that replace
// division by 10^κ for dividends up to 10^(κ+1).
func divisibilityMagic(kappa int) (uint64, uint) {
	switch kappa {
	case 1:
		return 6554, 16 // ⌊2^16/10⌋+1
	case 2:
		return 656, 16 // ⌊2^16/100⌋+1
	case 5:
		return 687195, 36 // ⌊2^36/10^5⌋+1
	}
	panic("dragonbox: no divisibility magic for κ")
}

func pow10(n int) uint64 {
	r := uint64(1)
	for range n {
		r *= 10
	}
	return r
}

// leftEndpointIsInteger reports whether the left endpoint of the shorter
// interval for exponent e is an integer.
func (p *params) leftEndpointIsInteger(e int) bool {
	return 2 <= e && e <= p.leftEndpointUpper
}

// shorterIntervalTie reports whether y is exactly halfway between two
// integers in the shorter interval case for exponent e.
func (p *params) shorterIntervalTie(e int) bool {
	return p.tieLower <= e && e <= p.tieUpper
}

// divideBySmallDivisor returns n/10^κ and whether the division is exact,
// for n ≤ 10^(κ+1).
func (p *params) divideBySmallDivisor(n uint32) (q uint32, exact bool) {
	prod := uint64(n) * p.divMagic
	exact = prod&(1<<p.divShift-1) < p.divMagic
	return uint32(prod >> p.divShift), exact
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

import (
	"github.com/taichimaeda/dragonbox/internal/cache"
	"github.com/taichimaeda/dragonbox/internal/logapprox"
	"github.com/taichimaeda/dragonbox/internal/wide"
)

// toDecimal64 computes the shortest decimal significand and exponent
// of a finite nonzero binary64 value using the Dragonbox algorithm.
// The value is w = fc * 2^e, where fc includes the implicit leading bit
// for normal numbers; denorm reports a subnormal.
//
// Notation follows the paper:
// I ⊆ ℝ is the interval such that each r ∈ I rounds to w during decimal
// to binary conversion using round to nearest, tie to even.
// Δ is the length of I.
// wL = (w^- + w) / 2 and wR = (w + w^+) / 2 are the endpoints of I, where
// w^+ and w^- are the neighbours of w.
//
// The returned significand has no trailing decimal zeros.
func toDecimal64(p *params, fc uint64, e int, denorm bool) (uint64, int) {
	if debugAsserts && fc == 0 {
		panic("dragonbox: toDecimal64 called with zero significand")
	}

	if fc == 1<<p.sigBits && !denorm {
		// Algorithm 5.6 (Skeleton of Dragonbox, part 3)
		// Shorter interval case (Δ = 3*2^(e-2)).
		// This is the case iff Fw = 1 and Ew ≠ Emin.
		//
		// k0 = -⌊log10(Δ)⌋
		// x = 10^k0*wL, y = 10^k0*w, z = 10^k0*wR

		// -k0 = ⌊log10(3*2^(e-2))⌋ = ⌊log10(2^e)-log10(4/3)⌋ (section 6.3).
		minusK0 := logapprox.FloorLog10Pow2MinusLog10_4Over3(e)

		beta := e + logapprox.FloorLog2Pow10(-minusK0) // β = e + ⌊k0*log2(10)⌋
		phi := cache.Get64(-minusK0)                   // φ̃k0
		xi := computeLeftEndpoint64(p, phi, beta)      // x^(i)
		zi := computeRightEndpoint64(p, phi, beta)     // z^(i)

		// x̃^(i) = x^(i) if x is an integer, since x ∈ 10^(k0)I
		// always holds for even Fw. x̃^(i) = x^(i) + 1 otherwise.
		// z ∈ 10^(k0)I always holds, so z̃^(i) = z^(i).
		if !p.leftEndpointIsInteger(e) {
			xi++
		}

		// I ∩ 10^(-k0+1)ℤ is non-empty iff x̃^(i) ≤ ⌊z̃^(i)/10⌋*10
		// (proposition 5.5). Its unique element is then the shortest.
		q := zi / 10
		if xi <= q*10 {
			return removeTrailingZeros64(q, minusK0+1)
		}

		// Otherwise pick the element of I ∩ 10^(-k0)ℤ closest to y.
		yru := computeRoundUp64(p, phi, beta) // y^(ru) = ⌊y+1/2⌋

		// y^(ru) = y^(rd)+1 iff the fractional part of y is 1/2
		// (section 5.2.4). Break the tie to even.
		if p.shorterIntervalTie(e) && yru%2 != 0 {
			yru--
		} else if yru < xi {
			// y^(ru) is at most z̃^(i), and y^(ru)+1 lies in 10^(k0)I
			// whenever y^(ru) does not (page 23).
			yru++
		}
		return yru, minusK0
	}

	// Normal interval case (Δ = 2^e).
	// This is the case iff Fw ≠ 1 or Ew = Emin.
	//
	// k = k0 + κ
	// x = 10^k*wL, y = 10^k*w, z = 10^k*wR, δ = 10^k*Δ

	// -k = ⌊log10(2^e)⌋ - κ (section 6.1).
	minusK := logapprox.FloorLog10Pow2(e) - p.kappa

	beta := e + logapprox.FloorLog2Pow10(-minusK)   // β = e + ⌊k*log2(10)⌋
	phi := cache.Get64(-minusK)                     // φ̃k
	zi, zIsInt := computeMul64((fc*2+1)<<beta, phi) // z^(i), z^(f) = 0
	deltai := computeDelta64(phi, beta)             // δ^(i)
	bigDivisor := uint64(p.bigDivisor)

	// Algorithm 5.2 (Skeleton of Dragonbox, part 1)
	// Check if I ∩ 10^(-k0+1)ℤ is non-empty.
	s := zi / bigDivisor
	r := uint32(zi - bigDivisor*s)

	// If I = [wL, wR] (Fw even), I ∩ 10^(-k0+1)ℤ contains s iff r+z^(f) ≤ δ.
	// If I = (wL, wR) (Fw odd), it contains s iff r+z^(f) < δ and
	// r ≠ 0 or z^(f) ≠ 0.
	if r < deltai {
		if r != 0 || !zIsInt || fc%2 == 0 {
			return removeTrailingZeros64(s, minusK+p.kappa+1)
		}
		// s̃ = s - 1 and r̃ = 10^(κ+1) if r = 0 (page 17).
		s--
		r = p.bigDivisor
	} else if r == deltai {
		// z^(f) ≤ δ^(f) iff x^(i) is odd or x^(f) = 0 (page 15).
		xiParity, xIsInt := computeMulParity64(fc*2-1, phi, beta)
		if xiParity || (xIsInt && fc%2 == 0) {
			return removeTrailingZeros64(s, minusK+p.kappa+1)
		}
	}

	// Algorithm 5.4 (Skeleton of Dragonbox, part 2)
	// I ∩ 10^(-k0)ℤ is non-empty and any of its elements is shortest.

	// D = r̃ + 10^κ/2 - ε^(i) where ε = δ/2 (page 17).
	D := r + p.smallDivisor/2 - deltai/2

	// y^(ru) = 10s̃ + ⌊D/10^κ⌋, assuming the residue term is zero.
	t, exact := p.divideBySmallDivisor(D)
	yru := 10*s + uint64(t)

	if exact {
		// The residue term is -1 iff ρ = 0 and z^(f) < ε^(f), which holds
		// iff the parity of y^(i) differs from that of D-10^κ/2.
		yiParity, yIsInt := computeMulParity64(fc*2, phi, beta)
		yiParityApprox := (D-p.smallDivisor/2)%2 != 0
		if yiParity != yiParityApprox {
			yru--
		} else if yIsInt && yru%2 != 0 {
			// y/10^κ has fractional part 1/2. Break the tie to even.
			yru--
		}
	}
	return yru, minusK + p.kappa
}

// toDecimal32 is toDecimal64 for layouts that fit a 32-bit carrier:
// binary32, binary16 and bfloat16. It is kept as a separate copy to
// avoid widening every intermediate.
func toDecimal32(p *params, fc uint32, e int, denorm bool) (uint32, int) {
	if debugAsserts && fc == 0 {
		panic("dragonbox: toDecimal32 called with zero significand")
	}

	if fc == 1<<p.sigBits && !denorm {
		minusK0 := logapprox.FloorLog10Pow2MinusLog10_4Over3(e)

		beta := e + logapprox.FloorLog2Pow10(-minusK0)
		phi := cache.Get32(-minusK0)
		xi := computeLeftEndpoint32(p, phi, beta)
		zi := computeRightEndpoint32(p, phi, beta)

		if !p.leftEndpointIsInteger(e) {
			xi++
		}

		q := zi / 10
		if xi <= q*10 {
			return removeTrailingZeros32(q, minusK0+1)
		}

		yru := computeRoundUp32(p, phi, beta)
		if p.shorterIntervalTie(e) && yru%2 != 0 {
			yru--
		} else if yru < xi {
			yru++
		}
		return yru, minusK0
	}

	minusK := logapprox.FloorLog10Pow2(e) - p.kappa

	beta := e + logapprox.FloorLog2Pow10(-minusK)
	phi := cache.Get32(-minusK)
	zi, zIsInt := computeMul32((fc*2+1)<<beta, phi)
	deltai := computeDelta32(phi, beta)

	s := zi / p.bigDivisor
	r := zi - p.bigDivisor*s

	if r < deltai {
		if r != 0 || !zIsInt || fc%2 == 0 {
			return removeTrailingZeros32(s, minusK+p.kappa+1)
		}
		s--
		r = p.bigDivisor
	} else if r == deltai {
		xiParity, xIsInt := computeMulParity32(fc*2-1, phi, beta)
		if xiParity || (xIsInt && fc%2 == 0) {
			return removeTrailingZeros32(s, minusK+p.kappa+1)
		}
	}

	D := r + p.smallDivisor/2 - deltai/2
	t, exact := p.divideBySmallDivisor(D)
	yru := 10*s + t

	if exact {
		yiParity, yIsInt := computeMulParity32(fc*2, phi, beta)
		yiParityApprox := (D-p.smallDivisor/2)%2 != 0
		if yiParity != yiParityApprox {
			yru--
		} else if yIsInt && yru%2 != 0 {
			yru--
		}
	}
	return yru, minusK + p.kappa
}

// computeMul64 computes the integer part of u*φ̃k/2^128
// and reports whether the fractional part is zero (section 5.2.1).
func computeMul64(u uint64, phi wide.Uint128) (intPart uint64, isInt bool) {
	r := wide.Mul192Upper128(u, phi)
	return r.Hi, r.Lo == 0
}

// computeMul32 computes the integer part of u*φ̃k/2^64
// and reports whether the fractional part is zero (section 5.2.1).
func computeMul32(u uint32, phi uint64) (intPart uint32, isInt bool) {
	r := wide.Mul96Upper64(u, phi)
	return uint32(r >> 32), uint32(r) == 0
}

// computeMulParity64 computes only the parity of the integer part of
// mant2*φ̃k*2^β/2^128 and whether its fractional part is zero.
func computeMulParity64(mant2 uint64, phi wide.Uint128, beta int) (parity bool, isInt bool) {
	r := wide.Mul192Lower128(mant2, phi)
	parity = (r.Hi>>(64-beta))&1 != 0
	isInt = r.Hi<<beta|r.Lo>>(64-beta) == 0
	return
}

func computeMulParity32(mant2 uint32, phi uint64, beta int) (parity bool, isInt bool) {
	r := wide.Mul96Lower64(mant2, phi)
	parity = (r>>(64-beta))&1 != 0
	isInt = uint32(r>>(32-beta)) == 0
	return
}

// computeDelta64 computes δ^(i).
func computeDelta64(phi wide.Uint128, beta int) uint32 {
	return uint32(phi.Hi >> (63 - beta))
}

func computeDelta32(phi uint64, beta int) uint32 {
	return uint32(phi >> (63 - beta))
}

// computeLeftEndpoint64 computes the integer part of the left endpoint x.
func computeLeftEndpoint64(p *params, phi wide.Uint128, beta int) uint64 {
	return (phi.Hi - phi.Hi>>(p.sigBits+2)) >> (64 - p.sigBits - 1 - beta)
}

func computeLeftEndpoint32(p *params, phi uint64, beta int) uint32 {
	return uint32((phi - phi>>(p.sigBits+2)) >> (64 - p.sigBits - 1 - beta))
}

// computeRightEndpoint64 computes the integer part of the right endpoint z.
func computeRightEndpoint64(p *params, phi wide.Uint128, beta int) uint64 {
	return (phi.Hi + phi.Hi>>(p.sigBits+1)) >> (64 - p.sigBits - 1 - beta)
}

func computeRightEndpoint32(p *params, phi uint64, beta int) uint32 {
	return uint32((phi + phi>>(p.sigBits+1)) >> (64 - p.sigBits - 1 - beta))
}

// computeRoundUp64 computes y^(ru) = ⌊y+1/2⌋.
func computeRoundUp64(p *params, phi wide.Uint128, beta int) uint64 {
	return (phi.Hi>>(64-p.sigBits-2-beta) + 1) / 2
}

func computeRoundUp32(p *params, phi uint64, beta int) uint32 {
	return uint32((phi>>(64-p.sigBits-2-beta) + 1) / 2)
}

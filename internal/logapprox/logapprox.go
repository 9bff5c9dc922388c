// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logapprox computes floors of logarithms of powers of two, ten
// and five with fixed-point multiplications (section 6 of the Dragonbox
// paper). Each function is exact only on the domain noted in its comment.
package logapprox

import "math/bits"

// FloorLog10Pow2 computes ⌊log10(2^e)⌋ = ⌊e*log10(2)⌋ (section 6.1).
func FloorLog10Pow2(e int) int {
	// e should be in the range [-2620, 2620].
	return (e * 315653) >> 20
}

// FloorLog2Pow10 computes ⌊log2(10^e)⌋ = ⌊e*log2(10)⌋ (section 6.2).
func FloorLog2Pow10(e int) int {
	// e should be in the range [-1233, 1233].
	// The formula itself holds on [-4003, 4003],
	// but restricted to avoid overflow.
	return (e * 1741647) >> 19
}

// FloorLog10Pow2MinusLog10_4Over3 computes
// ⌊e*log10(2)-log10(4/3)⌋ = ⌊log10(2^e)-log10(4/3)⌋ (section 6.3).
func FloorLog10Pow2MinusLog10_4Over3(e int) int {
	// e should be in the range [-2985, 2936].
	return (e*631305 - 261663) >> 21
}

// FloorLog5Pow2 computes ⌊log5(2^e)⌋ = ⌊e*log5(2)⌋.
func FloorLog5Pow2(e int) int {
	// e should be in the range [-1831, 1831].
	return (e * 225799) >> 19
}

// FloorLog5Pow2MinusLog5_3 computes ⌊e*log5(2)-log5(3)⌋.
func FloorLog5Pow2MinusLog5_3(e int) int {
	// e should be in the range [-3543, 2427].
	return (e*451597 - 715764) >> 20
}

// FloorLog2 returns ⌊log2(n)⌋ for n > 0.
func FloorLog2(n uint64) int {
	return bits.Len64(n) - 1
}

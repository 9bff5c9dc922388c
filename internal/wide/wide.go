// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wide multiplies significands by cached powers of ten.
//
// A 32-bit carrier multiplies by a 64-bit cache entry (96-bit products)
// and a 64-bit carrier by a 128-bit entry (192-bit products). Only the
// part of each product the extractor reads is returned. Every routine is
// built from 32×32→64 partial products, so results are identical on
// every platform.
package wide

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Add64 returns u + n modulo 2^128.
func Add64(u Uint128, n uint64) Uint128 {
	lo := u.Lo + n
	hi := u.Hi
	if lo < n {
		hi++
	}
	return Uint128{hi, lo}
}

// Mul64 returns the product of x and y.
func Mul64(x, y uint32) uint64 {
	return uint64(x) * uint64(y)
}

// halves splits x into its upper and lower 32 bits.
func halves(x uint64) (hi, lo uint32) {
	return uint32(x >> 32), uint32(x)
}

// Mul96Upper64 returns ⌊x*y / 2^32⌋, the integer part of a 32-bit
// significand scaled by a 64-bit cache entry.
func Mul96Upper64(x uint32, y uint64) uint64 {
	yh, yl := halves(y)
	return Mul64(x, yh) + Mul64(x, yl)>>32
}

// Mul96Lower64 returns x*y mod 2^64, which holds the fraction the
// parity test inspects.
func Mul96Lower64(x uint32, y uint64) uint64 {
	return uint64(x) * y
}

// Mul128 returns x*y.
func Mul128(x, y uint64) Uint128 {
	xh, xl := halves(x)
	yh, yl := halves(y)

	ll := Mul64(xl, yl)
	lh := Mul64(xl, yh)
	hl := Mul64(xh, yl)
	hh := Mul64(xh, yh)

	// Bits 32 through 63 of the product, plus the carry into bit 64.
	mid := ll>>32 + uint64(uint32(lh)) + uint64(uint32(hl))

	return Uint128{
		Hi: hh + lh>>32 + hl>>32 + mid>>32,
		Lo: mid<<32 | uint64(uint32(ll)),
	}
}

// Mul128Upper64 returns ⌊x*y / 2^64⌋.
func Mul128Upper64(x, y uint64) uint64 {
	return Mul128(x, y).Hi
}

// Mul192Upper128 returns ⌊x*y / 2^64⌋, the integer part of a 64-bit
// significand scaled by a 128-bit cache entry.
func Mul192Upper128(x uint64, y Uint128) Uint128 {
	return Add64(Mul128(x, y.Hi), Mul128Upper64(x, y.Lo))
}

// Mul192Lower128 returns x*y mod 2^128, which holds the fraction the
// parity test inspects.
func Mul192Lower128(x uint64, y Uint128) Uint128 {
	p := Mul128(x, y.Lo)
	p.Hi += x * y.Hi
	return p
}

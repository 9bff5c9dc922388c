// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

import "math/bits"

// Trailing zeros are removed with the divisibility trick of Granlund and
// Montgomery. Each multiplier m satisfies m*10^k ≡ 2^k (mod 2^w), so
// rotating n*m right by k yields n/10^k when 10^k divides n and a value
// of at least limit = ⌊(2^w-1)/10^k⌋+1 otherwise. The rounds try 10^8,
// 10^4, 10^2 and 10^1 in turn, so at most 15 zeros are removed without
// a data-dependent loop.

type zeroRound64 struct {
	mul, limit uint64
	k          int
}

type zeroRound32 struct {
	mul, limit uint32
	k          int
}

var zeroRounds64 = [...]zeroRound64{
	{28999941890838049, 184467440738, 8},
	{182622766329724561, 1844674407370956, 4},
	{10330176681277348905, 184467440737095517, 2},
	{14757395258967641293, 1844674407370955162, 1},
}

// A 32-bit carrier holds at most 7 trailing zeros.
var zeroRounds32 = [...]zeroRound32{
	{184254097, 429497, 4},
	{42949673, 42949673, 2},
	{1288490189, 429496730, 1},
}

// removeTrailingZeros64 strips the decimal trailing zeros of mant,
// adding the number removed to exp. mant must be nonzero.
func removeTrailingZeros64(mant uint64, exp int) (uint64, int) {
	for _, z := range zeroRounds64 {
		if r := bits.RotateLeft64(mant*z.mul, -z.k); r < z.limit {
			mant, exp = r, exp+z.k
		}
	}
	return mant, exp
}

// removeTrailingZeros32 is removeTrailingZeros64 for 32-bit carriers.
func removeTrailingZeros32(mant uint32, exp int) (uint32, int) {
	for _, z := range zeroRounds32 {
		if r := bits.RotateLeft32(mant*z.mul, -z.k); r < z.limit {
			mant, exp = r, exp+z.k
		}
	}
	return mant, exp
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

// Digit generation adapted from Junekey Jeon's Dragonbox implementation,
// which in turn follows James Anhalt's itoa algorithm. Each block is
// scaled once into a 32.32 fixed-point fraction and two digits are
// peeled off per multiplication by 100.
// See https://jk-jeon.github.io/posts/2022/02/jeaiii-algorithm/ for details.

// digitBuffer holds the decimal digits of a significand.
// A uint64 has at most 20 digits.
type digitBuffer struct {
	d  [20]byte
	nd int
}

// digits returns the digits written so far.
func (b *digitBuffer) digits() []byte { return b.d[:b.nd] }

// put64 emits the digits of mant without leading zeros.
func (b *digitBuffer) put64(mant uint64) {
	switch {
	case mant < 100_000_000:
		b.print9Digits(uint32(mant))
	case mant < 100_000_000_000_000_000:
		// At most 9 digits, then exactly 8.
		first := uint32(mant / 100_000_000)
		b.print9Digits(first)
		b.print8Digits(uint32(mant - uint64(first)*100_000_000))
	default:
		// 18 to 20 digits: at most 4, then two blocks of exactly 8.
		// Extracted significands never get here.
		first := mant / 10_000_000_000_000_000
		rest := mant - first*10_000_000_000_000_000
		mid := uint32(rest / 100_000_000)
		b.print9Digits(uint32(first))
		b.print8Digits(mid)
		b.print8Digits(uint32(rest - uint64(mid)*100_000_000))
	}
}

// print9Digits emits the at most 9 digits of block without leading zeros.
func (b *digitBuffer) print9Digits(block uint32) {
	buf, ofs := b.d[:], b.nd
	switch {
	case block < 100:
		// 1 or 2 digits.
		n := int(block)
		if n >= 10 {
			print2Digits(buf, ofs, n)
			b.nd += 2
		} else {
			buf[ofs] = byte(n + '0')
			b.nd++
		}
	case block < 10_000:
		// 3 or 4 digits.
		// 42949673 = ⌈2^32 / 100⌉
		prod := uint64(block) * 42949673
		n := int(prod >> 32)
		if n >= 10 {
			print2Digits(buf, ofs, n)
			ofs += 2
			b.nd += 4
		} else {
			buf[ofs] = byte(n + '0')
			ofs++
			b.nd += 3
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs, int(prod>>32))
	case block < 1_000_000:
		// 5 or 6 digits.
		// 429497 = ⌈2^32 / 10,000⌉
		prod := uint64(block) * 429497
		n := int(prod >> 32)
		if n >= 10 {
			print2Digits(buf, ofs, n)
			ofs += 2
			b.nd += 6
		} else {
			buf[ofs] = byte(n + '0')
			ofs++
			b.nd += 5
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+2, int(prod>>32))
	case block < 100_000_000:
		// 7 or 8 digits.
		// 281474978 = ⌈2^48 / 1,000,000⌉ + 1
		prod := uint64(block) * 281474978
		prod >>= 16
		n := int(prod >> 32)
		if n >= 10 {
			print2Digits(buf, ofs, n)
			ofs += 2
			b.nd += 8
		} else {
			buf[ofs] = byte(n + '0')
			ofs++
			b.nd += 7
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+2, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+4, int(prod>>32))
	default:
		// 9 digits.
		// 1441151882 = ⌈2^57 / 100,000,000⌉ + 1
		prod := uint64(block) * 1441151882
		prod >>= 25
		buf[ofs] = byte(prod>>32) + '0'
		// Unrolled by hand; the compiler does not unroll constant loops.
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+1, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+3, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+5, int(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, ofs+7, int(prod>>32))
		b.nd += 9
	}
}

// print8Digits emits exactly 8 digits of block, keeping leading zeros.
func (b *digitBuffer) print8Digits(block uint32) {
	buf, ofs := b.d[:], b.nd
	// 281474978 = ⌈2^48 / 1,000,000⌉ + 1
	prod := uint64(block) * 281474978
	prod >>= 16
	prod++
	print2Digits(buf, ofs, int(prod>>32))
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, ofs+2, int(prod>>32))
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, ofs+4, int(prod>>32))
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, ofs+6, int(prod>>32))
	b.nd += 8
}

// print2Digits emits the 2 digits of n in buf starting at i.
// n must be in [0, 99].
func print2Digits(buf []byte, i int, n int) {
	buf[i+0] = smallsString[n*2+0]
	buf[i+1] = smallsString[n*2+1]
}

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

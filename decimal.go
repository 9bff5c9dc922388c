// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

// A Decimal is the value (-1)^Neg * Significand * 10^Exponent.
type Decimal struct {
	Neg         bool
	Significand uint64
	Exponent    int
}

// Shortest returns the shortest decimal that reads back to the value
// encoded by raw in layout l. The significand has no trailing zeros.
// ok is false for zeros, infinities and NaNs.
//
// The 8-bit layouts are widened to binary64 first, so the result is the
// exact value of the pattern, matching AppendFloat.
func Shortest(l Layout, raw uint64) (d Decimal, ok bool) {
	if l.table() != nil {
		l, raw = Binary64, ToBinary64(l, raw)
	}
	b := l.Decode(raw)
	if l.classify(b) != Finite {
		return Decimal{}, false
	}
	m, exp := l.params().shortest(b)
	return Decimal{Neg: b.Neg, Significand: m, Exponent: exp}, true
}

// Append appends the rendering of d to dst, using the notation rules of
// AppendFloat. Every digit of Significand is kept, so a significand with
// trailing zeros renders them.
func (d Decimal) Append(dst []byte) []byte {
	if d.Significand == 0 {
		if d.Neg {
			return append(dst, "-0.0"...)
		}
		return append(dst, "0.0"...)
	}
	var buf digitBuffer
	buf.put64(d.Significand)
	return formatDigits(dst, d.Neg, buf.digits(), d.Exponent)
}

func (d Decimal) String() string {
	var buf [32]byte
	return string(d.Append(buf[:0]))
}

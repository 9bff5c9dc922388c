// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

import (
	"io"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// AppendFloat appends the shortest decimal rendering of raw, a bit pattern
// of layout l, to dst and returns the extended buffer.
//
// The rendering reads back to exactly the same value under
// round-to-nearest-even. NaNs render as "nan", infinities as "inf" or
// "-inf", and zeros as "0.0" or "-0.0". Other values use fixed notation
// ("0.001", "12.5", "100.0") unless the decimal exponent is below -4 or
// above 15, in which case scientific notation is used ("1e-05", "1.5e+16").
// The 8-bit layouts render the exact value of the pattern.
//
// Bits of raw above l.Width() are ignored. AppendFloat panics if l is
// not valid.
func AppendFloat(dst []byte, l Layout, raw uint64) []byte {
	if t := l.table(); t != nil {
		return append(dst, t[uint8(raw)]...)
	}

	b := l.Decode(raw)
	switch l.classify(b) {
	case NaN:
		return append(dst, "nan"...)
	case Inf:
		if b.Neg {
			return append(dst, "-inf"...)
		}
		return append(dst, "inf"...)
	case Zero:
		if b.Neg {
			return append(dst, "-0.0"...)
		}
		return append(dst, "0.0"...)
	}

	var d digitBuffer
	exp := l.params().digits(&d, b)
	return formatDigits(dst, b.Neg, d.digits(), exp)
}

// FormatFloat returns the shortest decimal rendering of raw,
// a bit pattern of layout l. See AppendFloat.
func FormatFloat(l Layout, raw uint64) string {
	var buf [32]byte
	return string(AppendFloat(buf[:0], l, raw))
}

// Format32 returns the shortest decimal rendering of f.
func Format32(f float32) string {
	return FormatFloat(Binary32, uint64(math.Float32bits(f)))
}

// Format64 returns the shortest decimal rendering of f.
func Format64(f float64) string {
	return FormatFloat(Binary64, math.Float64bits(f))
}

// Append appends the shortest decimal rendering of f to dst,
// treating f as binary32 or binary64 according to its size.
func Append[F constraints.Float](dst []byte, f F) []byte {
	if unsafe.Sizeof(f) == 4 {
		return AppendFloat(dst, Binary32, uint64(math.Float32bits(float32(f))))
	}
	return AppendFloat(dst, Binary64, math.Float64bits(float64(f)))
}

// WriteFloat writes the rendering of raw to w in one call.
// It returns the number of bytes written and any error from w unchanged.
func WriteFloat(w io.StringWriter, l Layout, raw uint64) (int, error) {
	var buf [32]byte
	return w.WriteString(string(AppendFloat(buf[:0], l, raw)))
}

// table returns the rendering table of an 8-bit layout, or nil.
func (l Layout) table() *[256]string {
	switch l {
	case Float8E4M3:
		return &float8E4M3Strings
	case Float8E4M3FNUZ:
		return &float8E4M3FNUZStrings
	case Float8E5M2:
		return &float8E5M2Strings
	case Float8E5M2FNUZ:
		return &float8E5M2FNUZStrings
	}
	return nil
}

// fields returns the significand fc and binary exponent e of the
// finite nonzero pattern b, with w = fc * 2^e.
func (p *params) fields(b Bits) (fc uint64, e int) {
	if b.Exponent == 0 {
		return b.Mantissa, p.minExponent - p.sigBits
	}
	return b.Mantissa | 1<<p.sigBits, int(b.Exponent) - p.bias - p.sigBits
}

// shortest returns the shortest decimal significand and exponent of
// the finite nonzero pattern b.
func (p *params) shortest(b Bits) (uint64, int) {
	fc, e := p.fields(b)
	if p.carrierBits == 32 {
		m, exp := toDecimal32(p, uint32(fc), e, b.Exponent == 0)
		return uint64(m), exp
	}
	return toDecimal64(p, fc, e, b.Exponent == 0)
}

// digits writes the shortest decimal significand of the finite nonzero
// pattern b to d and returns the exponent of its last digit.
func (p *params) digits(d *digitBuffer, b Bits) int {
	m, exp := p.shortest(b)
	d.put64(m)
	return exp
}

// formatDigits appends the value 0.d1d2...dn * 10^(exp+nd) to dst,
// where digits holds d1 through dn and d1 is nonzero.
func formatDigits(dst []byte, neg bool, digits []byte, exp int) []byte {
	nd := len(digits)
	sci := exp + nd - 1 // exponent of the leading digit
	if neg {
		dst = append(dst, '-')
	}

	if sci < -4 || sci > 15 {
		// d.ddde±XX
		dst = append(dst, digits[0])
		if nd > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		if sci < 0 {
			dst = append(dst, '-')
			sci = -sci
		} else {
			dst = append(dst, '+')
		}
		if sci >= 100 {
			return strconv.AppendInt(dst, int64(sci), 10)
		}
		return append(dst, smallsString[sci*2], smallsString[sci*2+1])
	}

	switch {
	case sci < 0:
		// 0.000ddd
		dst = append(dst, '0', '.')
		for range -sci - 1 {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	case nd > sci+1:
		// ddd.ddd
		dst = append(dst, digits[:sci+1]...)
		dst = append(dst, '.')
		return append(dst, digits[sci+1:]...)
	default:
		// ddd000.0
		dst = append(dst, digits...)
		for range sci + 1 - nd {
			dst = append(dst, '0')
		}
		return append(dst, '.', '0')
	}
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// A Layout identifies a binary floating-point format.
type Layout uint8

const (
	Binary16       Layout = iota // IEEE 754 half precision
	BFloat16                     // brain floating point
	Binary32                     // IEEE 754 single precision
	Binary64                     // IEEE 754 double precision
	Float8E4M3                   // 8-bit, 4 exponent bits, NaN only at S.1111.111
	Float8E4M3FNUZ               // 8-bit, 4 exponent bits, NaN at 0x80, no -0
	Float8E5M2                   // 8-bit, 5 exponent bits, IEEE infinities and NaNs
	Float8E5M2FNUZ               // 8-bit, 5 exponent bits, NaN at 0x80, no -0
	numLayouts
)

var (
	// ErrUnknownLayout is returned by ParseLayout for an unrecognized name.
	ErrUnknownLayout = errors.New("dragonbox: unknown layout")
	// ErrPatternWidth is returned by Layout.Check for a bit pattern wider
	// than the layout.
	ErrPatternWidth = errors.New("dragonbox: bit pattern wider than layout")
)

// specials tells how a layout encodes infinities and NaNs.
type specials uint8

const (
	specialsIEEE specials = iota // all-ones exponent: infinity if the mantissa is zero, NaN otherwise
	specialsFN                   // all-ones exponent and mantissa: NaN; no infinities
	specialsFNUZ                 // the negative zero pattern: NaN; no infinities
)

type layoutInfo struct {
	name     string
	width    uint
	sigBits  uint
	expBits  uint
	bias     int
	specials specials
}

var layouts = [numLayouts]layoutInfo{
	Binary16:       {"binary16", 16, 10, 5, 15, specialsIEEE},
	BFloat16:       {"bfloat16", 16, 7, 8, 127, specialsIEEE},
	Binary32:       {"binary32", 32, 23, 8, 127, specialsIEEE},
	Binary64:       {"binary64", 64, 52, 11, 1023, specialsIEEE},
	Float8E4M3:     {"float8e4m3", 8, 3, 4, 7, specialsFN},
	Float8E4M3FNUZ: {"float8e4m3fnuz", 8, 3, 4, 8, specialsFNUZ},
	Float8E5M2:     {"float8e5m2", 8, 2, 5, 15, specialsIEEE},
	Float8E5M2FNUZ: {"float8e5m2fnuz", 8, 2, 5, 16, specialsFNUZ},
}

// Layouts returns every supported layout in declaration order.
func Layouts() []Layout {
	ls := make([]Layout, numLayouts)
	for i := range ls {
		ls[i] = Layout(i)
	}
	return ls
}

// ParseLayout returns the layout named s, ignoring case.
// float16, float32 and float64 are accepted as aliases.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(s)
	switch name {
	case "float16":
		return Binary16, nil
	case "float32":
		return Binary32, nil
	case "float64":
		return Binary64, nil
	}
	for l := range layouts {
		if layouts[l].name == name {
			return Layout(l), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLayout, s)
}

func (l Layout) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
	return layouts[l].name
}

// Valid reports whether l is one of the declared layouts.
// The other methods panic on invalid layouts.
func (l Layout) Valid() bool { return l < numLayouts }

// Width returns the total number of bits of l.
func (l Layout) Width() uint { return layouts[l].width }

// SignificandBits returns the number of stored significand bits,
// excluding the implicit leading one.
func (l Layout) SignificandBits() uint { return layouts[l].sigBits }

// ExponentBits returns the width of the exponent field.
func (l Layout) ExponentBits() uint { return layouts[l].expBits }

// Bias returns the exponent bias.
func (l Layout) Bias() int { return layouts[l].bias }

// FNUZ reports whether l is a "finite, no unsigned zero" format,
// in which the negative zero pattern encodes NaN.
func (l Layout) FNUZ() bool { return layouts[l].specials == specialsFNUZ }

// HasInf reports whether l can encode infinities.
func (l Layout) HasInf() bool { return layouts[l].specials == specialsIEEE }

// Check returns an error wrapping ErrPatternWidth if raw has bits set
// above the width of l.
func (l Layout) Check(raw uint64) error {
	if w := l.Width(); w < 64 && raw>>w != 0 {
		return fmt.Errorf("%w: %#x does not fit in %d bits of %v", ErrPatternWidth, raw, w, l)
	}
	return nil
}

// Bits holds the fields of one bit pattern of a layout.
type Bits struct {
	Neg      bool
	Exponent uint32 // biased exponent field
	Mantissa uint64 // stored significand bits, without the implicit one
}

// Decode splits raw into its sign, exponent and mantissa fields.
// Bits above the width of l are ignored.
func (l Layout) Decode(raw uint64) Bits {
	f := &layouts[l]
	return Bits{
		Neg:      raw>>(f.width-1)&1 != 0,
		Exponent: uint32(raw>>f.sigBits) & (1<<f.expBits - 1),
		Mantissa: raw & (1<<f.sigBits - 1),
	}
}

// Encode reassembles the bit pattern of b.
func (l Layout) Encode(b Bits) uint64 {
	f := &layouts[l]
	raw := uint64(b.Exponent)<<f.sigBits | b.Mantissa
	if b.Neg {
		raw |= 1 << (f.width - 1)
	}
	return raw
}

// A Class categorizes a bit pattern.
type Class uint8

const (
	Finite Class = iota // finite and nonzero
	Zero
	Inf
	NaN
)

func (c Class) String() string {
	switch c {
	case Finite:
		return "finite"
	case Zero:
		return "zero"
	case Inf:
		return "inf"
	case NaN:
		return "nan"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Classify reports the class of the value encoded by raw.
func (l Layout) Classify(raw uint64) Class {
	return l.classify(l.Decode(raw))
}

func (l Layout) classify(b Bits) Class {
	f := &layouts[l]
	maxExp := uint32(1)<<f.expBits - 1
	switch f.specials {
	case specialsIEEE:
		if b.Exponent == maxExp {
			if b.Mantissa == 0 {
				return Inf
			}
			return NaN
		}
	case specialsFN:
		if b.Exponent == maxExp && b.Mantissa == 1<<f.sigBits-1 {
			return NaN
		}
	case specialsFNUZ:
		if b.Neg && b.Exponent == 0 && b.Mantissa == 0 {
			return NaN
		}
	}
	if b.Exponent == 0 && b.Mantissa == 0 {
		return Zero
	}
	return Finite
}

// ToBinary64 returns the binary64 bit pattern of the value encoded by raw
// in layout l. Every supported layout widens exactly; NaNs map to the
// canonical quiet NaN. Only integer operations are used.
func ToBinary64(l Layout, raw uint64) uint64 {
	const (
		sigBits64 = 52
		bias64    = 1023
		quietNaN  = 0x7ff8000000000000
		expMask64 = 0x7ff0000000000000
	)
	b := l.Decode(raw)
	var sign uint64
	if b.Neg {
		sign = 1 << 63
	}
	switch l.classify(b) {
	case NaN:
		return quietNaN
	case Inf:
		return sign | expMask64
	case Zero:
		return sign
	}
	if l == Binary64 {
		return raw
	}

	f := &layouts[l]
	mant := b.Mantissa
	exp := int(b.Exponent) - f.bias
	if b.Exponent == 0 {
		// Normalize the subnormal so that its leading one becomes implicit.
		shift := int(f.sigBits) + 1 - bits.Len64(mant)
		mant <<= shift
		exp = 1 - f.bias - shift
	}
	mant &^= 1 << f.sigBits
	return sign | uint64(exp+bias64)<<sigBits64 | mant<<(sigBits64-f.sigBits)
}

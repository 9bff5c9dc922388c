// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragonbox_test

import (
	"bufio"
	"errors"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	. "github.com/taichimaeda/dragonbox"
)

func TestFormat64Literals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-1, "-1.0"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{1.5, "1.5"},
		{123.456, "123.456"},
		{1e14, "100000000000000.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e16, "1.5e+16"},
		{0.001, "0.001"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{0.000123, "0.000123"},
		{0.0000123, "1.23e-05"},
		{1e100, "1e+100"},
		{1e-100, "1e-100"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{2.2250738585072014e-308, "2.2250738585072014e-308"},
		{9007199254740993, "9007199254740992.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		if got := Format64(tt.in); got != tt.want {
			t.Errorf("Format64(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat32Literals(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.1, "0.1"},
		{1.0 / 3, "0.33333334"},
		{16777216, "16777216.0"},
		{1e10, "10000000000.0"},
		{1e20, "1e+20"},
		{math.MaxFloat32, "3.4028235e+38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{1.1754944e-38, "1.1754944e-38"},
		{float32(math.Inf(-1)), "-inf"},
	}
	for _, tt := range tests {
		if got := Format32(tt.in); got != tt.want {
			t.Errorf("Format32(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNaNPayloads(t *testing.T) {
	tests := []struct {
		l   Layout
		raw uint64
	}{
		{Binary64, 0x7ff8000000000000},
		{Binary64, 0xfff8000000000001},
		{Binary64, 0x7ff0000000000001},
		{Binary32, 0x7fc00000},
		{Binary32, 0xff800001},
		{Binary16, 0x7e00},
		{Binary16, 0xfc01},
		{BFloat16, 0x7fc0},
		{BFloat16, 0xff81},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.l, tt.raw); got != "nan" {
			t.Errorf("FormatFloat(%v, %#x) = %q, want \"nan\"", tt.l, tt.raw, got)
		}
	}
}

// Each of these sits exactly halfway between two shortest candidates,
// so the last digit must be even.
func TestTieToEven(t *testing.T) {
	tests := []struct {
		l    Layout
		raw  uint64
		want string
	}{
		{Binary16, 0x3100, "0.1562"},
		{Binary16, 0x3480, "0.2812"},
		{Binary16, 0x2000, "0.007812"},
		{BFloat16, 0x3ea0, "0.312"},
		{BFloat16, 0x4008, "2.12"},
		{BFloat16, 0x3c80, "0.0156"},
		{BFloat16, 0x3d00, "0.0312"},
		{Binary32, 0x4506e480, "2158.2812"},
		{Binary32, 0x46bb3a20, "23965.062"},
		{Binary32, 0x39800000, "0.00024414062"},
		{Binary64, 0x4270f2fae78fac80, "1164736100602.7812"},
		{Binary64, 0x3e60000000000000, "2.9802322387695312e-08"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.l, tt.raw); got != tt.want {
			t.Errorf("FormatFloat(%v, %#x) = %q, want %q", tt.l, tt.raw, got, tt.want)
		}
	}
}

func TestGolden(t *testing.T) {
	f, err := os.Open("testdata/golden.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			t.Fatalf("golden.txt:%d: malformed line %q", line, text)
		}
		l, err := ParseLayout(fields[0])
		if err != nil {
			t.Fatalf("golden.txt:%d: %v", line, err)
		}
		raw, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			t.Fatalf("golden.txt:%d: %v", line, err)
		}
		want := fields[2]

		if got := FormatFloat(l, raw); got != want {
			t.Errorf("golden.txt:%d: FormatFloat(%v, %#x) = %q, want %q", line, l, raw, got, want)
		}
		var sb strings.Builder
		if w, err := WriteFloat(&sb, l, raw); err != nil || w != len(want) || sb.String() != want {
			t.Errorf("golden.txt:%d: WriteFloat(%v, %#x) = %d, %v, %q, want %d, nil, %q",
				line, l, raw, w, err, sb.String(), len(want), want)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("no golden vectors")
	}
}

func randomFloat32FullRange() float32 {
	bits := rand.Uint32() // random 32-bit pattern
	return math.Float32frombits(bits)
}

func randomFloat64FullRange() float64 {
	bits := rand.Uint64() // random 64-bit pattern
	return math.Float64frombits(bits)
}

// decimalFromStrconv extracts the shortest digits from strconv's
// 'e' format, for example "-1.25e+03" becomes {true, 125, 1}.
func decimalFromStrconv(s string) Decimal {
	var d Decimal
	if strings.HasPrefix(s, "-") {
		d.Neg = true
		s = s[1:]
	}
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits := strings.Replace(mant, ".", "", 1)
	d.Significand, _ = strconv.ParseUint(digits, 10, 64)
	d.Exponent = e - (len(digits) - 1)
	return d
}

func TestFormatRandom(t *testing.T) {
	const iter = 100000

	for i := 0; i < iter; i++ {
		var bitSize int
		var val float64
		var raw uint64
		var l Layout
		switch rand.Intn(2) {
		case 0:
			f := randomFloat32FullRange()
			bitSize, val, raw, l = 32, float64(f), uint64(math.Float32bits(f)), Binary32
		case 1:
			val = randomFloat64FullRange()
			bitSize, raw, l = 64, math.Float64bits(val), Binary64
		}
		if math.IsNaN(val) || math.IsInf(val, 0) || val == 0 {
			continue
		}

		got, ok := Shortest(l, raw)
		want := decimalFromStrconv(strconv.FormatFloat(val, 'e', -1, bitSize))
		if !ok || got != want {
			t.Errorf("Mismatch:\nInput: %v (%v %#x)\nDragonbox: %+v\nstrconv: %+v", val, l, raw, got, want)
			continue
		}

		s := FormatFloat(l, raw)
		back, err := strconv.ParseFloat(s, bitSize)
		if err != nil || back != val {
			t.Errorf("FormatFloat(%v, %#x) = %q, reads back as %v, %v", l, raw, s, back, err)
		}
	}
}

func TestAppend(t *testing.T) {
	type myFloat float32
	dst := []byte("x=")
	dst = Append(dst, 0.1)
	dst = append(dst, ' ')
	dst = Append(dst, float32(0.1))
	dst = append(dst, ' ')
	dst = Append(dst, myFloat(16777216))
	if got, want := string(dst), "x=0.1 0.1 16777216.0"; got != want {
		t.Errorf("Append = %q, want %q", got, want)
	}

	dst = AppendFloat(dst[:0], Binary16, 0x3c00)
	dst = AppendFloat(dst, Binary16, 0x3c00|1<<16) // bits above the width are ignored
	if got, want := string(dst), "1.01.0"; got != want {
		t.Errorf("AppendFloat = %q, want %q", got, want)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) WriteString(string) (int, error) { return 0, w.err }

func TestWriteFloatError(t *testing.T) {
	errSink := errors.New("sink closed")
	n, err := WriteFloat(failingWriter{errSink}, Binary64, math.Float64bits(2.5))
	if n != 0 || err != errSink {
		t.Errorf("WriteFloat = %d, %v, want 0, %v", n, err, errSink)
	}
}

func TestShortest(t *testing.T) {
	tests := []struct {
		l    Layout
		raw  uint64
		want Decimal
		ok   bool
	}{
		{Binary64, math.Float64bits(1), Decimal{Significand: 1}, true},
		{Binary64, math.Float64bits(-1200), Decimal{Neg: true, Significand: 12, Exponent: 2}, true},
		{Binary64, math.Float64bits(0.125), Decimal{Significand: 125, Exponent: -3}, true},
		{Binary32, uint64(math.Float32bits(0.1)), Decimal{Significand: 1, Exponent: -1}, true},
		{Binary16, 0x3c00, Decimal{Significand: 1}, true},
		{Binary16, 0x0001, Decimal{Significand: 6, Exponent: -8}, true},
		{BFloat16, 0x3f80, Decimal{Significand: 1}, true},
		{Float8E4M3, 0x01, Decimal{Significand: 1953125, Exponent: -9}, true},
		{Float8E5M2, 0xfb, Decimal{Neg: true, Significand: 57344}, true},
		{Binary64, 0, Decimal{}, false},
		{Binary32, 0x7f800000, Decimal{}, false},
		{Binary16, 0x7e00, Decimal{}, false},
		{Float8E4M3FNUZ, 0x80, Decimal{}, false},
	}
	for _, tt := range tests {
		got, ok := Shortest(tt.l, tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Shortest(%v, %#x) = %+v, %v, want %+v, %v", tt.l, tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecimalString(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{Decimal{}, "0.0"},
		{Decimal{Neg: true}, "-0.0"},
		{Decimal{Significand: 5, Exponent: -324}, "5e-324"},
		{Decimal{Significand: 17976931348623157, Exponent: 292}, "1.7976931348623157e+308"},
		{Decimal{Significand: 12, Exponent: 2}, "1200.0"},
		{Decimal{Significand: 125, Exponent: -1}, "12.5"},
		{Decimal{Significand: 100, Exponent: -2}, "1.00"},
		{Decimal{Neg: true, Significand: 25, Exponent: -6}, "-2.5e-05"},
		{Decimal{Significand: 123456789012, Exponent: -4}, "12345678.9012"},
		{Decimal{Significand: 100000000000000000}, "1.00000000000000000e+17"},
		{Decimal{Significand: 123456789012345678, Exponent: -2}, "1234567890123456.78"},
		{Decimal{Significand: math.MaxUint64}, "1.8446744073709551615e+19"},
		{Decimal{Neg: true, Significand: math.MaxUint64, Exponent: -40}, "-1.8446744073709551615e-21"},
		{Decimal{Significand: 15, Exponent: 1233}, "1.5e+1234"},
		{Decimal{Significand: 7, Exponent: -1000}, "7e-1000"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func BenchmarkFormat64(b *testing.B) {
	vals := make([]float64, 1024)
	for i := range vals {
		vals[i] = randomFloat64FullRange()
	}
	buf := make([]byte, 0, 32)

	b.Run("dragonbox", func(b *testing.B) {
		i := 0
		for b.Loop() {
			buf = Append(buf[:0], vals[i%len(vals)])
			i++
		}
	})
	b.Run("strconv", func(b *testing.B) {
		i := 0
		for b.Loop() {
			buf = strconv.AppendFloat(buf[:0], vals[i%len(vals)], 'g', -1, 64)
			i++
		}
	})
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dragonbox formats binary floating-point values as the shortest
// decimal string that reads back to the same value.
//
// Binary to decimal conversion uses the Dragonbox algorithm by Junekey Jeon,
// generalized from binary32 and binary64 to binary16 and bfloat16.
// Values are given as a [Layout] and a raw bit pattern, so formats without
// a native Go type can be rendered too. The 8-bit formats are rendered
// from precomputed tables of exact values.
//
// For binary to decimal rounding, uses round to nearest, tie to even.
// For decimal to binary rounding, assumes round to nearest, tie to even.
// The conversion uses only integer arithmetic: no floating-point
// operations and no native 128-bit multiplication.
//
// The original paper by Junekey Jeon can be found at:
// https://github.com/jk-jeon/dragonbox/blob/d5dc40ae6a3f1a4559cda816738df2d6255b4e24/other_files/Dragonbox.pdf
//
// The reference implementation in C++ by Junekey Jeon can be found at:
// https://github.com/jk-jeon/dragonbox/blob/6c7c925b571d54486b9ffae8d9d18a822801cbda/subproject/simple/include/simple_dragonbox.h
//
// All tables are initialized before main and never modified, so every
// function in this package is safe for concurrent use.
package dragonbox

//go:generate go run ./cmd/gentables -o float8tables.go

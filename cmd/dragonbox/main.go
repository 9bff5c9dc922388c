// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dragonbox prints the shortest decimal rendering of floating-point bit
// patterns.
//
// Usage:
//
//	dragonbox [-layout name] [-v] [-float] [-all] [-debug] pattern...
//
// Patterns are unsigned integers in Go literal syntax (0x3c00, 0b1, 15360).
// With -float the arguments are decimal floats instead, converted to the
// nearest binary32 or binary64 value. With -all every pattern of a layout
// of at most 16 bits is printed next to its rendering.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args[1:], os.Stdout, os.Stderr, styled); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "dragonbox: %v\n", err)
		os.Exit(1)
	}
}

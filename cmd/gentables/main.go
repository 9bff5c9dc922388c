// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gentables regenerates the 8-bit rendering tables of package dragonbox.
//
// Usage:
//
//	gentables [-o float8tables.go] [-pkg dragonbox] [-debug]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/taichimaeda/dragonbox/internal/tablegen"
)

func main() {
	var (
		out   = flag.String("o", "float8tables.go", "output file")
		pkg   = flag.String("pkg", "dragonbox", "package name of the generated file")
		debug = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gentables: ")

	if err := run(context.Background(), *out, *pkg, *debug); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", *out)
}

// run writes the tables for package pkg to path. The debug logger is
// flushed before run returns.
func run(ctx context.Context, path, pkg string, debug bool) error {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer l.Sync()
		tablegen.SetLogger(l)
		defer tablegen.SetLogger(zap.NewNop())
	}

	src, err := tablegen.Generate(ctx, pkg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0666); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	return nil
}

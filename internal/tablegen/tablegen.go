// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tablegen generates the rendering tables of the 8-bit layouts.
//
// Every entry is the binary64 rendering of the exact value of its bit
// pattern. An 8-bit value has at most 4 significant bits, so the exact
// decimal is short and the binary64 shortest rendering equals it.
package tablegen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taichimaeda/dragonbox"
)

// A Table names the generated table of one 8-bit layout.
type Table struct {
	Layout dragonbox.Layout
	Name   string // Go identifier of the layout constant
}

// Var returns the name of the generated variable.
func (t Table) Var() string {
	return strings.ToLower(t.Name[:1]) + t.Name[1:] + "Strings"
}

// Tables lists the generated tables in output order.
var Tables = []Table{
	{dragonbox.Float8E4M3, "Float8E4M3"},
	{dragonbox.Float8E4M3FNUZ, "Float8E4M3FNUZ"},
	{dragonbox.Float8E5M2, "Float8E5M2"},
	{dragonbox.Float8E5M2FNUZ, "Float8E5M2FNUZ"},
}

// Render returns the rendering of every bit pattern of the 8-bit layout l.
func Render(l dragonbox.Layout) ([256]string, error) {
	var out [256]string
	if !l.Valid() || l.Width() != 8 {
		return out, fmt.Errorf("tablegen: %v is not an 8-bit layout", l)
	}
	for raw := range out {
		out[raw] = dragonbox.FormatFloat(dragonbox.Binary64, dragonbox.ToBinary64(l, uint64(raw)))
	}
	return out, nil
}

// Generate returns the formatted Go source declaring every table in
// Tables for package pkg. Tables are rendered concurrently.
func Generate(ctx context.Context, pkg string) ([]byte, error) {
	rendered := make([][256]string, len(Tables))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range Tables {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Render(t.Layout)
			if err != nil {
				return err
			}
			rendered[i] = r
			Logger().Debug("rendered table",
				zap.Stringer("layout", t.Layout),
				zap.String("var", t.Var()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gentables; DO NOT EDIT.\n\npackage %s\n", pkg)
	for i, t := range Tables {
		fmt.Fprintf(&buf, "\n// %s renders every %s bit pattern, indexed by the raw byte.\n", t.Var(), t.Name)
		fmt.Fprintf(&buf, "var %s = [256]string{\n", t.Var())
		for row := 0; row < 256; row += 8 {
			buf.WriteByte('\t')
			for col, s := range rendered[i][row : row+8] {
				if col > 0 {
					buf.WriteByte(' ')
				}
				fmt.Fprintf(&buf, "%q,", s)
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("tablegen: formatting source: %w", err)
	}
	Logger().Info("generated tables", zap.Int("tables", len(Tables)), zap.Int("bytes", len(src)))
	return src, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/taichimaeda/dragonbox"
)

// maxEnumerateWidth bounds the layouts -all accepts.
const maxEnumerateWidth = 16

var errNoPatterns = errors.New("no patterns given")

type options struct {
	layout  dragonbox.Layout
	verbose bool
	floats  bool
	all     bool
	debug   bool
}

func parseArgs(args []string, stderr io.Writer) (options, []string, error) {
	var (
		opts   options
		layout string
	)
	fs := flag.NewFlagSet("dragonbox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&layout, "layout", "binary64", "layout of the patterns")
	fs.BoolVar(&opts.verbose, "v", false, "print the decoded fields and decimal of each pattern")
	fs.BoolVar(&opts.floats, "float", false, "read arguments as decimal floats (binary32 and binary64 only)")
	fs.BoolVar(&opts.all, "all", false, "print every pattern of the layout")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dragonbox [flags] pattern...\n\nlayouts:")
		for _, l := range dragonbox.Layouts() {
			fmt.Fprintf(fs.Output(), " %v", l)
		}
		fmt.Fprintf(fs.Output(), "\n\nflags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	l, err := dragonbox.ParseLayout(layout)
	if err != nil {
		return opts, nil, err
	}
	opts.layout = l

	rest := fs.Args()
	switch {
	case opts.all && len(rest) > 0:
		return opts, nil, errors.New("-all takes no patterns")
	case opts.all && l.Width() > maxEnumerateWidth:
		return opts, nil, fmt.Errorf("-all needs a layout of at most %d bits, %v has %d", maxEnumerateWidth, l, l.Width())
	case opts.all && opts.floats:
		return opts, nil, errors.New("-all and -float are exclusive")
	case opts.floats && l != dragonbox.Binary32 && l != dragonbox.Binary64:
		return opts, nil, fmt.Errorf("-float needs binary32 or binary64, not %v", l)
	case !opts.all && len(rest) == 0:
		return opts, nil, errNoPatterns
	}
	return opts, rest, nil
}

// run executes the command with the given arguments, writing renderings
// to stdout and diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer, styled bool) error {
	opts, rest, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}
	logger = logger.With(zap.Stringer("layout", opts.layout))

	var raws []uint64
	if opts.all {
		n := uint64(1) << opts.layout.Width()
		raws = make([]uint64, n)
		for i := range raws {
			raws[i] = uint64(i)
		}
	} else {
		raws = make([]uint64, 0, len(rest))
		for _, s := range rest {
			raw, err := parsePattern(opts, s)
			if err != nil {
				return err
			}
			raws = append(raws, raw)
		}
	}
	logger.Debug("rendering patterns", zap.Int("count", len(raws)))

	w := bufio.NewWriter(stdout)
	p := printer{styled: styled}
	digits := int(opts.layout.Width()+3) / 4
	var buf []byte
	for _, raw := range raws {
		switch {
		case opts.verbose:
			p.describe(w, opts.layout, raw, digits)
		case opts.all:
			fmt.Fprintf(w, "0x%0*x ", digits, raw)
			fallthrough
		default:
			buf = dragonbox.AppendFloat(buf[:0], opts.layout, raw)
			buf = append(buf, '\n')
			w.Write(buf)
		}
		logger.Debug("rendered", zap.Uint64("raw", raw), zap.Stringer("class", opts.layout.Classify(raw)))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func parsePattern(opts options, s string) (uint64, error) {
	if opts.floats {
		bitSize := int(opts.layout.Width())
		f, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return 0, fmt.Errorf("parse float: %w", err)
		}
		if bitSize == 32 {
			return uint64(math.Float32bits(float32(f))), nil
		}
		return math.Float64bits(f), nil
	}

	raw, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("parse pattern: %w", err)
	}
	if err := opts.layout.Check(raw); err != nil {
		return 0, err
	}
	return raw, nil
}

func (p printer) describe(w io.Writer, l dragonbox.Layout, raw uint64, digits int) {
	b := l.Decode(raw)
	sign := "+"
	if b.Neg {
		sign = "-"
	}
	fmt.Fprintln(w, p.header(fmt.Sprintf("0x%0*x %v", digits, raw, l)))
	fmt.Fprintln(w, p.label("sign")+p.field(sign))
	fmt.Fprintln(w, p.label("exponent")+p.field(fmt.Sprintf("%d (unbiased %d)", b.Exponent, int(b.Exponent)-l.Bias())))
	fmt.Fprintln(w, p.label("mantissa")+p.field(fmt.Sprintf("%#x", b.Mantissa)))
	fmt.Fprintln(w, p.label("class")+p.field(l.Classify(raw).String()))
	if d, ok := dragonbox.Shortest(l, raw); ok {
		fmt.Fprintln(w, p.label("decimal")+p.field(fmt.Sprintf("%d * 10^%d", d.Significand, d.Exponent)))
	}
	fmt.Fprintln(w, p.label("result")+p.result(dragonbox.FormatFloat(l, raw)))
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ticks prints nicely rounded tick values for an interval.
//
// Usage:
//
//	ticks [flags] start stop
//
// ticks prints about count+1 values between start and stop, one per
// line, each a multiple of 1, 2, 5 or 10 times a power of ten. If
// start > stop, the values are printed in descending order.
//
// For example,
//
//	ticks -n 10 -- -0.125 0.25
//
// prints -0.15, -0.1, -0.05 and so on through 0.25. Use -- before a
// negative start so it is not taken for a flag.
//
// With --scale log or --scale pow, ticks are chosen for a logarithmic
// or power scale instead. --minor also prints minor ticks, and
// --range lo,hi prints the position of each tick when the interval
// is mapped onto [lo, hi].
//
// Every flag can also be set with an AXISTICKS_ environment variable
// (for example AXISTICKS_COUNT=5) or in a YAML file named by --config.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/timfish/axis-ticks/scale"
)

func main() {
	fs := newFlagSet()
	cfg, err := loadConfig(fs, os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errBadUsage):
		// The flag set has already reported the error.
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "ticks: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(2)
	}
	start, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		logger.Fatal("bad start", zap.Error(err))
	}
	stop, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		logger.Fatal("bad stop", zap.Error(err))
	}

	w := bufio.NewWriter(os.Stdout)
	if err := run(cfg, logger, start, stop, w); err != nil {
		logger.Fatal("computing ticks", zap.Error(err))
	}
	if err := w.Flush(); err != nil {
		logger.Fatal("writing ticks", zap.Error(err))
	}
}

// An axis is the computed ticks for one interval.
type axis struct {
	major, minor []float64
	// s maps ticks into [0, 1]. It is nil if no mapping was
	// requested.
	s scale.Interface
}

func run(cfg *config, logger *zap.Logger, start, stop float64, w io.Writer) error {
	a, err := compute(cfg, start, stop)
	if err != nil {
		return err
	}
	logger.Debug("computed ticks",
		zap.String("scale", cfg.Scale),
		zap.Float64("start", start),
		zap.Float64("stop", stop),
		zap.Int("count", cfg.Count),
		zap.Int("major", len(a.major)),
		zap.Int("minor", len(a.minor)))
	if len(a.major) == 0 {
		logger.Warn("no ticks for interval",
			zap.Float64("start", start), zap.Float64("stop", stop), zap.Int("count", cfg.Count))
	}

	var majorPos, minorPos []float64
	if cfg.Range != nil {
		out := scale.NewOutputScale(cfg.Range[0], cfg.Range[1])
		majorPos = out.MapAll(a.s, a.major)
		minorPos = out.MapAll(a.s, a.minor)
	}

	bits := 64
	if cfg.Float32 {
		bits = 32
	}
	emit := func(kind string, xs, pos []float64) error {
		for i, x := range xs {
			line := strconv.FormatFloat(x, 'g', -1, bits)
			if cfg.Minor {
				line = kind + "\t" + line
			}
			if pos != nil {
				line += "\t" + strconv.FormatFloat(pos[i], 'g', -1, 64)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
	if err := emit("major", a.major, majorPos); err != nil {
		return err
	}
	return emit("minor", a.minor, minorPos)
}

func compute(cfg *config, start, stop float64) (*axis, error) {
	switch cfg.Scale {
	case "linear":
		if cfg.Nice {
			start, stop = niceInterval(start, stop, cfg.Count)
		}
		a := &axis{major: linearTicks(cfg, start, stop)}
		if cfg.Minor || cfg.Range != nil {
			s, err := scale.NewLinear([]float64{start, stop})
			if err != nil {
				return nil, err
			}
			a.s = s
			if cfg.Minor {
				_, a.minor = s.Ticks(cfg.Count)
			}
		}
		return a, nil

	case "pow":
		s, err := scale.NewPower([]float64{start, stop}, cfg.Exp)
		if err != nil {
			return nil, err
		}
		if cfg.Nice {
			s.Nice(cfg.Count)
		}
		return scaleTicks(cfg, s), nil

	case "log":
		s, err := scale.NewLog([]float64{start, stop}, cfg.Base)
		if err != nil {
			return nil, err
		}
		if cfg.Nice {
			s.Nice(cfg.Count)
		}
		return scaleTicks(cfg, s), nil
	}
	return nil, fmt.Errorf("unknown scale %q", cfg.Scale)
}

// linearTicks returns the ticks between start and stop in the
// precision selected by cfg.
func linearTicks(cfg *config, start, stop float64) []float64 {
	if !cfg.Float32 {
		return scale.Ticks(start, stop, cfg.Count)
	}
	ticks := scale.Ticks(float32(start), float32(stop), cfg.Count)
	out := make([]float64, len(ticks))
	for i, x := range ticks {
		out[i] = float64(x)
	}
	return out
}

// niceInterval extends [start, stop] to nice bounds, preserving its
// direction.
func niceInterval(start, stop float64, count int) (float64, float64) {
	if stop < start {
		stop, start = scale.Nice(stop, start, count)
		return start, stop
	}
	return scale.Nice(start, stop, count)
}

func scaleTicks(cfg *config, s scale.Interface) *axis {
	major, minor := s.Ticks(cfg.Count)
	if !cfg.Minor {
		minor = nil
	}
	return &axis{major: major, minor: minor, s: s}
}

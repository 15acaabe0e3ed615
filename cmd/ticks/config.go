// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "AXISTICKS"

// errBadUsage marks command line errors that the flag set has already
// printed along with the usage text.
var errBadUsage = errors.New("bad usage")

type config struct {
	Count   int     `mapstructure:"count"`
	Scale   string  `mapstructure:"scale"`
	Base    float64 `mapstructure:"base"`
	Exp     float64 `mapstructure:"exp"`
	Nice    bool    `mapstructure:"nice"`
	Minor   bool    `mapstructure:"minor"`
	Float32 bool    `mapstructure:"float32"`
	Verbose bool    `mapstructure:"verbose"`

	// Range is the parsed form of the "range" setting, or nil.
	Range *[2]float64 `mapstructure:"-"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ticks", pflag.ContinueOnError)
	fs.IntP("count", "n", 10, "approximate number of ticks")
	fs.String("scale", "linear", "scale `type`: linear, log or pow")
	fs.Float64("base", 10, "logarithm base for --scale log")
	fs.Float64("exp", 0.5, "exponent for --scale pow")
	fs.Bool("nice", false, "extend the interval to nice bounds first")
	fs.Bool("minor", false, "also print minor ticks")
	fs.Bool("float32", false, "compute in single precision (linear only)")
	fs.String("range", "", "print positions mapped onto output range `lo,hi`")
	fs.String("config", "", "read settings from YAML `file`")
	fs.BoolP("verbose", "v", false, "log debugging output")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ticks [flags] start stop\n")
		fs.PrintDefaults()
	}
	return fs
}

// loadConfig parses args into fs and merges the flags with the
// environment and the optional config file. Flags take precedence,
// then the environment, then the file.
func loadConfig(fs *pflag.FlagSet, args []string) (*config, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errBadUsage, err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if r := v.GetString("range"); r != "" {
		lo, hi, err := parseRange(r)
		if err != nil {
			return nil, err
		}
		cfg.Range = &[2]float64{lo, hi}
	}
	return &cfg, nil
}

func parseRange(s string) (lo, hi float64, err error) {
	los, his, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: want lo,hi", s)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(los), 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(his), 64); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	return lo, hi, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	if verbose {
		c = zap.NewDevelopmentConfig()
	}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.EncoderConfig.TimeKey = "time"
	c.OutputPaths = []string{"stderr"}
	return c.Build()
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes nicely rounded tick values and maps data
// values through continuous scales.
//
// The core of the package is Ticks, which returns evenly spaced
// multiples of 1, 2, 5 or 10 times a power of ten spanning an
// interval. The scale types build on it to provide major and minor
// ticks for linear, power and logarithmic domains.
package scale

import "errors"

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	Map(x float64) float64
	Ticks(n int) (major, minor []float64)
}

var (
	ErrEmptyInput  = errors.New("scale: no input values")
	ErrZeroDomain  = errors.New("scale: input domain has zero width")
	ErrNonPositive = errors.New("scale: log domain must be positive")
)

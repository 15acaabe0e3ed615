// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

type Log struct {
	min, max, base float64
	logMin, denom  float64
}

// NewLog returns a new logarithmic scale spanning the finite values
// of input, all of which must be positive.
//
// base has no effect on the scaling. It is only used for computing
// tick marks.
func NewLog(input []float64, base float64) (*Log, error) {
	if !(base > 1) {
		return nil, fmt.Errorf("scale: log base %g must be > 1", base)
	}
	min, max, err := domain(input)
	if err != nil {
		return nil, err
	}
	if min <= 0 {
		return nil, fmt.Errorf("%w: minimum %g", ErrNonPositive, min)
	}
	s := &Log{min: min, max: max, base: base}
	s.precompute()
	return s, nil
}

func (s *Log) precompute() {
	s.logMin = math.Log(s.min)
	s.denom = math.Log(s.max) - s.logMin
}

// Domain returns the input interval of s.
func (s *Log) Domain() (min, max float64) {
	return s.min, s.max
}

func (s *Log) Map(x float64) float64 {
	return (math.Log(x) - s.logMin) / s.denom
}

// logb returns the base-b logarithm of x.
func (s *Log) logb(x float64) float64 {
	return math.Log(x) / math.Log(s.base)
}

// Nice expands the domain of s to the powers of base just outside
// it. If that leaves more than n decades, the exponents are further
// rounded to the nice tick step for n ticks.
func (s *Log) Nice(n int) {
	lo, hi := math.Floor(s.logb(s.min)), math.Ceil(s.logb(s.max))
	if hi-lo > float64(n) {
		lo, hi = Nice(lo, hi, n)
	}
	s.min, s.max = math.Pow(s.base, lo), math.Pow(s.base, hi)
	s.precompute()
}

// maxMinorBase is the largest base for which Ticks places minor ticks
// at every integer multiple of a power. Larger bases would need too
// many minor ticks per power.
const maxMinorBase = 100

// Ticks returns major ticks at powers of base and, if the domain
// spans fewer than n powers and base is an integer no larger than
// maxMinorBase, minor ticks at integer multiples of those powers.
// Otherwise, major ticks are base raised to nice exponents that fall
// in the domain, and there are no minor ticks. If that yields fewer
// than n/2 ticks, Ticks falls back to linear ticks over the domain.
func (s *Log) Ticks(n int) (major, minor []float64) {
	if n < 1 {
		return nil, nil
	}
	lo, hi := s.logb(s.min), s.logb(s.max)

	major, minor = []float64{}, []float64{}
	if s.base != math.Trunc(s.base) || s.base > maxMinorBase || hi-lo >= float64(n) {
		count := n
		if d := int(hi - lo); d < count {
			count = max(d, 1)
		}
		for _, e := range Ticks(lo, hi, count) {
			// Exponents are rounded outward, so the
			// outermost powers may miss the domain.
			if x := math.Pow(s.base, e); s.contains(x) {
				major = append(major, x)
			}
		}
	} else {
		for e := math.Floor(lo); e <= math.Ceil(hi); e++ {
			for k := 1.0; k < s.base; k++ {
				var x float64
				if e < 0 {
					x = k / math.Pow(s.base, -e)
				} else {
					x = k * math.Pow(s.base, e)
				}
				if x < s.min {
					continue
				} else if x > s.max {
					break
				}

				if k == 1 {
					major = append(major, x)
				} else {
					minor = append(minor, x)
				}
			}
		}
	}

	if 2*(len(major)+len(minor)) < n {
		return Ticks(s.min, s.max, n), []float64{}
	}
	return major, minor
}

// contains reports whether x is in the domain of s, allowing for
// rounding error in computing powers of the base.
func (s *Log) contains(x float64) bool {
	const eps = 1e-12
	return x >= s.min*(1-eps) && x <= s.max*(1+eps)
}

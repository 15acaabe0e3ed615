// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// OutputScale maps the unit interval onto an output range, such as a
// pixel extent. Values outside [0, 1] are cropped by default.
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop causes Map to reject values outside [0, 1].
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp causes Map to extrapolate values outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp causes Map to pin values outside [0, 1] to the ends of the
// output range.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

func (s OutputScale) Map(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	} else if s.clamp == clampClamp {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// MapAll maps xs through in and then s. Values cropped by s are NaN
// in the result.
func (s OutputScale) MapAll(in Interface, xs []float64) []float64 {
	return vec.Map(func(x float64) float64 {
		if y, ok := s.Map(in.Map(x)); ok {
			return y
		}
		return math.NaN()
	}, xs)
}

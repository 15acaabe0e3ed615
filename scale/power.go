// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power is a scale that maps the normalized input through x^exp.
// Ticks are placed as for a linear scale over the same domain.
type Power struct {
	lin Linear
	exp float64
}

// NewPower returns a new power scale.
func NewPower(input []float64, exp float64) (Power, error) {
	lin, err := NewLinear(input)
	if err != nil {
		return Power{}, err
	}
	return Power{lin, exp}, nil
}

func (s Power) Map(x float64) float64 {
	return math.Pow(s.lin.Map(x), s.exp)
}

// Nice expands the domain of s to major tick marks.
func (s *Power) Nice(n int) {
	s.lin.Nice(n)
}

func (s Power) Ticks(n int) (major, minor []float64) {
	return s.lin.Ticks(n)
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// minorPerMajor is how many minor intervals Linear aims to place
// between adjacent major ticks.
const minorPerMajor = 5

type Linear struct {
	min, max float64
}

// NewLinear returns a new linear scale spanning the finite values of
// input.
func NewLinear(input []float64) (Linear, error) {
	min, max, err := domain(input)
	if err != nil {
		return Linear{}, err
	}
	return Linear{min, max}, nil
}

// Domain returns the input interval of s.
func (s Linear) Domain() (min, max float64) {
	return s.min, s.max
}

func (s Linear) Map(x float64) float64 {
	return (x - s.min) / (s.max - s.min)
}

// Nice expands the domain of s so both ends fall on major tick marks
// of Ticks(n).
func (s *Linear) Nice(n int) {
	s.min, s.max = Nice(s.min, s.max, n)
}

// Ticks returns about n+1 major ticks spanning the domain of s and
// the minor ticks subdividing them. It returns no ticks if n < 1.
func (s Linear) Ticks(n int) (major, minor []float64) {
	if n < 1 {
		return nil, nil
	}
	major = Ticks(s.min, s.max, n)
	return major, minorTicks(major, Ticks(s.min, s.max, n*minorPerMajor))
}

// minorTicks returns the elements of fine that are not in major.
// Both must be ascending.
func minorTicks(major, fine []float64) []float64 {
	minor := []float64{}
	i := 0
	for _, x := range fine {
		for i < len(major) && major[i] < x {
			i++
		}
		if i < len(major) && major[i] == x {
			continue
		}
		minor = append(minor, x)
	}
	return minor
}

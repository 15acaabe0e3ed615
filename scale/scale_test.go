// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrors(t *testing.T) {
	_, err := NewLinear(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewLinear([]float64{math.NaN(), math.Inf(1)})
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewLinear([]float64{3, 3})
	assert.ErrorIs(t, err, ErrZeroDomain)
	_, err = NewPower([]float64{2}, 2)
	assert.ErrorIs(t, err, ErrZeroDomain)
	_, err = NewLog([]float64{0, 10}, 10)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = NewLog([]float64{1, 10}, 1)
	assert.Error(t, err)
}

func TestLinear(t *testing.T) {
	s, err := NewLinear([]float64{1, 0.25, 0, math.NaN()})
	require.NoError(t, err)
	min, max := s.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
	assert.Equal(t, 0.5, s.Map(0.5))

	major, minor := s.Ticks(5)
	assert.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, major)
	require.Len(t, minor, 15)
	assert.Equal(t, []float64{0.05, 0.1, 0.15, 0.25}, minor[:4])
	for _, x := range minor {
		assert.NotContains(t, major, x)
	}

	major, minor = s.Ticks(0)
	assert.Empty(t, major)
	assert.Empty(t, minor)
}

func TestLinearNice(t *testing.T) {
	s, err := NewLinear([]float64{132, 876})
	require.NoError(t, err)
	s.Nice(5)
	min, max := s.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1000.0, max)

	major, _ := s.Ticks(5)
	assert.Equal(t, []float64{0, 200, 400, 600, 800, 1000}, major)
}

func TestPower(t *testing.T) {
	s, err := NewPower([]float64{0, 100}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Map(25))

	major, _ := s.Ticks(4)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, major)
}

func TestLog(t *testing.T) {
	s, err := NewLog([]float64{1, 1000}, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Map(1))
	assert.InDelta(t, 1.0/3, s.Map(10), 1e-12)

	major, minor := s.Ticks(5)
	assert.Equal(t, []float64{1, 10, 100, 1000}, major)
	assert.Len(t, minor, 24)
	assert.Equal(t, []float64{2, 3, 4}, minor[:3])
}

func TestLogWide(t *testing.T) {
	s, err := NewLog([]float64{1, 1e21}, 10)
	require.NoError(t, err)

	major, minor := s.Ticks(5)
	assert.Empty(t, minor)
	require.NotEmpty(t, major)
	assert.Equal(t, 1.0, major[0])
	assert.LessOrEqual(t, len(major), 6)
	for _, x := range major {
		e := math.Round(math.Log10(x))
		assert.Zero(t, math.Mod(e, 5), "major tick %g", x)
	}
}

func TestLogLargeBase(t *testing.T) {
	s, err := NewLog([]float64{2.5, 1e14}, 1e15)
	require.NoError(t, err)

	done := make(chan struct{})
	var major, minor []float64
	go func() {
		major, minor = s.Ticks(5)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Ticks did not return")
	}
	assert.Equal(t, []float64{2e13, 4e13, 6e13, 8e13, 1e14}, major)
	assert.Empty(t, minor)
}

func TestLogFractionalBase(t *testing.T) {
	s, err := NewLog([]float64{1, 2}, 2.5)
	require.NoError(t, err)

	// The power above 1 is 2.5, outside the domain.
	major, minor := s.Ticks(1)
	assert.Equal(t, []float64{1}, major)
	assert.Empty(t, minor)

	// Too few powers fall in the domain, so ticks are linear.
	major, minor = s.Ticks(5)
	assert.Equal(t, []float64{1, 1.2, 1.4, 1.6, 1.8, 2}, major)
	assert.Empty(t, minor)

	s, err = NewLog([]float64{1, math.Pow(2.5, 10)}, 2.5)
	require.NoError(t, err)
	major, minor = s.Ticks(5)
	assert.Empty(t, minor)
	require.GreaterOrEqual(t, len(major), 5)
	require.LessOrEqual(t, len(major), 6)
	for i, x := range major {
		assert.Equal(t, math.Pow(2.5, float64(2*i)), x)
	}
}

func TestLogNice(t *testing.T) {
	s, err := NewLog([]float64{3, 700}, 10)
	require.NoError(t, err)
	s.Nice(5)
	min, max := s.Domain()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 1000.0, max)
}

func TestOutputScale(t *testing.T) {
	out := NewOutputScale(100, 200)
	y, ok := out.Map(0.5)
	assert.True(t, ok)
	assert.Equal(t, 150.0, y)
	_, ok = out.Map(1.5)
	assert.False(t, ok)

	out.Clamp()
	y, ok = out.Map(1.5)
	assert.True(t, ok)
	assert.Equal(t, 200.0, y)

	out.Unclamp()
	y, ok = out.Map(-0.5)
	assert.True(t, ok)
	assert.Equal(t, 50.0, y)
}

func TestMapAll(t *testing.T) {
	s, err := NewLinear([]float64{0, 10})
	require.NoError(t, err)
	out := NewOutputScale(100, 200)

	ys := out.MapAll(s, []float64{0, 5, 10, 20})
	require.Len(t, ys, 4)
	assert.Equal(t, []float64{100, 150, 200}, ys[:3])
	assert.True(t, math.IsNaN(ys[3]))
}

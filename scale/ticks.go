// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of element types tick sequences can be computed
// over.
type Float interface {
	constraints.Float
}

// MaxTicks is the longest sequence Ticks will produce. Longer
// sequences (which only arise from enormous counts) yield no ticks.
const MaxTicks = 1 << 24

// Tick step thresholds. Each is the geometric mean of two adjacent
// nice mantissas, so a raw step snaps to the mantissa nearest to it
// on a log scale.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// An increment is the spacing between ticks. If inverted is set, the
// spacing is 1/value; small spacings are kept in this form so ticks
// can be computed by dividing integers rather than multiplying by an
// inexact fraction.
type increment[T Float] struct {
	value    T
	inverted bool
}

func tickIncrement[T Float](start, stop T, count int) increment[T] {
	step := (stop - start) / T(count)
	power := math.Floor(log10(float64(step)))
	mantissa := step / T(math.Pow(10, power))

	var v T
	switch {
	case mantissa >= T(e10):
		v = 10
	case mantissa >= T(e5):
		v = 5
	case mantissa >= T(e2):
		v = 2
	default:
		v = 1
	}

	if power >= 0 {
		return increment[T]{value: v * T(math.Pow(10, power))}
	}
	return increment[T]{value: T(math.Pow(10, -power)) / v, inverted: true}
}

// signed returns the encoding of inc used by TickIncrement, where inverted
// increments are negative.
func (inc increment[T]) signed() T {
	if inc.inverted {
		return -inc.value
	}
	return inc.value
}

// valid reports whether inc can be used to step through an interval.
func (inc increment[T]) valid() bool {
	v := float64(inc.value)
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TickIncrement returns the nice spacing for about count ticks
// between start and stop, which must satisfy start <= stop.
//
// If the spacing is 1 or more, the result is the spacing itself. If
// it is less than 1, the result is the negated reciprocal of the
// spacing; for example, a spacing of 0.05 is returned as -20.
//
// TickIncrement does not validate its arguments. A result of zero,
// NaN or ±Inf means there is no usable spacing.
func TickIncrement[T Float](start, stop T, count int) T {
	return tickIncrement(start, stop, count).signed()
}

// TickStep returns the spacing between ticks for about count ticks
// between start and stop. Unlike TickIncrement, start and stop may
// be in either order, and the result is the actual (possibly
// fractional) spacing, negated if stop < start.
func TickStep[T Float](start, stop T, count int) T {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	step := inc.value
	if inc.inverted {
		step = 1 / step
	}
	if reverse {
		step = -step
	}
	return step
}

// Ticks returns about count+1 nicely rounded values between start
// and stop, suitable for tick marks or grid lines. Ticks are multiples
// of 1, 2, 5 or 10 times a power of ten. The result is ascending if
// start <= stop and descending otherwise.
//
// If start == stop and count > 0, Ticks returns just start. Ticks
// returns nil if either bound is NaN or infinite, or if count < 1.
//
// Small spacings may produce ticks just outside [start, stop], since
// those are computed from the scaled bounds rounded outward.
func Ticks[T Float](start, stop T, count int) []T {
	if start == stop && count > 0 && isFinite(start) {
		return []T{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	inc := tickIncrement(start, stop, count)
	if !inc.valid() {
		return nil
	}

	var ticks []T
	if !inc.inverted {
		step := inc.value
		lo, hi := ceil(start/step), floor(stop/step)
		n, ok := tickCount(lo, hi)
		if !ok {
			return nil
		}
		ticks = make([]T, n)
		for i := range ticks {
			ticks[i] = (lo + T(i)) * step
		}
	} else {
		scale := inc.value
		lo, hi := floor(start*scale), ceil(stop*scale)
		n, ok := tickCount(lo, hi)
		if !ok {
			return nil
		}
		ticks = make([]T, n)
		for i := range ticks {
			ticks[i] = (lo + T(i)) / scale
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickCount returns the number of integers in [lo, hi]. It fails
// rather than overflowing when the count is not a representable
// length.
func tickCount[T Float](lo, hi T) (int, bool) {
	n := math.Ceil(float64(hi - lo + 1))
	if math.IsNaN(n) || n < 0 || n > MaxTicks {
		return 0, false
	}
	return int(n), true
}

// Nice extends [start, stop] so both bounds are multiples of the
// tick step for about count ticks. It repeats until the step no
// longer changes, since widening the domain can change the step.
// If no step can be computed, start and stop are returned unchanged.
//
// start and stop must satisfy start <= stop.
func Nice[T Float](start, stop T, count int) (T, T) {
	var prev increment[T]
	for i := 0; i < 10; i++ {
		inc := tickIncrement(start, stop, count)
		if inc == prev || !inc.valid() {
			break
		}
		if inc.inverted {
			start = floor(start*inc.value) / inc.value
			stop = ceil(stop*inc.value) / inc.value
		} else {
			start = floor(start/inc.value) * inc.value
			stop = ceil(stop/inc.value) * inc.value
		}
		prev = inc
	}
	return start, stop
}

// log10 is math.Log10, made exact for subnormal x by scaling it into
// the normal range first.
func log10(x float64) float64 {
	if x > 0 && x < 0x1p-1022 {
		return math.Log10(x*0x1p52) - 52*math.Log10(2)
	}
	return math.Log10(x)
}

func floor[T Float](x T) T {
	return T(math.Floor(float64(x)))
}

func ceil[T Float](x T) T {
	return T(math.Ceil(float64(x)))
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

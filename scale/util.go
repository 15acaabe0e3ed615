// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// domain returns the finite extent of xs.
func domain(xs []float64) (lo, hi float64, err error) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %d values, none finite", ErrEmptyInput, len(xs))
	}
	if lo == hi {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrZeroDomain, lo, hi)
	}
	return lo, hi, nil
}

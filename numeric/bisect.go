// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric holds the small set of numerical primitives used by the
// root tracker: bisection root-finding over a bracketed interval, plus the
// bracket and relative-closeness checks applied around it. These are the "hard
// engineering" of spec.md's core and are implemented directly rather than
// delegated to a generic solver package, mirroring how the retrieved
// dispersion example (GoTrain's soil_dispersion) hand-rolls its own
// sign-change/bisection loop instead of calling a library root finder.
package numeric

import "math"

// BisectTol is the fixed convergence tolerance on the bracket half-width used by
// Bisect. It is one of the algorithm's documented fixed constants
// (spec.md §5 "Determinism").
const BisectTol = 1e-10

// MaxBisectIter bounds the number of bisection steps so a pathological
// function (e.g. one that never shrinks the residual near machine epsilon)
// cannot loop forever.
const MaxBisectIter = 200

// Bisect finds a root of f within [a, b], assuming f(a) and f(b) have
// opposite, finite, non-NaN signs (the caller — the root tracker, spec.md
// §4.2 step 2b — is responsible for having established the bracket). It
// returns the midpoint of the final bracket and the number of iterations
// used. Bisection is deterministic and performs no randomized probing,
// satisfying spec.md §5's determinism requirement verbatim.
func Bisect(f func(float64) float64, a, b float64) (root float64, iters int) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, 0
	}
	if fb == 0 {
		return b, 0
	}
	for iters = 0; iters < MaxBisectIter; iters++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if fm == 0 || (b-a)/2 < BisectTol {
			return mid, iters
		}
		if sameSign(fa, fm) {
			a, fa = mid, fm
		} else {
			b, fb = mid, fm
		}
	}
	return 0.5 * (a + b), iters
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}

// Bracketed reports whether fa and fb are both finite, non-NaN, and of
// opposite sign — the precondition spec.md §4.2 step 2b requires before a
// bisection is attempted. A NaN or infinite endpoint means "no information"
// and must never be treated as a sign change (spec.md §4.1, §4.2 "Failure
// modes").
func Bracketed(fa, fb float64) bool {
	if math.IsNaN(fa) || math.IsNaN(fb) || math.IsInf(fa, 0) || math.IsInf(fb, 0) {
		return false
	}
	return (fa < 0) != (fb < 0)
}

// CloseTo reports whether x is within the given relative tolerance of
// target, the isclose-style check spec.md §4.2/§9 requires for excluding
// roots that accumulate at a plate's bulk-wave speed.
func CloseTo(x, target, relTol float64) bool {
	return math.Abs(x-target) <= relTol*math.Abs(target)
}

// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branch

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// ErrOutOfDomain is the sentinel wrapped by Interpolant.Evaluate when fd
// falls outside [fdMin, fdMax] (spec.md §7 kind "InterpolationDomainError").
// Evaluation outside the domain is an error, never an extrapolation
// (spec.md §4.3 "Interpolation").
var ErrOutOfDomain = errors.New("fd outside interpolant domain")

// Interpolant is a first-class, read-only smooth function fd -> value built
// from a mode's knot samples (spec.md §9 "Interpolators returned as
// first-class values"): no captured mutable state, Evaluate is a pure
// method over the fitted spline. It wraps gonum's natural cubic spline
// (gonum.org/v1/gonum/interp.NaturalCubic), the corpus's own ecosystem
// choice for 1-D scattered-knot interpolation.
type Interpolant struct {
	fd     []float64
	values []float64
	fit    interp.NaturalCubic
}

// NewInterpolant fits a natural cubic spline through (fd, values), which
// must already be strictly increasing in fd (the caller — ExtractBranches
// plus the derived-quantity builders below — guarantees this).
func NewInterpolant(fd, values []float64) (Interpolant, error) {
	it := Interpolant{fd: append([]float64(nil), fd...), values: append([]float64(nil), values...)}
	if err := it.fit.Fit(fd, values); err != nil {
		return Interpolant{}, fmt.Errorf("fit spline: %w", err)
	}
	return it, nil
}

// Domain returns [fd_min, fd_max], the mode's cutoff-to-cutoff range
// (spec.md §3 "Mode branch", §6 "domain()").
func (it Interpolant) Domain() (fdMin, fdMax float64) {
	return it.fd[0], it.fd[len(it.fd)-1]
}

// Evaluate returns the interpolated value at fd, or ErrOutOfDomain if fd
// falls outside the mode's domain (spec.md §4.3, §7).
func (it Interpolant) Evaluate(fd float64) (float64, error) {
	lo, hi := it.Domain()
	if fd < lo || fd > hi {
		return 0, fmt.Errorf("%w: fd=%v not in [%v,%v]", ErrOutOfDomain, fd, lo, hi)
	}
	return it.fit.Predict(fd), nil
}

// Samples returns the underlying knots backing this interpolant, for an
// external exporter to emit as (fd, value) columns (spec.md §6 "Export
// hook", §8's samples() contract).
func (it Interpolant) Samples() (fd, values []float64) {
	return append([]float64(nil), it.fd...), append([]float64(nil), it.values...)
}

// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branch

import (
	"math"

	"github.com/cpmech/gosl/num"
)

// ModeBranch bundles the three derived interpolants of one mode (spec.md
// §3 "Derived interpolants", §6 ResultSet entry).
type ModeBranch struct {
	VP Interpolant
	VG Interpolant
	K  Interpolant
}

// vgDerivStep is the relative (fraction-of-domain-width) central-difference
// step used by splineDerivative below, chosen small enough to stay local to
// the fitted cubic segment while avoiding cancellation error near machine
// epsilon.
const vgDerivStep = 1e-4

// Build turns the raw, monotone (fd, vp) samples of every surviving branch
// into the three interpolants spec.md §4.3 "Interpolation" describes:
//
//	vp(fd):  cubic fit over (fd_branch, vp_branch) directly.
//	k(fd):   cubic fit over (fd_branch, (fd_branch·2π/d)/vp_branch).
//	vg(fd):  cubic fit over (fd_branch, vp²/(vp − fd·dvp/dfd)), where
//	         dvp/dfd is obtained from a cubic-spline derivative of vp(fd)
//	         (spec.md §3), not from differencing the raw knots.
//
// d is the plate thickness in meters. Branches whose spline fit fails (e.g.
// duplicate fd knots) are silently omitted, consistent with spec.md §7's
// "NoBranchFound is data, not an exception".
func Build(raws map[string]Raw, d float64) map[string]ModeBranch {
	out := make(map[string]ModeBranch, len(raws))
	for label, r := range raws {
		vpIt, err := NewInterpolant(r.FD, r.VP)
		if err != nil {
			continue
		}

		fdMin, fdMax := vpIt.Domain()
		step := vgDerivStep * (fdMax - fdMin)
		if step <= 0 {
			continue
		}

		k := make([]float64, len(r.FD))
		vg := make([]float64, len(r.FD))
		for i := range r.FD {
			fd := r.FD[i]
			vp := r.VP[i]
			k[i] = (fd * 2 * math.Pi / d) / vp
			dvpdfd := splineDerivative(vpIt, fd, step)
			vg[i] = vp * vp / (vp - fd*dvpdfd)
		}

		kIt, errK := NewInterpolant(r.FD, k)
		vgIt, errVG := NewInterpolant(r.FD, vg)
		if errK != nil || errVG != nil {
			continue
		}

		out[label] = ModeBranch{VP: vpIt, VG: vgIt, K: kIt}
	}
	return out
}

// splineDerivative estimates d(vp)/d(fd) at x by differentiating the fitted
// cubic spline itself with gosl/num.DerivCentral, exactly the way
// sh.groupSpeed differentiates its closed-form ω(k) closure — the spline
// (gonum's NaturalCubic.Predict), never the raw knot-to-knot differences.
func splineDerivative(it Interpolant, x, step float64) float64 {
	f := func(xx float64, args ...interface{}) (res float64) { return it.fit.Predict(xx) }
	d, _ := num.DerivCentral(f, x, step)
	return d
}

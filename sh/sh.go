// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sh produces closed-form shear-horizontal (SHn) dispersion
// branches (spec.md §4.4, component C4), structurally mirroring gofem's own
// `ana` package of closed-form analytical reference solutions: both are
// independent, exact alternatives evaluated on a dense grid rather than
// roots of a transcendental relation.
package sh

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/dee7ine/dispersioncalc-alpha/branch"
	"github.com/dee7ine/dispersioncalc-alpha/config"
)

// densePoints is the number of omega samples used to build each SHn branch
// before it is reduced to a spline-backed Interpolant, chosen generously
// dense since the closed form is cheap to evaluate everywhere.
const densePoints = 2000

// derivStep is the relative step (a fraction of k) used by gosl/num's
// central-difference derivative when estimating vg = dω/dk (spec.md
// §4.4: "vg = dω/dk (numerical finite difference along the ω axis)").
const derivStep = 1e-3

// Generate builds the requested SHn branches for one plate configuration.
// For each mode order m it evaluates k_h(ω, m) on a dense ω grid over
// (0, ω_max], keeping the samples above cutoff (k_h real and positive) whose
// phase velocity is below cfg.VPMax (all of them when VPMax is 0), and
// derives vp = ω/k and vg = dω/dk from the same grid (spec.md §4.4).
func Generate(cfg config.Config, fdMax float64, nmodes int) map[string]branch.ModeBranch {
	out := make(map[string]branch.ModeBranch, nmodes)
	omegaMax := 2 * math.Pi * fdMax / cfg.Thickness

	for m := 0; m < nmodes; m++ {
		label := fmt.Sprintf("SH%d", m)
		b, ok := buildMode(cfg, m, omegaMax)
		if ok {
			out[label] = b
		}
	}
	return out
}

// wavenumber returns k_h(ω, m) = Re(sqrt((ω·d/cS)² − (m·π)²)) / d. Below
// cutoff the radicand is negative and the real part of the complex square
// root is zero; that is reported via the ok=false return rather than
// folded into the float (spec.md §4.4: "mark as NaN").
func wavenumber(cfg config.Config, omega float64, m int) (k float64, ok bool) {
	arg := math.Pow(omega*cfg.Thickness/cfg.CS, 2) - math.Pow(float64(m)*math.Pi, 2)
	if arg <= 0 {
		return 0, false
	}
	return math.Sqrt(arg) / cfg.Thickness, true
}

func buildMode(cfg config.Config, m int, omegaMax float64) (branch.ModeBranch, bool) {
	omegaCut := float64(m) * math.Pi * cfg.CS / cfg.Thickness
	if omegaCut >= omegaMax {
		return branch.ModeBranch{}, false
	}

	start := omegaCut * 1.0001
	if m == 0 {
		start = omegaMax / float64(densePoints)
	}
	if start >= omegaMax {
		return branch.ModeBranch{}, false
	}
	omegaGrid := utl.LinSpace(start, omegaMax, densePoints)

	var fd, vp, vg, k []float64
	for _, omega := range omegaGrid {
		ki, ok := wavenumber(cfg, omega, m)
		if !ok {
			continue
		}
		vpi := omega / ki
		if cfg.VPMax > 0 && vpi >= cfg.VPMax {
			// vp grows without bound just above cutoff; samples at or above
			// vp_max are dropped so every SH sample lies in (0, vp_max).
			continue
		}
		dOmegaDk := groupSpeed(cfg, m, omega)

		fd = append(fd, omega*cfg.Thickness/(2*math.Pi))
		vp = append(vp, vpi)
		k = append(k, ki)
		vg = append(vg, dOmegaDk)
	}
	if len(fd) < 4 {
		return branch.ModeBranch{}, false
	}

	vpIt, err1 := branch.NewInterpolant(fd, vp)
	kIt, err2 := branch.NewInterpolant(fd, k)
	vgIt, err3 := branch.NewInterpolant(fd, vg)
	if err1 != nil || err2 != nil || err3 != nil {
		return branch.ModeBranch{}, false
	}
	return branch.ModeBranch{VP: vpIt, VG: vgIt, K: kIt}, true
}

// groupSpeed computes vg = dω/dk at the given omega by inverting k(ω) into
// ω(k) over a local window and differentiating centrally, using
// gosl/num.DerivCentral exactly as the teacher's model drivers
// (mdl/porous/driver.go) use it to check a response's derivative.
func groupSpeed(cfg config.Config, m int, omega float64) float64 {
	omegaOfK := func(k float64, args ...interface{}) (res float64) {
		arg := math.Pow(k*cfg.Thickness, 2) + math.Pow(float64(m)*math.Pi, 2)
		return cfg.CS / cfg.Thickness * math.Sqrt(arg)
	}
	k0, ok := wavenumber(cfg, omega, m)
	if !ok || k0 == 0 {
		return 0
	}
	dOmegaDk, _ := num.DerivCentral(omegaOfK, k0, derivStep*k0)
	return dOmegaDk
}

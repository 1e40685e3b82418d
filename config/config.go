// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the immutable plate and sweep configuration consumed
// by the root tracker, branch post-processor and SH generator, together with
// eager validation and the mode-label ordering rules of the façade.
package config

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Config is the full set of inputs to a single dispersion compute. Thickness
// and bulk-wave speeds describe the plate (spec.md §3 "Plate configuration");
// the remaining fields describe the fd×vp sweep (spec.md §3 "Sweep
// configuration"). Config is immutable once Validate succeeds.
type Config struct {
	Thickness float64 // d, plate thickness [m]
	CL        float64 // longitudinal bulk-wave speed [m/s]
	CS        float64 // shear bulk-wave speed [m/s]
	CR        float64 // Rayleigh speed [m/s], optional (0 if unknown); titling/reference only

	Material string // opaque label, used only for titling/export naming

	FDMax        float64 // upper bound of the fd sweep [Hz·m]
	VPMax        float64 // upper bound of phase velocity [m/s]
	FDPoints     int     // number of fd samples, >= 2
	VPStep       float64 // coarse vp sampling step inside each fd slice [m/s]
	NModesSym    int     // number of symmetric (Sn) branches to retain
	NModesAntisym int    // number of antisymmetric (An) branches to retain
	NModesSH     int     // number of SHn branches to retain
}

// HalfThickness returns h = d/2, the half-thickness used throughout the
// Rayleigh-Lamb relations.
func (c Config) HalfThickness() float64 {
	return c.Thickness / 2
}

// ConfigError reports a structured configuration violation (spec.md §7,
// kind "InvalidConfig"). It is returned eagerly by Validate, never panicked.
type ConfigError struct {
	err error
}

func (e *ConfigError) Error() string { return e.err.Error() }
func (e *ConfigError) Unwrap() error { return e.err }

func configErr(format string, args ...interface{}) error {
	return &ConfigError{err: chk.Err(format, args...)}
}

// Validate checks the invariants of spec.md §3: d > 0; 0 < cS < cL;
// 0 < vp_step ≪ vp_max; fd_points ≥ 2; non-negative mode counts. It is the
// single eager gate described in spec.md §4.5 and §7(1).
func (c Config) Validate() error {
	if c.Thickness <= 0 {
		return configErr("thickness must be positive, got %v", c.Thickness)
	}
	if c.CS <= 0 {
		return configErr("shear wave speed cS must be positive, got %v", c.CS)
	}
	if c.CL <= c.CS {
		return configErr("longitudinal wave speed cL (%v) must exceed shear wave speed cS (%v)", c.CL, c.CS)
	}
	if c.VPStep <= 0 {
		return configErr("vp_step must be positive, got %v", c.VPStep)
	}
	if c.VPMax <= c.VPStep {
		return configErr("vp_max (%v) must exceed vp_step (%v)", c.VPMax, c.VPStep)
	}
	if c.FDMax <= 0 {
		return configErr("fd_max must be positive, got %v", c.FDMax)
	}
	if c.FDPoints < 2 {
		return configErr("fd_points must be >= 2, got %d", c.FDPoints)
	}
	if c.NModesSym < 0 || c.NModesAntisym < 0 || c.NModesSH < 0 {
		return configErr("mode counts must be non-negative, got sym=%d antisym=%d sh=%d",
			c.NModesSym, c.NModesAntisym, c.NModesSH)
	}
	return nil
}

// AsParams exposes the scalar plate parameters in the named-parameter idiom
// used across the example corpus's model families (fun.Prm/fun.Prms), for
// callers that want to log, serialize or diff a configuration generically
// instead of reflecting over the struct.
func (c Config) AsParams() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "d", V: c.Thickness},
		&fun.Prm{N: "cL", V: c.CL},
		&fun.Prm{N: "cS", V: c.CS},
		&fun.Prm{N: "cR", V: c.CR},
		&fun.Prm{N: "fdMax", V: c.FDMax},
		&fun.Prm{N: "vpMax", V: c.VPMax},
		&fun.Prm{N: "vpStep", V: c.VPStep},
	}
}

// ModeLabels returns the fixed, ordered set of mode labels this Config will
// produce branches for: "S0".."S{NModesSym-1}", "A0".."A{NModesAntisym-1}",
// "SH0".."SH{NModesSH-1}" — spec.md §3 "Mode-label set" and §5's ordering
// guarantee that column order is never reshuffled.
func ModeLabels(c Config) []string {
	labels := make([]string, 0, c.NModesSym+c.NModesAntisym+c.NModesSH)
	for i := 0; i < c.NModesSym; i++ {
		labels = append(labels, fmt.Sprintf("S%d", i))
	}
	for i := 0; i < c.NModesAntisym; i++ {
		labels = append(labels, fmt.Sprintf("A%d", i))
	}
	for i := 0; i < c.NModesSH; i++ {
		labels = append(labels, fmt.Sprintf("SH%d", i))
	}
	return labels
}

// SHCutoff returns the cutoff frequency-thickness product (Hz·m) of the SHn
// mode of the given order: fd_cut = ω_cut·d/(2π) with ω_cut = m·π·cS/d, i.e.
// fd_cut = m·cS/2. Order 0 has no cutoff (SH0 propagates from fd=0).
func (c Config) SHCutoff(order int) float64 {
	return float64(order) * c.CS / 2
}

// RayleighSpeed derives cR from cS and Poisson's ratio nu using the standard
// approximation cited in spec.md's glossary, for callers that have nu but no
// direct cR estimate. It does not set c.CR; callers assign the result.
func RayleighSpeed(cS, nu float64) float64 {
	return cS * (0.862 + 1.14*nu) / (1 + nu)
}

// BulkSpeedsFromElastic derives (cL, cS, cR) from density, Young's modulus
// and Poisson's ratio via the standard isotropic elasticity formulas quoted
// in spec.md §6's "Material catalog interface". This is the only place the
// core touches material-property derivation; the catalog lookup itself
// remains entirely the caller's responsibility.
func BulkSpeedsFromElastic(rho, e, nu float64) (cL, cS, cR float64) {
	cL = math.Sqrt(e * (1 - nu) / (rho * (1 + nu) * (1 - 2*nu)))
	cS = math.Sqrt(e / (2 * rho * (1 + nu)))
	cR = RayleighSpeed(cS, nu)
	return
}

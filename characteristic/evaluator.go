// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package characteristic evaluates the Rayleigh-Lamb symmetric and
// antisymmetric residuals for a traction-free isotropic plate (spec.md
// §4.1, component C1). It is a pure, stateless computation modulo an
// opt-in per-call cache of the shared (vp, fd) -> (k, p, q) triple.
package characteristic

import (
	"math"
	"math/cmplx"

	"github.com/dee7ine/dispersioncalc-alpha/config"
)

// triple holds the wavenumber and the two evanescent/propagating constants
// shared by both residuals at a given (vp, fd) pair.
type triple struct {
	k complex128
	p complex128
	q complex128
}

// Evaluator computes the symmetric and antisymmetric Rayleigh-Lamb residuals
// for one plate configuration. The zero value is not usable; construct with
// New. An Evaluator is owned by a single compute invocation — spec.md §5
// mandates that the (vp,fd) cache never becomes process-wide or shared
// across goroutines, so callers that parallelize the fd sweep (spec.md §4.2)
// must give each worker its own Evaluator.
type Evaluator struct {
	h  float64 // half-thickness
	d  float64 // thickness
	cL float64
	cS float64

	cache map[[2]float64]triple
}

// New builds an Evaluator for the given plate. cache=true enables the
// per-Evaluator (vp, fd) cache; pass cache=false to disable it where memory,
// not CPU, is scarce
// (spec.md §4.1: "may be omitted with a modest CPU cost").
func New(cfg config.Config, cache bool) *Evaluator {
	e := &Evaluator{
		h:  cfg.HalfThickness(),
		d:  cfg.Thickness,
		cL: cfg.CL,
		cS: cfg.CS,
	}
	if cache {
		e.cache = make(map[[2]float64]triple)
	}
	return e
}

func (e *Evaluator) constants(vp, fd float64) triple {
	key := [2]float64{vp, fd}
	if e.cache != nil {
		if t, ok := e.cache[key]; ok {
			return t
		}
	}
	omega := 2 * math.Pi * fd / e.d
	k := complex(omega/vp, 0)
	p := cmplx.Sqrt(complex(math.Pow(omega/e.cL, 2), 0) - k*k)
	q := cmplx.Sqrt(complex(math.Pow(omega/e.cS, 2), 0) - k*k)
	t := triple{k: k, p: p, q: q}
	if e.cache != nil {
		e.cache[key] = t
	}
	return t
}

// Symmetric evaluates the real part of the Rayleigh-Lamb symmetric residual
// at (vp, fd):
//
//	tan(q·h)/q + 4·k²·p·tan(p·h) / (q² − k²)²
//
// Only the real part is used for root-finding (spec.md §4.1) — a deliberate,
// preserved modeling choice: the imaginary part is discarded even where it
// is large, which is documented rather than "fixed" (spec.md §9 open
// question). Returns NaN at singular points rather than panicking.
func (e *Evaluator) Symmetric(vp, fd float64) float64 {
	t := e.constants(vp, fd)
	num := 4 * t.k * t.k * t.p * cmplx.Tan(t.p*complex(e.h, 0))
	den := (t.q*t.q - t.k*t.k) * (t.q*t.q - t.k*t.k)
	res := cmplx.Tan(t.q*complex(e.h, 0))/t.q + num/den
	return real(res)
}

// Antisymmetric evaluates the real part of the Rayleigh-Lamb antisymmetric
// residual at (vp, fd):
//
//	q·tan(q·h) + (q² − k²)²·tan(p·h) / (4·k²·p)
func (e *Evaluator) Antisymmetric(vp, fd float64) float64 {
	t := e.constants(vp, fd)
	num := (t.q*t.q - t.k*t.k) * (t.q*t.q - t.k*t.k) * cmplx.Tan(t.p*complex(e.h, 0))
	den := 4 * t.k * t.k * t.p
	res := t.q*cmplx.Tan(t.q*complex(e.h, 0)) + num/den
	return real(res)
}

// Family names a wave family and its residual function, mirroring the
// allocator-map idiom the example corpus uses for pluggable model families
// (e.g. mreten's Brooks-Corey/Van Genuchten retention models).
type Family struct {
	Name     string              // "symmetric" or "antisymmetric"
	Residual func(vp, fd float64) float64
	Forbidden float64 // the bulk-wave speed at which spurious roots accumulate (cS for symmetric, cL for antisymmetric)
}

// Families returns the two Rayleigh-Lamb families bound to this Evaluator,
// each tagged with its forbidden bulk-wave speed per spec.md §4.2.
func (e *Evaluator) Families() [2]Family {
	return [2]Family{
		{Name: "symmetric", Residual: e.Symmetric, Forbidden: e.cS},
		{Name: "antisymmetric", Residual: e.Antisymmetric, Forbidden: e.cL},
	}
}

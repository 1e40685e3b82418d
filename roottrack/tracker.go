// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roottrack implements the two-dimensional root tracker of spec.md
// §4.2 (component C2): for one wave family it sweeps the fd axis, isolates
// sign changes across phase-velocity probes, bisects to a root, and fills a
// raw result matrix with up to N branches per fd slice.
package roottrack

import (
	"context"
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/dee7ine/dispersioncalc-alpha/characteristic"
	"github.com/dee7ine/dispersioncalc-alpha/config"
	"github.com/dee7ine/dispersioncalc-alpha/numeric"
)

// residualAcceptTol is the fixed residual-magnitude acceptance threshold of
// spec.md §4.2 step 2c: a bisected root is kept only if |f(r)| is below this
// bound, the cheapest effective filter against singularities that flip sign
// without a true root crossing.
const residualAcceptTol = 1e-2

// forbiddenRelTol is the fixed relative tolerance used to exclude roots that
// accumulate at the family's forbidden bulk-wave speed (spec.md §9).
const forbiddenRelTol = 1e-5

// Diagnostics accumulates non-fatal evidence of numerical instability
// encountered while sweeping one family (spec.md §7 kind "NumericalInstability",
// and the "Diagnostics" addition of SPEC_FULL.md §9). It is never used to
// fail a compute; it is exposed so a caller can observe that sparse branches
// are a consequence of rejected candidates rather than a silent bug.
type Diagnostics struct {
	SlicesSwept       int // number of fd rows processed
	SlicesNoRoot      int // rows where not even one slot was filled
	RootsRejected     int // bisected roots failing the residual threshold
	ForbiddenExcluded int // bisected roots rejected as too close to the forbidden bulk speed
}

// Result is the raw output of sweeping one family: a dense matrix of shape
// (FDPoints, N+1) per spec.md §3 "Raw result matrix" (column 0 is fd,
// columns 1..N are phase velocity, 0.0 marks "unassigned" prior to
// post-processing) plus the sweep's diagnostics.
type Result struct {
	Matrix *la.Matrix
	NModes int
	Diag   Diagnostics
}

// Sweep runs the root tracker for one family (spec.md §4.2). ctx is checked
// between fd slices; on cancellation the partial matrix is discarded and
// ctx.Err() is returned (spec.md §5 "Cancellation", §7 kind "Cancelled").
func Sweep(ctx context.Context, cfg config.Config, fam characteristic.Family, nmodes int) (Result, error) {
	res := Result{
		Matrix: la.NewMatrix(cfg.FDPoints, nmodes+1),
		NModes: nmodes,
	}

	fdGrid := utl.LinSpace(0, cfg.FDMax, cfg.FDPoints)
	for i, fd := range fdGrid {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Matrix.Set(i, 0, fd)
		if nmodes == 0 {
			continue
		}
		filled := sweepSlice(res.Matrix, i, fd, cfg.VPMax, cfg.VPStep, fam, nmodes, &res.Diag)
		res.Diag.SlicesSwept++
		if filled == 0 {
			res.Diag.SlicesNoRoot++
		}
	}
	return res, nil
}

// FamilyFactory builds an independent Family value (backed by its own
// characteristic.Evaluator) for one worker. SweepConcurrent calls it once
// per goroutine so each worker owns an un-shared (vp,fd) cache, honoring
// spec.md §5's "per-compute, never process-wide" caching rule even when the
// fd sweep itself is parallelized across goroutines.
type FamilyFactory func() characteristic.Family

// SweepConcurrent is the parallel variant of Sweep allowed by spec.md §5:
// "the fd sweep is embarrassingly parallel ... an implementation MAY
// parallelize across fd rows provided (a) the raw matrix is still
// assembled in fd order before Pass A, and (b) the RNG-like state of
// bisection is absent". Rows are dispatched to a bounded worker pool; the
// matrix is built directly (each worker writes only its own row), so row
// order is preserved regardless of completion order. Diagnostics from all
// workers are summed after every worker has finished.
func SweepConcurrent(ctx context.Context, cfg config.Config, newFam FamilyFactory, nmodes int, workers int) (Result, error) {
	if workers < 1 {
		workers = 1
	}
	res := Result{
		Matrix: la.NewMatrix(cfg.FDPoints, nmodes+1),
		NModes: nmodes,
	}
	fdGrid := utl.LinSpace(0, cfg.FDMax, cfg.FDPoints)

	type rowJob struct{ row int }
	jobs := make(chan rowJob, cfg.FDPoints)
	for i := 0; i < cfg.FDPoints; i++ {
		jobs <- rowJob{row: i}
	}
	close(jobs)

	diagCh := make(chan Diagnostics, workers)
	errCh := make(chan error, workers)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			fam := newFam()
			var local Diagnostics
			for job := range jobs {
				select {
				case <-done:
					return
				default:
				}
				if err := ctx.Err(); err != nil {
					errCh <- err
					return
				}
				fd := fdGrid[job.row]
				res.Matrix.Set(job.row, 0, fd)
				if nmodes == 0 {
					continue
				}
				filled := sweepSlice(res.Matrix, job.row, fd, cfg.VPMax, cfg.VPStep, fam, nmodes, &local)
				local.SlicesSwept++
				if filled == 0 {
					local.SlicesNoRoot++
				}
			}
			diagCh <- local
		}()
	}

	var total Diagnostics
	received := 0
	for received < workers {
		select {
		case err := <-errCh:
			close(done)
			return Result{}, err
		case d := <-diagCh:
			total.SlicesSwept += d.SlicesSwept
			total.SlicesNoRoot += d.SlicesNoRoot
			total.RootsRejected += d.RootsRejected
			total.ForbiddenExcluded += d.ForbiddenExcluded
			received++
		}
	}
	res.Diag = total
	return res, nil
}

// sweepSlice implements spec.md §4.2 steps 1-2 for a single fd row: it walks
// adjacent [vp1, vp2) probes, bisects on sign changes, and accepts roots
// into increasing column slots until N modes are filled or vp2 reaches
// vp_max. It returns the number of slots filled.
func sweepSlice(mat *la.Matrix, row int, fd, vpMax, vpStep float64, fam characteristic.Family, nmodes int, diag *Diagnostics) int {
	j := 1 // next column to fill, 1-indexed into [1, nmodes]
	vp1 := 0.0
	vp2 := vpStep

	for vp2 < vpMax && j <= nmodes {
		x1 := fam.Residual(vp1, fd)
		x2 := fam.Residual(vp2, fd)

		if numeric.Bracketed(x1, x2) {
			root, _ := numeric.Bisect(func(vp float64) float64 { return fam.Residual(vp, fd) }, vp1, vp2)
			residual := fam.Residual(root, fd)

			switch {
			case math.Abs(residual) >= residualAcceptTol:
				diag.RootsRejected++
			case numeric.CloseTo(root, fam.Forbidden, forbiddenRelTol):
				diag.ForbiddenExcluded++
			default:
				mat.Set(row, j, root)
				j++
			}
		}

		vp1 = vp2
		vp2 += vpStep
	}
	return j - 1
}

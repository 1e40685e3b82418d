// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plate is the aggregation façade of spec.md §4.5 and §6: it wires
// together the characteristic-function evaluator (C1), root tracker (C2),
// branch post-processor & interpolator (C3) and SH generator (C4) behind a
// single "run a plate with these parameters" entry point, performing eager
// input validation and nothing else (it does no I/O, per spec.md §6
// "Persisted state: None").
package plate

import (
	"context"
	"fmt"

	"github.com/dee7ine/dispersioncalc-alpha/branch"
	"github.com/dee7ine/dispersioncalc-alpha/characteristic"
	"github.com/dee7ine/dispersioncalc-alpha/config"
	"github.com/dee7ine/dispersioncalc-alpha/roottrack"
	"github.com/dee7ine/dispersioncalc-alpha/sh"
)

// Interpolant re-exports branch.Interpolant's contract at the façade
// boundary (spec.md §6): domain(), evaluate(), samples().
type Interpolant = branch.Interpolant

// ModeBranch bundles the vp, vg and k interpolants of one retained mode.
type ModeBranch = branch.ModeBranch

// ResultSet maps mode labels ("S0", "A0", "SH0", ...) to their branch, per
// spec.md §6. A mode absent from the map never accumulated enough samples
// (spec.md §7 kind "NoBranchFound": data, not an exception).
type ResultSet map[string]ModeBranch

// Diagnostics summarizes non-fatal numerical instability observed while
// computing a ResultSet (spec.md §7 kind "NumericalInstability" and
// SPEC_FULL.md §9's supplemented feature). Zero values mean "nothing
// unusual was observed", not "nothing was checked".
type Diagnostics struct {
	Symmetric     roottrack.Diagnostics
	Antisymmetric roottrack.Diagnostics
}

// Compute runs both wave families requested by cfg and returns their union:
// Lamb modes (Sn, An) from ComputeLamb and SH modes (SHn) from ComputeSH.
func Compute(ctx context.Context, cfg config.Config) (ResultSet, Diagnostics, error) {
	lamb, diag, err := ComputeLamb(ctx, cfg)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	shModes, err := ComputeSH(ctx, cfg)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	for label, b := range shModes {
		lamb[label] = b
	}
	return lamb, diag, nil
}

// ComputeLamb validates cfg, sweeps the symmetric and antisymmetric
// Rayleigh-Lamb families (C2), repairs and interpolates their branches (C3),
// and returns the resulting ResultSet (spec.md §4.5, §6 compute_lamb).
func ComputeLamb(ctx context.Context, cfg config.Config) (ResultSet, Diagnostics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Diagnostics{}, err
	}

	eval := characteristic.New(cfg, true)
	families := eval.Families()
	symFam, antiFam := families[0], families[1]

	symRes, err := roottrack.Sweep(ctx, cfg, symFam, cfg.NModesSym)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	antiRes, err := roottrack.Sweep(ctx, cfg, antiFam, cfg.NModesAntisym)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	branch.CorrectInstability(symRes.Matrix, 1)
	branch.CorrectInstability(antiRes.Matrix, 2)

	symLabels := make([]string, cfg.NModesSym)
	for i := range symLabels {
		symLabels[i] = fmt.Sprintf("S%d", i)
	}
	antiLabels := make([]string, cfg.NModesAntisym)
	for i := range antiLabels {
		antiLabels[i] = fmt.Sprintf("A%d", i)
	}

	symRaw := branch.ExtractBranches(symRes.Matrix, symLabels)
	antiRaw := branch.ExtractBranches(antiRes.Matrix, antiLabels)

	out := make(ResultSet, len(symRaw)+len(antiRaw))
	for label, b := range branch.Build(symRaw, cfg.Thickness) {
		out[label] = b
	}
	for label, b := range branch.Build(antiRaw, cfg.Thickness) {
		out[label] = b
	}

	return out, Diagnostics{Symmetric: symRes.Diag, Antisymmetric: antiRes.Diag}, nil
}

// ComputeLambConcurrent is the parallel variant of ComputeLamb allowed by
// spec.md §5: fd rows are swept by a bounded pool of goroutines, using an
// independent characteristic.Evaluator per worker so no (vp,fd) cache is
// shared. workers bounds the pool size; values < 1 fall back to 1.
func ComputeLambConcurrent(ctx context.Context, cfg config.Config, workers int) (ResultSet, Diagnostics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Diagnostics{}, err
	}

	newSym := func() characteristic.Family { return characteristic.New(cfg, true).Families()[0] }
	newAnti := func() characteristic.Family { return characteristic.New(cfg, true).Families()[1] }

	symRes, err := roottrack.SweepConcurrent(ctx, cfg, newSym, cfg.NModesSym, workers)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	antiRes, err := roottrack.SweepConcurrent(ctx, cfg, newAnti, cfg.NModesAntisym, workers)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	branch.CorrectInstability(symRes.Matrix, 1)
	branch.CorrectInstability(antiRes.Matrix, 2)

	symLabels := make([]string, cfg.NModesSym)
	for i := range symLabels {
		symLabels[i] = fmt.Sprintf("S%d", i)
	}
	antiLabels := make([]string, cfg.NModesAntisym)
	for i := range antiLabels {
		antiLabels[i] = fmt.Sprintf("A%d", i)
	}

	out := make(ResultSet)
	for label, b := range branch.Build(branch.ExtractBranches(symRes.Matrix, symLabels), cfg.Thickness) {
		out[label] = b
	}
	for label, b := range branch.Build(branch.ExtractBranches(antiRes.Matrix, antiLabels), cfg.Thickness) {
		out[label] = b
	}
	return out, Diagnostics{Symmetric: symRes.Diag, Antisymmetric: antiRes.Diag}, nil
}

// ComputeSH validates cfg and returns the closed-form SHn branches
// (spec.md §4.4, §6 compute_sh). SH generation has no root-tracking
// instability to diagnose, so it carries no Diagnostics.
func ComputeSH(ctx context.Context, cfg config.Config) (ResultSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modes := sh.Generate(cfg, cfg.FDMax, cfg.NModesSH)
	out := make(ResultSet, len(modes))
	for label, b := range modes {
		out[label] = b
	}
	return out, nil
}

// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package branch implements spec.md §4.3 (component C3): it repairs the
// mode-assignment instabilities left by the root tracker (Pass A), drops
// zero-filled sentinels and short branches (Pass B), and builds the smooth
// per-mode interpolants (vp, k, vg) downstream consumers evaluate.
package branch

import (
	"github.com/cpmech/gosl/la"
)

// minBranchLen is the fixed minimum number of (fd, vp) samples required to
// build an interpolant; shorter branches are dropped (spec.md §4.3 Pass B).
const minBranchLen = 4

// symmetricExemptOrder and antisymmetricExemptOrder give the mode order
// below which Pass A's monotone-non-increasing invariant does not apply:
// S0 is merely non-increasing (never strictly required to fall), and A0 is
// exempt entirely (strictly increasing), per spec.md §4.3.
const (
	symmetricExemptOrder    = 1
	antisymmetricExemptOrder = 2
)

// CorrectInstability applies spec.md §4.3 Pass A in place: for modes at or
// above the family's exempt order, it repairs the "jog" produced when a
// root briefly migrates to the wrong column because two adjacent-mode roots
// passed close enough in (vp, fd) space to hide a sign change inside one
// vp_step interval. This is a one-pass, best-effort repair: it is correct
// for a single colliding pair and may leave pathological three-or-more-mode
// collisions uncorrected (spec.md §9, preserved intentionally).
//
// exemptOrder is 1 for the symmetric family (S0 exempt) and 2 for the
// antisymmetric family (A0 and A1 exempt).
func CorrectInstability(mat *la.Matrix, exemptOrder int) {
	rows, cols := mat.M, mat.N
	nmodes := cols - 1
	for col := 1 + exemptOrder; col <= nmodes; col++ {
		last := 0.0
		haveLast := false
		for row := 0; row < rows; row++ {
			cur := mat.Get(row, col)
			if cur == 0 {
				continue
			}
			if !haveLast {
				// First populated cell in this column: nothing to compare
				// against yet, so accept it as the running baseline instead
				// of risking a false shift against the previous column.
				last = cur
				haveLast = true
				continue
			}
			if cur > last && col < cols-1 {
				// This cell belongs to the next higher-order (higher-vp) mode:
				// shift it rightward by one column and zero the source.
				mat.Set(row, col+1, cur)
				mat.Set(row, col, 0)
				continue
			}
			last = cur
		}
	}
}

// Raw is one mode's (fd, vp) samples after Pass B sentinelization and NaN
// filtering, still strictly monotone in fd (spec.md §3 "Mode branch").
type Raw struct {
	FD []float64
	VP []float64
}

// ExtractBranches implements spec.md §4.3 Pass B: zero cells become the
// missing-value sentinel, each mode column is stacked with the fd column,
// rows with either coordinate missing are dropped, and branches shorter
// than minBranchLen samples are discarded entirely (not placed in the
// returned map — spec.md §7 kind "NoBranchFound" is realized as "absent
// from the map", never an error).
func ExtractBranches(mat *la.Matrix, labels []string) map[string]Raw {
	rows, cols := mat.M, mat.N
	out := make(map[string]Raw, cols-1)
	for col := 1; col < cols && col-1 < len(labels); col++ {
		var fd, vp []float64
		for row := 0; row < rows; row++ {
			v := mat.Get(row, col)
			if v == 0 {
				continue
			}
			fd = append(fd, mat.Get(row, 0))
			vp = append(vp, v)
		}
		if len(fd) < minBranchLen {
			continue
		}
		out[labels[col-1]] = Raw{FD: fd, VP: vp}
	}
	return out
}

// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package branch

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_correctinstability01(tst *testing.T) {
	chk.PrintTitle("correctinstability01 repairs a single-row column jog")
	// Three modes (columns 1-3); S0 (column 1) is exempt and left alone.
	// Column 2's row-2 value anomalously exceeds its running baseline —
	// the "jog" produced when two adjacent-mode roots nearly collided —
	// so Pass A shifts it into column 3 and zeroes the source cell.
	mat := la.NewMatrix(4, 4)
	rows := [][4]float64{
		{0, 6000, 4500, 3500},
		{1000, 5900, 4400, 3400},
		{2000, 5800, 5200, 3200}, // jog: col2 (5200) exceeds its baseline (4400)
		{3000, 5700, 4200, 3100},
	}
	for i, r := range rows {
		for j, v := range r {
			mat.Set(i, j, v)
		}
	}
	CorrectInstability(mat, 1)

	if mat.Get(2, 2) != 0 {
		tst.Fatalf("expected the jogged cell to be zeroed in column 2, got %v", mat.Get(2, 2))
	}
	if mat.Get(2, 3) != 5200 {
		tst.Fatalf("expected the jogged value to migrate into column 3, got %v", mat.Get(2, 3))
	}
	if mat.Get(0, 1) != 6000 || mat.Get(2, 1) != 5800 {
		tst.Fatalf("expected the exempt column 1 (S0) to be left untouched")
	}
}

func Test_extractbranches01(tst *testing.T) {
	chk.PrintTitle("extractbranches01 drops zero cells and short branches")
	mat := la.NewMatrix(6, 3)
	fds := []float64{0, 1000, 2000, 3000, 4000, 5000}
	col1 := []float64{5000, 4900, 4800, 4700, 4600, 4500}
	col2 := []float64{0, 0, 3200, 3100, 0, 0} // too short: only 2 samples

	for i := range fds {
		mat.Set(i, 0, fds[i])
		mat.Set(i, 1, col1[i])
		mat.Set(i, 2, col2[i])
	}

	out := ExtractBranches(mat, []string{"S0", "S1"})
	s0, ok := out["S0"]
	if !ok {
		tst.Fatalf("expected S0 to survive extraction")
	}
	if len(s0.FD) != 6 || len(s0.VP) != 6 {
		tst.Fatalf("expected 6 samples in S0, got fd=%d vp=%d", len(s0.FD), len(s0.VP))
	}
	if _, ok := out["S1"]; ok {
		tst.Fatalf("expected S1 to be dropped for being shorter than minBranchLen")
	}
}

func Test_extractbranches02(tst *testing.T) {
	chk.PrintTitle("extractbranches02 empty matrix yields no branches")
	mat := la.NewMatrix(4, 1)
	for i := 0; i < 4; i++ {
		mat.Set(i, 0, float64(i)*100)
	}
	out := ExtractBranches(mat, nil)
	if len(out) != 0 {
		tst.Fatalf("expected no branches from a fd-only matrix, got %d", len(out))
	}
}

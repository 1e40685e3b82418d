// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bisect01(tst *testing.T) {
	chk.PrintTitle("bisect01")
	f := func(x float64) float64 { return x - 2 }
	root, iters := Bisect(f, 0, 10)
	chk.Scalar(tst, "root", 1e-8, root, 2.0)
	if iters <= 0 {
		tst.Fatalf("expected at least one iteration, got %d", iters)
	}
}

func Test_bisect02(tst *testing.T) {
	chk.PrintTitle("bisect02 exact endpoint")
	f := func(x float64) float64 { return x }
	root, iters := Bisect(f, 0, 5)
	chk.Scalar(tst, "root", 1e-15, root, 0.0)
	if iters != 0 {
		tst.Fatalf("expected zero iterations for exact endpoint, got %d", iters)
	}
}

func Test_bisect03(tst *testing.T) {
	chk.PrintTitle("bisect03 transcendental")
	f := func(x float64) float64 { return math.Sin(x) }
	root, _ := Bisect(f, 3, 3.3)
	chk.Scalar(tst, "root", 1e-6, root, math.Pi)
}

func Test_bracketed01(tst *testing.T) {
	chk.PrintTitle("bracketed01")
	if !Bracketed(-1, 1) {
		tst.Fatalf("expected sign change to be bracketed")
	}
	if Bracketed(1, 2) {
		tst.Fatalf("same-sign values must not be bracketed")
	}
	if Bracketed(math.NaN(), 1) {
		tst.Fatalf("NaN must never be bracketed")
	}
	if Bracketed(math.Inf(1), -1) {
		tst.Fatalf("infinite endpoint must never be bracketed")
	}
}

func Test_closeto01(tst *testing.T) {
	chk.PrintTitle("closeto01")
	if !CloseTo(1000.00001, 1000, 1e-4) {
		tst.Fatalf("expected value within relative tolerance to be close")
	}
	if CloseTo(1100, 1000, 1e-4) {
		tst.Fatalf("expected value outside relative tolerance to not be close")
	}
}

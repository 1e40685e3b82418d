// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package characteristic

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dee7ine/dispersioncalc-alpha/config"
)

func aluminumCfg() config.Config {
	cL, cS, cR := config.BulkSpeedsFromElastic(2700, 68.9e9, 0.33)
	return config.Config{
		Thickness: 10e-3,
		CL:        cL,
		CS:        cS,
		CR:        cR,
	}
}

func Test_evaluator01(tst *testing.T) {
	chk.PrintTitle("evaluator01 caching does not change the result")
	cfg := aluminumCfg()
	cached := New(cfg, true)
	uncached := New(cfg, false)

	for _, fd := range []float64{500, 1500, 4000} {
		for _, vp := range []float64{3200, 5800, 9000} {
			a := cached.Symmetric(vp, fd)
			b := uncached.Symmetric(vp, fd)
			if math.IsNaN(a) != math.IsNaN(b) {
				tst.Fatalf("cache changed NaN-ness at vp=%v fd=%v: %v vs %v", vp, fd, a, b)
			}
			if !math.IsNaN(a) && math.Abs(a-b) > 1e-9 {
				tst.Fatalf("cache changed residual at vp=%v fd=%v: %v vs %v", vp, fd, a, b)
			}
			// repeat once more to exercise the cache-hit path
			a2 := cached.Symmetric(vp, fd)
			if a2 != a {
				tst.Fatalf("cached residual not stable across repeated calls: %v vs %v", a, a2)
			}
		}
	}
}

func Test_evaluator02(tst *testing.T) {
	chk.PrintTitle("evaluator02 families expose the correct forbidden speeds")
	cfg := aluminumCfg()
	e := New(cfg, true)
	families := e.Families()
	if families[0].Name != "symmetric" || families[0].Forbidden != cfg.CS {
		tst.Fatalf("symmetric family misconfigured: %+v", families[0])
	}
	if families[1].Name != "antisymmetric" || families[1].Forbidden != cfg.CL {
		tst.Fatalf("antisymmetric family misconfigured: %+v", families[1])
	}
}

func Test_evaluator03(tst *testing.T) {
	chk.PrintTitle("evaluator03 residuals are finite away from singularities")
	cfg := aluminumCfg()
	e := New(cfg, true)
	for _, fd := range []float64{100, 1000, 5000} {
		vp := cfg.CL * 1.5
		sym := e.Symmetric(vp, fd)
		anti := e.Antisymmetric(vp, fd)
		if math.IsInf(sym, 0) || math.IsInf(anti, 0) {
			tst.Fatalf("expected finite residuals at vp=%v fd=%v, got sym=%v anti=%v", vp, fd, sym, anti)
		}
	}
}

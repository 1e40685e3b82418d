// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

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

func Test_wavenumber01(tst *testing.T) {
	chk.PrintTitle("wavenumber01 SH0 propagates from omega=0")
	cfg := aluminumCfg()
	_, ok := wavenumber(cfg, 1.0, 0)
	if !ok {
		tst.Fatalf("expected SH0 to have a real wavenumber at any positive omega")
	}
}

func Test_wavenumber02(tst *testing.T) {
	chk.PrintTitle("wavenumber02 SH1 is evanescent below its cutoff")
	cfg := aluminumCfg()
	omegaCut := 1.0 * 3.141592653589793 * cfg.CS / cfg.Thickness
	if _, ok := wavenumber(cfg, omegaCut*0.5, 1); ok {
		tst.Fatalf("expected SH1 below cutoff to be evanescent (ok=false)")
	}
	if _, ok := wavenumber(cfg, omegaCut*2, 1); !ok {
		tst.Fatalf("expected SH1 above cutoff to propagate")
	}
}

func Test_generate01(tst *testing.T) {
	chk.PrintTitle("generate01 SH0 phase velocity equals cS at every sample")
	cfg := aluminumCfg()
	modes := Generate(cfg, 10000, 1)
	sh0, ok := modes["SH0"]
	if !ok {
		tst.Fatalf("expected SH0 to be produced")
	}
	fd, vp := sh0.VP.Samples()
	if len(fd) == 0 {
		tst.Fatalf("expected SH0 to have samples")
	}
	for _, v := range vp {
		chk.Scalar(tst, "vp", 1.0, v, cfg.CS)
	}
}

func Test_generate02(tst *testing.T) {
	chk.PrintTitle("generate02 higher SH order requires a higher fdMax to appear")
	cfg := aluminumCfg()
	cutoffFD := cfg.SHCutoff(2)
	modes := Generate(cfg, cutoffFD*0.5, 3)
	if _, ok := modes["SH2"]; ok {
		tst.Fatalf("expected SH2 to be absent when fdMax is below its cutoff")
	}

	modes = Generate(cfg, cutoffFD*4, 3)
	if _, ok := modes["SH2"]; !ok {
		tst.Fatalf("expected SH2 to appear once fdMax comfortably exceeds its cutoff")
	}
}

// Test_s6_sh1cutoff checks spec scenario S6: for a 1 mm aluminum plate,
// SH1 is absent below its cutoff and present (with vp well above cS) once
// fdMax comfortably clears it. When chk.Verbose is set, it also renders a
// debug plot of vp(fd) for SH0 and SH1, following the teacher's own
// `if chk.Verbose { plt.Reset(); ...; plt.Show() }` pattern
// (mreten/t_bc_test.go).
func Test_s6_sh1cutoff(tst *testing.T) {
	chk.PrintTitle("s6 aluminum SH1 cutoff")
	cfg := aluminumCfg()
	cfg.Thickness = 1e-3
	cutoffFD := cfg.SHCutoff(1)

	below := Generate(cfg, cutoffFD*0.5, 2)
	if _, ok := below["SH1"]; ok {
		tst.Fatalf("expected SH1 to be undefined below its cutoff")
	}

	above := Generate(cfg, cutoffFD*6, 2)
	sh1, ok := above["SH1"]
	if !ok {
		tst.Fatalf("expected SH1 to appear above its cutoff")
	}
	_, vp := sh1.VP.Samples()
	for _, v := range vp {
		if v <= cfg.CS {
			tst.Fatalf("expected vp(SH1) above cutoff to exceed cS, got %v", v)
		}
	}

	if chk.Verbose {
		plt.Reset()
		sh0 := above["SH0"]
		fd0, vp0 := sh0.VP.Samples()
		fd1, vp1 := sh1.VP.Samples()
		plt.Plot(fd0, vp0, "'b.-', label='SH0'")
		plt.Plot(fd1, vp1, "'r.-', label='SH1'")
		plt.Gll("$fd$", "$v_p$", "")
		plt.Save("/tmp/dispersioncalc", "fig_sh_dispersion")
		plt.Show()
	}
}

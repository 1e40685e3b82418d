// Copyright 2024 The dispersioncalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dispcurve is a minimal demonstration driver for the dispersion
// façade: it parses plate parameters from flags, runs a compute, and prints
// a table of samples per mode. It does not implement CSV/XLSX export or any
// plotting — those remain external collaborators per spec.md §1's Non-goals.
package main

import (
	"context"
	"flag"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dee7ine/dispersioncalc-alpha/config"
	"github.com/dee7ine/dispersioncalc-alpha/plate"
)

func main() {
	thickness := flag.Float64("d", 10e-3, "plate thickness [m]")
	cl := flag.Float64("cl", 6149, "longitudinal bulk-wave speed [m/s]")
	cs := flag.Float64("cs", 3097, "shear bulk-wave speed [m/s]")
	fdMax := flag.Float64("fdmax", 10000, "maximum frequency-thickness product [Hz*m]")
	vpMax := flag.Float64("vpmax", 15000, "maximum phase velocity [m/s]")
	fdPoints := flag.Int("fdpoints", 200, "number of fd samples")
	vpStep := flag.Float64("vpstep", 50, "phase-velocity probe step [m/s]")
	nsym := flag.Int("nsym", 5, "number of symmetric Lamb modes")
	nantisym := flag.Int("nantisym", 5, "number of antisymmetric Lamb modes")
	nsh := flag.Int("nsh", 3, "number of shear-horizontal modes")
	material := flag.String("material", "", "material label, for titling only")
	flag.Parse()

	cfg := config.Config{
		Thickness:     *thickness,
		CL:            *cl,
		CS:            *cs,
		Material:      *material,
		FDMax:         *fdMax,
		VPMax:         *vpMax,
		FDPoints:      *fdPoints,
		VPStep:        *vpStep,
		NModesSym:     *nsym,
		NModesAntisym: *nantisym,
		NModesSH:      *nsh,
	}
	cfg.CR = config.RayleighSpeed(cfg.CS, 0.33)

	io.Pf("\ndispcurve -- guided-wave plate dispersion solver\n\n")
	if cfg.Material != "" {
		io.Pf("material: %s\n", cfg.Material)
	}
	io.Pf("d=%.4g m  cL=%.6g m/s  cS=%.6g m/s  cR=%.6g m/s\n\n", cfg.Thickness, cfg.CL, cfg.CS, cfg.CR)

	result, diag, err := plate.Compute(context.Background(), cfg)
	if err != nil {
		chk.Panic("compute failed: %v", err)
	}

	labels := make([]string, 0, len(result))
	for label := range result {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		b := result[label]
		fdMin, fdMax := b.VP.Domain()
		fd, vp := b.VP.Samples()
		io.Pfyel("%-4s  domain=[%.1f, %.1f] Hz*m  samples=%d\n", label, fdMin, fdMax, len(fd))
		for i := range fd {
			io.Pf("  fd=%10.2f  vp=%10.2f\n", fd[i], vp[i])
		}
	}

	io.Pf("\nsymmetric family:     slices=%d noRoot=%d rejected=%d forbiddenExcluded=%d\n",
		diag.Symmetric.SlicesSwept, diag.Symmetric.SlicesNoRoot, diag.Symmetric.RootsRejected, diag.Symmetric.ForbiddenExcluded)
	io.Pf("antisymmetric family: slices=%d noRoot=%d rejected=%d forbiddenExcluded=%d\n",
		diag.Antisymmetric.SlicesSwept, diag.Antisymmetric.SlicesNoRoot, diag.Antisymmetric.RootsRejected, diag.Antisymmetric.ForbiddenExcluded)
}

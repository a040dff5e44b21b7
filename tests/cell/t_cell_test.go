// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/inp"
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl/cell"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
	"github.com/PeterAndrewBriscoe/PyBaMM/tests"
)

func Test_cell01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cell01. full cell from JSON input")

	input, err := inp.Read("data", "cell.json")
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	params, err := prm.New(input.Options)
	if err != nil {
		tst.Errorf("parameters failed:\n%v", err)
		return
	}
	sys, err := cell.New(params)
	if err != nil {
		tst.Errorf("assembly failed:\n%v", err)
		return
	}
	if err = sys.Build(); err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	// the ec mechanism governs one SEI thickness; three electrolyte
	// concentrations complete the unknowns
	names := tests.GovernedNames(sys)
	io.Pforan("governed = %v\n", names)
	chk.Strings(tst, "governed unknowns", names, []string{
		"Negative electrolyte concentration [mol.m-3]",
		"Positive electrolyte concentration [mol.m-3]",
		"Separator electrolyte concentration [mol.m-3]",
		"X-averaged outer SEI thickness [m]",
	})

	// every governing equation pairs with an initial condition
	chk.Ints(tst, "nics", []int{len(sys.Eqs.InitialConditions)}, []int{len(sys.Eqs.Rhs)})

	// the initial SEI thickness comes straight from the input values
	b, err := input.Bind()
	if err != nil {
		tst.Errorf("bind failed:\n%v", err)
		return
	}
	for v, e := range sys.Eqs.InitialConditions {
		if v.Name != "X-averaged outer SEI thickness [m]" {
			continue
		}
		res, e2 := sym.Eval(e, b)
		if e2 != nil {
			tst.Errorf("eval failed:\n%v", e2)
			return
		}
		chk.Float64(tst, "L_sei(0)", 1e-22, res, 5.0e-9)
	}
}

func Test_cell02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cell02. half cell drops the negative-side submodels")

	input, err := inp.Read("data", "cell.json")
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	input.Options.WorkingElectrode = "positive"
	input.Options.SEI = "solvent-diffusion limited"
	params, err := prm.New(input.Options)
	if err != nil {
		tst.Errorf("parameters failed:\n%v", err)
		return
	}
	sys, err := cell.New(params)
	if err != nil {
		tst.Errorf("assembly failed:\n%v", err)
		return
	}
	if err = sys.Build(); err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	names := tests.GovernedNames(sys)
	io.Pforan("governed = %v\n", names)
	chk.Strings(tst, "governed unknowns", names, []string{
		"Inner SEI thickness [m]",
		"Outer SEI thickness [m]",
		"Positive electrolyte concentration [mol.m-3]",
		"Separator electrolyte concentration [mol.m-3]",
	})

	// all SEI unknowns live on the lithium-metal interface
	for v := range sys.Eqs.Rhs {
		if v.Name == "Inner SEI thickness [m]" && v.Domain() != prm.CurrentCollector {
			tst.Errorf("interface unknowns must live on the current collector\n")
			return
		}
	}
}

func Test_cell03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cell03. reaction current feeds the electrolyte source")

	input, err := inp.Read("data", "cell.json")
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	params, err := prm.New(input.Options)
	if err != nil {
		tst.Errorf("parameters failed:\n%v", err)
		return
	}
	sys, err := cell.New(params)
	if err != nil {
		tst.Errorf("assembly failed:\n%v", err)
		return
	}
	if err = sys.Build(); err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	// with SEI as the only reaction the electrode total is the SEI current
	// itself
	tot, err := sys.Pool.Get("check", "Negative electrode volumetric interfacial current density [A.m-3]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	ajSei, err := sys.Pool.Get("check", "SEI volumetric interfacial current density [A.m-3]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if tot != ajSei {
		tst.Errorf("the electrode total must be the SEI contribution\n")
		return
	}

	// the negative electrolyte sees the reaction while the positive stays
	// source free
	src, err := sys.Pool.Get("check", "Negative electrolyte source term [mol.m-3.s-1]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if sym.IsZero(src) {
		tst.Errorf("the negative electrolyte source must carry the reaction\n")
		return
	}
	srcP, err := sys.Pool.Get("check", "Positive electrolyte source term [mol.m-3.s-1]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if !sym.IsZero(srcP) {
		tst.Errorf("the positive electrolyte must be source free\n")
	}
}

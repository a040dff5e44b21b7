// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sei

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// buildGrowth assembles one growth submodel with its coupling inputs
// provided as free variables, mirroring what the full set of submodels
// would register
func buildGrowth(opts *prm.Options, loc string, cracks bool) (params *prm.CellParams, sys *mdl.System, g *Growth, err error) {
	params, err = prm.New(opts)
	if err != nil {
		return
	}
	sys = mdl.NewSystem()

	provide := func(key string, dom sym.Domain, aux sym.Aux) {
		if err != nil {
			return
		}
		err = sys.Provide("driver", key, sym.NewVariable(key, dom, aux))
	}
	onElectrode := sym.Aux{Secondary: prm.CurrentCollector}
	if loc == "interface" {
		provide("Negative electrode temperature [K]", prm.NegativeElectrode, onElectrode)
		provide("Lithium metal interface surface potential difference [V]", prm.CurrentCollector, sym.Aux{})
		provide("Lithium metal interface electrode potential [V]", prm.CurrentCollector, sym.Aux{})
		provide("Lithium metal total interfacial current density [A.m-2]", prm.CurrentCollector, sym.Aux{})
	} else {
		provide("Negative electrode temperature [K]", prm.NegativeElectrode, onElectrode)
		provide("Negative electrode surface potential difference [V]", prm.NegativeElectrode, onElectrode)
		provide("Negative electrode potential [V]", prm.NegativeElectrode, onElectrode)
		provide("X-averaged negative electrode total interfacial current density [A.m-2]", prm.CurrentCollector, sym.Aux{})
	}
	if cracks {
		provide("Negative particle crack length [m]", prm.NegativeElectrode, onElectrode)
		provide("Negative particle cracking rate [m.s-1]", prm.NegativeElectrode, onElectrode)
		provide("X-averaged negative particle crack length [m]", prm.CurrentCollector, sym.Aux{})
		provide("X-averaged negative particle cracking rate [m.s-1]", prm.CurrentCollector, sym.Aux{})
	}
	if err != nil {
		return
	}

	g, err = NewGrowth(params, loc, cracks, "primary")
	if err != nil {
		return
	}
	sys.Add(g)
	err = sys.Build()
	return
}

// seiBind returns a binding with the parameter values shared by the numeric
// scenarios below
func seiBind() *sym.Bind {
	return &sym.Bind{
		Params: dbf.Params{
			&dbf.P{N: "SEI reaction limited coefficient", V: 2.5},
			&dbf.P{N: "SEI electron-migration limited coefficient", V: 4.0e14},
			&dbf.P{N: "SEI ec reaction limited coefficient", V: 1.5},
			&dbf.P{N: "EC concentration coupling coefficient", V: 3.0e6},
			&dbf.P{N: "Inner SEI open-circuit potential [V]", V: 0.1},
			&dbf.P{N: "SEI resistivity [Ohm.m]", V: 2.0e5},
			&dbf.P{N: "SEI growth activation energy [J.mol-1]", V: 3.8e4},
			&dbf.P{N: "Reference temperature [K]", V: 300},
			&dbf.P{N: "Inner SEI reaction proportion", V: 0.5},
			&dbf.P{N: "Inner SEI partial molar volume [m3.mol-1]", V: 9.585e-5},
			&dbf.P{N: "Outer SEI partial molar volume [m3.mol-1]", V: 9.585e-5},
			&dbf.P{N: "Ratio of lithium moles to SEI moles", V: 2},
			&dbf.P{N: "Initial inner SEI thickness [m]", V: 2.5e-9},
			&dbf.P{N: "Initial outer SEI thickness [m]", V: 2.5e-9},
			&dbf.P{N: "Initial inner SEI on cracks thickness [m]", V: 1.0e-10},
			&dbf.P{N: "Initial outer SEI on cracks thickness [m]", V: 1.0e-10},
			&dbf.P{N: "Negative particle radius [m]", V: 5.0e-6},
		},
		Funcs: map[string]sym.Func{
			"Negative electrode active material volume fraction": func(args ...float64) float64 { return 0.6 },
		},
		Vars: map[string]float64{"x_n": 0.5},
	}
}

// findRhs returns the rhs governing the variable with the given name
func findRhs(eqs *mdl.Equations, name string) sym.Expr {
	for v, e := range eqs.Rhs {
		if v.Name == name {
			return e
		}
	}
	return nil
}

func Test_mech01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mech01. mechanism and location parsing")

	for name, mech := range mechanisms {
		m, err := MechanismNew(name)
		if err != nil {
			tst.Errorf("parse of %q failed:\n%v", name, err)
			return
		}
		if m != mech {
			tst.Errorf("wrong mechanism for %q\n", name)
			return
		}
		chk.String(tst, m.String(), name)
	}

	_, err := MechanismNew("osmosis limited")
	if err == nil {
		tst.Errorf("unknown mechanism must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = ReactionLocNew("everywhere")
	if err == nil {
		tst.Errorf("unknown reaction location must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_growth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth01. reaction limited, x-averaged")

	opts := prm.DefaultOptions()
	_, sys, g, err := buildGrowth(opts, "x-average", false)
	if err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	// one equation per layer, nothing else
	chk.Ints(tst, "neqs", []int{len(sys.Eqs.Rhs), len(sys.Eqs.InitialConditions)}, []int{2, 2})

	// numeric check against the closed-form kinetics
	b := seiBind()
	lIn, lOut := 1.0e-9, 2.0e-9
	dphi, T, j := 0.1, 300.0, -1.2
	b.Vars["X-averaged inner SEI thickness [m]"] = lIn
	b.Vars["X-averaged outer SEI thickness [m]"] = lOut
	b.Vars["Negative electrode surface potential difference [V]"] = dphi
	b.Vars["Negative electrode temperature [K]"] = T
	b.Vars["X-averaged negative electrode total interfacial current density [A.m-2]"] = j

	fRT := prm.F / (prm.R * T)
	eta := dphi - j*(lIn+lOut)*2.0e5
	jSei := -(1.0 / 2.5) * math.Exp(-0.5*fRT*eta)
	a := 3 * 0.6 / 5.0e-6
	gamma := 9.585e-5 / (prm.F * 2)

	rhsIn := findRhs(g.Equations(), "X-averaged inner SEI thickness [m]")
	rhsOut := findRhs(g.Equations(), "X-averaged outer SEI thickness [m]")
	if rhsIn == nil || rhsOut == nil {
		tst.Errorf("missing thickness equations\n")
		return
	}
	resIn, err := sym.Eval(rhsIn, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dL_inner/dt", 1e-17, resIn, -gamma*a*0.5*jSei)
	resOut, err := sym.Eval(rhsOut, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dL_outer/dt", 1e-17, resOut, -gamma*a*0.5*jSei)

	// initial conditions come straight from the parameter database
	for v, e := range g.Equations().InitialConditions {
		res, e2 := sym.Eval(e, b)
		if e2 != nil {
			tst.Errorf("eval failed:\n%v", e2)
			return
		}
		chk.Float64(tst, "IC "+v.PrintName, 1e-22, res, 2.5e-9)
	}
}

func Test_growth02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth02. ec reaction limited grows the outer layer only")

	opts := prm.DefaultOptions()
	opts.SEI = "ec reaction limited"
	_, sys, g, err := buildGrowth(opts, "x-average", false)
	if err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	// one governed unknown; the inner layer is pinned, not integrated
	chk.Ints(tst, "neqs", []int{len(sys.Eqs.Rhs), len(sys.Eqs.InitialConditions)}, []int{1, 1})
	lInner, err := sys.Pool.Get("test", "Inner SEI thickness [m]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if !sym.IsZero(lInner) {
		tst.Errorf("the inner thickness must be a structural zero\n")
		return
	}
	lInnerAv, err := sys.Pool.Get("test", "X-averaged inner SEI thickness [m]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if !sym.IsZero(lInnerAv) {
		tst.Errorf("the x-averaged inner thickness must be a structural zero\n")
		return
	}

	// closed form: c_ec and j_sei satisfy the linear solvent balance
	b := seiBind()
	lOut := 2.0e-9
	b.Vars["X-averaged outer SEI thickness [m]"] = lOut
	b.Vars["Negative electrode surface potential difference [V]"] = 0.1
	b.Vars["Negative electrode temperature [K]"] = 300
	b.Vars["X-averaged negative electrode total interfacial current density [A.m-2]"] = -1.2

	jExpr, err := sys.Pool.Get("test", "SEI interfacial current density [A.m-2]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	cExpr, err := sys.Pool.Get("test", "EC surface concentration [mol.m-3]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	jVal, err := sym.Eval(jExpr, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	cVal, err := sym.Eval(cExpr, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	io.Pforan("j_sei = %v  c_ec = %v\n", jVal, cVal)
	chk.Float64(tst, "solvent balance", 1e-14, cVal, 1+lOut*3.0e6*jVal)

	// the merged initial condition covers both layers
	for _, e := range g.Equations().InitialConditions {
		res, e2 := sym.Eval(e, b)
		if e2 != nil {
			tst.Errorf("eval failed:\n%v", e2)
			return
		}
		chk.Float64(tst, "IC outer", 1e-22, res, 5.0e-9)
	}
}

func Test_growth03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth03. planar interface")

	opts := prm.DefaultOptions()
	opts.WorkingElectrode = "positive"
	opts.SEI = "electron-migration limited"
	_, sys, g, err := buildGrowth(opts, "interface", false)
	if err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}
	chk.Ints(tst, "neqs", []int{len(sys.Eqs.Rhs)}, []int{2})

	// on a planar interface the unknowns live on the current collector and
	// interfacial equals volumetric current
	for v := range g.Equations().Rhs {
		if v.Domain() != prm.CurrentCollector {
			tst.Errorf("variable %q must live on the current collector\n", v.Name)
			return
		}
	}
	if sys.Pool.Has("X-averaged inner SEI thickness [m]") {
		tst.Errorf("interface models must not register x-averaged thicknesses\n")
		return
	}

	b := seiBind()
	lIn, phi := 1.0e-9, 0.05
	b.Vars["Inner SEI thickness [m]"] = lIn
	b.Vars["Outer SEI thickness [m]"] = 2.0e-9
	b.Vars["Negative electrode temperature [K]"] = 300
	b.Vars["Lithium metal interface surface potential difference [V]"] = 0.1
	b.Vars["Lithium metal interface electrode potential [V]"] = phi
	b.Vars["Lithium metal total interfacial current density [A.m-2]"] = -1.2

	jSei := (phi - 0.1) / (4.0e14 * lIn)
	gamma := 9.585e-5 / (prm.F * 2)

	rhsIn := findRhs(g.Equations(), "Inner SEI thickness [m]")
	if rhsIn == nil {
		tst.Errorf("missing inner thickness equation\n")
		return
	}
	res, err := sym.Eval(rhsIn, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dL_inner/dt", 1e-25, res, -gamma*0.5*jSei)
}

func Test_growth04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth04. growth on cracks adds the spreading term")

	opts := prm.DefaultOptions()
	_, _, g, err := buildGrowth(opts, "full electrode", true)
	if err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}

	b := seiBind()
	lIn, lOut := 3.0e-10, 4.0e-10
	lCr, dlCr := 2.0e-6, 1.0e-9
	dphi, T, j := 0.1, 300.0, -1.2
	b.Vars["Inner SEI on cracks thickness [m]"] = lIn
	b.Vars["Outer SEI on cracks thickness [m]"] = lOut
	b.Vars["Negative particle crack length [m]"] = lCr
	b.Vars["Negative particle cracking rate [m.s-1]"] = dlCr
	b.Vars["Negative electrode surface potential difference [V]"] = dphi
	b.Vars["Negative electrode temperature [K]"] = T
	b.Vars["X-averaged negative electrode total interfacial current density [A.m-2]"] = j

	fRT := prm.F / (prm.R * T)
	eta := dphi - j*(lIn+lOut)*2.0e5
	jSei := -(1.0 / 2.5) * math.Exp(-0.5*fRT*eta)
	a := 3 * 0.6 / 5.0e-6
	gamma := 9.585e-5 / (prm.F * 2)
	spreadIn := dlCr / lCr * (1.0e-10 - lIn)

	rhsIn := findRhs(g.Equations(), "Inner SEI on cracks thickness [m]")
	if rhsIn == nil {
		tst.Errorf("missing inner thickness equation\n")
		return
	}
	res, err := sym.Eval(rhsIn, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dL_inner/dt", 1e-17, res, -gamma*a*0.5*jSei+spreadIn)

	// initial conditions switch to the on-cracks values
	for _, e := range g.Equations().InitialConditions {
		res, e2 := sym.Eval(e, b)
		if e2 != nil {
			tst.Errorf("eval failed:\n%v", e2)
			return
		}
		chk.Float64(tst, "IC on cracks", 1e-25, res, 1.0e-10)
	}
}

func Test_growth05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth05. configuration errors fail at construction")

	params, err := prm.New(prm.DefaultOptions())
	if err != nil {
		tst.Errorf("construction failed:\n%v", err)
		return
	}

	// interface location needs a planar negative electrode
	if _, err = NewGrowth(params, "interface", false, "primary"); err == nil {
		tst.Errorf("interface location on a porous electrode must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// secondary phase is not allocated for a single-phase electrode
	if _, err = NewGrowth(params, "x-average", false, "secondary"); err == nil {
		tst.Errorf("missing secondary phase must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	if _, err = NewGrowth(params, "everywhere", false, "primary"); err == nil {
		tst.Errorf("unknown location must fail\n")
		return
	}

	// planar cells need the interface location, and cracks need particles
	opts := prm.DefaultOptions()
	opts.WorkingElectrode = "positive"
	half, err := prm.New(opts)
	if err != nil {
		tst.Errorf("construction failed:\n%v", err)
		return
	}
	if _, err = NewGrowth(half, "x-average", false, "primary"); err == nil {
		tst.Errorf("x-average location on a planar electrode must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if _, err = NewGrowth(half, "interface", true, "primary"); err == nil {
		tst.Errorf("cracks on a planar electrode must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_growth06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("growth06. stages must run in order")

	params, err := prm.New(prm.DefaultOptions())
	if err != nil {
		tst.Errorf("construction failed:\n%v", err)
		return
	}
	g, err := NewGrowth(params, "x-average", false, "primary")
	if err != nil {
		tst.Errorf("construction failed:\n%v", err)
		return
	}
	pool := mdl.NewPool()
	if err = g.SetRhs(pool); err == nil {
		tst.Errorf("setting equations before declaring variables must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

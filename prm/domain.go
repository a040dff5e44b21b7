// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import "github.com/PeterAndrewBriscoe/PyBaMM/sym"

// DomainParams holds the parameters of one cell domain ("negative",
// "separator" or "positive"). Electrode domains own up to two particle
// phases; the separator owns none. Aggregates fold over present phases only.
type DomainParams struct {

	// configuration
	Name string // "negative", "separator" or "positive"

	// borrowed references
	Geo  *DomainGeometry
	main *CellParams

	// phases; nil when absent
	Prim *PhaseParams
	Sec  *PhaseParams

	// macroscale geometry mirrors
	L   sym.Expr // domain thickness
	LCc sym.Expr // current collector thickness

	// porosity and tortuosity
	EpsilonInit     sym.Expr // porosity (function of x)
	EpsilonInactive sym.Expr // inactive volume fraction
	BE              sym.Expr // Bruggeman coefficient (electrolyte)
	BS              sym.Expr // Bruggeman coefficient (electrode)

	// electrode properties
	SigmaCc  sym.Expr // current collector conductivity
	CDl      sym.Expr // double-layer capacity
	SPlus    sym.Expr // reaction stoichiometry of the cation
	BetaSurf sym.Expr // surface volume change factor

	// aggregates over present phases
	NLiInit sym.Expr // initial lithium inventory
	CapInit sym.Expr // initial capacity
}

func newDomainParams(name string, main *CellParams) *DomainParams {
	o := &DomainParams{Name: name, main: main}
	switch name {
	case "negative":
		o.Geo = main.Geo.N
	case "separator":
		o.Geo = main.Geo.S
		return o
	case "positive":
		o.Geo = main.Geo.P
	}
	nphases := main.Opts.ParticlePhases(name)
	if nphases >= 1 {
		o.Prim = newPhaseParams("primary", o)
	}
	if nphases >= 2 {
		o.Sec = newPhaseParams("secondary", o)
	}
	return o
}

// Phases returns the present phases of this domain, primary first. Domains
// without phases return an empty slice so callers fold to zero explicitly.
func (o *DomainParams) Phases() (phases []*PhaseParams) {
	if o.Prim != nil {
		phases = append(phases, o.Prim)
	}
	if o.Sec != nil {
		phases = append(phases, o.Sec)
	}
	return
}

// setDimensional defines the dimensional parameters of this domain. Phases
// run before the domain-level aggregates that sum over them.
func (o *DomainParams) setDimensional() {
	main := o.main
	Domain := capitalise(o.Name)

	if o.Name == "separator" {
		x := sym.NewVariable("x_s", Separator, sym.Aux{Secondary: CurrentCollector})
		o.L = o.Geo.L
		o.BE = o.Geo.BE
		o.EpsilonInit = sym.NewFunctionParameter("Separator porosity", sym.In("Through-cell distance (x) [m]", x))
		o.EpsilonInactive = sym.Sub(num(1), o.EpsilonInit)
		return
	}

	electrode := sym.Domain(o.Name + " electrode")
	x := sym.NewVariable("x_"+o.Name[:1], electrode, sym.Aux{Secondary: CurrentCollector})

	// macroscale geometry
	o.L = o.Geo.L
	o.LCc = o.Geo.LCc

	// phases compute their dimensional parameters before any aggregate reads
	for _, phase := range o.Phases() {
		phase.setDimensional()
	}

	o.SigmaCc = sym.NewParameter(Domain + " current collector conductivity [S.m-1]")

	if main.Opts.ElectrodeType(o.Name) == "porous" {
		o.EpsilonInit = sym.NewFunctionParameter(
			Domain+" electrode porosity",
			sym.In("Through-cell distance (x) [m]", x),
		)
		var epsS []sym.Expr
		var caps []sym.Expr
		for _, phase := range o.Phases() {
			epsS = append(epsS, phase.EpsilonS)
			caps = append(caps, phase.CapInit)
		}
		o.EpsilonInactive = sym.Sub(sym.Sub(num(1), o.EpsilonInit), sym.Sum(epsS...))
		o.CapInit = sym.Sum(caps...)
	}

	var nLi []sym.Expr
	for _, phase := range o.Phases() {
		nLi = append(nLi, phase.NLiInit)
	}
	o.NLiInit = sym.Sum(nLi...)

	// tortuosity
	o.BE = o.Geo.BE
	o.BS = o.Geo.BS

	o.CDl = sym.NewParameter(Domain + " electrode double-layer capacity [F.m-2]")
	o.SPlus = sym.NewParameter(Domain + " electrode reaction stoichiometry")
	o.BetaSurf = sym.NewParameter(Domain + " electrode surface volume change factor")
}

// Sigma returns the electrode electrical conductivity
func (o *DomainParams) Sigma(T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter(
		capitalise(o.Name)+" electrode conductivity [S.m-1]",
		sym.In("Temperature [K]", T),
	)
}

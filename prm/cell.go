// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import "github.com/PeterAndrewBriscoe/PyBaMM/sym"

// CellParams is the top level of the parameter hierarchy. Construction runs
// a strict bottom-up order: shared geometry/thermal/electrical providers,
// then domains (negative, separator, positive), then phases within each
// domain, then domain-level aggregates, then the top-level aggregates. The
// fixed order is what lets every derived quantity read only values computed
// strictly below it.
type CellParams struct {

	// configuration
	Opts *Options

	// shared providers
	Geo   *Geometry
	Therm *Thermal
	Elec  *Electrical

	// domains
	N *DomainParams
	S *DomainParams
	P *DomainParams

	// thermal mirrors
	TRef  sym.Expr
	TInit sym.Expr
	TAmb  sym.Expr

	// macroscale geometry mirrors
	LX  sym.Expr
	ACc sym.Expr

	// electrolyte properties
	CETyp      sym.Expr // typical electrolyte concentration
	CEInit     sym.Expr // initial electrolyte concentration
	CEScale    sym.Expr // electrolyte diffusion timescale ratio
	GammaHatE  sym.Expr // electrolyte concentration scale ratio
	AlphaTCell sym.Expr // cell thermal expansion coefficient

	// lithium plating
	VBarPlatedLi sym.Expr // lithium metal partial molar volume
	CLiTyp       sym.Expr // typical plated lithium concentration
	CPlatedLi0   sym.Expr // initial plated lithium concentration

	// whole-cell porosity
	EpsilonInit sym.Expr

	// total lithium aggregates
	NLiEInit         sym.Expr // lithium inventory of the electrolyte
	NLiParticlesInit sym.Expr // lithium inventory of the particles
	NLiInit          sym.Expr // total lithium inventory of the cell

	// reference open-circuit voltage at initial concentrations
	OcvInit sym.Expr
}

// New builds the whole parameter hierarchy for the given options
func New(opts *Options) (o *CellParams, err error) {
	if err = opts.Validate(); err != nil {
		return nil, err
	}
	o = &CellParams{Opts: opts}

	// shared providers first: every node below borrows from them
	o.Geo = NewGeometry(opts)
	o.Therm = NewThermal()
	o.Elec = NewElectrical()

	// allocate domains
	o.N = newDomainParams("negative", o)
	o.S = newDomainParams("separator", o)
	o.P = newDomainParams("positive", o)

	o.setDimensional()
	return
}

// setDimensional defines the dimensional parameters, called exactly once
func (o *CellParams) setDimensional() {

	// thermal
	o.TRef = o.Therm.TRef
	o.TInit = o.Therm.TInit
	o.TAmb = o.Therm.TAmb

	// macroscale geometry
	o.LX = o.Geo.LX
	o.ACc = o.Geo.ACc

	// domains in fixed order: negative, separator, positive
	o.N.setDimensional()
	o.S.setDimensional()
	o.P.setDimensional()

	// electrolyte properties
	o.CETyp = sym.NewParameter("Typical electrolyte concentration [mol.m-3]")
	o.CEInit = sym.NewParameter("Initial concentration in electrolyte [mol.m-3]")
	o.CEScale = sym.NewParameter("Electrolyte diffusion timescale ratio")
	o.GammaHatE = sym.NewParameter("Electrolyte concentration scale ratio")

	var eps []sym.Expr
	for _, dom := range o.wholeCellParams() {
		eps = append(eps, dom.EpsilonInit)
	}
	o.EpsilonInit = sym.Concatenation(eps...)

	// lithium plating
	o.VBarPlatedLi = sym.NewParameter("Lithium metal partial molar volume [m3.mol-1]")
	o.CLiTyp = sym.NewParameter("Typical plated lithium concentration [mol.m-3]")
	o.CPlatedLi0 = sym.NewParameter("Initial plated lithium concentration [mol.m-3]")

	o.AlphaTCell = sym.NewParameter("Cell thermal expansion coefficient [m.K-1]")

	// total lithium: the electrolyte inventory uses the volume-weighted
	// average porosity over the whole-cell domains
	var weighted []sym.Expr
	for _, dom := range o.wholeCellParams() {
		weighted = append(weighted, sym.Mul(dom.L, sym.XYZAverage(dom.EpsilonInit)))
	}
	epsAvInit := sym.Div(sym.Sum(weighted...), o.LX)
	cEAvInit := sym.Mul(epsAvInit, o.CETyp)
	o.NLiEInit = sym.Mul(sym.Mul(cEAvInit, o.LX), o.ACc)

	o.NLiParticlesInit = sym.Add(o.N.NLiInit, o.P.NLiInit)
	o.NLiInit = sym.Add(o.NLiParticlesInit, o.NLiEInit)

	// reference OCV based on initial concentrations
	o.OcvInit = sym.Sub(primUInit(o.P), primUInit(o.N))
}

// wholeCellParams returns the domain parameters of the whole-cell domains in
// through-cell order, skipping planar electrodes
func (o *CellParams) wholeCellParams() (doms []*DomainParams) {
	if o.Opts.ElectrodeType("negative") == "porous" {
		doms = append(doms, o.N)
	}
	doms = append(doms, o.S)
	if o.Opts.ElectrodeType("positive") == "porous" {
		doms = append(doms, o.P)
	}
	return
}

// primUInit returns the primary-phase initial OCP of a domain, or zero when
// the domain has no phases
func primUInit(dom *DomainParams) sym.Expr {
	if dom.Prim == nil {
		return num(0)
	}
	return dom.Prim.UInit
}

// TPlus returns the cation transference number
func (o *CellParams) TPlus(cE, T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter("Cation transference number",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Temperature [K]", T),
	)
}

// OnePlusDlnfDlnc returns the thermodynamic factor
func (o *CellParams) OnePlusDlnfDlnc(cE, T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter("1 + dlnf/dlnc",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Temperature [K]", T),
	)
}

// DE returns the electrolyte diffusivity. The concentration is floored by
// the process-wide tolerance before calling the function parameter.
func (o *CellParams) DE(cE, T sym.Expr) sym.Expr {
	cE = sym.Maximum(cE, num(Tolerance("D_e__c_e")))
	return sym.NewFunctionParameter("Electrolyte diffusivity [m2.s-1]",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Temperature [K]", T),
	)
}

// KappaE returns the electrolyte conductivity, with the same concentration
// floor as DE
func (o *CellParams) KappaE(cE, T sym.Expr) sym.Expr {
	cE = sym.Maximum(cE, num(Tolerance("D_e__c_e")))
	return sym.NewFunctionParameter("Electrolyte conductivity [S.m-1]",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Temperature [K]", T),
	)
}

// Chi returns the thermodynamic factor of the electrolyte: (1-2*t_plus) for
// Nernst-Planck, 2*(1-t_plus) for Stefan-Maxwell
func (o *CellParams) Chi(cE, T sym.Expr) sym.Expr {
	return sym.Mul(
		sym.Mul(num(2), sym.Sub(num(1), o.TPlus(cE, T))),
		o.OnePlusDlnfDlnc(cE, T),
	)
}

// ChiRTOverFc returns chi * R * T / (F * c), as it appears in the
// electrolyte potential equation
func (o *CellParams) ChiRTOverFc(cE, T sym.Expr) sym.Expr {
	cE = sym.Maximum(cE, num(Tolerance("chi__c_e")))
	return sym.Div(sym.Mul(sym.Div(sym.Mul(num(R), T), num(F)), o.Chi(cE, T)), cE)
}

// J0Stripping returns the exchange-current density for lithium stripping
func (o *CellParams) J0Stripping(cE, cLi, T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter("Exchange-current density for stripping [A.m-2]",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Plated lithium concentration [mol.m-3]", cLi),
		sym.In("Temperature [K]", T),
	)
}

// J0Plating returns the exchange-current density for lithium plating
func (o *CellParams) J0Plating(cE, cLi, T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter("Exchange-current density for plating [A.m-2]",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In("Plated lithium concentration [mol.m-3]", cLi),
		sym.In("Temperature [K]", T),
	)
}

// DeadLithiumDecayRate returns the dead lithium decay rate
func (o *CellParams) DeadLithiumDecayRate(lSei sym.Expr) sym.Expr {
	return sym.NewFunctionParameter("Dead lithium decay rate [s-1]",
		sym.In("Total SEI thickness [m]", lSei),
	)
}

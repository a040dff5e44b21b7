// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import "github.com/PeterAndrewBriscoe/PyBaMM/sym"

// PhaseParams holds the particle parameters of one phase ("primary" or
// "secondary") within one electrode. Secondary-phase parameter names carry
// the "Secondary: " prefix so both phases can live in one database.
type PhaseParams struct {

	// configuration
	Phase  string // "primary" or "secondary"
	Domain string // "negative" or "positive"

	// borrowed references
	Geo  *PhaseGeometry
	dom  *DomainParams
	main *CellParams

	// electrochemical reaction
	NE      sym.Expr // electrons in reaction
	AlphaBV sym.Expr // Butler-Volmer transfer coefficient

	// SEI (negative electrode only)
	VBarInner          sym.Expr // inner SEI partial molar volume
	VBarOuter          sym.Expr // outer SEI partial molar volume
	MSei               sym.Expr // SEI reaction exchange current density
	RSei               sym.Expr // SEI resistivity
	DSol               sym.Expr // outer SEI solvent diffusivity
	CSol               sym.Expr // bulk solvent concentration
	UInner             sym.Expr // inner SEI open-circuit potential
	UOuter             sym.Expr // outer SEI open-circuit potential
	KappaInner         sym.Expr // inner SEI electron conductivity
	DLi                sym.Expr // inner SEI lithium interstitial diffusivity
	CLi0               sym.Expr // lithium interstitial reference concentration
	LInner0            sym.Expr // initial inner SEI thickness
	LOuter0            sym.Expr // initial outer SEI thickness
	LSei0              sym.Expr // initial total SEI thickness
	LInnerCrack0       sym.Expr // initial inner SEI on cracks thickness
	LOuterCrack0       sym.Expr // initial outer SEI on cracks thickness
	ESei               sym.Expr // SEI growth activation energy
	ZSei               sym.Expr // ratio of lithium moles to SEI moles
	InnerSeiProportion sym.Expr // proportion of total SEI reaction forming inner SEI
	CEc0               sym.Expr // EC initial concentration in electrolyte
	DEc                sym.Expr // EC diffusivity
	KSei               sym.Expr // SEI kinetic rate constant
	USei               sym.Expr // SEI open-circuit potential

	// SEI kinetic coefficients, one per growth mechanism
	CSeiReaction sym.Expr
	CSeiElectron sym.Expr
	CSeiInter    sym.Expr
	CSeiSolvent  sym.Expr
	CSeiEc       sym.Expr
	CEc          sym.Expr

	// particle properties
	RTyp      sym.Expr // typical particle radius
	CMax      sym.Expr // maximum concentration
	EpsilonS  sym.Expr // active material volume fraction (function of x)
	CInit     sym.Expr // initial concentration (function of r and x)
	CInitAv   sym.Expr // volume-averaged initial concentration
	StoInitAv sym.Expr // initial stoichiometry

	// derived
	NLiInit     sym.Expr // initial lithium inventory of this phase
	ElecLoading sym.Expr // electrode loading
	CapInit     sym.Expr // initial capacity
	UInit       sym.Expr // open-circuit potential at the initial stoichiometry
}

func newPhaseParams(phase string, dom *DomainParams) *PhaseParams {
	o := &PhaseParams{Phase: phase, Domain: dom.Name, dom: dom, main: dom.main}
	if phase == "primary" {
		o.Geo = dom.Geo.Prim
	} else {
		o.Geo = dom.Geo.Sec
	}
	return o
}

// pref returns the phase prefix for parameter names
func (o *PhaseParams) pref() string {
	if o.Phase == "secondary" {
		return "Secondary: "
	}
	return ""
}

// ParticleDomain returns the spatial domain of this phase's particles
func (o *PhaseParams) ParticleDomain() sym.Domain {
	if o.Phase == "secondary" {
		return sym.Domain(o.Domain + " secondary particle")
	}
	return sym.Domain(o.Domain + " particle")
}

// setDimensional defines the dimensional parameters of this phase. For a
// planar (lithium-metal) electrode the geometry-dependent quantities are
// meaningless: the lithium inventory and initial open-circuit potential are
// zero and nothing else is computed.
func (o *PhaseParams) setDimensional() {
	main := o.main
	pref := o.pref()
	Domain := capitalise(o.Domain)
	electrode := sym.Domain(o.Domain + " electrode")

	// electrochemical reaction
	o.NE = sym.NewParameter(pref + Domain + " electrode electrons in reaction")
	o.AlphaBV = sym.NewParameter(pref + Domain + " electrode Butler-Volmer transfer coefficient")

	if o.Domain == "negative" {
		o.VBarInner = sym.NewParameter(pref + "Inner SEI partial molar volume [m3.mol-1]")
		o.VBarOuter = sym.NewParameter(pref + "Outer SEI partial molar volume [m3.mol-1]")
		o.MSei = sym.NewParameter(pref + "SEI reaction exchange current density [A.m-2]")
		o.RSei = sym.NewParameter(pref + "SEI resistivity [Ohm.m]")
		o.DSol = sym.NewParameter(pref + "Outer SEI solvent diffusivity [m2.s-1]")
		o.CSol = sym.NewParameter(pref + "Bulk solvent concentration [mol.m-3]")
		o.UInner = sym.NewParameter(pref + "Inner SEI open-circuit potential [V]")
		o.UOuter = sym.NewParameter(pref + "Outer SEI open-circuit potential [V]")
		o.KappaInner = sym.NewParameter(pref + "Inner SEI electron conductivity [S.m-1]")
		o.DLi = sym.NewParameter(pref + "Inner SEI lithium interstitial diffusivity [m2.s-1]")
		o.CLi0 = sym.NewParameter(pref + "Lithium interstitial reference concentration [mol.m-3]")
		o.LInner0 = sym.NewParameter(pref + "Initial inner SEI thickness [m]")
		o.LOuter0 = sym.NewParameter(pref + "Initial outer SEI thickness [m]")
		o.LSei0 = sym.Add(o.LInner0, o.LOuter0)
		o.LInnerCrack0 = sym.NewParameter(pref + "Initial inner SEI on cracks thickness [m]")
		o.LOuterCrack0 = sym.NewParameter(pref + "Initial outer SEI on cracks thickness [m]")
		o.ESei = sym.NewParameter(pref + "SEI growth activation energy [J.mol-1]")
		o.ZSei = sym.NewParameter(pref + "Ratio of lithium moles to SEI moles")
		o.InnerSeiProportion = sym.NewParameter(pref + "Inner SEI reaction proportion")
		o.CEc0 = sym.NewParameter(pref + "EC initial concentration in electrolyte [mol.m-3]")
		o.DEc = sym.NewParameter(pref + "EC diffusivity [m2.s-1]")
		o.KSei = sym.NewParameter(pref + "SEI kinetic rate constant [m.s-1]")
		o.USei = sym.NewParameter(pref + "SEI open-circuit potential [V]")

		o.CSeiReaction = sym.NewParameter(pref + "SEI reaction limited coefficient")
		o.CSeiElectron = sym.NewParameter(pref + "SEI electron-migration limited coefficient")
		o.CSeiInter = sym.NewParameter(pref + "SEI interstitial-diffusion limited coefficient")
		o.CSeiSolvent = sym.NewParameter(pref + "SEI solvent-diffusion limited coefficient")
		o.CSeiEc = sym.NewParameter(pref + "SEI ec reaction limited coefficient")
		o.CEc = sym.NewParameter(pref + "EC concentration coupling coefficient")
	}

	if main.Opts.ElectrodeType(o.Domain) == "planar" {
		o.NLiInit = num(0)
		o.UInit = num(0)
		return
	}

	x := sym.NewVariable("x_"+o.Domain[:1], electrode, sym.Aux{Secondary: CurrentCollector})
	r := sym.NewVariable("r_"+o.Domain[:1], o.ParticleDomain(), sym.Aux{Secondary: electrode, Tertiary: CurrentCollector})

	o.RTyp = o.Geo.RTyp
	o.CMax = sym.NewParameter(pref + "Maximum concentration in " + o.Domain + " electrode [mol.m-3]")

	o.EpsilonS = sym.NewFunctionParameter(
		pref+Domain+" electrode active material volume fraction",
		sym.In("Through-cell distance (x) [m]", x),
	)
	o.CInit = sym.NewFunctionParameter(
		pref+"Initial concentration in "+o.Domain+" electrode [mol.m-3]",
		sym.In("Radial distance (r) [m]", r),
		sym.In("Through-cell distance (x) [m]", sym.PrimaryBroadcast(x, o.ParticleDomain())),
	)
	o.CInitAv = sym.XYZAverage(sym.RAverage(o.CInit))
	o.StoInitAv = sym.Div(o.CInitAv, o.CMax)

	epsCInitAv := sym.XYZAverage(sym.Mul(o.EpsilonS, sym.RAverage(o.CInit)))
	o.NLiInit = sym.Mul(sym.Mul(epsCInitAv, o.dom.L), main.Geo.ACc)

	epsSAv := sym.XYZAverage(o.EpsilonS)
	o.ElecLoading = sym.Div(sym.Mul(sym.Mul(sym.Mul(epsSAv, o.dom.L), o.CMax), num(F)), num(3600))
	o.CapInit = sym.Mul(o.ElecLoading, main.Geo.ACc)

	o.UInit = o.U(o.StoInitAv, main.Therm.TInit)
}

// D returns the particle diffusivity as a function of stoichiometry and
// temperature
func (o *PhaseParams) D(sto, T sym.Expr) sym.Expr {
	return sym.NewFunctionParameter(
		o.pref()+capitalise(o.Domain)+" electrode diffusivity [m2.s-1]",
		sym.In(o.pref()+capitalise(o.Domain)+" particle stoichiometry", sto),
		sym.In("Temperature [K]", T),
	)
}

// J0 returns the exchange-current density
func (o *PhaseParams) J0(cE, cSSurf, T sym.Expr) sym.Expr {
	Domain := capitalise(o.Domain)
	return sym.NewFunctionParameter(
		o.pref()+Domain+" electrode exchange-current density [A.m-2]",
		sym.In("Electrolyte concentration [mol.m-3]", cE),
		sym.In(Domain+" particle surface concentration [mol.m-3]", cSSurf),
		sym.In(o.pref()+"Maximum "+o.Domain+" particle surface concentration [mol.m-3]", o.CMax),
		sym.In("Temperature [K]", T),
	)
}

// U returns the open-circuit potential. The stoichiometry is clamped to
// (tol, 1-tol) before calling the function parameter; the diverging
// correction term then makes the potential tend to +inf at 0 and -inf at 1
// despite the clamp, so the physical boundaries stay repulsive.
func (o *PhaseParams) U(sto, T sym.Expr) sym.Expr {
	tol := Tolerance("U__c_s")
	sto = sym.Maximum(sym.Minimum(sto, num(1-tol)), num(tol))
	var uRef sym.Expr = sym.NewFunctionParameter(
		o.pref()+capitalise(o.Domain)+" electrode OCP [V]",
		sym.In(o.pref()+capitalise(o.Domain)+" particle stoichiometry", sto),
	)
	one := num(1)
	guard := sym.Mul(num(1e-6), sym.Add(sym.Div(one, sto), sym.Div(one, sym.Sub(sto, one))))
	uRef = sym.Add(uRef, guard)
	return sym.Add(uRef, sym.Mul(sym.Sub(T, o.main.Therm.TRef), o.DUdT(sto)))
}

// DUdT returns the entropic change of the open-circuit potential
func (o *PhaseParams) DUdT(sto sym.Expr) sym.Expr {
	Domain := capitalise(o.Domain)
	return sym.NewFunctionParameter(
		o.pref()+Domain+" electrode OCP entropic change [V.K-1]",
		sym.In(Domain+" particle stoichiometry", sto),
		sym.In(o.pref()+"Maximum "+o.Domain+" particle surface concentration [mol.m-3]", o.CMax),
	)
}

// capitalise upper-cases the first letter of a domain name
func capitalise(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

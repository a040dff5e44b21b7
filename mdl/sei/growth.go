// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sei

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// ReactionLoc selects where the SEI reaction is resolved: one value per
// through-cell-averaged cross-section, one value per through-cell position,
// or one value per planar lithium-metal interface
type ReactionLoc int

// available reaction locations
const (
	XAverage ReactionLoc = iota
	FullElectrode
	Interface
)

var reactionLocs = map[string]ReactionLoc{
	"x-average":      XAverage,
	"full electrode": FullElectrode,
	"interface":      Interface,
}

// ReactionLocNew parses the reaction-location option string
func ReactionLocNew(name string) (loc ReactionLoc, err error) {
	loc, ok := reactionLocs[name]
	if !ok {
		return 0, chk.Err("reaction location %q is invalid; options are \"x-average\", \"full electrode\" and \"interface\"", name)
	}
	return
}

// Growth is the SEI growth submodel: two coupled thickness equations (inner,
// outer) on the negative electrode, driven by one of five kinetic mechanisms.
// The same governing-equation structure serves all reaction locations; only
// which named fields are fetched from the shared pool changes.
type Growth struct {

	// configuration
	params *prm.CellParams
	phase  *prm.PhaseParams
	loc    ReactionLoc
	mech   Mechanism
	cracks bool

	// build state
	eqs   *mdl.Equations
	stage mdl.Stage

	// unknowns; innerVar is nil for the ec mechanism, which pins the inner
	// thickness to zero and grows the outer layer only
	innerVar *sym.Variable
	outerVar *sym.Variable
}

// NewGrowth allocates an SEI growth submodel. The mechanism comes from the
// "SEI" option; unsupported option values and inconsistent reaction-location
// combinations fail here, not during equation construction.
func NewGrowth(params *prm.CellParams, reactionLoc string, cracks bool, phase string) (o *Growth, err error) {
	o = &Growth{params: params, cracks: cracks, eqs: mdl.NewEquations()}
	o.mech, err = MechanismNew(params.Opts.SEI)
	if err != nil {
		return nil, err
	}
	o.loc, err = ReactionLocNew(reactionLoc)
	if err != nil {
		return nil, err
	}
	switch phase {
	case "primary":
		o.phase = params.N.Prim
	case "secondary":
		o.phase = params.N.Sec
	default:
		return nil, chk.Err("phase %q is invalid; options are \"primary\" and \"secondary\"", phase)
	}
	if o.phase == nil {
		return nil, chk.Err("SEI growth needs the %q particle phase in the negative electrode but option \"particle phases\" = %d", phase, params.Opts.ParticlePhases("negative"))
	}
	planar := params.Opts.ElectrodeType("negative") == "planar"
	if o.loc == Interface && !planar {
		return nil, chk.Err("reaction location \"interface\" needs a planar negative electrode; set option \"working electrode\" = \"positive\"")
	}
	if o.loc != Interface && planar {
		return nil, chk.Err("a planar negative electrode needs reaction location \"interface\"")
	}
	if o.cracks && o.loc == Interface {
		return nil, chk.Err("SEI on cracks needs a porous negative electrode")
	}
	return
}

// Name returns the submodel name
func (o *Growth) Name() string {
	return strings.TrimSpace(o.reactionName())
}

// Equations returns the equation registry of this submodel
func (o *Growth) Equations() *mdl.Equations {
	return o.eqs
}

// reactionName returns the key fragment naming this reaction
func (o *Growth) reactionName() string {
	if o.cracks {
		return reactionCracks
	}
	return reactionSEI
}

// FundamentalVariables declares the inner and outer thickness unknowns and
// registers the standard thickness variables in the pool
func (o *Growth) FundamentalVariables(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageFundamental); err != nil {
		return
	}
	rn := o.reactionName()

	Ls := make([]sym.Expr, 2)
	vars := make([]*sym.Variable, 2)
	for i, pos := range []string{"inner", "outer"} {
		Pos := capitalise(pos)
		var L sym.Expr
		var v *sym.Variable
		switch o.loc {
		case XAverage:
			v = sym.NewVariable("X-averaged "+pos+" "+rn+"thickness [m]", prm.CurrentCollector, sym.Aux{})
			v.PrintName = "L_" + pos + "_av"
			L = sym.PrimaryBroadcast(v, prm.NegativeElectrode)
		case FullElectrode:
			v = sym.NewVariable(Pos+" "+rn+"thickness [m]", prm.NegativeElectrode, sym.Aux{Secondary: prm.CurrentCollector})
			v.PrintName = "L_" + pos
			L = v
		case Interface:
			v = sym.NewVariable(Pos+" "+rn+"thickness [m]", prm.CurrentCollector, sym.Aux{})
			v.PrintName = "L_" + pos
			L = v
		}
		Ls[i] = L
		vars[i] = v
	}

	lInner, lOuter := Ls[0], Ls[1]
	o.innerVar, o.outerVar = vars[0], vars[1]

	if o.mech == EcReactionLimited {
		// the inner layer does not grow: pin the thickness to the zero
		// expression, keeping the domains of the variable it replaces
		lInner = sym.ZeroLike(lInner)
		o.innerVar = nil
	}

	return o.setThicknessVariables(pool, lInner, lOuter)
}

// setThicknessVariables registers the standard thickness variables
func (o *Growth) setThicknessVariables(pool *mdl.Pool, lInner, lOuter sym.Expr) (err error) {
	rn := o.reactionName()
	total := sym.Add(lInner, lOuter)
	for pos, L := range map[string]sym.Expr{"Inner ": lInner, "Outer ": lOuter, "Total ": total} {
		if err = pool.Set(o.Name(), pos+rn+"thickness [m]", L); err != nil {
			return
		}
		if o.loc != Interface {
			key := "X-averaged " + strings.ToLower(pos) + rn + "thickness [m]"
			if err = pool.Set(o.Name(), key, sym.XAverage(L)); err != nil {
				return
			}
		}
	}
	return
}

// CoupledVariables builds the reaction flux from the mechanism kinetics and
// registers the standard reaction variables. It needs other submodels'
// fundamental variables (temperature, potentials, interfacial current) to be
// in the pool already.
func (o *Growth) CoupledVariables(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageCoupled); err != nil {
		return
	}
	name := o.Name()
	rn := o.reactionName()
	phase := o.phase

	T, err := pool.Get(name, "Negative electrode temperature [K]")
	if err != nil {
		return
	}
	var deltaPhi, phiSN sym.Expr
	if o.loc == Interface {
		if deltaPhi, err = pool.Get(name, "Lithium metal interface surface potential difference [V]"); err != nil {
			return
		}
		if phiSN, err = pool.Get(name, "Lithium metal interface electrode potential [V]"); err != nil {
			return
		}
		T = sym.BoundaryValue(T, "right")
	} else {
		if deltaPhi, err = pool.Get(name, "Negative electrode surface potential difference [V]"); err != nil {
			return
		}
		if phiSN, err = pool.Get(name, "Negative electrode potential [V]"); err != nil {
			return
		}
	}

	// current contributing to the -IR drop across the film. When the primary
	// reaction current is absent (e.g. an inverse Butler-Volmer interface
	// treats the electrode as uniform) the total current is the same
	// quantity, so falling back is not an error.
	fallback := "X-averaged negative electrode total interfacial current density [A.m-2]"
	if o.loc == Interface {
		fallback = "Lithium metal total interfacial current density [A.m-2]"
	}
	j, err := pool.GetFirst(name, "Negative electrode interfacial current density [A.m-2]", fallback)
	if err != nil {
		return
	}
	if o.loc != Interface && j.Domain() == prm.CurrentCollector {
		j = sym.PrimaryBroadcast(j, prm.NegativeElectrode)
	}

	lInner, err := pool.Get(name, "Inner "+rn+"thickness [m]")
	if err != nil {
		return
	}
	lOuter, err := pool.Get(name, "Outer "+rn+"thickness [m]")
	if err != nil {
		return
	}
	lSei, err := pool.Get(name, "Total "+rn+"thickness [m]")
	if err != nil {
		return
	}

	etaSEI := sym.Sub(deltaPhi, sym.Mul(sym.Mul(j, lSei), phase.RSei))
	fRT := sym.Div(num(prm.F), sym.Mul(num(prm.R), T))

	flux := fluxAllocators[o.mech](&fluxArgs{
		phase: phase, etaSEI: etaSEI, fRT: fRT, phiSN: phiSN, deltaPhi: deltaPhi,
		lInner: lInner, lOuter: lOuter, lSei: lSei,
	})

	if flux.cEc != nil {
		key := "EC surface concentration [mol.m-3]"
		if o.cracks {
			key = "EC concentration on cracks [mol.m-3]"
		}
		if err = pool.Set(name, key, flux.cEc); err != nil {
			return
		}
		if o.loc != Interface {
			if err = pool.Set(name, "X-averaged "+key, sym.XAverage(flux.cEc)); err != nil {
				return
			}
		}
	}

	// the inner/outer split is fixed by the inner reaction proportion; the
	// ec mechanism only grows the outer layer
	var innerProportion sym.Expr = num(0)
	if o.mech != EcReactionLimited {
		innerProportion = phase.InnerSeiProportion
	}

	// all mechanisms share the Arrhenius temperature dependence
	arrhenius := sym.Exp(sym.Mul(
		sym.Div(phase.ESei, num(prm.R)),
		sym.Sub(sym.Div(num(1), o.params.TRef), sym.Div(num(1), T)),
	))

	jInner := sym.Mul(sym.Mul(innerProportion, arrhenius), flux.jSei)
	jOuter := sym.Mul(sym.Mul(sym.Sub(num(1), innerProportion), arrhenius), flux.jSei)

	return o.setReactionVariables(pool, jInner, jOuter)
}

// setReactionVariables registers the interfacial and volumetric current
// densities of both layers
func (o *Growth) setReactionVariables(pool *mdl.Pool, jInner, jOuter sym.Expr) (err error) {
	name := o.Name()
	rn := o.reactionName()

	// surface area to volume ratio; for a planar interface the volumetric
	// and interfacial densities coincide
	var a sym.Expr = num(1)
	if o.loc != Interface {
		if pool.Has("Negative electrode surface area to volume ratio [m-1]") {
			if a, err = pool.Get(name, "Negative electrode surface area to volume ratio [m-1]"); err != nil {
				return
			}
		} else {
			// spherical particles
			a = sym.Mul(num(3), sym.Div(o.phase.EpsilonS, o.phase.RTyp))
		}
	}

	for pos, j := range map[string]sym.Expr{"Inner ": jInner, "Outer ": jOuter, "": sym.Add(jInner, jOuter)} {
		aj := sym.Mul(a, j)
		if err = pool.Set(name, pos+rn+"interfacial current density [A.m-2]", j); err != nil {
			return
		}
		if err = pool.Set(name, pos+rn+"volumetric interfacial current density [A.m-3]", aj); err != nil {
			return
		}
		if o.loc != Interface {
			low := strings.ToLower(pos)
			if err = pool.Set(name, "X-averaged "+low+rn+"interfacial current density [A.m-2]", sym.XAverage(j)); err != nil {
				return
			}
			if err = pool.Set(name, "X-averaged "+low+rn+"volumetric interfacial current density [A.m-3]", sym.XAverage(aj)); err != nil {
				return
			}
		}
	}
	return
}

// SetRhs registers the thickness equations: d(thickness)/dt equals the
// volumetric reaction flux scaled by the SEI partial molar volume, plus a
// spreading term when growing on cracks
func (o *Growth) SetRhs(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageEquationsSet); err != nil {
		return
	}
	name := o.Name()
	rn := o.reactionName()
	phase := o.phase

	pref := ""
	if o.loc == XAverage {
		pref = "X-averaged "
	}
	fetch := func(pos string) (L, aj sym.Expr, e error) {
		Pos := pos
		if o.loc != XAverage {
			Pos = capitalise(pos)
		}
		if L, e = pool.Get(name, pref+Pos+" "+rn+"thickness [m]"); e != nil {
			return
		}
		aj, e = pool.Get(name, pref+Pos+" "+rn+"volumetric interfacial current density [A.m-3]")
		return
	}
	lInner, ajInner, err := fetch("inner")
	if err != nil {
		return
	}
	lOuter, ajOuter, err := fetch("outer")
	if err != nil {
		return
	}

	// the spreading term pulls the film thickness on fresh crack surface
	// toward its reference value; on the initial surface it is identically
	// zero, not merely an expression evaluating to zero
	var spreadInner sym.Expr = num(0)
	var spreadOuter sym.Expr = num(0)
	if o.cracks {
		lCrKey := "Negative particle crack length [m]"
		dlCrKey := "Negative particle cracking rate [m.s-1]"
		if o.loc == XAverage {
			lCrKey = "X-averaged negative particle crack length [m]"
			dlCrKey = "X-averaged negative particle cracking rate [m.s-1]"
		}
		lCr, e := pool.Get(name, lCrKey)
		if e != nil {
			return e
		}
		dlCr, e := pool.Get(name, dlCrKey)
		if e != nil {
			return e
		}
		rate := sym.Div(dlCr, lCr)
		spreadInner = sym.Mul(rate, sym.Sub(phase.LInnerCrack0, lInner))
		spreadOuter = sym.Mul(rate, sym.Sub(phase.LOuterCrack0, lOuter))
	}

	Γ := sym.Div(phase.VBarInner, sym.Mul(num(prm.F), phase.ZSei))
	vBar := sym.Div(phase.VBarOuter, phase.VBarInner)

	if o.mech == EcReactionLimited {
		// only the outer layer grows; it absorbs both volume contributions
		o.eqs.Rhs[o.outerVar] = sym.Add(sym.Neg(sym.Mul(Γ, ajOuter)), spreadOuter)
		return
	}
	o.eqs.Rhs[o.innerVar] = sym.Add(sym.Neg(sym.Mul(Γ, ajInner)), spreadInner)
	o.eqs.Rhs[o.outerVar] = sym.Add(sym.Neg(sym.Mul(sym.Mul(vBar, Γ), ajOuter)), spreadOuter)
	return
}

// SetInitialConditions registers the initial film thicknesses. The ec
// mechanism merges both layers into the outer initial value.
func (o *Growth) SetInitialConditions(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageInitialSet); err != nil {
		return
	}
	phase := o.phase

	lInner0 := phase.LInner0
	lOuter0 := phase.LOuter0
	if o.cracks {
		lInner0 = phase.LInnerCrack0
		lOuter0 = phase.LOuterCrack0
	}
	if o.mech == EcReactionLimited {
		o.eqs.InitialConditions[o.outerVar] = sym.Add(lInner0, lOuter0)
		return
	}
	o.eqs.InitialConditions[o.innerVar] = lInner0
	o.eqs.InitialConditions[o.outerVar] = lOuter0
	return
}

// capitalise upper-cases the first letter of a name
func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package electrolyte implements Stefan-Maxwell electrolyte diffusion as a
// per-domain submodel. The concentration is a field on one cell domain;
// a whole-cell model adds one instance per porous domain and the aggregator
// merges their equations.
package electrolyte

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// Diffusion is the electrolyte diffusion submodel on one cell domain. With
// porosity the flux is corrected by the Bruggeman transport efficiency
// eps^b; without it the electrolyte fills the domain and the porosity
// factors drop out.
type Diffusion struct {

	// configuration
	params *prm.CellParams
	dom    *prm.DomainParams
	tag    sym.Domain
	porous bool

	// build state
	eqs   *mdl.Equations
	stage mdl.Stage

	// unknown
	ceVar *sym.Variable
}

// NewDiffusion allocates the electrolyte diffusion submodel for one domain
// ("negative", "separator" or "positive")
func NewDiffusion(params *prm.CellParams, domain string, withPorosity bool) (o *Diffusion, err error) {
	o = &Diffusion{params: params, porous: withPorosity, eqs: mdl.NewEquations()}
	switch domain {
	case "negative":
		o.dom = params.N
	case "separator":
		o.dom = params.S
	case "positive":
		o.dom = params.P
	default:
		return nil, chk.Err("domain %q is invalid; options are \"negative\", \"separator\" and \"positive\"", domain)
	}
	if domain != "separator" && params.Opts.ElectrodeType(domain) == "planar" {
		return nil, chk.Err("the %s electrode is planar and holds no electrolyte", domain)
	}
	o.tag = prm.DomainTag(domain)
	return
}

// Name returns the submodel name
func (o *Diffusion) Name() string {
	return o.dom.Name + " electrolyte diffusion"
}

// Equations returns the equation registry of this submodel
func (o *Diffusion) Equations() *mdl.Equations {
	return o.eqs
}

// prefix returns the key prefix of this domain ("Negative", "Separator",
// "Positive")
func (o *Diffusion) prefix() string {
	return strings.ToUpper(o.dom.Name[:1]) + o.dom.Name[1:]
}

// porosityKey returns the pool key of this domain's porosity
func (o *Diffusion) porosityKey() string {
	if o.dom.Name == "separator" {
		return "Separator porosity"
	}
	return o.prefix() + " electrode porosity"
}

// FundamentalVariables declares the concentration unknown and registers the
// concentration and porosity variables
func (o *Diffusion) FundamentalVariables(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageFundamental); err != nil {
		return
	}
	name := o.Name()
	pref := o.prefix()

	o.ceVar = sym.NewVariable(pref+" electrolyte concentration [mol.m-3]", o.tag, sym.Aux{Secondary: prm.CurrentCollector})
	o.ceVar.PrintName = "c_e_" + o.dom.Name[:1]

	if err = pool.Set(name, pref+" electrolyte concentration [mol.m-3]", o.ceVar); err != nil {
		return
	}
	if err = pool.Set(name, "X-averaged "+strings.ToLower(pref)+" electrolyte concentration [mol.m-3]", sym.XAverage(o.ceVar)); err != nil {
		return
	}
	if err = pool.Set(name, pref+" electrolyte concentration", sym.Div(o.ceVar, o.params.CETyp)); err != nil {
		return
	}
	if o.porous {
		err = pool.Set(name, o.porosityKey(), o.dom.EpsilonInit)
	}
	return
}

// CoupledVariables builds the diffusive flux N_e = -D_e(c_e,T) eps^b grad(c_e)
// and registers it with the transport efficiency
func (o *Diffusion) CoupledVariables(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageCoupled); err != nil {
		return
	}
	name := o.Name()
	pref := o.prefix()

	cE, err := pool.Get(name, pref+" electrolyte concentration [mol.m-3]")
	if err != nil {
		return
	}
	tKey := pref + " electrode temperature [K]"
	if o.dom.Name == "separator" {
		tKey = "Separator temperature [K]"
	}
	T, err := pool.Get(name, tKey)
	if err != nil {
		return
	}

	var tort sym.Expr = sym.NewScalar(1)
	if o.porous {
		eps, e := pool.Get(name, o.porosityKey())
		if e != nil {
			return e
		}
		tort = sym.Pow(eps, o.dom.BE)
	}
	nE := sym.Neg(sym.Mul(sym.Mul(o.params.DE(cE, T), tort), sym.Grad(cE)))

	if err = pool.Set(name, pref+" electrolyte transport efficiency", tort); err != nil {
		return
	}
	return pool.Set(name, pref+" electrolyte flux [mol.m-2.s-1]", nE)
}

// SetRhs registers the cation conservation equation. The migration source
// and the porosity-change sink enter only when an interfacial reaction is
// present in the pool; pure diffusion otherwise.
func (o *Diffusion) SetRhs(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageEquationsSet); err != nil {
		return
	}
	name := o.Name()
	pref := o.prefix()

	cE, err := pool.Get(name, pref+" electrolyte concentration [mol.m-3]")
	if err != nil {
		return
	}
	nE, err := pool.Get(name, pref+" electrolyte flux [mol.m-2.s-1]")
	if err != nil {
		return
	}

	var src sym.Expr = sym.NewScalar(0)
	if o.dom.Name != "separator" {
		ajKey := pref + " electrode volumetric interfacial current density [A.m-3]"
		if pool.Has(ajKey) {
			aj, e := pool.Get(name, ajKey)
			if e != nil {
				return e
			}
			src = sym.Div(sym.Mul(o.dom.SPlus, aj), sym.NewScalar(prm.F))
			// the porosity shrinks where the reaction deposits solid, which
			// concentrates the electrolyte: deps/dt = -beta_surf j
			depsDt := sym.Neg(sym.Div(sym.Mul(o.dom.BetaSurf, aj), sym.NewScalar(prm.F)))
			src = sym.Sub(src, sym.Mul(cE, depsDt))
		}
		if err = pool.Set(name, pref+" electrolyte source term [mol.m-3.s-1]", src); err != nil {
			return
		}
	}

	rhs := sym.Add(sym.Neg(sym.Divergence(nE)), src)
	if o.porous {
		rhs = sym.Div(rhs, o.dom.EpsilonInit)
	}
	o.eqs.Rhs[o.ceVar] = rhs

	// zero flux at the cell exterior; interior continuity between domains is
	// the discretiser's job
	switch o.dom.Name {
	case "negative":
		o.eqs.SetBoundary(o.ceVar, "left", sym.NewScalar(0))
	case "positive":
		o.eqs.SetBoundary(o.ceVar, "right", sym.NewScalar(0))
	}
	return
}

// SetInitialConditions registers the uniform initial concentration
func (o *Diffusion) SetInitialConditions(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageInitialSet); err != nil {
		return
	}
	o.eqs.InitialConditions[o.ceVar] = sym.PrimaryBroadcast(o.params.CEInit, o.tag)
	return
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sei implements solid-electrolyte-interphase growth submodels for
// the negative electrode: two coupled thickness equations driven by one of
// five kinetic mechanisms, with optional growth on particle cracks
package sei

import (
	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// Mechanism selects the rate-limiting kinetics of SEI growth. Exactly one
// mechanism is active per negative-electrode instance.
type Mechanism int

// available mechanisms
const (
	ReactionLimited Mechanism = iota
	ElectronMigrationLimited
	InterstitialDiffusionLimited
	SolventDiffusionLimited
	EcReactionLimited
)

// mechanisms maps option strings to mechanism kinds
var mechanisms = map[string]Mechanism{
	"reaction limited":               ReactionLimited,
	"electron-migration limited":     ElectronMigrationLimited,
	"interstitial-diffusion limited": InterstitialDiffusionLimited,
	"solvent-diffusion limited":      SolventDiffusionLimited,
	"ec reaction limited":            EcReactionLimited,
}

// MechanismNew parses the "SEI" option string
func MechanismNew(name string) (mech Mechanism, err error) {
	mech, ok := mechanisms[name]
	if !ok {
		return 0, chk.Err("option \"SEI\" = %q is invalid; options are \"reaction limited\", \"electron-migration limited\", \"interstitial-diffusion limited\", \"solvent-diffusion limited\" and \"ec reaction limited\"", name)
	}
	return
}

// String returns the option string of this mechanism
func (o Mechanism) String() string {
	for name, mech := range mechanisms {
		if mech == o {
			return name
		}
	}
	return "unknown"
}

// fluxArgs carries the coupled quantities every mechanism may draw on
type fluxArgs struct {
	phase    *prm.PhaseParams
	etaSEI   sym.Expr // SEI reaction overpotential
	fRT      sym.Expr // F/(R*T)
	phiSN    sym.Expr // electrode potential
	deltaPhi sym.Expr // surface potential difference
	lInner   sym.Expr // inner SEI thickness
	lOuter   sym.Expr // outer SEI thickness
	lSei     sym.Expr // total SEI thickness
}

// fluxResult is the common shape every mechanism constructor returns: the
// net reaction flux and, for the ec mechanism only, the solvent surface
// concentration
type fluxResult struct {
	jSei sym.Expr
	cEc  sym.Expr
}

// fluxAllocators holds one flux constructor per mechanism. MechanismNew and
// this registry together give the closed set of variants; an unregistered
// mechanism cannot be constructed.
var fluxAllocators = map[Mechanism]func(a *fluxArgs) *fluxResult{}

func init() {

	fluxAllocators[ReactionLimited] = func(a *fluxArgs) *fluxResult {
		cSei := a.phase.CSeiReaction
		arg := sym.Mul(sym.Mul(num(-0.5), a.fRT), a.etaSEI)
		return &fluxResult{jSei: sym.Neg(sym.Mul(sym.Div(num(1), cSei), sym.Exp(arg)))}
	}

	fluxAllocators[ElectronMigrationLimited] = func(a *fluxArgs) *fluxResult {
		uInner := a.phase.UInner
		cSei := a.phase.CSeiElectron
		return &fluxResult{jSei: sym.Div(sym.Sub(a.phiSN, uInner), sym.Mul(cSei, a.lInner))}
	}

	fluxAllocators[InterstitialDiffusionLimited] = func(a *fluxArgs) *fluxResult {
		cSei := a.phase.CSeiInter
		arg := sym.Mul(sym.Neg(a.fRT), a.deltaPhi)
		return &fluxResult{jSei: sym.Neg(sym.Div(sym.Exp(arg), sym.Mul(cSei, a.lInner)))}
	}

	fluxAllocators[SolventDiffusionLimited] = func(a *fluxArgs) *fluxResult {
		cSei := a.phase.CSeiSolvent
		return &fluxResult{jSei: sym.Neg(sym.Div(num(1), sym.Mul(cSei, a.lOuter)))}
	}

	fluxAllocators[EcReactionLimited] = func(a *fluxArgs) *fluxResult {
		cSeiEc := a.phase.CSeiEc
		cEc := a.phase.CEc

		// the concentration and flux form a linear system
		//   c_ec  = 1 + j_sei * L_sei * C_ec
		//   j_sei = - C_sei_ec * c_ec * exp()
		// which solves in closed form to
		//   j_sei = -K / (1 + L_sei * C_ec * K)
		//   c_ec  =  1 / (1 + L_sei * C_ec * K)
		// with K = C_sei_ec * exp()
		K := sym.Mul(cSeiEc, sym.Exp(sym.Mul(sym.Mul(num(-0.5), a.fRT), a.etaSEI)))
		denom := sym.Add(num(1), sym.Mul(sym.Mul(a.lSei, cEc), K))
		return &fluxResult{
			jSei: sym.Neg(sym.Div(K, denom)),
			cEc:  sym.Div(num(1), denom),
		}
	}
}

// num returns a literal scalar node
func num(v float64) sym.Expr { return sym.NewScalar(v) }

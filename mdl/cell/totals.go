// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// currentTotals sums the volumetric current densities of the interfacial
// reactions on the negative electrode into the electrode total read by the
// electrolyte submodels. It must be added after the reaction submodels so
// their currents are in the pool when its coupled stage runs.
type currentTotals struct {
	eqs   *mdl.Equations
	stage mdl.Stage
}

// reaction contributions, in registration order
var reactionCurrentKeys = []string{
	"SEI volumetric interfacial current density [A.m-3]",
	"SEI on cracks volumetric interfacial current density [A.m-3]",
}

func newCurrentTotals() *currentTotals {
	return &currentTotals{eqs: mdl.NewEquations()}
}

// Name returns the submodel name
func (o *currentTotals) Name() string {
	return "negative electrode current totals"
}

// Equations returns the (empty) equation registry
func (o *currentTotals) Equations() *mdl.Equations {
	return o.eqs
}

// FundamentalVariables declares nothing; totals own no unknowns
func (o *currentTotals) FundamentalVariables(pool *mdl.Pool) error {
	return o.stage.Advance(o.Name(), mdl.StageFundamental)
}

// CoupledVariables sums the reaction currents present in the pool. With no
// reaction submodels the electrode total stays unset and the electrolyte
// sees a source-free electrode.
func (o *currentTotals) CoupledVariables(pool *mdl.Pool) (err error) {
	if err = o.stage.Advance(o.Name(), mdl.StageCoupled); err != nil {
		return
	}
	name := o.Name()
	var contributions []sym.Expr
	for _, key := range reactionCurrentKeys {
		if !pool.Has(key) {
			continue
		}
		aj, e := pool.Get(name, key)
		if e != nil {
			return e
		}
		contributions = append(contributions, aj)
	}
	if len(contributions) == 0 {
		return
	}
	return pool.Set(name, "Negative electrode volumetric interfacial current density [A.m-3]", sym.Sum(contributions...))
}

// SetRhs registers no equations
func (o *currentTotals) SetRhs(pool *mdl.Pool) error {
	return o.stage.Advance(o.Name(), mdl.StageEquationsSet)
}

// SetInitialConditions registers no initial conditions
func (o *currentTotals) SetInitialConditions(pool *mdl.Pool) error {
	return o.stage.Advance(o.Name(), mdl.StageInitialSet)
}

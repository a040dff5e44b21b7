// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// Equations is the equation registry owned by each submodel and merged by
// the aggregator: the time-derivative of each unknown, its value at t=0, and
// per-boundary-label conditions. Boundary conditions may be keyed by a flux
// expression rather than an unknown, hence the wider key type.
type Equations struct {
	Rhs                map[*sym.Variable]sym.Expr
	InitialConditions  map[*sym.Variable]sym.Expr
	BoundaryConditions map[sym.Expr]map[string]sym.Expr
}

// NewEquations returns an empty equation registry
func NewEquations() *Equations {
	return &Equations{
		Rhs:                make(map[*sym.Variable]sym.Expr),
		InitialConditions:  make(map[*sym.Variable]sym.Expr),
		BoundaryConditions: make(map[sym.Expr]map[string]sym.Expr),
	}
}

// SetBoundary registers one boundary condition under the given label
func (o *Equations) SetBoundary(key sym.Expr, label string, e sym.Expr) {
	if o.BoundaryConditions[key] == nil {
		o.BoundaryConditions[key] = make(map[string]sym.Expr)
	}
	o.BoundaryConditions[key][label] = e
}

// Submodel declares unknowns and registers governing equations in up to four
// staged calls. The aggregator invokes the stages across all submodels in a
// globally consistent order: every submodel's fundamental variables are in
// the pool before any submodel computes coupled variables.
type Submodel interface {
	Name() string
	Equations() *Equations
	FundamentalVariables(pool *Pool) error
	CoupledVariables(pool *Pool) error
	SetRhs(pool *Pool) error
	SetInitialConditions(pool *Pool) error
}

// build stages, terminal once complete
const (
	StageConstructed = iota
	StageFundamental
	StageCoupled
	StageEquationsSet
	StageInitialSet
)

// Stage tracks the build state of one submodel instance
type Stage int

// Advance moves to the next build stage, failing when stages are invoked out
// of order
func (o *Stage) Advance(name string, next int) error {
	if int(*o)+1 != next {
		return chk.Err("submodel %q: build stage %d requested but submodel is at stage %d; stages must run in order", name, next, int(*o))
	}
	*o = Stage(next)
	return nil
}

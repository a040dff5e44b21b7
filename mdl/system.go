// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// System aggregates submodels into one whole-cell model. Build runs the four
// submodel stages in the globally consistent order and merges the equation
// registries, detecting unknowns governed by more than one submodel.
type System struct {
	Pool  *Pool
	Eqs   *Equations // merged registries, valid after Build
	model []Submodel
	built bool
}

// NewSystem returns an empty system
func NewSystem() *System {
	return &System{Pool: NewPool(), Eqs: NewEquations()}
}

// Add appends a submodel. The order of addition fixes the order submodels
// run within each stage.
func (o *System) Add(sm Submodel) {
	if o.built {
		chk.Panic("cannot add submodel %q after the system has been built", sm.Name())
	}
	o.model = append(o.model, sm)
}

// Provide seeds the pool with an externally built coupling input, e.g. a
// temperature field or an interfacial current density computed outside this
// system
func (o *System) Provide(owner, key string, e sym.Expr) error {
	if o.built {
		return chk.Err("cannot provide %q after the system has been built", key)
	}
	return o.Pool.Set(owner, key, e)
}

// Build runs all submodels' fundamental-variable stage, then all coupled
// variables, then all rhs, then all initial conditions, and merges the
// resulting registries. After a successful Build the system is immutable.
func (o *System) Build() (err error) {
	if o.built {
		return chk.Err("system has already been built")
	}
	for _, sm := range o.model {
		if err = sm.FundamentalVariables(o.Pool); err != nil {
			return
		}
	}
	for _, sm := range o.model {
		if err = sm.CoupledVariables(o.Pool); err != nil {
			return
		}
	}
	for _, sm := range o.model {
		if err = sm.SetRhs(o.Pool); err != nil {
			return
		}
	}
	for _, sm := range o.model {
		if err = sm.SetInitialConditions(o.Pool); err != nil {
			return
		}
	}
	for _, sm := range o.model {
		if err = o.merge(sm); err != nil {
			return
		}
	}
	o.built = true
	return
}

// merge folds one submodel's registry into the system registry
func (o *System) merge(sm Submodel) error {
	eqs := sm.Equations()
	for v, e := range eqs.Rhs {
		if _, ok := o.Eqs.Rhs[v]; ok {
			return chk.Err("submodel %q: variable %q already has a rhs from another submodel", sm.Name(), v.Name)
		}
		for prev := range o.Eqs.Rhs {
			if prev.Name == v.Name {
				return chk.Err("submodel %q: a distinct variable named %q already has a rhs from another submodel", sm.Name(), v.Name)
			}
		}
		o.Eqs.Rhs[v] = e
	}
	for v, e := range eqs.InitialConditions {
		if _, ok := o.Eqs.InitialConditions[v]; ok {
			return chk.Err("submodel %q: variable %q already has an initial condition from another submodel", sm.Name(), v.Name)
		}
		o.Eqs.InitialConditions[v] = e
	}
	for key, conds := range eqs.BoundaryConditions {
		if _, ok := o.Eqs.BoundaryConditions[key]; ok {
			return chk.Err("submodel %q: expression %q already has boundary conditions from another submodel", sm.Name(), key.String())
		}
		o.Eqs.BoundaryConditions[key] = conds
	}
	return nil
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import "github.com/PeterAndrewBriscoe/PyBaMM/sym"

// PhaseGeometry holds particle geometry for one phase of one electrode
type PhaseGeometry struct {
	RTyp sym.Expr // typical particle radius
	R    sym.Expr // particle radius as a function of through-cell position
}

// DomainGeometry holds macroscale geometry for one cell domain
type DomainGeometry struct {
	L   sym.Expr // domain thickness
	LCc sym.Expr // current collector thickness (electrodes only)
	BE  sym.Expr // Bruggeman coefficient (electrolyte)
	BS  sym.Expr // Bruggeman coefficient (electrode); electrodes only

	Prim *PhaseGeometry // primary phase particles; nil for separator
	Sec  *PhaseGeometry // secondary phase particles; nil unless two phases
}

// Geometry is the shared geometry provider. It is built first and borrowed
// (not owned) by every node of the parameter hierarchy.
type Geometry struct {

	// macroscale
	LX       sym.Expr // total distance between current collectors
	L        sym.Expr // total cell thickness
	LY       sym.Expr // electrode width
	LZ       sym.Expr // electrode height
	ACc      sym.Expr // current collector cross-sectional area
	ACooling sym.Expr // cell cooling surface area
	VCell    sym.Expr // cell volume
	RInner   sym.Expr // inner cell radius (cylindrical cells)
	ROuter   sym.Expr // outer cell radius (cylindrical cells)

	// per domain
	N *DomainGeometry
	S *DomainGeometry
	P *DomainGeometry
}

// newPhaseGeometry builds the particle geometry of one phase. pref is the
// phase prefix ("" for primary, "Secondary: " for secondary).
func newPhaseGeometry(pref, Domain string, x sym.Expr) *PhaseGeometry {
	name := pref + Domain + " particle radius [m]"
	return &PhaseGeometry{
		RTyp: sym.NewParameter(name),
		R:    sym.NewFunctionParameter(name, sym.In("Through-cell distance (x) [m]", x)),
	}
}

// NewGeometry builds the shared geometry provider
func NewGeometry(opts *Options) (o *Geometry) {
	o = new(Geometry)

	xn := sym.NewVariable("x_n", NegativeElectrode, sym.Aux{Secondary: CurrentCollector})
	xp := sym.NewVariable("x_p", PositiveElectrode, sym.Aux{Secondary: CurrentCollector})

	o.N = &DomainGeometry{
		L:    sym.NewParameter("Negative electrode thickness [m]"),
		LCc:  sym.NewParameter("Negative current collector thickness [m]"),
		BE:   sym.NewParameter("Negative electrode Bruggeman coefficient (electrolyte)"),
		BS:   sym.NewParameter("Negative electrode Bruggeman coefficient (electrode)"),
		Prim: newPhaseGeometry("", "Negative", xn),
	}
	o.S = &DomainGeometry{
		L:  sym.NewParameter("Separator thickness [m]"),
		BE: sym.NewParameter("Separator Bruggeman coefficient (electrolyte)"),
	}
	o.P = &DomainGeometry{
		L:    sym.NewParameter("Positive electrode thickness [m]"),
		LCc:  sym.NewParameter("Positive current collector thickness [m]"),
		BE:   sym.NewParameter("Positive electrode Bruggeman coefficient (electrolyte)"),
		BS:   sym.NewParameter("Positive electrode Bruggeman coefficient (electrode)"),
		Prim: newPhaseGeometry("", "Positive", xp),
	}
	if opts.ParticlePhases("negative") >= 2 {
		o.N.Sec = newPhaseGeometry("Secondary: ", "Negative", xn)
	}
	if opts.ParticlePhases("positive") >= 2 {
		o.P.Sec = newPhaseGeometry("Secondary: ", "Positive", xp)
	}

	o.LX = sym.Sum(o.N.L, o.S.L, o.P.L)
	o.L = sym.Sum(o.N.LCc, o.LX, o.P.LCc)
	o.LY = sym.NewParameter("Electrode width [m]")
	o.LZ = sym.NewParameter("Electrode height [m]")
	o.ACc = sym.Mul(o.LY, o.LZ)
	o.ACooling = sym.NewParameter("Cell cooling surface area [m2]")
	o.VCell = sym.NewParameter("Cell volume [m3]")
	o.RInner = sym.NewParameter("Inner cell radius [m]")
	o.ROuter = sym.NewParameter("Outer cell radius [m]")
	return
}

// Thermal is the shared thermal provider
type Thermal struct {
	TRef  sym.Expr // reference temperature
	TInit sym.Expr // initial temperature
	TAmb  sym.Expr // ambient temperature
}

// NewThermal builds the shared thermal provider
func NewThermal() *Thermal {
	return &Thermal{
		TRef:  sym.NewParameter("Reference temperature [K]"),
		TInit: sym.NewParameter("Initial temperature [K]"),
		TAmb:  sym.NewParameter("Ambient temperature [K]"),
	}
}

// Electrical is the shared electrical provider
type Electrical struct {
	Q                   sym.Expr // nominal cell capacity
	NElectrodesParallel sym.Expr // electrodes connected in parallel within a cell
	NCells              sym.Expr // cells connected in series within a battery
	VoltageLowCut       sym.Expr // lower voltage cut-off
	VoltageHighCut      sym.Expr // upper voltage cut-off
	CurrentWithTime     sym.Expr // applied current as a function of time
}

// NewElectrical builds the shared electrical provider
func NewElectrical() *Electrical {
	t := sym.NewVariable("t", "", sym.Aux{})
	return &Electrical{
		Q:                   sym.NewParameter("Nominal cell capacity [A.h]"),
		NElectrodesParallel: sym.NewParameter("Number of electrodes connected in parallel to make a cell"),
		NCells:              sym.NewParameter("Number of cells connected in series to make a battery"),
		VoltageLowCut:       sym.NewParameter("Lower voltage cut-off [V]"),
		VoltageHighCut:      sym.NewParameter("Upper voltage cut-off [V]"),
		CurrentWithTime:     sym.NewFunctionParameter("Current function [A]", sym.In("Time [s]", t)),
	}
}

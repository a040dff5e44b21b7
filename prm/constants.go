// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements the parameter hierarchy for lithium-ion cell models:
// shared geometry/thermal/electrical providers, per-domain parameters
// (negative electrode, separator, positive electrode) and per-phase particle
// parameters, with dimensional derived quantities computed strictly bottom-up
package prm

import "github.com/PeterAndrewBriscoe/PyBaMM/sym"

// physical constants
const (
	R      = 8.314462618     // universal gas constant [J/(mol·K)]
	F      = 96485.33212     // Faraday constant [C/mol]
	KBoltz = 1.380649e-23    // Boltzmann constant [J/K]
	QElec  = 1.602176634e-19 // elementary charge [C]
)

// spatial domain tags shared by all submodels
const (
	NegativeElectrode sym.Domain = "negative electrode"
	Separator         sym.Domain = "separator"
	PositiveElectrode sym.Domain = "positive electrode"
	CurrentCollector  sym.Domain = "current collector"
	NegativeParticle  sym.Domain = "negative particle"
	PositiveParticle  sym.Domain = "positive particle"
)

// DomainTag maps a domain name ("negative", "separator", "positive") to its
// spatial domain tag
func DomainTag(name string) sym.Domain {
	switch name {
	case "negative":
		return NegativeElectrode
	case "separator":
		return Separator
	case "positive":
		return PositiveElectrode
	}
	return ""
}

// num returns a literal scalar node
func num(v float64) sym.Expr { return sym.NewScalar(v) }

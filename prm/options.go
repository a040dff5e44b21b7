// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// Options holds the model-wide configuration threaded into every hierarchy
// node at construction. It is validated eagerly and never mutated after model
// assembly begins.
type Options struct {
	SEI               string `json:"sei"`               // SEI growth mechanism; e.g. "reaction limited"
	WorkingElectrode  string `json:"workingElectrode"`  // "both", "negative" or "positive"
	ParticleShape     string `json:"particleShape"`     // "spherical"
	NegParticlePhases int    `json:"negParticlePhases"` // number of particle phases in negative electrode: 0, 1 or 2
	PosParticlePhases int    `json:"posParticlePhases"` // number of particle phases in positive electrode: 0, 1 or 2
}

// DefaultOptions returns options for a standard single-phase full cell
func DefaultOptions() *Options {
	return &Options{
		SEI:               "reaction limited",
		WorkingElectrode:  "both",
		ParticleShape:     "spherical",
		NegParticlePhases: 1,
		PosParticlePhases: 1,
	}
}

// Validate checks all recognised option values, failing fast with the
// offending option and its allowed values. SEI mechanism strings are checked
// by the sei package which owns the mechanism registry.
func (o *Options) Validate() (err error) {
	switch o.WorkingElectrode {
	case "both", "negative", "positive":
	default:
		return chk.Err("option \"working electrode\" = %q is invalid; options are \"both\", \"negative\" and \"positive\"", o.WorkingElectrode)
	}
	if o.ParticleShape != "spherical" {
		return chk.Err("option \"particle shape\" = %q is invalid; the only option is \"spherical\"", o.ParticleShape)
	}
	if o.NegParticlePhases < 0 || o.NegParticlePhases > 2 {
		return chk.Err("option \"particle phases\" = %d for negative electrode is invalid; options are 0, 1 and 2", o.NegParticlePhases)
	}
	if o.PosParticlePhases < 0 || o.PosParticlePhases > 2 {
		return chk.Err("option \"particle phases\" = %d for positive electrode is invalid; options are 0, 1 and 2", o.PosParticlePhases)
	}
	return
}

// ElectrodeType returns "porous" or "planar" for the given electrode domain.
// In a half cell the counter electrode is a zero-thickness lithium-metal
// interface, hence "planar".
func (o *Options) ElectrodeType(domain string) string {
	switch o.WorkingElectrode {
	case "negative":
		if domain == "positive" {
			return "planar"
		}
	case "positive":
		if domain == "negative" {
			return "planar"
		}
	}
	return "porous"
}

// ParticlePhases returns the number of particle phases in the given electrode
func (o *Options) ParticlePhases(domain string) int {
	if domain == "negative" {
		return o.NegParticlePhases
	}
	return o.PosParticlePhases
}

// WholeCellDomains returns the whole-cell domain sequence in through-cell
// order, skipping planar (zero-thickness) electrodes
func (o *Options) WholeCellDomains() (doms []sym.Domain) {
	if o.ElectrodeType("negative") == "porous" {
		doms = append(doms, NegativeElectrode)
	}
	doms = append(doms, Separator)
	if o.ElectrodeType("positive") == "porous" {
		doms = append(doms, PositiveElectrode)
	}
	return
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import "github.com/cpmech/gosl/chk"

// tolerances is the process-wide tolerance table. It is initialised once and
// read-only after model assembly begins; the keys are fixed.
var tolerances = map[string]float64{
	"U__c_s":   1e-10, // stoichiometry clamp for open-circuit potential
	"D_e__c_e": 10,    // concentration floor for electrolyte diffusivity [mol.m-3]
	"chi__c_e": 10,    // concentration floor for the thermodynamic factor [mol.m-3]
}

// Tolerance returns a named tolerance from the process-wide table
func Tolerance(key string) float64 {
	tol, ok := tolerances[key]
	if !ok {
		chk.Panic("tolerance %q is not available in table", key)
	}
	return tol
}

// SetTolerance overrides a named tolerance. Call before any model assembly
// begins; the table must not change afterwards.
func SetTolerance(key string, tol float64) {
	if _, ok := tolerances[key]; !ok {
		chk.Panic("tolerance %q is not available in table", key)
	}
	tolerances[key] = tol
}

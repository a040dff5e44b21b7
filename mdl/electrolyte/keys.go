// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electrolyte

import (
	"strings"

	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// pool keys owned by this package, plus the coupling inputs it reads
func init() {

	doms := map[string]struct {
		pref string
		tag  sym.Domain
	}{
		"negative":  {"Negative", prm.NegativeElectrode},
		"separator": {"Separator", prm.Separator},
		"positive":  {"Positive", prm.PositiveElectrode},
	}
	for _, d := range doms {
		mdl.RegisterKey(d.pref+" electrolyte concentration [mol.m-3]", d.tag)
		mdl.RegisterKey(d.pref+" electrolyte concentration", d.tag)
		mdl.RegisterKey("X-averaged "+strings.ToLower(d.pref)+" electrolyte concentration [mol.m-3]", prm.CurrentCollector)
		mdl.RegisterKey(d.pref+" electrolyte flux [mol.m-2.s-1]", d.tag)
		mdl.RegisterKey(d.pref+" electrolyte transport efficiency", d.tag)
	}

	mdl.RegisterKey("Negative electrode porosity", prm.NegativeElectrode)
	mdl.RegisterKey("Separator porosity", prm.Separator)
	mdl.RegisterKey("Positive electrode porosity", prm.PositiveElectrode)

	// coupling inputs
	mdl.RegisterKey("Negative electrode temperature [K]", prm.NegativeElectrode)
	mdl.RegisterKey("Separator temperature [K]", prm.Separator)
	mdl.RegisterKey("Positive electrode temperature [K]", prm.PositiveElectrode)
	mdl.RegisterKey("Negative electrode volumetric interfacial current density [A.m-3]", prm.NegativeElectrode)
	mdl.RegisterKey("Positive electrode volumetric interfacial current density [A.m-3]", prm.PositiveElectrode)
	mdl.RegisterKey("Negative electrolyte source term [mol.m-3.s-1]", prm.NegativeElectrode)
	mdl.RegisterKey("Positive electrolyte source term [mol.m-3.s-1]", prm.PositiveElectrode)
}

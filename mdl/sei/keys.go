// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sei

import (
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
)

// reaction names of the plain and on-cracks variants; the trailing space is
// part of the key protocol ("Inner SEI thickness [m]")
const (
	reactionSEI    = "SEI "
	reactionCracks = "SEI on cracks "
)

// pool keys owned by this package, plus the external coupling inputs it
// reads. Downstream consumers match on the exact strings; registering them
// in the schema makes a rename fail at build time.
func init() {

	for _, rn := range []string{reactionSEI, reactionCracks} {
		for _, pos := range []string{"Inner ", "Outer ", "Total "} {
			mdl.RegisterKey(pos+rn+"thickness [m]", prm.NegativeElectrode, prm.CurrentCollector)
		}
		for _, pos := range []string{"inner ", "outer ", "total "} {
			mdl.RegisterKey("X-averaged "+pos+rn+"thickness [m]", prm.CurrentCollector)
		}
		for _, pos := range []string{"Inner ", "Outer ", ""} {
			mdl.RegisterKey(pos+rn+"interfacial current density [A.m-2]", prm.NegativeElectrode, prm.CurrentCollector)
			mdl.RegisterKey(pos+rn+"volumetric interfacial current density [A.m-3]", prm.NegativeElectrode, prm.CurrentCollector)
		}
		for _, pos := range []string{"inner ", "outer ", ""} {
			mdl.RegisterKey("X-averaged "+pos+rn+"interfacial current density [A.m-2]", prm.CurrentCollector)
			mdl.RegisterKey("X-averaged "+pos+rn+"volumetric interfacial current density [A.m-3]", prm.CurrentCollector)
		}
	}

	// solvent concentration (ec mechanism only)
	mdl.RegisterKey("EC surface concentration [mol.m-3]", prm.NegativeElectrode, prm.CurrentCollector)
	mdl.RegisterKey("X-averaged EC surface concentration [mol.m-3]", prm.CurrentCollector)
	mdl.RegisterKey("EC concentration on cracks [mol.m-3]", prm.NegativeElectrode, prm.CurrentCollector)
	mdl.RegisterKey("X-averaged EC concentration on cracks [mol.m-3]", prm.CurrentCollector)

	// external coupling inputs
	mdl.RegisterKey("Negative electrode temperature [K]", prm.NegativeElectrode)
	mdl.RegisterKey("Negative electrode potential [V]", prm.NegativeElectrode)
	mdl.RegisterKey("Negative electrode surface potential difference [V]", prm.NegativeElectrode)
	mdl.RegisterKey("Negative electrode interfacial current density [A.m-2]", prm.NegativeElectrode)
	mdl.RegisterKey("X-averaged negative electrode total interfacial current density [A.m-2]", prm.CurrentCollector)
	mdl.RegisterKey("Lithium metal interface electrode potential [V]", prm.CurrentCollector)
	mdl.RegisterKey("Lithium metal interface surface potential difference [V]", prm.CurrentCollector)
	mdl.RegisterKey("Lithium metal total interfacial current density [A.m-2]", prm.CurrentCollector)
	mdl.RegisterKey("Negative electrode surface area to volume ratio [m-1]", prm.NegativeElectrode)
	mdl.RegisterKey("Negative particle crack length [m]", prm.NegativeElectrode)
	mdl.RegisterKey("Negative particle cracking rate [m.s-1]", prm.NegativeElectrode)
	mdl.RegisterKey("X-averaged negative particle crack length [m]", prm.CurrentCollector)
	mdl.RegisterKey("X-averaged negative particle cracking rate [m.s-1]", prm.CurrentCollector)
}

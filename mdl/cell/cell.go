// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cell assembles whole-cell models from the individual submodels
package cell

import (
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl/electrolyte"
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl/sei"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// New assembles the submodels of one cell model: SEI growth on the negative
// electrode and electrolyte diffusion on every porous domain. The coupling
// fields other submodels would compute (temperature, potentials, interfacial
// current) are provided as free variables. The returned system is not yet
// built, so callers may add submodels or provide further inputs first.
func New(params *prm.CellParams) (sys *mdl.System, err error) {
	sys = mdl.NewSystem()

	planar := params.Opts.ElectrodeType("negative") == "planar"
	loc := "x-average"
	if planar {
		loc = "interface"
	}

	provide := func(key string, dom sym.Domain, aux sym.Aux) {
		if err != nil {
			return
		}
		err = sys.Provide("cell", key, sym.NewVariable(key, dom, aux))
	}
	onElectrode := sym.Aux{Secondary: prm.CurrentCollector}
	if planar {
		provide("Negative electrode temperature [K]", prm.NegativeElectrode, onElectrode)
		provide("Lithium metal interface surface potential difference [V]", prm.CurrentCollector, sym.Aux{})
		provide("Lithium metal interface electrode potential [V]", prm.CurrentCollector, sym.Aux{})
		provide("Lithium metal total interfacial current density [A.m-2]", prm.CurrentCollector, sym.Aux{})
	} else {
		provide("Negative electrode temperature [K]", prm.NegativeElectrode, onElectrode)
		provide("Negative electrode surface potential difference [V]", prm.NegativeElectrode, onElectrode)
		provide("Negative electrode potential [V]", prm.NegativeElectrode, onElectrode)
		provide("X-averaged negative electrode total interfacial current density [A.m-2]", prm.CurrentCollector, sym.Aux{})
	}
	provide("Separator temperature [K]", prm.Separator, onElectrode)
	provide("Positive electrode temperature [K]", prm.PositiveElectrode, onElectrode)
	if err != nil {
		return nil, err
	}

	growth, err := sei.NewGrowth(params, loc, false, "primary")
	if err != nil {
		return nil, err
	}
	sys.Add(growth)
	if !planar {
		sys.Add(newCurrentTotals())
	}

	for _, d := range []string{"negative", "separator", "positive"} {
		if d != "separator" && params.Opts.ElectrodeType(d) == "planar" {
			continue
		}
		diff, e := electrolyte.NewDiffusion(params, d, true)
		if e != nil {
			return nil, e
		}
		sys.Add(diff)
	}
	return
}

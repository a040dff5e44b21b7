// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: model options, the
// parameter-value database and the function database, read from a JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// FuncData holds one function definition; e.g. the current with time
type FuncData struct {
	Name string     `json:"name"` // name of function; e.g. "current with time"
	Type string     `json:"type"` // type of function; e.g. "cte", "rmp"
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name. An unknown function type panics in the
// function database.
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn = dbf.New(f.Type, f.Prms)
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// Input holds all input data of one parameter set: the model options, the
// scalar parameter values keyed by parameter name and the function database
type Input struct {
	Options   *prm.Options `json:"options"`   // model options
	Params    dbf.Params   `json:"params"`    // scalar parameter values
	Functions FuncsData    `json:"functions"` // all functions
}

// Read reads input data from a JSON file. A missing file panics. Absent
// options take their default values; present options are validated.
func Read(dir, fn string) (inp *Input, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	inp = &Input{Options: prm.DefaultOptions()}
	err = json.Unmarshal(b, inp)
	if err != nil {
		return nil, chk.Err("cannot unmarshal input file %q:\n%v", fn, err)
	}

	// check options
	err = inp.Options.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Bind returns a binding of the input values for expression evaluation. Each
// function becomes a leaf evaluator of its first argument.
func (o *Input) Bind() (b *sym.Bind, err error) {
	b = &sym.Bind{
		Params: o.Params,
		Funcs:  make(map[string]sym.Func),
		Vars:   make(map[string]float64),
	}
	for _, f := range o.Functions {
		fcn, e := o.Functions.Get(f.Name)
		if e != nil {
			return nil, e
		}
		b.Funcs[f.Name] = func(args ...float64) float64 {
			t := 0.0
			if len(args) > 0 {
				t = args[0]
			}
			return fcn.F(t, nil)
		}
	}
	return
}

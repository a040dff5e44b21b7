// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/inp"
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
	"github.com/PeterAndrewBriscoe/PyBaMM/mdl/cell"
	"github.com/PeterAndrewBriscoe/PyBaMM/prm"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/cell", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nPyBaMM -- symbolic battery model construction\n")
		io.Pf("Copyright 2026 The PyBaMM Go Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	dir, fn := filepath.Split(fnamepath)
	input, err := inp.Read(dir, fn)
	if err != nil {
		chk.Panic("cannot read input:\n%v", err)
	}

	// parameter hierarchy
	params, err := prm.New(input.Options)
	if err != nil {
		chk.Panic("cannot build parameters:\n%v", err)
	}

	// assemble and build model
	sys, err := cell.New(params)
	if err != nil {
		chk.Panic("cannot assemble model:\n%v", err)
	}
	err = sys.Build()
	if err != nil {
		chk.Panic("cannot build model:\n%v", err)
	}

	// report
	if verbose {
		report(sys)
	}
}

// report prints the model variables and equations
func report(sys *mdl.System) {
	vars := sys.Pool.Variables()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	io.Pf("\nmodel variables (%d):\n", len(keys))
	for _, k := range keys {
		io.Pf("  %-70s on %q\n", k, string(vars[k].Domain()))
	}

	io.Pf("\ngoverning equations (%d):\n", len(sys.Eqs.Rhs))
	for v, e := range sys.Eqs.Rhs {
		io.Pf("  d(%s)/dt = %s\n", v.PrintName, e.String())
	}

	io.Pf("\ninitial conditions (%d):\n", len(sys.Eqs.InitialConditions))
	for v, e := range sys.Eqs.InitialConditions {
		io.Pf("  %s(0) = %s\n", v.PrintName, e.String())
	}
}

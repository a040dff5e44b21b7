// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to test whole-cell model assembly
package tests

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/mdl"
)

func init() {
	io.Verbose = false
}

// Verbose enables test output
func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// GovernedNames returns the sorted names of all unknowns with a governing
// equation in the built system
func GovernedNames(sys *mdl.System) (names []string) {
	for v := range sys.Eqs.Rhs {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	return
}

// PoolKeys returns the sorted keys of all registered pool variables
func PoolKeys(sys *mdl.System) (keys []string) {
	for k := range sys.Pool.Variables() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

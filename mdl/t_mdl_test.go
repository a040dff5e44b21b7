// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

func init() {
	RegisterKey("test field [m]", "negative electrode", "current collector")
	RegisterKey("test source [A.m-2]", "negative electrode")
	RegisterKey("test fallback source [A.m-2]", "current collector")
}

func Test_schema01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("schema01. registration is idempotent, conflicts panic")

	RegisterKey("test field [m]", "negative electrode", "current collector")

	defer chk.RecoverTstPanicIsOK(tst)
	RegisterKey("test field [m]", "separator")
}

func Test_pool01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pool01. set and get are schema checked")

	pool := NewPool()
	v := sym.NewVariable("L", "negative electrode", sym.Aux{})
	if err := pool.Set("tester", "test field [m]", v); err != nil {
		tst.Errorf("set failed:\n%v", err)
		return
	}
	e, err := pool.Get("tester", "test field [m]")
	if err != nil {
		tst.Errorf("get failed:\n%v", err)
		return
	}
	if e != sym.Expr(v) {
		tst.Errorf("get must return the registered expression\n")
		return
	}

	// unknown keys are a programming error, not a model error
	err = pool.Set("tester", "test filed [m]", v)
	if err == nil {
		tst.Errorf("a misspelt key must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// domains outside the schema are rejected
	w := sym.NewVariable("w", "positive electrode", sym.Aux{})
	err = pool.Set("tester", "test field [m]", w)
	if err == nil {
		tst.Errorf("a disallowed domain must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_pool02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pool02. missing variables name the requester and the key")

	pool := NewPool()
	_, err := pool.Get("sei growth", "test field [m]")
	if err == nil {
		tst.Errorf("get of an absent variable must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "sei growth") || !strings.Contains(err.Error(), "test field [m]") {
		tst.Errorf("error must name the submodel and the key: %v\n", err)
	}
}

func Test_pool03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pool03. fallback chains")

	pool := NewPool()
	v := sym.NewVariable("j", "current collector", sym.Aux{})
	if err := pool.Set("tester", "test fallback source [A.m-2]", v); err != nil {
		tst.Errorf("set failed:\n%v", err)
		return
	}

	// the primary key is absent; using the fallback is not an error
	e, err := pool.GetFirst("tester", "test source [A.m-2]", "test fallback source [A.m-2]")
	if err != nil {
		tst.Errorf("fallback lookup failed:\n%v", err)
		return
	}
	if e != sym.Expr(v) {
		tst.Errorf("fallback lookup must return the fallback expression\n")
		return
	}

	// all absent: the error lists every key tried
	_, err = pool.GetFirst("tester", "test source [A.m-2]")
	if err == nil {
		tst.Errorf("lookup with no present key must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "test source [A.m-2]") {
		tst.Errorf("error must list the keys tried: %v\n", err)
	}
}

func Test_stage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stage01. stages run in order")

	var s Stage
	if err := s.Advance("tester", StageFundamental); err != nil {
		tst.Errorf("advance failed:\n%v", err)
		return
	}
	err := s.Advance("tester", StageEquationsSet)
	if err == nil {
		tst.Errorf("skipping a stage must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if err = s.Advance("tester", StageCoupled); err != nil {
		tst.Errorf("advance failed:\n%v", err)
	}
}

// onefield is a minimal submodel governing a single field, for aggregator
// tests
type onefield struct {
	name  string
	eqs   *Equations
	v     *sym.Variable
	vname string
}

func newOnefield(name, vname string) *onefield {
	return &onefield{name: name, eqs: NewEquations(), vname: vname}
}

func (o *onefield) Name() string          { return o.name }
func (o *onefield) Equations() *Equations { return o.eqs }

func (o *onefield) FundamentalVariables(pool *Pool) error {
	o.v = sym.NewVariable(o.vname, "negative electrode", sym.Aux{})
	return pool.Set(o.name, "test field [m]", o.v)
}

func (o *onefield) CoupledVariables(pool *Pool) error { return nil }

func (o *onefield) SetRhs(pool *Pool) error {
	o.eqs.Rhs[o.v] = sym.Neg(o.v)
	return nil
}

func (o *onefield) SetInitialConditions(pool *Pool) error {
	o.eqs.InitialConditions[o.v] = sym.NewScalar(1)
	return nil
}

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01. build and merge")

	sys := NewSystem()
	sys.Add(newOnefield("first", "L1"))
	if err := sys.Build(); err != nil {
		tst.Errorf("build failed:\n%v", err)
		return
	}
	chk.Ints(tst, "neqs", []int{len(sys.Eqs.Rhs), len(sys.Eqs.InitialConditions)}, []int{1, 1})

	if err := sys.Build(); err == nil {
		tst.Errorf("a second build must fail\n")
	}
}

func Test_system02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system02. two submodels governing one name collide")

	sys := NewSystem()
	sys.Add(newOnefield("first", "L"))
	sys.Add(newOnefield("second", "L"))
	err := sys.Build()
	if err == nil {
		tst.Errorf("duplicate governed variables must fail the merge\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

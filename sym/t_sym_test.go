// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. incompatible domains panic at build time")

	defer chk.RecoverTstPanicIsOK(tst)

	a := NewVariable("a", "negative electrode", Aux{})
	b := NewVariable("b", "positive electrode", Aux{})
	Add(a, b)
}

func Test_domain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain02. plain numbers combine with any domain")

	a := NewVariable("a", "negative electrode", Aux{Secondary: "current collector"})
	e := Mul(NewScalar(2), a)
	if e.Domain() != "negative electrode" {
		tst.Errorf("wrong domain: %q\n", e.Domain())
		return
	}
	if e.Aux().Secondary != "current collector" {
		tst.Errorf("wrong secondary domain: %q\n", e.Aux().Secondary)
	}
}

func Test_domain03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain03. broadcast and average round trip")

	v := NewVariable("v", "current collector", Aux{})
	b := PrimaryBroadcast(v, "negative electrode")
	if b.Domain() != "negative electrode" {
		tst.Errorf("wrong broadcast domain: %q\n", b.Domain())
		return
	}
	if b.Aux().Secondary != "current collector" {
		tst.Errorf("wrong broadcast secondary domain: %q\n", b.Aux().Secondary)
		return
	}

	// averaging a broadcast recovers the original node, not a new tree
	av := XAverage(b)
	if av != Expr(v) {
		tst.Errorf("x-average of broadcast did not simplify to the original variable\n")
	}
}

func Test_domain04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain04. averages collapse the primary domain")

	v := NewVariable("v", "negative electrode", Aux{Secondary: "current collector"})
	av := XAverage(v)
	if av.Domain() != "current collector" {
		tst.Errorf("wrong averaged domain: %q\n", av.Domain())
		return
	}
	if XYZAverage(v).Domain() != "" {
		tst.Errorf("xyz-average must drop all domains\n")
	}
}

func Test_zero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero01. structural zeros")

	v := NewVariable("v", "negative electrode", Aux{Secondary: "current collector"})
	z := ZeroLike(v)
	if !IsZero(z) {
		tst.Errorf("ZeroLike must produce a structural zero\n")
		return
	}
	if z.Domain() != v.Domain() || z.Aux() != v.Aux() {
		tst.Errorf("ZeroLike must keep the domains of its template\n")
		return
	}
	if !IsZero(XAverage(z)) {
		tst.Errorf("x-average of a structural zero must stay structural\n")
		return
	}
	if IsZero(Sub(v, v)) {
		tst.Errorf("an expression merely evaluating to zero is not structural\n")
	}
}

func Test_sum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sum01. empty sums are structural zeros")

	if !IsZero(Sum()) {
		tst.Errorf("the empty sum must be a structural zero\n")
		return
	}
	a := NewVariable("a", "negative electrode", Aux{})
	s := Sum(a)
	if s != Expr(a) {
		tst.Errorf("a one-term sum must be the term itself\n")
	}
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. evaluation against a binding")

	a := NewParameter("Ambient temperature [K]")
	v := NewVariable("v", "negative electrode", Aux{})
	e := Add(Mul(NewScalar(2), v), a)

	b := &Bind{
		Params: dbf.Params{&dbf.P{N: "Ambient temperature [K]", V: 298.15}},
		Vars:   map[string]float64{"v": 1.5},
	}
	res, err := Eval(e, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "2 v + T_amb", 1e-14, res, 301.15)
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. missing names fail with the key")

	p := NewParameter("Negative electrode thickness [m]")
	_, err := Eval(p, &Bind{})
	if err == nil {
		tst.Errorf("evaluation must fail without a value\n")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.String(tst, err.Error(), "missing parameter: \"Negative electrode thickness [m]\" has no value in database")
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. function parameters receive inputs in order")

	x := NewVariable("x", "negative electrode", Aux{})
	T := NewParameter("Initial temperature [K]")
	f := NewFunctionParameter("Electrolyte diffusivity [m2.s-1]",
		In("Electrolyte concentration [mol.m-3]", x),
		In("Temperature [K]", T),
	)
	if f.Domain() != "negative electrode" {
		tst.Errorf("function parameter must inherit the domain of its inputs\n")
		return
	}

	b := &Bind{
		Params: dbf.Params{&dbf.P{N: "Initial temperature [K]", V: 300}},
		Funcs: map[string]Func{
			"Electrolyte diffusivity [m2.s-1]": func(args ...float64) float64 {
				return args[0] * math.Sqrt(args[1])
			},
		},
		Vars: map[string]float64{"x": 2},
	}
	res, err := Eval(f, b)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Float64(tst, "D_e(c, T)", 1e-14, res, 2*math.Sqrt(300))
}

func Test_eval04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval04. spatial operators")

	v := NewVariable("v", "negative electrode", Aux{})
	b := &Bind{Vars: map[string]float64{"v": 7}}

	// uniform fields: averages, boundary values and broadcasts preserve
	for name, e := range map[string]Expr{
		"x-average":      XAverage(v),
		"xyz-average":    XYZAverage(v),
		"boundary value": BoundaryValue(v, "right"),
		"broadcast":      PrimaryBroadcast(XAverage(v), "negative electrode"),
	} {
		res, err := Eval(e, b)
		if err != nil {
			tst.Errorf("eval of %s failed:\n%v", name, err)
			return
		}
		chk.Float64(tst, name, 1e-15, res, 7)
	}

	// derivatives need a discretiser
	_, err := Eval(Divergence(Grad(v)), b)
	if err == nil {
		tst.Errorf("grad/div evaluation must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Func is a user-supplied functional form bound to a function parameter.
// Arguments arrive in the order the inputs were declared.
type Func func(args ...float64) float64

// Bind holds the late-binding data that turns a symbolic tree into numbers:
// a database of named scalar parameters, a table of named functional forms,
// and representative values for unknown fields. Trees are built without any
// of this; a name missing here only fails at evaluation time.
type Bind struct {
	Params dbf.Params
	Funcs  map[string]Func
	Vars   map[string]float64
}

// Eval evaluates an expression tree against a binding. Fields are treated as
// spatially uniform, so averages and broadcasts are value-preserving; trees
// containing grad or div cannot be evaluated here and belong to the
// discretiser.
func Eval(e Expr, b *Bind) (float64, error) {
	return e.eval(b)
}

func (o *Scalar) eval(b *Bind) (float64, error) {
	return o.V, nil
}

func (o *Variable) eval(b *Bind) (float64, error) {
	v, ok := b.Vars[o.Name]
	if !ok {
		return 0, chk.Err("no value given for variable %q", o.Name)
	}
	return v, nil
}

func (o *Parameter) eval(b *Bind) (float64, error) {
	p := b.Params.Find(o.Name)
	if p == nil {
		return 0, chk.Err("missing parameter: %q has no value in database", o.Name)
	}
	return p.V, nil
}

func (o *FunctionParameter) eval(b *Bind) (float64, error) {
	f, ok := b.Funcs[o.Name]
	if !ok {
		return 0, chk.Err("missing parameter: %q has no functional form in database", o.Name)
	}
	args := make([]float64, len(o.Inputs))
	for i, in := range o.Inputs {
		v, err := in.Arg.eval(b)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return f(args...), nil
}

func (o *binary) eval(b *Bind) (float64, error) {
	a, err := o.A.eval(b)
	if err != nil {
		return 0, err
	}
	c, err := o.B.eval(b)
	if err != nil {
		return 0, err
	}
	switch o.kind {
	case opAdd:
		return a + c, nil
	case opSub:
		return a - c, nil
	case opMul:
		return a * c, nil
	case opDiv:
		return a / c, nil
	case opPow:
		return math.Pow(a, c), nil
	case opMin:
		return math.Min(a, c), nil
	case opMax:
		return math.Max(a, c), nil
	}
	return 0, chk.Err("binary operator %d is invalid", o.kind)
}

func (o *unary) eval(b *Bind) (float64, error) {
	a, err := o.A.eval(b)
	if err != nil {
		return 0, err
	}
	switch o.kind {
	case opNeg:
		return -a, nil
	case opExp:
		return math.Exp(a), nil
	case opLog:
		return math.Log(a), nil
	case opSqrt:
		return math.Sqrt(a), nil
	}
	return 0, chk.Err("unary operator %d is invalid", o.kind)
}

func (o *spatial) eval(b *Bind) (float64, error) {
	switch o.kind {
	case spGrad, spDivergence:
		return 0, chk.Err("cannot evaluate %s(%s) without a discretiser", spNames[o.kind], o.A.String())
	}
	// averages, boundary values and broadcasts of uniform fields preserve
	// the child value
	return o.A.eval(b)
}

func (o *concat) eval(b *Bind) (float64, error) {
	if len(o.Children) == 1 {
		return o.Children[0].eval(b)
	}
	return 0, chk.Err("cannot evaluate a concatenation of %d fields without a mesh", len(o.Children))
}

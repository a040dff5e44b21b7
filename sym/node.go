// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements the symbolic expression-tree substrate for building
// battery models. Nodes are immutable, tagged with the spatial domain they
// live on (and auxiliary domains for nesting, e.g. particles inside an
// electrode inside a cell), and carry no numbers until a later binding stage
// resolves named parameters against a database.
package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain is a tag identifying the spatial region an expression lives on;
// e.g. "negative electrode", "separator", "current collector". The empty
// domain denotes a plain number which combines with any region.
type Domain string

// Aux holds auxiliary (secondary/tertiary) domains for nested fields;
// e.g. a particle field has Secondary = the electrode it sits in and
// Tertiary = "current collector"
type Aux struct {
	Secondary Domain
	Tertiary  Domain
}

// Expr is a node of a symbolic expression tree
type Expr interface {
	Domain() Domain           // primary spatial domain ("" for plain numbers)
	Aux() Aux                 // auxiliary (nesting) domains
	String() string           // human-readable rendering for diagnostics
	eval(b *Bind) (float64, error)
}

// Scalar is a literal constant. It normally carries no domain; ZeroLike
// produces domain-tagged zeros for structurally absent fields.
type Scalar struct {
	V   float64
	dom Domain
	aux Aux
}

// NewScalar returns a new literal constant
func NewScalar(v float64) *Scalar {
	return &Scalar{V: v}
}

// ZeroLike returns a structural zero carrying the domains of e.
// Use this to pin a field to zero while keeping it broadcast-compatible.
func ZeroLike(e Expr) *Scalar {
	return &Scalar{V: 0, dom: e.Domain(), aux: e.Aux()}
}

// IsZero tells whether e is a structural zero (a zero-valued Scalar),
// as opposed to an expression that merely evaluates to zero
func IsZero(e Expr) bool {
	s, ok := e.(*Scalar)
	return ok && s.V == 0
}

// Domain returns the domain of this node
func (o *Scalar) Domain() Domain { return o.dom }

// Aux returns the auxiliary domains of this node
func (o *Scalar) Aux() Aux { return o.aux }

// String returns a representation of this node
func (o *Scalar) String() string { return io.Sf("%g", o.V) }

// Variable is an unknown field over a declared spatial domain. Each unknown
// is created once by the submodel that owns it; equation registries reference
// the same instance.
type Variable struct {
	Name      string // unique display name; e.g. "Outer SEI thickness [m]"
	PrintName string // optional short name for diagnostics; e.g. "L_outer"
	dom       Domain
	aux       Aux
}

// NewVariable returns a new unknown field over the given domain
func NewVariable(name string, dom Domain, aux Aux) *Variable {
	return &Variable{Name: name, dom: dom, aux: aux}
}

// Domain returns the domain of this node
func (o *Variable) Domain() Domain { return o.dom }

// Aux returns the auxiliary domains of this node
func (o *Variable) Aux() Aux { return o.aux }

// String returns a representation of this node
func (o *Variable) String() string {
	if o.PrintName != "" {
		return o.PrintName
	}
	return o.Name
}

// Parameter is a named physical constant resolved to a literal number at the
// binding stage. Construction never fails; resolving a name with no value in
// the database fails at evaluation time with an error naming the key.
type Parameter struct {
	Name string
}

// NewParameter returns a new named scalar parameter
func NewParameter(name string) *Parameter {
	return &Parameter{Name: name}
}

// Domain returns the domain of this node
func (o *Parameter) Domain() Domain { return "" }

// Aux returns the auxiliary domains of this node
func (o *Parameter) Aux() Aux { return Aux{} }

// String returns a representation of this node
func (o *Parameter) String() string { return io.Sf("[%s]", o.Name) }

// Input is one named argument of a function parameter
type Input struct {
	Name string
	Arg  Expr
}

// In returns a named function-parameter input
func In(name string, arg Expr) Input {
	return Input{Name: name, Arg: arg}
}

// FunctionParameter is a named empirical function of named inputs, resolved
// to a user-supplied callable at the binding stage. Inputs are ordered; the
// bound callable receives the evaluated inputs in declaration order.
type FunctionParameter struct {
	Name   string
	Inputs []Input
	dom    Domain
	aux    Aux
}

// NewFunctionParameter returns a new named function parameter. The node
// inherits its domain from the inputs, which must live on compatible domains.
func NewFunctionParameter(name string, inputs ...Input) *FunctionParameter {
	o := &FunctionParameter{Name: name, Inputs: inputs}
	for _, in := range inputs {
		if in.Arg.Domain() == "" {
			continue
		}
		if o.dom == "" {
			o.dom = in.Arg.Domain()
			o.aux = in.Arg.Aux()
			continue
		}
		if o.dom != in.Arg.Domain() {
			chk.Panic("function parameter %q: input %q lives on %q which is incompatible with %q", name, in.Name, in.Arg.Domain(), o.dom)
		}
	}
	return o
}

// Domain returns the domain of this node
func (o *FunctionParameter) Domain() Domain { return o.dom }

// Aux returns the auxiliary domains of this node
func (o *FunctionParameter) Aux() Aux { return o.aux }

// String returns a representation of this node
func (o *FunctionParameter) String() string {
	l := io.Sf("[%s](", o.Name)
	for i, in := range o.Inputs {
		if i > 0 {
			l += ", "
		}
		l += in.Arg.String()
	}
	return l + ")"
}

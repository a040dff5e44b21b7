// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// arithmetic and transcendental operator kinds
const (
	opAdd = iota
	opSub
	opMul
	opDiv
	opPow
	opMin
	opMax
	opNeg
	opExp
	opLog
	opSqrt
)

var opSymbols = map[int]string{
	opAdd: "+", opSub: "-", opMul: "*", opDiv: "/", opPow: "^",
	opMin: "min", opMax: "max",
	opNeg: "-", opExp: "exp", opLog: "log", opSqrt: "sqrt",
}

// binary is a two-child arithmetic node
type binary struct {
	kind int
	A, B Expr
	dom  Domain
	aux  Aux
}

// unary is a one-child arithmetic node
type unary struct {
	kind int
	A    Expr
}

// mergeDomains combines the domains of two operands. Plain numbers combine
// with anything; fields must live on the same domain.
func mergeDomains(op string, a, b Expr) (Domain, Aux) {
	if a.Domain() == "" {
		return b.Domain(), b.Aux()
	}
	if b.Domain() == "" || b.Domain() == a.Domain() {
		return a.Domain(), a.Aux()
	}
	chk.Panic("cannot %s expressions on domains %q and %q; broadcast one operand first", op, a.Domain(), b.Domain())
	return "", Aux{}
}

func newBinary(kind int, a, b Expr) Expr {
	dom, aux := mergeDomains(opSymbols[kind], a, b)
	return &binary{kind: kind, A: a, B: b, dom: dom, aux: aux}
}

// Add returns a + b
func Add(a, b Expr) Expr { return newBinary(opAdd, a, b) }

// Sub returns a - b
func Sub(a, b Expr) Expr { return newBinary(opSub, a, b) }

// Mul returns a * b
func Mul(a, b Expr) Expr { return newBinary(opMul, a, b) }

// Div returns a / b
func Div(a, b Expr) Expr { return newBinary(opDiv, a, b) }

// Pow returns a raised to b
func Pow(a, b Expr) Expr { return newBinary(opPow, a, b) }

// Minimum returns the pointwise minimum of a and b
func Minimum(a, b Expr) Expr { return newBinary(opMin, a, b) }

// Maximum returns the pointwise maximum of a and b
func Maximum(a, b Expr) Expr { return newBinary(opMax, a, b) }

// Neg returns -a
func Neg(a Expr) Expr { return &unary{kind: opNeg, A: a} }

// Exp returns the exponential of a
func Exp(a Expr) Expr { return &unary{kind: opExp, A: a} }

// Log returns the natural logarithm of a
func Log(a Expr) Expr { return &unary{kind: opLog, A: a} }

// Sqrt returns the square root of a
func Sqrt(a Expr) Expr { return &unary{kind: opSqrt, A: a} }

// Sum folds terms with +. An empty list yields the zero scalar, so sums over
// present phases only need no special case for domains without phases.
func Sum(terms ...Expr) Expr {
	if len(terms) == 0 {
		return NewScalar(0)
	}
	res := terms[0]
	for _, t := range terms[1:] {
		res = Add(res, t)
	}
	return res
}

// Domain returns the domain of this node
func (o *binary) Domain() Domain { return o.dom }

// Aux returns the auxiliary domains of this node
func (o *binary) Aux() Aux { return o.aux }

// String returns a representation of this node
func (o *binary) String() string {
	switch o.kind {
	case opMin, opMax:
		return io.Sf("%s(%s, %s)", opSymbols[o.kind], o.A.String(), o.B.String())
	}
	return io.Sf("(%s %s %s)", o.A.String(), opSymbols[o.kind], o.B.String())
}

// Domain returns the domain of this node
func (o *unary) Domain() Domain { return o.A.Domain() }

// Aux returns the auxiliary domains of this node
func (o *unary) Aux() Aux { return o.A.Aux() }

// String returns a representation of this node
func (o *unary) String() string {
	if o.kind == opNeg {
		return io.Sf("(-%s)", o.A.String())
	}
	return io.Sf("%s(%s)", opSymbols[o.kind], o.A.String())
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/io"
)

// spatial operator kinds. These are primitives with known mathematical
// contracts; their numerical realisation belongs to the discretiser.
const (
	spGrad = iota
	spDivergence
	spXAverage
	spRAverage
	spXYZAverage
	spBoundaryValue
	spBroadcast
)

var spNames = map[int]string{
	spGrad: "grad", spDivergence: "div",
	spXAverage: "x-average", spRAverage: "r-average", spXYZAverage: "xyz-average",
	spBoundaryValue: "boundary-value", spBroadcast: "broadcast",
}

// spatial is a spatial-operator node
type spatial struct {
	kind int
	A    Expr
	side string // boundary label for boundary-value nodes; e.g. "left", "right"
	dom  Domain
	aux  Aux
}

// Grad returns the spatial gradient of a field on its own domain
func Grad(a Expr) Expr {
	return &spatial{kind: spGrad, A: a, dom: a.Domain(), aux: a.Aux()}
}

// Divergence returns the divergence of a flux field on its own domain
func Divergence(a Expr) Expr {
	return &spatial{kind: spDivergence, A: a, dom: a.Domain(), aux: a.Aux()}
}

// collapse drops the primary domain of a, promoting the auxiliary domains
func collapse(a Expr) (Domain, Aux) {
	return a.Aux().Secondary, Aux{Secondary: a.Aux().Tertiary}
}

// XAverage averages a field over the through-cell coordinate, yielding one
// value per electrode rather than per position. Averaging a broadcast simply
// recovers the broadcast child.
func XAverage(a Expr) Expr {
	if b, ok := a.(*spatial); ok && b.kind == spBroadcast {
		return b.A
	}
	if s, ok := a.(*Scalar); ok {
		dom, aux := collapse(a)
		return &Scalar{V: s.V, dom: dom, aux: aux}
	}
	dom, aux := collapse(a)
	return &spatial{kind: spXAverage, A: a, dom: dom, aux: aux}
}

// RAverage averages a particle field over the particle radius
func RAverage(a Expr) Expr {
	dom, aux := collapse(a)
	return &spatial{kind: spRAverage, A: a, dom: dom, aux: aux}
}

// XYZAverage averages a field over all macroscale coordinates, yielding a
// plain number
func XYZAverage(a Expr) Expr {
	return &spatial{kind: spXYZAverage, A: a}
}

// BoundaryValue extracts the value of a field at the boundary labelled side
// ("left" or "right" for 1-D domains). Taking the boundary value of a
// broadcast recovers the broadcast child.
func BoundaryValue(a Expr, side string) Expr {
	if b, ok := a.(*spatial); ok && b.kind == spBroadcast {
		return b.A
	}
	dom, aux := collapse(a)
	return &spatial{kind: spBoundaryValue, A: a, side: side, dom: dom, aux: aux}
}

// PrimaryBroadcast spreads a coarse field onto a finer domain so it can enter
// arithmetic with locally-resolved fields. The child domain becomes the
// secondary domain of the result.
func PrimaryBroadcast(a Expr, dom Domain) Expr {
	return &spatial{
		kind: spBroadcast, A: a, dom: dom,
		aux: Aux{Secondary: a.Domain(), Tertiary: a.Aux().Secondary},
	}
}

// Domain returns the domain of this node
func (o *spatial) Domain() Domain { return o.dom }

// Aux returns the auxiliary domains of this node
func (o *spatial) Aux() Aux { return o.aux }

// String returns a representation of this node
func (o *spatial) String() string {
	if o.kind == spBoundaryValue {
		return io.Sf("%s(%s, %q)", spNames[o.kind], o.A.String(), o.side)
	}
	return io.Sf("%s(%s)", spNames[o.kind], o.A.String())
}

// concat is an ordered concatenation of fields over adjacent domains
type concat struct {
	Children []Expr
}

// Concatenation joins fields over adjacent domains into one whole-cell field
func Concatenation(children ...Expr) Expr {
	return &concat{Children: children}
}

// Domain returns the domain of this node
func (o *concat) Domain() Domain { return "" }

// Aux returns the auxiliary domains of this node
func (o *concat) Aux() Aux { return Aux{} }

// String returns a representation of this node
func (o *concat) String() string {
	l := "concatenation("
	for i, c := range o.Children {
		if i > 0 {
			l += ", "
		}
		l += c.String()
	}
	return l + ")"
}

// Copyright 2026 The PyBaMM Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the submodel framework: the staged equation-builder
// contract, the schema-checked shared variable pool through which submodels
// couple, and the aggregator that merges submodel equation registries into
// one whole-cell system for the discretiser
package mdl

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/PeterAndrewBriscoe/PyBaMM/sym"
)

// schemaEntry describes one known physical-quantity key of the shared pool
type schemaEntry struct {
	key     string       // full key, unit bracket included
	domains []sym.Domain // allowed domains; empty means any
}

// schema is the registry of known pool keys. Keys are a wire protocol:
// downstream consumers match on the exact strings, so registering them here
// turns an accidental rename into a build-time failure instead of a silent
// merge-time miss.
var schema = map[string]*schemaEntry{}

// RegisterKey declares a known physical-quantity key and the domains an
// expression registered under it may live on. Packages declare the keys they
// own (and the external inputs they require) in init functions. Keys must
// carry a bracketed SI unit unless the quantity is dimensionless.
func RegisterKey(key string, domains ...sym.Domain) {
	if prev, ok := schema[key]; ok {
		if len(prev.domains) != len(domains) {
			chk.Panic("pool key %q is already registered with different domains", key)
		}
		for i, d := range domains {
			if prev.domains[i] != d {
				chk.Panic("pool key %q is already registered with different domains", key)
			}
		}
		return
	}
	schema[key] = &schemaEntry{key: key, domains: domains}
}

// domainAllowed tells whether dom is acceptable for entry
func (o *schemaEntry) domainAllowed(dom sym.Domain) bool {
	if len(o.domains) == 0 || dom == "" {
		return true
	}
	for _, d := range o.domains {
		if d == dom {
			return true
		}
	}
	return false
}

// Pool is the shared variable pool: named expressions registered by
// submodels for coupling and diagnostics. Registration and lookup are both
// checked against the key schema.
type Pool struct {
	vars map[string]sym.Expr
}

// NewPool returns an empty shared variable pool
func NewPool() *Pool {
	return &Pool{vars: make(map[string]sym.Expr)}
}

// Set registers an expression under a known key. owner is the submodel name
// used in error messages.
func (o *Pool) Set(owner, key string, e sym.Expr) error {
	entry, ok := schema[key]
	if !ok {
		return chk.Err("submodel %q: pool key %q is not in the key schema; register it with RegisterKey", owner, key)
	}
	if !entry.domainAllowed(e.Domain()) {
		return chk.Err("submodel %q: pool key %q does not admit domain %q", owner, key, e.Domain())
	}
	o.vars[key] = e
	return nil
}

// Get returns the expression registered under key. Failure names the missing
// key and the requesting submodel.
func (o *Pool) Get(owner, key string) (sym.Expr, error) {
	if _, ok := schema[key]; !ok {
		return nil, chk.Err("submodel %q: pool key %q is not in the key schema", owner, key)
	}
	e, ok := o.vars[key]
	if !ok {
		return nil, chk.Err("submodel %q: variable %q is missing from the shared pool", owner, key)
	}
	return e, nil
}

// GetFirst returns the expression under the first key present in the pool,
// trying keys in priority order. Using a fallback key is not an error; only
// when every key is absent does GetFirst fail, naming all keys tried.
func (o *Pool) GetFirst(owner string, keys ...string) (sym.Expr, error) {
	for _, key := range keys {
		if _, ok := schema[key]; !ok {
			return nil, chk.Err("submodel %q: pool key %q is not in the key schema", owner, key)
		}
		if e, ok := o.vars[key]; ok {
			return e, nil
		}
	}
	return nil, chk.Err("submodel %q: none of the variables [%s] are in the shared pool", owner, strings.Join(keys, ", "))
}

// Has tells whether key is registered in the pool
func (o *Pool) Has(key string) bool {
	_, ok := o.vars[key]
	return ok
}

// Variables returns the underlying name-to-expression mapping
func (o *Pool) Variables() map[string]sym.Expr {
	return o.vars
}

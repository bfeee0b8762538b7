// Copyright (c) 2026 The Yatima Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package defs builds and holds the definition environment the
// evaluator resolves Ref nodes against: a read-only mapping from names
// (and from the content addresses on a Ref) to fully-reconstructed
// definitions.
package defs

import (
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

// Definition is a name bound to its reconstructed term and type.
type Definition struct {
	Name term.Name
	Docs string
	Term term.Term
	Type term.Term
}

// Defs is an immutable, read-only environment: once built by a Loader it
// is shared by every normalization that consults it.
type Defs struct {
	byName  map[term.Name]Definition
	byCID   map[cid.CID]Definition
}

// New builds an empty Defs.
func New() *Defs {
	return &Defs{byName: map[term.Name]Definition{}, byCID: map[cid.CID]Definition{}}
}

// Names returns every locally-bound name in d, in no particular order.
func (d *Defs) Names() []term.Name {
	ns := make([]term.Name, 0, len(d.byName))
	for n := range d.byName {
		ns = append(ns, n)
	}
	return ns
}

// ByName resolves a definition by its exposed name (after alias
// qualification).
func (d *Defs) ByName(name term.Name) (Definition, bool) {
	def, ok := d.byName[name]
	return def, ok
}

// ByDefCID resolves a definition by the content address a Ref node
// carries.
func (d *Defs) ByDefCID(c cid.CID) (Definition, bool) {
	def, ok := d.byCID[c]
	return def, ok
}

// Resolve is the lookup the evaluator performs for a Ref(name, def_cid,
// ast_cid) node: prefer the content address, since it is stable under
// renaming; fall back to name. Returns errs.UnresolvedRef when neither
// resolves.
func (d *Defs) Resolve(ref *term.Ref) (Definition, error) {
	if !ref.DefCID.Empty() {
		if def, ok := d.byCID[ref.DefCID]; ok {
			return def, nil
		}
	}
	if def, ok := d.byName[ref.Name]; ok {
		return def, nil
	}
	return Definition{}, errs.New(errs.UnresolvedRef, "unresolved reference %q (cid %s)", ref.Name, ref.DefCID)
}

// bind adds a definition, exposed under the given local name, failing
// with errs.DuplicateName if that name is already bound within the same
// package load (the within-package collision rule, spec.md §4.5). defCID
// is the Entry's own content address; the zero CID is valid as a
// fallback key when no such address is known (e.g. synthetic defs in
// tests).
func (d *Defs) bind(localName term.Name, def Definition, defCID cid.CID) error {
	if _, exists := d.byName[localName]; exists {
		return errs.New(errs.DuplicateName, "duplicate definition name %q", localName)
	}
	d.byName[localName] = def
	if !defCID.Empty() {
		d.byCID[defCID] = def
	}
	return nil
}

// shadow rebinds localName to def unconditionally, used for
// cross-package import collisions which shadow rather than error (the
// caller logs a warning before calling this).
func (d *Defs) shadow(localName term.Name, def Definition, defCID cid.CID) {
	d.byName[localName] = def
	if !defCID.Empty() {
		d.byCID[defCID] = def
	}
}

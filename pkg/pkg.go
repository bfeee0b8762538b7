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

// Package pkg implements the on-disk definition wrapper types: Entry,
// Index, Import, Package, and the import-alias naming rule that ties a
// Package's imports to the names its Defs exposes.
package pkg

import (
	"github.com/yatima-lang/yatima/anon"
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

// Entry is a definition split into type and term, each anonymized and
// hashed; metadata is retained verbatim alongside.
type Entry struct {
	Pos      term.Position
	TypeAnon cid.CID
	TermAnon cid.CID
	TypeMeta anon.Meta
	TermMeta anon.Meta
}

// IndexEntry is one (name, entry_cid) pair of an Index.
type IndexEntry struct {
	Name     term.Name
	EntryCID cid.CID
}

// Index is an ordered list of name/entry-cid pairs; names must be unique
// within an index.
type Index struct {
	Entries []IndexEntry
}

// Keys returns the names in m, in order.
func (m Index) Keys() []term.Name {
	ks := make([]term.Name, len(m.Entries))
	for i, e := range m.Entries {
		ks[i] = e.Name
	}
	return ks
}

// Lookup finds the entry CID bound to name, if any.
func (m Index) Lookup(name term.Name) (cid.CID, bool) {
	for _, e := range m.Entries {
		if e.Name == name {
			return e.EntryCID, true
		}
	}
	return cid.CID{}, false
}

// validateUnique returns errs.DuplicateName if any name in m appears
// more than once.
func (m Index) validateUnique() error {
	seen := make(map[term.Name]bool, len(m.Entries))
	for _, e := range m.Entries {
		if seen[e.Name] {
			return errs.New(errs.DuplicateName, "index: duplicate name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Import names a package dependency: package_cid is the imported
// package, name qualifies its exported members (name.n), with lists
// members exposed bare instead, and alias, when set, qualifies those
// with-listed members (alias.n) in place of the bare name. Each member is
// exposed under exactly one local name (see ImportAlias); no member is
// exposed both qualified and bare.
type Import struct {
	PackageCID cid.CID
	Name       term.Name
	Alias      term.Name
	With       []term.Name
}

func containsName(xs []term.Name, n term.Name) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}

// ImportAlias computes the locally-bound name that name is exposed as
// through imp: if name is in imp.With, it is exposed bare (possibly
// alias-qualified when imp.Alias is set); otherwise it is always
// qualified by imp.Name.
func ImportAlias(name term.Name, imp Import) term.Name {
	if containsName(imp.With, name) {
		if imp.Alias == "" {
			return name
		}
		return term.Name(string(imp.Alias) + "." + string(name))
	}
	return term.Name(string(imp.Name) + "." + string(name))
}

// Package is a named bundle of imports and an index of definitions.
type Package struct {
	Pos     term.Position
	Name    term.Name
	Imports []Import
	Index   Index
}

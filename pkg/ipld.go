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

package pkg

import (
	"github.com/yatima-lang/yatima/anon"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/ipldv"
	"github.com/yatima-lang/yatima/term"
)

// ToIPLD projects e to [pos, link(type_anon), link(term_anon), type_meta,
// term_meta].
func (e Entry) ToIPLD() ipldv.Node {
	return ipldv.List(
		e.Pos.ToIPLD(),
		ipldv.Link(e.TypeAnon),
		ipldv.Link(e.TermAnon),
		e.TypeMeta.ToIPLD(),
		e.TermMeta.ToIPLD(),
	)
}

// EntryFromIPLD parses the shape Entry.ToIPLD produces.
func EntryFromIPLD(n ipldv.Node) (Entry, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 5 {
		return Entry{}, errs.New(errs.InvalidShape, "entry: expected a 5-element list")
	}
	pos, err := term.PositionFromIPLD(xs[0])
	if err != nil {
		return Entry{}, err
	}
	typeAnon, ok := xs[1].AsLink()
	if !ok {
		return Entry{}, errs.New(errs.InvalidShape, "entry: type_anon is not a link")
	}
	termAnon, ok := xs[2].AsLink()
	if !ok {
		return Entry{}, errs.New(errs.InvalidShape, "entry: term_anon is not a link")
	}
	typeMeta, err := anon.MetaFromIPLD(xs[3])
	if err != nil {
		return Entry{}, err
	}
	termMeta, err := anon.MetaFromIPLD(xs[4])
	if err != nil {
		return Entry{}, err
	}
	return Entry{Pos: pos, TypeAnon: typeAnon, TermAnon: termAnon, TypeMeta: typeMeta, TermMeta: termMeta}, nil
}

// ToIPLD projects m to [[name, link(entry)] ...].
func (m Index) ToIPLD() ipldv.Node {
	xs := make([]ipldv.Node, len(m.Entries))
	for i, e := range m.Entries {
		xs[i] = ipldv.List(ipldv.String(string(e.Name)), ipldv.Link(e.EntryCID))
	}
	return ipldv.List(xs...)
}

// IndexFromIPLD parses the shape Index.ToIPLD produces, rejecting
// duplicate names with errs.DuplicateName.
func IndexFromIPLD(n ipldv.Node) (Index, error) {
	xs, ok := n.AsList()
	if !ok {
		return Index{}, errs.New(errs.InvalidShape, "index: expected a list")
	}
	entries := make([]IndexEntry, len(xs))
	for i, x := range xs {
		pair, ok := x.AsList()
		if !ok || len(pair) != 2 {
			return Index{}, errs.New(errs.InvalidShape, "index: entry %d is not a 2-element list", i)
		}
		name, ok := pair[0].AsString()
		if !ok {
			return Index{}, errs.New(errs.InvalidShape, "index: entry %d name is not a string", i)
		}
		c, ok := pair[1].AsLink()
		if !ok {
			return Index{}, errs.New(errs.InvalidShape, "index: entry %d cid is not a link", i)
		}
		entries[i] = IndexEntry{Name: term.Name(name), EntryCID: c}
	}
	idx := Index{Entries: entries}
	if err := idx.validateUnique(); err != nil {
		return Index{}, err
	}
	return idx, nil
}

// ToIPLD projects i to [link(pkg), name, alias, [with...]].
func (i Import) ToIPLD() ipldv.Node {
	with := make([]ipldv.Node, len(i.With))
	for j, w := range i.With {
		with[j] = ipldv.String(string(w))
	}
	return ipldv.List(
		ipldv.Link(i.PackageCID),
		ipldv.String(string(i.Name)),
		ipldv.String(string(i.Alias)),
		ipldv.List(with...),
	)
}

// ImportFromIPLD parses the shape Import.ToIPLD produces.
func ImportFromIPLD(n ipldv.Node) (Import, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 4 {
		return Import{}, errs.New(errs.InvalidShape, "import: expected a 4-element list")
	}
	c, ok := xs[0].AsLink()
	if !ok {
		return Import{}, errs.New(errs.InvalidShape, "import: package cid is not a link")
	}
	name, ok := xs[1].AsString()
	if !ok {
		return Import{}, errs.New(errs.InvalidShape, "import: name is not a string")
	}
	alias, ok := xs[2].AsString()
	if !ok {
		return Import{}, errs.New(errs.InvalidShape, "import: alias is not a string")
	}
	withNodes, ok := xs[3].AsList()
	if !ok {
		return Import{}, errs.New(errs.InvalidShape, "import: with is not a list")
	}
	with := make([]term.Name, len(withNodes))
	for i, w := range withNodes {
		s, ok := w.AsString()
		if !ok {
			return Import{}, errs.New(errs.InvalidShape, "import: with[%d] is not a string", i)
		}
		with[i] = term.Name(s)
	}
	return Import{PackageCID: c, Name: term.Name(name), Alias: term.Name(alias), With: with}, nil
}

// ToIPLD projects p to [pos, name, [imports...], index].
func (p Package) ToIPLD() ipldv.Node {
	imports := make([]ipldv.Node, len(p.Imports))
	for i, im := range p.Imports {
		imports[i] = im.ToIPLD()
	}
	return ipldv.List(p.Pos.ToIPLD(), ipldv.String(string(p.Name)), ipldv.List(imports...), p.Index.ToIPLD())
}

// PackageFromIPLD parses the shape Package.ToIPLD produces.
func PackageFromIPLD(n ipldv.Node) (Package, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 4 {
		return Package{}, errs.New(errs.InvalidShape, "package: expected a 4-element list")
	}
	pos, err := term.PositionFromIPLD(xs[0])
	if err != nil {
		return Package{}, err
	}
	name, ok := xs[1].AsString()
	if !ok {
		return Package{}, errs.New(errs.InvalidShape, "package: name is not a string")
	}
	importNodes, ok := xs[2].AsList()
	if !ok {
		return Package{}, errs.New(errs.InvalidShape, "package: imports is not a list")
	}
	imports := make([]Import, len(importNodes))
	for i, in := range importNodes {
		im, err := ImportFromIPLD(in)
		if err != nil {
			return Package{}, err
		}
		imports[i] = im
	}
	index, err := IndexFromIPLD(xs[3])
	if err != nil {
		return Package{}, err
	}
	return Package{Pos: pos, Name: term.Name(name), Imports: imports, Index: index}, nil
}

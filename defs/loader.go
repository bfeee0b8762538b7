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

package defs

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/yatima-lang/yatima/anon"
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/encoding"
	"github.com/yatima-lang/yatima/pkg"
	"github.com/yatima-lang/yatima/term"
)

// Loader walks a Package's entries and imports, transitively fetching
// from a Store and merging everything into one Defs. It accumulates
// state from a walk the same way a REPL environment grows one statement
// at a time, except each "statement" here is a decoded package entry or
// a recursively-loaded import.
type Loader struct {
	store  Store
	logger hclog.Logger
}

// NewLoader builds a Loader. A nil logger is replaced with a discarding
// one.
func NewLoader(store Store, logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{store: store, logger: logger}
}

// Load fetches the package at pkgCID and every entry and import it
// transitively needs, and returns the merged, read-only Defs.
func (l *Loader) Load(ctx context.Context, pkgCID cid.CID) (*Defs, error) {
	raw, err := l.store.Get(ctx, pkgCID)
	if err != nil {
		return nil, fmt.Errorf("defs: fetching package %s: %w", pkgCID, err)
	}
	node, err := encoding.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("defs: decoding package %s: %w", pkgCID, err)
	}
	p, err := pkg.PackageFromIPLD(node)
	if err != nil {
		return nil, err
	}
	return l.loadPackage(ctx, p)
}

func (l *Loader) loadPackage(ctx context.Context, p pkg.Package) (*Defs, error) {
	l.logger.Trace("loading package", "name", p.Name)
	result := New()

	for _, ie := range p.Index.Entries {
		def, defCID, err := l.loadEntry(ctx, ie.EntryCID)
		if err != nil {
			return nil, fmt.Errorf("defs: package %q entry %q: %w", p.Name, ie.Name, err)
		}
		def.Name = ie.Name
		if err := result.bind(ie.Name, def, defCID); err != nil {
			return nil, err
		}
	}

	for _, imp := range p.Imports {
		imported, err := l.Load(ctx, imp.PackageCID)
		if err != nil {
			return nil, fmt.Errorf("defs: package %q import %q: %w", p.Name, imp.Name, err)
		}
		for _, n := range imported.Names() {
			def, _ := imported.ByName(n)
			local := pkg.ImportAlias(n, imp)
			if _, exists := result.byName[local]; exists {
				l.logger.Warn("import shadows existing binding", "name", local, "package", imp.Name)
			}
			result.shadow(local, def, cid.CID{})
		}
	}

	return result, nil
}

func (l *Loader) loadEntry(ctx context.Context, entryCID cid.CID) (Definition, cid.CID, error) {
	raw, err := l.store.Get(ctx, entryCID)
	if err != nil {
		return Definition{}, cid.CID{}, fmt.Errorf("fetching entry %s: %w", entryCID, err)
	}
	node, err := encoding.Decode(raw)
	if err != nil {
		return Definition{}, cid.CID{}, fmt.Errorf("decoding entry %s: %w", entryCID, err)
	}
	e, err := pkg.EntryFromIPLD(node)
	if err != nil {
		return Definition{}, cid.CID{}, err
	}

	typeTerm, err := l.mergeAnon(ctx, e.TypeAnon, e.TypeMeta)
	if err != nil {
		return Definition{}, cid.CID{}, fmt.Errorf("type: %w", err)
	}
	termTerm, err := l.mergeAnon(ctx, e.TermAnon, e.TermMeta)
	if err != nil {
		return Definition{}, cid.CID{}, fmt.Errorf("term: %w", err)
	}

	return Definition{Term: termTerm, Type: typeTerm}, entryCID, nil
}

func (l *Loader) mergeAnon(ctx context.Context, c cid.CID, m anon.Meta) (term.Term, error) {
	raw, err := l.store.Get(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("fetching anon %s: %w", c, err)
	}
	node, err := encoding.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding anon %s: %w", c, err)
	}
	a, err := anon.FromIPLD(node)
	if err != nil {
		return nil, err
	}
	return anon.Merge(a, m)
}

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
	"testing"

	"github.com/yatima-lang/yatima/anon"
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/encoding"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/pkg"
	"github.com/yatima-lang/yatima/term"
)

// memStore is an in-memory Store keyed by CID, used only by tests.
type memStore struct {
	blocks map[cid.CID][]byte
}

func newMemStore() *memStore { return &memStore{blocks: map[cid.CID][]byte{}} }

func (s *memStore) Get(_ context.Context, c cid.CID) ([]byte, error) {
	b, ok := s.blocks[c]
	if !ok {
		return nil, errNotFound(c)
	}
	return b, nil
}

type errNotFound cid.CID

func (e errNotFound) Error() string { return "block not found: " + cid.CID(e).String() }

func storeValue(t *testing.T, s *memStore, encode func() ([]byte, error)) cid.CID {
	t.Helper()
	b, err := encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	c := cid.Derive(b)
	s.blocks[c] = b
	return c
}

func TestLoaderLoadsSinglePackage(t *testing.T) {
	store := newMemStore()

	// def id : #Nat -> #Nat = λ x => x
	idType := term.NewAll(term.NoPos, term.UsesMany, "_",
		term.NewLTy(term.NoPos, literal.PrimType{Tag: literal.TagNat}),
		term.NewLTy(term.NoPos, literal.PrimType{Tag: literal.TagNat}))
	idTerm := term.NewLam(term.NoPos, "x", term.NewVar(term.NoPos, "x", 0))

	typeAnon, typeMeta := anon.Split(idType)
	termAnon, termMeta := anon.Split(idTerm)

	typeAnonCID := storeValue(t, store, func() ([]byte, error) { return encoding.Encode(anon.ToIPLD(typeAnon)) })
	termAnonCID := storeValue(t, store, func() ([]byte, error) { return encoding.Encode(anon.ToIPLD(termAnon)) })

	entry := pkg.Entry{
		Pos:      term.NoPos,
		TypeAnon: typeAnonCID,
		TermAnon: termAnonCID,
		TypeMeta: typeMeta,
		TermMeta: termMeta,
	}
	entryCID := storeValue(t, store, func() ([]byte, error) { return encoding.Encode(entry.ToIPLD()) })

	p := pkg.Package{
		Pos:  term.NoPos,
		Name: "Example",
		Index: pkg.Index{Entries: []pkg.IndexEntry{
			{Name: "id", EntryCID: entryCID},
		}},
	}
	pkgCID := storeValue(t, store, func() ([]byte, error) { return encoding.Encode(p.ToIPLD()) })

	loader := NewLoader(store, nil)
	d, err := loader.Load(context.Background(), pkgCID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, ok := d.ByName("id")
	if !ok {
		t.Fatal("expected \"id\" to be bound")
	}
	if _, ok := def.Term.(*term.Lam); !ok {
		t.Fatalf("expected a Lam, got %T", def.Term)
	}
}

func TestLoaderUnresolvedRef(t *testing.T) {
	d := New()
	ref := term.NewRef(term.NoPos, "missing", cid.CID{}, cid.CID{})
	_, err := d.Resolve(ref)
	if err == nil {
		t.Fatal("expected an error")
	}
}

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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yatima-lang/yatima/anon"
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

func fakeCID(b byte) cid.CID {
	return cid.Derive([]byte{b})
}

func TestEntryIPLDRoundTrip(t *testing.T) {
	e := Entry{
		Pos:      term.Pos(0, 3, fakeCID(1)),
		TypeAnon: fakeCID(2),
		TermAnon: fakeCID(3),
		TypeMeta: anon.Meta{Pos: term.NoPos},
		TermMeta: anon.Meta{Pos: term.NoPos, Name: "x", HasName: true},
	}
	back, err := EntryFromIPLD(e.ToIPLD())
	if err != nil {
		t.Fatalf("EntryFromIPLD: %v", err)
	}
	if diff := cmp.Diff(e, back, cmp.AllowUnexported(term.Position{})); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryCIDStable(t *testing.T) {
	e := Entry{TypeAnon: fakeCID(1), TermAnon: fakeCID(2)}
	c1, err := e.CID()
	if err != nil {
		t.Fatal(err)
	}
	c2, err := e.CID()
	if err != nil {
		t.Fatal(err)
	}
	if !c1.Equal(c2) {
		t.Fatalf("CID not stable across encodes: %v != %v", c1, c2)
	}
}

func TestIndexRejectsDuplicateNames(t *testing.T) {
	idx := Index{Entries: []IndexEntry{
		{Name: "foo", EntryCID: fakeCID(1)},
		{Name: "foo", EntryCID: fakeCID(2)},
	}}
	_, err := IndexFromIPLD(idx.ToIPLD())
	var de *errs.DecodeError
	if !errors.As(err, &de) || de.Kind != errs.DuplicateName {
		t.Fatalf("want DuplicateName, got %v", err)
	}
}

func TestImportAlias(t *testing.T) {
	cases := []struct {
		name  string
		imp   Import
		input term.Name
		want  term.Name
	}{
		{"bare-with-no-alias", Import{Name: "Mod", With: []term.Name{"f"}}, "f", "f"},
		{"bare-with-alias", Import{Name: "Mod", Alias: "M", With: []term.Name{"f"}}, "f", "M.f"},
		{"qualified-default", Import{Name: "Mod"}, "g", "Mod.g"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ImportAlias(c.input, c.imp)
			if got != c.want {
				t.Fatalf("ImportAlias(%q, %+v) = %q, want %q", c.input, c.imp, got, c.want)
			}
		})
	}
}

func TestPackageIPLDRoundTrip(t *testing.T) {
	p := Package{
		Pos:  term.NoPos,
		Name: "Example",
		Imports: []Import{
			{PackageCID: fakeCID(9), Name: "Nat", Alias: "N", With: []term.Name{"add"}},
		},
		Index: Index{Entries: []IndexEntry{
			{Name: "id", EntryCID: fakeCID(7)},
		}},
	}
	back, err := PackageFromIPLD(p.ToIPLD())
	if err != nil {
		t.Fatalf("PackageFromIPLD: %v", err)
	}
	if diff := cmp.Diff(p, back, cmp.AllowUnexported(term.Position{})); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

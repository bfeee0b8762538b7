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

package anon

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

// anonUnexported lets cmp descend into every AnonTerm variant: each one
// embeds the unexported aBase marker field.
var anonUnexported = cmp.AllowUnexported(AVar{}, ARef{}, ALit{}, ALTy{}, AOpr{}, ATyp{},
	ALam{}, AApp{}, AAll{}, ASlf{}, ADat{}, ACse{}, ALet{}, AAnn{}, ARec{})

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func identTerm() term.Term {
	// λ x => x
	return term.NewLam(term.NoPos, "x", term.NewVar(term.NoPos, "x", 0))
}

func selfNatPair() term.Term {
	// let rec id : #Nat -> #Nat = λ x => x in id
	fnType := term.NewAll(term.NoPos, term.UsesMany, "_",
		term.NewLTy(term.NoPos, literal.PrimType{Tag: literal.TagNat}),
		term.NewLTy(term.NoPos, literal.PrimType{Tag: literal.TagNat}))
	return term.NewLet(term.NoPos, true, term.UsesMany, "id", fnType, identTerm(),
		term.NewVar(term.NoPos, "id", 0))
}

func TestSplitMergeRoundTrip(t *testing.T) {
	cases := map[string]term.Term{
		"var-in-lambda": identTerm(),
		"app": term.NewApp(term.NoPos, identTerm(),
			term.NewLit(term.NoPos, literal.NatLit(big.NewInt(3)))),
		"let-typed": selfNatPair(),
		"let-untyped": term.NewLet(term.NoPos, false, term.UsesOnce, "y", nil,
			term.NewLit(term.NoPos, literal.BoolLit(true)),
			term.NewVar(term.NoPos, "y", 0)),
		"slf-dat-cse": term.NewCse(term.NoPos,
			term.NewDat(term.NoPos, term.NewSlf(term.NoPos, "self", term.NewTyp(term.NoPos)))),
		"ann": term.NewAnn(term.NoPos,
			term.NewLit(term.NoPos, literal.TextLit("hi")),
			term.NewLTy(term.NoPos, literal.PrimType{Tag: literal.TagText})),
		"opr": term.NewOpr(term.NoPos, term.PrimOp{Family: literal.TagU8, OpTag: 0}),
		"rec-in-let": term.NewLet(term.NoPos, true, term.UsesMany, "loop", nil,
			term.NewRec(term.NoPos), term.NewVar(term.NoPos, "loop", 0)),
		"var-empty-advisory-name": term.NewLam(term.NoPos, "x", term.NewVar(term.NoPos, "", 0)),
	}

	for name, orig := range cases {
		t.Run(name, func(t *testing.T) {
			if err := term.Validate(orig); err != nil {
				t.Fatalf("fixture invalid: %v", err)
			}
			a, m := Split(orig)
			back, err := Merge(a, m)
			if err != nil {
				t.Fatalf("Merge: %v", err)
			}
			wantA, wantM := Split(orig)
			gotA, gotM := Split(back)
			if diff := cmp.Diff(wantA, gotA, anonUnexported, bigIntComparer); diff != "" {
				t.Errorf("anon skeleton mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantM, gotM, cmp.AllowUnexported(term.Position{})); diff != "" {
				t.Errorf("meta mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeNameMissing(t *testing.T) {
	a := AVar{Index: 0}
	_, err := Merge(a, Meta{})
	var de *errs.DecodeError
	if !errors.As(err, &de) || de.Kind != errs.NameMissing {
		t.Fatalf("want NameMissing, got %v", err)
	}
}

func TestMergeArityMismatch(t *testing.T) {
	a := AApp{Fun: AVar{Index: 0}, Arg: AVar{Index: 1}}
	m := named(term.NoPos, "", Meta{}) // App needs two children, only one given
	_, err := Merge(a, m)
	var de *errs.DecodeError
	if !errors.As(err, &de) || de.Kind != errs.MetaMismatch {
		t.Fatalf("want MetaMismatch, got %v", err)
	}
}

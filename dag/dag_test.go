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

package dag

import (
	"math/big"
	"testing"

	"github.com/yatima-lang/yatima/defs"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/prim"
	"github.com/yatima-lang/yatima/term"
)

var pos = term.NoPos

func fixed(fam literal.Tag, v int64) *term.Lit {
	return term.NewLit(pos, literal.FixedLit(fam, big.NewInt(v)))
}

func oprTerm(fam literal.Tag, symbol string) *term.Opr {
	op, ok := prim.FromSymbol(fam, symbol)
	if !ok {
		panic("unknown op " + symbol)
	}
	return term.NewOpr(pos, op)
}

func app2(fn term.Term, x, y term.Term) term.Term {
	return term.NewApp(pos, term.NewApp(pos, fn, x), y)
}

func mustLit(t *testing.T, g *Graph, id NodeId) literal.Literal {
	t.Helper()
	n := g.Node(id)
	if n.Kind != KLit {
		t.Fatalf("expected a literal node, got kind %v", n.Kind)
	}
	return n.Literal
}

func TestIdentityApplication(t *testing.T) {
	idTerm := term.NewLam(pos, "x", term.NewVar(pos, "x", 0))

	g := NewGraph(nil)
	root := FromTerm(g, term.NewApp(pos, idTerm, term.NewLit(pos, literal.NatLit(big.NewInt(41)))))
	d := defs.New()

	result, err := g.WHNF(root, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	lit := mustLit(t, g, result)
	if lit.Int.Int64() != 41 {
		t.Fatalf("expected 41, got %v", lit.Int)
	}
}

func TestLetSharesSingleEvaluation(t *testing.T) {
	addU8 := oprTerm(literal.TagU8, "add")
	e := app2(addU8, fixed(literal.TagU8, 2), fixed(literal.TagU8, 3)) // 2 + 3 = 5
	body := app2(addU8, term.NewVar(pos, "x", 0), term.NewVar(pos, "x", 0))
	letTerm := term.NewLet(pos, false, term.UsesMany, "x", nil, e, body)

	g := NewGraph(nil)
	root := FromTerm(g, letTerm)
	d := defs.New()

	// Capture the bound variable's NodeId before reduction: once WHNF
	// runs, root's own Forward chain resolves straight past the Let node
	// to the final literal, so it can't be recovered from root afterward.
	boundVar := g.nodes[root].BoundVar

	result, err := g.WHNF(root, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	lit := mustLit(t, g, result)
	if lit.Int.Int64() != 10 {
		t.Fatalf("expected 10 (5+5), got %v", lit.Int)
	}

	// The bound variable's own node must have been tied directly to the
	// evaluated value: forcing it a second time is a single Deref hop,
	// not a recomputation, so the arena does not grow.
	before := len(g.nodes)
	if _, err := g.WHNF(boundVar, d); err != nil {
		t.Fatalf("WHNF(x) second force: %v", err)
	}
	if len(g.nodes) != before {
		t.Fatalf("expected no new allocation re-forcing an already-evaluated binding, arena grew from %d to %d", before, len(g.nodes))
	}
}

func TestSelfTypeElimination(t *testing.T) {
	inner := term.NewLit(pos, literal.NatLit(big.NewInt(7)))
	cse := term.NewCse(pos, term.NewDat(pos, inner))

	g := NewGraph(nil)
	root := FromTerm(g, cse)
	d := defs.New()

	result, err := g.WHNF(root, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	lit := mustLit(t, g, result)
	if lit.Int.Int64() != 7 {
		t.Fatalf("expected 7, got %v", lit.Int)
	}
}

func TestPrimitiveMixing(t *testing.T) {
	// U32.Add(U32.ToU32(U16.Mul(2,3)), 1) => U32(7)
	mulU16 := oprTerm(literal.TagU16, "mul")
	inner := app2(mulU16, fixed(literal.TagU16, 2), fixed(literal.TagU16, 3)) // 6 : U16
	toU32 := term.NewApp(pos, oprTerm(literal.TagU16, "to_U32"), inner)
	addU32 := oprTerm(literal.TagU32, "add")
	expr := app2(addU32, toU32, fixed(literal.TagU32, 1))

	g := NewGraph(nil)
	root := FromTerm(g, expr)
	d := defs.New()

	result, err := g.Norm(root, d)
	if err != nil {
		t.Fatalf("Norm: %v", err)
	}
	lit := mustLit(t, g, result)
	if lit.Tag != literal.TagU32 {
		t.Fatalf("expected U32 result, got %v", lit.Tag)
	}
	if lit.Int.Int64() != 7 {
		t.Fatalf("expected 7, got %v", lit.Int)
	}
}

func TestBoundaryWraparound(t *testing.T) {
	g := NewGraph(nil)
	d := defs.New()

	addU8 := oprTerm(literal.TagU8, "add")
	root1 := FromTerm(g, app2(addU8, fixed(literal.TagU8, 255), fixed(literal.TagU8, 1)))
	r1, err := g.WHNF(root1, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	if got := mustLit(t, g, r1).Int.Int64(); got != 0 {
		t.Fatalf("U8.Add(255,1): expected 0, got %d", got)
	}

	subI8 := oprTerm(literal.TagI8, "sub")
	root2 := FromTerm(g, app2(subI8, fixed(literal.TagI8, -128), fixed(literal.TagI8, 1)))
	r2, err := g.WHNF(root2, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	if got := mustLit(t, g, r2).Int.Int64(); got != 127 {
		t.Fatalf("I8.Sub(-128,1): expected 127, got %d", got)
	}

	// Shl takes its shift amount as the first (U32) argument: shifting
	// the value 1 left by 17 mod 16 = 1 bits gives 2.
	shlU16 := oprTerm(literal.TagU16, "shl")
	amount := term.NewLit(pos, literal.FixedLit(literal.TagU32, big.NewInt(17)))
	root3 := FromTerm(g, app2(shlU16, amount, fixed(literal.TagU16, 1)))
	r3, err := g.WHNF(root3, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	if got := mustLit(t, g, r3).Int.Int64(); got != 2 {
		t.Fatalf("U16.Shl(17,1): expected 2, got %d", got)
	}

	toU8 := term.NewApp(pos, oprTerm(literal.TagU16, "to_U8"), fixed(literal.TagU16, 256))
	root4 := FromTerm(g, toU8)
	r4, err := g.WHNF(root4, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	if n := g.Node(r4); n.Kind != KApp {
		t.Fatalf("U16.ToU8(256): expected a stuck application, got kind %v", n.Kind)
	}
}

func TestEqualAlphaEquivalence(t *testing.T) {
	idX := term.NewLam(pos, "x", term.NewVar(pos, "x", 0))
	idY := term.NewLam(pos, "y", term.NewVar(pos, "y", 0))

	g := NewGraph(nil)
	a := FromTerm(g, idX)
	b := FromTerm(g, idY)
	d := defs.New()

	eq, err := Equal(g, a, g, b, d)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatal("expected alpha-equivalent lambdas to be Equal")
	}

	notId := term.NewLam(pos, "x", term.NewLit(pos, literal.NatLit(big.NewInt(0))))
	c := FromTerm(g, notId)
	eq2, err := Equal(g, a, g, c, d)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if eq2 {
		t.Fatal("expected different lambdas to not be Equal")
	}
}

func TestNormUnderBinders(t *testing.T) {
	// λx. (λy. y) x  ⇒  λx. x
	innerIdApplied := term.NewApp(pos, term.NewLam(pos, "y", term.NewVar(pos, "y", 0)), term.NewVar(pos, "x", 0))
	outer := term.NewLam(pos, "x", innerIdApplied)

	g := NewGraph(nil)
	root := FromTerm(g, outer)
	d := defs.New()

	result, err := g.Norm(root, d)
	if err != nil {
		t.Fatalf("Norm: %v", err)
	}
	projected := g.ToTerm(result)
	lam, ok := projected.(*term.Lam)
	if !ok {
		t.Fatalf("expected a Lam, got %T", projected)
	}
	v, ok := lam.Body.(*term.Var)
	if !ok {
		t.Fatalf("expected the body to normalize to a Var, got %T", lam.Body)
	}
	if v.Index != 0 {
		t.Fatalf("expected index 0, got %d", v.Index)
	}
}

func TestCountUses(t *testing.T) {
	// x + x : two uses of the outermost bound variable.
	body := app2(oprTerm(literal.TagU8, "add"), term.NewVar(pos, "x", 0), term.NewVar(pos, "x", 0))
	if got := CountUses(body); got != 2 {
		t.Fatalf("expected 2 uses, got %d", got)
	}
	if u := ObservedUses(CountUses(body)); u != term.UsesMany {
		t.Fatalf("expected UsesMany, got %v", u)
	}

	unused := term.NewLit(pos, literal.NatLit(big.NewInt(0)))
	if got := CountUses(unused); got != 0 {
		t.Fatalf("expected 0 uses, got %d", got)
	}
}

func TestRecursiveLetProjectsAsRec(t *testing.T) {
	// let rec f = λx. f in f
	// Reducing the Let ties f's bound variable to λx. f, a self-loop
	// that passes through the Lam node rather than forwarding a NodeId
	// directly to itself. This is as far as WHNF goes: Norm would walk
	// into the Lam's body and back into the same cycle forever, since
	// a non-productive recursive definition like this one has no finite
	// normal form. Projecting the WHNF'd graph back out must stop at
	// the cycle and quote the recursive occurrence as Rec instead of
	// recursing forever.
	inner := term.NewLam(pos, "x", term.NewRec(pos))
	whole := term.NewLet(pos, true, term.UsesMany, "f", nil, inner, term.NewRec(pos))

	g := NewGraph(nil)
	root := FromTerm(g, whole)
	d := defs.New()

	result, err := g.WHNF(root, d)
	if err != nil {
		t.Fatalf("WHNF: %v", err)
	}
	lam, ok := g.ToTerm(result).(*term.Lam)
	if !ok {
		t.Fatalf("expected a Lam, got %T", g.ToTerm(result))
	}
	if _, ok := lam.Body.(*term.Rec); !ok {
		t.Fatalf("expected the cycle to project as Rec, got %T", lam.Body)
	}
}

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

// Package prim is the primitive-op algebra: a closed, table-driven set
// of first-order operations over Nat, Int, Bits, Bytes, Text, Char,
// Bool, and the ten fixed-width integer families. Each op declares a
// symbol, an arity in {0,1,2}, a type (a closed term.Term), and a
// partial reduction function — exactly the design spec.md §9 asks for:
// "a static array per family indexed by the small integer tag."
package prim

import (
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

// Entry is one row of a family's op table.
type Entry struct {
	Symbol string
	Arity  int
	TypeOf func() term.Term
	Apply0 func() (literal.Literal, bool)
	Apply1 func(x literal.Literal) (literal.Literal, bool)
	Apply2 func(x, y literal.Literal) (literal.Literal, bool)
}

// families maps each Literal tag that has operations to its ordered op
// table; the slice index is the op's canonical small-integer tag.
var families = buildFamilies()

// AllFamilies lists every literal.Tag that owns a primitive-op family,
// in a fixed order (used by tests iterating "every family").
func AllFamilies() []literal.Tag {
	out := make([]literal.Tag, 0, len(families))
	for _, t := range familyOrder {
		if _, ok := families[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

var familyOrder = []literal.Tag{
	literal.TagNat, literal.TagInt, literal.TagBits, literal.TagBytes,
	literal.TagText, literal.TagChar, literal.TagBool,
	literal.TagU8, literal.TagU16, literal.TagU32, literal.TagU64, literal.TagU128,
	literal.TagI8, literal.TagI16, literal.TagI32, literal.TagI64, literal.TagI128,
}

func buildFamilies() map[literal.Tag][]Entry {
	m := make(map[literal.Tag][]Entry, len(familyOrder))
	for _, t := range familyOrder {
		if t.IsFixedWidth() || t == literal.TagNat || t == literal.TagInt {
			m[t] = buildIntFamily(t)
		}
	}
	m[literal.TagBits] = buildBitsFamily()
	m[literal.TagBytes] = buildBytesFamily()
	m[literal.TagText] = buildTextFamily()
	m[literal.TagChar] = buildCharFamily()
	m[literal.TagBool] = buildBoolFamily()
	return m
}

func table(fam literal.Tag) []Entry {
	t, ok := families[fam]
	if !ok {
		return nil
	}
	return t
}

func entryFor(op term.PrimOp) (Entry, bool) {
	t := table(op.Family)
	if op.OpTag < 0 || op.OpTag >= len(t) {
		return Entry{}, false
	}
	return t[op.OpTag], true
}

// Symbol returns the op's name within its family (e.g. "add").
func Symbol(op term.PrimOp) (string, bool) {
	e, ok := entryFor(op)
	if !ok {
		return "", false
	}
	return e.Symbol, true
}

// FromSymbol looks up an op within a family by its symbol.
func FromSymbol(fam literal.Tag, symbol string) (term.PrimOp, bool) {
	for i, e := range table(fam) {
		if e.Symbol == symbol {
			return term.PrimOp{Family: fam, OpTag: i}, true
		}
	}
	return term.PrimOp{}, false
}

// Arity returns the op's arity (0, 1, or 2).
func Arity(op term.PrimOp) (int, bool) {
	e, ok := entryFor(op)
	if !ok {
		return 0, false
	}
	return e.Arity, true
}

// TypeOf returns the op's closed type.
func TypeOf(op term.PrimOp) (term.Term, bool) {
	e, ok := entryFor(op)
	if !ok {
		return nil, false
	}
	return e.TypeOf(), true
}

// Apply0 evaluates a nullary op.
func Apply0(op term.PrimOp) (literal.Literal, bool) {
	e, ok := entryFor(op)
	if !ok || e.Apply0 == nil {
		return literal.Literal{}, false
	}
	return e.Apply0()
}

// Apply1 evaluates a unary op. It returns ok == false ("no result") if
// the op isn't unary, x's tag doesn't match the op's domain, or the
// reduction is partial and undefined for x (e.g. a conversion that
// doesn't fit).
func Apply1(op term.PrimOp, x literal.Literal) (literal.Literal, bool) {
	e, ok := entryFor(op)
	if !ok || e.Apply1 == nil || x.Tag != op.Family {
		return literal.Literal{}, false
	}
	return e.Apply1(x)
}

// Apply2 evaluates a binary op, per the same partiality rules as Apply1.
// Argument tag checking is op-specific (e.g. Shl's first argument is a
// U32 shift amount, not a Family-tagged value), so it is delegated to
// the entry's Apply2 closure rather than checked uniformly here.
func Apply2(op term.PrimOp, x, y literal.Literal) (literal.Literal, bool) {
	e, ok := entryFor(op)
	if !ok || e.Apply2 == nil {
		return literal.Literal{}, false
	}
	return e.Apply2(x, y)
}

// ToIPLD returns the op's canonical small-integer tag, for encoding as
// ["#Opr", family_string, small_int_tag].
func ToIPLD(op term.PrimOp) (int64, bool) {
	_, ok := entryFor(op)
	if !ok {
		return 0, false
	}
	return int64(op.OpTag), true
}

// FromIPLD is the inverse of ToIPLD.
func FromIPLD(famName string, tag int64) (term.PrimOp, bool) {
	fam, ok := literal.TagFromString(famName)
	if !ok {
		return term.PrimOp{}, false
	}
	t := table(fam)
	if tag < 0 || int(tag) >= len(t) {
		return term.PrimOp{}, false
	}
	return term.PrimOp{Family: fam, OpTag: int(tag)}, true
}

func tyConst(tag literal.Tag) term.Term {
	return term.NewLTy(term.NoPos, literal.PrimType{Tag: tag})
}

// arrow builds `∀ d1 d2 ... -> result`, right-associated, all domains
// annotated Uses = many (primitive-op arrows are not themselves subject
// to the linear-use discipline the checker enforces on user code).
func arrow(result term.Term, domains ...term.Term) term.Term {
	t := result
	for i := len(domains) - 1; i >= 0; i-- {
		t = term.NewAll(term.NoPos, term.UsesMany, "", domains[i], t)
	}
	return t
}

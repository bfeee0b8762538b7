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

package term

import (
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/literal"
)

// Family names a primitive-op family (one per literal tag that has
// operations: Nat, Int, Bits, Bytes, Text, Char, Bool, U8..I128). It is
// a thin data carrier — the package prim owns the symbol/arity/type_of/
// apply* tables keyed by (Family, OpTag), so that term itself never
// needs to import prim (which in turn needs to build Term values for
// TypeOf, and would otherwise create an import cycle).
type Family = literal.Tag

// PrimOp identifies one operation within a family by its canonical
// small-integer tag (assigned per-family, matching the order in
// original_source/yatima_core/src/prim/u16.rs for the families it
// covers).
type PrimOp struct {
	Family Family
	OpTag  int
}

// Term is the authoritative syntactic form. Every variant carries a
// Position. The zero value of any concrete variant type is invalid;
// construct via the New* functions.
type Term interface {
	isTerm()
	Pos() Position
}

type base struct{ position Position }

func (base) isTerm()          {}
func (b base) Pos() Position  { return b.position }

// Var is a de Bruijn-indexed variable occurrence. Name is advisory
// (round-tripped through Meta) and never affects equality of the
// anonymous skeleton.
type Var struct {
	base
	Name  Name
	Index int
}

func NewVar(pos Position, name Name, index int) *Var {
	return &Var{base{pos}, name, index}
}

// Ref is a named external definition referenced by content address.
type Ref struct {
	base
	Name   Name
	DefCID cid.CID
	ASTCID cid.CID
}

func NewRef(pos Position, name Name, defCID, astCID cid.CID) *Ref {
	return &Ref{base{pos}, name, defCID, astCID}
}

// Lit is a literal value.
type Lit struct {
	base
	Value literal.Literal
}

func NewLit(pos Position, v literal.Literal) *Lit { return &Lit{base{pos}, v} }

// LTy is a primitive type constant.
type LTy struct {
	base
	Type literal.PrimType
}

func NewLTy(pos Position, t literal.PrimType) *LTy { return &LTy{base{pos}, t} }

// Opr identifies a primitive operation.
type Opr struct {
	base
	Op PrimOp
}

func NewOpr(pos Position, op PrimOp) *Opr { return &Opr{base{pos}, op} }

// Typ is the universe.
type Typ struct{ base }

func NewTyp(pos Position) *Typ { return &Typ{base{pos}} }

// Lam binds one variable.
type Lam struct {
	base
	Name Name
	Body Term
}

func NewLam(pos Position, name Name, body Term) *Lam { return &Lam{base{pos}, name, body} }

// App applies Fun to Arg.
type App struct {
	base
	Fun Term
	Arg Term
}

func NewApp(pos Position, fun, arg Term) *App { return &App{base{pos}, fun, arg} }

// All is a dependent function type.
type All struct {
	base
	NUses    Uses
	Name     Name
	Domain   Term
	Codomain Term
}

func NewAll(pos Position, uses Uses, name Name, domain, codomain Term) *All {
	return &All{base{pos}, uses, name, domain, codomain}
}

// Slf is a self-type: Body may reference the term being typed.
type Slf struct {
	base
	Name Name
	Body Term
}

func NewSlf(pos Position, name Name, body Term) *Slf { return &Slf{base{pos}, name, body} }

// Dat introduces a self-typed value.
type Dat struct {
	base
	Body Term
}

func NewDat(pos Position, body Term) *Dat { return &Dat{base{pos}, body} }

// Cse inspects a self-typed value.
type Cse struct {
	base
	Scrutinee Term
}

func NewCse(pos Position, scrutinee Term) *Cse { return &Cse{base{pos}, scrutinee} }

// Let is recursive or non-recursive local binding.
type Let struct {
	base
	Recursive bool
	NUses     Uses
	Name      Name
	Type      Term
	Value     Term
	Body      Term
}

func NewLet(pos Position, recursive bool, uses Uses, name Name, typ, value, body Term) *Let {
	return &Let{base{pos}, recursive, uses, name, typ, value, body}
}

// Ann is an explicit type annotation.
type Ann struct {
	base
	Value Term
	Type  Term
}

func NewAnn(pos Position, value, typ Term) *Ann { return &Ann{base{pos}, value, typ} }

// Rec is a self-reference; valid only inside a recursive Let's Value or
// Body.
type Rec struct{ base }

func NewRec(pos Position) *Rec { return &Rec{base{pos}} }

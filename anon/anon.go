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

// Package anon implements the split of a term.Term into its hashed
// anonymous skeleton (AnonTerm) and its parallel metadata sidecar
// (Meta). Two terms with the same anonymous skeleton are interchangeable
// as definitions; only their Meta sides (names, positions) differ.
package anon

import (
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

// AnonTerm mirrors term.Term structurally but omits names and
// positions; Var carries only its index, Ref only its ast CID.
type AnonTerm interface{ isAnon() }

type aBase struct{}

func (aBase) isAnon() {}

type AVar struct {
	aBase
	Index int
}
type ARef struct {
	aBase
	ASTCID cid.CID
}
type ALit struct {
	aBase
	Value literal.Literal
}
type ALTy struct {
	aBase
	Type literal.PrimType
}
type AOpr struct {
	aBase
	Op term.PrimOp
}
type ATyp struct{ aBase }
type ALam struct {
	aBase
	Body AnonTerm
}
type AApp struct {
	aBase
	Fun, Arg AnonTerm
}
type AAll struct {
	aBase
	NUses              term.Uses
	Domain, Codomain   AnonTerm
}
type ASlf struct {
	aBase
	Body AnonTerm
}
type ADat struct {
	aBase
	Body AnonTerm
}
type ACse struct {
	aBase
	Scrutinee AnonTerm
}
type ALet struct {
	aBase
	Recursive bool
	NUses     term.Uses
	HasType   bool
	Type      AnonTerm
	Value     AnonTerm
	Body      AnonTerm
}
type AAnn struct {
	aBase
	Value, Type AnonTerm
}
type ARec struct{ aBase }

// Meta is the parallel tree of names and positions. Its shape (Children
// length) must match the corresponding AnonTerm node's shape; Merge
// checks this and fails with errs.MetaMismatch otherwise. DefCID carries
// a Ref's resolved definition CID: the anonymous skeleton keeps only the
// ast_cid (per the content-address discipline, two references to the
// same anonymous term are interchangeable), so def_cid travels on the
// metadata side alongside the advisory name.
type Meta struct {
	Pos      term.Position
	Name     term.Name
	HasName  bool
	DefCID   cid.CID
	Children []Meta
}

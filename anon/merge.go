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
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

// Merge is the inverse structural zip of Split. It fails with
// errs.MetaMismatch when the number of m's children does not match a's
// shape, and with errs.NameMissing when m lacks a name for a node that
// requires one (a binder, a Var or a Ref).
func Merge(a AnonTerm, m Meta) (term.Term, error) {
	switch a.(type) {
	case AVar, ARef, ALit, ALTy, AOpr, ATyp, ARec:
		if err := arity(m, 0); err != nil {
			return nil, err
		}
	}
	switch n := a.(type) {
	case AVar:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		return term.NewVar(m.Pos, name, n.Index), nil
	case ARef:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		return term.NewRef(m.Pos, name, m.DefCID, n.ASTCID), nil
	case ALit:
		return term.NewLit(m.Pos, n.Value), nil
	case ALTy:
		return term.NewLTy(m.Pos, n.Type), nil
	case AOpr:
		return term.NewOpr(m.Pos, n.Op), nil
	case ATyp:
		return term.NewTyp(m.Pos), nil
	case ALam:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		if err := arity(m, 1); err != nil {
			return nil, err
		}
		body, err := Merge(n.Body, m.Children[0])
		if err != nil {
			return nil, err
		}
		return term.NewLam(m.Pos, name, body), nil
	case AApp:
		if err := arity(m, 2); err != nil {
			return nil, err
		}
		fn, err := Merge(n.Fun, m.Children[0])
		if err != nil {
			return nil, err
		}
		arg, err := Merge(n.Arg, m.Children[1])
		if err != nil {
			return nil, err
		}
		return term.NewApp(m.Pos, fn, arg), nil
	case AAll:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		if err := arity(m, 2); err != nil {
			return nil, err
		}
		dom, err := Merge(n.Domain, m.Children[0])
		if err != nil {
			return nil, err
		}
		cod, err := Merge(n.Codomain, m.Children[1])
		if err != nil {
			return nil, err
		}
		return term.NewAll(m.Pos, n.NUses, name, dom, cod), nil
	case ASlf:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		if err := arity(m, 1); err != nil {
			return nil, err
		}
		body, err := Merge(n.Body, m.Children[0])
		if err != nil {
			return nil, err
		}
		return term.NewSlf(m.Pos, name, body), nil
	case ADat:
		if err := arity(m, 1); err != nil {
			return nil, err
		}
		body, err := Merge(n.Body, m.Children[0])
		if err != nil {
			return nil, err
		}
		return term.NewDat(m.Pos, body), nil
	case ACse:
		if err := arity(m, 1); err != nil {
			return nil, err
		}
		s, err := Merge(n.Scrutinee, m.Children[0])
		if err != nil {
			return nil, err
		}
		return term.NewCse(m.Pos, s), nil
	case ALet:
		name, err := requireName(m)
		if err != nil {
			return nil, err
		}
		if err := arity(m, 3); err != nil {
			return nil, err
		}
		var ty term.Term
		if n.HasType {
			ty, err = Merge(n.Type, m.Children[0])
			if err != nil {
				return nil, err
			}
		}
		val, err := Merge(n.Value, m.Children[1])
		if err != nil {
			return nil, err
		}
		body, err := Merge(n.Body, m.Children[2])
		if err != nil {
			return nil, err
		}
		return term.NewLet(m.Pos, n.Recursive, n.NUses, name, ty, val, body), nil
	case AAnn:
		if err := arity(m, 2); err != nil {
			return nil, err
		}
		v, err := Merge(n.Value, m.Children[0])
		if err != nil {
			return nil, err
		}
		ty, err := Merge(n.Type, m.Children[1])
		if err != nil {
			return nil, err
		}
		return term.NewAnn(m.Pos, v, ty), nil
	case ARec:
		return term.NewRec(m.Pos), nil
	default:
		return nil, errs.New(errs.MetaMismatch, "unknown anon node type %T", a)
	}
}

func requireName(m Meta) (term.Name, error) {
	if !m.HasName {
		return "", errs.New(errs.NameMissing, "meta has no name for binder at position %v", m.Pos)
	}
	return m.Name, nil
}

func arity(m Meta, n int) error {
	if len(m.Children) != n {
		return errs.New(errs.MetaMismatch, "expected %d children, meta has %d", n, len(m.Children))
	}
	return nil
}

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

import "github.com/yatima-lang/yatima/term"

// Split is a total structural recursion zipping t into its anonymous
// skeleton and its metadata sidecar.
func Split(t term.Term) (AnonTerm, Meta) {
	switch n := t.(type) {
	case *term.Var:
		return AVar{Index: n.Index}, Meta{Pos: n.Pos(), Name: n.Name, HasName: true}
	case *term.Ref:
		m := leaf(n.Pos(), n.Name)
		m.DefCID = n.DefCID
		return ARef{ASTCID: n.ASTCID}, m
	case *term.Lit:
		return ALit{Value: n.Value}, leaf(n.Pos(), "")
	case *term.LTy:
		return ALTy{Type: n.Type}, leaf(n.Pos(), "")
	case *term.Opr:
		return AOpr{Op: n.Op}, leaf(n.Pos(), "")
	case *term.Typ:
		return ATyp{}, leaf(n.Pos(), "")
	case *term.Lam:
		body, bm := Split(n.Body)
		return ALam{Body: body}, named(n.Pos(), n.Name, bm)
	case *term.App:
		fn, fm := Split(n.Fun)
		am, amMeta := Split(n.Arg)
		return AApp{Fun: fn, Arg: am}, unnamed(n.Pos(), fm, amMeta)
	case *term.All:
		dom, dm := Split(n.Domain)
		cod, cm := Split(n.Codomain)
		return AAll{NUses: n.NUses, Domain: dom, Codomain: cod}, named(n.Pos(), n.Name, dm, cm)
	case *term.Slf:
		body, bm := Split(n.Body)
		return ASlf{Body: body}, named(n.Pos(), n.Name, bm)
	case *term.Dat:
		body, bm := Split(n.Body)
		return ADat{Body: body}, unnamed(n.Pos(), bm)
	case *term.Cse:
		s, sm := Split(n.Scrutinee)
		return ACse{Scrutinee: s}, unnamed(n.Pos(), sm)
	case *term.Let:
		hasType := n.Type != nil
		var tyAnon AnonTerm
		tyMeta := leaf(term.NoPos, "")
		if hasType {
			tyAnon, tyMeta = Split(n.Type)
		}
		val, vm := Split(n.Value)
		body, bm := Split(n.Body)
		return ALet{Recursive: n.Recursive, NUses: n.NUses, HasType: hasType, Type: tyAnon, Value: val, Body: body},
			named(n.Pos(), n.Name, tyMeta, vm, bm)
	case *term.Ann:
		v, vm := Split(n.Value)
		ty, tm := Split(n.Type)
		return AAnn{Value: v, Type: ty}, unnamed(n.Pos(), vm, tm)
	case *term.Rec:
		return ARec{}, leaf(n.Pos(), "")
	default:
		panic("anon: unknown Term variant")
	}
}

func leaf(pos term.Position, name term.Name) Meta {
	if name == "" {
		return Meta{Pos: pos}
	}
	return Meta{Pos: pos, Name: name, HasName: true}
}

func named(pos term.Position, name term.Name, children ...Meta) Meta {
	return Meta{Pos: pos, Name: name, HasName: true, Children: children}
}

func unnamed(pos term.Position, children ...Meta) Meta {
	return Meta{Pos: pos, Children: children}
}

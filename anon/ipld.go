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
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/ipldv"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

// ToIPLD projects a to its canonical list shape: the same shape as
// term.Term minus names and positions, with Ref reduced to ["Ref",
// link(ast_cid)].
func ToIPLD(a AnonTerm) ipldv.Node {
	switch n := a.(type) {
	case AVar:
		return ipldv.List(ipldv.String("Var"), ipldv.Int(int64(n.Index)))
	case ARef:
		return ipldv.List(ipldv.String("Ref"), ipldv.Link(n.ASTCID))
	case ALit:
		return ipldv.List(ipldv.String("Lit"), n.Value.ToIPLD())
	case ALTy:
		return ipldv.List(ipldv.String("LTy"), n.Type.ToIPLD())
	case AOpr:
		return ipldv.List(ipldv.String("Opr"), n.Op.ToIPLD())
	case ATyp:
		return ipldv.List(ipldv.String("Typ"))
	case ALam:
		return ipldv.List(ipldv.String("Lam"), ToIPLD(n.Body))
	case AApp:
		return ipldv.List(ipldv.String("App"), ToIPLD(n.Fun), ToIPLD(n.Arg))
	case AAll:
		return ipldv.List(ipldv.String("All"), ipldv.Int(int64(n.NUses)), ToIPLD(n.Domain), ToIPLD(n.Codomain))
	case ASlf:
		return ipldv.List(ipldv.String("Slf"), ToIPLD(n.Body))
	case ADat:
		return ipldv.List(ipldv.String("Dat"), ToIPLD(n.Body))
	case ACse:
		return ipldv.List(ipldv.String("Cse"), ToIPLD(n.Scrutinee))
	case ALet:
		typeNode := ipldv.Null()
		if n.HasType {
			typeNode = ToIPLD(n.Type)
		}
		return ipldv.List(ipldv.String("Let"), ipldv.Bool(n.Recursive), ipldv.Int(int64(n.NUses)),
			typeNode, ToIPLD(n.Value), ToIPLD(n.Body))
	case AAnn:
		return ipldv.List(ipldv.String("Ann"), ToIPLD(n.Value), ToIPLD(n.Type))
	case ARec:
		return ipldv.List(ipldv.String("Rec"))
	default:
		panic("anon: unknown AnonTerm variant")
	}
}

// FromIPLD parses the shape ToIPLD produces.
func FromIPLD(node ipldv.Node) (AnonTerm, error) {
	xs, ok := node.AsList()
	if !ok || len(xs) == 0 {
		return nil, errs.New(errs.InvalidShape, "anon: expected a non-empty list")
	}
	disc, ok := xs[0].AsString()
	if !ok {
		return nil, errs.New(errs.InvalidShape, "anon: discriminator is not a string")
	}
	rest := xs[1:]
	switch disc {
	case "Var":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Var expects 1 field")
		}
		idx, ok := rest[0].AsInt()
		if !ok {
			return nil, errs.New(errs.InvalidShape, "anon: Var index is not an int")
		}
		return AVar{Index: int(idx)}, nil
	case "Ref":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Ref expects 1 field")
		}
		c, ok := rest[0].AsLink()
		if !ok {
			return nil, errs.New(errs.InvalidShape, "anon: Ref ast is not a link")
		}
		return ARef{ASTCID: c}, nil
	case "Lit":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Lit expects 1 field")
		}
		v, err := literal.FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ALit{Value: v}, nil
	case "LTy":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: LTy expects 1 field")
		}
		v, err := literal.PrimTypeFromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ALTy{Type: v}, nil
	case "Opr":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Opr expects 1 field")
		}
		op, err := term.PrimOpFromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return AOpr{Op: op}, nil
	case "Typ":
		return ATyp{}, nil
	case "Lam":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Lam expects 1 field")
		}
		body, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ALam{Body: body}, nil
	case "App":
		if len(rest) != 2 {
			return nil, errs.New(errs.InvalidShape, "anon: App expects 2 fields")
		}
		fn, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		arg, err := FromIPLD(rest[1])
		if err != nil {
			return nil, err
		}
		return AApp{Fun: fn, Arg: arg}, nil
	case "All":
		if len(rest) != 3 {
			return nil, errs.New(errs.InvalidShape, "anon: All expects 3 fields")
		}
		u, ok := rest[0].AsInt()
		if !ok {
			return nil, errs.New(errs.InvalidShape, "anon: All uses is not an int")
		}
		dom, err := FromIPLD(rest[1])
		if err != nil {
			return nil, err
		}
		cod, err := FromIPLD(rest[2])
		if err != nil {
			return nil, err
		}
		return AAll{NUses: term.Uses(u), Domain: dom, Codomain: cod}, nil
	case "Slf":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Slf expects 1 field")
		}
		body, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ASlf{Body: body}, nil
	case "Dat":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Dat expects 1 field")
		}
		body, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ADat{Body: body}, nil
	case "Cse":
		if len(rest) != 1 {
			return nil, errs.New(errs.InvalidShape, "anon: Cse expects 1 field")
		}
		s, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		return ACse{Scrutinee: s}, nil
	case "Let":
		if len(rest) != 5 {
			return nil, errs.New(errs.InvalidShape, "anon: Let expects 5 fields")
		}
		rec, ok := rest[0].AsBool()
		if !ok {
			return nil, errs.New(errs.InvalidShape, "anon: Let recursive is not a bool")
		}
		u, ok := rest[1].AsInt()
		if !ok {
			return nil, errs.New(errs.InvalidShape, "anon: Let uses is not an int")
		}
		var hasType bool
		var ty AnonTerm
		if !rest[2].IsNull() {
			hasType = true
			t, err := FromIPLD(rest[2])
			if err != nil {
				return nil, err
			}
			ty = t
		}
		val, err := FromIPLD(rest[3])
		if err != nil {
			return nil, err
		}
		body, err := FromIPLD(rest[4])
		if err != nil {
			return nil, err
		}
		return ALet{Recursive: rec, NUses: term.Uses(u), HasType: hasType, Type: ty, Value: val, Body: body}, nil
	case "Ann":
		if len(rest) != 2 {
			return nil, errs.New(errs.InvalidShape, "anon: Ann expects 2 fields")
		}
		v, err := FromIPLD(rest[0])
		if err != nil {
			return nil, err
		}
		ty, err := FromIPLD(rest[1])
		if err != nil {
			return nil, err
		}
		return AAnn{Value: v, Type: ty}, nil
	case "Rec":
		return ARec{}, nil
	default:
		return nil, errs.New(errs.UnknownTag, "anon: unknown discriminator %q", disc)
	}
}

// ToIPLD projects m to [pos, name_or_null, def_cid_or_null, children...].
func (m Meta) ToIPLD() ipldv.Node {
	nameNode := ipldv.Null()
	if m.HasName {
		nameNode = ipldv.String(string(m.Name))
	}
	defNode := ipldv.Null()
	if !m.DefCID.Empty() {
		defNode = ipldv.Link(m.DefCID)
	}
	children := make([]ipldv.Node, len(m.Children))
	for i, c := range m.Children {
		children[i] = c.ToIPLD()
	}
	return ipldv.List(m.Pos.ToIPLD(), nameNode, defNode, ipldv.List(children...))
}

// MetaFromIPLD parses the shape Meta.ToIPLD produces.
func MetaFromIPLD(n ipldv.Node) (Meta, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 4 {
		return Meta{}, errs.New(errs.InvalidShape, "meta: expected a 4-element list")
	}
	pos, err := term.PositionFromIPLD(xs[0])
	if err != nil {
		return Meta{}, err
	}
	var name term.Name
	var hasName bool
	if !xs[1].IsNull() {
		s, ok := xs[1].AsString()
		if !ok {
			return Meta{}, errs.New(errs.InvalidShape, "meta: name is not a string or null")
		}
		name, hasName = term.Name(s), true
	}
	var defCID cid.CID
	if !xs[2].IsNull() {
		c, ok := xs[2].AsLink()
		if !ok {
			return Meta{}, errs.New(errs.InvalidShape, "meta: def_cid is not a link or null")
		}
		defCID = c
	}
	childNodes, ok := xs[3].AsList()
	if !ok {
		return Meta{}, errs.New(errs.InvalidShape, "meta: children is not a list")
	}
	// A leaf's Children stays nil, as Split builds it, so that a Meta
	// survives the round trip unchanged.
	var children []Meta
	if len(childNodes) > 0 {
		children = make([]Meta, len(childNodes))
	}
	for i, cn := range childNodes {
		cm, err := MetaFromIPLD(cn)
		if err != nil {
			return Meta{}, err
		}
		children[i] = cm
	}
	return Meta{Pos: pos, Name: name, HasName: hasName, DefCID: defCID, Children: children}, nil
}

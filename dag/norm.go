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
	"github.com/yatima-lang/yatima/defs"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

// Norm fully normalizes id: weak-head reduce the root, then recurse into
// every child position, including under binders. Ref, Let and Ann never
// survive WHNF (they always forward through to something else), so this
// switch only needs to handle the kinds WHNF can actually return.
func (g *Graph) Norm(id NodeId, d *defs.Defs) (NodeId, error) {
	id, err := g.WHNF(id, d)
	if err != nil {
		return 0, err
	}
	n := g.nodes[id]

	switch n.Kind {
	case KLam:
		n.Body, err = g.Norm(n.Body, d)
	case KApp:
		n.Fun, err = g.Norm(n.Fun, d)
		if err == nil {
			n.Arg, err = g.Norm(n.Arg, d)
		}
	case KAll:
		n.Domain, err = g.Norm(n.Domain, d)
		if err == nil {
			n.Codomain, err = g.Norm(n.Codomain, d)
		}
	case KSlf:
		n.Body, err = g.Norm(n.Body, d)
	case KDat:
		n.Body, err = g.Norm(n.Body, d)
	case KCse:
		n.Scrutinee, err = g.Norm(n.Scrutinee, d)
	case KVar, KLit, KLTy, KOpr, KTyp:
		// leaves, nothing further to do
	default:
		err = errs.New(errs.InvariantViolated, "dag: unexpected kind %v surviving WHNF", n.Kind)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ToTerm projects id back to a term.Term, quoting de Bruijn indices from
// the binder stack accumulated during the walk. In a recursive Let that
// has not been reduced, a self-reference originally spelled Rec is
// reconstructed as an ordinary Var: both forms resolve to the same
// NodeId during lowering (dag/from_term.go), so the distinction is not
// recoverable from the graph. Once WHNF has reduced the Let, the
// self-reference is a cycle in the graph and projects as Rec (see
// toTerm).
func (g *Graph) ToTerm(id NodeId) term.Term {
	return toTerm(g, id, 0, map[NodeId]int{}, map[NodeId]bool{})
}

// toTerm recurses with visiting tracking which NodeIds are currently on
// the call stack. A reduced recursive Let ties its bound variable's
// Forward straight at Value (dag/whnf.go's KLet case), which turns the
// graph genuinely cyclic: walking into Value can lead back to the same
// NodeId. Per spec, such a cycle can only arise through a Rec-style
// self-reference, so revisiting a NodeId still on the stack projects as
// Rec rather than recursing forever.
func toTerm(g *Graph, id NodeId, depth int, benv map[NodeId]int, visiting map[NodeId]bool) term.Term {
	id = g.Deref(id)
	if visiting[id] {
		return term.NewRec(term.NoPos)
	}
	visiting[id] = true
	defer delete(visiting, id)

	n := g.nodes[id]

	switch n.Kind {
	case KVar:
		bd, ok := benv[id]
		if !ok {
			errs.Violate("dag: free variable encountered during projection")
		}
		return term.NewVar(term.NoPos, n.Name, depth-bd-1)
	case KRef:
		return term.NewRef(term.NoPos, n.Name, n.DefCID, n.ASTCID)
	case KLit:
		return term.NewLit(term.NoPos, n.Literal)
	case KLTy:
		return term.NewLTy(term.NoPos, n.PrimType)
	case KOpr:
		return term.NewOpr(term.NoPos, n.PrimOp)
	case KTyp:
		return term.NewTyp(term.NoPos)
	case KLam:
		body := toTerm(g, n.Body, depth+1, withBinder(benv, n.BoundVar, depth), visiting)
		return term.NewLam(term.NoPos, n.Name, body)
	case KApp:
		fun := toTerm(g, n.Fun, depth, benv, visiting)
		arg := toTerm(g, n.Arg, depth, benv, visiting)
		return term.NewApp(term.NoPos, fun, arg)
	case KAll:
		domain := toTerm(g, n.Domain, depth, benv, visiting)
		codomain := toTerm(g, n.Codomain, depth+1, withBinder(benv, n.BoundVar, depth), visiting)
		return term.NewAll(term.NoPos, n.NUses, n.Name, domain, codomain)
	case KSlf:
		body := toTerm(g, n.Body, depth+1, withBinder(benv, n.BoundVar, depth), visiting)
		return term.NewSlf(term.NoPos, n.Name, body)
	case KDat:
		return term.NewDat(term.NoPos, toTerm(g, n.Body, depth, benv, visiting))
	case KCse:
		return term.NewCse(term.NoPos, toTerm(g, n.Scrutinee, depth, benv, visiting))
	case KLet:
		var typ term.Term
		if n.HasType {
			typ = toTerm(g, n.Type, depth, benv, visiting)
		}
		inner := withBinder(benv, n.BoundVar, depth)
		value := toTerm(g, n.Value, depth+1, inner, visiting)
		body := toTerm(g, n.Body, depth+1, inner, visiting)
		return term.NewLet(term.NoPos, n.Recursive, n.NUses, n.Name, typ, value, body)
	case KAnn:
		value := toTerm(g, n.Value, depth, benv, visiting)
		typ := toTerm(g, n.Type, depth, benv, visiting)
		return term.NewAnn(term.NoPos, value, typ)
	default:
		errs.Violate("dag: unhandled node kind %v during projection", n.Kind)
		return nil
	}
}

func withBinder(benv map[NodeId]int, bv NodeId, depth int) map[NodeId]int {
	out := make(map[NodeId]int, len(benv)+1)
	for k, v := range benv {
		out[k] = v
	}
	out[bv] = depth
	return out
}

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
	"github.com/yatima-lang/yatima/prim"
	"github.com/yatima-lang/yatima/term"
)

// WHNF reduces id to weak head normal form: it forces the outermost
// constructor and no further, matching the evaluator's reduction rules
// (spec.md §4.4.3) one case per Kind. Reduction mutates the graph in
// place: each node that reduces sets its own Forward to the reduct, so
// any other node sharing this NodeId observes the same reduction exactly
// once rather than repeating the work.
func (g *Graph) WHNF(id NodeId, d *defs.Defs) (NodeId, error) {
	id = g.Deref(id)
	n := g.nodes[id]

	switch n.Kind {
	case KRef:
		target, err := g.resolveRef(n, d)
		if err != nil {
			return 0, err
		}
		g.nodes[id].Forward = target
		return g.WHNF(target, d)

	case KLet:
		// The bound variable is owned solely by this Let, so tying it
		// directly to Value (rather than copying Value into Body) is
		// safe and gives self-reference (ordinary or via Rec, which
		// already resolved to this same NodeId at lowering time) for
		// free: any occurrence anywhere in Value or Body derefs
		// through the bound var straight to Value.
		g.nodes[n.BoundVar].Forward = n.Value
		g.nodes[id].Forward = n.Body
		return g.WHNF(n.Body, d)

	case KAnn:
		g.nodes[id].Forward = n.Value
		return g.WHNF(n.Value, d)

	case KCse:
		scrutID, err := g.WHNF(n.Scrutinee, d)
		if err != nil {
			return 0, err
		}
		scrut := g.Node(scrutID)
		if scrut.Kind == KDat {
			g.nodes[id].Forward = scrut.Body
			return g.WHNF(scrut.Body, d)
		}
		return id, nil

	case KApp:
		return g.whnfApp(id, n, d)

	default:
		// KVar, KLit, KLTy, KOpr, KTyp, KLam, KAll, KSlf, KDat: already
		// weak-head normal. Var and App-of-unreduced-things are
		// "neutral" (stuck on an unresolved variable or a
		// not-yet-saturated primitive), which is still WHNF.
		return id, nil
	}
}

func (g *Graph) whnfApp(id NodeId, n *Node, d *defs.Defs) (NodeId, error) {
	funID, err := g.WHNF(n.Fun, d)
	if err != nil {
		return 0, err
	}
	fn := g.Node(funID)

	switch fn.Kind {
	case KLam:
		bodyCopy := g.subst(fn.Body, fn.BoundVar, n.Arg, map[NodeId]NodeId{})
		g.nodes[id].Forward = bodyCopy
		return g.WHNF(bodyCopy, d)

	case KOpr:
		arity, ok := prim.Arity(fn.PrimOp)
		if ok && arity == 1 {
			argID, err := g.WHNF(n.Arg, d)
			if err != nil {
				return 0, err
			}
			if arg := g.Node(argID); arg.Kind == KLit {
				if res, applied := prim.Apply1(fn.PrimOp, arg.Literal); applied {
					lit := g.alloc(Node{Kind: KLit, Literal: res})
					g.nodes[id].Forward = lit
					return lit, nil
				}
			}
		}
		// Arity 0 (never a function), arity 2 awaiting its second
		// argument, or a partial op undefined on this argument: stuck.
		return id, nil

	case KApp:
		// fn may be Opr applied to one argument already, i.e. the
		// first of two arguments to a binary op.
		f0ID, err := g.WHNF(fn.Fun, d)
		if err != nil {
			return 0, err
		}
		f0 := g.Node(f0ID)
		if f0.Kind != KOpr {
			return id, nil
		}
		arity, ok := prim.Arity(f0.PrimOp)
		if !ok || arity != 2 {
			return id, nil
		}
		a0ID, err := g.WHNF(fn.Arg, d)
		if err != nil {
			return 0, err
		}
		a1ID, err := g.WHNF(n.Arg, d)
		if err != nil {
			return 0, err
		}
		a0, a1 := g.Node(a0ID), g.Node(a1ID)
		if a0.Kind == KLit && a1.Kind == KLit {
			if res, applied := prim.Apply2(f0.PrimOp, a0.Literal, a1.Literal); applied {
				lit := g.alloc(Node{Kind: KLit, Literal: res})
				g.nodes[id].Forward = lit
				return lit, nil
			}
		}
		return id, nil

	default:
		// Applying a Var, Typ, All, Slf, Dat or Cse head: stuck.
		return id, nil
	}
}

// resolveRef looks up a Ref node's definition in d and lowers its term
// into this same Graph, memoized by ast_cid so that two Refs pointing at
// the same definition share one lowered copy.
func (g *Graph) resolveRef(n *Node, d *defs.Defs) (NodeId, error) {
	if !n.ASTCID.Empty() {
		if id, ok := g.astMemo[n.ASTCID]; ok {
			return id, nil
		}
	}
	ref := term.NewRef(term.NoPos, n.Name, n.DefCID, n.ASTCID)
	def, err := d.Resolve(ref)
	if err != nil {
		return 0, err
	}
	id := lower(g, def.Term, lowerCtx{})
	if !n.ASTCID.Empty() {
		g.astMemo[n.ASTCID] = id
	}
	return id, nil
}

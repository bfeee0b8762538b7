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
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/term"
)

// lowerCtx carries the two binder stacks FromTerm threads through a
// lowering pass: varEnv resolves ordinary de Bruijn Var occurrences (one
// entry per enclosing binder, innermost last); recStack resolves Rec
// occurrences to the bound variable of their innermost enclosing
// recursive Let, which is the same NodeId an ordinary Var occurrence of
// that let's own name would resolve to — Rec is just an anonymous
// spelling of self-reference.
type lowerCtx struct {
	varEnv   []NodeId
	recStack []NodeId
}

// FromTerm lowers a validated term.Term into g, returning the NodeId of
// the root. It validates t first: a Term that
// violates an invariant FromTerm depends on (Rec outside a recursive
// Let, an out-of-range Var index) is a programming error here, not a
// recoverable condition, so it panics via errs.Violate rather than
// returning an error.
func FromTerm(g *Graph, t term.Term) NodeId {
	if err := term.Validate(t); err != nil {
		errs.Violate("dag: lowering an invalid term: %v", err)
	}
	return lower(g, t, lowerCtx{})
}

func lower(g *Graph, t term.Term, ctx lowerCtx) NodeId {
	switch n := t.(type) {
	case *term.Var:
		i := len(ctx.varEnv) - 1 - n.Index
		if i < 0 || i >= len(ctx.varEnv) {
			errs.Violate("dag: Var index %d out of range (depth %d)", n.Index, len(ctx.varEnv))
		}
		return ctx.varEnv[i]

	case *term.Rec:
		if len(ctx.recStack) == 0 {
			errs.Violate("dag: Rec outside a recursive Let")
		}
		return ctx.recStack[len(ctx.recStack)-1]

	case *term.Ref:
		return g.alloc(Node{Kind: KRef, Name: n.Name, DefCID: n.DefCID, ASTCID: n.ASTCID})

	case *term.Lit:
		return g.alloc(Node{Kind: KLit, Literal: n.Value})

	case *term.LTy:
		return g.alloc(Node{Kind: KLTy, PrimType: n.Type})

	case *term.Opr:
		return g.alloc(Node{Kind: KOpr, PrimOp: n.Op})

	case *term.Typ:
		return g.alloc(Node{Kind: KTyp})

	case *term.Lam:
		bv := g.newVar(n.Name)
		inner := ctx
		inner.varEnv = append(append([]NodeId{}, ctx.varEnv...), bv)
		body := lower(g, n.Body, inner)
		return g.alloc(Node{Kind: KLam, Name: n.Name, BoundVar: bv, Body: body})

	case *term.App:
		fun := lower(g, n.Fun, ctx)
		arg := lower(g, n.Arg, ctx)
		return g.alloc(Node{Kind: KApp, Fun: fun, Arg: arg})

	case *term.All:
		domain := lower(g, n.Domain, ctx)
		bv := g.newVar(n.Name)
		inner := ctx
		inner.varEnv = append(append([]NodeId{}, ctx.varEnv...), bv)
		codomain := lower(g, n.Codomain, inner)
		return g.alloc(Node{Kind: KAll, Name: n.Name, NUses: n.NUses, BoundVar: bv, Domain: domain, Codomain: codomain})

	case *term.Slf:
		bv := g.newVar(n.Name)
		inner := ctx
		inner.varEnv = append(append([]NodeId{}, ctx.varEnv...), bv)
		body := lower(g, n.Body, inner)
		return g.alloc(Node{Kind: KSlf, Name: n.Name, BoundVar: bv, Body: body})

	case *term.Dat:
		body := lower(g, n.Body, ctx)
		return g.alloc(Node{Kind: KDat, Body: body})

	case *term.Cse:
		scrutinee := lower(g, n.Scrutinee, ctx)
		return g.alloc(Node{Kind: KCse, Scrutinee: scrutinee})

	case *term.Let:
		var typeID NodeId
		hasType := n.Type != nil
		if hasType {
			typeID = lower(g, n.Type, ctx)
		}
		bv := g.newVar(n.Name)
		inner := ctx
		inner.varEnv = append(append([]NodeId{}, ctx.varEnv...), bv)
		if n.Recursive {
			inner.recStack = append(append([]NodeId{}, ctx.recStack...), bv)
		}
		value := lower(g, n.Value, inner)
		body := lower(g, n.Body, inner)
		return g.alloc(Node{
			Kind: KLet, Name: n.Name, Recursive: n.Recursive, NUses: n.NUses,
			BoundVar: bv, HasType: hasType, Type: typeID, Value: value, Body: body,
		})

	case *term.Ann:
		value := lower(g, n.Value, ctx)
		typ := lower(g, n.Type, ctx)
		return g.alloc(Node{Kind: KAnn, Value: value, Type: typ, HasType: true})

	default:
		errs.Violate("dag: unhandled term type %T", t)
		return 0
	}
}

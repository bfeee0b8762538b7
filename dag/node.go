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

// Package dag implements the mutable, shared-node evaluation graph: a
// node arena indexed by NodeId, upcopy-style substitution, weak-head and
// full normalization, and projection back to term.Term.
package dag

import (
	"github.com/hashicorp/go-hclog"

	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

// NodeId indexes into a Graph's arena. The zero value is never a valid
// node; Graph reserves index 0 as a sentinel.
type NodeId int

// Kind discriminates the variants of Node; it parallels term.Term's
// constructors one for one, except Rec, which lowers to the bound
// variable of its recursive Let and has no Kind of its own.
type Kind int

const (
	KVar Kind = iota
	KRef
	KLit
	KLTy
	KOpr
	KTyp
	KLam
	KApp
	KAll
	KSlf
	KDat
	KCse
	KLet
	KAnn
)

// Node is one arena slot. Like literal.Literal and ipldv.Node elsewhere
// in this core, it is a single tagged struct rather than an interface
// hierarchy: only the fields relevant to Kind are meaningful. Forward is
// the one piece of interior mutability every node carries: when a node
// is reduced, Forward is set to the NodeId of its reduct rather than
// rewriting the node's own fields in place, so every existing pointer to
// this NodeId observes the reduction exactly once (this is what gives
// call-by-need sharing: an argument lowered once and referenced by many
// parents is reduced at most once).
type Node struct {
	Kind    Kind
	Forward NodeId

	Name term.Name // Var (advisory), Lam/All/Slf/Let (binder name)

	DefCID cid.CID // Ref
	ASTCID cid.CID // Ref

	Literal  literal.Literal  // Lit
	PrimType literal.PrimType // LTy
	PrimOp   term.PrimOp      // Opr

	Body     NodeId // Lam, Slf, Dat, Let
	BoundVar NodeId // Lam, All, Slf, Let: the owned Var node

	Fun, Arg NodeId // App

	NUses            term.Uses
	Domain, Codomain NodeId // All

	Scrutinee NodeId // Cse

	Recursive bool
	HasType   bool
	Type      NodeId // Let, Ann
	Value     NodeId // Let, Ann
}

// Graph is the arena a single normalization owns. It is not safe for
// concurrent use; per spec.md §5 the core is single-threaded.
type Graph struct {
	nodes  []*Node
	logger hclog.Logger

	// astMemo memoizes Ref resolution by ast_cid, so that two Ref nodes
	// pointing at the same definition share one lowered copy rather than
	// re-lowering term.Term on every occurrence.
	astMemo map[cid.CID]NodeId
}

// NewGraph allocates an empty arena. A nil logger is replaced with a
// discarding one.
func NewGraph(logger hclog.Logger) *Graph {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	g := &Graph{logger: logger, astMemo: map[cid.CID]NodeId{}}
	g.nodes = append(g.nodes, nil) // index 0 is the invalid sentinel
	return g
}

func (g *Graph) alloc(n Node) NodeId {
	g.nodes = append(g.nodes, &n)
	return NodeId(len(g.nodes) - 1)
}

// Node returns the node at id after resolving any Forward chain
// (path-compressing as it goes).
func (g *Graph) Node(id NodeId) *Node {
	id = g.Deref(id)
	return g.nodes[id]
}

// Deref follows id's Forward chain to the node currently representing
// it, compressing the chain so future lookups are O(1).
func (g *Graph) Deref(id NodeId) NodeId {
	start := id
	for g.nodes[id].Forward != 0 {
		id = g.nodes[id].Forward
	}
	if id != start {
		g.nodes[start].Forward = id
	}
	return id
}

func (g *Graph) newVar(name term.Name) NodeId {
	return g.alloc(Node{Kind: KVar, Name: name})
}

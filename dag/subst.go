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

// Occurrences of a bound variable are not separate "reference" nodes:
// from_term.go resolves a Var directly to its binder's own NodeId, so
// sharing is structural identity rather than a name or index lookup.
// subst therefore only needs to rewrite the path from varID up to the
// root: a node whose children are all unchanged is returned unchanged
// (same NodeId, so parents outside the substituted subtree keep sharing
// it untouched), which gives the same "only the affected spine is
// copied" shape as an upcopy without needing parent back-edges.
func (g *Graph) subst(id, varID, argID NodeId, memo map[NodeId]NodeId) NodeId {
	id = g.Deref(id)
	if id == varID {
		return argID
	}
	if v, ok := memo[id]; ok {
		return v
	}

	n := *g.nodes[id]
	changed := false
	replace := func(child NodeId) NodeId {
		if child == 0 {
			return 0
		}
		nc := g.subst(child, varID, argID, memo)
		if nc != child {
			changed = true
		}
		return nc
	}

	switch n.Kind {
	case KVar, KRef, KLit, KLTy, KOpr, KTyp:
		// leaves: no children to recurse into, and we already know
		// id != varID, so this node is untouched by the substitution.
	case KLam:
		n.Body = replace(n.Body)
	case KApp:
		n.Fun = replace(n.Fun)
		n.Arg = replace(n.Arg)
	case KAll:
		n.Domain = replace(n.Domain)
		n.Codomain = replace(n.Codomain)
	case KSlf:
		n.Body = replace(n.Body)
	case KDat:
		n.Body = replace(n.Body)
	case KCse:
		n.Scrutinee = replace(n.Scrutinee)
	case KLet:
		if n.HasType {
			n.Type = replace(n.Type)
		}
		n.Value = replace(n.Value)
		n.Body = replace(n.Body)
	case KAnn:
		n.Value = replace(n.Value)
		n.Type = replace(n.Type)
	}

	var result NodeId
	if !changed {
		result = id
	} else {
		n.Forward = 0
		result = g.alloc(n)
	}
	memo[id] = result
	return result
}

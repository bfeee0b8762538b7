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
)

// bpair remembers that ga's binder aBound and gb's binder bBound were
// introduced at the same recursion depth, so that occurrences of either
// are treated as equal purely by position, independent of NodeId.
type bpair struct{ a, b NodeId }

// Equal reports whether a (in ga) and b (in gb) normalize to the same
// term up to alpha-equivalence, resolving Refs against d along the way.
// ga and gb may be the same Graph or different ones.
func Equal(ga *Graph, a NodeId, gb *Graph, b NodeId, d *defs.Defs) (bool, error) {
	return equalEnv(ga, a, gb, b, d, nil)
}

func equalEnv(ga *Graph, a NodeId, gb *Graph, b NodeId, d *defs.Defs, env []bpair) (bool, error) {
	aW, err := ga.WHNF(a, d)
	if err != nil {
		return false, err
	}
	bW, err := gb.WHNF(b, d)
	if err != nil {
		return false, err
	}
	if ga == gb && aW == bW {
		return true, nil
	}

	an, bn := ga.Node(aW), gb.Node(bW)
	if an.Kind != bn.Kind {
		return false, nil
	}

	switch an.Kind {
	case KVar:
		for _, p := range env {
			if p.a == aW && p.b == bW {
				return true, nil
			}
			if p.a == aW || p.b == bW {
				return false, nil
			}
		}
		return ga == gb && aW == bW, nil

	case KLit:
		return an.Literal.Equal(bn.Literal), nil
	case KLTy:
		return an.PrimType.Tag == bn.PrimType.Tag, nil
	case KOpr:
		return an.PrimOp == bn.PrimOp, nil
	case KTyp:
		return true, nil

	case KLam:
		return equalEnv(ga, an.Body, gb, bn.Body, d, append(env, bpair{an.BoundVar, bn.BoundVar}))

	case KApp:
		ok, err := equalEnv(ga, an.Fun, gb, bn.Fun, d, env)
		if err != nil || !ok {
			return ok, err
		}
		return equalEnv(ga, an.Arg, gb, bn.Arg, d, env)

	case KAll:
		if an.NUses != bn.NUses {
			return false, nil
		}
		ok, err := equalEnv(ga, an.Domain, gb, bn.Domain, d, env)
		if err != nil || !ok {
			return ok, err
		}
		return equalEnv(ga, an.Codomain, gb, bn.Codomain, d, append(env, bpair{an.BoundVar, bn.BoundVar}))

	case KSlf:
		return equalEnv(ga, an.Body, gb, bn.Body, d, append(env, bpair{an.BoundVar, bn.BoundVar}))

	case KDat:
		return equalEnv(ga, an.Body, gb, bn.Body, d, env)

	case KCse:
		return equalEnv(ga, an.Scrutinee, gb, bn.Scrutinee, d, env)

	default:
		return false, errs.New(errs.InvariantViolated, "dag: unexpected kind %v surviving WHNF", an.Kind)
	}
}

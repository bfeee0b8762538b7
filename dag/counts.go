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

import "github.com/yatima-lang/yatima/term"

// CountUses counts how many times the variable bound by the outermost
// binder of body (de Bruijn index 0 at body's own scope) occurs within
// it, not counting occurrences captured by a nested binder of the same
// name. It is a diagnostic, not a linearity checker: it reports how a
// variable was actually used so a caller can compare that against the
// Uses annotation its binder declared.
func CountUses(body term.Term) int {
	return countAt(body, 0)
}

func countAt(t term.Term, target int) int {
	switch n := t.(type) {
	case *term.Var:
		if n.Index == target {
			return 1
		}
		return 0
	case *term.Lam:
		return countAt(n.Body, target+1)
	case *term.App:
		return countAt(n.Fun, target) + countAt(n.Arg, target)
	case *term.All:
		return countAt(n.Domain, target) + countAt(n.Codomain, target+1)
	case *term.Slf:
		return countAt(n.Body, target+1)
	case *term.Dat:
		return countAt(n.Body, target)
	case *term.Cse:
		return countAt(n.Scrutinee, target)
	case *term.Let:
		c := 0
		if n.Type != nil {
			c += countAt(n.Type, target)
		}
		c += countAt(n.Value, target+1)
		c += countAt(n.Body, target+1)
		return c
	case *term.Ann:
		return countAt(n.Value, target) + countAt(n.Type, target)
	default:
		// Ref, Lit, LTy, Opr, Typ, Rec: no sub-occurrences of an outer
		// bound variable.
		return 0
	}
}

// ObservedUses maps an occurrence count to the coarsest Uses value that
// describes it: zero occurrences is none, exactly one is once, anything
// more is many. It cannot distinguish affine (zero-or-one along any
// single control path) from none or once without control-flow
// information this diagnostic doesn't track.
func ObservedUses(count int) term.Uses {
	switch {
	case count == 0:
		return term.UsesNone
	case count == 1:
		return term.UsesOnce
	default:
		return term.UsesMany
	}
}

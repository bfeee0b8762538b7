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

package term

import "github.com/yatima-lang/yatima/errs"

// Validate checks the structural invariants spec.md §3 requires: every
// Var index is below its enclosing-binder count, and Rec appears only
// inside a recursive Let's Value or Body. It returns an
// *errs.DecodeError{Kind: InvariantViolated} rather than panicking.
func Validate(t Term) (err error) {
	defer errs.Recover(&err)
	validate(t, 0, false)
	return nil
}

// validate walks t, tracking depth (number of enclosing binders) and
// whether a Rec is currently permitted (inside a recursive Let).
func validate(t Term, depth int, recOK bool) {
	switch n := t.(type) {
	case *Var:
		if n.Index < 0 || n.Index >= depth {
			errs.Violate("free or out-of-range variable index %d at depth %d", n.Index, depth)
		}
	case *Ref, *Lit, *LTy, *Opr, *Typ:
		// leaves, nothing to check
	case *Lam:
		validate(n.Body, depth+1, recOK)
	case *App:
		validate(n.Fun, depth, recOK)
		validate(n.Arg, depth, recOK)
	case *All:
		validate(n.Domain, depth, recOK)
		validate(n.Codomain, depth+1, recOK)
	case *Slf:
		validate(n.Body, depth+1, recOK)
	case *Dat:
		validate(n.Body, depth, recOK)
	case *Cse:
		validate(n.Scrutinee, depth, recOK)
	case *Let:
		if n.Type != nil {
			validate(n.Type, depth, recOK)
		}
		innerRecOK := recOK || n.Recursive
		validate(n.Value, depth+1, innerRecOK)
		validate(n.Body, depth+1, innerRecOK)
	case *Ann:
		validate(n.Value, depth, recOK)
		validate(n.Type, depth, recOK)
	case *Rec:
		if !recOK {
			errs.Violate("Rec used outside a recursive Let")
		}
	default:
		errs.Violate("unknown Term variant %T", t)
	}
}

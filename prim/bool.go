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

package prim

import (
	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

func buildBoolFamily() []Entry {
	fam := literal.TagBool
	unary := func(symbol string, f func(bool) bool) Entry {
		return Entry{
			Symbol: symbol, Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(f(x.Flag)), true
			},
		}
	}
	binary := func(symbol string, f func(a, b bool) bool) Entry {
		return Entry{
			Symbol: symbol, Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(f(x.Flag, y.Flag)), true
			},
		}
	}
	return []Entry{
		unary("not", func(a bool) bool { return !a }),
		binary("eql", func(a, b bool) bool { return a == b }),
		binary("and", func(a, b bool) bool { return a && b }),
		binary("or", func(a, b bool) bool { return a || b }),
		binary("xor", func(a, b bool) bool { return a != b }),
	}
}

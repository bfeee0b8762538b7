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
	"math/big"

	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

func buildCharFamily() []Entry {
	fam := literal.TagChar
	return []Entry{
		{
			Symbol: "eql", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBool), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(x.Rune == y.Rune), true
			},
		},
		{
			Symbol: "to_Nat", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagNat), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.NatLit(big.NewInt(int64(x.Rune))), true
			},
		},
		{
			Symbol: "to_U32", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagU32), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.FixedLit(literal.TagU32, big.NewInt(int64(x.Rune))), true
			},
		},
		{
			Symbol: "to_Text", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagText), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.TextLit(string(x.Rune)), true
			},
		},
	}
}

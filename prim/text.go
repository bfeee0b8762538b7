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
	"unicode/utf8"

	"github.com/yatima-lang/yatima/literal"
	"github.com/yatima-lang/yatima/term"
)

func buildTextFamily() []Entry {
	fam := literal.TagText
	return []Entry{
		{
			Symbol: "eql", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBool), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(x.Str == y.Str), true
			},
		},
		{
			Symbol: "len", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagNat), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.NatLit(big.NewInt(int64(utf8.RuneCountInString(x.Str)))), true
			},
		},
		{
			Symbol: "concat", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.TextLit(x.Str + y.Str), true
			},
		},
		{
			Symbol: "cons", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(literal.TagChar), tyConst(fam)) },
			Apply2: func(c, s literal.Literal) (literal.Literal, bool) {
				if c.Tag != literal.TagChar || s.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.TextLit(string(c.Rune) + s.Str), true
			},
		},
		{
			Symbol: "to_Bytes", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBytes), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BytesLit([]byte(x.Str)), true
			},
		},
	}
}

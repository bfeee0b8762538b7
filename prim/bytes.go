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

func buildBytesFamily() []Entry {
	fam := literal.TagBytes
	return []Entry{
		{
			Symbol: "eql", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBool), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(x.Equal(y)), true
			},
		},
		{
			Symbol: "len", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagNat), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.NatLit(big.NewInt(int64(len(x.Raw)))), true
			},
		},
		{
			Symbol: "concat", Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				out := append(append([]byte(nil), x.Raw...), y.Raw...)
				return literal.BytesLit(out), true
			},
		},
		{
			Symbol: "to_Bits", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBits), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BitsLit(literal.BytesToBits(8*len(x.Raw), x.Raw)), true
			},
		},
		{
			Symbol: "to_Nat", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagNat), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.NatLit(new(big.Int).SetBytes(x.Raw)), true
			},
		},
	}
}

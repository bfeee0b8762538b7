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

// buildIntFamily constructs the op table for Nat, Int, or any fixed-
// width U*/I* family. Reduction semantics (cross-checked against
// original_source/yatima_core/src/prim/u16.rs):
//
//   - fixed-width add/sub/mul/div/rem/pow wrap (literal.Wrap); Nat.Sub
//     saturates at zero; Int arithmetic never wraps (arbitrary precision).
//   - division/remainder by zero is "no result" for every family.
//   - shifts take the amount as a U32 *first* argument; for shifts and
//     rotates alike the amount is reduced modulo the family width
//     (shiftLike below), and rotate is cyclic.
//   - conversions are a real narrowing check (literal.FitsWidth), never
//     a same-width no-op cast — this is the fix for the bug spec.md §9
//     flags in the original ToU8/etc.
func buildIntFamily(fam literal.Tag) []Entry {
	fixed := fam.IsFixedWidth()
	width := fam.Width()
	signed := fam.Signed()

	lit := func(v *big.Int) literal.Literal {
		if fixed {
			return literal.FixedLit(fam, v)
		}
		if fam == literal.TagNat {
			return literal.NatLit(v)
		}
		return literal.IntLit(v)
	}

	var entries []Entry

	if fixed {
		entries = append(entries,
			Entry{
				Symbol: "max", Arity: 0, TypeOf: func() term.Term { return tyConst(fam) },
				Apply0: func() (literal.Literal, bool) { return literal.FixedLit(fam, maxOf(fam)), true },
			},
			Entry{
				Symbol: "min", Arity: 0, TypeOf: func() term.Term { return tyConst(fam) },
				Apply0: func() (literal.Literal, bool) { return literal.FixedLit(fam, minOf(fam)), true },
			},
		)
	}

	cmp := func(symbol string, f func(c int) bool) Entry {
		return Entry{
			Symbol: symbol, Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBool), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BoolLit(f(x.Int.Cmp(y.Int))), true
			},
		}
	}
	entries = append(entries,
		cmp("eql", func(c int) bool { return c == 0 }),
		cmp("lte", func(c int) bool { return c <= 0 }),
		cmp("lth", func(c int) bool { return c < 0 }),
		cmp("gth", func(c int) bool { return c > 0 }),
		cmp("gte", func(c int) bool { return c >= 0 }),
	)

	if fixed {
		entries = append(entries, Entry{
			Symbol: "not", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
				v := new(big.Int).Xor(toUnsigned(fam, x.Int), mask)
				return lit(v), true
			},
		})
		bitwise := func(symbol string, f func(a, b *big.Int) *big.Int) Entry {
			return Entry{
				Symbol: symbol, Arity: 2,
				TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(fam)) },
				Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
					if x.Tag != fam || y.Tag != fam {
						return literal.Literal{}, false
					}
					v := f(toUnsigned(fam, x.Int), toUnsigned(fam, y.Int))
					return lit(v), true
				},
			}
		}
		entries = append(entries,
			bitwise("and", func(a, b *big.Int) *big.Int { return new(big.Int).And(a, b) }),
			bitwise("or", func(a, b *big.Int) *big.Int { return new(big.Int).Or(a, b) }),
			bitwise("xor", func(a, b *big.Int) *big.Int { return new(big.Int).Xor(a, b) }),
		)
	}

	arith := func(symbol string, f func(a, b *big.Int) (*big.Int, bool)) Entry {
		return Entry{
			Symbol: symbol, Arity: 2,
			TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(fam)) },
			Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam || y.Tag != fam {
					return literal.Literal{}, false
				}
				v, ok := f(x.Int, y.Int)
				if !ok {
					return literal.Literal{}, false
				}
				return lit(v), true
			},
		}
	}
	entries = append(entries,
		arith("add", func(a, b *big.Int) (*big.Int, bool) { return new(big.Int).Add(a, b), true }),
		arith("sub", func(a, b *big.Int) (*big.Int, bool) {
			v := new(big.Int).Sub(a, b)
			if fam == literal.TagNat && v.Sign() < 0 {
				return big.NewInt(0), true // Nat.Sub saturates at zero
			}
			return v, true
		}),
		arith("mul", func(a, b *big.Int) (*big.Int, bool) { return new(big.Int).Mul(a, b), true }),
		arith("div", func(a, b *big.Int) (*big.Int, bool) {
			if b.Sign() == 0 {
				return nil, false
			}
			return new(big.Int).Quo(a, b), true
		}),
		arith("mod", func(a, b *big.Int) (*big.Int, bool) {
			if b.Sign() == 0 {
				return nil, false
			}
			return new(big.Int).Rem(a, b), true
		}),
	)

	// pow: base is this family, exponent is always U32 (matches
	// u16.rs's `∀ #U16 #U32 -> #U16`), result saturates/wraps per family.
	entries = append(entries, Entry{
		Symbol: "pow", Arity: 2,
		TypeOf: func() term.Term { return arrow(tyConst(fam), tyConst(fam), tyConst(literal.TagU32)) },
		Apply2: func(x, y literal.Literal) (literal.Literal, bool) {
			if x.Tag != fam || y.Tag != literal.TagU32 {
				return literal.Literal{}, false
			}
			if y.Int.Sign() < 0 || !y.Int.IsUint64() {
				return literal.Literal{}, false
			}
			v := new(big.Int).Exp(x.Int, y.Int, nil)
			return lit(v), true
		},
	})

	if fixed {
		shiftLike := func(symbol string, f func(v *big.Int, amount uint) *big.Int) Entry {
			return Entry{
				Symbol: symbol, Arity: 2,
				TypeOf: func() term.Term {
					return arrow(tyConst(fam), tyConst(literal.TagU32), tyConst(fam))
				},
				Apply2: func(amount, value literal.Literal) (literal.Literal, bool) {
					if amount.Tag != literal.TagU32 || value.Tag != fam {
						return literal.Literal{}, false
					}
					a := uint(amount.Int.Uint64() % uint64(width))
					v := f(toUnsigned(fam, value.Int), a)
					return lit(v), true
				},
			}
		}
		entries = append(entries,
			shiftLike("shl", func(v *big.Int, a uint) *big.Int {
				r := new(big.Int).Lsh(v, a)
				return maskTo(r, width)
			}),
			shiftLike("shr", func(v *big.Int, a uint) *big.Int {
				return new(big.Int).Rsh(v, a)
			}),
			shiftLike("rol", func(v *big.Int, a uint) *big.Int { return rotate(v, a, width, true) }),
			shiftLike("ror", func(v *big.Int, a uint) *big.Int { return rotate(v, a, width, false) }),
		)

		entries = append(entries,
			Entry{
				Symbol: "count_zeros", Arity: 1,
				TypeOf: func() term.Term { return arrow(tyConst(literal.TagU32), tyConst(fam)) },
				Apply1: func(x literal.Literal) (literal.Literal, bool) {
					if x.Tag != fam {
						return literal.Literal{}, false
					}
					return literal.FixedLit(literal.TagU32, big.NewInt(int64(width-popcount(toUnsigned(fam, x.Int))))), true
				},
			},
			Entry{
				Symbol: "count_ones", Arity: 1,
				TypeOf: func() term.Term { return arrow(tyConst(literal.TagU32), tyConst(fam)) },
				Apply1: func(x literal.Literal) (literal.Literal, bool) {
					if x.Tag != fam {
						return literal.Literal{}, false
					}
					return literal.FixedLit(literal.TagU32, big.NewInt(int64(popcount(toUnsigned(fam, x.Int))))), true
				},
			},
		)
	}

	// Conversions: to every other integer family, plus to Bits/Bytes.
	for _, target := range []literal.Tag{
		literal.TagU8, literal.TagU16, literal.TagU32, literal.TagU64, literal.TagU128,
		literal.TagI8, literal.TagI16, literal.TagI32, literal.TagI64, literal.TagI128,
		literal.TagNat, literal.TagInt,
	} {
		if target == fam {
			continue
		}
		target := target
		entries = append(entries, Entry{
			Symbol: "to_" + target.String(), Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(target), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				if target == literal.TagNat && x.Int.Sign() < 0 {
					return literal.Literal{}, false
				}
				if target.IsFixedWidth() && !literal.FitsWidth(target, x.Int) {
					return literal.Literal{}, false
				}
				if target == literal.TagNat {
					return literal.NatLit(x.Int), true
				}
				if target == literal.TagInt {
					return literal.IntLit(x.Int), true
				}
				return literal.FixedLit(target, x.Int), true
			},
		})
	}

	entries = append(entries,
		Entry{
			Symbol: "to_Bits", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBits), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BitsLit(intToBits(fam, x.Int)), true
			},
		},
		Entry{
			Symbol: "to_Bytes", Arity: 1,
			TypeOf: func() term.Term { return arrow(tyConst(literal.TagBytes), tyConst(fam)) },
			Apply1: func(x literal.Literal) (literal.Literal, bool) {
				if x.Tag != fam {
					return literal.Literal{}, false
				}
				return literal.BytesLit(intToBytes(fam, x.Int)), true
			},
		},
	)

	return entries
}

func maxOf(fam literal.Tag) *big.Int {
	w := fam.Width()
	if fam.Signed() {
		return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w-1)), big.NewInt(1))
	}
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w)), big.NewInt(1))
}

func minOf(fam literal.Tag) *big.Int {
	w := fam.Width()
	if fam.Signed() {
		return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(w-1)))
	}
	return big.NewInt(0)
}

// toUnsigned renders a (possibly negative, two's-complement) value as
// its unsigned width-bit pattern, for bitwise ops.
func toUnsigned(fam literal.Tag, v *big.Int) *big.Int {
	w := fam.Width()
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w))
	r := new(big.Int).Mod(v, mod)
	return r
}

func maskTo(v *big.Int, width int) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return new(big.Int).Mod(v, mod)
}

func rotate(v *big.Int, amount uint, width int, left bool) *big.Int {
	if amount == 0 {
		return new(big.Int).Set(v)
	}
	if !left {
		amount = uint(width) - amount
	}
	hi := new(big.Int).Lsh(v, amount)
	hi = maskTo(hi, width)
	lo := new(big.Int).Rsh(v, uint(width)-amount)
	return new(big.Int).Or(hi, lo)
}

func popcount(v *big.Int) int {
	n := 0
	for _, w := range v.Bits() {
		for w != 0 {
			n += int(w & 1)
			w >>= 1
		}
	}
	return n
}

func intToBits(fam literal.Tag, v *big.Int) []bool {
	return literal.BytesToBits(fam.Width(), intToBytes(fam, v))
}

func intToBytes(fam literal.Tag, v *big.Int) []byte {
	if fam.IsFixedWidth() {
		w := fam.Width() / 8
		u := toUnsigned(fam, v)
		b := u.Bytes()
		out := make([]byte, w)
		copy(out[w-len(b):], b)
		return out
	}
	// Nat/Int: minimal-length big-endian magnitude, sign folded into a
	// leading 0x00/0xff byte for Int. A non-negative Int gets the 0x00
	// byte only when its top bit is set; a negative Int always gets the
	// 0xff byte, so e.g. -128 encodes as [0xff, 0x80], one byte more than
	// the minimal two's-complement form.
	if fam == literal.TagInt && v.Sign() < 0 {
		// two's-complement minimal encoding: invert magnitude-1 bytes.
		mag := new(big.Int).Add(v, big.NewInt(1))
		mag.Neg(mag)
		b := mag.Bytes()
		out := make([]byte, len(b)+1)
		for i, by := range b {
			out[i+1] = ^by
		}
		out[0] = 0xff
		if len(b) == 0 {
			out[0] = 0xff
		}
		return out
	}
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	if fam == literal.TagInt && b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}

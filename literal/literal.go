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

// Package literal implements the tagged scalar values (Literal) and the
// type constants (PrimType) that classify them.
package literal

import (
	"math/big"
)

// Tag discriminates the variants of Literal and PrimType.
type Tag int

const (
	TagNat Tag = iota
	TagInt
	TagBits
	TagBytes
	TagText
	TagChar
	TagBool
	TagU8
	TagU16
	TagU32
	TagU64
	TagU128
	TagI8
	TagI16
	TagI32
	TagI64
	TagI128
)

var tagNames = map[Tag]string{
	TagNat: "Nat", TagInt: "Int", TagBits: "Bits", TagBytes: "Bytes",
	TagText: "Text", TagChar: "Char", TagBool: "Bool",
	TagU8: "U8", TagU16: "U16", TagU32: "U32", TagU64: "U64", TagU128: "U128",
	TagI8: "I8", TagI16: "I16", TagI32: "I32", TagI64: "I64", TagI128: "I128",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "?"
}

var namesToTag = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t, s := range tagNames {
		m[s] = t
	}
	return m
}()

// TagFromString is the inverse of Tag.String, used when decoding.
func TagFromString(s string) (Tag, bool) {
	t, ok := namesToTag[s]
	return t, ok
}

// IsFixedWidth reports whether t is one of U8..U128/I8..I128.
func (t Tag) IsFixedWidth() bool {
	return t >= TagU8 && t <= TagI128
}

// Width returns the bit width of a fixed-width tag (0 for non fixed-width
// tags).
func (t Tag) Width() int {
	switch t {
	case TagU8, TagI8:
		return 8
	case TagU16, TagI16:
		return 16
	case TagU32, TagI32:
		return 32
	case TagU64, TagI64:
		return 64
	case TagU128, TagI128:
		return 128
	default:
		return 0
	}
}

// Signed reports whether a fixed-width tag is a signed (I*) family.
func (t Tag) Signed() bool {
	return t >= TagI8 && t <= TagI128
}

// PrimType is a type constant: one per Literal family.
type PrimType struct {
	Tag Tag
}

func (p PrimType) String() string { return "#" + p.Tag.String() }

// Literal is a tagged scalar value. Exactly one payload field is
// meaningful per Tag:
//
//   - Nat, Int, U64, U128, I64, I128: Int (big.Int covers every width;
//     FixedLit additionally wraps fixed-width values into range)
//   - Bits: Bits ([]bool, big-endian)
//   - Bytes: Raw ([]byte, big-endian)
//   - Text: Str
//   - Char: Rune
//   - Bool: Flag
//   - U8/U16/U32/I8/I16/I32: Int
type Literal struct {
	Tag  Tag
	Int  *big.Int
	Bits []bool
	Raw  []byte
	Str  string
	Rune rune
	Flag bool
}

func NatLit(v *big.Int) Literal  { return Literal{Tag: TagNat, Int: new(big.Int).Set(v)} }
func IntLit(v *big.Int) Literal  { return Literal{Tag: TagInt, Int: new(big.Int).Set(v)} }
func BitsLit(bs []bool) Literal  { return Literal{Tag: TagBits, Bits: append([]bool(nil), bs...)} }
func BytesLit(b []byte) Literal  { return Literal{Tag: TagBytes, Raw: append([]byte(nil), b...)} }
func TextLit(s string) Literal   { return Literal{Tag: TagText, Str: s} }
func CharLit(r rune) Literal     { return Literal{Tag: TagChar, Rune: r} }
func BoolLit(b bool) Literal     { return Literal{Tag: TagBool, Flag: b} }

// FixedLit builds a fixed-width literal for tag t (one of U8..I128) from
// an arbitrary-precision value, wrapping/truncating to width bits first
// the way the family's own Wrap would.
func FixedLit(t Tag, v *big.Int) Literal {
	return Literal{Tag: t, Int: Wrap(t, v)}
}

// Wrap reduces v modulo 2^width, then re-centers it into the signed
// range for signed tags. This is the single place "wrapping arithmetic"
// (spec.md §4.1) is implemented; every fixed-width op composes results
// through Wrap.
func Wrap(t Tag, v *big.Int) *big.Int {
	w := t.Width()
	if w == 0 {
		return new(big.Int).Set(v)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w))
	r := new(big.Int).Mod(v, mod) // Mod result is in [0, mod) for any sign of v
	if t.Signed() {
		half := new(big.Int).Lsh(big.NewInt(1), uint(w-1))
		if r.Cmp(half) >= 0 {
			r.Sub(r, mod)
		}
	}
	return r
}

// FitsWidth reports whether v, taken as an exact value, fits in tag t's
// range without wrapping (used by narrowing ToXxx conversions: they
// succeed only when no bits are lost, per spec.md §4.1 "to_* conversions
// succeed when the value fits; otherwise no result").
func FitsWidth(t Tag, v *big.Int) bool {
	w := t.Width()
	if w == 0 {
		return true
	}
	if t.Signed() {
		half := new(big.Int).Lsh(big.NewInt(1), uint(w-1))
		lo := new(big.Int).Neg(half)
		hi := new(big.Int).Sub(half, big.NewInt(1))
		return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
	}
	if v.Sign() < 0 {
		return false
	}
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w)), big.NewInt(1))
	return v.Cmp(hi) <= 0
}

// Equal reports value equality within the same Tag; Literals of
// different Tags are never equal.
func (l Literal) Equal(o Literal) bool {
	if l.Tag != o.Tag {
		return false
	}
	switch l.Tag {
	case TagNat, TagInt, TagU8, TagU16, TagU32, TagU64, TagU128,
		TagI8, TagI16, TagI32, TagI64, TagI128:
		return l.Int.Cmp(o.Int) == 0
	case TagBits:
		if len(l.Bits) != len(o.Bits) {
			return false
		}
		for i := range l.Bits {
			if l.Bits[i] != o.Bits[i] {
				return false
			}
		}
		return true
	case TagBytes:
		if len(l.Raw) != len(o.Raw) {
			return false
		}
		for i := range l.Raw {
			if l.Raw[i] != o.Raw[i] {
				return false
			}
		}
		return true
	case TagText:
		return l.Str == o.Str
	case TagChar:
		return l.Rune == o.Rune
	case TagBool:
		return l.Flag == o.Flag
	default:
		return false
	}
}

// BytesToBits renders big-endian bytes as width (= 8*len(bytes)) bits,
// MSB first, matching original_source's bits::bytes_to_bits.
func BytesToBits(width int, b []byte) []bool {
	bits := make([]bool, 0, width)
	for _, by := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (by>>uint(i))&1 == 1)
		}
	}
	if len(bits) > width {
		bits = bits[:width]
	}
	for len(bits) < width {
		bits = append(bits, false)
	}
	return bits
}

// BitsToBytes packs big-endian bits back into bytes, zero-padding the
// final byte on the right if len(bits) is not a multiple of 8.
func BitsToBytes(bits []bool) []byte {
	n := (len(bits) + 7) / 8
	out := make([]byte, n)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out
}

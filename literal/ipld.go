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

package literal

import (
	"math/big"

	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/ipldv"
)

// ToIPLD projects l to ["#Lit", tag_string, payload], per spec.md §6.
func (l Literal) ToIPLD() ipldv.Node {
	return ipldv.List(ipldv.String("#Lit"), ipldv.String(l.Tag.String()), l.payloadIPLD())
}

func (l Literal) payloadIPLD() ipldv.Node {
	switch l.Tag {
	case TagNat, TagInt, TagU8, TagU16, TagU32, TagU64, TagU128,
		TagI8, TagI16, TagI32, TagI64, TagI128:
		return ipldv.BigInt(l.Int)
	case TagBits:
		xs := make([]ipldv.Node, len(l.Bits))
		for i, b := range l.Bits {
			xs[i] = ipldv.Bool(b)
		}
		return ipldv.List(xs...)
	case TagBytes:
		return ipldv.Bytes(l.Raw)
	case TagText:
		return ipldv.String(l.Str)
	case TagChar:
		return ipldv.Int(int64(l.Rune))
	case TagBool:
		return ipldv.Bool(l.Flag)
	default:
		return ipldv.Null()
	}
}

func bigIntFromNode(n ipldv.Node) (*big.Int, error) {
	v, ok := n.AsBigInt()
	if !ok {
		return nil, errs.New(errs.InvalidShape, "literal: integer payload is not a bignum")
	}
	return v, nil
}

// FromIPLD parses the shape ToIPLD produces.
func FromIPLD(n ipldv.Node) (Literal, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 3 {
		return Literal{}, errs.New(errs.InvalidShape, "literal: expected a 3-element list")
	}
	disc, ok := xs[0].AsString()
	if !ok || disc != "#Lit" {
		return Literal{}, errs.New(errs.InvalidShape, "literal: missing #Lit discriminator")
	}
	tagStr, ok := xs[1].AsString()
	if !ok {
		return Literal{}, errs.New(errs.InvalidShape, "literal: tag is not a string")
	}
	tag, ok := TagFromString(tagStr)
	if !ok {
		return Literal{}, errs.New(errs.UnknownTag, "literal: unknown tag %q", tagStr)
	}
	payload := xs[2]
	switch tag {
	case TagNat, TagInt, TagU8, TagU16, TagU32, TagU64, TagU128,
		TagI8, TagI16, TagI32, TagI64, TagI128:
		v, err := bigIntFromNode(payload)
		if err != nil {
			return Literal{}, err
		}
		return Literal{Tag: tag, Int: v}, nil
	case TagBits:
		bs, ok := payload.AsList()
		if !ok {
			return Literal{}, errs.New(errs.InvalidShape, "literal: bits payload is not a list")
		}
		bits := make([]bool, len(bs))
		for i, b := range bs {
			v, ok := b.AsBool()
			if !ok {
				return Literal{}, errs.New(errs.InvalidShape, "literal: bits element is not a bool")
			}
			bits[i] = v
		}
		return Literal{Tag: tag, Bits: bits}, nil
	case TagBytes:
		raw, ok := payload.AsBytes()
		if !ok {
			return Literal{}, errs.New(errs.InvalidShape, "literal: bytes payload is not bytes")
		}
		return Literal{Tag: tag, Raw: append([]byte(nil), raw...)}, nil
	case TagText:
		s, ok := payload.AsString()
		if !ok {
			return Literal{}, errs.New(errs.InvalidShape, "literal: text payload is not a string")
		}
		return Literal{Tag: tag, Str: s}, nil
	case TagChar:
		i, ok := payload.AsInt()
		if !ok {
			return Literal{}, errs.New(errs.InvalidShape, "literal: char payload is not an int")
		}
		return Literal{Tag: tag, Rune: rune(i)}, nil
	case TagBool:
		b, ok := payload.AsBool()
		if !ok {
			return Literal{}, errs.New(errs.InvalidShape, "literal: bool payload is not a bool")
		}
		return Literal{Tag: tag, Flag: b}, nil
	default:
		return Literal{}, errs.New(errs.UnknownTag, "literal: unhandled tag %v", tag)
	}
}

// ToIPLD projects a PrimType to ["#LTy", tag_string].
func (p PrimType) ToIPLD() ipldv.Node {
	return ipldv.List(ipldv.String("#LTy"), ipldv.String(p.Tag.String()))
}

// PrimTypeFromIPLD parses the shape PrimType.ToIPLD produces.
func PrimTypeFromIPLD(n ipldv.Node) (PrimType, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 2 {
		return PrimType{}, errs.New(errs.InvalidShape, "primtype: expected a 2-element list")
	}
	disc, ok := xs[0].AsString()
	if !ok || disc != "#LTy" {
		return PrimType{}, errs.New(errs.InvalidShape, "primtype: missing #LTy discriminator")
	}
	tagStr, ok := xs[1].AsString()
	if !ok {
		return PrimType{}, errs.New(errs.InvalidShape, "primtype: tag is not a string")
	}
	tag, ok := TagFromString(tagStr)
	if !ok {
		return PrimType{}, errs.New(errs.UnknownTag, "primtype: unknown tag %q", tagStr)
	}
	return PrimType{Tag: tag}, nil
}

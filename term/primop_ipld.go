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

import (
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/ipldv"
	"github.com/yatima-lang/yatima/literal"
)

// ToIPLD projects op to ["#Opr", family_string, small_int_tag].
func (op PrimOp) ToIPLD() ipldv.Node {
	return ipldv.List(ipldv.String("#Opr"), ipldv.String(op.Family.String()), ipldv.Int(int64(op.OpTag)))
}

// PrimOpFromIPLD parses the shape PrimOp.ToIPLD produces.
func PrimOpFromIPLD(n ipldv.Node) (PrimOp, error) {
	xs, ok := n.AsList()
	if !ok || len(xs) != 3 {
		return PrimOp{}, errs.New(errs.InvalidShape, "primop: expected a 3-element list")
	}
	disc, ok := xs[0].AsString()
	if !ok || disc != "#Opr" {
		return PrimOp{}, errs.New(errs.InvalidShape, "primop: missing #Opr discriminator")
	}
	famStr, ok := xs[1].AsString()
	if !ok {
		return PrimOp{}, errs.New(errs.InvalidShape, "primop: family is not a string")
	}
	fam, ok := literal.TagFromString(famStr)
	if !ok {
		return PrimOp{}, errs.New(errs.UnknownTag, "primop: unknown family %q", famStr)
	}
	tag, ok := xs[2].AsInt()
	if !ok {
		return PrimOp{}, errs.New(errs.InvalidShape, "primop: op tag is not an int")
	}
	return PrimOp{Family: fam, OpTag: int(tag)}, nil
}

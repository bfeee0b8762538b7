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
	"testing"

	"github.com/yatima-lang/yatima/ipldv"
)

func TestLiteralIPLDRoundTrip(t *testing.T) {
	cases := []Literal{
		NatLit(big.NewInt(0)),
		NatLit(new(big.Int).Lsh(big.NewInt(1), 200)),
		IntLit(big.NewInt(-42)),
		FixedLit(TagU8, big.NewInt(255)),
		FixedLit(TagI8, big.NewInt(-128)),
		FixedLit(TagU128, new(big.Int).Lsh(big.NewInt(1), 127)),
		BitsLit([]bool{true, false, true}),
		BytesLit([]byte{0x12, 0x34}),
		TextLit("hello, 世界"),
		CharLit('λ'),
		BoolLit(true),
		BoolLit(false),
	}
	for _, l := range cases {
		t.Run(l.Tag.String(), func(t *testing.T) {
			n := l.ToIPLD()
			back, err := FromIPLD(n)
			if err != nil {
				t.Fatalf("FromIPLD: %v", err)
			}
			if !l.Equal(back) {
				t.Fatalf("round-trip mismatch: %#v != %#v", l, back)
			}
		})
	}
}

func TestIntegerPayloadIsBignumNotString(t *testing.T) {
	huge := NatLit(new(big.Int).Lsh(big.NewInt(1), 200))
	xs, ok := huge.ToIPLD().AsList()
	if !ok || len(xs) != 3 {
		t.Fatalf("expected a 3-element list")
	}
	if _, ok := xs[2].AsBigInt(); !ok {
		t.Fatalf("expected the integer payload to be an ipldv bignum node, got %#v", xs[2])
	}
	if xs[2].Kind == ipldv.KindString {
		t.Fatalf("integer payload must not be encoded as a string")
	}
}

func TestPrimTypeIPLDRoundTrip(t *testing.T) {
	for tag := TagNat; tag <= TagI128; tag++ {
		p := PrimType{Tag: tag}
		back, err := PrimTypeFromIPLD(p.ToIPLD())
		if err != nil {
			t.Fatalf("FromIPLD(%v): %v", tag, err)
		}
		if back != p {
			t.Fatalf("round-trip mismatch for %v: got %v", tag, back)
		}
	}
}

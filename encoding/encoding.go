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

// Package encoding is the canonical DAG-CBOR codec between ipldv.Node
// and bytes. It is the one place the core imports a CBOR library; every
// other package only ever produces or consumes ipldv.Node.
package encoding

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/ipldv"
)

// linkTag is the CBOR tag IPLD uses for links (CIDs); it is emitted as
// tag 42 wrapping a byte string, the convention dag-cbor uses so that a
// link can be told apart from an ordinary byte string.
const linkTag = 42

// Tags 2 and 3 are RFC 7049's bignum tags: tag 2 wraps the big-endian
// magnitude of a non-negative integer, tag 3 the magnitude of -1-n for a
// negative one.
const (
	bignumPosTag = 2
	bignumNegTag = 3
)

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	opts := cbor.CanonicalEncOptions()
	m, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("encoding: bad canonical encode options: %v", err))
	}
	encMode = m

	dopts := cbor.DecOptions{}
	dm, err := dopts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("encoding: bad decode options: %v", err))
	}
	decMode = dm
}

// wire is the intermediate shape handed to the cbor library: Node is not
// itself cbor-tagged, so Encode/Decode translate Node <-> a tree of
// plain Go values (map[string]any, []any, []byte, string, int64, bool,
// nil, cbor.Tag) that the library already knows how to canonicalize.
func toWire(n ipldv.Node) any {
	switch n.Kind {
	case ipldv.KindNull:
		return nil
	case ipldv.KindBool:
		return n.Bool
	case ipldv.KindInt:
		return n.Int
	case ipldv.KindBigInt:
		return bignumTag(n.BigInt)
	case ipldv.KindBytes:
		return n.Bytes
	case ipldv.KindString:
		return n.String
	case ipldv.KindList:
		xs := make([]any, len(n.List))
		for i, c := range n.List {
			xs[i] = toWire(c)
		}
		return xs
	case ipldv.KindMap:
		// cbor.CanonicalEncOptions sorts map keys for us, so a Go map is
		// fine here even though Node.Map preserves insertion order for
		// callers that care (e.g. Index, whose list-of-pairs shape does
		// not go through KindMap at all).
		m := make(map[string]any, len(n.Map))
		for _, e := range n.Map {
			m[e.Key] = toWire(e.Value)
		}
		return m
	case ipldv.KindLink:
		return cbor.Tag{Number: linkTag, Content: n.Link.Bytes()}
	default:
		panic(fmt.Sprintf("encoding: unknown ipldv.Kind %d", n.Kind))
	}
}

// bignumTag wraps v's magnitude as an RFC 7049 bignum, tag 2 or 3
// depending on sign, per spec.md's integer literal payload shape.
func bignumTag(v *big.Int) cbor.Tag {
	if v.Sign() < 0 {
		// Tag 3 encodes -1-n, not n itself, so it can represent the
		// magnitude of a negative number whose absolute value is one
		// more than what the positive encoding could otherwise express
		// with the same byte length.
		n := new(big.Int).Neg(v)
		n.Sub(n, big.NewInt(1))
		return cbor.Tag{Number: bignumNegTag, Content: n.Bytes()}
	}
	return cbor.Tag{Number: bignumPosTag, Content: v.Bytes()}
}

func bignumFromTag(t cbor.Tag) (*big.Int, error) {
	raw, ok := t.Content.([]byte)
	if !ok {
		return nil, fmt.Errorf("encoding: bignum tag content is not bytes")
	}
	v := new(big.Int).SetBytes(raw)
	if t.Number == bignumNegTag {
		v.Add(v, big.NewInt(1))
		v.Neg(v)
	}
	return v, nil
}

func fromWire(v any) (ipldv.Node, error) {
	switch x := v.(type) {
	case nil:
		return ipldv.Null(), nil
	case bool:
		return ipldv.Bool(x), nil
	case int64:
		return ipldv.Int(x), nil
	case uint64:
		return ipldv.Int(int64(x)), nil
	case []byte:
		return ipldv.Bytes(x), nil
	case string:
		return ipldv.String(x), nil
	case big.Int:
		// The cbor library decodes tags 2 and 3 into big.Int itself.
		return ipldv.BigInt(new(big.Int).Set(&x)), nil
	case *big.Int:
		return ipldv.BigInt(x), nil
	case []any:
		xs := make([]ipldv.Node, len(x))
		for i, c := range x {
			cn, err := fromWire(c)
			if err != nil {
				return ipldv.Node{}, err
			}
			xs[i] = cn
		}
		return ipldv.List(xs...), nil
	case map[any]any:
		es := make([]ipldv.MapEntry, 0, len(x))
		for k, val := range x {
			ks, ok := k.(string)
			if !ok {
				return ipldv.Node{}, fmt.Errorf("encoding: non-string map key %v", k)
			}
			vn, err := fromWire(val)
			if err != nil {
				return ipldv.Node{}, err
			}
			es = append(es, ipldv.Entry(ks, vn))
		}
		return ipldv.Map(es...), nil
	case cbor.Tag:
		switch x.Number {
		case linkTag:
			raw, ok := x.Content.([]byte)
			if !ok {
				return ipldv.Node{}, fmt.Errorf("encoding: link tag content is not bytes")
			}
			c, n, err := cid.FromBytes(raw)
			if err != nil {
				return ipldv.Node{}, fmt.Errorf("encoding: bad link: %w", err)
			}
			if n != len(raw) {
				return ipldv.Node{}, fmt.Errorf("encoding: trailing bytes in link")
			}
			return ipldv.Link(c), nil
		case bignumPosTag, bignumNegTag:
			v, err := bignumFromTag(x)
			if err != nil {
				return ipldv.Node{}, err
			}
			return ipldv.BigInt(v), nil
		default:
			return ipldv.Node{}, fmt.Errorf("encoding: unsupported cbor tag %d", x.Number)
		}
	default:
		return ipldv.Node{}, fmt.Errorf("encoding: unrecognized wire value %T", v)
	}
}

// Encode serializes n to canonical DAG-CBOR bytes.
func Encode(n ipldv.Node) ([]byte, error) {
	return encMode.Marshal(toWire(n))
}

// Decode parses canonical DAG-CBOR bytes back to a Node. Decode is
// total: any deviation from the expected shapes is an explicit error,
// never a panic.
func Decode(b []byte) (ipldv.Node, error) {
	var v any
	if err := decMode.Unmarshal(b, &v); err != nil {
		return ipldv.Node{}, fmt.Errorf("encoding: %w", err)
	}
	return fromWire(v)
}

// DeriveCID encodes n and derives its CID in one step.
func DeriveCID(n ipldv.Node) (cid.CID, []byte, error) {
	b, err := Encode(n)
	if err != nil {
		return cid.CID{}, nil, err
	}
	return cid.Derive(b), b, nil
}

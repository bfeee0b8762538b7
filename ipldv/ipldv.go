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

// Package ipldv is the canonical IPLD-shaped value model every core type
// projects itself to and from. It is the only vocabulary the encoding
// package understands: null, bool, int, bignum, bytes, string, list, map
// (with string keys), and link (CID). No core type touches CBOR
// directly.
package ipldv

import (
	"math/big"

	"github.com/yatima-lang/yatima/cid"
)

// Kind discriminates the variants of Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindBigInt
	KindBytes
	KindString
	KindList
	KindMap
	KindLink
)

// Node is a single IPLD data-model value. Exactly one field is
// meaningful per Kind; construct via the helper functions below rather
// than a literal.
type Node struct {
	Kind   Kind
	Bool   bool
	Int    int64
	BigInt *big.Int
	Bytes  []byte
	String string
	List   []Node
	Map    []MapEntry
	Link   cid.CID
}

// MapEntry is one key/value pair of a Node with Kind == KindMap. Map
// entries preserve insertion order; encode canonicalizes key order.
type MapEntry struct {
	Key   string
	Value Node
}

func Null() Node              { return Node{Kind: KindNull} }
func Bool(b bool) Node        { return Node{Kind: KindBool, Bool: b} }
func Int(i int64) Node        { return Node{Kind: KindInt, Int: i} }
func BigInt(v *big.Int) Node  { return Node{Kind: KindBigInt, BigInt: v} }
func Bytes(b []byte) Node     { return Node{Kind: KindBytes, Bytes: b} }
func String(s string) Node    { return Node{Kind: KindString, String: s} }
func List(xs ...Node) Node    { return Node{Kind: KindList, List: xs} }
func Link(c cid.CID) Node     { return Node{Kind: KindLink, Link: c} }
func Map(es ...MapEntry) Node { return Node{Kind: KindMap, Map: es} }

// Entry constructs a MapEntry; a small convenience for building Map nodes.
func Entry(key string, value Node) MapEntry { return MapEntry{Key: key, Value: value} }

// IsNull reports whether n is the null node.
func (n Node) IsNull() bool { return n.Kind == KindNull }

// AsList returns n.List and true if n is a list node, else nil, false.
func (n Node) AsList() ([]Node, bool) {
	if n.Kind != KindList {
		return nil, false
	}
	return n.List, true
}

// AsString returns n.String and true if n is a string node.
func (n Node) AsString() (string, bool) {
	if n.Kind != KindString {
		return "", false
	}
	return n.String, true
}

// AsLink returns n.Link and true if n is a link node.
func (n Node) AsLink() (cid.CID, bool) {
	if n.Kind != KindLink {
		return cid.CID{}, false
	}
	return n.Link, true
}

// AsInt returns n.Int and true if n is an int node.
func (n Node) AsInt() (int64, bool) {
	if n.Kind != KindInt {
		return 0, false
	}
	return n.Int, true
}

// AsBigInt returns n.BigInt and true if n is a bignum node.
func (n Node) AsBigInt() (*big.Int, bool) {
	if n.Kind != KindBigInt {
		return nil, false
	}
	return n.BigInt, true
}

// AsBytes returns n.Bytes and true if n is a bytes node.
func (n Node) AsBytes() ([]byte, bool) {
	if n.Kind != KindBytes {
		return nil, false
	}
	return n.Bytes, true
}

// AsBool returns n.Bool and true if n is a bool node.
func (n Node) AsBool() (bool, bool) {
	if n.Kind != KindBool {
		return false, false
	}
	return n.Bool, true
}

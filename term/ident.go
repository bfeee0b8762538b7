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

// Package term holds the authoritative syntactic representation: Name,
// Position, Uses, and the Term AST itself. Term is what the parser
// produces and what hashing/evaluation consume.
package term

import (
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/errs"
	"github.com/yatima-lang/yatima/ipldv"
)

// Name is an immutable Unicode identifier. The empty string is permitted
// only for anonymous binders (e.g. "_" written as "").
type Name string

// reserved holds the punctuation a Name may never contain; the parser is
// out of scope, but the core still enforces this so a decoded Name can't
// silently carry syntax that would be unparseable.
var reserved = map[rune]bool{
	'(': true, ')': true, '{': true, '}': true,
	':': true, ';': true, ',': true,
	'λ': true, '∀': true, '=': true,
}

// Valid reports whether n contains no reserved punctuation.
func (n Name) Valid() bool {
	for _, r := range string(n) {
		if reserved[r] {
			return false
		}
	}
	return true
}

// Position is either None, or a source span naming the input text's CID.
type Position struct {
	set    bool
	From   uint64
	Upto   uint64
	Input  cid.CID
}

// NoPos is the absent position.
var NoPos = Position{}

// Pos constructs a present position.
func Pos(from, upto uint64, input cid.CID) Position {
	return Position{set: true, From: from, Upto: upto, Input: input}
}

// IsNone reports whether p carries no span.
func (p Position) IsNone() bool { return !p.set }

// ToIPLD projects p to the canonical shape: Pos.None -> [], Pos.Some ->
// [from, upto, link(input)].
func (p Position) ToIPLD() ipldv.Node {
	if !p.set {
		return ipldv.List()
	}
	return ipldv.List(
		ipldv.Int(int64(p.From)),
		ipldv.Int(int64(p.Upto)),
		ipldv.Link(p.Input),
	)
}

// PositionFromIPLD parses the shape ToIPLD produces.
func PositionFromIPLD(n ipldv.Node) (Position, error) {
	xs, ok := n.AsList()
	if !ok {
		return Position{}, errs.New(errs.InvalidShape, "position: expected a list, got %v", n.Kind)
	}
	switch len(xs) {
	case 0:
		return NoPos, nil
	case 3:
		from, ok := xs[0].AsInt()
		if !ok {
			return Position{}, errs.New(errs.InvalidShape, "position: from is not an int")
		}
		upto, ok := xs[1].AsInt()
		if !ok {
			return Position{}, errs.New(errs.InvalidShape, "position: upto is not an int")
		}
		input, ok := xs[2].AsLink()
		if !ok {
			return Position{}, errs.New(errs.InvalidShape, "position: input is not a link")
		}
		return Pos(uint64(from), uint64(upto), input), nil
	default:
		return Position{}, errs.New(errs.InvalidShape, "position: expected 0 or 3 elements, got %d", len(xs))
	}
}

// Uses is the linearity annotation on a function domain or let-binding.
type Uses int

const (
	UsesNone Uses = iota
	UsesAffine
	UsesOnce
	UsesMany
)

func (u Uses) String() string {
	switch u {
	case UsesNone:
		return "none"
	case UsesAffine:
		return "affine"
	case UsesOnce:
		return "once"
	case UsesMany:
		return "many"
	default:
		return "invalid"
	}
}

// Join computes the least upper bound of two Uses under the lattice
// none < affine < once < many, for summarizing how a variable was
// actually consumed irrespective of how its binder was annotated.
func (u Uses) Join(v Uses) Uses {
	if u > v {
		return u
	}
	return v
}

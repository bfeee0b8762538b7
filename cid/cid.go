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

// Package cid implements the content identifiers used to bind terms and
// package entries to their canonical encoding. Every CID in this core is
// version 1, codec 0x71 (dag-cbor), multihash Blake2b-256 — no other
// codec or hash algorithm is ever produced, though Bytes/FromBytes use
// the general multibase-free varint framing so a foreign CID at least
// decodes without panicking.
package cid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DagCBOR is the only codec this core produces.
const DagCBOR uint64 = 0x71

// Blake2b256 is the only multihash function this core produces.
const Blake2b256 uint64 = 0xb220

// CID is a self-describing hash: a codec tag, a multihash function tag,
// and a digest. Two CIDs are equal iff all three fields match. The
// digest is held as a string of raw bytes so that CID is comparable and
// can key a map.
type CID struct {
	Codec  uint64
	MHType uint64
	Digest string
}

// Empty reports whether c is the zero CID (no digest).
func (c CID) Empty() bool { return len(c.Digest) == 0 }

// Equal reports structural equality.
func (c CID) Equal(o CID) bool {
	if c.Codec != o.Codec || c.MHType != o.MHType || len(c.Digest) != len(o.Digest) {
		return false
	}
	for i := range c.Digest {
		if c.Digest[i] != o.Digest[i] {
			return false
		}
	}
	return true
}

// Derive computes the CID of an already-encoded block: v1, codec = 0x71,
// multihash = Blake2b-256(bytes). This is the sole construction path used
// by the rest of the core; CIDs are never synthesized from their own
// payload (content-address discipline, spec.md §4.3).
func Derive(encoded []byte) CID {
	sum := blake2b.Sum256(encoded)
	return CID{Codec: DagCBOR, MHType: Blake2b256, Digest: string(sum[:])}
}

// Bytes returns the binary multihash-prefixed form: varint(codec) ||
// varint(mh-type) || varint(len(digest)) || digest.
func (c CID) Bytes() []byte {
	buf := make([]byte, 0, 2+binary.MaxVarintLen64*3+len(c.Digest))
	buf = appendUvarint(buf, c.Codec)
	buf = appendUvarint(buf, c.MHType)
	buf = appendUvarint(buf, uint64(len(c.Digest)))
	buf = append(buf, c.Digest...)
	return buf
}

// FromBytes parses the form produced by Bytes.
func FromBytes(b []byte) (CID, int, error) {
	codec, n1 := binary.Uvarint(b)
	if n1 <= 0 {
		return CID{}, 0, fmt.Errorf("cid: truncated codec varint")
	}
	b = b[n1:]
	mhType, n2 := binary.Uvarint(b)
	if n2 <= 0 {
		return CID{}, 0, fmt.Errorf("cid: truncated multihash-type varint")
	}
	b = b[n2:]
	length, n3 := binary.Uvarint(b)
	if n3 <= 0 {
		return CID{}, 0, fmt.Errorf("cid: truncated digest-length varint")
	}
	b = b[n3:]
	if uint64(len(b)) < length {
		return CID{}, 0, fmt.Errorf("cid: truncated digest")
	}
	digest := string(b[:length])
	total := n1 + n2 + n3 + int(length)
	return CID{Codec: codec, MHType: mhType, Digest: digest}, total, nil
}

// String renders a debug form ("bafy"-style prefixes are not
// implemented; this core has no multibase requirement since it never
// round-trips CIDs through text).
func (c CID) String() string {
	return fmt.Sprintf("cid:%x:%x:%s", c.Codec, c.MHType, hex.EncodeToString([]byte(c.Digest)))
}

func appendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}

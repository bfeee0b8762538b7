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

package pkg

import (
	"github.com/yatima-lang/yatima/cid"
	"github.com/yatima-lang/yatima/encoding"
)

// CID derives e's content address from its canonical encoding. Two
// entries with identical fields always derive the same CID regardless
// of construction order, since the encoding is canonical DAG-CBOR.
func (e Entry) CID() (cid.CID, error) {
	c, _, err := encoding.DeriveCID(e.ToIPLD())
	return c, err
}

// CID derives p's content address from its canonical encoding.
func (p Package) CID() (cid.CID, error) {
	c, _, err := encoding.DeriveCID(p.ToIPLD())
	return c, err
}

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

package defs

import (
	"context"

	"github.com/yatima-lang/yatima/cid"
)

// Store is the one capability the loader needs from the outside world:
// a synchronous-from-the-caller's-perspective content-addressed block
// fetch. Its concrete transport (filesystem, IPFS, in-memory) lives
// entirely outside the core.
type Store interface {
	Get(ctx context.Context, c cid.CID) ([]byte, error)
}

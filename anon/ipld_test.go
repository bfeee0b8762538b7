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

package anon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yatima-lang/yatima/term"
)

func TestAnonIPLDRoundTrip(t *testing.T) {
	for name, orig := range map[string]term.Term{
		"ident":     identTerm(),
		"let-typed": selfNatPair(),
	} {
		t.Run(name, func(t *testing.T) {
			a, m := Split(orig)
			n := ToIPLD(a)
			back, err := FromIPLD(n)
			if err != nil {
				t.Fatalf("FromIPLD: %v", err)
			}
			if diff := cmp.Diff(a, back, anonUnexported, bigIntComparer); diff != "" {
				t.Errorf("anon IPLD round-trip mismatch (-want +got):\n%s", diff)
			}

			mn := m.ToIPLD()
			mBack, err := MetaFromIPLD(mn)
			if err != nil {
				t.Fatalf("MetaFromIPLD: %v", err)
			}
			if diff := cmp.Diff(m, mBack, cmp.AllowUnexported(term.Position{})); diff != "" {
				t.Errorf("meta IPLD round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

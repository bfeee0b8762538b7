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

// Package errs collects the typed error kinds shared across the core.
package errs

import "fmt"

// Kind identifies which decode or environment failure occurred, so
// callers can branch on it without string matching.
type Kind int

const (
	_ Kind = iota
	InvalidShape
	UnknownTag
	NatOp
	MetaMismatch
	NameMissing
	DuplicateName
	UnresolvedRef
	InvariantViolated
)

func (k Kind) String() string {
	switch k {
	case InvalidShape:
		return "InvalidShape"
	case UnknownTag:
		return "UnknownTag"
	case NatOp:
		return "NatOp"
	case MetaMismatch:
		return "MetaMismatch"
	case NameMissing:
		return "NameMissing"
	case DuplicateName:
		return "DuplicateName"
	case UnresolvedRef:
		return "UnresolvedRef"
	case InvariantViolated:
		return "InvariantViolated"
	default:
		return "Unknown"
	}
}

// DecodeError wraps a Kind with a human-readable detail string. Decoders
// never panic; every deviation from the canonical shapes is returned as
// a *DecodeError.
type DecodeError struct {
	Kind   Kind
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("yatima: %s: %s", e.Kind, e.Detail)
}

// New builds a *DecodeError with the given kind and formatted detail.
func New(kind Kind, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// invariantPanic is the concrete type recovered at exported API
// boundaries that convert a programmer-error invariant break into a
// *DecodeError{Kind: InvariantViolated} rather than letting it escape as
// a panic.
type invariantPanic struct{ detail string }

// Violate signals a broken structural invariant (e.g. a free de Bruijn
// index, a Rec outside a recursive Let). Unlike decode/environment
// errors, this is a programmer error: callers should not expect to
// recover from it gracefully, but it is still surfaced as a typed panic
// value rather than corrupting evaluator state.
func Violate(format string, args ...any) {
	panic(invariantPanic{detail: fmt.Sprintf(format, args...)})
}

// Recover converts a panic raised by Violate into a *DecodeError with
// Kind == InvariantViolated, assigning *err. It is a no-op if no panic
// occurred or if the panic is not one raised by Violate (such panics
// propagate unchanged).
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ip, ok := r.(invariantPanic)
	if !ok {
		panic(r)
	}
	*err = &DecodeError{Kind: InvariantViolated, Detail: ip.detail}
}

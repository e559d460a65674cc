// Copyright 2025 go-highway Authors
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

package simd

// MaskOps is the set of primitives a backend provides for its mask storage M.
type MaskOps[M any] interface {
	// MaskBroadcast returns a mask with every lane set to v.
	MaskBroadcast(v bool) M

	// MaskExtract returns lane i. The caller guarantees i < Lanes().
	MaskExtract(m M, i int) bool

	Not(m M) M
	And(a, b M) M
	Or(a, b M) M

	AllOf(m M) bool
	AnyOf(m M) bool
	NoneOf(m M) bool
}

// Backend is the contract every vector backend satisfies. T is the lane
// type, D the physical storage of a vector of T and M the physical storage
// of a mask.
//
// Backends are zero-size types; Vec and Mask call them through the zero
// value of their type parameter, so there is no dynamic dispatch. None of
// the primitives check lane indices, slice lengths or alignment: Vec and
// Mask do that before calling in.
type Backend[T Lanes, D, M any] interface {
	MaskOps[M]

	// Lanes returns the number of lanes in D.
	Lanes() int

	// Alignment returns the byte alignment required by LoadAligned and
	// StoreAligned.
	Alignment() uintptr

	Broadcast(v T) D

	// Load reads Lanes() elements from src without any alignment
	// assumption. LoadAligned may assume src starts at an address that is a
	// multiple of Alignment().
	Load(src []T) D
	LoadAligned(src []T) D

	// Store writes Lanes() elements to dst. StoreAligned has the same
	// alignment assumption as LoadAligned.
	Store(dst []T, v D)
	StoreAligned(dst []T, v D)

	// Extract returns lane i. The caller guarantees i < Lanes().
	Extract(v D, i int) T

	Add(a, b D) D
	Sub(a, b D) D
	Mul(a, b D) D
	Div(a, b D) D
	Neg(v D) D

	Equal(a, b D) M
	NotEqual(a, b D) M
	Less(a, b D) M
	LessEqual(a, b D) M
	Greater(a, b D) M
	GreaterEqual(a, b D) M

	// Min returns b where b < a and a otherwise, so a is returned whenever
	// either operand is NaN. Max returns b where a < b and a otherwise.
	Min(a, b D) D
	Max(a, b D) D

	// Blend returns b in lanes where m is set and a elsewhere.
	Blend(a, b D, m M) D
}

// Quad is implemented by backends that are exactly four lanes wide. Only
// those can build vectors and masks from four literal lanes; asking for it
// on any other width is a compile error.
type Quad[T Lanes, D, M any] interface {
	Backend[T, D, M]

	Init(w, x, y, z T) D
	MaskInit(w, x, y, z bool) M
}

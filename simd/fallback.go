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

import "unsafe"

// This file provides the portable backend. Every primitive is an explicit
// loop over a fixed-size array, so it works for any lane type and any of the
// supported widths, on every architecture.

// Array is the set of storage types the portable backend can use: a Go
// array of 1, 2, 4, 8 or 16 elements of E.
type Array[E any] interface {
	~[1]E | ~[2]E | ~[4]E | ~[8]E | ~[16]E
}

// Emulated is the portable backend over data storage D and mask storage M.
// D and M must have the same length; the FallbackN types below fix both.
type Emulated[T Lanes, D Array[T], M Array[bool]] struct{}

// Lanes returns len(D).
func (Emulated[T, D, M]) Lanes() int {
	var d D
	return len(d)
}

// Alignment returns the size of D, matching the alignment a hardware
// register of the same width would need.
func (Emulated[T, D, M]) Alignment() uintptr {
	var d D
	return unsafe.Sizeof(d)
}

func (Emulated[T, D, M]) Broadcast(v T) D {
	var r D
	for i := range len(r) {
		r[i] = v
	}
	return r
}

func (Emulated[T, D, M]) Load(src []T) D {
	var r D
	for i := range len(r) {
		r[i] = src[i]
	}
	return r
}

// LoadAligned is Load: Go arrays have no faster aligned path.
func (e Emulated[T, D, M]) LoadAligned(src []T) D {
	return e.Load(src)
}

func (Emulated[T, D, M]) Store(dst []T, v D) {
	for i := range len(v) {
		dst[i] = v[i]
	}
}

func (e Emulated[T, D, M]) StoreAligned(dst []T, v D) {
	e.Store(dst, v)
}

func (Emulated[T, D, M]) Extract(v D, i int) T {
	return v[i]
}

func (Emulated[T, D, M]) Add(a, b D) D {
	var r D
	for i := range len(r) {
		r[i] = a[i] + b[i]
	}
	return r
}

func (Emulated[T, D, M]) Sub(a, b D) D {
	var r D
	for i := range len(r) {
		r[i] = a[i] - b[i]
	}
	return r
}

func (Emulated[T, D, M]) Mul(a, b D) D {
	var r D
	for i := range len(r) {
		r[i] = a[i] * b[i]
	}
	return r
}

func (Emulated[T, D, M]) Div(a, b D) D {
	var r D
	for i := range len(r) {
		r[i] = a[i] / b[i]
	}
	return r
}

func (Emulated[T, D, M]) Neg(v D) D {
	var r D
	for i := range len(r) {
		r[i] = -v[i]
	}
	return r
}

func (Emulated[T, D, M]) Equal(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] == b[i]
	}
	return r
}

func (Emulated[T, D, M]) NotEqual(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] != b[i]
	}
	return r
}

func (Emulated[T, D, M]) Less(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] < b[i]
	}
	return r
}

func (Emulated[T, D, M]) LessEqual(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] <= b[i]
	}
	return r
}

func (Emulated[T, D, M]) Greater(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] > b[i]
	}
	return r
}

func (Emulated[T, D, M]) GreaterEqual(a, b D) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] >= b[i]
	}
	return r
}

// Min keeps a unless b is strictly smaller. The builtin min is not used
// because it propagates NaN from either side.
func (Emulated[T, D, M]) Min(a, b D) D {
	r := a
	for i := range len(r) {
		if b[i] < a[i] {
			r[i] = b[i]
		}
	}
	return r
}

func (Emulated[T, D, M]) Max(a, b D) D {
	r := a
	for i := range len(r) {
		if a[i] < b[i] {
			r[i] = b[i]
		}
	}
	return r
}

func (Emulated[T, D, M]) Blend(a, b D, m M) D {
	r := a
	for i := range len(r) {
		if m[i] {
			r[i] = b[i]
		}
	}
	return r
}

func (Emulated[T, D, M]) MaskBroadcast(v bool) M {
	var r M
	for i := range len(r) {
		r[i] = v
	}
	return r
}

func (Emulated[T, D, M]) MaskExtract(m M, i int) bool {
	return m[i]
}

func (Emulated[T, D, M]) Not(m M) M {
	var r M
	for i := range len(r) {
		r[i] = !m[i]
	}
	return r
}

func (Emulated[T, D, M]) And(a, b M) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] && b[i]
	}
	return r
}

func (Emulated[T, D, M]) Or(a, b M) M {
	var r M
	for i := range len(r) {
		r[i] = a[i] || b[i]
	}
	return r
}

func (Emulated[T, D, M]) AllOf(m M) bool {
	for i := range len(m) {
		if !m[i] {
			return false
		}
	}
	return true
}

func (Emulated[T, D, M]) AnyOf(m M) bool {
	for i := range len(m) {
		if m[i] {
			return true
		}
	}
	return false
}

func (Emulated[T, D, M]) NoneOf(m M) bool {
	for i := range len(m) {
		if m[i] {
			return false
		}
	}
	return true
}

// Fallback1 is the portable backend with a single lane.
type Fallback1[T Lanes] struct {
	Emulated[T, [1]T, [1]bool]
}

// Fallback2 is the portable backend with 2 lanes.
type Fallback2[T Lanes] struct {
	Emulated[T, [2]T, [2]bool]
}

// Fallback4 is the portable backend with 4 lanes. It is the only portable
// width that supports four-literal construction.
type Fallback4[T Lanes] struct {
	Emulated[T, [4]T, [4]bool]
}

func (Fallback4[T]) Init(w, x, y, z T) [4]T {
	return [4]T{w, x, y, z}
}

func (Fallback4[T]) MaskInit(w, x, y, z bool) [4]bool {
	return [4]bool{w, x, y, z}
}

// Fallback8 is the portable backend with 8 lanes.
type Fallback8[T Lanes] struct {
	Emulated[T, [8]T, [8]bool]
}

// Fallback16 is the portable backend with 16 lanes.
type Fallback16[T Lanes] struct {
	Emulated[T, [16]T, [16]bool]
}

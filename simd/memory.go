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

// This file provides the memory helpers that sit next to CopyFrom/CopyTo:
// building buffers that satisfy VectorAligned, checking addresses, and a
// masked store.

// IsAlignedPtr reports whether the first element of s sits at an address
// that is a multiple of align. An empty slice is never aligned.
func IsAlignedPtr[T Lanes](s []T, align uintptr) bool {
	if len(s) == 0 || align == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%align == 0
}

// AlignedSlice returns a slice of n elements whose first element is aligned
// to align bytes, which must be a power of two no smaller than the size of
// T. The backing array is over-allocated by up to align bytes.
func AlignedSlice[T Lanes](n int, align uintptr) []T {
	var zero T
	size := unsafe.Sizeof(zero)
	if align < size || align&(align-1) != 0 {
		panic(ConditionViolated{})
	}
	extra := int(align / size)
	buf := make([]T, n+extra)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := addr % align; rem != 0 {
		off = int((align - rem) / size)
	}
	return buf[off : off+n : off+n]
}

// BlendedStore writes the lanes of v where mask is set to dst and leaves
// the other elements of dst untouched. dst must hold at least NumLanes()
// elements.
func BlendedStore[T Lanes, D, M any, B Backend[T, D, M]](v Vec[T, D, M, B], mask Mask[T, D, M, B], dst []T) {
	var b B
	ensure(len(dst) >= b.Lanes())
	cur := b.Load(dst)
	b.Store(dst, b.Blend(cur, v.raw, mask.raw))
}

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

// Package simd provides fixed-width data-parallel vector types whose
// element-wise operations are carried out by a backend chosen at build time.
//
// A backend supplies the physical storage for a vector of lanes and for a
// vector of booleans, plus the primitive operations on them. Vec and Mask are
// thin value types over that storage, so the same numeric code runs on the
// hardware 128-bit backend (amd64 built with GOEXPERIMENT=simd) or on the
// portable per-lane emulation everywhere else.
//
// Basic usage:
//
//	import "github.com/go-highway/parallelism/simd"
//
//	a := simd.Float32x4Of(1, 2, 3, 4)
//	b := simd.BroadcastFloat32x4(10)
//	sum := a.Add(b)
//
//	// Predicated update: only lanes where a > 2 are scaled.
//	simd.Where(a.Greater(simd.BroadcastFloat32x4(2)), &sum).MulAssign(b)
//
//	out := make([]float32, 4)
//	sum.CopyTo(out, simd.ElementAligned{})
//
// Contract violations (out of range lane index, short or misaligned buffer,
// inverted clamp interval) panic with ConditionViolated. NaN, infinities and
// signed zeros are ordinary values and follow IEEE-754 exactly.
package simd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a fixed-width vector of T whose storage and primitives come from
// the backend B.
//
// Vec is a plain value: copying it copies the lanes. The zero value is the
// equivalent of an uninitialized vector; its lanes are unspecified and
// should be written before they are read. Use Broadcast, FromValues, Load or
// FromRaw to build one.
type Vec[T Lanes, D, M any, B Backend[T, D, M]] struct {
	raw D
}

// Mask is a fixed-width vector of booleans produced by comparing two
// Vec[T, D, M, B] values. It is only usable with that Vec type.
//
// Like Vec, the zero value has unspecified lanes.
type Mask[T Lanes, D, M any, B Backend[T, D, M]] struct {
	raw M
}

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

// Broadcast returns a vector with every lane set to v.
func Broadcast[T Lanes, D, M any, B Backend[T, D, M]](v T) Vec[T, D, M, B] {
	var b B
	return Vec[T, D, M, B]{raw: b.Broadcast(v)}
}

// FromValues returns the vector {w, x, y, z}. It is only available for
// 4-lane backends.
func FromValues[T Lanes, D, M any, B Quad[T, D, M]](w, x, y, z T) Vec[T, D, M, B] {
	var b B
	return Vec[T, D, M, B]{raw: b.Init(w, x, y, z)}
}

// FromRaw wraps backend storage in a Vec without copying lanes.
func FromRaw[T Lanes, D, M any, B Backend[T, D, M]](raw D) Vec[T, D, M, B] {
	return Vec[T, D, M, B]{raw: raw}
}

// Load returns a vector read from the start of src, see Vec.CopyFrom.
func Load[T Lanes, D, M any, B Backend[T, D, M]](src []T, flag Flag) Vec[T, D, M, B] {
	var v Vec[T, D, M, B]
	v.CopyFrom(src, flag)
	return v
}

// NumLanes returns the number of lanes, fixed by the backend.
func (Vec[T, D, M, B]) NumLanes() int {
	var b B
	return b.Lanes()
}

// Alignment returns the byte alignment VectorAligned requires for this
// vector type.
func (Vec[T, D, M, B]) Alignment() uintptr {
	var b B
	return b.Alignment()
}

// Raw returns the backend storage, for passing the value to code that works
// on the native register type directly.
func (v Vec[T, D, M, B]) Raw() D {
	return v.raw
}

// CopyFrom replaces the lanes of v with the first NumLanes() elements of
// src. src shorter than NumLanes() panics with ConditionViolated, and so does
// a src that does not start at a multiple of Alignment() when flag is
// VectorAligned. A nil flag panics with ConditionViolated.
func (v *Vec[T, D, M, B]) CopyFrom(src []T, flag Flag) {
	var b B
	ensure(len(src) >= b.Lanes())
	switch flag.(type) {
	case VectorAligned:
		ensure(IsAlignedPtr(src, b.Alignment()))
		v.raw = b.LoadAligned(src)
	case ElementAligned:
		v.raw = b.Load(src)
	default:
		ensure(false)
	}
}

// CopyTo writes the lanes of v to the first NumLanes() elements of dst,
// with the same preconditions as CopyFrom.
func (v Vec[T, D, M, B]) CopyTo(dst []T, flag Flag) {
	var b B
	ensure(len(dst) >= b.Lanes())
	switch flag.(type) {
	case VectorAligned:
		ensure(IsAlignedPtr(dst, b.Alignment()))
		b.StoreAligned(dst, v.raw)
	case ElementAligned:
		b.Store(dst, v.raw)
	default:
		ensure(false)
	}
}

// Get returns lane i. i outside [0, NumLanes()) panics with
// ConditionViolated.
func (v Vec[T, D, M, B]) Get(i int) T {
	var b B
	checkIndex(i, b.Lanes())
	return b.Extract(v.raw, i)
}

// Neg returns -v. Zeros and infinities change sign, NaN stays NaN.
func (v Vec[T, D, M, B]) Neg() Vec[T, D, M, B] {
	var b B
	return Vec[T, D, M, B]{raw: b.Neg(v.raw)}
}

// AddAssign sets v to v + o.
func (v *Vec[T, D, M, B]) AddAssign(o Vec[T, D, M, B]) {
	var b B
	v.raw = b.Add(v.raw, o.raw)
}

// SubAssign sets v to v - o.
func (v *Vec[T, D, M, B]) SubAssign(o Vec[T, D, M, B]) {
	var b B
	v.raw = b.Sub(v.raw, o.raw)
}

// MulAssign sets v to v * o.
func (v *Vec[T, D, M, B]) MulAssign(o Vec[T, D, M, B]) {
	var b B
	v.raw = b.Mul(v.raw, o.raw)
}

// DivAssign sets v to v / o.
func (v *Vec[T, D, M, B]) DivAssign(o Vec[T, D, M, B]) {
	var b B
	v.raw = b.Div(v.raw, o.raw)
}

// Add returns v + o.
func (v Vec[T, D, M, B]) Add(o Vec[T, D, M, B]) Vec[T, D, M, B] {
	v.AddAssign(o)
	return v
}

// Sub returns v - o.
func (v Vec[T, D, M, B]) Sub(o Vec[T, D, M, B]) Vec[T, D, M, B] {
	v.SubAssign(o)
	return v
}

// Mul returns v * o.
func (v Vec[T, D, M, B]) Mul(o Vec[T, D, M, B]) Vec[T, D, M, B] {
	v.MulAssign(o)
	return v
}

// Div returns v / o.
func (v Vec[T, D, M, B]) Div(o Vec[T, D, M, B]) Vec[T, D, M, B] {
	v.DivAssign(o)
	return v
}

// Equal returns the lanes where v == o. NaN lanes are never equal, not
// even to themselves.
func (v Vec[T, D, M, B]) Equal(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.Equal(v.raw, o.raw)}
}

// NotEqual returns the lanes where v != o, including every NaN lane.
func (v Vec[T, D, M, B]) NotEqual(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.NotEqual(v.raw, o.raw)}
}

// Less returns the lanes where v < o.
func (v Vec[T, D, M, B]) Less(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.Less(v.raw, o.raw)}
}

// LessEqual returns the lanes where v <= o.
func (v Vec[T, D, M, B]) LessEqual(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.LessEqual(v.raw, o.raw)}
}

// Greater returns the lanes where v > o.
func (v Vec[T, D, M, B]) Greater(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.Greater(v.raw, o.raw)}
}

// GreaterEqual returns the lanes where v >= o.
func (v Vec[T, D, M, B]) GreaterEqual(o Vec[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.GreaterEqual(v.raw, o.raw)}
}

// Min returns the lane-wise minimum of a and b. A lane takes b only when
// b < a, so a NaN in either operand yields the lane of a.
func Min[T Lanes, D, M any, B Backend[T, D, M]](a, b Vec[T, D, M, B]) Vec[T, D, M, B] {
	var be B
	return Vec[T, D, M, B]{raw: be.Min(a.raw, b.raw)}
}

// Max returns the lane-wise maximum of a and b. A lane takes b only when
// a < b, so a NaN in either operand yields the lane of a.
func Max[T Lanes, D, M any, B Backend[T, D, M]](a, b Vec[T, D, M, B]) Vec[T, D, M, B] {
	var be B
	return Vec[T, D, M, B]{raw: be.Max(a.raw, b.raw)}
}

// Clamp returns lo where v < lo, hi where v > hi and v elsewhere. It is
// computed as Min(Max(v, lo), hi) and that order is part of the contract:
// with the first-operand NaN rule of Min and Max, a NaN lane of v stays NaN.
//
// lo must be <= hi in every lane, otherwise Clamp panics with
// ConditionViolated.
func Clamp[T Lanes, D, M any, B Backend[T, D, M]](v, lo, hi Vec[T, D, M, B]) Vec[T, D, M, B] {
	ensure(AllOf(lo.LessEqual(hi)))
	return Min(Max(v, lo), hi)
}

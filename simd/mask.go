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

// MaskBroadcast returns a mask with every lane set to v.
func MaskBroadcast[T Lanes, D, M any, B Backend[T, D, M]](v bool) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.MaskBroadcast(v)}
}

// MaskOf returns the mask {w, x, y, z}. It is only available for 4-lane
// backends.
func MaskOf[T Lanes, D, M any, B Quad[T, D, M]](w, x, y, z bool) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.MaskInit(w, x, y, z)}
}

// MaskFromRaw wraps backend mask storage in a Mask.
func MaskFromRaw[T Lanes, D, M any, B Backend[T, D, M]](raw M) Mask[T, D, M, B] {
	return Mask[T, D, M, B]{raw: raw}
}

// NumLanes returns the number of lanes in this mask.
func (Mask[T, D, M, B]) NumLanes() int {
	var b B
	return b.Lanes()
}

// Raw returns the backend mask storage.
func (m Mask[T, D, M, B]) Raw() M {
	return m.raw
}

// Get returns whether lane i is set. i outside [0, NumLanes()) panics with
// ConditionViolated.
func (m Mask[T, D, M, B]) Get(i int) bool {
	var b B
	checkIndex(i, b.Lanes())
	return b.MaskExtract(m.raw, i)
}

// Not returns the lane-wise negation of m.
func (m Mask[T, D, M, B]) Not() Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.Not(m.raw)}
}

// And returns the lanes set in both m and o.
func (m Mask[T, D, M, B]) And(o Mask[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.And(m.raw, o.raw)}
}

// Or returns the lanes set in m or o.
func (m Mask[T, D, M, B]) Or(o Mask[T, D, M, B]) Mask[T, D, M, B] {
	var b B
	return Mask[T, D, M, B]{raw: b.Or(m.raw, o.raw)}
}

// AllOf reports whether every lane of m is set.
func AllOf[T Lanes, D, M any, B Backend[T, D, M]](m Mask[T, D, M, B]) bool {
	var b B
	return b.AllOf(m.raw)
}

// AnyOf reports whether at least one lane of m is set.
func AnyOf[T Lanes, D, M any, B Backend[T, D, M]](m Mask[T, D, M, B]) bool {
	var b B
	return b.AnyOf(m.raw)
}

// NoneOf reports whether no lane of m is set.
func NoneOf[T Lanes, D, M any, B Backend[T, D, M]](m Mask[T, D, M, B]) bool {
	var b B
	return b.NoneOf(m.raw)
}

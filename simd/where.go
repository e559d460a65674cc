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

// noCopy may be embedded into structs which must not be copied after first
// use; go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// WhereExpression binds a mask to a vector so that one of its assignment
// methods updates only the selected lanes. Build it with Where and use it
// exactly once, in the same expression:
//
//	simd.Where(v.Less(zero), &v).Assign(zero)
//
// Each method computes the full, unmasked result and blends it into the
// target, so no lane is branched on. A second call panics with
// ConditionViolated.
type WhereExpression[T Lanes, D, M any, B Backend[T, D, M]] struct {
	_      noCopy
	mask   Mask[T, D, M, B]
	target *Vec[T, D, M, B]
	used   bool
}

// Where selects the lanes of *v where m is set for a following assignment.
// The caller must not touch *v through another reference until that
// assignment returns.
func Where[T Lanes, D, M any, B Backend[T, D, M]](m Mask[T, D, M, B], v *Vec[T, D, M, B]) *WhereExpression[T, D, M, B] {
	return &WhereExpression[T, D, M, B]{mask: m, target: v}
}

func (w *WhereExpression[T, D, M, B]) blend(result Vec[T, D, M, B]) {
	ensure(!w.used)
	w.used = true
	var b B
	w.target.raw = b.Blend(w.target.raw, result.raw, w.mask.raw)
}

// Assign replaces the selected lanes with the lanes of x.
func (w *WhereExpression[T, D, M, B]) Assign(x Vec[T, D, M, B]) {
	w.blend(x)
}

// AddAssign replaces the selected lanes with target + x.
func (w *WhereExpression[T, D, M, B]) AddAssign(x Vec[T, D, M, B]) {
	w.blend(w.target.Add(x))
}

// SubAssign replaces the selected lanes with target - x.
func (w *WhereExpression[T, D, M, B]) SubAssign(x Vec[T, D, M, B]) {
	w.blend(w.target.Sub(x))
}

// MulAssign replaces the selected lanes with target * x.
func (w *WhereExpression[T, D, M, B]) MulAssign(x Vec[T, D, M, B]) {
	w.blend(w.target.Mul(x))
}

// DivAssign replaces the selected lanes with target / x.
func (w *WhereExpression[T, D, M, B]) DivAssign(x Vec[T, D, M, B]) {
	w.blend(w.target.Div(x))
}

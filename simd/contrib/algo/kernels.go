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

package algo

import "github.com/go-highway/parallelism/simd"

type (
	// UnaryFunc is a lane-wise operation on one vector.
	UnaryFunc func(x simd.Float32x4) simd.Float32x4

	// BinaryFunc is a lane-wise operation on two vectors.
	BinaryFunc func(x, y simd.Float32x4) simd.Float32x4
)

// Transform sets dst[i] = fn(src[i]) four lanes at a time. dst and src may
// be the same slice.
func Transform(dst, src []float32, fn UnaryFunc) {
	sameLen(len(src), len(dst))
	ProcessWithTail(len(src),
		func(off int) {
			v := simd.LoadFloat32x4(src[off:], simd.ElementAligned{})
			fn(v).CopyTo(dst[off:], simd.ElementAligned{})
		},
		func(off, count int) {
			storePartial(dst[off:], fn(loadPartial(src[off:], count)), count)
		},
	)
}

// Zip sets dst[i] = fn(a[i], b[i]) four lanes at a time.
func Zip(dst, a, b []float32, fn BinaryFunc) {
	sameLen(len(a), len(b), len(dst))
	ProcessWithTail(len(a),
		func(off int) {
			va := simd.LoadFloat32x4(a[off:], simd.ElementAligned{})
			vb := simd.LoadFloat32x4(b[off:], simd.ElementAligned{})
			fn(va, vb).CopyTo(dst[off:], simd.ElementAligned{})
		},
		func(off, count int) {
			storePartial(dst[off:], fn(loadPartial(a[off:], count), loadPartial(b[off:], count)), count)
		},
	)
}

// AddSlices sets dst[i] = a[i] + b[i].
func AddSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Float32x4.Add) }

// SubSlices sets dst[i] = a[i] - b[i].
func SubSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Float32x4.Sub) }

// MulSlices sets dst[i] = a[i] * b[i].
func MulSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Float32x4.Mul) }

// DivSlices sets dst[i] = a[i] / b[i]. Division by zero follows IEEE-754.
func DivSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Float32x4.Div) }

// MinSlices sets dst[i] to the smaller of a[i] and b[i], keeping a[i] when
// either is NaN.
func MinSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Min) }

// MaxSlices sets dst[i] to the larger of a[i] and b[i], keeping a[i] when
// either is NaN.
func MaxSlices(dst, a, b []float32) { Zip(dst, a, b, simd.Max) }

// ClampSlice sets dst[i] = min(max(src[i], lo), hi). lo > hi, or either
// bound NaN, panics with simd.ConditionViolated even for empty slices.
func ClampSlice(dst, src []float32, lo, hi float32) {
	if !(lo <= hi) {
		panic(simd.ConditionViolated{})
	}
	vlo, vhi := simd.BroadcastFloat32x4(lo), simd.BroadcastFloat32x4(hi)
	Transform(dst, src, func(x simd.Float32x4) simd.Float32x4 {
		return simd.Clamp(x, vlo, vhi)
	})
}

// Saxpy computes y[i] += alpha * x[i].
func Saxpy(alpha float32, x, y []float32) {
	a := simd.BroadcastFloat32x4(alpha)
	Zip(y, x, y, func(vx, vy simd.Float32x4) simd.Float32x4 {
		return vx.Mul(a).Add(vy)
	})
}

// ReplaceNaN overwrites every NaN in dst with value.
func ReplaceNaN(dst []float32, value float32) {
	fill := simd.BroadcastFloat32x4(value)
	Transform(dst, dst, func(v simd.Float32x4) simd.Float32x4 {
		simd.Where(simd.IsNaN(v), &v).Assign(fill)
		return v
	})
}

// ScaleWhere multiplies by factor every element of dst that is greater
// than threshold. NaN elements are never greater and stay as they are.
func ScaleWhere(dst []float32, threshold, factor float32) {
	th, f := simd.BroadcastFloat32x4(threshold), simd.BroadcastFloat32x4(factor)
	Transform(dst, dst, func(v simd.Float32x4) simd.Float32x4 {
		simd.Where(v.Greater(th), &v).MulAssign(f)
		return v
	})
}

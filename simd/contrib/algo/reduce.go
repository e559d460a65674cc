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

import (
	"math"

	"github.com/go-highway/parallelism/simd"
)

// ReduceSum adds the lanes of v from lane 0 up.
func ReduceSum(v simd.Float32x4) float32 {
	var lanes [Lanes]float32
	v.CopyTo(lanes[:], simd.ElementAligned{})
	return lanes[0] + lanes[1] + lanes[2] + lanes[3]
}

// Dot returns the sum of a[i]*b[i]. Products are accumulated per lane and
// the four partial sums added at the end, so the result may differ from a
// sequential loop in the last bits.
func Dot(a, b []float32) float32 {
	sameLen(len(a), len(b))
	acc := simd.BroadcastFloat32x4(0)
	fa, fb := flagFor(a), flagFor(b)
	ProcessWithTail(len(a),
		func(off int) {
			va := simd.LoadFloat32x4(a[off:], fa)
			vb := simd.LoadFloat32x4(b[off:], fb)
			acc.AddAssign(va.Mul(vb))
		},
		func(off, count int) {
			acc.AddAssign(loadPartial(a[off:], count).Mul(loadPartial(b[off:], count)))
		},
	)
	return ReduceSum(acc)
}

// Sum returns the sum of x, accumulated the same way as Dot.
func Sum(x []float32) float32 {
	acc := simd.BroadcastFloat32x4(0)
	flag := flagFor(x)
	ProcessWithTail(len(x),
		func(off int) {
			acc.AddAssign(simd.LoadFloat32x4(x[off:], flag))
		},
		func(off, count int) {
			acc.AddAssign(loadPartial(x[off:], count))
		},
	)
	return ReduceSum(acc)
}

// Norm returns the Euclidean length of x.
func Norm(x []float32) float32 {
	return float32(math.Sqrt(float64(Dot(x, x))))
}

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

// Package algo provides slice kernels built on simd.Float32x4.
//
// Every kernel walks its input four lanes at a time and finishes the last
// len%4 elements with a predicated store, so no element past the end of a
// slice is ever written. Slices that must be the same length and are not
// panic with simd.ConditionViolated.
//
// # Element-wise kernels
//
//   - AddSlices, SubSlices, MulSlices, DivSlices(dst, a, b)
//   - MinSlices, MaxSlices(dst, a, b)
//   - ClampSlice(dst, src, lo, hi)
//   - Saxpy(alpha, x, y): y += alpha*x
//   - Transform(dst, src, fn) for any func(simd.Float32x4) simd.Float32x4
//
// # Predicated kernels
//
//   - ReplaceNaN(dst, value)
//   - ScaleWhere(dst, threshold, factor): multiplies elements above threshold
//
// # Reductions
//
//   - Dot(a, b), Sum(x), Norm(x)
//
// # Parallel kernels
//
// ParallelTransform and ParallelDot split the work across a
// workerpool.Pool on vector-width boundaries:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	algo.ParallelTransform(pool, out, in, func(x simd.Float32x4) simd.Float32x4 {
//	    return x.Mul(x).Add(x) // x² + x
//	})
package algo

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

// Lanes is the number of float32 elements each kernel step consumes.
const Lanes = 4

var laneIndex = simd.Float32x4Of(0, 1, 2, 3)

// TailMask returns a mask with the first count lanes set. count is clamped
// to [0, Lanes].
func TailMask(count int) simd.Mask32x4 {
	count = min(max(count, 0), Lanes)
	return laneIndex.Less(simd.BroadcastFloat32x4(float32(count)))
}

// ProcessWithTail calls full(offset) for each complete vector in [0, size)
// and then, if size is not a multiple of Lanes, tail(offset, count) once for
// the remaining count elements.
//
// Example:
//
//	algo.ProcessWithTail(len(data),
//	    func(offset int) {
//	        v := simd.LoadFloat32x4(data[offset:], simd.ElementAligned{})
//	        v.Add(v).CopyTo(out[offset:], simd.ElementAligned{})
//	    },
//	    func(offset, count int) {
//	        // fewer than Lanes elements left
//	    },
//	)
func ProcessWithTail(size int, full func(offset int), tail func(offset, count int)) {
	vectors := size / Lanes
	for i := range vectors {
		full(i * Lanes)
	}
	if rest := size % Lanes; rest > 0 {
		tail(vectors*Lanes, rest)
	}
}

// AlignedSize rounds size up to a multiple of Lanes.
func AlignedSize(size int) int {
	return (size + Lanes - 1) / Lanes * Lanes
}

// IsAligned reports whether size is a multiple of Lanes.
func IsAligned(size int) bool {
	return size%Lanes == 0
}

// loadPartial reads count < Lanes elements of src; the missing lanes are 0.
func loadPartial(src []float32, count int) simd.Float32x4 {
	var buf [Lanes]float32
	copy(buf[:], src[:count])
	return simd.LoadFloat32x4(buf[:], simd.ElementAligned{})
}

// storePartial writes the first count lanes of v to dst and leaves the rest
// of dst alone.
func storePartial(dst []float32, v simd.Float32x4, count int) {
	var buf [Lanes]float32
	copy(buf[:], dst[:count])
	cur := simd.LoadFloat32x4(buf[:], simd.ElementAligned{})
	simd.Where(TailMask(count), &cur).Assign(v)
	cur.CopyTo(buf[:], simd.ElementAligned{})
	copy(dst[:count], buf[:count])
}

// sameLen panics with simd.ConditionViolated unless every length equals n.
func sameLen(n int, others ...int) {
	for _, o := range others {
		if o != n {
			panic(simd.ConditionViolated{})
		}
	}
}

// flagFor picks VectorAligned when s starts on a register boundary. Every
// full-vector offset keeps that property, so one check covers a whole
// kernel.
func flagFor(s []float32) simd.Flag {
	if simd.IsAlignedPtr(s, uintptr(simd.CurrentWidth())) {
		return simd.VectorAligned{}
	}
	return simd.ElementAligned{}
}

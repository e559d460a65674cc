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

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// widthSuite checks the properties that do not depend on four-literal
// construction, for any lane type and width of the portable backend.
type widthSuite[T Lanes, D, M any, B Backend[T, D, M]] struct {
	lanes int
}

func (s widthSuite[T, D, M, B]) iota() []T {
	out := make([]T, s.lanes)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

func (s widthSuite[T, D, M, B]) run(t *testing.T) {
	var v Vec[T, D, M, B]
	var d D
	assert.Equal(t, s.lanes, v.NumLanes())
	assert.Equal(t, unsafe.Sizeof(d), unsafe.Sizeof(v))
	assert.Equal(t, unsafe.Sizeof(d), v.Alignment())

	t.Run("Broadcast", func(t *testing.T) {
		v := Broadcast[T, D, M, B](7)
		for i := range s.lanes {
			if got := v.Get(i); got != 7 {
				t.Errorf("lane %d: got %v, want 7", i, got)
			}
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		src := s.iota()
		v := Load[T, D, M, B](src, ElementAligned{})
		dst := make([]T, s.lanes)
		v.CopyTo(dst, ElementAligned{})
		assert.Equal(t, src, dst)
	})

	t.Run("Aligned", func(t *testing.T) {
		buf := AlignedSlice[T](2*s.lanes, v.Alignment())
		copy(buf, s.iota())
		assert.True(t, IsAlignedPtr(buf, v.Alignment()))

		var w Vec[T, D, M, B]
		w.CopyFrom(buf, VectorAligned{})
		assert.Equal(t, T(1), w.Get(0))
		w.CopyTo(buf[s.lanes:], VectorAligned{})
		assert.Equal(t, buf[:s.lanes], buf[s.lanes:])

		// A single-lane vector is aligned at every element.
		if s.lanes > 1 {
			assert.PanicsWithValue(t, ConditionViolated{}, func() { w.CopyFrom(buf[1:], VectorAligned{}) })
			assert.PanicsWithValue(t, ConditionViolated{}, func() { w.CopyTo(buf[1:], VectorAligned{}) })
		}
		assert.NotPanics(t, func() { w.CopyFrom(buf[1:], ElementAligned{}) })
	})

	t.Run("Bounds", func(t *testing.T) {
		v := Broadcast[T, D, M, B](1)
		m := MaskBroadcast[T, D, M, B](true)
		assert.PanicsWithValue(t, ConditionViolated{}, func() { v.Get(s.lanes) })
		assert.PanicsWithValue(t, ConditionViolated{}, func() { v.Get(-1) })
		assert.PanicsWithValue(t, ConditionViolated{}, func() { m.Get(s.lanes) })
		assert.PanicsWithValue(t, ConditionViolated{}, func() {
			Load[T, D, M, B](make([]T, s.lanes-1), ElementAligned{})
		})
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := Load[T, D, M, B](s.iota(), ElementAligned{})
		two := Broadcast[T, D, M, B](2)
		for i := range s.lanes {
			x := T(i + 1)
			assert.Equal(t, x+2, a.Add(two).Get(i))
			assert.Equal(t, x*2, a.Mul(two).Get(i))
			assert.Equal(t, x, a.Mul(two).Div(two).Get(i))
			assert.Equal(t, x, a.Add(two).Sub(two).Get(i))
		}
	})

	t.Run("Where", func(t *testing.T) {
		v := Load[T, D, M, B](s.iota(), ElementAligned{})
		half := Broadcast[T, D, M, B](T(s.lanes/2 + 1))
		Where(v.Less(half), &v).Assign(Broadcast[T, D, M, B](0))
		for i := range s.lanes {
			want := T(i + 1)
			if want < T(s.lanes/2+1) {
				want = 0
			}
			assert.Equal(t, want, v.Get(i), "lane %d", i)
		}
	})

	t.Run("Reductions", func(t *testing.T) {
		v := Load[T, D, M, B](s.iota(), ElementAligned{})
		last := Broadcast[T, D, M, B](T(s.lanes))
		assert.True(t, AllOf(v.LessEqual(last)))
		assert.True(t, AnyOf(v.Equal(last)))
		assert.Equal(t, s.lanes == 1, AllOf(v.Equal(last)))
		assert.True(t, NoneOf(v.Greater(last)))
	})
}

func TestFallbackWidths(t *testing.T) {
	t.Run("float32x1", widthSuite[float32, [1]float32, [1]bool, Fallback1[float32]]{1}.run)
	t.Run("float32x2", widthSuite[float32, [2]float32, [2]bool, Fallback2[float32]]{2}.run)
	t.Run("float32x4", widthSuite[float32, [4]float32, [4]bool, Fallback4[float32]]{4}.run)
	t.Run("float32x8", widthSuite[float32, [8]float32, [8]bool, Fallback8[float32]]{8}.run)
	t.Run("float32x16", widthSuite[float32, [16]float32, [16]bool, Fallback16[float32]]{16}.run)
	t.Run("float64x2", widthSuite[float64, [2]float64, [2]bool, Fallback2[float64]]{2}.run)
	t.Run("float64x8", widthSuite[float64, [8]float64, [8]bool, Fallback8[float64]]{8}.run)
	t.Run("int32x4", widthSuite[int32, [4]int32, [4]bool, Fallback4[int32]]{4}.run)
	t.Run("int64x2", widthSuite[int64, [2]int64, [2]bool, Fallback2[int64]]{2}.run)
	t.Run("uint8x16", widthSuite[uint8, [16]uint8, [16]bool, Fallback16[uint8]]{16}.run)
}

func TestFixedAliases(t *testing.T) {
	var a Fixed8[float32]
	var m FixedMask8[float32]
	assert.Equal(t, 8, a.NumLanes())
	assert.Equal(t, 8, m.NumLanes())
	assert.Equal(t, uintptr(32), unsafe.Sizeof(a))

	v := Broadcast[float32, [8]float32, [8]bool, Fallback8[float32]](3)
	a = v
	assert.Equal(t, float32(3), a.Get(7))

	var one Fixed1[float64]
	one.CopyFrom([]float64{math.Pi}, VectorAligned{})
	assert.Equal(t, math.Pi, one.Get(0))
}

func TestFallbackIntegerNeg(t *testing.T) {
	v := Load[int32, [4]int32, [4]bool, Fallback4[int32]]([]int32{1, -2, 0, math.MinInt32}, ElementAligned{})
	n := v.Neg()
	assert.Equal(t, int32(-1), n.Get(0))
	assert.Equal(t, int32(2), n.Get(1))
	assert.Equal(t, int32(0), n.Get(2))
	assert.Equal(t, int32(math.MinInt32), n.Get(3), "two's complement wraps")
}

// TestNativeStorage pins the default vector to plain array storage on every
// build, so generic code is never instantiated with register types.
func TestNativeStorage(t *testing.T) {
	var d NativeData
	assert.Equal(t, 4, len(d))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, Float32x4Of(1, 2, 3, 4).Raw())
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Float32x4{}))
}

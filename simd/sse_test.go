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

//go:build amd64 && goexperiment.simd && !purego

package simd

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type (
	hwVec   = Vec[float32, NativeData, NativeMask, SSE]
	hwMask  = Mask[float32, NativeData, NativeMask, SSE]
	refVec  = Fixed4[float32]
	refMask = FixedMask4[float32]
)

// skipWithoutAVX runs first in every test here. The package must load on a
// host without AVX, so no archsimd instruction may execute before it.
func skipWithoutAVX(t *testing.T) {
	t.Helper()
	if !HardwareSupported() {
		t.Skipf("host %v cannot run the %v backend", HostLevel(), CurrentLevel())
	}
}

func TestConformanceSSE(t *testing.T) {
	skipWithoutAVX(t)
	quadSuite[NativeData, NativeMask, SSE]{}.run(t)
}

// specials are mixed into the random inputs so every lane combination of
// NaN, infinities and signed zeros gets exercised.
var specials = []float32{
	float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)),
	0, float32(math.Copysign(0, -1)), 1, -1, math.MaxFloat32, math.SmallestNonzeroFloat32,
}

func randomLanes(r *rand.Rand) [4]float32 {
	var out [4]float32
	for i := range out {
		if r.IntN(3) == 0 {
			out[i] = specials[r.IntN(len(specials))]
		} else {
			out[i] = float32(r.NormFloat64() * 100)
		}
	}
	return out
}

func sameBits(t *testing.T, what string, in [2][4]float32, hw hwVec, ref refVec) {
	t.Helper()
	for i := range 4 {
		h, f := hw.Get(i), ref.Get(i)
		if math.IsNaN(float64(h)) && math.IsNaN(float64(f)) {
			continue
		}
		if math.Float32bits(h) != math.Float32bits(f) {
			t.Fatalf("%s(%v, %v): lane %d: sse=%v fallback=%v", what, in[0], in[1], i, h, f)
		}
	}
}

func sameMask(t *testing.T, what string, in [2][4]float32, hw hwMask, ref refMask) {
	t.Helper()
	for i := range 4 {
		if hw.Get(i) != ref.Get(i) {
			t.Fatalf("%s(%v, %v): lane %d: sse=%v fallback=%v", what, in[0], in[1], i, hw.Get(i), ref.Get(i))
		}
	}
}

// TestSSEMatchesFallback drives both backends with the same random lanes and
// requires bit-identical results, NaN payloads aside.
func TestSSEMatchesFallback(t *testing.T) {
	skipWithoutAVX(t)
	r := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		in := [2][4]float32{randomLanes(r), randomLanes(r)}
		ha, hb := Load[float32, NativeData, NativeMask, SSE](in[0][:], ElementAligned{}), Load[float32, NativeData, NativeMask, SSE](in[1][:], ElementAligned{})
		fa, fb := Load[float32, [4]float32, [4]bool, Fallback4[float32]](in[0][:], ElementAligned{}), Load[float32, [4]float32, [4]bool, Fallback4[float32]](in[1][:], ElementAligned{})

		sameBits(t, "Add", in, ha.Add(hb), fa.Add(fb))
		sameBits(t, "Sub", in, ha.Sub(hb), fa.Sub(fb))
		sameBits(t, "Mul", in, ha.Mul(hb), fa.Mul(fb))
		sameBits(t, "Div", in, ha.Div(hb), fa.Div(fb))
		sameBits(t, "Neg", in, ha.Neg(), fa.Neg())
		sameBits(t, "Min", in, Min(ha, hb), Min(fa, fb))
		sameBits(t, "Max", in, Max(ha, hb), Max(fa, fb))

		sameMask(t, "Equal", in, ha.Equal(hb), fa.Equal(fb))
		sameMask(t, "NotEqual", in, ha.NotEqual(hb), fa.NotEqual(fb))
		sameMask(t, "Less", in, ha.Less(hb), fa.Less(fb))
		sameMask(t, "LessEqual", in, ha.LessEqual(hb), fa.LessEqual(fb))
		sameMask(t, "Greater", in, ha.Greater(hb), fa.Greater(fb))
		sameMask(t, "GreaterEqual", in, ha.GreaterEqual(hb), fa.GreaterEqual(fb))

		hm, fm := ha.Less(hb), fa.Less(fb)
		sameMask(t, "Not", in, hm.Not(), fm.Not())
		sameMask(t, "And", in, hm.And(ha.Equal(ha)), fm.And(fa.Equal(fa)))
		sameMask(t, "Or", in, hm.Or(IsNaN(ha)), fm.Or(IsNaN(fa)))
		require.Equal(t, AllOf(hm), AllOf(fm))
		require.Equal(t, AnyOf(hm), AnyOf(fm))
		require.Equal(t, NoneOf(hm), NoneOf(fm))

		hw, fw := ha, fa
		Where(hm, &hw).MulAssign(hb)
		Where(fm, &fw).MulAssign(fb)
		sameBits(t, "Where*=", in, hw, fw)
	}
}

func TestSSEMaskBits(t *testing.T) {
	skipWithoutAVX(t)
	var b SSE
	require.Equal(t, uint8(0xF), b.MaskBroadcast(true))
	require.Equal(t, uint8(0), b.MaskBroadcast(false))
	require.Equal(t, uint8(0b0101), b.MaskInit(true, false, true, false))
	require.Equal(t, uint8(0b1010), b.Not(0b0101))

	// Register masks and lane bits convert both ways for every pattern.
	for bits := range uint8(16) {
		require.Equal(t, bits, sseBits(sseMask(bits)), "bits %04b", bits)
		blended := b.Blend([4]float32{1, 2, 3, 4}, [4]float32{5, 6, 7, 8}, bits)
		for i := range 4 {
			want := float32(i + 1)
			if bits&(1<<i) != 0 {
				want += 4
			}
			require.Equal(t, want, blended[i], "bits %04b lane %d", bits, i)
		}
	}
}

func TestSSERegisterRoundTrip(t *testing.T) {
	skipWithoutAVX(t)
	v := Float32x4Of(1, -2, 3, float32(math.Inf(1)))
	r := Register(v)
	w := Float32x4FromRegister(r.Add(r))
	require.Equal(t, [4]float32{2, -4, 6, float32(math.Inf(1))}, w.Raw())
}

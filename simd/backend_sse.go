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
	"simd/archsimd"
)

// This file provides the hardware backend: 4 lanes of float32 computed in
// one 128-bit XMM register. Vec and Mask hold plain memory ([4]float32 and
// a 4-bit lane mask); each primitive moves its operands into registers,
// runs the archsimd instruction and moves the result back. archsimd types
// only appear in these concrete methods, never as type arguments.

// SSE is the 128-bit hardware backend for float32.
type SSE struct{}

func sseReg(v [4]float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4(&v)
}

func sseMem(x archsimd.Float32x4) [4]float32 {
	var r [4]float32
	x.Store(&r)
	return r
}

// sseBits packs a register mask into lane bits, lane i at bit i.
func sseBits(m archsimd.Mask32x4) uint8 {
	return uint8(m.ToBits()) & 0xF
}

// sseMask expands lane bits into a register mask.
func sseMask(bits uint8) archsimd.Mask32x4 {
	var lanes [4]float32
	for i := range lanes {
		if bits&(1<<i) != 0 {
			lanes[i] = 1
		}
	}
	return archsimd.LoadFloat32x4(&lanes).Equal(archsimd.BroadcastFloat32x4(1))
}

func (SSE) Lanes() int { return 4 }

func (SSE) Alignment() uintptr { return 16 }

func (SSE) Broadcast(v float32) [4]float32 {
	return sseMem(archsimd.BroadcastFloat32x4(v))
}

func (SSE) Init(w, x, y, z float32) [4]float32 {
	return [4]float32{w, x, y, z}
}

func (SSE) Load(src []float32) [4]float32 {
	return sseMem(archsimd.LoadFloat32x4Slice(src))
}

// LoadAligned uses the same unaligned move as Load; archsimd does not expose
// MOVAPS, and on AVX hardware MOVUPS on aligned data costs the same.
func (SSE) LoadAligned(src []float32) [4]float32 {
	return sseMem(archsimd.LoadFloat32x4Slice(src))
}

func (SSE) Store(dst []float32, v [4]float32) {
	sseReg(v).StoreSlice(dst)
}

func (SSE) StoreAligned(dst []float32, v [4]float32) {
	sseReg(v).StoreSlice(dst)
}

func (SSE) Extract(v [4]float32, i int) float32 {
	return v[i]
}

func (SSE) Add(a, b [4]float32) [4]float32 { return sseMem(sseReg(a).Add(sseReg(b))) }
func (SSE) Sub(a, b [4]float32) [4]float32 { return sseMem(sseReg(a).Sub(sseReg(b))) }
func (SSE) Mul(a, b [4]float32) [4]float32 { return sseMem(sseReg(a).Mul(sseReg(b))) }
func (SSE) Div(a, b [4]float32) [4]float32 { return sseMem(sseReg(a).Div(sseReg(b))) }

// Neg flips the sign bit, like the scalar unary minus. Multiplying by -1
// would leave the sign of a NaN untouched.
func (SSE) Neg(v [4]float32) [4]float32 {
	sign := archsimd.BroadcastFloat32x4(float32(math.Copysign(0, -1))).AsInt32x4()
	return sseMem(sseReg(v).AsInt32x4().Xor(sign).AsFloat32x4())
}

func (SSE) Equal(a, b [4]float32) uint8 { return sseBits(sseReg(a).Equal(sseReg(b))) }
func (SSE) NotEqual(a, b [4]float32) uint8 { return sseBits(sseReg(a).NotEqual(sseReg(b))) }
func (SSE) Less(a, b [4]float32) uint8 { return sseBits(sseReg(a).Less(sseReg(b))) }
func (SSE) LessEqual(a, b [4]float32) uint8 {
	return sseBits(sseReg(a).LessEqual(sseReg(b)))
}
func (SSE) Greater(a, b [4]float32) uint8 { return sseBits(sseReg(a).Greater(sseReg(b))) }
func (SSE) GreaterEqual(a, b [4]float32) uint8 {
	return sseBits(sseReg(a).GreaterEqual(sseReg(b)))
}

// Min and Max are a compare plus a blend rather than MINPS/MAXPS, whose NaN
// result depends on operand order. This keeps them lane-for-lane identical
// to the portable backend.
//
// Merge semantics: x.Merge(y, mask) returns x where mask is set, y elsewhere.
func (SSE) Min(a, b [4]float32) [4]float32 {
	ra, rb := sseReg(a), sseReg(b)
	return sseMem(rb.Merge(ra, rb.Less(ra)))
}

func (SSE) Max(a, b [4]float32) [4]float32 {
	ra, rb := sseReg(a), sseReg(b)
	return sseMem(rb.Merge(ra, ra.Less(rb)))
}

func (SSE) Blend(a, b [4]float32, m uint8) [4]float32 {
	switch m & 0xF {
	case 0:
		return a
	case 0xF:
		return b
	}
	return sseMem(sseReg(b).Merge(sseReg(a), sseMask(m)))
}

// The mask primitives work on the lane bits directly, the way AVX-512
// treats its k registers.

func (SSE) MaskBroadcast(v bool) uint8 {
	if v {
		return 0xF
	}
	return 0
}

func (SSE) MaskInit(w, x, y, z bool) uint8 {
	var bits uint8
	for i, set := range [4]bool{w, x, y, z} {
		if set {
			bits |= 1 << i
		}
	}
	return bits
}

func (SSE) MaskExtract(m uint8, i int) bool {
	return m&(1<<uint(i)) != 0
}

func (SSE) Not(m uint8) uint8 { return ^m & 0xF }
func (SSE) And(a, b uint8) uint8 { return a & b & 0xF }
func (SSE) Or(a, b uint8) uint8 { return (a | b) & 0xF }
func (SSE) AllOf(m uint8) bool { return m&0xF == 0xF }
func (SSE) AnyOf(m uint8) bool { return m&0xF != 0 }
func (SSE) NoneOf(m uint8) bool { return m&0xF == 0 }

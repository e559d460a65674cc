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

import "simd/archsimd"

// Native is the default backend for float32 in this build.
type Native = SSE

// NativeData is the raw storage of a Float32x4.
type NativeData = [4]float32

// NativeMask is the raw storage of a Mask32x4: lane i is bit i.
type NativeMask = uint8

// Float32x4FromRegister wraps an archsimd register value.
func Float32x4FromRegister(x archsimd.Float32x4) Float32x4 {
	return Float32x4FromRaw(sseMem(x))
}

// Register returns v as an archsimd register value. It is a plain function
// rather than a method because Float32x4 is generic over its backend.
func Register(v Float32x4) archsimd.Float32x4 {
	return sseReg(v.Raw())
}

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

// Float32x4 is the default 4-lane float32 vector. It resolves at build time
// to the hardware backend when available and to Fallback4 otherwise.
type Float32x4 = Vec[float32, NativeData, NativeMask, Native]

// Mask32x4 is the mask type produced by comparing Float32x4 values.
type Mask32x4 = Mask[float32, NativeData, NativeMask, Native]

// BroadcastFloat32x4 returns a Float32x4 with every lane set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Broadcast[float32, NativeData, NativeMask, Native](v)
}

// Float32x4Of returns the Float32x4 {w, x, y, z}.
func Float32x4Of(w, x, y, z float32) Float32x4 {
	return FromValues[float32, NativeData, NativeMask, Native](w, x, y, z)
}

// LoadFloat32x4 reads 4 lanes from src, honoring the alignment flag.
func LoadFloat32x4(src []float32, flag Flag) Float32x4 {
	return Load[float32, NativeData, NativeMask, Native](src, flag)
}

// Float32x4FromRaw wraps a native register value.
func Float32x4FromRaw(raw NativeData) Float32x4 {
	return FromRaw[float32, NativeData, NativeMask, Native](raw)
}

// BroadcastMask32x4 returns a Mask32x4 with every lane set to v.
func BroadcastMask32x4(v bool) Mask32x4 {
	return MaskBroadcast[float32, NativeData, NativeMask, Native](v)
}

// Mask32x4Of returns the Mask32x4 {w, x, y, z}.
func Mask32x4Of(w, x, y, z bool) Mask32x4 {
	return MaskOf[float32, NativeData, NativeMask, Native](w, x, y, z)
}

// Mask32x4FromRaw wraps a native mask value.
func Mask32x4FromRaw(raw NativeMask) Mask32x4 {
	return MaskFromRaw[float32, NativeData, NativeMask, Native](raw)
}

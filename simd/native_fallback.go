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

//go:build !amd64 || !goexperiment.simd || purego

package simd

// Native is the default backend for float32 in this build.
type Native = Fallback4[float32]

// NativeData is the raw storage of a Float32x4.
type NativeData = [4]float32

// NativeMask is the raw storage of a Mask32x4.
type NativeMask = [4]bool

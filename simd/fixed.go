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

// Fixed-width vectors on the portable backend. They behave identically on
// every architecture, which makes them the reference for the hardware
// backend and the choice for widths the hardware does not offer.
type (
	Fixed1[T Lanes]  = Vec[T, [1]T, [1]bool, Fallback1[T]]
	Fixed2[T Lanes]  = Vec[T, [2]T, [2]bool, Fallback2[T]]
	Fixed4[T Lanes]  = Vec[T, [4]T, [4]bool, Fallback4[T]]
	Fixed8[T Lanes]  = Vec[T, [8]T, [8]bool, Fallback8[T]]
	Fixed16[T Lanes] = Vec[T, [16]T, [16]bool, Fallback16[T]]

	FixedMask1[T Lanes]  = Mask[T, [1]T, [1]bool, Fallback1[T]]
	FixedMask2[T Lanes]  = Mask[T, [2]T, [2]bool, Fallback2[T]]
	FixedMask4[T Lanes]  = Mask[T, [4]T, [4]bool, Fallback4[T]]
	FixedMask8[T Lanes]  = Mask[T, [8]T, [8]bool, Fallback8[T]]
	FixedMask16[T Lanes] = Mask[T, [16]T, [16]bool, Fallback16[T]]
)

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

// Flag selects the memory access path of Vec.CopyFrom and Vec.CopyTo.
// The only implementations are ElementAligned and VectorAligned.
type Flag interface {
	isFlag()
}

// ElementAligned makes no assumption beyond the natural alignment of the
// lane type. Use it for buffers owned by other code.
type ElementAligned struct{}

// VectorAligned promises that the buffer starts at a multiple of the
// vector's Alignment(). The promise is checked on every call, on every
// backend, and a misaligned buffer panics with ConditionViolated.
type VectorAligned struct{}

func (ElementAligned) isFlag() {}
func (VectorAligned) isFlag()  {}

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

// ConditionViolated is the panic value raised when a caller breaks one of
// the package's preconditions: a lane index outside [0, NumLanes()), a slice
// shorter than the vector, a misaligned slice passed with VectorAligned, an
// inverted Clamp interval, or a WhereExpression used twice.
//
// These are programming errors, not recoverable conditions; the only
// intended consumer of the panic is a test or a top-level fault handler
// (see Guard). Floating point edge values such as NaN never raise it.
type ConditionViolated struct{}

func (ConditionViolated) Error() string {
	return "simd: condition violated"
}

// ErrConditionViolated is the error Guard returns for a ConditionViolated
// panic. Use errors.Is to test for it.
var ErrConditionViolated error = ConditionViolated{}

func ensure(cond bool) {
	if !cond {
		panic(ConditionViolated{})
	}
}

// checkIndex is shared by Vec.Get and Mask.Get.
func checkIndex(i, lanes int) {
	ensure(uint(i) < uint(lanes))
}

// Guard runs fn and converts a ConditionViolated panic into a returned
// error. Any other panic is re-raised unchanged.
func Guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if cv, ok := r.(ConditionViolated); ok {
			err = cv
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

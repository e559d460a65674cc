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

import (
	"cmp"
	"slices"
	"sync"
)

// Runner splits [0, n) into chunks whose inner boundaries are multiples of
// align and runs fn on each, returning when all are done.
// *workerpool.Pool implements it.
type Runner interface {
	ParallelForAligned(n, align int, fn func(start, end int))
}

// AtomicRunner hands out the indices of [0, n) one at a time to whichever
// goroutine is free, returning when fn has run for all of them.
// *workerpool.Pool implements it.
type AtomicRunner interface {
	ParallelForAtomic(n int, fn func(i int))
}

// ParallelTransform is Transform with the slice split across r.
func ParallelTransform(r Runner, dst, src []float32, fn UnaryFunc) {
	sameLen(len(src), len(dst))
	r.ParallelForAligned(len(src), Lanes, func(start, end int) {
		Transform(dst[start:end], src[start:end], fn)
	})
}

// ParallelZip is Zip with the slice split across r.
func ParallelZip(r Runner, dst, a, b []float32, fn BinaryFunc) {
	sameLen(len(a), len(b), len(dst))
	r.ParallelForAligned(len(a), Lanes, func(start, end int) {
		Zip(dst[start:end], a[start:end], b[start:end], fn)
	})
}

// ParallelDot is Dot with the slice split across r. Partial results are
// added in chunk order, so for a fixed chunking the result does not depend
// on scheduling.
func ParallelDot(r Runner, a, b []float32) float32 {
	sameLen(len(a), len(b))

	type partial struct {
		start int
		sum   float32
	}
	var (
		mu       sync.Mutex
		partials []partial
	)
	r.ParallelForAligned(len(a), Lanes, func(start, end int) {
		s := Dot(a[start:end], b[start:end])
		mu.Lock()
		partials = append(partials, partial{start, s})
		mu.Unlock()
	})

	slices.SortFunc(partials, func(x, y partial) int { return cmp.Compare(x.start, y.start) })
	var total float32
	for _, p := range partials {
		total += p.sum
	}
	return total
}

// DotBatch sets out[i] to the dot product of query and rows[i]. Rows are
// scheduled one at a time, so rows of different lengths balance across r.
// Every row must have len(query) elements and out must have one slot per
// row.
func DotBatch(r AtomicRunner, out, query []float32, rows [][]float32) {
	sameLen(len(rows), len(out))
	for _, row := range rows {
		sameLen(len(query), len(row))
	}
	r.ParallelForAtomic(len(rows), func(i int) {
		out[i] = Dot(query, rows[i])
	})
}

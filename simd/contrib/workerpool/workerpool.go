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

// Package workerpool runs slice kernels on a fixed set of goroutines that
// live as long as the Pool, so splitting a loop across cores does not pay
// for goroutine creation on every call.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(x), 4, func(start, end int) {
//	    algo.AddSlices(dst[start:end], a[start:end], b[start:end])
//	})
//
// A Pool may be shared by many goroutines. After Close every method still
// works but runs the whole range on the calling goroutine.
//
// fn must not call back into the Pool that runs it. The outer call holds
// the submission lock until its jobs are queued, so a nested call blocks
// behind a Close waiting for that lock, and with every worker busy the
// nested jobs never get a goroutine either. Either way the pool deadlocks.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers.
type Pool struct {
	numWorkers int
	jobs       chan job

	// mu is held for reading while a call submits jobs and for writing by
	// Close, so jobs is never sent to after it is closed.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines; numWorkers <= 0 means
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued jobs finish. It is safe to call more
// than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// submit hands each fn to a worker and waits for all of them. It reports
// false without running anything if the pool is closed.
func (p *Pool) submit(fns []func()) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.jobs <- job{run: fn, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks and
// calls fn(start, end) once per chunk. It returns when every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every chunk boundary except the
// last one a multiple of align, so each chunk but the final one is a whole
// number of vectors when align is the vector width.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	align = max(align, 1)
	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align
	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() { fn(start, end) })
	}
	if !p.submit(fns) {
		fn(0, n)
	}
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out one
// index at a time to whichever worker is free next. Use it when items are
// few and their cost varies a lot; ParallelForAtomicBatched amortizes the
// counter for cheap items.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize to
// whichever worker is free next, which balances uneven per-item cost.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers <= 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	steal := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}
	fns := make([]func(), workers)
	for i := range fns {
		fns[i] = steal
	}
	if !p.submit(fns) {
		fn(0, n)
	}
}

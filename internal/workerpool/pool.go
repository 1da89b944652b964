// Package workerpool dispatches one puzzle to one worker goroutine at a
// time. Each worker owns a single preallocated sudokucore.Stack for its
// entire lifetime, never sharing it across puzzles concurrently, matching
// the engine's own no-allocation-on-the-hot-path discipline. It uses only
// stdlib sync primitives: a bounded fan-out-fan-in pool over
// sudoku-solver/internal/sudokucore.
package workerpool

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"sudoku-solver/internal/sudokucore"
)

// Job is one puzzle submitted to the pool. reply, when non-nil, is where
// this job's Result is delivered instead of the pool's shared Results()
// stream — see SubmitSync, used by request/response callers (the HTTP
// transport) that must not read another caller's answer off a shared
// channel.
type Job struct {
	Grid  [81]byte
	Rules sudokucore.Rules
	Trace sudokucore.TraceFunc

	reply chan<- Result
}

// Result is the outcome of solving one Job.
type Result struct {
	Job    Job
	Output [81]byte
	Status sudokucore.Status
	// Panicked is set if the worker recovered from a sudokucore panic
	// (a MaxStackDepth overflow, the engine's one fatal condition) while
	// solving this job; Output and Status are zero in that case.
	Panicked bool
	PanicMsg string
}

// Pool runs one goroutine per worker slot, each with its own
// sudokucore.Stack, draining jobs from a shared channel and publishing
// results to another. Stats is the only state shared across every worker,
// and it is a struct of atomics for exactly that reason.
type Pool struct {
	Stats   *sudokucore.Stats
	workers int
	jobs    chan Job
	results chan Result
	done    chan struct{}

	mu       sync.Mutex
	finished int
}

// New creates a Pool with the given worker count (clamped to at least 1;
// 0 or negative means runtime.NumCPU()) and starts its workers.
func New(workers int, stats *sudokucore.Stats) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		Stats:   stats,
		workers: workers,
		jobs:    make(chan Job, workers),
		results: make(chan Result, workers),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go p.runWorker(i)
	}
	return p
}

// Workers reports the pool's worker count.
func (p *Pool) Workers() int { return p.workers }

// Submit enqueues a job whose Result will be published on Results(). It
// blocks if every worker is busy and the internal buffer (sized to the
// worker count) is full. Use SubmitSync instead when the caller needs its
// own answer back, not whatever the shared stream yields next.
func (p *Pool) Submit(j Job) {
	p.jobs <- j
}

// SubmitSync enqueues a job and blocks until its own Result is ready,
// bypassing the shared Results() stream entirely. This is what concurrent
// request/response callers (the HTTP transport) must use: two goroutines
// reading Results() at the same time have no way to tell which published
// Result answers which request.
func (p *Pool) SubmitSync(j Job) Result {
	reply := make(chan Result, 1)
	j.reply = reply
	p.jobs <- j
	return <-reply
}

// Results returns the channel results of Submit (not SubmitSync) calls are
// published on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close stops accepting new jobs and waits for in-flight work to drain.
// The caller must not call Submit or SubmitSync after Close.
func (p *Pool) Close() {
	close(p.jobs)
	<-p.done
	close(p.results)
}

func (p *Pool) runWorker(id int) {
	var stack sudokucore.Stack
	for job := range p.jobs {
		p.solveOne(&stack, job)
	}
	// Signal this worker drained; the pool-wide done channel fires once
	// every worker has returned from its range loop.
	if p.lastWorkerDone() {
		close(p.done)
	}
}

// solveOne runs one job to completion, recovering from a sudokucore panic
// (the MaxStackDepth overflow, fatal/non-recoverable for that puzzle but
// not for the process) so a single pathological input cannot take down the
// whole pool.
func (p *Pool) solveOne(stack *sudokucore.Stack, job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("workerpool: recovered from panic solving puzzle: %v", r)
			p.publish(job, Result{Job: job, Panicked: true, PanicMsg: fmt.Sprint(r)})
		}
	}()
	input := job.Grid
	var output [81]byte
	status := sudokucore.Solve(&input, &output, stack, job.Rules, 0, p.Stats, job.Trace)
	p.publish(job, Result{Job: job, Output: output, Status: status})
}

func (p *Pool) publish(job Job, res Result) {
	if job.reply != nil {
		job.reply <- res
		return
	}
	p.results <- res
}

// lastWorkerDone is a best-effort guard against closing p.done more than
// once; Pool is only ever Close()'d by a single caller in this package's
// intended usage (see cmd/benchserver, cmd/solve), so a simple
// mutex-guarded counter of finished workers is sufficient here.
func (p *Pool) lastWorkerDone() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished++
	return p.finished == p.workers
}

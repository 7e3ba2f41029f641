package reduce

import (
	"fmt"
	"sync"
)

// accumulator is a combine protocol: each worker folds its local result
// in exactly once, and the orchestrator reads the total after the join.
type accumulator interface {
	combine(Result)
	result() Result
}

// reduceSpan computes a worker's local result over data[s.lo:s.hi] in
// private variables, with no synchronization. The max updates on strict
// greater-than, so among equal values the first seen stands. An empty
// span returns the identity.
func reduceSpan(data []int64, s span) Result {
	r := Result{Max: NoMax}
	for _, v := range data[s.lo:s.hi] {
		if qualifies(v) {
			r.Count++
			if v > r.Max {
				r.Max = v
			}
		}
	}
	return r
}

// run partitions data, spawns one worker goroutine per span, and joins
// them all before reading the accumulator. The join is what makes the
// final read safe: every worker's combine happens before wg.Wait()
// returns. Workers are created fresh on every call; their setup and
// teardown is intentionally part of what the caller measures.
func run(data []int64, nworkers int, g accumulator) Result {
	var wg sync.WaitGroup
	for t, s := range partition(len(data), nworkers) {
		wg.Add(1)
		go func(t int, s span) {
			defer wg.Done()
			local := reduceSpan(data, s)
			debug("worker %d: [%d, %d) -> (%d, %d)\n", t, s.lo, s.hi, local.Count, local.Max)
			g.combine(local)
		}(t, s)
	}
	wg.Wait()
	return g.result()
}

// ParallelMutex reduces data across nworkers goroutines, merging the
// per-worker results under a mutex.
func ParallelMutex(data []int64, nworkers int) (Result, error) {
	if nworkers < 1 {
		return Result{}, fmt.Errorf("ParallelMutex: need at least one worker, got %d", nworkers)
	}
	return run(data, nworkers, newMutexAccumulator()), nil
}

// ParallelCAS reduces data across nworkers goroutines, merging the
// per-worker results through atomic fetch-add and compare-and-swap.
func ParallelCAS(data []int64, nworkers int) (Result, error) {
	if nworkers < 1 {
		return Result{}, fmt.Errorf("ParallelCAS: need at least one worker, got %d", nworkers)
	}
	return run(data, nworkers, newCASAccumulator()), nil
}

package reduce

import "sync/atomic"

// casAccumulator is the lock-free form of the shared accumulator: two
// independently atomic int64 cells. The count takes fetch-and-add; the
// max takes a compare-and-swap retry loop, so concurrent writes can only
// ever raise it. Both int64 fields lead the struct, which keeps them
// 64-bit aligned on 32-bit platforms.
type casAccumulator struct {
	count int64
	max   int64
}

func newCASAccumulator() *casAccumulator {
	return &casAccumulator{max: NoMax}
}

func (g *casAccumulator) combine(local Result) {
	atomic.AddInt64(&g.count, local.Count)

	for {
		observed := atomic.LoadInt64(&g.max)
		if local.Max <= observed {
			return
		}
		// failed swap: another worker raised the max first; reread and
		// retry. Every successful swap raises the cell, so the loop
		// terminates after at most one success per distinct local max.
		if atomic.CompareAndSwapInt64(&g.max, observed, local.Max) {
			return
		}
	}
}

// result reads both cells. The reads need no stronger ordering than the
// join barrier the orchestrator has already passed.
func (g *casAccumulator) result() Result {
	return Result{
		Count: atomic.LoadInt64(&g.count),
		Max:   atomic.LoadInt64(&g.max),
	}
}

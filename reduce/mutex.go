package reduce

import "sync"

// mutexAccumulator is the guarded form of the shared accumulator: the
// running pair and the mutex that protects it live in one struct, and
// the only write path is combine(), which runs inside the critical
// section.
type mutexAccumulator struct {
	mu  sync.Mutex
	acc Result
}

func newMutexAccumulator() *mutexAccumulator {
	return &mutexAccumulator{acc: Result{Max: NoMax}}
}

// combine folds one worker's local result into the shared pair. The
// deferred unlock releases the mutex on every exit path.
func (g *mutexAccumulator) combine(local Result) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.acc = merge(g.acc, local)
}

// result reads the accumulated pair. The orchestrator calls it only
// after all workers have joined.
func (g *mutexAccumulator) result() Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.acc
}

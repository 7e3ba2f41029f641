package reduce

import (
	"fmt"
	"math"
)

//
// Package reduce computes an associative reduction over an array of
// integers: how many elements are divisible by 5, and the largest such
// element. Three strategies compute the same answer:
//
// Sequential() makes a single pass with no synchronization. It is the
// reference oracle for the parallel strategies.
//
// ParallelMutex() splits the input into one contiguous chunk per worker,
// reduces each chunk independently, and folds the per-worker results
// into a shared accumulator under a mutex.
//
// ParallelCAS() uses the same partitioning but folds through two atomic
// cells: a fetch-and-add counter and a compare-and-swap loop on the max.
//
// All three return identical results for the same input; only the cost
// of the combine step differs. That difference is what the bench package
// measures.
//

// NoMax marks a result with no qualifying element. It doubles as the
// identity for the max half of the merge. No input value can collide
// with it: math.MinInt64 is not divisible by 5.
const NoMax = math.MinInt64

// Result is one (count, max) pair: either a worker's local tally or the
// final combined answer. The zero Count always accompanies Max == NoMax.
type Result struct {
	Count int64
	Max   int64
}

// qualifies reports whether x contributes to the reduction. Go's
// remainder keeps the sign of x, so negative multiples of 5 pass.
func qualifies(x int64) bool {
	return x%5 == 0
}

// merge folds b into a: counts add, the larger max wins.
func merge(a, b Result) Result {
	a.Count += b.Count
	if b.Max > a.Max {
		a.Max = b.Max
	}
	return a
}

// Debugging enabled?
const debugEnabled = false

// debug() will only print if debugEnabled is true
func debug(format string, a ...interface{}) (n int, err error) {
	if debugEnabled {
		n, err = fmt.Printf(format, a...)
	}
	return
}

package reduce

// span is one worker's half-open index range [lo, hi) of the input.
type span struct {
	lo, hi int
}

// partition splits [0, n) into nworkers contiguous spans. Each worker
// gets floor(n/nworkers) elements and the last worker absorbs the
// remainder, so the spans are disjoint and cover [0, n) exactly.
// n < nworkers leaves the leading spans empty; an empty span reduces to
// the identity. The same (n, nworkers) always yields the same spans.
func partition(n, nworkers int) []span {
	chunk := n / nworkers
	spans := make([]span, nworkers)
	for t := range spans {
		spans[t] = span{lo: t * chunk, hi: (t + 1) * chunk}
	}
	spans[nworkers-1].hi = n
	return spans
}

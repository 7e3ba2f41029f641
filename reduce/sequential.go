package reduce

// Sequential reduces data in one linear pass with no synchronization.
// Besides being the baseline measurement, it is the oracle the parallel
// strategies are checked against.
func Sequential(data []int64) Result {
	r := Result{Max: NoMax}
	for _, v := range data {
		if qualifies(v) {
			r.Count++
			if v > r.Max {
				r.Max = v
			}
		}
	}
	return r
}

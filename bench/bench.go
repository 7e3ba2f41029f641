package bench

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/VentoDor/PO-lab2/reduce"
)

//
// Package bench is the measurement shell around the reduce package. It
// generates the input array, times one strategy run from just before the
// reducer call to just after the result is available, and emits one
// tab-separated record per configuration. Worker startup and teardown
// happen inside the timed window on purpose: the benchmark compares
// end-to-end strategy cost, not steady-state throughput.
//

// Mode selects the strategy for one measurement.
type Mode int

const (
	Linear Mode = iota
	Mutex
	CAS
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case Mutex:
		return "Mutex"
	case CAS:
		return "CAS"
	}
	return "Unknown"
}

// Record is one finished measurement.
type Record struct {
	Size    int
	Threads int // ignored for Linear
	Mode    Mode
	Seconds float64
	Count   int64
	Max     int64
}

// TabLine renders the record as one tab-separated report line. Linear
// rows print a dash in the threads column.
func (r Record) TabLine() string {
	threads := "-"
	if r.Mode != Linear {
		threads = strconv.Itoa(r.Threads)
	}
	return fmt.Sprintf("%d\t\t%s\t%s\t%.6f\t%d\t%d",
		r.Size, threads, r.Mode, r.Seconds, r.Count, r.Max)
}

// Measure runs one strategy over data and reports the elapsed wall-clock
// seconds together with the computed pair. time.Now reads the monotonic
// clock, so the difference is immune to wall-clock adjustments.
func Measure(mode Mode, data []int64, nworkers int) (Record, error) {
	rec := Record{Size: len(data), Threads: nworkers, Mode: mode}

	var res reduce.Result
	var err error
	start := time.Now()
	switch mode {
	case Linear:
		res = reduce.Sequential(data)
	case Mutex:
		res, err = reduce.ParallelMutex(data, nworkers)
	case CAS:
		res, err = reduce.ParallelCAS(data, nworkers)
	default:
		err = fmt.Errorf("Measure: unknown mode %d", int(mode))
	}
	rec.Seconds = time.Since(start).Seconds()
	if err != nil {
		return Record{}, err
	}

	rec.Count = res.Count
	rec.Max = res.Max
	return rec, nil
}

// Reference workload grid. The largest size materializes ~16 GiB of
// int64 before any measurement starts.
var (
	Sizes        = []int{10000, 1000000, 100000000, 2000000000}
	ThreadCounts = []int{8, 16, 32, 64, 128, 256}
)

// Header is the report's column line.
const Header = "Matrix Size\tThreads\tMode\tTime (seconds)\tCount\tMax Value"

// RandomData builds an input array with values uniform in [0, 1000],
// the reference workload's distribution. The same seed reproduces the
// same array.
func RandomData(n int, seed int64) []int64 {
	rnd := rand.New(rand.NewSource(seed))
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(rnd.Intn(1001))
	}
	return data
}

// Run measures the full grid and writes the report to w: per input size,
// one Linear row, then one row per worker count under Mutex and then
// under CAS, then a blank line. A configuration whose measurement fails
// is logged and skipped with no retry and no fallback to fewer workers.
func Run(w io.Writer, sizes, threads []int, seed int64) {
	fmt.Fprintln(w, "\nTest Results:")
	fmt.Fprintln(w, Header)

	for _, size := range sizes {
		data := RandomData(size, seed)

		rec, err := Measure(Linear, data, 1)
		if err != nil {
			log.Printf("skipping Linear size=%d: %v", size, err)
		} else {
			fmt.Fprintln(w, rec.TabLine())
		}

		for _, mode := range []Mode{Mutex, CAS} {
			for _, nworkers := range threads {
				rec, err := Measure(mode, data, nworkers)
				if err != nil {
					log.Printf("skipping %v size=%d threads=%d: %v", mode, size, nworkers, err)
					continue
				}
				fmt.Fprintln(w, rec.TabLine())
			}
		}

		fmt.Fprintln(w)
	}
}

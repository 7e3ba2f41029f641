package main

//
// Benchmark driver: compares a sequential reduction against partitioned
// parallel reductions whose combine step uses either a mutex or
// lock-free atomics, over a grid of input sizes and worker counts.
//
// Usage:
//   go run ./main
//   go run ./main -sizes 10000,1000000 -threads 8,16,32 -seed 1
//
// The default grid's largest size needs ~16 GiB for the input array.
//

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/VentoDor/PO-lab2/bench"
)

func parseList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad list entry %q: %v", p, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("list entry %d must be positive", v)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	sizesFlag := flag.String("sizes", "", "comma-separated input sizes (default: reference grid)")
	threadsFlag := flag.String("threads", "", "comma-separated worker counts (default: 8,16,32,64,128,256)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for input generation")
	flag.Parse()

	sizes := bench.Sizes
	threads := bench.ThreadCounts
	var err error
	if *sizesFlag != "" {
		if sizes, err = parseList(*sizesFlag); err != nil {
			fmt.Fprintln(os.Stderr, "-sizes:", err)
			os.Exit(1)
		}
	}
	if *threadsFlag != "" {
		if threads, err = parseList(*threadsFlag); err != nil {
			fmt.Fprintln(os.Stderr, "-threads:", err)
			os.Exit(1)
		}
	}

	bench.Run(os.Stdout, sizes, threads, *seed)
}

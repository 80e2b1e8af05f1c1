// Command mtreebench sweeps the minimum node capacity over a configurable
// range and reports insertion and k-nearest query throughput for a
// synthetic uniform-vector workload.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/hupe1980/mtree"
	"github.com/hupe1980/mtree/metric"
	"github.com/hupe1980/mtree/testutil"
)

func main() {
	size := flag.Int("size", 20000, "number of points to index")
	dim := flag.Int("dim", 16, "vector dimension")
	k := flag.Int("k", 10, "neighbors per query")
	queries := flag.Int("queries", 200, "number of queries to time")
	minCapFrom := flag.Int("min-cap-from", 2, "minimum node capacity to start the sweep at")
	minCapTo := flag.Int("min-cap-to", 32, "minimum node capacity to end the sweep at (inclusive)")
	seed := flag.Int64("seed", 4711, "RNG seed")
	flag.Parse()

	rng := testutil.NewRNG(*seed)
	points := rng.UniformPoints(*size, *dim)
	queryPoints := rng.UniformPoints(*queries, *dim)

	fmt.Printf("--- Sweep ---\nSize: %d  Dimension: %d  k: %d\n\n", *size, *dim, *k)
	fmt.Printf("%10s %14s %14s %14s\n", "min_cap", "insert_sec", "query_sec", "queries/sec")

	for minCap := *minCapFrom; minCap <= *minCapTo; minCap++ {
		tree, err := mtree.New(minCap, metric.Euclidean)
		if err != nil {
			fmt.Printf("min_cap=%d: %v\n", minCap, err)
			continue
		}

		start := time.Now()
		for _, p := range points {
			tree.Add(p)
		}
		insertElapsed := time.Since(start)

		start = time.Now()
		for _, q := range queryPoints {
			query := tree.NearestByLimit(q, *k)
			for _, ok := query.Next(); ok; _, ok = query.Next() {
			}
		}
		queryElapsed := time.Since(start)

		qps := float64(*queries) / queryElapsed.Seconds()
		fmt.Printf("%10d %14.4f %14.4f %14.1f\n", minCap, insertElapsed.Seconds(), queryElapsed.Seconds(), qps)
	}
}

// Package testutil provides testing utilities for mtree.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for generating reproducible random points/words,
// and a brute-force oracle for verifying a Tree's search results.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 8)
//	words := rng.Words(1000, 3, 12)
//
// # Exact Search (Ground Truth)
//
//	truth := testutil.BruteForceSearch(points, query, k, metric.Euclidean)
//
// # Recall Verification
//
//	recall := testutil.ComputeRecall(truth, approx, distance)
//
// # Fixture Files
//
// LoadFixture/WriteFixture round-trip the plain-text fixture format: a
// "<dimensions>\n<count>\n" header followed by one record per line,
// "<cmd> <data_vec> <query_vec> <radius> <limit>", where cmd is A (add) or
// R (remove) and each vector is dimensions whitespace-separated integers.
//
//	fixture, err := testutil.LoadFixture(r)
package testutil

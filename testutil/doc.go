// Package testutil provides testing utilities for gridcore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seedable thread-safe RNG and generators for row fixtures,
// numeric columns with null cells, and label columns with uniform or
// Zipfian distributions.
//
// # Row Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Rows(10_000, 50, 0.05) // (name, score, active) rows, 5% nulls
//
// # Column Generation
//
//	scores := rng.UniformFloats(n, 0, 100, 0.1)
//	labels := rng.ZipfLabels(n, 20, 1.5)
package testutil

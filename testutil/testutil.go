package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformFloats generates num random values in [minVal, maxVal), with each
// value replaced by NaN with probability nullRate.
func (r *RNG) UniformFloats(num int, minVal, maxVal, nullRate float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, num)
	span := maxVal - minVal

	for i := range num {
		if r.rand.Float64() < nullRate {
			out[i] = math.NaN()
			continue
		}
		out[i] = minVal + r.rand.Float64()*span
	}

	return out
}

// Labels generates num strings drawn from a pool of distinct labels, with a
// nil cell with probability nullRate. The pool is small relative to num, so
// generated columns exercise intern deduplication.
func (r *RNG) Labels(num, poolSize int, nullRate float64) []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]any, num)
	for i := range num {
		if r.rand.Float64() < nullRate {
			continue
		}
		out[i] = fmt.Sprintf("label-%03d", r.rand.Intn(poolSize))
	}

	return out
}

// ZipfLabels generates num strings from a pool with a Zipfian (power-law)
// distribution: a few labels dominate, most are rare. s=1.0 gives standard
// Zipf, s=1.5 gives a heavy tail. Skewed label columns stress posting-list
// growth on the dominant intern IDs.
func (r *RNG) ZipfLabels(num, poolSize int, s float64) []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]any, num)
	for i := range num {
		out[i] = fmt.Sprintf("label-%03d", r.zipfLocked(poolSize, s))
	}

	return out
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s), then
	// inverse-transform sampling.
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Rows generates num rows with the fixed shape (name string, score float64,
// active bool), with nil cells at the given rate in every column. The
// resulting rows detect as (String, Float64, Bool) under type inference.
func (r *RNG) Rows(num, namePool int, nullRate float64) [][]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]any, num)
	for i := range num {
		row := make([]any, 3)
		if r.rand.Float64() >= nullRate {
			row[0] = fmt.Sprintf("name-%03d", r.rand.Intn(namePool))
		}
		if r.rand.Float64() >= nullRate {
			row[1] = r.rand.Float64() * 100
		}
		if r.rand.Float64() >= nullRate {
			row[2] = r.rand.Intn(2) == 1
		}
		rows[i] = row
	}

	return rows
}

// Package sampler implements vectorized categorical sampling. A single call
// produces n draws so the per-call overhead of one-value-at-a-time sampling
// never lands on the hot path.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyReference is returned when sampling from an empty reference table
var ErrEmptyReference = errors.New("empty reference")

// ErrNegativeCount is returned when a negative sample count is requested
var ErrNegativeCount = errors.New("negative sample count")

// Sample returns n elements drawn independently and uniformly at random,
// with replacement, from ref. The caller provides the random generator;
// workers each own one, so no synchronization happens here.
func Sample(r *rand.Rand, ref []string, n int) ([]string, error) {
	if len(ref) == 0 {
		return nil, ErrEmptyReference
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	out := make([]string, n)
	for i := range out {
		out[i] = ref[r.Intn(len(ref))]
	}
	return out, nil
}

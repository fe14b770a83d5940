package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseTensors  = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdos-Renyi-like tensor network over n tensors:
// every unordered pair {i,j} independently receives a bond with
// probability p. n must be >= 1 and p must lie in [0,1]; a seeded RNG
// (WithSeed) is required whenever 0 < p < 1.
//
// Determinism: stable trial order (i asc, j>i asc); identical seed and
// options reproduce the identical network.
//
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minRandomSparseTensors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseTensors, ErrTooFewTensors)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newTopoConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	b := newNetworkBuilder(n, cfg.bondDim)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case cfg.rng == nil && p == 1.0:
				b.bond(i, j)
			case cfg.rng != nil && cfg.rng.Float64() <= p:
				b.bond(i, j)
			}
		}
	}

	b.ensureNonEmpty()
	return b.specs(), nil
}

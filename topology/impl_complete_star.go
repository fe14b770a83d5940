package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

const (
	methodComplete = "Complete"
	methodStar     = "Star"
	minCompleteN   = 1
	minStarN       = 2
)

// Complete builds the complete tensor network K_n: every pair of tensors
// shares exactly one bond. n must be >= 1.
//
// Complexity: O(n) tensors + O(n^2) bonds.
func Complete(n int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minCompleteN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewTensors)
	}
	cfg := newTopoConfig(opts...)

	b := newNetworkBuilder(n, cfg.bondDim)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.bond(i, j)
		}
	}
	b.ensureNonEmpty()
	return b.specs(), nil
}

// Star builds a star network: tensor 0 is the center, sharing one bond
// with each of the n-1 leaves. n must be >= 2.
//
// Complexity: O(n) tensors + O(n-1) bonds.
func Star(n int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minStarN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarN, ErrTooFewTensors)
	}
	cfg := newTopoConfig(opts...)

	b := newNetworkBuilder(n, cfg.bondDim)
	for leaf := 1; leaf < n; leaf++ {
		b.bond(0, leaf)
	}
	b.ensureNonEmpty()
	return b.specs(), nil
}

package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

const (
	methodChain = "Chain"
	methodRing  = "Ring"
	minChainN   = 1
	minRingN    = 3
)

// Chain builds an open linear tensor chain of n tensors: tensor i shares
// one bond with tensor i+1, for i in [0, n-2]. Endpoints carry a single
// bond; interior tensors carry two. n must be >= 1 (a single-tensor chain
// is the trivial, bond-free case).
func Chain(n int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minChainN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainN, ErrTooFewTensors)
	}
	cfg := newTopoConfig(opts...)

	b := newNetworkBuilder(n, cfg.bondDim)
	for i := 0; i+1 < n; i++ {
		b.bond(i, i+1)
	}
	b.ensureNonEmpty()
	return b.specs(), nil
}

// Ring builds a cyclic tensor chain of n tensors: as Chain, plus one
// closing bond between tensor n-1 and tensor 0. n must be >= 3 (below
// that, "ring" and "chain" coincide or degenerate).
func Ring(n int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minRingN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingN, ErrTooFewTensors)
	}
	cfg := newTopoConfig(opts...)

	b := newNetworkBuilder(n, cfg.bondDim)
	for i := 0; i+1 < n; i++ {
		b.bond(i, i+1)
	}
	b.bond(n-1, 0)
	b.ensureNonEmpty()
	return b.specs(), nil
}

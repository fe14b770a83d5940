// Package topology_test validates the tensor-network fixture generators.
// Focus: size validation sentinels, expected per-tensor bond counts, and
// determinism of the seeded stochastic generators.
package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnopt/contract"
	"github.com/katalvlaran/tnopt/topology"
)

func TestChainRejectsTooSmall(t *testing.T) {
	_, err := topology.Chain(0)
	require.ErrorIs(t, err, topology.ErrTooFewTensors)
}

func TestChainBondCounts(t *testing.T) {
	specs, err := topology.Chain(4)
	require.NoError(t, err)
	require.Len(t, specs, 4)
	require.Len(t, specs[0], 1) // endpoint
	require.Len(t, specs[1], 2) // interior
	require.Len(t, specs[2], 2)
	require.Len(t, specs[3], 1) // endpoint
}

func TestRingRejectsTooSmall(t *testing.T) {
	_, err := topology.Ring(2)
	require.ErrorIs(t, err, topology.ErrTooFewTensors)
}

func TestRingBondCounts(t *testing.T) {
	specs, err := topology.Ring(5)
	require.NoError(t, err)
	for _, s := range specs {
		require.Len(t, s, 2) // every tensor has exactly two bonds
	}
}

func TestCompleteBondCounts(t *testing.T) {
	specs, err := topology.Complete(4)
	require.NoError(t, err)
	for _, s := range specs {
		require.Len(t, s, 3) // n-1 bonds each
	}
}

func TestStarBondCounts(t *testing.T) {
	specs, err := topology.Star(5)
	require.NoError(t, err)
	require.Len(t, specs[0], 4) // center: n-1 bonds
	for i := 1; i < 5; i++ {
		require.Len(t, specs[i], 1) // leaves: single bond
	}
}

func TestGridBondCounts(t *testing.T) {
	specs, err := topology.Grid(2, 3)
	require.NoError(t, err)
	require.Len(t, specs, 6)
	// Corner (0,0): right + bottom = 2 bonds.
	require.Len(t, specs[0], 2)
	// Interior-edge (0,1): left(implicit via right of 0), right, bottom = 3.
	require.Len(t, specs[1], 3)
}

func TestGridRejectsTooSmall(t *testing.T) {
	_, err := topology.Grid(0, 2)
	require.ErrorIs(t, err, topology.ErrTooFewTensors)
}

func TestRandomSparseRequiresRNGForStochasticP(t *testing.T) {
	_, err := topology.RandomSparse(5, 0.5)
	require.ErrorIs(t, err, topology.ErrNeedRandSource)
}

func TestRandomSparseRejectsBadProbability(t *testing.T) {
	_, err := topology.RandomSparse(5, 1.5, topology.WithSeed(1))
	require.ErrorIs(t, err, topology.ErrInvalidProbability)
}

func TestRandomSparseDeterministicForFixedSeed(t *testing.T) {
	a, err := topology.RandomSparse(8, 0.4, topology.WithSeed(42))
	require.NoError(t, err)
	b, err := topology.RandomSparse(8, 0.4, topology.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, countBonds(a), countBonds(b))
}

func TestRandomRegularRejectsBadDegree(t *testing.T) {
	_, err := topology.RandomRegular(4, 4, topology.WithSeed(1))
	require.ErrorIs(t, err, topology.ErrInvalidDegree)

	_, err = topology.RandomRegular(4, 3, topology.WithSeed(6)) // n*d=12 even, ok actually
	require.NoError(t, err)

	_, err = topology.RandomRegular(3, 1, topology.WithSeed(1)) // n*d=3 odd
	require.ErrorIs(t, err, topology.ErrInvalidDegree)
}

func TestRandomRegularDegreeIsExact(t *testing.T) {
	specs, err := topology.RandomRegular(6, 3, topology.WithSeed(1))
	require.NoError(t, err)
	for _, s := range specs {
		require.Len(t, s, 3)
	}
}

func TestBondDimOptionApplies(t *testing.T) {
	specs, err := topology.Chain(2, topology.WithBondDim(9))
	require.NoError(t, err)
	require.Equal(t, 9, specs[0][0].Dim())
}

func countBonds(specs []contract.TensorSpec) int {
	total := 0
	for _, s := range specs {
		total += len(s)
	}
	return total / 2
}

package graphview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnopt/contract"
	"github.com/katalvlaran/tnopt/graphview"
)

type testIndex struct {
	name string
	dim  int
}

func (t testIndex) ID() any  { return t.name }
func (t testIndex) Dim() int { return t.dim }

func idx(name string, dim int) contract.Index { return testIndex{name: name, dim: dim} }

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := graphview.Build(nil)
	require.ErrorIs(t, err, graphview.ErrInvalidInput)
}

func TestBuildRejectsOverSharedIndex(t *testing.T) {
	shared := idx("x", 2)
	tensors := []contract.TensorSpec{
		{shared},
		{shared},
		{shared},
	}
	_, err := graphview.Build(tensors)
	require.ErrorIs(t, err, graphview.ErrOverSharedIndex)
}

func TestBuildAdjacency(t *testing.T) {
	tensors := []contract.TensorSpec{
		{idx("a", 2), idx("b", 3)},
		{idx("b", 3), idx("c", 4)},
		{idx("c", 4)},
	}
	adj, err := graphview.Build(tensors)
	require.NoError(t, err)
	require.Equal(t, 3, adj.N)
	require.Equal(t, []int{1}, adj.Neighbors[0])
	require.Equal(t, []int{0, 2}, adj.Neighbors[1])
	require.Equal(t, []int{1}, adj.Neighbors[2])
}

func TestCostMatrixIsSymmetricWithZeroDiagonal(t *testing.T) {
	tensors := []contract.TensorSpec{
		{idx("a", 2), idx("b", 3)},
		{idx("b", 3), idx("c", 4)},
		{idx("c", 4), idx("a", 2)},
	}
	enc, err := contract.Encode(tensors)
	require.NoError(t, err)

	m, err := graphview.CostMatrix(enc)
	require.NoError(t, err)

	for i := 0; i < enc.N; i++ {
		diag, err := m.At(i, i)
		require.NoError(t, err)
		require.Equal(t, int64(0), diag)
	}
	for i := 0; i < enc.N; i++ {
		for j := 0; j < enc.N; j++ {
			vij, err := m.At(i, j)
			require.NoError(t, err)
			vji, err := m.At(j, i)
			require.NoError(t, err)
			require.Equal(t, vij, vji)
		}
	}
}

func TestMatrixBoundsChecking(t *testing.T) {
	m, err := graphview.NewMatrix(2, 2)
	require.NoError(t, err)
	_, err = m.At(5, 0)
	require.ErrorIs(t, err, graphview.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(-1, 0, 1), graphview.ErrIndexOutOfBounds)
}

func TestNewMatrixRejectsBadShape(t *testing.T) {
	_, err := graphview.NewMatrix(0, 2)
	require.ErrorIs(t, err, graphview.ErrInvalidDimensions)
}

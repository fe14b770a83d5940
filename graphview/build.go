package graphview

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tnopt/contract"
)

// Adjacency is the tensor-network's structural graph: Neighbors[i] lists,
// in ascending order, every tensor that shares at least one index with
// tensor i.
type Adjacency struct {
	N         int
	Neighbors [][]int
}

// Build derives the adjacency graph of a tensor network from its shared
// indices, validating along the way that no index identity is shared by
// more than two tensors (this package's model, like contract's cost
// kernel, only knows how to interpret pairwise sharing).
//
// Complexity: O(sum of tensor sizes).
func Build(tensors []contract.TensorSpec) (*Adjacency, error) {
	n := len(tensors)
	if n == 0 {
		return nil, ErrInvalidInput
	}

	shareCount := make(map[any]int)
	firstOwner := make(map[any]int)
	secondOwner := make(map[any]int)

	for i, t := range tensors {
		for _, idx := range t {
			id := idx.ID()
			switch shareCount[id] {
			case 0:
				firstOwner[id] = i
			case 1:
				secondOwner[id] = i
			default:
				return nil, fmt.Errorf("graphview: %w: %w", contract.ErrInvalidInput, ErrOverSharedIndex)
			}
			shareCount[id]++
		}
	}

	neighbors := make([][]int, n)
	adjacent := make([]map[int]bool, n)
	for i := range adjacent {
		adjacent[i] = make(map[int]bool)
	}

	for id, c := range shareCount {
		if c != 2 {
			continue
		}
		a, b := firstOwner[id], secondOwner[id]
		if a == b || adjacent[a][b] {
			continue
		}
		adjacent[a][b] = true
		adjacent[b][a] = true
		neighbors[a] = append(neighbors[a], b)
		neighbors[b] = append(neighbors[b], a)
	}
	for i := range neighbors {
		sort.Ints(neighbors[i])
	}

	return &Adjacency{N: n, Neighbors: neighbors}, nil
}

// CostMatrix computes the dense, symmetric NxN matrix of pairwise
// contraction costs between every pair of input tensors in enc (diagonal
// zero). It is a diagnostic tool: unlike DepthFirst/BreadthFirst it makes
// no claim about an optimal overall order, only about each individual
// pair's isolated contraction cost.
func CostMatrix(enc contract.Encoded) (*Matrix, error) {
	n := enc.N
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pr, err := contract.PairCost(enc.Vectors[i], enc.Vectors[j], enc.Dims)
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, pr.Cost); err != nil {
				return nil, err
			}
			if err := m.Set(j, i, pr.Cost); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

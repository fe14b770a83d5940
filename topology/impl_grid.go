package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows x cols orthogonal 4-neighborhood tensor grid.
// Tensors are numbered in row-major order: tensor (r,c) is at position
// r*cols+c. Each tensor shares a bond with its right and bottom neighbor
// where one exists (open boundary, no wraparound). rows and cols must
// each be >= 1.
//
// Complexity: O(rows*cols) tensors + O(rows*cols) bonds.
func Grid(rows, cols int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewTensors)
	}
	cfg := newTopoConfig(opts...)

	n := rows * cols
	b := newNetworkBuilder(n, cfg.bondDim)

	pos := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := pos(r, c)
			if c+1 < cols {
				b.bond(here, pos(r, c+1))
			}
			if r+1 < rows {
				b.bond(here, pos(r+1, c))
			}
		}
	}

	b.ensureNonEmpty()
	return b.specs(), nil
}

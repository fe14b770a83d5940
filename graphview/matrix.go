package graphview

import "fmt"

// Matrix is a row-major, flat-backed rows x cols matrix of int64
// contraction costs (CostMatrix always builds it square), over the integer
// cost domain PairCost returns.
type Matrix struct {
	r, c int
	data []int64
}

func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// NewMatrix allocates an r x c zero Matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Matrix) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf("At", row, col, err)
	}
	return m.data[idx], nil
}

// Set writes the element at (row, col).
func (m *Matrix) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", row, col, err)
	}
	m.data[idx] = v
	return nil
}

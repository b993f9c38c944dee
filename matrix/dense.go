// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a square row-major matrix of float64 values.
type Dense struct {
	n    int
	data []float64
}

// NewDense creates an n×n matrix of zeros. n = 0 is allowed.
// Complexity: O(n²).
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewDistanceMatrix creates an n×n matrix with 0 on the diagonal and +Inf
// elsewhere, ready for Set(u, v, w) and FloydWarshall.
func NewDistanceMatrix(n int) (*Dense, error) {
	return newFilled(n, 0, math.Inf(1))
}

// NewWidthMatrix creates an n×n matrix with +Inf on the diagonal and -Inf
// elsewhere, the identity layout for Maximin.
func NewWidthMatrix(n int) (*Dense, error) {
	return newFilled(n, math.Inf(1), math.Inf(-1))
}

// NewRateMatrix creates an n×n matrix with 1 on the diagonal and 0
// elsewhere, the identity layout for MaxProduct.
func NewRateMatrix(n int) (*Dense, error) {
	return newFilled(n, 1, 0)
}

func newFilled(n int, diag, off float64) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row := m.data[i*n : (i+1)*n]
		for j := range row {
			row[j] = off
		}
		row[i] = diag
	}

	return m, nil
}

// Order returns n.
func (m *Dense) Order() int { return m.n }

func (m *Dense) indexOf(op string, i, j int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(op, ErrNilMatrix)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrOutOfRange)
	}

	return i*m.n + j, nil
}

// At returns the element at (i, j).
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf("Dense.At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (i, j). ±Inf is allowed, NaN is not.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf("Dense.Set", i, j)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrNaN)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

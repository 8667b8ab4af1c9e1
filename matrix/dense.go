// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
)

// denseErrorf wraps a sentinel with the method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 matrix.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a rows×cols zero matrix. Zero-sized matrices are
// allowed; negative dimensions return ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDistanceMatrix allocates an n×n matrix with 0 on the diagonal and
// +Inf everywhere else, the starting point for an all-pairs closure.
func NewDistanceMatrix(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		row := d.data[i*n : (i+1)*n]
		for j := range row {
			if i != j {
				row[j] = inf
			}
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the value at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set stores v at (i, j). ±Inf is accepted, NaN is rejected.
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, i, j, ErrNaN)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Fill overwrites the whole matrix from a row-major slice of length rows*cols.
func (m *Dense) Fill(values []float64) error {
	if len(values) != len(m.data) {
		return fmt.Errorf("Dense.%s: got %d values for %dx%d: %w",
			ctxFill, len(values), m.r, m.c, ErrDimensionMismatch)
	}
	for k, v := range values {
		if math.IsNaN(v) {
			return denseErrorf(ctxFill, k/m.c, k%m.c, ErrNaN)
		}
	}
	copy(m.data, values)

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

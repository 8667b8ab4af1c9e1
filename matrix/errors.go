// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrBadShape is returned when a matrix is requested with negative dimensions.
	ErrBadShape = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange is returned when a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare is returned when an operation requires a square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix is returned when a nil matrix is passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch is returned when a bulk fill does not match rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaN is returned when Set or Fill receives a NaN value.
	ErrNaN = errors.New("matrix: NaN value")
)

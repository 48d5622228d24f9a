// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// rows and cols describe the shape; cells holds rows*cols elements in
// row-major order, so element (i,j) lives at cells[i*cols+j].
type Dense struct {
	rows, cols int       // shape
	cells      []float64 // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate requested shape before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Single flat allocation; the runtime zeroes it for us.
	return &Dense{rows: rows, cols: cols, cells: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense matrix from a slice of row slices.
// Stage 1 (Validate): non-empty input, equal row lengths.
// Stage 2 (Execute): copy rows into flat storage.
// Stage 3 (Finalize): return the populated Dense.
//
// Errors:
//   - ErrInvalidDimensions when data is empty or the first row is empty.
//   - ErrDimensionMismatch when rows have unequal lengths (ragged input).
//
// Complexity: O(rows*cols).
func FromRows(data [][]float64) (*Dense, error) {
	// Reject empty shapes up front.
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(data[0]) // canonical row length

	m := &Dense{rows: len(data), cols: width, cells: make([]float64, len(data)*width)}
	for i, row := range data {
		if len(row) != width { // ragged input is a caller bug, not a panic
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), width, ErrDimensionMismatch)
		}
		copy(m.cells[i*width:(i+1)*width], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// offset computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) offset(method string, row, col int) (int, error) {
	// Both bounds collapse into one guard; the wrapped error carries the
	// offending coordinates for diagnostics.
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.cells[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.cells[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(rows*cols) time and memory for copy.
func (m *Dense) Clone() Matrix {
	dup := make([]float64, len(m.cells))
	copy(dup, m.cells)

	return &Dense{rows: m.rows, cols: m.cols, cells: dup}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // one bracketed line per row
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.cells[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// SPDX-License-Identifier: MIT
// Package invert: inversion kernels (LU substitution and Gauss–Jordan).
package invert

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matcache/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is
// nil, not square, or singular within the configured pivot tolerance.
// The input is never mutated; the result is a freshly allocated Dense.
//
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Dispatch): route to the kernel selected by WithAlgorithm.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (validation).
//   - matrix.ErrSingular (pivot within tolerance of zero).
//
// Complexity: O(n³) time, O(n²) memory for both kernels.
func Inverse(m matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	switch o.algorithm {
	case GaussJordan:
		return gaussJordan(m, o)
	default:
		return luInverse(m, o, opts)
	}
}

// luInverse inverts via Doolittle LU and per-column triangular solves.
//
//	Stage 1 (Decompose): A = L·U via Decompose.
//	Stage 2 (Prepare): allocate result matrix and scratch slices.
//	Stage 3 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 4 (Finalize): assemble columns into the inverse and return.
//
// Fully deterministic loop orders (col↑, forward i↑, backward i↓); no
// pivoting by design, trading stability for reproducibility.
func luInverse(m matrix.Matrix, o Options, opts []Option) (matrix.Matrix, error) {
	// Stage 1: factorize; Decompose re-reads the same options.
	L, U, err := Decompose(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 2: result container and substitution workspaces.
	n := m.Rows()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution workspace

	// Stage 3: compute each column of the inverse.
	var (
		col, i, k  int
		sum, pivot float64
		v          float64
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = e_col (top-down).
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ { // sum L[i][k]*y[k]
				v, _ = L.At(i, k)
				sum += v * y[k]
			}
			if i == col { // basis entry: e_col[i] == 1
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}

		// Backward substitution: U·x = y (bottom-up; check pivots).
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ { // sum U[i][k]*x[k]
				v, _ = U.At(i, k)
				sum += v * x[k]
			}
			pivot, _ = U.At(i, i)
			if math.Abs(pivot) <= o.pivotTol {
				return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", i, matrix.ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		// Write solution x into column col of inv. IEEE −0 slips out of
		// the substitutions (−sum with sum==0, or division by a negative
		// pivot); it compares equal to 0 but formats as "-0", so rewrite.
		for i = 0; i < n; i++ {
			if x[i] == 0 {
				x[i] = 0
			}
			_ = inv.Set(i, col, x[i])
		}
	}

	// Stage 4: return computed inverse.
	return inv, nil
}

// gaussJordan inverts via augmented elimination [A | I] → [I | A⁻¹] with
// partial pivoting: each elimination step swaps in the row with the largest
// absolute pivot, which tolerates zero leading minors that the no-pivot LU
// scheme rejects.
func gaussJordan(m matrix.Matrix, o Options) (matrix.Matrix, error) {
	n := m.Rows()

	// Working copy of A (mutated in place) and the accumulating inverse.
	var (
		a   = make([][]float64, n)
		inv = make([][]float64, n)
		v   float64
	)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		inv[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j)
			a[i][j] = v
		}
		inv[i][i] = 1 // right half starts as the identity
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the row with the largest |a[row][col]|.
		best := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[best][col]) {
				best = row
			}
		}
		if math.Abs(a[best][col]) <= o.pivotTol {
			return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", col, matrix.ErrSingular)
		}
		a[col], a[best] = a[best], a[col]
		inv[col], inv[best] = inv[best], inv[col]

		// Normalize the pivot row.
		pivot := a[col][col]
		for j := 0; j < n; j++ {
			a[col][j] /= pivot
			inv[col][j] /= pivot
		}

		// Eliminate the pivot column from every other row.
		for row := 0; row < n; row++ {
			if row == col || a[row][col] == 0 {
				continue
			}
			factor := a[row][col]
			for j := 0; j < n; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}

	// Normalizing the pivot row against a negative pivot leaves −0 in the
	// right half; rewrite so zero entries format as "0".
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if inv[i][j] == 0 {
				inv[i][j] = 0
			}
		}
	}

	return matrix.FromRows(inv)
}

// SPDX-License-Identifier: MIT
// Package invert: Doolittle LU factorization kernel.
package invert

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matcache/matrix"
)

// Decompose performs Doolittle LU decomposition on a square matrix m,
// returning L (unit lower triangular) and U (upper triangular) such that
// m = L·U. No pivoting is applied, so the factorization is deterministic
// but requires non-zero leading minors.
//
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Prepare): allocate Dense L, U; set diag(L)=1.
//	Stage 3 (Execute): for each pivot row i, build row i of U (j ≥ i),
//	  then column i of L (j > i), in fixed order.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (validation).
//   - matrix.ErrSingular when |U[i,i]| ≤ tol before dividing.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Decompose(m matrix.Matrix, opts ...Option) (matrix.Matrix, matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate shape through the canonical guard.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	n := m.Rows() // common dimension

	// Stage 2: allocate factors.
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Decompose: %w", err)
	}
	// Unit lower triangular: ones on L's diagonal.
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
	}

	// Stage 3: Doolittle elimination in fixed i→j→k order.
	var (
		i, j, k    int     // loop indices
		sum        float64 // accumulator for dot products
		lVal, uVal float64 // fetched factor entries
		aVal       float64 // fetched input entry
		pivot      float64 // U's diagonal entry for column i of L
	)
	for i = 0; i < n; i++ {
		// Row i of U for columns j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ { // sum L[i][k]*U[k][j]
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}
		// Column i of L for rows j > i; requires a usable pivot U[i][i].
		pivot, _ = U.At(i, i)
		if i < n-1 && math.Abs(pivot) <= o.pivotTol {
			return nil, nil, fmt.Errorf("Decompose: zero pivot at %d: %w", i, matrix.ErrSingular)
		}
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ { // sum L[j][k]*U[k][i]
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			_ = L.Set(j, i, (aVal-sum)/pivot)
		}
	}

	return L, U, nil
}

// Package invert_test exercises both inversion kernels and the numeric
// policy options against hand-checked matrices.
package invert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/invert"
	"github.com/katalvlaran/matcache/matrix"
)

const eps = 1e-9 // tolerance for round-trip comparisons

// mustRows builds a Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRoundTrip asserts m·inv ≈ I within eps.
func requireRoundTrip(t *testing.T, m, inv matrix.Matrix) {
	t.Helper()
	prod, err := matrix.Mul(m, inv) // m·m⁻¹
	require.NoError(t, err)
	I, err := matrix.NewIdentity(m.Rows())
	require.NoError(t, err)

	ok, err := matrix.AllClose(prod, I, eps)
	require.NoError(t, err)
	require.True(t, ok, "m·inv should be the identity, got:\n%v", prod)
}

// TestInverseDiagonal checks the exact inverse of a diagonal matrix.
func TestInverseDiagonal(t *testing.T) {
	m := mustRows(t, [][]float64{
		{2, 0},
		{0, 2},
	})

	inv, err := invert.Inverse(m)
	require.NoError(t, err)

	want := mustRows(t, [][]float64{
		{0.5, 0},
		{0, 0.5},
	})
	ok, err := matrix.AllClose(inv, want, 0) // exact halves
	require.NoError(t, err)
	require.True(t, ok)
}

// TestInverseRoundTrip verifies m·m⁻¹ ≈ I for a general 3x3 matrix,
// under both kernel variants.
func TestInverseRoundTrip(t *testing.T) {
	m := mustRows(t, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})

	for _, algo := range []invert.Algorithm{invert.LU, invert.GaussJordan} {
		inv, err := invert.Inverse(m, invert.WithAlgorithm(algo))
		require.NoError(t, err, "algorithm %v", algo)
		requireRoundTrip(t, m, inv)
	}
}

// TestInverseSingular surfaces ErrSingular for a rank-deficient matrix.
func TestInverseSingular(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2},
		{2, 4}, // second row is 2× the first
	})

	for _, algo := range []invert.Algorithm{invert.LU, invert.GaussJordan} {
		_, err := invert.Inverse(m, invert.WithAlgorithm(algo))
		require.ErrorIs(t, err, matrix.ErrSingular, "algorithm %v", algo)
	}
}

// TestInverseNonSquare surfaces ErrNonSquare for rectangular input.
func TestInverseNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = invert.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverseNil surfaces ErrNilMatrix on a nil input.
func TestInverseNil(t *testing.T) {
	_, err := invert.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGaussJordanPivots inverts a matrix whose leading pivot is zero;
// the no-pivot LU kernel rejects it, partial pivoting handles it.
func TestGaussJordanPivots(t *testing.T) {
	m := mustRows(t, [][]float64{
		{0, 1},
		{1, 0}, // a permutation matrix: its own inverse
	})

	_, err := invert.Inverse(m, invert.WithAlgorithm(invert.LU))
	require.ErrorIs(t, err, matrix.ErrSingular) // zero leading minor

	inv, err := invert.Inverse(m, invert.WithAlgorithm(invert.GaussJordan))
	require.NoError(t, err)
	requireRoundTrip(t, m, inv)
}

// TestPivotTolerance rejects a nearly-singular matrix once tol exceeds
// its smallest pivot magnitude.
func TestPivotTolerance(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 0},
		{0, 1e-14},
	})

	// Exact-zero policy still inverts it.
	_, err := invert.Inverse(m)
	require.NoError(t, err)

	// A coarser tolerance treats the tiny pivot as zero.
	_, err = invert.Inverse(m, invert.WithPivotTolerance(1e-12))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestDecompose reconstructs m from its L and U factors.
func TestDecompose(t *testing.T) {
	m := mustRows(t, [][]float64{
		{4, 3},
		{6, 3},
	})

	L, U, err := invert.Decompose(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(L, U) // L·U should rebuild m
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, m, eps)
	require.NoError(t, err)
	require.True(t, ok)

	// L is unit lower triangular: ones on the diagonal, zeros above.
	d, err := L.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
	up, err := L.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, up)
}

// TestInverseNoNegativeZero ensures zero entries of the inverse carry a
// positive sign bit, so formatted output reads "0", never "-0". The
// negative diagonal drives −0 out of both kernels when left unnormalized:
// LU's backward substitution divides −sum by a negative pivot, and
// Gauss–Jordan divides the identity's zeros by the negative pivot row.
func TestInverseNoNegativeZero(t *testing.T) {
	m := mustRows(t, [][]float64{
		{-2, 0},
		{0, -2},
	})

	for _, algo := range []invert.Algorithm{invert.LU, invert.GaussJordan} {
		inv, err := invert.Inverse(m, invert.WithAlgorithm(algo))
		require.NoError(t, err, "algorithm %v", algo)

		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				v, err := inv.At(i, j)
				require.NoError(t, err)
				if v == 0 {
					require.False(t, math.Signbit(v),
						"algorithm %v: entry (%d,%d) is negative zero", algo, i, j)
				}
			}
		}
	}
}

// TestOptionPanics confirms constructor validation on nonsensical values.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { invert.WithPivotTolerance(-1) })
	require.Panics(t, func() { invert.WithAlgorithm(invert.Algorithm(42)) })
}

// TestNewOptions checks default resolution and last-writer-wins.
func TestNewOptions(t *testing.T) {
	o := invert.NewOptions()
	require.Equal(t, invert.DefaultPivotTolerance, o.PivotTolerance())
	require.Equal(t, invert.LU, o.Algorithm())

	o = invert.NewOptions(
		invert.WithAlgorithm(invert.GaussJordan),
		invert.WithPivotTolerance(1e-9),
		invert.WithPivotTolerance(1e-6), // last writer wins
	)
	require.Equal(t, 1e-6, o.PivotTolerance())
	require.Equal(t, invert.GaussJordan, o.Algorithm())
}

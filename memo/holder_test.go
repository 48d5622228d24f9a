// Package memo_test covers the Holder container: construction, accessors,
// and the invalidation invariant.
package memo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// mustRows builds a Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNewHolderInitialState verifies the held matrix and the absent cache.
func TestNewHolderInitialState(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	h := memo.NewHolder(m)

	require.Same(t, matrix.Matrix(m), h.Matrix()) // held matrix returned unchanged

	inv, ok := h.CachedInverse() // initial state is Invalid
	require.False(t, ok)
	require.Nil(t, inv)
}

// TestNewHolderPlaceholder checks the degenerate 1×1 NaN placeholder used
// when no initial matrix is supplied.
func TestNewHolderPlaceholder(t *testing.T) {
	h := memo.NewHolder(nil)

	p := h.Matrix()
	require.Equal(t, 1, p.Rows()) // degenerate 1×1 shape
	require.Equal(t, 1, p.Cols())

	v, err := p.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v)) // undefined entry, never meant to be inverted

	_, ok := h.CachedInverse()
	require.False(t, ok)
}

// TestSetMatrixInvalidates ensures replacement clears the cache.
func TestSetMatrixInvalidates(t *testing.T) {
	m1 := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	h := memo.NewHolder(m1)

	// Populate the cache by hand, as the resolver would.
	inv1 := mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}})
	h.SetCachedInverse(inv1)
	_, ok := h.CachedInverse()
	require.True(t, ok)

	// Replacement must reset the cache to absent in the same step.
	m2 := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	h.SetMatrix(m2)

	require.Same(t, matrix.Matrix(m2), h.Matrix())
	_, ok = h.CachedInverse()
	require.False(t, ok)
}

// TestSetMatrixIdempotentClear verifies that setting the very same matrix
// value again still clears the cache — no special-case skip.
func TestSetMatrixIdempotentClear(t *testing.T) {
	m := mustRows(t, [][]float64{{3, 0}, {0, 3}})
	h := memo.NewHolder(m)

	h.SetCachedInverse(mustRows(t, [][]float64{{1.0 / 3, 0}, {0, 1.0 / 3}}))
	h.SetMatrix(m) // same value, same pointer

	_, ok := h.CachedInverse()
	require.False(t, ok) // cache cleared regardless
}

// TestSetCachedInverseOverwrites confirms last-write-wins on the cache slot.
func TestSetCachedInverseOverwrites(t *testing.T) {
	h := memo.NewHolder(mustRows(t, [][]float64{{1}}))

	first := mustRows(t, [][]float64{{1}})
	second := mustRows(t, [][]float64{{2}})
	h.SetCachedInverse(first)
	h.SetCachedInverse(second)

	got, ok := h.CachedInverse()
	require.True(t, ok)
	require.Same(t, matrix.Matrix(second), got)
}

// TestSetMatrixNilResetsToPlaceholder mirrors the constructor behavior.
func TestSetMatrixNilResetsToPlaceholder(t *testing.T) {
	h := memo.NewHolder(mustRows(t, [][]float64{{1, 0}, {0, 1}}))
	h.SetMatrix(nil)

	p := h.Matrix()
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())
	_, ok := h.CachedInverse()
	require.False(t, ok)
}

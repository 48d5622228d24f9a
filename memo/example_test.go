package memo_test

import (
	"fmt"

	"github.com/katalvlaran/matcache/invert"
	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// ExampleInverse demonstrates the miss→hit lifecycle and invalidation.
func ExampleInverse() {
	m, _ := matrix.FromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	h := memo.NewHolder(m)

	// First call computes and caches.
	inv, _ := memo.Inverse(h)
	fmt.Print(inv)

	// Second call is served from cache — the identical value.
	again, _ := memo.Inverse(h)
	fmt.Println("same cached value:", inv == again)

	// Replacing the matrix clears the cache.
	identity, _ := matrix.NewIdentity(2)
	h.SetMatrix(identity)
	_, cached := h.CachedInverse()
	fmt.Println("cached after replacement:", cached)

	// Output:
	// [0.5, 0]
	// [0, 0.5]
	// same cached value: true
	// cached after replacement: false
}

// ExampleInverse_options forwards numeric policy to the inversion routine.
func ExampleInverse_options() {
	m, _ := matrix.FromRows([][]float64{
		{0, 1},
		{1, 0},
	})
	h := memo.NewHolder(m)

	// The permutation matrix defeats the no-pivot LU kernel; ask for
	// Gauss–Jordan with partial pivoting instead.
	inv, err := memo.Inverse(h,
		memo.WithInvertOptions(invert.WithAlgorithm(invert.GaussJordan)),
	)
	fmt.Println("err:", err)
	fmt.Print(inv)

	// Output:
	// err: <nil>
	// [0, 1]
	// [1, 0]
}

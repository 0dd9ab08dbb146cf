// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSparsify covers relative thresholding, boolean masks and degenerate inputs.
func TestSparsify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        []float64
		opts     []sparse.SparsifyOption
		wantIdx  []int
		wantVals []float64
	}{
		{"drops tiny", []float64{1, 1e-5, 0, 0.5}, nil, []int{0, 3}, []float64{1, 0.5}},
		{"boolean", []float64{0, 2, 3}, []sparse.SparsifyOption{sparse.AsBoolean()}, []int{1, 2}, []float64{1, 1}},
		{"custom tol", []float64{1, 0.2, 0.6}, []sparse.SparsifyOption{sparse.WithTolerance(0.5)}, []int{0, 2}, []float64{1, 0.6}},
		{"zero tol keeps all nonzeros", []float64{1, 1e-12}, []sparse.SparsifyOption{sparse.WithTolerance(0)}, []int{0, 1}, []float64{1, 1e-12}},
		{"all zero", []float64{0, 0}, nil, []int{}, []float64{}},
		{"nan dropped", []float64{math.NaN(), 1}, nil, []int{1}, []float64{1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := sparse.Sparsify(tc.x, tc.opts...)
			assert.Equal(t, len(tc.x), v.Len())
			assert.Equal(t, tc.wantIdx, v.Indices())
			assert.Equal(t, tc.wantVals, v.Values())
		})
	}
}

// TestWithTolerance_Panics ensures nonsensical tolerances are rejected at construction.
func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { sparse.WithTolerance(-1) })
	assert.Panics(t, func() { sparse.WithTolerance(1) })
	assert.Panics(t, func() { sparse.WithTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { sparse.WithTolerance(0.1) })
}

// TestFind returns entries in column-major order.
func TestFind(t *testing.T) {
	m := mustCSC(t, 2, 2, []float64{0, 1, 2, 3})
	assert.Equal(t, []sparse.Entry{
		{Row: 1, Col: 0, Val: 2},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 3},
	}, sparse.Find(m))
	assert.Nil(t, sparse.Find(nil))
}

// TestVector covers construction rules and accessors.
func TestVector(t *testing.T) {
	v, err := sparse.NewVector(5, []int{3, 0, 2}, []float64{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, v.Indices())
	assert.Equal(t, 2, v.NNZ())
	assert.Equal(t, []float64{2, 0, 0, 1, 0}, v.Dense())
	assert.False(t, v.IsBoolean())
	assert.True(t, v.Boolean().IsBoolean())
	assert.Equal(t, []bool{true, false, false, true, false}, v.Mask())

	x, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	_, err = v.At(5)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewVector(3, []int{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, sparse.ErrDuplicateIndex)
	_, err = sparse.NewVector(3, []int{3}, []float64{1})
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = sparse.NewVector(3, []int{1}, nil)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	b, err := sparse.BooleanVector(4, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, "4:[1:1 2:1]", b.String())
}

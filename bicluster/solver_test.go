// SPDX-License-Identifier: MIT
package bicluster_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/katalvlaran/bicluster/bicluster"
	"github.com/katalvlaran/bicluster/nmf"
	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleBicluster_SingleColumn(t *testing.T) {
	t.Parallel()
	a, err := sparse.FromDense(5, 1, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	u, v, err := bicluster.SingleBicluster(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, u.Indices())
	assert.True(t, u.IsBoolean())
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, []int{0}, v.Indices())
	assert.True(t, v.IsBoolean())
}

func TestSingleBicluster_SingleColumnWideRange(t *testing.T) {
	t.Parallel()
	// Values span four orders of magnitude; every positive row still belongs.
	a, err := sparse.FromDense(5, 1, []float64{1e4, 1, 2, 3, 5})
	require.NoError(t, err)

	u, v, err := bicluster.SingleBicluster(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, u.Indices())
	assert.True(t, u.IsBoolean())
	assert.Equal(t, []int{0}, v.Indices())

	b, err := sparse.FromDense(4, 1, []float64{0, 1e-9, 0, 7})
	require.NoError(t, err)
	u, _, err = bicluster.SingleBicluster(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, u.Indices())
}

func TestSingleBicluster_DominantBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []bicluster.Option
	}{
		{"plain", nil},
		{"compressed", []bicluster.Option{bicluster.WithCompressionLevel(2)}},
		{"row sampling", []bicluster.Option{bicluster.WithRowSampling(3)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts := append([]bicluster.Option{bicluster.WithLogger(testr.New(t))}, tc.opts...)
			u, v, err := bicluster.SingleBicluster(twoBlocks(t), opts...)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, u.Indices())
			assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Indices())
			assert.True(t, u.IsBoolean())
			assert.True(t, v.IsBoolean())
		})
	}
}

func TestSingleBicluster_HeaviestBlockFirst(t *testing.T) {
	t.Parallel()
	u, v, err := bicluster.SingleBicluster(heavySmall(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, u.Indices())
	assert.Equal(t, []int{0, 1}, v.Indices())
}

func TestSingleBicluster_OneExplanatoryColumn(t *testing.T) {
	t.Parallel()
	a, err := sparse.FromDense(4, 3, []float64{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 0, 0,
	})
	require.NoError(t, err)

	u, v, err := bicluster.SingleBicluster(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, u.Indices())
	assert.Equal(t, []int{1}, v.Indices())
}

func TestSingleBicluster_ZeroMatrix(t *testing.T) {
	t.Parallel()
	a, err := sparse.NewCSC(3, 4, nil)
	require.NoError(t, err)

	u, v, err := bicluster.SingleBicluster(a)
	require.NoError(t, err)
	assert.Equal(t, 0, u.NNZ())
	assert.Equal(t, 0, v.NNZ())
	assert.Equal(t, 4, v.Len())
}

func TestSingleBicluster_InvalidInput(t *testing.T) {
	t.Parallel()

	_, _, err := bicluster.SingleBicluster(nil)
	assert.ErrorIs(t, err, bicluster.ErrNilMatrix)

	neg, err := sparse.FromDense(2, 2, []float64{1, -1, 0, 1})
	require.NoError(t, err)
	_, _, err = bicluster.SingleBicluster(neg)
	assert.ErrorIs(t, err, bicluster.ErrNegativeEntry)
}

func TestSingleBicluster_StageErrors(t *testing.T) {
	t.Parallel()

	t.Run("seed", func(t *testing.T) {
		t.Parallel()
		// Products of these entries overflow inside the multiplicative seed.
		a, err := sparse.FromDense(3, 2, []float64{1e200, 1e200, 1e200, 1e200, 1e200, 1e200})
		require.NoError(t, err)

		_, _, err = bicluster.SingleBicluster(a)
		require.ErrorIs(t, err, nmf.ErrNumerical)
		assert.Contains(t, err.Error(), "bicluster: seed on 3x2: nmf: RobustMultiplicative")

		_, err = bicluster.Bicluster(a)
		require.ErrorIs(t, err, nmf.ErrNumerical)
		assert.True(t, strings.HasPrefix(err.Error(), "round 0: bicluster: seed on 3x2:"), err.Error())
	})

	t.Run("update_right", func(t *testing.T) {
		t.Parallel()
		a := planted(t, 5, 4, block{span(0, 3), span(0, 3), 1})

		_, _, err := bicluster.SingleBicluster(a, bicluster.WithRawADMMTolerance(-1))
		require.ErrorIs(t, err, nmf.ErrBadTolerance)
		assert.Contains(t, err.Error(), "bicluster: update_right on 3x4: nmf: RobustADMM(right)")

		res, err := bicluster.BiclusterTrace(a, bicluster.WithRawADMMTolerance(-1))
		require.ErrorIs(t, err, nmf.ErrBadTolerance)
		assert.True(t, strings.HasPrefix(err.Error(), "round 0: bicluster: update_right on 3x4:"), err.Error())
		assert.Empty(t, res.Biclusters)
	})
}

func TestUpdateStages_CompressionFallback(t *testing.T) {
	t.Parallel()
	// Rows 3-5 and column 3 are empty, so at most three lines can be selected.
	a := planted(t, 6, 4, block{span(0, 3), span(0, 3), 1})
	level := bicluster.WithCompressionLevel(3)

	u, err := sparse.NewVector(6, span(0, 5), []float64{1, 1, 1, 1, 1})
	require.NoError(t, err)
	plain, err := bicluster.UpdateRight(a, u)
	require.NoError(t, err)
	compressed, err := bicluster.UpdateRight(a, u, level)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, compressed.Indices())
	assert.Equal(t, plain, compressed)

	v, err := sparse.NewVector(4, span(0, 4), []float64{1, 1, 1, 1})
	require.NoError(t, err)
	plain, err = bicluster.UpdateLeft(a, v)
	require.NoError(t, err)
	compressed, err = bicluster.UpdateLeft(a, v, level)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, compressed.Indices())
	assert.Equal(t, plain, compressed)
}

func TestSingleBicluster_WideSparseMatrix(t *testing.T) {
	const rows, cols = 12, 200000
	// twoBlocks spread over a wide column space.
	var entries []sparse.Entry
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			entries = append(entries, sparse.Entry{Row: i, Col: j, Val: 1})
		}
	}
	for i := 6; i < 10; i++ {
		for j := cols - 3; j < cols; j++ {
			entries = append(entries, sparse.Entry{Row: i, Col: j, Val: 1})
		}
	}
	a, err := sparse.NewCSC(rows, cols, entries)
	require.NoError(t, err)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	u, v, err := bicluster.SingleBicluster(a)
	runtime.ReadMemStats(&after)
	require.NoError(t, err)
	assert.Equal(t, span(0, 6), u.Indices())
	assert.Equal(t, span(0, 5), v.Indices())
	// Refinement touches only the nonempty columns of the row crop; a dense
	// 6×cols crop alone would be ~9.6 MB and ADMM keeps four more.
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(32<<20))
}

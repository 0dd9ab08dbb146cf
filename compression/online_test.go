// SPDX-License-Identifier: MIT
package compression_test

import (
	"testing"

	"github.com/katalvlaran/bicluster/compression"
	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnline_Validation(t *testing.T) {
	t.Parallel()

	_, err := compression.NewOnline(nil, 2)
	assert.ErrorIs(t, err, compression.ErrNilMatrix)

	_, err = compression.NewOnline(fixture(t), 0)
	assert.ErrorIs(t, err, compression.ErrBadSampleCount)

	o, err := compression.NewOnline(fixture(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, o.SampleCount())
	assert.Equal(t, []int{0, 2}, o.Compress())
}

func TestOnline_Removals(t *testing.T) {
	t.Parallel()
	o, err := compression.NewOnline(fixture(t), 2)
	require.NoError(t, err)

	require.NoError(t, o.RemoveRow(2))
	assert.Equal(t, []int{0, 1}, o.Compress())

	// Repeating a removal changes nothing.
	require.NoError(t, o.RemoveRow(2))
	assert.Equal(t, []int{0, 1}, o.Compress())

	// Only rows 1 and 3 remain: no longer worth compressing to 2 rows.
	require.NoError(t, o.RemoveColumn(0))
	assert.Nil(t, o.Compress())

	assert.ErrorIs(t, o.RemoveRow(4), compression.ErrOutOfRange)
	assert.ErrorIs(t, o.RemoveColumn(-1), compression.ErrOutOfRange)
}

func TestOnline_AdditiveDowndate(t *testing.T) {
	t.Parallel()
	o, err := compression.NewOnline(fixture(t), 1)
	require.NoError(t, err)

	u, err := sparse.BooleanVector(4, []int{2})
	require.NoError(t, err)
	v, err := sparse.NewVector(3, []int{2}, []float64{5})
	require.NoError(t, err)

	require.NoError(t, o.AdditiveDowndate(u, v))
	// Row 2 is exactly cancelled; row 0 is now the heaviest.
	assert.Equal(t, []int{0}, o.Compress())

	short := sparse.ZeroVector(2)
	assert.ErrorIs(t, o.AdditiveDowndate(short, v), compression.ErrDimensionMismatch)
	assert.ErrorIs(t, o.AdditiveDowndate(u, short), compression.ErrDimensionMismatch)
}

// TestOnline_TracksMatrix replays the same updates on a sparse.Matrix and
// checks that the incremental selection matches a fresh one.
func TestOnline_TracksMatrix(t *testing.T) {
	t.Parallel()
	a := fixture(t)
	m, err := sparse.NewMatrix(a)
	require.NoError(t, err)
	o, err := compression.NewOnline(a, 2)
	require.NoError(t, err)

	check := func(step string) {
		assert.Equal(t, compression.SelectRows(m.CSC(), 2), o.Compress(), step)
	}
	check("initial")

	u, err := sparse.BooleanVector(4, []int{0, 1})
	require.NoError(t, err)
	v, err := sparse.NewVector(3, []int{0, 1}, []float64{1, 1})
	require.NoError(t, err)
	require.NoError(t, m.SubOuter(u, v))
	require.NoError(t, o.AdditiveDowndate(u, v))
	check("downdate")

	require.NoError(t, m.ZeroColumns([]int{2}))
	require.NoError(t, o.RemoveColumn(2))
	check("column")

	require.NoError(t, m.ZeroRows([]int{0}))
	require.NoError(t, o.RemoveRow(0))
	check("row")
}

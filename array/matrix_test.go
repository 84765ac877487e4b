// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/katalvlaran/pjplot/array"
	"github.com/katalvlaran/pjplot/shape"
	"github.com/katalvlaran/pjplot/storage"
	"github.com/stretchr/testify/require"
)

// TestMatrixRowsCols verifies that Rows() and Cols() report the constructor extents.
func TestMatrixRowsCols(t *testing.T) {
	m, err := array.NewMatrix[float64](3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())
	require.Equal(t, storage.KindGrowable, m.StorageKind())
	require.Equal(t, "2-D array", m.Label())
}

// TestMatrixInvalidDimensions ensures NewMatrix rejects non-positive dimensions.
func TestMatrixInvalidDimensions(t *testing.T) {
	_, err := array.NewMatrix[float64](0, 5)
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = array.NewMatrix[float64](5, -1)
	require.ErrorIs(t, err, shape.ErrBadShape)
}

// TestMatrixWriteThenRead checks the round trip and the r*cols+c layout.
func TestMatrixWriteThenRead(t *testing.T) {
	m, err := array.NewMatrix[int32](3, 4)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, int32(r*10+c))
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, int32(r*10+c), m.At(r, c))
			require.Equal(t, int32(r*10+c), m.Slice()[r*4+c])
		}
	}

	*m.Ref(2, 3) = 99
	require.Equal(t, int32(99), m.At(2, 3))
	require.Equal(t, []int32{20, 21, 22, 99}, m.Row(2))
}

// TestMatrixOutOfRange ensures out-of-range indices fault for both strategies.
func TestMatrixOutOfRange(t *testing.T) {
	static := array.NewStaticMatrix[float64, grid2x3]()
	dynamic, err := array.NewMatrix[float64](2, 3)
	require.NoError(t, err)

	for _, m := range []*array.Matrix[float64]{static, dynamic} {
		require.ErrorIs(t, faultErr(t, func() { _ = m.At(2, 0) }), shape.ErrOutOfRange)
		require.ErrorIs(t, faultErr(t, func() { _ = m.At(0, 3) }), shape.ErrOutOfRange)
		require.ErrorIs(t, faultErr(t, func() { m.Set(-1, 0, 1) }), shape.ErrOutOfRange)
		require.ErrorIs(t, faultErr(t, func() { _ = m.Row(2) }), shape.ErrOutOfRange)
	}
}

func TestStaticMatrixRequiresRank2(t *testing.T) {
	err := faultErr(t, func() { _ = array.NewStaticMatrix[float64, cube234]() })
	require.ErrorIs(t, err, array.ErrNotMatrix)
}

func TestAsMatrixSharesStorage(t *testing.T) {
	a, err := array.NewDynamic[uint8](2, 2)
	require.NoError(t, err)
	m, err := array.AsMatrix(a)
	require.NoError(t, err)
	m.Set(1, 1, 5)
	require.Equal(t, uint8(5), a.At(1, 1))

	v, err := array.NewDynamic[uint8](4)
	require.NoError(t, err)
	_, err = array.AsMatrix(v)
	require.ErrorIs(t, err, array.ErrNotMatrix)
}

// TestMatrixCloneIndependence ensures Clone() returns a deep copy.
func TestMatrixCloneIndependence(t *testing.T) {
	m := array.NewStaticMatrix[float32, grid2x3]()
	m.Set(0, 0, 1)
	cl := m.Clone()
	cl.Set(0, 0, 3)

	require.Equal(t, float32(1), m.At(0, 0))
	require.Equal(t, float32(3), cl.At(0, 0))
	require.Equal(t, storage.KindFixed, cl.StorageKind())
}

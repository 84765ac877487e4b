// SPDX-License-Identifier: MIT

package shape_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pjplot/shape"
	"github.com/stretchr/testify/require"
)

type (
	r1 struct{}
	r2 struct{}
	r3 struct{}
	r4 struct{}
	r5 struct{}
	r6 struct{}
	r7 struct{}
	r8 struct{}
	r9 struct{}

	badMarker struct{}
)

func (r1) Extents() []int        { return []int{7} }
func (r2) Extents() []int        { return []int{3, 4} }
func (r3) Extents() []int        { return []int{2, 3, 4} }
func (r4) Extents() []int        { return []int{2, 2, 3, 1} }
func (r5) Extents() []int        { return []int{1, 2, 3, 2, 1} }
func (r6) Extents() []int        { return []int{2, 1, 2, 1, 2, 3} }
func (r7) Extents() []int        { return []int{1, 1, 1, 5, 1, 1, 2} }
func (r8) Extents() []int        { return []int{2, 2, 2, 2, 2, 2, 2, 2} }
func (r9) Extents() []int        { return []int{1, 2, 1, 2, 1, 2, 1, 2, 3} }
func (badMarker) Extents() []int { return []int{3, 0} }

// mustFault runs f and returns the *IndexError it panics with.
func mustFault(t *testing.T, f func()) *shape.IndexError {
	t.Helper()
	var got *shape.IndexError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a fault")
			ie, ok := r.(*shape.IndexError)
			require.Truef(t, ok, "panic payload %T is not *IndexError", r)
			got = ie
		}()
		f()
	}()

	return got
}

func TestStaticLenPerRank(t *testing.T) {
	tests := []struct {
		s    shape.Shape
		rank int
		n    int
	}{
		{shape.NewStatic[r1](), 1, 7},
		{shape.NewStatic[r2](), 2, 12},
		{shape.NewStatic[r3](), 3, 24},
		{shape.NewStatic[r4](), 4, 12},
		{shape.NewStatic[r5](), 5, 12},
		{shape.NewStatic[r6](), 6, 24},
		{shape.NewStatic[r7](), 7, 10},
		{shape.NewStatic[r8](), 8, 256},
		{shape.NewStatic[r9](), 9, 48},
	}
	for _, tc := range tests {
		require.True(t, tc.s.Static())
		require.Equal(t, tc.rank, tc.s.Rank())
		require.Equal(t, tc.n, tc.s.Len())
	}
}

func TestStaticBadMarkerPanics(t *testing.T) {
	require.PanicsWithError(t, "NewStatic[shape_test.badMarker]: extent[1]=0: shape: invalid shape", func() {
		_ = shape.NewStatic[badMarker]()
	})
}

func TestNewDynamic(t *testing.T) {
	s, err := shape.NewDynamic(4, 5)
	require.NoError(t, err)
	require.False(t, s.Static())
	require.Equal(t, 2, s.Rank())
	require.Equal(t, 20, s.Len())
	require.Equal(t, []int{4, 5}, s.Extents())
	require.Equal(t, []int{5, 1}, s.Strides())
	require.Equal(t, "[4 5]", s.String())

	// Extents returns a copy.
	ext := s.Extents()
	ext[0] = 99
	require.Equal(t, 4, s.Extent(0))
}

func TestNewDynamicInvalid(t *testing.T) {
	_, err := shape.NewDynamic()
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.NewDynamic(3, 0)
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.NewDynamic(-1)
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.NewDynamic(math.MaxInt/2, 3)
	require.ErrorIs(t, err, shape.ErrOverflow)
}

func TestOffsetRowMajor(t *testing.T) {
	s, err := shape.NewDynamic(3, 4)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			off, err := s.Offset(r, c)
			require.NoError(t, err)
			require.Equal(t, r*4+c, off)
		}
	}

	s3 := shape.NewStatic[r3]() // 2x3x4, strides 12,4,1
	require.Equal(t, []int{12, 4, 1}, s3.Strides())
	off, err := s3.Offset(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1*12+2*4+3, off)
}

func TestOffsetVisitsEveryOffsetOnce(t *testing.T) {
	s := shape.NewStatic[r3]()
	seen := make([]bool, s.Len())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				off := shape.MustOffset(s, i, j, k)
				require.False(t, seen[off])
				seen[off] = true
			}
		}
	}
	require.NotContains(t, seen, false)
}

func TestOffsetErrors(t *testing.T) {
	shapes := []shape.Shape{shape.NewStatic[r2]()}
	dyn, err := shape.NewDynamic(3, 4)
	require.NoError(t, err)
	shapes = append(shapes, dyn)

	for _, s := range shapes {
		_, err := s.Offset(3, 0)
		require.ErrorIs(t, err, shape.ErrOutOfRange)
		_, err = s.Offset(0, 4)
		require.ErrorIs(t, err, shape.ErrOutOfRange)
		_, err = s.Offset(-1, 0)
		require.ErrorIs(t, err, shape.ErrOutOfRange)
		_, err = s.Offset(0)
		require.ErrorIs(t, err, shape.ErrRank)
		_, err = s.Offset(0, 0, 0)
		require.ErrorIs(t, err, shape.ErrRank)
	}
}

func TestMustOffsetFaultsAtRuntime(t *testing.T) {
	s := shape.NewStatic[r2]()
	row := 3 // a runtime value, not a literal

	ie := mustFault(t, func() { _ = shape.MustOffset(s, row, 0) })
	require.True(t, errors.Is(ie, shape.ErrOutOfRange))
	require.Equal(t, []int{3, 0}, ie.Index)
	require.Equal(t, []int{3, 4}, ie.Extents)

	ie = mustFault(t, func() { _ = shape.MustOffset(s, 1) })
	require.ErrorIs(t, ie, shape.ErrRank)

	ie = mustFault(t, func() { _ = s.Extent(2) })
	require.ErrorIs(t, ie, shape.ErrRank)
}

func TestEqual(t *testing.T) {
	dyn, err := shape.NewDynamic(3, 4)
	require.NoError(t, err)
	require.True(t, shape.Equal(shape.NewStatic[r2](), dyn))

	other, err := shape.NewDynamic(4, 3)
	require.NoError(t, err)
	require.False(t, shape.Equal(dyn, other))
	require.False(t, shape.Equal(dyn, shape.NewStatic[r1]()))
}

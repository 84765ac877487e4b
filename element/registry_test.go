// SPDX-License-Identifier: MIT

package element_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/pjplot/element"
	"github.com/stretchr/testify/require"
)

// TestRegistryExhaustive checks that every registered Kind is reachable from
// exactly one permitted type and carries a distinct, non-empty name.
func TestRegistryExhaustive(t *testing.T) {
	reached := map[element.Kind]string{
		element.KindOf[int32]():         element.Name[int32](),
		element.KindOf[uint8]():         element.Name[uint8](),
		element.KindOf[uint32]():        element.Name[uint32](),
		element.KindOf[float32]():       element.Name[float32](),
		element.KindOf[float64]():       element.Name[float64](),
		element.KindOf[element.Pixel](): element.Name[element.Pixel](),
	}

	kinds := element.Kinds()
	require.Len(t, reached, len(kinds), "every permitted type must map to its own Kind")

	seen := make(map[string]element.Kind, len(kinds))
	for _, k := range kinds {
		name, ok := reached[k]
		require.Truef(t, ok, "kind %d is not produced by any permitted type", k)
		require.NotEmpty(t, name)
		require.Equal(t, k.String(), name)
		require.Positive(t, k.Size())

		prev, dup := seen[name]
		require.Falsef(t, dup, "name %q shared by %d and %d", name, prev, k)
		seen[name] = k
	}
}

func TestNamesAreStable(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{element.Name[int32](), "int32"},
		{element.Name[uint8](), "uint8"},
		{element.Name[uint32](), "uint32"},
		{element.Name[float32](), "float32"},
		{element.Name[float64](), "float64"},
		{element.Name[element.Pixel](), "pixel"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got)
	}
}

func TestKindOutOfRange(t *testing.T) {
	k := element.Kind(200)
	require.False(t, k.Valid())
	require.Equal(t, "Kind(200)", k.String())
	require.Zero(t, k.Size())
}

func TestPixelPacking(t *testing.T) {
	p := element.Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	require.Equal(t, uint32(0x12345678), p.Packed())
	require.Equal(t, p, element.Unpack(p.Packed()))

	require.Equal(t, p, element.PixelOf(p.ToRGBA()))
	require.Equal(t, element.Pixel{R: 255, A: 255}, element.PixelOf(color.RGBA{R: 255, A: 255}))

	var zero element.Pixel
	r, g, b, a := zero.RGBA()
	require.Zero(t, r|g|b|a)
}

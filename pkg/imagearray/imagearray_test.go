package imagearray

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	t.Run("gray", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 3, 2))
		img.SetGray(0, 0, color.Gray{Y: 0})
		img.SetGray(2, 0, color.Gray{Y: 255})
		img.SetGray(1, 1, color.Gray{Y: 51})

		m := FromImage(img)
		require.NotNil(t, m)
		rows, cols := m.Dims()
		require.Equal(t, 2, rows)
		require.Equal(t, 3, cols)
		require.Equal(t, 0.0, m.At(0, 0))
		require.Equal(t, 1.0, m.At(0, 2))
		require.InDelta(t, 0.2, m.At(1, 1), 1e-9)
	})

	t.Run("offset_bounds", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(10, 20, 12, 21))
		img.Set(11, 20, color.White)

		m := FromImage(img)
		require.NotNil(t, m)
		require.Equal(t, 0.0, m.At(0, 0))
		require.Equal(t, 1.0, m.At(0, 1))
	})

	t.Run("gray16_offset_bounds", func(t *testing.T) {
		img := image.NewGray16(image.Rect(5, 5, 7, 7))
		img.SetGray16(6, 6, color.Gray16{Y: 0xffff})

		m := FromImage(img)
		require.Equal(t, 1.0, m.At(1, 1))
		require.Equal(t, 0.0, m.At(0, 1))
	})

	t.Run("empty", func(t *testing.T) {
		require.Nil(t, FromImage(image.NewGray(image.Rect(0, 0, 0, 5))))
	})
}

package nearest

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"gonum.org/v1/gonum/mat"
)

func coordsOf(points ...[2]float64) *mat.Dense {
	coords := mat.NewDense(2, len(points), nil)
	for idx, p := range points {
		coords.Set(0, idx, p[0])
		coords.Set(1, idx, p[1])
	}
	return coords
}

func TestKernel_Apply(t *testing.T) {
	ctx := context.Background()
	source := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	k := New()

	t.Run("integer_coordinates", func(t *testing.T) {
		var points [][2]float64
		var expected []float64
		for r := 0; r < 3; r++ {
			for c := 0; c < 4; c++ {
				points = append(points, [2]float64{float64(r), float64(c)})
				expected = append(expected, source.At(r, c))
			}
		}
		result, err := k.Apply(ctx, source, coordsOf(points...))
		require.NoError(t, err)
		require.Equal(t, expected, result)
	})

	t.Run("rounding", func(t *testing.T) {
		result, err := k.Apply(ctx, source, coordsOf(
			[2]float64{0.4, 0.4},
			[2]float64{0.6, 0.4},
			[2]float64{1.49, 2.51},
			[2]float64{-0.4, -0.4},
		))
		require.NoError(t, err)
		require.Equal(t, []float64{1, 5, 8, 1}, result)
	})

	t.Run("half_away_from_zero", func(t *testing.T) {
		result, err := k.Apply(ctx, source, coordsOf(
			[2]float64{0.5, 0},
			[2]float64{1.5, 0},
			[2]float64{0, 2.5},
			[2]float64{-0.5, 0},
		))
		require.NoError(t, err)
		require.Equal(t, []float64{5, 9, 4, 0}, result)
	})

	t.Run("out_of_domain_is_zero", func(t *testing.T) {
		result, err := k.Apply(ctx, source, coordsOf(
			[2]float64{-0.6, 0},
			[2]float64{2.5, 0},
			[2]float64{0, 3.5},
			[2]float64{0, -1},
			[2]float64{1e300, 0},
			[2]float64{-1e300, 0},
			[2]float64{math.NaN(), 0},
			[2]float64{0, math.Inf(1)},
		))
		require.NoError(t, err)
		require.Equal(t, make([]float64, 8), result)
	})

	t.Run("output_sized_by_coordinates", func(t *testing.T) {
		for _, n := range []int{1, 5, 12, 100} {
			coords := mat.NewDense(2, n, nil)
			result, err := k.Apply(ctx, source, coords)
			require.NoError(t, err)
			assert.Len(t, result, n)
			for _, v := range result {
				assert.Equal(t, 1.0, v)
			}
		}
	})

	t.Run("invalid_coordinates", func(t *testing.T) {
		_, err := k.Apply(ctx, source, mat.NewDense(3, 2, nil))
		var errCoords interpolation.ErrInvalidCoordinates
		require.True(t, errors.As(err, &errCoords), "%v", err)
		assert.Equal(t, 3, errCoords.Rows)

		_, err = k.Apply(ctx, source, nil)
		require.Error(t, err)
	})

	t.Run("source_is_not_modified", func(t *testing.T) {
		orig := mat.DenseCopyOf(source)
		_, err := k.Apply(ctx, source, coordsOf([2]float64{1, 1}, [2]float64{7, 7}))
		require.NoError(t, err)
		require.True(t, mat.Equal(orig, source))
	})
}

func TestKernel_Description(t *testing.T) {
	k := New()
	require.Equal(t, Method, k.Method())
	require.Contains(t, k.Description(), "round(i)")
}

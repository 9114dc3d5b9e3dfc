// Package nearest implements nearest neighbour sampling:
//
//	f(I; i, j) = I(round(i), round(j))
//
// Coordinates are rounded half away from zero (math.Round). A point
// whose rounded position falls outside of the source array samples 0.
package nearest

import (
	"context"
	"math"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"gonum.org/v1/gonum/mat"
)

const (
	Method      = "Nearest Neighbour (NN)"
	Description = `Given coordinate in the array nearest neighbour sampling simply rounds coordinates points:
    f(I; i,j) = I( round(i), round(j))
Points rounding outside of the array are sampled as 0.`
)

type Kernel struct{}

var _ interpolation.Kernel = (*Kernel)(nil)

func New() *Kernel {
	return &Kernel{}
}

func (*Kernel) Method() string {
	return Method
}

func (*Kernel) Description() string {
	return Description
}

func (k *Kernel) Apply(
	ctx context.Context,
	source mat.Matrix,
	coords mat.Matrix,
) ([]float64, error) {
	n, err := interpolation.CheckCoordinates(coords)
	if err != nil {
		return nil, err
	}
	logger.Tracef(ctx, "nearest.Apply: %d points", n)

	result := make([]float64, n)
	if source == nil {
		return result, nil
	}
	rows, cols := source.Dims()
	for idx := range result {
		r, ok := roundIndex(coords.At(0, idx), rows)
		if !ok {
			continue
		}
		c, ok := roundIndex(coords.At(1, idx), cols)
		if !ok {
			continue
		}
		result[idx] = source.At(r, c)
	}
	return result, nil
}

// roundIndex rounds x to the nearest index and reports whether
// it lies within [0, size).
func roundIndex(x float64, size int) (int, bool) {
	r := math.Round(x)
	// also rejects NaN
	if !(r >= 0 && r < float64(size)) {
		return 0, false
	}
	return int(r), true
}

// Package quadspline implements sampling through an interpolating
// quadratic B-spline model of the source array.
//
// The source array is treated as extended by zeros in every direction.
// Prefilter turns it into B-spline coefficients such that the spline
// passes exactly through every sample (including the zeros of the
// extension), and the spline is then evaluated at fractional coordinates
// as a tensor product of 1-D quadratic B-splines over a 3x3 neighbourhood.
// The result is continuous everywhere and decays to 0 away from the array.
package quadspline

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"gonum.org/v1/gonum/mat"
)

const (
	Method      = "Quadratic B-spline sampler (SR)"
	Description = `Interpolating quadratic (order 2) B-spline:
    f(I; i,j) = sum_{k,l} c[k,l] B2(i-k) B2(j-l)
where c are the coefficients of the recursive B-spline prefilter of I
extended by the constant 0 beyond its boundary.
See M. Unser, "Splines: A perfect fit for signal and image processing",
IEEE Signal Processing Magazine, 1999.`
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
	if _, err := interpolation.CheckCoordinates(coords); err != nil {
		return nil, err
	}
	if source == nil {
		return k.ApplyCoefficients(ctx, &Coefficients{}, coords)
	}
	return k.ApplyCoefficients(ctx, Prefilter(source), coords)
}

// ApplyCoefficients is Apply with an already prefiltered source. It is
// useful when the same source is sampled many times with different
// coordinates (e.g. on every iteration of a registration loop).
func (k *Kernel) ApplyCoefficients(
	ctx context.Context,
	coeffs *Coefficients,
	coords mat.Matrix,
) ([]float64, error) {
	n, err := interpolation.CheckCoordinates(coords)
	if err != nil {
		return nil, err
	}
	rows, cols := coeffs.Dims()
	logger.Tracef(ctx, "quadspline.Apply: %d points over a %dx%d source", n, rows, cols)

	result := make([]float64, n)
	for idx := range result {
		result[idx] = coeffs.At(coords.At(0, idx), coords.At(1, idx))
	}
	return result, nil
}

package sampler

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"
)

// WarpField is the per-call displacement added to a CoordinateGrid:
// I displaces the row and J the column component of every point.
// It is a (2, H, W) array split into its two H x W components.
type WarpField struct {
	I mat.Matrix
	J mat.Matrix
}

// NewWarpFieldFromFlat builds a WarpField from a flat row-major (2, rows, cols)
// buffer. The buffer is not copied.
func NewWarpFieldFromFlat(rows, cols int, data []float64) (WarpField, error) {
	if rows <= 0 || cols <= 0 {
		return WarpField{}, fmt.Errorf("invalid warp field shape (2, %d, %d)", rows, cols)
	}
	if len(data) != 2*rows*cols {
		return WarpField{}, fmt.Errorf("expected %d values for a (2, %d, %d) warp field, but received %d", 2*rows*cols, rows, cols, len(data))
	}
	size := rows * cols
	return WarpField{
		I: mat.NewDense(rows, cols, data[:size:size]),
		J: mat.NewDense(rows, cols, data[size:]),
	}, nil
}

// ZeroWarpField returns the identity warp of the given shape.
func ZeroWarpField(rows, cols int) WarpField {
	return WarpField{
		I: mat.NewDense(rows, cols, nil),
		J: mat.NewDense(rows, cols, nil),
	}
}

// ConstantWarpField returns a warp field shifting every point by (di, dj).
func ConstantWarpField(rows, cols int, di, dj float64) WarpField {
	i := make([]float64, rows*cols)
	j := make([]float64, rows*cols)
	for idx := range i {
		i[idx] = di
		j[idx] = dj
	}
	return WarpField{
		I: mat.NewDense(rows, cols, i),
		J: mat.NewDense(rows, cols, j),
	}
}

// Check returns an error if the warp field cannot be applied to a grid
// of the given shape. All the problems found are reported together.
func (w WarpField) Check(expected Shape) error {
	var mErr *multierror.Error
	for _, component := range []struct {
		Name string
		M    mat.Matrix
	}{
		{Name: "the i component of the warp field", M: w.I},
		{Name: "the j component of the warp field", M: w.J},
	} {
		actual := ShapeOf(component.M)
		if actual != expected {
			mErr = multierror.Append(mErr, ErrShapeMismatch{
				Name:     component.Name,
				Expected: expected,
				Actual:   actual,
			})
		}
	}
	return mErr.ErrorOrNil()
}

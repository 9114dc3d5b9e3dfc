package sampler

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"
)

// CoordinateGrid is the immutable set of base (unwarped) sampling positions:
// I holds the row components and J the column components of H*W points.
type CoordinateGrid struct {
	i, j  *mat.Dense
	shape Shape
}

// NewCoordinateGrid copies and validates the given components.
func NewCoordinateGrid(i, j mat.Matrix) (*CoordinateGrid, error) {
	var mErr *multierror.Error
	if i == nil {
		mErr = multierror.Append(mErr, fmt.Errorf("the i component is not set"))
	}
	if j == nil {
		mErr = multierror.Append(mErr, fmt.Errorf("the j component is not set"))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, ErrConfiguration{Reason: err.Error()}
	}

	shape := ShapeOf(i)
	if shape.NumElements() == 0 {
		return nil, ErrConfiguration{Reason: "the coordinate grid is empty"}
	}
	if jShape := ShapeOf(j); jShape != shape {
		return nil, ErrShapeMismatch{Name: "the j component of the coordinate grid", Expected: shape, Actual: jShape}
	}

	if err := checkFinite(i); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("the i component: %w", err))
	}
	if err := checkFinite(j); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("the j component: %w", err))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid coordinate grid: %w", err)
	}

	return &CoordinateGrid{
		i:     mat.DenseCopyOf(i),
		j:     mat.DenseCopyOf(j),
		shape: shape,
	}, nil
}

// NewRegularCoordinateGrid returns the identity grid of the given shape:
// the point (r, c) is located at i=r, j=c.
func NewRegularCoordinateGrid(rows, cols int) (*CoordinateGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrConfiguration{Reason: fmt.Sprintf("invalid grid shape %dx%d", rows, cols)}
	}
	i := mat.NewDense(rows, cols, nil)
	j := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i.Set(r, c, float64(r))
			j.Set(r, c, float64(c))
		}
	}
	return &CoordinateGrid{i: i, j: j, shape: Shape{Rows: rows, Cols: cols}}, nil
}

func checkFinite(m mat.Matrix) error {
	rows, cols := m.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("non-finite value %v at (%d, %d)", v, r, c)
			}
		}
	}
	return nil
}

func (g *CoordinateGrid) Shape() Shape {
	return g.shape
}

// I returns a read-only view of the row components.
func (g *CoordinateGrid) I() mat.Matrix {
	return readOnly{g.i}
}

// J returns a read-only view of the column components.
func (g *CoordinateGrid) J() mat.Matrix {
	return readOnly{g.j}
}

// readOnly hides the mutating methods of *mat.Dense.
type readOnly struct {
	m *mat.Dense
}

func (v readOnly) Dims() (int, int) {
	return v.m.Dims()
}

func (v readOnly) At(i, j int) float64 {
	return v.m.At(i, j)
}

func (v readOnly) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

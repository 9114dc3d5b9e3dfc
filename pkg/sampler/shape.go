package sampler

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape is the spatial (rows x columns) shape of a 2-D array.
type Shape struct {
	Rows int
	Cols int
}

func ShapeOf(m mat.Matrix) Shape {
	if m == nil {
		return Shape{}
	}
	rows, cols := m.Dims()
	return Shape{Rows: rows, Cols: cols}
}

// NumElements returns the amount of points in the shape.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

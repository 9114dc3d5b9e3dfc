package interpolation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidCoordinates is returned when a coordinate list is not a 2xN matrix.
type ErrInvalidCoordinates struct {
	Rows int
	Cols int
}

func (e ErrInvalidCoordinates) Error() string {
	return fmt.Sprintf("expected a 2xN coordinate list, but received %dx%d", e.Rows, e.Cols)
}

// CheckCoordinates returns the amount of query points in coords.
func CheckCoordinates(coords mat.Matrix) (int, error) {
	if coords == nil {
		return 0, ErrInvalidCoordinates{}
	}
	rows, cols := coords.Dims()
	if rows != 2 {
		return 0, ErrInvalidCoordinates{Rows: rows, Cols: cols}
	}
	return cols, nil
}

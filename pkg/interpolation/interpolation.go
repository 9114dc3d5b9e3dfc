package interpolation

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// Kernel evaluates a source array at arbitrary (fractional) coordinates.
//
// coords is a 2xN matrix: row 0 holds the i (row) components and row 1
// the j (column) components of N query points. The result always has
// exactly N values, in the order of the columns of coords. Points
// outside of the source domain are never an error; each kernel
// documents its own boundary policy.
type Kernel interface {
	Description

	Apply(
		ctx context.Context,
		source mat.Matrix,
		coords mat.Matrix,
	) ([]float64, error)
}

// Description is the diagnostics-only metadata of an interpolation method.
type Description interface {
	Method() string
	Description() string
}

/* for easier copy&paste:

func () Method() string {
}

func () Description() string {
}

func () Apply(
	ctx context.Context,
	source mat.Matrix,
	coords mat.Matrix,
) ([]float64, error) {
}

*/

package sampler

import (
	"fmt"
)

// ErrConfiguration is returned when a Sampler is used without a valid
// CoordinateGrid or Kernel.
type ErrConfiguration struct {
	Reason string
}

func (e ErrConfiguration) Error() string {
	return fmt.Sprintf("the sampler is not configured: %s", e.Reason)
}

// ErrShapeMismatch is returned when an array does not have the shape
// of the CoordinateGrid it is combined with.
type ErrShapeMismatch struct {
	Name     string
	Expected Shape
	Actual   Shape
}

func (e ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s has shape %s, but %s was expected", e.Name, e.Actual, e.Expected)
}

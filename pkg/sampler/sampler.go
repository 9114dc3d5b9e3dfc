// Package sampler resamples a source array at the positions of a
// CoordinateGrid displaced by a WarpField.
//
// A Sampler owns an immutable CoordinateGrid and an interpolation.Kernel.
// On each call it adds the warp to the grid, flattens the result into
// a 2xN coordinate list (row-major point order) and lets the kernel
// evaluate the source array there. A Sampler holds no mutable state,
// so Sample may be called concurrently.
package sampler

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation"
	"gonum.org/v1/gonum/mat"
)

type Sampler struct {
	grid   *CoordinateGrid
	kernel interpolation.Kernel
}

var _ interpolation.Description = (*Sampler)(nil)

func New(
	grid *CoordinateGrid,
	kernel interpolation.Kernel,
) (*Sampler, error) {
	s := &Sampler{
		grid:   grid,
		kernel: kernel,
	}
	if err := s.checkConfiguration(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sampler) checkConfiguration() error {
	if s == nil || s.grid == nil {
		return ErrConfiguration{Reason: "appropriately defined coordinates not provided"}
	}
	if s.kernel == nil {
		return ErrConfiguration{Reason: "the interpolation kernel is not set"}
	}
	return nil
}

func (s *Sampler) Grid() *CoordinateGrid {
	return s.grid
}

func (s *Sampler) Kernel() interpolation.Kernel {
	return s.kernel
}

// Sample evaluates source at grid+warp and returns one value per grid
// point in row-major order. Neither source nor warp is modified or retained.
func (s *Sampler) Sample(
	ctx context.Context,
	source mat.Matrix,
	warp WarpField,
) (_ret []float64, _err error) {
	logger.Tracef(ctx, "Sample: source %s, warp %s/%s", ShapeOf(source), ShapeOf(warp.I), ShapeOf(warp.J))
	defer func() { logger.Tracef(ctx, "/Sample: %d values, %v", len(_ret), _err) }()

	coords, err := s.Coordinates(warp)
	if err != nil {
		return nil, err
	}

	result, err := s.kernel.Apply(ctx, source, coords)
	if err != nil {
		return nil, fmt.Errorf("unable to apply the kernel %q: %w", s.kernel.Method(), err)
	}
	return result, nil
}

// Coordinates returns the absolute sampling positions grid+warp as a 2xN
// matrix: row 0 holds the i components and row 1 the j components.
func (s *Sampler) Coordinates(warp WarpField) (*mat.Dense, error) {
	if err := s.checkConfiguration(); err != nil {
		return nil, err
	}
	shape := s.grid.Shape()
	if err := warp.Check(shape); err != nil {
		return nil, err
	}

	coords := mat.NewDense(2, shape.NumElements(), nil)
	for axis, component := range [2]struct {
		Base mat.Matrix
		Warp mat.Matrix
	}{
		{Base: s.grid.i, Warp: warp.I},
		{Base: s.grid.j, Warp: warp.J},
	} {
		row := coords.RawRowView(axis)
		for r := 0; r < shape.Rows; r++ {
			for c := 0; c < shape.Cols; c++ {
				row[r*shape.Cols+c] = component.Base.At(r, c) + component.Warp.At(r, c)
			}
		}
	}
	return coords, nil
}

func (s *Sampler) Method() string {
	if s.kernel == nil {
		return ""
	}
	return s.kernel.Method()
}

func (s *Sampler) Description() string {
	if s.kernel == nil {
		return ""
	}
	return s.kernel.Description()
}

func (s *Sampler) String() string {
	return fmt.Sprintf("Method: %s \n %s", s.Method(), s.Description())
}

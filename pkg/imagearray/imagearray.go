// Package imagearray converts in-memory images into source arrays.
package imagearray

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// FromImage returns the luminance of img scaled to [0, 1], indexed as
// (row, column) relative to the top-left corner of img.Bounds().
// It returns nil for an empty image.
func FromImage(img image.Image) *mat.Dense {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil
	}

	gray, ok := img.(*image.Gray16)
	if !ok {
		gray = image.NewGray16(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Copy(gray, image.Point{}, img, bounds, draw.Src, nil)
		bounds = gray.Bounds()
	}

	rows, cols := bounds.Dy(), bounds.Dx()
	result := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := gray.Gray16At(bounds.Min.X+c, bounds.Min.Y+r).Y
			result.Set(r, c, float64(v)/math.MaxUint16)
		}
	}
	return result
}

package quadspline

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// Pole is the pole of the quadratic B-spline inverse filter.
	Pole = 2*math.Sqrt2 - 3

	// gain is (1-Pole)(1-1/Pole).
	gain = 8

	// Padding is the amount of zero samples added on each side of the
	// source before prefiltering. Coefficients of the zero-extended array
	// decay as |Pole|^d with the distance d from the array, so beyond
	// Padding they are below 1e-18 of the source magnitude and are
	// treated as 0.
	Padding = 24
)

// Coefficients are the quadratic B-spline coefficients of a source array
// extended by zeros. They are read-only after Prefilter and may be shared
// between goroutines.
type Coefficients struct {
	rows, cols int
	padded     *mat.Dense
}

// Prefilter computes the interpolating quadratic B-spline coefficients
// of source. The filter is separable: it is applied along i, then along j.
func Prefilter(source mat.Matrix) *Coefficients {
	rows, cols := source.Dims()
	c := &Coefficients{rows: rows, cols: cols}
	if rows == 0 || cols == 0 {
		return c
	}

	paddedRows, paddedCols := rows+2*Padding, cols+2*Padding
	data := make([]float64, paddedRows*paddedCols)
	for r := 0; r < rows; r++ {
		offset := (r+Padding)*paddedCols + Padding
		for col := 0; col < cols; col++ {
			data[offset+col] = source.At(r, col)
		}
	}

	// padding columns are all zeros and stay zeros after filtering along i
	line := make([]float64, paddedRows)
	for col := Padding; col < Padding+cols; col++ {
		for r := range line {
			line[r] = data[r*paddedCols+col]
		}
		filterLine(line)
		for r, v := range line {
			data[r*paddedCols+col] = v
		}
	}
	for r := 0; r < paddedRows; r++ {
		filterLine(data[r*paddedCols : (r+1)*paddedCols])
	}

	c.padded = mat.NewDense(paddedRows, paddedCols, data)
	return c
}

// filterLine replaces the samples s (zero beyond both ends) with
// their quadratic B-spline coefficients, in place.
func filterLine(s []float64) {
	n := len(s)
	if n == 0 {
		return
	}
	for k := range s {
		s[k] *= gain
	}

	// causal pass; nothing precedes s[0]
	for k := 1; k < n; k++ {
		s[k] += Pole * s[k-1]
	}

	// anti-causal pass; the causal output beyond s[n-1] is s[n-1]*Pole^m
	s[n-1] *= Pole / (Pole*Pole - 1)
	for k := n - 2; k >= 0; k-- {
		s[k] = Pole * (s[k+1] - s[k])
	}
}

// Dims returns the shape of the source array the coefficients were computed from.
func (c *Coefficients) Dims() (int, int) {
	return c.rows, c.cols
}

// At evaluates the spline at (i, j), given in source array coordinates.
func (c *Coefficients) At(i, j float64) float64 {
	if c.padded == nil {
		return 0
	}
	raw := c.padded.RawMatrix()

	x, y := i+Padding, j+Padding
	// no coefficient within reach; also rejects NaN and keeps the
	// float->int conversions below in range
	if !(x > -2 && x < float64(raw.Rows)+1) || !(y > -2 && y < float64(raw.Cols)+1) {
		return 0
	}

	r0, wr := weights(x)
	c0, wc := weights(y)

	var sum float64
	for a, wa := range wr {
		r := r0 + a
		if r < 0 || r >= raw.Rows {
			continue
		}
		row := raw.Data[r*raw.Stride : r*raw.Stride+raw.Cols]
		var rowSum float64
		for b, wb := range wc {
			col := c0 + b
			if col < 0 || col >= raw.Cols {
				continue
			}
			rowSum += wb * row[col]
		}
		sum += wa * rowSum
	}
	return sum
}

// weights returns the first of the three coefficient indexes supporting x
// and the quadratic B-spline weights of these indexes.
func weights(x float64) (int, [3]float64) {
	center := math.Floor(x + 0.5)
	t := x - center
	return int(center) - 1, [3]float64{
		0.5 * (0.5 - t) * (0.5 - t),
		0.75 - t*t,
		0.5 * (0.5 + t) * (0.5 + t),
	}
}

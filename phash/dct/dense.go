package dct

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TransformDense is Transform for gonum matrices. m must be N×N.
func (t *Transformer) TransformDense(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != t.n || c != t.n {
		return nil, fmt.Errorf("%w: got %dx%d matrix, want %dx%d", ErrInvalidInputSize, r, c, t.n, t.n)
	}

	input := make([]float64, t.area)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			input[i*c+j] = m.At(i, j)
		}
	}
	out, err := t.Transform(input)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(t.n, t.n, out), nil
}

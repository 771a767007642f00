package dct

import "gonum.org/v1/gonum/mat"

// separable evaluates F = B·X·Bᵀ / 4 where B[f][x] = c(f)·cos(pi*(2x+1)*f/(2N)).
func (t *Transformer) separable(dst, src []float64) {
	// NewDense shares src; Mul only reads its operands.
	x := mat.NewDense(t.n, t.n, src)

	var tmp, res mat.Dense
	tmp.Mul(t.basis, x)
	res.Mul(&tmp, t.basis.T())

	for u := 0; u < t.n; u++ {
		for v, s := range res.RawRowView(u) {
			dst[u*t.n+v] = s / 4.0
		}
	}
}

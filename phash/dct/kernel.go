package dct

// cell computes the coefficient at (u, v). The sum runs over the flat block
// in row-major order.
func (t *Transformer) cell(src []float64, u, v int) float64 {
	n := t.n
	cu := t.cos[u*n : u*n+n]
	cv := t.cos[v*n : v*n+n]

	sum := 0.0
	for g, x := range src {
		sum += cu[g/n] * cv[g%n] * x
	}
	return sum * ((t.coeffs[u] * t.coeffs[v]) / 4.0)
}

func (t *Transformer) row(dst, src []float64, u int) {
	for v := 0; v < t.n; v++ {
		dst[u*t.n+v] = t.cell(src, u, v)
	}
}

func (t *Transformer) direct(dst, src []float64) {
	for u := 0; u < t.n; u++ {
		t.row(dst, src, u)
	}
}

// parallel writes disjoint rows of dst from separate goroutines.
func (t *Transformer) parallel(dst, src []float64) {
	t.pool.Run(t.n, func(u int) {
		t.row(dst, src, u)
	})
}

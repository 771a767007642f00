package dct

// Inverse reconstructs an N×N block from coefficients produced by Transform.
// With D[f][x] = c(f)*cos(pi*(2x+1)*f/(2N)) the basis satisfies D·Dᵀ = (N/2)·I,
// so undoing the fixed divisor of 4 gives
//
//	x[r*N+k] = 16/N² * sum_{u,v} c(u)*c(v)*F[u*N+v]*cos_u(r)*cos_v(k)
//
// which is the familiar /4 inverse when N = 8.
func (t *Transformer) Inverse(coeffs []float64) ([]float64, error) {
	if err := t.checkLen(coeffs); err != nil {
		return nil, err
	}

	n := t.n
	weighted := make([]float64, t.area)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			weighted[u*n+v] = coeffs[u*n+v] * t.coeffs[u] * t.coeffs[v]
		}
	}
	scale := 16.0 / float64(t.area)

	out := make([]float64, t.area)
	row := func(r int) {
		for k := 0; k < n; k++ {
			sum := 0.0
			for g, w := range weighted {
				sum += t.cos[(g/n)*n+r] * t.cos[(g%n)*n+k] * w
			}
			out[r*n+k] = sum * scale
		}
	}

	if t.pool != nil {
		t.pool.Run(n, row)
	} else {
		for r := 0; r < n; r++ {
			row(r)
		}
	}
	return out, nil
}

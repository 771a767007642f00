package dct

import "gonum.org/v1/gonum/dsp/fourier"

// fourier uses QuarterWaveFFT.CosSequence, which computes the unnormalized
// DCT-II
//
//	y[f] = 4 * sum_x s[x] * cos(pi*(2x+1)*f/(2N))
//
// A row pass followed by a column pass leaves 16 times the double sum, so the
// result is scaled by c(u)*c(v)/64.
func (t *Transformer) fourier(dst, src []float64) {
	q := t.ffts.Get().(*fourier.QuarterWaveFFT)
	defer t.ffts.Put(q)

	n := t.n
	for r := 0; r < n; r++ {
		q.CosSequence(dst[r*n:r*n+n], src[r*n:r*n+n])
	}

	col := make([]float64, n)
	for v := 0; v < n; v++ {
		for r := 0; r < n; r++ {
			col[r] = dst[r*n+v]
		}
		q.CosSequence(col, col)
		for u := 0; u < n; u++ {
			dst[u*n+v] = col[u] * ((t.coeffs[u] * t.coeffs[v]) / 64.0)
		}
	}
}

// Package dct implements the 2D Type-II DCT used to derive perceptual hashes.
//
// For an N×N block x stored in row-major order the coefficient at (u, v) is
//
//	F[u*N+v] = c(u) * c(v) / 4 * sum_{r,k} x[r*N+k] * cos(pi*(2r+1)*u/(2N)) * cos(pi*(2k+1)*v/(2N))
//	c(0) = 1/sqrt(2), c(k>0) = 1
//
// The divisor is 4 for every N. The transform is orthonormal only for N = 8;
// other sizes keep the same constant so that stored fingerprints stay
// comparable.
package dct

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/seeker/common-hash/internal/worker"
)

// DefaultSize is the block size used when no size is given.
const DefaultSize = 8

// Transformer computes the DCT of N×N blocks. Its parameters are fixed at
// construction and never change, so a Transformer may be shared by any
// number of goroutines.
type Transformer struct {
	n        int
	area     int
	coeffs   []float64 // c(k)
	cos      []float64 // cos[f*n+x] = cos(pi*(2x+1)*f/(2n))
	strategy Strategy

	pool  *worker.Pool // Parallel
	basis *mat.Dense   // Separable: basis[f][x] = c(f)*cos[f*n+x]
	ffts  sync.Pool    // Fourier: *fourier.QuarterWaveFFT, work buffers are mutable
}

type options struct {
	size     int
	strategy Strategy
	workers  int
}

// Option configures a Transformer.
type Option func(*options)

// WithSize sets the block dimension N.
func WithSize(n int) Option {
	return func(o *options) { o.size = n }
}

// WithStrategy selects the evaluation strategy. The default is Direct.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithWorkers sets how many goroutines the Parallel strategy uses.
// Values <= 0 mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// New returns a Transformer for DefaultSize blocks unless WithSize says otherwise.
func New(opts ...Option) (*Transformer, error) {
	o := options{size: DefaultSize, strategy: Direct}
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, o.size)
	}
	if !o.strategy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.strategy))
	}

	n := o.size
	t := &Transformer{
		n:        n,
		area:     n * n,
		coeffs:   make([]float64, n),
		cos:      make([]float64, n*n),
		strategy: o.strategy,
	}
	for k := 1; k < n; k++ {
		t.coeffs[k] = 1
	}
	t.coeffs[0] = 1 / math.Sqrt(2.0)

	for f := 0; f < n; f++ {
		for x := 0; x < n; x++ {
			t.cos[f*n+x] = math.Cos(math.Pi * float64(2*x+1) * float64(f) / (2.0 * float64(n)))
		}
	}

	switch o.strategy {
	case Parallel:
		workers := o.workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		t.pool = worker.NewPool(workers)
	case Separable:
		basis := make([]float64, n*n)
		for f := 0; f < n; f++ {
			for x := 0; x < n; x++ {
				basis[f*n+x] = t.coeffs[f] * t.cos[f*n+x]
			}
		}
		t.basis = mat.NewDense(n, n, basis)
	case Fourier:
		t.ffts.New = func() any { return fourier.NewQuarterWaveFFT(n) }
	}

	slog.Debug("dct transformer ready", "size", n, "strategy", o.strategy)
	return t, nil
}

// Size returns the block dimension N.
func (t *Transformer) Size() int { return t.n }

// Area returns N*N, the number of values in a block.
func (t *Transformer) Area() int { return t.area }

// Strategy returns the evaluation strategy.
func (t *Transformer) Strategy() Strategy { return t.strategy }

// Coefficients returns a copy of the normalization coefficients c(k).
func (t *Transformer) Coefficients() []float64 {
	return append([]float64(nil), t.coeffs...)
}

// Transform returns the DCT coefficients of input, an N×N block in row-major
// order. The input is not modified and the result is freshly allocated.
func (t *Transformer) Transform(input []float64) ([]float64, error) {
	if err := t.checkLen(input); err != nil {
		return nil, err
	}

	out := make([]float64, t.area)
	switch t.strategy {
	case Parallel:
		t.parallel(out, input)
	case Separable:
		t.separable(out, input)
	case Fourier:
		t.fourier(out, input)
	default:
		t.direct(out, input)
	}
	return out, nil
}

func (t *Transformer) checkLen(m []float64) error {
	if len(m) != t.area {
		return fmt.Errorf("%w: got %d values, want %d (%dx%d)", ErrInvalidInputSize, len(m), t.area, t.n, t.n)
	}
	return nil
}

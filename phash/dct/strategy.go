package dct

import (
	"fmt"
	"strings"
)

// Strategy selects how a Transformer evaluates the transform. Every strategy
// honours the same numeric contract; they differ only in speed and in the
// order floating point sums are reduced.
type Strategy int

const (
	// Direct evaluates each coefficient with a sequential sum over the block,
	// in row-major input order.
	Direct Strategy = iota

	// Parallel computes output rows concurrently. Each coefficient is
	// evaluated exactly as in Direct, so results are bit-identical.
	Parallel

	// Separable computes C·X·Cᵀ with gonum matrix products.
	Separable

	// Fourier runs row and column passes of a quarter-wave FFT.
	Fourier
)

var strategyNames = [...]string{
	Direct:    "direct",
	Parallel:  "parallel",
	Separable: "separable",
	Fourier:   "fourier",
}

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{Direct, Parallel, Separable, Fourier}
}

func (s Strategy) valid() bool {
	return s >= Direct && int(s) < len(strategyNames)
}

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy with the given name. Matching ignores
// case and surrounding whitespace.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Package stat contains the numeric transforms applied to association
// results before plotting.
package stat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrNoData = errors.New("stat: no data")

// NegLog10 returns -log10(p) for every p in ps as a new slice.
// Probabilities in (0,1] map to [0,+Inf); 1 maps to +0 and 0 to +Inf.
func NegLog10(ps []float64) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = 0 - math.Log10(p)
	}
	return out
}

// Max returns the largest value of xs.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}
	return floats.Max(xs), nil
}

// Shift returns a copy of xs with offset added to every element.
func Shift(xs []float64, offset float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.AddConst(offset, out)
	return out
}

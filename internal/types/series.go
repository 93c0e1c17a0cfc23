package types

import (
	"math"

	"github.com/moznion/go-optional"
)

// Series is an indicator output: one optional value per input candle, index
// aligned with the input. None marks an index where the value is undefined.
type Series []optional.Option[float64]

// NewSeries returns a series of n None values.
func NewSeries(n int) Series {
	return make(Series, n)
}

// Set stores v at index i. NaN and infinities are stored as None so that they
// never reach callers.
func (s Series) Set(i int, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s[i] = optional.None[float64]()

		return
	}

	s[i] = optional.Some(v)
}

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s) || s[i].IsNone() {
		return 0, false
	}

	return s[i].Unwrap(), true
}

// Defined counts the Some entries.
func (s Series) Defined() int {
	n := 0

	for _, v := range s {
		if v.IsSome() {
			n++
		}
	}

	return n
}

// FromValues wraps a plain slice, mapping NaN to None.
func FromValues(values []float64) Series {
	s := NewSeries(len(values))
	for i, v := range values {
		s.Set(i, v)
	}

	return s
}

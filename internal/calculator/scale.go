package calculator

import (
	"errors"
	"math"
)

// MinMaxScaler maps the observed range [Min, Max] onto [0, 1].
type MinMaxScaler struct {
	Min float64
	Max float64
}

// FitMinMax learns the range of values.
func FitMinMax(values []float64) (MinMaxScaler, error) {
	if len(values) == 0 {
		return MinMaxScaler{}, errors.New("no values to scale")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return MinMaxScaler{Min: lo, Max: hi}, nil
}

// Span is Max - Min.
func (s MinMaxScaler) Span() float64 {
	return s.Max - s.Min
}

// Transform scales v into the fitted range. A zero-span scaler maps everything to 0.
func (s MinMaxScaler) Transform(v float64) float64 {
	span := s.Span()
	if span == 0 {
		return 0
	}
	return (v - s.Min) / span
}

// Inverse maps a scaled value back to the original units. A zero-span scaler
// always returns Min.
func (s MinMaxScaler) Inverse(v float64) float64 {
	span := s.Span()
	if span == 0 {
		return s.Min
	}
	return v*span + s.Min
}

// TransformAll applies Transform to each value.
func (s MinMaxScaler) TransformAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Transform(v)
	}
	return out
}

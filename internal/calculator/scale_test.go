package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxScaler_RoundTrip(t *testing.T) {
	s, err := FitMinMax([]float64{104, 100, 102})
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 104.0, s.Max)

	assert.Equal(t, []float64{1, 0, 0.5}, s.TransformAll([]float64{104, 100, 102}))
	for _, v := range []float64{100, 101.3, 104, 110} {
		assert.InDelta(t, v, s.Inverse(s.Transform(v)), 1e-9)
	}
}

func TestMinMaxScaler_ZeroSpan(t *testing.T) {
	s, err := FitMinMax([]float64{7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Transform(7))
	assert.Equal(t, 0.0, s.Transform(12))
	assert.Equal(t, 7.0, s.Inverse(0))
	assert.Equal(t, 7.0, s.Inverse(0.8))
}

func TestFitMinMax_Empty(t *testing.T) {
	_, err := FitMinMax(nil)
	assert.Error(t, err)
}

func TestFitLinear(t *testing.T) {
	tests := []struct {
		name      string
		x, y      []float64
		slope     float64
		intercept float64
	}{
		{"perfect line", []float64{0, 1, 2}, []float64{1, 3, 5}, 2, 1},
		{"flat", []float64{0, 1, 2, 3}, []float64{4, 4, 4, 4}, 0, 4},
		{"noisy", []float64{0, 1, 2, 3}, []float64{1, 3, 2, 4}, 0.8, 1.3},
		{"vertical x", []float64{2, 2}, []float64{1, 3}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FitLinear(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.slope, r.Slope, 1e-9)
			assert.InDelta(t, tt.intercept, r.Intercept, 1e-9)
		})
	}
}

func TestFitLinear_Errors(t *testing.T) {
	_, err := FitLinear([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
	_, err = FitLinear([]float64{1}, []float64{1})
	assert.Error(t, err)
}

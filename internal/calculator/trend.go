package calculator

import (
	"errors"
	"fmt"

	"TrendCast/internal/model"
)

// MinTrendSamples is the smallest series that defines a line.
const MinTrendSamples = 2

// TrendModel is a straight line fitted on min-max scaled index and price.
// The index is 0..Samples-1; calendar gaps between samples are ignored.
type TrendModel struct {
	Line    LinearRegression
	Index   MinMaxScaler
	Price   MinMaxScaler
	Samples int
}

// FitTrend fits a TrendModel to the series. An empty series fails with
// *model.EmptySeriesError and a single sample with *model.InsufficientDataError.
func FitTrend(series *model.PriceSeries) (*TrendModel, error) {
	_, prices, err := series.ToArrays()
	if err != nil {
		return nil, err
	}
	n := len(prices)
	if n < MinTrendSamples {
		return nil, &model.InsufficientDataError{Have: n, Need: MinTrendSamples}
	}

	index := make([]float64, n)
	for i := range index {
		index[i] = float64(i)
	}

	idxScaler, err := FitMinMax(index)
	if err != nil {
		return nil, fmt.Errorf("scale index: %w", err)
	}
	priceScaler, err := FitMinMax(prices)
	if err != nil {
		return nil, fmt.Errorf("scale prices: %w", err)
	}

	line, err := FitLinear(idxScaler.TransformAll(index), priceScaler.TransformAll(prices))
	if err != nil {
		return nil, fmt.Errorf("fit line: %w", err)
	}

	return &TrendModel{
		Line:    line,
		Index:   idxScaler,
		Price:   priceScaler,
		Samples: n,
	}, nil
}

// PredictTrend extends the fitted line horizon days past the end of series.
// Future dates are consecutive calendar days after the last sample.
// Any series shorter than MinTrendSamples, empty included, fails with
// *model.InsufficientDataError; the model is not consulted.
func PredictTrend(m *TrendModel, series *model.PriceSeries, horizon int) (model.Projection, error) {
	if horizon <= 0 {
		return nil, &model.InvalidHorizonError{Horizon: horizon}
	}
	n := series.Len()
	if n < MinTrendSamples {
		return nil, &model.InsufficientDataError{Have: n, Need: MinTrendSamples}
	}
	if m == nil {
		return nil, errors.New("trend model is nil")
	}
	if m.Samples != n {
		return nil, fmt.Errorf("model fitted on %d samples, series has %d", m.Samples, n)
	}

	last, _ := series.Last()
	proj := make(model.Projection, horizon)
	for i := 0; i < horizon; i++ {
		x := m.Index.Transform(float64(n + i))
		proj[i] = model.ProjectedPrice{
			Time:  last.Time.AddDate(0, 0, i+1),
			Price: m.Price.Inverse(m.Line.Predict(x)),
		}
	}
	return proj, nil
}

// Extrapolate fits the series and projects it in one step.
func Extrapolate(series *model.PriceSeries, horizon int) (model.Projection, error) {
	if horizon <= 0 {
		return nil, &model.InvalidHorizonError{Horizon: horizon}
	}
	m, err := FitTrend(series)
	if err != nil {
		return nil, err
	}
	return PredictTrend(m, series, horizon)
}

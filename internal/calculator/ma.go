package calculator

import (
	"errors"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

// MovingAverage returns the simple moving average of prices over period.
// The result is aligned with the tail of prices and has len(prices)-period+1 values.
func MovingAverage(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(prices) < period {
		return nil, errors.New("not enough data for SMA calculation")
	}
	sma := trend.NewSmaWithPeriod[float64](period)
	return helper.ChanToSlice(sma.Compute(helper.SliceToChan(prices))), nil
}

// CalculateSMA returns the latest simple moving average value.
func CalculateSMA(prices []float64, period int) (float64, error) {
	values, err := MovingAverage(prices, period)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, errors.New("no SMA values produced")
	}
	return values[len(values)-1], nil
}

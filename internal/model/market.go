package model

import "time"

// Sample is a single daily closing price.
type Sample struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// PriceSeries holds the closing prices fetched for one symbol, in fetch order.
// A new fetch builds a new series; existing samples are never modified.
type PriceSeries struct {
	Symbol    string
	Source    string
	FetchedAt time.Time
	samples   []Sample
}

// NewPriceSeries creates an empty series for symbol.
func NewPriceSeries(symbol string) *PriceSeries {
	return &PriceSeries{Symbol: symbol}
}

// Append adds one sample to the end of the series.
func (s *PriceSeries) Append(t time.Time, price float64) {
	s.samples = append(s.samples, Sample{Time: t, Price: price})
}

// Len returns the number of samples.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.samples)
}

// Last returns the most recent sample.
func (s *PriceSeries) Last() (Sample, bool) {
	if s.Len() == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Samples returns a copy of the samples in insertion order.
func (s *PriceSeries) Samples() []Sample {
	out := make([]Sample, s.Len())
	if s != nil {
		copy(out, s.samples)
	}
	return out
}

// ToArrays splits the series into parallel timestamp and price slices.
func (s *PriceSeries) ToArrays() ([]time.Time, []float64, error) {
	if s.Len() == 0 {
		return nil, nil, &EmptySeriesError{}
	}
	times := make([]time.Time, len(s.samples))
	prices := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		times[i] = smp.Time
		prices[i] = smp.Price
	}
	return times, prices, nil
}

// ProjectedPrice is one extrapolated point.
type ProjectedPrice struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// Projection is the forward extrapolation of a series, one point per day.
type Projection []ProjectedPrice

// Prices returns the projected prices in order.
func (p Projection) Prices() []float64 {
	out := make([]float64, len(p))
	for i, pp := range p {
		out[i] = pp.Price
	}
	return out
}

package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TrendCast/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultLookbackDays is one year of history.
const DefaultLookbackDays = 365

// StaticFetcher serves fixed or generated samples without touching the network.
type StaticFetcher struct {
	Price   float64
	Drift   float64 // per-sample relative change for generated data
	Samples []model.Sample
	Err     error
}

func (m *StaticFetcher) Name() string { return "static" }

func (m *StaticFetcher) FetchDailyCloses(_ context.Context, _ string, days int) ([]model.Sample, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Samples != nil {
		return m.Samples, nil
	}
	return generateSamples(m.Price, m.Drift, days, time.Now()), nil
}

// generateSamples builds one sample per weekday ending at `end`.
func generateSamples(basePrice, drift float64, days int, end time.Time) []model.Sample {
	y, mo, d := end.UTC().Date()
	start := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days+1)

	var samples []model.Sample
	p := basePrice
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			continue
		}
		samples = append(samples, model.Sample{Time: t, Price: p})
		p *= 1 + drift
	}
	return samples
}

// Collector turns provider samples into a fresh PriceSeries.
type Collector struct {
	Fetcher Fetcher
	Days    int
	Log     *logrus.Logger
}

// NewCollector creates a new Collector fetching DefaultLookbackDays of history.
func NewCollector(fetcher Fetcher, log *logrus.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Days: DefaultLookbackDays, Log: log}
}

// Collect fetches the symbol's closing prices into a new series.
// Every provider failure is reported as a *model.DataFetchError.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	start := time.Now()
	samples, err := c.Fetcher.FetchDailyCloses(ctx, symbol, c.Days)
	if err == nil && len(samples) == 0 {
		err = errors.New("no samples returned")
	}
	if err != nil {
		return nil, &model.DataFetchError{Symbol: symbol, Provider: c.Fetcher.Name(), Err: err}
	}

	series := model.NewPriceSeries(symbol)
	series.Source = c.Fetcher.Name()
	series.FetchedAt = time.Now()
	for _, s := range samples {
		series.Append(s.Time, s.Price)
	}

	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{
			"symbol":   symbol,
			"provider": c.Fetcher.Name(),
			"samples":  series.Len(),
			"elapsed":  time.Since(start).Round(time.Millisecond),
		}).Info("price history fetched")
	}
	return series, nil
}

// NewFetcher picks a Fetcher by provider name.
func NewFetcher(provider, baseURL, apiKey, proxyURL string) (Fetcher, error) {
	switch provider {
	case "", "yahoo":
		f := NewYahooFetcher(proxyURL)
		if baseURL != "" {
			f.BaseURL = baseURL
		}
		return f, nil
	case "rest":
		if baseURL == "" {
			return nil, fmt.Errorf("provider %q requires a base_url", provider)
		}
		return NewRESTFetcher(baseURL, apiKey, proxyURL), nil
	case "static":
		return &StaticFetcher{Price: 100, Drift: 0.001}, nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", provider)
	}
}

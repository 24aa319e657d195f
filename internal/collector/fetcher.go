package collector

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"TrendCast/internal/model"
)

// Fetcher defines the interface for fetching daily closing prices.
// Implementations return samples in chronological order.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.Sample, error)
	Name() string
}

// newHTTPClient builds a client with optional proxy support.
func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

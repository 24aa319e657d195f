package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"TrendCast/internal/model"
)

// RESTFetcher implements Fetcher against a generic daily-bars REST endpoint:
//
//	GET {BaseURL}/api/v1/bars/daily?symbol=AAPL&days=365
//
// which responds with a JSON array of {"timestamp": unix, "close": float}.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	return &RESTFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL),
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

func (f *RESTFetcher) FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.Sample, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("days", fmt.Sprint(days))
	endpoint := f.BaseURL + "/api/v1/bars/daily?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var bars []restBar
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	samples := make([]model.Sample, 0, len(bars))
	for _, b := range bars {
		if b.Close <= 0 {
			continue
		}
		samples = append(samples, model.Sample{Time: time.Unix(b.Timestamp, 0).UTC(), Price: b.Close})
	}
	// Ensure chronological order
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Time.Before(samples[j].Time) })
	return samples, nil
}

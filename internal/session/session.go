package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"TrendCast/internal/calculator"
	"TrendCast/internal/collector"
	"TrendCast/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptySymbol is returned when a request carries no ticker symbol.
var ErrEmptySymbol = errors.New("symbol is required")

// Request is one fetch-and-predict operation.
type Request struct {
	Symbol  string
	Horizon int
}

// Result is the outcome of a successful Run.
type Result struct {
	Symbol     string
	Horizon    int
	Series     *model.PriceSeries
	Model      *calculator.TrendModel
	Projection model.Projection
	SMAPeriod  int
	SMA        float64 // 0 when the history is shorter than SMAPeriod
	FinalPrice float64
	ChangePct  float64 // first to last projected price
}

// Session owns the most recent successful result. Runs are serialized, and a
// failed run leaves the previous result in place.
type Session struct {
	mu        sync.Mutex
	collector *collector.Collector
	smaPeriod int
	log       *logrus.Logger
	current   *Result
}

// New creates a Session fetching through col.
func New(col *collector.Collector, smaPeriod int, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{collector: col, smaPeriod: smaPeriod, log: log}
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(symbol))
}

// Current returns the last successful result, or nil.
func (s *Session) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Run fetches fresh history for req.Symbol and projects it req.Horizon days ahead.
func (s *Session) Run(ctx context.Context, req Request) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := NormalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	if req.Horizon <= 0 {
		return nil, &model.InvalidHorizonError{Horizon: req.Horizon}
	}

	log := s.log.WithFields(logrus.Fields{"symbol": symbol, "horizon": req.Horizon})

	series, err := s.collector.Collect(ctx, symbol)
	if err != nil {
		log.WithError(err).Error("fetch failed")
		return nil, err
	}

	m, err := calculator.FitTrend(series)
	if err != nil {
		log.WithError(err).Warn("trend fit failed")
		return nil, err
	}
	proj, err := calculator.PredictTrend(m, series, req.Horizon)
	if err != nil {
		log.WithError(err).Warn("trend projection failed")
		return nil, err
	}

	res := &Result{
		Symbol:     symbol,
		Horizon:    req.Horizon,
		Series:     series,
		Model:      m,
		Projection: proj,
		SMAPeriod:  s.smaPeriod,
		FinalPrice: proj[len(proj)-1].Price,
		ChangePct:  calculator.PercentChange(proj[0].Price, proj[len(proj)-1].Price),
	}

	_, prices, err := series.ToArrays()
	if err != nil {
		return nil, fmt.Errorf("series arrays: %w", err)
	}
	if s.smaPeriod > 0 {
		if sma, err := calculator.CalculateSMA(prices, s.smaPeriod); err != nil {
			log.Debugf("SMA%d unavailable: %v", s.smaPeriod, err)
		} else {
			res.SMA = sma
		}
	}

	s.current = res
	log.WithFields(logrus.Fields{
		"samples":     series.Len(),
		"final_price": res.FinalPrice,
		"change_pct":  res.ChangePct,
	}).Info("projection ready")
	return res, nil
}

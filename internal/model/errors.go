package model

import "fmt"

// EmptySeriesError is returned when an operation needs at least one sample.
type EmptySeriesError struct{}

func (e *EmptySeriesError) Error() string { return "price series is empty" }

// InsufficientDataError is returned when a series is too short to define a trend.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: have %d samples, need at least %d", e.Have, e.Need)
}

// InvalidHorizonError is returned for a non-positive projection horizon.
type InvalidHorizonError struct {
	Horizon int
}

func (e *InvalidHorizonError) Error() string {
	return fmt.Sprintf("invalid horizon %d: must be positive", e.Horizon)
}

// DataFetchError wraps any failure reported by a market-data provider.
type DataFetchError struct {
	Symbol   string
	Provider string
	Err      error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Symbol, e.Provider, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

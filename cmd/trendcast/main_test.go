package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TrendCast/internal/api"
	"TrendCast/internal/collector"
	"TrendCast/internal/model"
	"TrendCast/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSession(prices ...float64) *session.Session {
	log, _ := test.NewNullLogger()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]model.Sample, len(prices))
	for i, p := range prices {
		samples[i] = model.Sample{Time: day.AddDate(0, 0, i), Price: p}
	}
	f := &collector.StaticFetcher{Samples: samples}
	return session.New(collector.NewCollector(f, log), 0, log)
}

func TestStartRefresh_EmptySpec(t *testing.T) {
	log, _ := test.NewNullLogger()
	sched, err := startRefresh(context.Background(), "", staticSession(1, 2), session.Request{Symbol: "A", Horizon: 1}, nil, log)
	require.NoError(t, err)
	assert.Nil(t, sched)
}

func TestStartRefresh_InvalidSpec(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := startRefresh(context.Background(), "whenever", staticSession(1, 2), session.Request{Symbol: "A", Horizon: 1}, nil, log)
	assert.Error(t, err)
}

func TestStartRefresh_SharesSessionWithServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()
	sess := staticSession(100, 102, 104)
	router := api.NewRouter(api.NewHandler(sess, 30, log))

	done := make(chan struct{}, 1)
	sched, err := startRefresh(context.Background(), "* * * * * *", sess, session.Request{Symbol: "msft", Horizon: 2},
		func(res *session.Result, err error) {
			if err == nil {
				select {
				case done <- struct{}{}:
				default:
				}
			}
		}, log)
	require.NoError(t, err)
	require.NotNil(t, sched)
	defer sched.Stop()
	assert.Len(t, sched.Cron.Entries(), 1)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled refresh did not run")
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/history", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"symbol":"MSFT"`)
}

func TestRunOnce_ZeroHorizon(t *testing.T) {
	shown := false
	err := runOnce(context.Background(), staticSession(1, 2, 3), session.Request{Symbol: "AAPL", Horizon: 0},
		func(*session.Result) { shown = true })

	var invalid *model.InvalidHorizonError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Horizon)
	assert.False(t, shown)
}

func TestRunOnce_ShowsResult(t *testing.T) {
	var got *session.Result
	err := runOnce(context.Background(), staticSession(100, 102, 104), session.Request{Symbol: "aapl", Horizon: 2},
		func(res *session.Result) { got = res })
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 108.0, got.FinalPrice, 1e-9)
}

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"TrendCast/internal/model"
	"TrendCast/internal/report"
	"TrendCast/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler exposes the prediction session over HTTP.
type Handler struct {
	session        *session.Session
	defaultHorizon int
	log            *logrus.Logger
}

// PredictionResponse is the JSON body of a successful prediction.
type PredictionResponse struct {
	Symbol     string           `json:"symbol"`
	Horizon    int              `json:"horizon"`
	Samples    int              `json:"samples"`
	Source     string           `json:"source"`
	FetchedAt  time.Time        `json:"fetched_at"`
	FinalPrice float64          `json:"final_price"`
	ChangePct  float64          `json:"change_pct"`
	SMA        float64          `json:"sma,omitempty"`
	Summary    string           `json:"summary"`
	Projection model.Projection `json:"projection"`
}

// HistoryResponse is the JSON body of the current price history.
type HistoryResponse struct {
	Symbol    string         `json:"symbol"`
	FetchedAt time.Time      `json:"fetched_at"`
	Samples   []model.Sample `json:"samples"`
}

// NewHandler creates a Handler. defaultHorizon applies when the request omits days.
func NewHandler(s *session.Session, defaultHorizon int, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{session: s, defaultHorizon: defaultHorizon, log: log}
}

// NewRouter wires the routes onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", h.Health)
	v1 := r.Group("/api/v1")
	v1.GET("/predict", h.Predict)
	v1.GET("/history", h.History)
	return r
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
}

// Predict runs a fetch-and-predict for ?symbol=&days=.
func (h *Handler) Predict(c *gin.Context) {
	horizon := h.defaultHorizon
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		horizon = n
	}

	res, err := h.session.Run(c.Request.Context(), session.Request{
		Symbol:  c.Query("symbol"),
		Horizon: horizon,
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.WithError(err).Error("prediction failed")
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PredictionResponse{
		Symbol:     res.Symbol,
		Horizon:    res.Horizon,
		Samples:    res.Series.Len(),
		Source:     res.Series.Source,
		FetchedAt:  res.Series.FetchedAt,
		FinalPrice: res.FinalPrice,
		ChangePct:  res.ChangePct,
		SMA:        res.SMA,
		Summary:    report.FormatSummary(res),
		Projection: res.Projection,
	})
}

// History returns the series behind the last successful prediction.
func (h *Handler) History(c *gin.Context) {
	res := h.session.Current()
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no prediction has been made yet"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{
		Symbol:    res.Symbol,
		FetchedAt: res.Series.FetchedAt,
		Samples:   res.Series.Samples(),
	})
}

func statusFor(err error) int {
	var (
		invalid      *model.InvalidHorizonError
		insufficient *model.InsufficientDataError
		empty        *model.EmptySeriesError
		fetch        *model.DataFetchError
	)
	switch {
	case errors.Is(err, session.ErrEmptySymbol), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &insufficient), errors.As(err, &empty):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TrendCast/internal/api"
	"TrendCast/internal/collector"
	"TrendCast/internal/config"
	"TrendCast/internal/logging"
	"TrendCast/internal/report"
	"TrendCast/internal/scheduler"
	"TrendCast/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "Path to YAML config")
	symbol := flag.String("symbol", "", "Ticker symbol (overrides config)")
	days := flag.Int("days", 0, "Prediction horizon in days (overrides config)")
	serve := flag.Bool("serve", false, "Serve predictions over HTTP")
	cronSpec := flag.String("cron", "", "Re-run the prediction on this cron schedule (seconds field first)")
	asJSON := flag.Bool("json", false, "Print the projection as JSON")
	width := flag.Int("width", 72, "Chart width in columns")
	height := flag.Int("height", 16, "Chart height in rows")
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" && !isFlagSet("config") {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *symbol != "" {
		cfg.Prediction.Symbol = *symbol
	}
	if isFlagSet("days") {
		cfg.Prediction.Horizon = *days
	}
	if *cronSpec != "" {
		cfg.Schedule.RefreshCron = *cronSpec
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	fetcher, err := collector.NewFetcher(cfg.DataSource.Provider, cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	if err != nil {
		log.Fatalf("init fetcher: %v", err)
	}
	col := collector.NewCollector(fetcher, log)
	col.Days = cfg.DataSource.Days
	log.WithField("provider", fetcher.Name()).Debug("data source ready")

	sess := session.New(col, cfg.Prediction.SMAPeriod, log)
	req := session.Request{Symbol: cfg.Prediction.Symbol, Horizon: cfg.Prediction.Horizon}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	show := func(res *session.Result) {
		if *asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.Projection); err != nil {
				log.WithError(err).Error("encode projection")
			}
			return
		}
		fmt.Print(report.FormatReport(res, *width, *height))
	}

	switch {
	case *serve:
		// Scheduled refreshes in server mode keep /api/v1/history current.
		sched, err := startRefresh(ctx, cfg.Schedule.RefreshCron, sess, req, nil, log)
		if err != nil {
			log.Fatalf("register refresh: %v", err)
		}
		runServer(ctx, cfg.Server.Addr, sess, cfg.Prediction.Horizon, log)
		if sched != nil {
			sched.Stop()
		}
	case cfg.Schedule.RefreshCron != "":
		runScheduled(ctx, cfg.Schedule.RefreshCron, sess, req, show, log)
	default:
		if err := runOnce(ctx, sess, req, show); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// runOnce performs a single fetch-and-predict. Request errors, an invalid
// horizon included, come back as the session's typed errors.
func runOnce(ctx context.Context, sess *session.Session, req session.Request, show func(*session.Result)) error {
	res, err := sess.Run(ctx, req)
	if err != nil {
		return err
	}
	show(res)
	return nil
}

// startRefresh registers and starts the cron refresh on sess. It returns a nil
// Scheduler when spec is empty.
func startRefresh(ctx context.Context, spec string, sess *session.Session, req session.Request, handle scheduler.ResultHandler, log *logrus.Logger) (*scheduler.Scheduler, error) {
	if spec == "" {
		return nil, nil
	}
	sched := scheduler.NewScheduler(ctx, sess, req, handle, log)
	if err := sched.Register(spec); err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}

func runServer(ctx context.Context, addr string, sess *session.Session, horizon int, log *logrus.Logger) {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(api.NewHandler(sess, horizon, log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
}

func runScheduled(ctx context.Context, spec string, sess *session.Session, req session.Request, show func(*session.Result), log *logrus.Logger) {
	sched, err := startRefresh(ctx, spec, sess, req, func(res *session.Result, err error) {
		if err == nil {
			show(res)
		}
	}, log)
	if err != nil {
		log.Fatalf("register refresh: %v", err)
	}
	sched.RunNow()
	<-ctx.Done()
	log.Info("shutdown signal received, stopping...")
	sched.Stop()
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

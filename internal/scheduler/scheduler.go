package scheduler

import (
	"context"
	"fmt"

	"TrendCast/internal/session"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ResultHandler receives the outcome of each scheduled run.
type ResultHandler func(res *session.Result, err error)

// Scheduler re-runs one prediction request on a cron schedule.
// A run that is still in progress causes the next tick to be skipped.
type Scheduler struct {
	Cron    *cron.Cron
	Session *session.Session
	Request session.Request
	Handle  ResultHandler
	Log     *logrus.Logger
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler using six-field (seconds) cron specs.
func NewScheduler(ctx context.Context, s *session.Session, req session.Request, handle ResultHandler, log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Session: s,
		Request: req,
		Handle:  handle,
		Log:     log,
		Ctx:     ctx,
	}
}

// Register adds the refresh job.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunNow executes the refresh job immediately.
func (s *Scheduler) RunNow() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	if s.Ctx.Err() != nil {
		return
	}
	s.Log.WithField("symbol", s.Request.Symbol).Info("running scheduled refresh")
	res, err := s.Session.Run(s.Ctx, s.Request)
	if err != nil {
		s.Log.WithError(err).Error("scheduled refresh failed")
	}
	if s.Handle != nil {
		s.Handle(res, err)
	}
}

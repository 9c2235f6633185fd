package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

//go:generate mockgen -source=purge_job.go -destination=mocks/mock_purge_job.go

type PendingPurger interface {
	PurgeStalePending(ctx context.Context, ttl time.Duration) (int64, error)
}

const runTimeout = time.Minute

// Scheduler periodically drops pending bookings that nobody reviewed in time.
type Scheduler struct {
	cron   *cron.Cron
	purger PendingPurger
	ttl    time.Duration
	logger *slog.Logger
}

func NewScheduler(purger PendingPurger, schedule string, ttl time.Duration) (*Scheduler, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid pending booking ttl %v", ttl)
	}

	logger := slog.Default().With("component", "jobs")
	cronLogger := cronLogger{logger}

	s := &Scheduler{
		cron:   cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		purger: purger,
		ttl:    ttl,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", "ttl", s.ttl)
	s.cron.Start()
}

// Stop waits for a running purge to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler did not stop in time")
	}
}

// RunOnce purges immediately, outside of the schedule.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	purged, err := s.purger.PurgeStalePending(ctx, s.ttl)

	if err != nil {
		return 0, fmt.Errorf("failed to purge stale pending bookings: %w", err)
	}

	return purged, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("purge job failed", "err", err)
	}
}

// cronLogger routes cron's own logging into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}

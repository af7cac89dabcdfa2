package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/despensa-app/expiry-notifier/internal/domain"
	"github.com/despensa-app/expiry-notifier/internal/service/scan"
)

// Scheduler fires one all-owners scan per day at a fixed wall-clock time in
// a configured timezone, plus an initial kick shortly after boot. Overlap
// with a manual run-now trigger is handled by the scan service's in-flight
// guard, not here.
type Scheduler struct {
	scans        *scan.Service
	hour         int
	minute       int
	location     *time.Location
	initialDelay time.Duration
}

func New(scans *scan.Service, hour, minute int, location *time.Location, initialDelay time.Duration) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		scans:        scans,
		hour:         hour,
		minute:       minute,
		location:     location,
		initialDelay: initialDelay,
	}
}

// Run blocks until ctx is cancelled, executing the daily schedule.
func (s *Scheduler) Run(ctx context.Context) {
	slog.Info("scheduler started",
		slog.Int("hour", s.hour),
		slog.Int("minute", s.minute),
		slog.String("timezone", s.location.String()),
	)

	if s.initialDelay >= 0 {
		if !s.sleep(ctx, s.initialDelay) {
			return
		}
		s.runScan(ctx, "startup")
	}

	for {
		next := NextRun(time.Now().In(s.location), s.hour, s.minute, s.location)
		slog.Info("next scheduled scan", slog.Time("at", next))

		if !s.sleep(ctx, time.Until(next)) {
			slog.Info("scheduler stopped")
			return
		}
		s.runScan(ctx, "scheduled")
	}
}

func (s *Scheduler) runScan(ctx context.Context, trigger string) {
	runID := uuid.NewString()

	result, err := s.scans.Run(ctx, domain.ScopeAll(), time.Time{}, runID)
	switch {
	case errors.Is(err, domain.ErrScanInProgress):
		slog.Warn("scheduled scan skipped, another scan is running",
			slog.String("run_id", runID),
			slog.String("trigger", trigger),
		)
	case err != nil:
		// The store being down fails this tick; the next tick retries.
		slog.Error("scheduled scan failed",
			slog.String("run_id", runID),
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
	default:
		slog.Info("scheduled scan finished",
			slog.String("run_id", runID),
			slog.String("trigger", trigger),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
		)
	}
}

func (s *Scheduler) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// NextRun returns the next occurrence of hour:minute in loc strictly after
// now. DST gaps resolve the way time.Date does: a nonexistent local time
// maps into the adjacent valid one.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
	if !next.After(now) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}

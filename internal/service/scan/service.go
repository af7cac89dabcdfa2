package scan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
	"github.com/despensa-app/expiry-notifier/internal/observability/metrics"
	"github.com/despensa-app/expiry-notifier/internal/observability/tracing"
	"github.com/despensa-app/expiry-notifier/internal/service/expiry"
	"github.com/despensa-app/expiry-notifier/internal/service/policy"
	"github.com/despensa-app/expiry-notifier/internal/service/urgency"
)

// Service walks every tracked item in scope, computes its expiry offset,
// asks the policy whether a reminder is due, and drives delivery through the
// injected notifier. One scan per scope runs at a time; overlapping
// scheduled and manual triggers are rejected rather than double-sent.
type Service struct {
	store       domain.ItemStore
	cooldowns   domain.CooldownStore
	notifier    domain.Notifier
	policy      *policy.Policy
	scanMetrics *metrics.ScanMetrics
	throttle    time.Duration
	location    *time.Location
	clock       func() time.Time

	mu       sync.Mutex
	inflight map[string]bool
}

func NewService(
	store domain.ItemStore,
	cooldowns domain.CooldownStore,
	notifier domain.Notifier,
	pol *policy.Policy,
	scanMetrics *metrics.ScanMetrics,
	cfg Config,
) *Service {
	throttle := cfg.Throttle
	if throttle < 0 {
		throttle = 0
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		store:       store,
		cooldowns:   cooldowns,
		notifier:    notifier,
		policy:      pol,
		scanMetrics: scanMetrics,
		throttle:    throttle,
		location:    loc,
		clock:       time.Now,
	}
}

// SetClock replaces the time source. Tests inject fixed clocks; the handler
// relies on the now parameter of Run instead.
func (s *Service) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Run executes one scan pass. now is the injected reference time; pass the
// zero value to use the service clock. Returns ErrScanInProgress when the
// same scope is already being scanned, and aborts with an error when the
// item store itself is unreachable. Per-item failures never abort the pass.
func (s *Service) Run(ctx context.Context, scope domain.Scope, now time.Time, runID string) (*Result, error) {
	if !s.acquire(scope.Key()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrScanInProgress, scope.Key())
	}
	defer s.release(scope.Key())

	if now.IsZero() {
		now = s.clock()
	}
	now = now.In(s.location)
	started := s.clock()

	ctx, span := tracing.StartScanSpan(ctx, scope.Key(), runID, now)
	defer span.End()

	slog.InfoContext(ctx, "starting scan",
		slog.String("run_id", runID),
		slog.String("scope", scope.Key()),
		slog.Time("reference", now),
	)

	var (
		result *Result
		err    error
	)
	if scope.All() {
		result, err = s.scanAllOwners(ctx, now, runID)
	} else {
		result, err = s.scanOwner(ctx, scope.OwnerID(), now, runID)
	}
	if err != nil {
		tracing.RecordScanResult(span, 0, 0, 0, 0, 0, err)
		return result, err
	}

	tracing.RecordScanResult(span,
		result.Attempted, result.Sent, result.Failed, result.Skipped, result.InvalidDates, nil)
	s.scanMetrics.RecordScan(ctx, scope.Key(), s.clock().Sub(started))

	slog.InfoContext(ctx, "scan completed",
		slog.String("run_id", runID),
		slog.String("scope", scope.Key()),
		slog.Int("attempted", result.Attempted),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.Int("invalid_dates", result.InvalidDates),
	)

	return result, nil
}

func (s *Service) scanAllOwners(ctx context.Context, now time.Time, runID string) (*Result, error) {
	owners, err := s.store.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	result := &Result{}
	liveItemIDs := make([]string, 0, 64)

	for _, owner := range owners {
		items, err := s.store.ListItems(ctx, owner.ID)
		if err != nil {
			return result, fmt.Errorf("failed to list items for owner %s: %w", owner.ID, err)
		}

		for _, item := range items {
			liveItemIDs = append(liveItemIDs, item.ID)
		}

		if !owner.Notifiable() {
			// Not an error: an owner without email is simply never
			// notified.
			result.Skipped += len(items)
			continue
		}

		if err := s.scanItems(ctx, items, owner.Email, now, runID, result); err != nil {
			return result, err
		}
	}

	// Items deleted through the app leave cooldown entries behind when the
	// purge endpoint was never called; sweep them after a full pass.
	pruned, err := s.cooldowns.PruneMissing(ctx, liveItemIDs)
	if err != nil {
		slog.WarnContext(ctx, "cooldown sweep failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	} else if pruned > 0 {
		result.Pruned = pruned
		slog.InfoContext(ctx, "pruned stale cooldown entries",
			slog.String("run_id", runID),
			slog.Int("pruned", pruned),
		)
	}

	return result, nil
}

func (s *Service) scanOwner(ctx context.Context, ownerID string, now time.Time, runID string) (*Result, error) {
	email, err := s.store.OwnerEmail(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner email: %w", err)
	}

	items, err := s.store.ListItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for owner %s: %w", ownerID, err)
	}

	result := &Result{}
	if email == "" {
		result.Skipped = len(items)
		return result, nil
	}

	if err := s.scanItems(ctx, items, email, now, runID, result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) scanItems(ctx context.Context, items []domain.TrackedItem, email string, now time.Time, runID string, result *Result) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !item.HasExpiry() {
			result.Skipped++
			continue
		}

		expiryDate, err := expiry.ParseDate(item.ExpiryDate, s.location)
		if err != nil {
			result.InvalidDates++
			slog.WarnContext(ctx, "skipping item with malformed expiry date",
				slog.String("run_id", runID),
				slog.String("item_id", item.ID),
				slog.String("expiry_date", item.ExpiryDate),
			)
			continue
		}

		offset := expiry.DaysUntil(expiryDate, now)

		if !s.policy.ShouldNotify(ctx, item, offset, now) {
			result.Skipped++
			continue
		}

		msg := urgency.Classify(item.Name, offset)
		s.scanMetrics.RecordTier(ctx, msg.Tier.String())

		result.Attempted++
		sendCtx, sendSpan := tracing.StartDeliverySpan(ctx, item.ID, msg.Tier.String(), offset)
		sendErr := s.notifier.Send(sendCtx, domain.Notification{
			To:        email,
			Subject:   msg.Subject,
			Body:      msg.Body,
			ItemName:  item.Name,
			DayOffset: offset,
			Tier:      msg.Tier,
		})
		tracing.RecordDeliveryResult(sendSpan, sendErr)
		sendSpan.End()
		if sendErr != nil {
			// No cooldown record on failure: the next pass retries.
			result.Failed++
			s.scanMetrics.RecordNotification(ctx, "failed")
			slog.ErrorContext(ctx, "delivery failed",
				slog.String("run_id", runID),
				slog.String("item_id", item.ID),
				slog.Int("offset", offset),
				slog.String("error", sendErr.Error()),
			)
		} else {
			result.Sent++
			s.scanMetrics.RecordNotification(ctx, "sent")
			if err := s.policy.MarkSent(ctx, item.ID, offset, now); err != nil {
				slog.WarnContext(ctx, "failed to record cooldown",
					slog.String("run_id", runID),
					slog.String("item_id", item.ID),
					slog.Int("offset", offset),
					slog.String("error", err.Error()),
				)
			}
			slog.DebugContext(ctx, "reminder sent",
				slog.String("run_id", runID),
				slog.String("item_id", item.ID),
				slog.String("tier", msg.Tier.String()),
				slog.Int("offset", offset),
			)
		}

		if err := s.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

// pause inserts the inter-delivery throttle, bailing early on cancellation.
func (s *Service) pause(ctx context.Context) error {
	if s.throttle <= 0 {
		return nil
	}
	timer := time.NewTimer(s.throttle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight == nil {
		s.inflight = make(map[string]bool)
	}
	if s.inflight[key] {
		return false
	}
	s.inflight[key] = true
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

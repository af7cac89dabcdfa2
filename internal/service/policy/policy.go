package policy

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// Config controls which day offsets fire a reminder and how long the same
// (item, offset) key stays quiet after a successful send.
type Config struct {
	// TriggerOffsets lists the exact offsets that qualify, e.g.
	// {7, 3, 1, 0, -1, -3}.
	TriggerOffsets []int
	// AnyNegative widens the negative side: when set, every expired item
	// triggers daily regardless of whether its offset appears in
	// TriggerOffsets.
	AnyNegative bool
	// Cooldown is the minimum interval between two sends for one key.
	// Zero disables deduplication entirely.
	Cooldown time.Duration
}

// Policy decides whether a reminder for an (item, offset) pair is due now.
type Policy struct {
	cfg   Config
	store domain.CooldownStore
}

func New(cfg Config, store domain.CooldownStore) *Policy {
	return &Policy{
		cfg:   cfg,
		store: store,
	}
}

func (p *Policy) Cooldown() time.Duration {
	return p.cfg.Cooldown
}

// ShouldNotify fails closed for items without an expiry date, filters by the
// configured trigger set, then consults the cooldown store. A store read
// failure is treated as never-sent so a broken dedup backend degrades to
// extra mail rather than silence.
func (p *Policy) ShouldNotify(ctx context.Context, item domain.TrackedItem, offset int, now time.Time) bool {
	if !item.HasExpiry() {
		return false
	}

	if !p.triggered(offset) {
		return false
	}

	if p.cfg.Cooldown <= 0 {
		return true
	}

	lastSent, found, err := p.store.LastSent(ctx, item.ID, offset)
	if err != nil {
		slog.WarnContext(ctx, "cooldown lookup failed, treating as never sent",
			slog.String("item_id", item.ID),
			slog.Int("offset", offset),
			slog.String("error", err.Error()),
		)
		return true
	}
	if found && now.Sub(lastSent) < p.cfg.Cooldown {
		return false
	}

	return true
}

// MarkSent records a confirmed delivery. Callers invoke this only after the
// notifier reported success; failed sends stay unrecorded so the next scan
// retries them.
func (p *Policy) MarkSent(ctx context.Context, itemID string, offset int, now time.Time) error {
	if p.cfg.Cooldown <= 0 {
		return nil
	}
	return p.store.MarkSent(ctx, itemID, offset, now)
}

func (p *Policy) triggered(offset int) bool {
	if p.cfg.AnyNegative && offset < 0 {
		return true
	}
	return slices.Contains(p.cfg.TriggerOffsets, offset)
}

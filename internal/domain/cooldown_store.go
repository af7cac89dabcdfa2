package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=cooldown_store.go -destination=cooldown_store_mock.go -package=domain

// CooldownStore records the last successful send per (item, offset) key so
// repeated scans within the cooldown interval stay silent.
type CooldownStore interface {
	// LastSent returns the recorded send time for the key, if any.
	LastSent(ctx context.Context, itemID string, offset int) (time.Time, bool, error)
	// MarkSent records a successful delivery. Callers must only invoke
	// this after the notifier confirmed the send.
	MarkSent(ctx context.Context, itemID string, offset int, at time.Time) error
	// PurgeItem removes every record for the item. Called when the owning
	// item is deleted.
	PurgeItem(ctx context.Context, itemID string) error
	// PruneMissing drops records whose item is not in the live set and
	// returns how many were removed.
	PruneMissing(ctx context.Context, liveItemIDs []string) (int, error)
}

package cooldown

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, found, err := store.LastSent(ctx, "p1", 3); err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}

	at := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	if err := store.MarkSent(ctx, "p1", 3, at); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}

	got, found, err := store.LastSent(ctx, "p1", 3)
	if err != nil || !found {
		t.Fatalf("LastSent after mark: found=%v err=%v", found, err)
	}
	if !got.Equal(at) {
		t.Errorf("LastSent = %v, want %v", got, at)
	}

	// Negative offsets are distinct keys.
	if _, found, _ := store.LastSent(ctx, "p1", -3); found {
		t.Error("offset -3 should be independent of offset 3")
	}
}

func TestMemoryStorePurgeItem(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	at := time.Now()

	for _, offset := range []int{7, 0, -1} {
		if err := store.MarkSent(ctx, "p1", offset, at); err != nil {
			t.Fatalf("MarkSent: %v", err)
		}
	}
	if err := store.MarkSent(ctx, "p2", 3, at); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}

	if err := store.PurgeItem(ctx, "p1"); err != nil {
		t.Fatalf("PurgeItem: %v", err)
	}

	for _, offset := range []int{7, 0, -1} {
		if _, found, _ := store.LastSent(ctx, "p1", offset); found {
			t.Errorf("entry (p1, %d) survived purge", offset)
		}
	}
	if _, found, _ := store.LastSent(ctx, "p2", 3); !found {
		t.Error("purge of p1 must not touch p2")
	}
}

func TestMemoryStorePruneMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	at := time.Now()

	store.MarkSent(ctx, "p1", 3, at)
	store.MarkSent(ctx, "p2", 0, at)
	store.MarkSent(ctx, "p3", -1, at)

	removed, err := store.PruneMissing(ctx, []string{"p2"})
	if err != nil {
		t.Fatalf("PruneMissing: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if _, found, _ := store.LastSent(ctx, "p2", 0); !found {
		t.Error("live item p2 was pruned")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

package cooldown

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/despensa-app/expiry-notifier/internal/domain"
)

// MemoryStore keeps last-sent timestamps in a process-local map. Entries live
// for the process lifetime unless their item is purged or pruned; state is
// lost on restart, which a nonzero scheduler-tick cooldown tolerates.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
	}
}

func (s *MemoryStore) LastSent(_ context.Context, itemID string, offset int) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.entries[entryKey(itemID, offset)]
	return at, ok, nil
}

func (s *MemoryStore) MarkSent(_ context.Context, itemID string, offset int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entryKey(itemID, offset)] = at
	return nil
}

func (s *MemoryStore) PurgeItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := itemID + ":"
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryStore) PruneMissing(_ context.Context, liveItemIDs []string) (int, error) {
	live := make(map[string]struct{}, len(liveItemIDs))
	for _, id := range liveItemIDs {
		live[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.entries {
		itemID := key[:strings.LastIndex(key, ":")]
		if _, ok := live[itemID]; !ok {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of live entries. Used by tests and the readiness
// probe's stats payload.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func entryKey(itemID string, offset int) string {
	return itemID + ":" + strconv.Itoa(offset)
}

var _ domain.CooldownStore = (*MemoryStore)(nil)

package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

type OwnerRecord struct {
	ID    string
	Email string
}

type ItemRecord struct {
	ID         string
	OwnerID    string
	Name       string
	Category   string
	Quantity   int
	ExpiryDate string
}

type Delivery struct {
	To          string
	ProductName string
	Subject     string
	ReceivedAt  time.Time
}

// InventoryStorage keeps seeded pantries and accepted sends per run so
// concurrent load runs against one stub process stay isolated.
type InventoryStorage struct {
	mu         sync.RWMutex
	owners     map[string][]OwnerRecord // runID -> owners
	items      map[string][]ItemRecord  // runID -> documents
	deliveries map[string][]Delivery    // runID -> accepted sends
}

func NewInventoryStorage() *InventoryStorage {
	return &InventoryStorage{
		owners:     make(map[string][]OwnerRecord),
		items:      make(map[string][]ItemRecord),
		deliveries: make(map[string][]Delivery),
	}
}

func (s *InventoryStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.owners, runID)
	delete(s.items, runID)
	delete(s.deliveries, runID)
}

func (s *InventoryStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners = make(map[string][]OwnerRecord)
	s.items = make(map[string][]ItemRecord)
	s.deliveries = make(map[string][]Delivery)
}

func (s *InventoryStorage) AddOwner(runID string, owner OwnerRecord, items []ItemRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owners[runID] = append(s.owners[runID], owner)
	for i, item := range items {
		if item.ID == "" {
			item.ID = generateItemID(runID, owner.ID, item.Name, i)
		}
		item.OwnerID = owner.ID
		s.items[runID] = append(s.items[runID], item)
	}
}

func (s *InventoryStorage) Owners(runID string) []OwnerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owners := make([]OwnerRecord, len(s.owners[runID]))
	copy(owners, s.owners[runID])
	return owners
}

func (s *InventoryStorage) Items(runID string) []ItemRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ItemRecord, len(s.items[runID]))
	copy(items, s.items[runID])
	return items
}

func (s *InventoryStorage) RecordDelivery(runID string, d Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries[runID] = append(s.deliveries[runID], d)
}

func (s *InventoryStorage) Deliveries(runID string) []Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deliveries := make([]Delivery, len(s.deliveries[runID]))
	copy(deliveries, s.deliveries[runID])
	return deliveries
}

func generateItemID(runID, ownerID, name string, index int) string {
	input := fmt.Sprintf("%s-%s-%s-%d", runID, ownerID, name, index)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}

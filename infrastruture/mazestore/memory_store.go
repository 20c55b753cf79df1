package mazestore

import (
	"context"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var _ i.MazeStore = &MemoryStore{}

type memoryEntry struct {
	record    *dmn.MazeRecord
	expiresAt time.Time
}

// MemoryStore keeps mazes in process memory with a TTL. Records are cloned
// on the way in and out so callers never share a grid with the store.
type MemoryStore struct {
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	sync.RWMutex
}

// NewMemoryStore creates a MemoryStore; a ttl of zero or less keeps mazes forever.
func NewMemoryStore(ttlSeconds int) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     time.Duration(ttlSeconds) * time.Second,
		now:     time.Now,
	}
}

// Save inserts or replaces a maze and restarts its TTL.
func (ms *MemoryStore) Save(_ context.Context, record *dmn.MazeRecord) error {
	ms.Lock()
	defer ms.Unlock()

	entry := memoryEntry{record: cloneRecord(record)}
	if ms.ttl > 0 {
		entry.expiresAt = ms.now().Add(ms.ttl)
	}
	ms.entries[record.ID] = entry
	return nil
}

// ByID retrieves a maze that has not expired.
func (ms *MemoryStore) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ms.RLock()
	entry, ok := ms.entries[id]
	ms.RUnlock()

	if !ok || ms.expired(entry) {
		if ok {
			ms.Lock()
			delete(ms.entries, id)
			ms.Unlock()
		}
		return nil, dmn.ErrMazeNotFound
	}
	return cloneRecord(entry.record), nil
}

// Delete removes a maze.
func (ms *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	ms.Lock()
	defer ms.Unlock()

	entry, ok := ms.entries[id]
	if !ok || ms.expired(entry) {
		delete(ms.entries, id)
		return dmn.ErrMazeNotFound
	}
	delete(ms.entries, id)
	return nil
}

// Count returns the number of stored mazes, expired ones included until
// they are next touched.
func (ms *MemoryStore) Count() int {
	ms.RLock()
	defer ms.RUnlock()
	return len(ms.entries)
}

func (ms *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !ms.now().Before(entry.expiresAt)
}

func cloneRecord(record *dmn.MazeRecord) *dmn.MazeRecord {
	cp := *record
	cp.Grid = record.Grid.Clone()
	return &cp
}

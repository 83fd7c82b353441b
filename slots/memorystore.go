package slots

import (
	"context"
	"encoding/binary"
	"sync"
)

// MemoryStore is a map backed Store. It is the reference implementation of the
// slot semantics and the natural backend for tests and for callers that want
// the container semantics without durable storage.
//
// A word occupies the first WordBytes of its slot, big-endian. Writing a word
// preserves the remaining bytes of the slot.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[StorageKey][QuadBytes]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[StorageKey][QuadBytes]byte),
	}
}

func (s *MemoryStore) ReadWord(ctx context.Context, key StorageKey) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := s.slots[key]
	return binary.BigEndian.Uint64(q[:WordBytes]), nil
}

func (s *MemoryStore) WriteWord(ctx context.Context, key StorageKey, value uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.slots[key]
	binary.BigEndian.PutUint64(q[:WordBytes], value)
	s.slots[key] = q
	return nil
}

func (s *MemoryStore) ReadQuad(ctx context.Context, key StorageKey) ([QuadBytes]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[key], nil
}

func (s *MemoryStore) WriteQuad(ctx context.Context, key StorageKey, value [QuadBytes]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

// WrittenSlots returns the number of slots that have been written at least
// once. Logical removal from a container never shrinks this.
func (s *MemoryStore) WrittenSlots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

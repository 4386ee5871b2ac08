package memstore

import (
	"context"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// RegistryStore is the in-memory implementation of port.RegistryStore:
// one global append-only sequence plus a per-creator sequence. This is the
// default store; entries live for the lifetime of the process.
type RegistryStore struct {
	mu        sync.RWMutex
	all       []port.RegistryEntry
	byCreator map[domain.Principal][]port.RegistryEntry
}

// New returns an empty in-memory registry store.
func New() *RegistryStore {
	return &RegistryStore{
		byCreator: make(map[domain.Principal][]port.RegistryEntry),
	}
}

// Append records the entry in both the global and the creator's sequence.
func (s *RegistryStore) Append(_ context.Context, entry port.RegistryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = append(s.all, entry)
	s.byCreator[entry.Creator] = append(s.byCreator[entry.Creator], entry)
	return nil
}

// ListAll returns a copy of the global sequence in insertion order.
func (s *RegistryStore) ListAll(_ context.Context) ([]port.RegistryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]port.RegistryEntry, len(s.all))
	copy(out, s.all)
	return out, nil
}

// ListByCreator returns a copy of the creator's sequence in insertion
// order, possibly empty.
func (s *RegistryStore) ListByCreator(_ context.Context, creator domain.Principal) ([]port.RegistryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.byCreator[creator]
	out := make([]port.RegistryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

package repository

import (
	"context"
	"sync"

	"interest-calculator/domain"
)

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
type HistoryRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.HistoryEntry
	capacity int
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory() *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data:     make([]domain.HistoryEntry, 0, domain.HistoryCapacity),
		capacity: domain.HistoryCapacity,
	}
}

// Add prepends the entry and evicts the oldest once the capacity is exceeded.
func (r *HistoryRepositoryMemory) Add(
	_ context.Context,
	entry domain.HistoryEntry,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := len(r.data)
	if keep >= r.capacity {
		keep = r.capacity - 1
	}

	next := make([]domain.HistoryEntry, 0, r.capacity)
	next = append(next, entry)
	next = append(next, r.data[:keep]...)
	r.data = next
	return nil
}

// List returns a copy of the history, newest first.
func (r *HistoryRepositoryMemory) List(_ context.Context) ([]domain.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *HistoryRepositoryMemory) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make([]domain.HistoryEntry, 0, r.capacity)
	return nil
}

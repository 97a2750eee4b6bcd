package repository

import (
	"context"

	"interest-calculator/domain"
)

// HistoryRepository keeps the most recent date-range calculations, newest
// first, bounded to domain.HistoryCapacity entries.
type HistoryRepository interface {
	Add(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}

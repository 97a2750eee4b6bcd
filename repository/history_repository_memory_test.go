package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-calculator/domain"
)

func entry(id string) domain.HistoryEntry {
	return domain.HistoryEntry{ID: id, Principal: 1000, InterestAmount: 50, TotalAmount: 1050}
}

func TestHistoryRepositoryMemory_NewestFirst(t *testing.T) {
	repo := NewHistoryRepositoryMemory()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, entry("a")))
	require.NoError(t, repo.Add(ctx, entry("b")))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestHistoryRepositoryMemory_EvictsOldest(t *testing.T) {
	repo := NewHistoryRepositoryMemory()
	ctx := context.Background()

	for i := 1; i <= domain.HistoryCapacity+1; i++ {
		require.NoError(t, repo.Add(ctx, entry(fmt.Sprintf("e%d", i))))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), domain.HistoryCapacity)
		assert.Equal(t, fmt.Sprintf("e%d", i), got[0].ID)
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, domain.HistoryCapacity)
	assert.Equal(t, "e11", got[0].ID)
	assert.Equal(t, "e2", got[len(got)-1].ID)
	for _, e := range got {
		assert.NotEqual(t, "e1", e.ID)
	}
}

func TestHistoryRepositoryMemory_ListReturnsCopy(t *testing.T) {
	repo := NewHistoryRepositoryMemory()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, entry("a")))

	got, _ := repo.List(ctx)
	got[0].ID = "changed"

	again, _ := repo.List(ctx)
	assert.Equal(t, "a", again[0].ID)
}

func TestHistoryRepositoryMemory_Clear(t *testing.T) {
	repo := NewHistoryRepositoryMemory()
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, entry("a")))

	require.NoError(t, repo.Clear(ctx))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// clearing an empty history is fine
	assert.NoError(t, repo.Clear(ctx))
}

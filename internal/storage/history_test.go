package storage

import (
	"context"
	"fmt"
	"testing"

	"pricehound/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func changeBatch(region string, start, count int) []domain.Change {
	changes := make([]domain.Change, 0, count)
	for i := start; i < start+count; i++ {
		changes = append(changes, domain.Change{
			Timestamp: fmt.Sprintf("2026-08-31T00:00:%02dZ", i%60),
			Region:    region,
			Type:      domain.ChangePriceChange,
			ProductID: fmt.Sprintf("id-%06d", i),
			Field:     domain.FieldBilledAnnually,
		})
	}
	return changes
}

func TestHistoryAppendAndLoad(t *testing.T) {
	store := newTestFileStore(t)
	history := NewHistory(store)
	ctx := context.Background()

	require.NoError(t, history.Append(ctx, changeBatch("us", 0, 3)))
	require.NoError(t, history.Append(ctx, changeBatch("eu1", 3, 2)))

	all, err := store.GetChanges(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "id-000000", all[0].ProductID)
	assert.Equal(t, "id-000004", all[4].ProductID)
}

func TestHistoryAppendEmptyDoesNotWrite(t *testing.T) {
	store := newTestFileStore(t)
	history := NewHistory(store)
	ctx := context.Background()

	require.NoError(t, history.Append(ctx, nil))

	changes, err := store.GetChanges(ctx)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestHistoryEviction(t *testing.T) {
	store := newTestFileStore(t)
	history := NewHistory(store)
	ctx := context.Background()

	require.NoError(t, store.SetChanges(ctx, changeBatch("us", 0, 980)))
	require.NoError(t, history.Append(ctx, changeBatch("us", 980, 50)))

	all, err := store.GetChanges(ctx)
	require.NoError(t, err)
	require.Len(t, all, HistoryLimit)

	// The oldest 30 records were evicted; the newest survive.
	assert.Equal(t, "id-000030", all[0].ProductID)
	assert.Equal(t, "id-001029", all[len(all)-1].ProductID)
}

func TestHistoryRecentFilterAndOrder(t *testing.T) {
	store := newTestFileStore(t)
	history := NewHistory(store)
	ctx := context.Background()

	require.NoError(t, history.Append(ctx, changeBatch("us", 0, 3)))
	require.NoError(t, history.Append(ctx, changeBatch("eu1", 3, 2)))

	recent, err := history.Recent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "id-000004", recent[0].ProductID) // newest first

	usOnly, err := history.Recent(ctx, "us", 2)
	require.NoError(t, err)
	require.Len(t, usOnly, 2)
	assert.Equal(t, "id-000002", usOnly[0].ProductID)
	assert.Equal(t, "id-000001", usOnly[1].ProductID)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pricehound/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) Store {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func TestFileStoreAbsentValues(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	products, err := store.GetPricing(ctx, "us")
	require.NoError(t, err)
	assert.Empty(t, products)

	meta, err := store.GetMetadata(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, domain.Metadata{}, meta)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	changes, err := store.GetChanges(ctx)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestFileStorePricingRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	products := []domain.Product{
		{
			ID:             "abc123",
			Region:         "us",
			Product:        "Infrastructure Pro",
			Category:       "Infrastructure",
			Plan:           domain.PlanPro,
			ProductType:    domain.ProductTypeMain,
			BillingUnit:    "per host",
			BilledAnnually: strPtr("15"),
		},
	}

	require.NoError(t, store.SetPricing(ctx, "us", products))

	loaded, err := store.GetPricing(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, products, loaded)

	// Other regions stay untouched.
	other, err := store.GetPricing(ctx, "eu1")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFileStoreSetIsFullReplacement(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetPricing(ctx, "us", []domain.Product{
		{ID: "abc123", Product: "APM"},
		{ID: "def456", Product: "Flex Logs"},
	}))
	require.NoError(t, store.SetPricing(ctx, "us", []domain.Product{
		{ID: "def456", Product: "Flex Logs"},
	}))

	loaded, err := store.GetPricing(ctx, "us")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "def456", loaded[0].ID)
}

func TestFileStoreMetadataRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	meta := domain.Metadata{
		Region:        "eu1",
		RegionName:    "EU1",
		Site:          "eu1",
		LastSync:      "2026-08-31T12:00:00Z",
		ProductsCount: 42,
		SourceURL:     "https://www.datadoghq.com/pricing/list/?site=eu1",
	}
	require.NoError(t, store.SetMetadata(ctx, "eu1", meta))

	loaded, err := store.GetMetadata(ctx, "eu1")
	require.NoError(t, err)
	assert.Equal(t, meta, loaded)
}

func TestFileStoreLayout(t *testing.T) {
	dataDir := t.TempDir()
	store, err := NewFileStore(dataDir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SetPricing(ctx, "us", []domain.Product{{ID: "abc123"}}))
	require.NoError(t, store.SetMetadata(ctx, "us", domain.Metadata{Region: "us"}))
	require.NoError(t, store.SetCategories(ctx, []domain.Category{{Name: "Logs", Order: 1}}))
	require.NoError(t, store.SetChanges(ctx, []domain.Change{{Region: "us"}}))

	for _, name := range []string{"pricing-us.json", "metadata-us.json", "categories.json", "changes.json"} {
		_, err := os.Stat(filepath.Join(dataDir, "pricing", name))
		assert.NoError(t, err, "expected %s", name)
	}
}

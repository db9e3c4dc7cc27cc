// Package storage persists pricing snapshots, sync metadata, the shared
// category table and the change history behind one key-value-shaped
// contract with interchangeable backends. Every Set is a full replacement
// of the key's prior value; snapshot and metadata writes for a region are
// two independent calls with no transaction between them. The design
// assumes a single writer per region and does not enforce it.
package storage

import (
	"context"

	"pricehound/scraper/internal/domain"
)

// Region-scoped and shared storage keys.
const (
	keyCategories = "categories"
	keyChanges    = "pricing:changes"
)

func pricingKey(region string) string  { return "pricing:" + region }
func metadataKey(region string) string { return "pricing:meta:" + region }

// Store is the persistence contract. Absent values come back as empty
// slices or a zero Metadata, never as errors. Backends are selected once
// at configuration time and never mixed within a deployment.
type Store interface {
	GetPricing(ctx context.Context, region string) ([]domain.Product, error)
	SetPricing(ctx context.Context, region string, products []domain.Product) error

	GetMetadata(ctx context.Context, region string) (domain.Metadata, error)
	SetMetadata(ctx context.Context, region string, meta domain.Metadata) error

	GetCategories(ctx context.Context) ([]domain.Category, error)
	SetCategories(ctx context.Context, categories []domain.Category) error

	GetChanges(ctx context.Context) ([]domain.Change, error)
	SetChanges(ctx context.Context, changes []domain.Change) error

	Close() error
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"pricehound/scraper/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore keeps each document as a JSONB row keyed by its storage
// key, upserted whole. Same full-replacement contract as the other
// backends, with relational durability.
type postgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (Store, error) {
	query := `
	CREATE TABLE IF NOT EXISTS pricing_documents (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create pricing_documents table: %w", err)
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) getJSON(ctx context.Context, key string, out any) (bool, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM pricing_documents WHERE key = $1`, key).Scan(&data)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *postgresStore) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	query := `
	INSERT INTO pricing_documents (key, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET data = $2, updated_at = now()`
	if _, err := s.db.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) GetPricing(ctx context.Context, region string) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := s.getJSON(ctx, pricingKey(region), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *postgresStore) SetPricing(ctx context.Context, region string, products []domain.Product) error {
	return s.setJSON(ctx, pricingKey(region), products)
}

func (s *postgresStore) GetMetadata(ctx context.Context, region string) (domain.Metadata, error) {
	var meta domain.Metadata
	if _, err := s.getJSON(ctx, metadataKey(region), &meta); err != nil {
		return domain.Metadata{}, err
	}
	return meta, nil
}

func (s *postgresStore) SetMetadata(ctx context.Context, region string, meta domain.Metadata) error {
	return s.setJSON(ctx, metadataKey(region), meta)
}

func (s *postgresStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if _, err := s.getJSON(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *postgresStore) SetCategories(ctx context.Context, categories []domain.Category) error {
	return s.setJSON(ctx, keyCategories, categories)
}

func (s *postgresStore) GetChanges(ctx context.Context) ([]domain.Change, error) {
	var changes []domain.Change
	if _, err := s.getJSON(ctx, keyChanges, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (s *postgresStore) SetChanges(ctx context.Context, changes []domain.Change) error {
	return s.setJSON(ctx, keyChanges, changes)
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pricehound/scraper/internal/domain"
)

// fileStore keeps each document as an indented JSON file under
// {dataDir}/pricing. Writes replace the whole file.
type fileStore struct {
	dir string
}

func NewFileStore(dataDir string) (Store, error) {
	dir := filepath.Join(dataDir, "pricing")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create pricing data directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) pricingFile(region string) string {
	return filepath.Join(s.dir, fmt.Sprintf("pricing-%s.json", region))
}

func (s *fileStore) metadataFile(region string) string {
	return filepath.Join(s.dir, fmt.Sprintf("metadata-%s.json", region))
}

func (s *fileStore) categoriesFile() string {
	return filepath.Join(s.dir, "categories.json")
}

func (s *fileStore) changesFile() string {
	return filepath.Join(s.dir, "changes.json")
}

func (s *fileStore) readJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

func (s *fileStore) writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *fileStore) GetPricing(_ context.Context, region string) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := s.readJSON(s.pricingFile(region), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *fileStore) SetPricing(_ context.Context, region string, products []domain.Product) error {
	return s.writeJSON(s.pricingFile(region), products)
}

func (s *fileStore) GetMetadata(_ context.Context, region string) (domain.Metadata, error) {
	var meta domain.Metadata
	if _, err := s.readJSON(s.metadataFile(region), &meta); err != nil {
		return domain.Metadata{}, err
	}
	return meta, nil
}

func (s *fileStore) SetMetadata(_ context.Context, region string, meta domain.Metadata) error {
	return s.writeJSON(s.metadataFile(region), meta)
}

func (s *fileStore) GetCategories(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if _, err := s.readJSON(s.categoriesFile(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *fileStore) SetCategories(_ context.Context, categories []domain.Category) error {
	return s.writeJSON(s.categoriesFile(), categories)
}

func (s *fileStore) GetChanges(_ context.Context) ([]domain.Change, error) {
	var changes []domain.Change
	if _, err := s.readJSON(s.changesFile(), &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (s *fileStore) SetChanges(_ context.Context, changes []domain.Change) error {
	return s.writeJSON(s.changesFile(), changes)
}

func (s *fileStore) Close() error {
	return nil
}

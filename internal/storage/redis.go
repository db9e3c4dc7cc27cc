package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"pricehound/scraper/internal/domain"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps every document as a JSON string under its storage key.
// Volatile in the sense that durability is whatever the Redis deployment
// provides.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) getJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *redisStore) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) GetPricing(ctx context.Context, region string) ([]domain.Product, error) {
	var products []domain.Product
	if _, err := s.getJSON(ctx, pricingKey(region), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *redisStore) SetPricing(ctx context.Context, region string, products []domain.Product) error {
	return s.setJSON(ctx, pricingKey(region), products)
}

func (s *redisStore) GetMetadata(ctx context.Context, region string) (domain.Metadata, error) {
	var meta domain.Metadata
	if _, err := s.getJSON(ctx, metadataKey(region), &meta); err != nil {
		return domain.Metadata{}, err
	}
	return meta, nil
}

func (s *redisStore) SetMetadata(ctx context.Context, region string, meta domain.Metadata) error {
	return s.setJSON(ctx, metadataKey(region), meta)
}

func (s *redisStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if _, err := s.getJSON(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *redisStore) SetCategories(ctx context.Context, categories []domain.Category) error {
	return s.setJSON(ctx, keyCategories, categories)
}

func (s *redisStore) GetChanges(ctx context.Context) ([]domain.Change, error) {
	var changes []domain.Change
	if _, err := s.getJSON(ctx, keyChanges, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (s *redisStore) SetChanges(ctx context.Context, changes []domain.Change) error {
	return s.setJSON(ctx, keyChanges, changes)
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

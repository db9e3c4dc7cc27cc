package container

import (
	"context"
	"fmt"

	"pricehound/scraper/internal/client"
	"pricehound/scraper/internal/config"
	"pricehound/scraper/internal/service"
	"pricehound/scraper/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Store   storage.Store
	History *storage.History
	Client  client.PricingClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	container.Store = store
	container.History = storage.NewHistory(store)

	container.Client = client.NewPricingClient(cfg.Scraper)

	container.Service = service.NewService(
		store,
		container.History,
		container.Client,
		cfg.Regions,
		cfg.Storage.Type,
	)

	return container, nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	ctx := context.Background()

	switch cfg.Storage.Type {
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		return storage.NewRedisStore(rdb), nil

	case config.StoragePostgres:
		db, err := pgxpool.New(ctx,
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Postgres.Host,
				cfg.Postgres.Port,
				cfg.Postgres.User,
				cfg.Postgres.Password,
				cfg.Postgres.Name,
			))
		if err != nil {
			return nil, err
		}
		store, err := storage.NewPostgresStore(ctx, db)
		if err != nil {
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		return store, nil

	case config.StorageFile:
		return storage.NewFileStore(cfg.Storage.DataDir)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

// Run syncs every configured region and logs per-region results
func (c *Container) Run(ctx context.Context) error {
	results := c.Service.SyncAllRegions(ctx)

	failed := 0
	for _, result := range results {
		if result.Success {
			log.Infof("✅ %s: %s", result.Region, result.Message)
		} else {
			failed++
			log.Errorf("❌ %s: %s", result.Region, result.Message)
		}
	}

	if len(results) > 0 && failed == len(results) {
		return fmt.Errorf("all %d region syncs failed", failed)
	}
	return nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.Store.Close(); err != nil {
		return err
	}

	log.Info("Container shut down successfully")
	return nil
}

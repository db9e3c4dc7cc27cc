package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pricehound/scraper/internal/client"
	"pricehound/scraper/internal/config"
	"pricehound/scraper/internal/diff"
	"pricehound/scraper/internal/domain"
	"pricehound/scraper/internal/pricing"
	"pricehound/scraper/internal/storage"

	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

// Per-region sync states. Failed can follow any of them.
type syncState string

const (
	stateIdle       syncState = "idle"
	stateFetching   syncState = "fetching"
	stateExtracting syncState = "extracting"
	stateDiffing    syncState = "diffing"
	statePersisting syncState = "persisting"
	stateDone       syncState = "done"
	stateFailed     syncState = "failed"
)

// Result is the outcome of one region sync, also handed to metrics
// consumers as plain values.
type Result struct {
	Region        string `json:"region"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ProductsCount int    `json:"products_count"`
}

// RegionStatus describes whether a region has ever been synced.
type RegionStatus struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Site          string `json:"site"`
	Synced        bool   `json:"synced"`
	LastSync      string `json:"last_sync"`
	ProductsCount int    `json:"products_count"`
}

// Service sequences category refresh, extraction, diffing and persistence
// per region, and fans the sequence out across all configured regions.
type Service struct {
	store       storage.Store
	history     *storage.History
	client      client.PricingClient
	regions     map[string]config.RegionConfig
	rules       pricing.Rules
	storageType string
}

func NewService(
	store storage.Store,
	history *storage.History,
	pricingClient client.PricingClient,
	regions map[string]config.RegionConfig,
	storageType string,
) *Service {
	return &Service{
		store:       store,
		history:     history,
		client:      pricingClient,
		regions:     regions,
		rules:       pricing.DefaultRules(),
		storageType: storageType,
	}
}

// SyncRegion runs the full pipeline for one region: fetch the listing,
// extract and enrich rows, dedup, diff against the stored snapshot, append
// changes to the history, then replace snapshot and metadata. The history
// append and the snapshot write are two independent calls; a failure
// between them leaves the snapshot one sync behind the history.
func (s *Service) SyncRegion(ctx context.Context, region string, refreshCategories bool) Result {
	info, ok := s.regions[region]
	if !ok {
		return Result{Region: region, Message: fmt.Sprintf("unknown region: %s", region)}
	}

	state := stateIdle
	fail := func(msg string) Result {
		log.Errorf("❌ Sync for region %s failed while %s: %s", region, state, msg)
		state = stateFailed
		return Result{Region: region, Message: msg}
	}

	if refreshCategories {
		log.Info("🔄 Refreshing categories before product sync...")
		if _, err := s.SyncCategories(ctx); err != nil {
			// Never fatal; regions fall back to stored or default categories.
			log.Warnf("⚠️ Category refresh failed: %v", err)
		}
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		log.Warnf("⚠️ Failed to load categories, using defaults: %v", err)
		categories = pricing.DefaultCategories()
	}

	state = stateFetching
	rows, err := s.client.GetPricingRows(ctx, info.Site)
	if err != nil {
		return fail(fmt.Sprintf("error syncing pricing: %v", err))
	}

	state = stateExtracting
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		plan := pricing.ExtractPlan(row.Product)
		products = append(products, domain.Product{
			ID:                 pricing.GenerateProductID(row.Product, row.BillingUnit),
			Region:             region,
			Product:            row.Product,
			Category:           pricing.MatchCategory(row.Product, categories),
			Plan:               plan,
			ProductType:        s.rules.ClassifyProductType(row.Product, plan, row.BillingUnit),
			BillingUnit:        row.BillingUnit,
			BilledAnnually:     row.BilledAnnually,
			BilledMonthToMonth: row.BilledMonthToMonth,
			OnDemand:           row.OnDemand,
		})
	}
	products = pricing.Deduplicate(products)
	if len(products) == 0 {
		return fail("no pricing data found")
	}
	logCategoryDistribution(products)

	state = stateDiffing
	previous, err := s.store.GetPricing(ctx, region)
	if err != nil {
		return fail(fmt.Sprintf("error loading previous snapshot: %v", err))
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	changes := diff.Detect(previous, products, region, timestamp)

	state = statePersisting
	if len(changes) > 0 {
		log.Infof("🔔 Detected %d pricing changes for %s", len(changes), region)
		if err := s.history.Append(ctx, changes); err != nil {
			return fail(fmt.Sprintf("error saving change history: %v", err))
		}
	}

	if err := s.store.SetPricing(ctx, region, products); err != nil {
		return fail(fmt.Sprintf("error saving pricing data: %v", err))
	}
	meta := domain.Metadata{
		Region:        region,
		RegionName:    info.Name,
		Site:          info.Site,
		LastSync:      timestamp,
		ProductsCount: len(products),
		SourceURL:     s.client.PricingURL(info.Site),
	}
	if err := s.store.SetMetadata(ctx, region, meta); err != nil {
		return fail(fmt.Sprintf("error saving metadata: %v", err))
	}

	state = stateDone
	log.Infof("✅ Saved %d products for %s (state: %s)", len(products), region, state)

	return Result{
		Region:        region,
		Success:       true,
		Message:       fmt.Sprintf("successfully synced %d products for %s (storage: %s)", len(products), info.Name, s.storageType),
		ProductsCount: len(products),
	}
}

// SyncAllRegions syncs every configured region. Categories are shared, so
// they are refreshed exactly once before the fan-out; the refresh is the
// ordering barrier that keeps all regions on one category table. One
// region's failure never aborts the others.
func (s *Service) SyncAllRegions(ctx context.Context) []Result {
	if _, err := s.SyncCategories(ctx); err != nil {
		log.Warnf("⚠️ Category refresh failed, regions will use stored or default categories: %v", err)
	}

	codes := s.regionCodes()
	results := make([]Result, len(codes))

	g := new(errgroup.Group)
	for i, code := range codes {
		g.Go(func() error {
			results[i] = s.SyncRegion(ctx, code, false)
			return nil
		})
	}
	g.Wait()

	return results
}

// EnsureRegion returns the existing snapshot for a region if there is one,
// otherwise performs a sync.
func (s *Service) EnsureRegion(ctx context.Context, region string) Result {
	existing, err := s.store.GetPricing(ctx, region)
	if err == nil && len(existing) > 0 {
		meta, _ := s.store.GetMetadata(ctx, region)
		lastSync := meta.LastSync
		if lastSync == "" {
			lastSync = "unknown"
		}
		name := region
		if info, ok := s.regions[region]; ok {
			name = info.Name
		}
		return Result{
			Region:        region,
			Success:       true,
			Message:       fmt.Sprintf("loaded %d products for %s from %s (last sync: %s)", len(existing), name, s.storageType, lastSync),
			ProductsCount: len(existing),
		}
	}

	return s.SyncRegion(ctx, region, true)
}

// SyncCategories scrapes the category table from the pricing page and
// persists it, falling back to the static defaults when scraping yields
// nothing. Only the persistence step can fail.
func (s *Service) SyncCategories(ctx context.Context) (int, error) {
	categories, err := s.client.GetCategories(ctx)
	if err != nil || len(categories) == 0 {
		log.Warnf("⚠️ Failed to scrape categories from pricing page: %v", err)
		log.Info("📋 Using default product categories")
		categories = pricing.DefaultCategories()
	}

	if err := s.store.SetCategories(ctx, categories); err != nil {
		return 0, fmt.Errorf("failed to save categories: %w", err)
	}

	log.Infof("✅ Saved %d categories to %s", len(categories), s.storageType)
	return len(categories), nil
}

// Categories returns the stored category table, scraping and persisting it
// when nothing is stored yet, and falling back to the defaults as a last
// resort.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	stored, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	if scraped, err := s.client.GetCategories(ctx); err == nil && len(scraped) > 0 {
		if err := s.store.SetCategories(ctx, scraped); err != nil {
			log.Warnf("⚠️ Failed to save scraped categories: %v", err)
		}
		return scraped, nil
	}

	return pricing.DefaultCategories(), nil
}

// CategoryOrder maps category names to their display rank. Categories
// without an order sort at 50 and the fallback "Specific" bucket is pinned
// last.
func (s *Service) CategoryOrder(ctx context.Context) map[string]int {
	categories, err := s.Categories(ctx)
	if err != nil {
		categories = pricing.DefaultCategories()
	}

	order := make(map[string]int, len(categories)+1)
	for _, cat := range categories {
		rank := cat.Order
		if rank == 0 {
			rank = 50
		}
		order[cat.Name] = rank
	}
	order[pricing.FallbackCategory] = 99
	return order
}

// RegionsStatus reports sync state for every configured region from its
// stored metadata.
func (s *Service) RegionsStatus(ctx context.Context) []RegionStatus {
	statuses := make([]RegionStatus, 0, len(s.regions))
	for _, code := range s.regionCodes() {
		info := s.regions[code]
		meta, err := s.store.GetMetadata(ctx, code)
		if err != nil {
			log.Warnf("⚠️ Failed to load metadata for region %s: %v", code, err)
		}
		statuses = append(statuses, RegionStatus{
			ID:            code,
			Name:          info.Name,
			Site:          info.Site,
			Synced:        meta.Region != "",
			LastSync:      meta.LastSync,
			ProductsCount: meta.ProductsCount,
		})
	}
	return statuses
}

func (s *Service) regionCodes() []string {
	codes := make([]string, 0, len(s.regions))
	for code := range s.regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func logCategoryDistribution(products []domain.Product) {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	log.Infof("📊 Category distribution: %v", counts)
}

package client

import (
	"context"
	"fmt"
	"time"

	"pricehound/scraper/internal/config"
	"pricehound/scraper/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Row is one raw pricing table row before enrichment: name and billing unit
// plus the three price cells, nil where the cell was blank or missing.
type Row struct {
	Product            string
	BillingUnit        string
	BilledAnnually     *string
	BilledMonthToMonth *string
	OnDemand           *string
}

// PricingClient fetches and parses the pricing site. Timeout and retry
// policy live here, not in the sync pipeline.
type PricingClient interface {
	GetPricingRows(ctx context.Context, site string) ([]Row, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	PricingURL(site string) string
}

type pricingClient struct {
	rl         ratelimit.Limiter
	config     config.ScraperConfig
	httpClient *resty.Client
	parser     *pageParser
}

func NewPricingClient(cfg config.ScraperConfig) PricingClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	return &pricingClient{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		config:     cfg,
		httpClient: client,
		parser:     newPageParser(),
	}
}

// PricingURL builds the region-scoped listing URL; the site code selects
// the region on the page.
func (c *pricingClient) PricingURL(site string) string {
	return fmt.Sprintf("%s?site=%s", c.config.ListURL, site)
}

func (c *pricingClient) GetPricingRows(ctx context.Context, site string) ([]Row, error) {
	url := c.PricingURL(site)

	html, err := c.fetchHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing page for site %s: %w", site, err)
	}

	rows, err := c.parser.ParsePricingTables(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pricing page for site %s: %w", site, err)
	}

	log.Debugf("Extracted %d pricing rows for site %s", len(rows), site)
	return rows, nil
}

func (c *pricingClient) GetCategories(ctx context.Context) ([]domain.Category, error) {
	html, err := c.fetchHTML(ctx, c.config.MainURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing page: %w", err)
	}

	categories, err := c.parser.ParseCategorySidebar(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories found on pricing page")
	}

	log.Infof("✅ Scraped %d categories from pricing page", len(categories))
	return categories, nil
}

func (c *pricingClient) fetchHTML(ctx context.Context, url string) (string, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.String(), nil
}

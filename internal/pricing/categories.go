package pricing

import "pricehound/scraper/internal/domain"

// DefaultCategories is the static category table used when scraping the
// pricing page sidebar yields nothing. It mirrors the page's section
// structure and is matched by keyword rather than exact product list.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{
			Name:  "Infrastructure",
			Order: 1,
			Keywords: []string{
				"infrastructure", "container", "custom metrics", "ingested custom metrics",
				"serverless", "network", "cloud cost", "fargate", "azure app", "google cloud run",
			},
		},
		{
			Name:  "Applications",
			Order: 2,
			Keywords: []string{
				"apm", "database", "data streams", "profiler", "continuous profiler",
				"dynamic instrumentation", "universal service monitoring", "llm observability",
				"data jobs",
			},
		},
		{
			Name:  "Logs",
			Order: 3,
			Keywords: []string{
				"logs", "log management", "sensitive data scanner", "audit trail",
				"observability pipelines", "flex logs",
			},
		},
		{
			Name:  "Security",
			Order: 4,
			Keywords: []string{
				"security", "cspm", "ciem", "cloud siem", "siem", "workload",
				"application security", "asm", "code security", "sca", "software composition",
			},
		},
		{
			Name:  "Digital Experience",
			Order: 5,
			Keywords: []string{
				"rum", "real user", "session replay", "synthetic", "mobile rum",
				"browser rum", "error tracking", "product analytics",
			},
		},
		{
			Name:  "Software Delivery",
			Order: 6,
			Keywords: []string{
				"ci visibility", "test visibility", "pipeline visibility", "continuous testing",
				"ide", "test optimization",
			},
		},
		{
			Name:  "Service Management",
			Order: 7,
			Keywords: []string{
				"incident", "on-call", "case management", "workflow automation",
				"slo", "service level", "event management",
			},
		},
		{
			Name:     "AI",
			Order:    8,
			Keywords: []string{"ai", "llm", "bits ai"},
		},
	}
}

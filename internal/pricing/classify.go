package pricing

import (
	"strings"

	"pricehound/scraper/internal/domain"
)

// Rules holds the main/addon classification tables. They are data, not
// logic: the decision order in ClassifyProductType stays fixed while the
// tables can be tuned or replaced in tests.
type Rules struct {
	// Billing-unit substrings that mark host- or session-billed base
	// subscriptions.
	MainUnits []string
	// Product-name substrings for core products that are mains regardless
	// of plan or unit.
	MainProducts []string
}

// DefaultRules returns the classification tables for the Datadog listing.
func DefaultRules() Rules {
	return Rules{
		MainUnits: []string{
			"per host", "per apm host",
			"per session", "per 1k sessions",
		},
		MainProducts: []string{
			"log management", "rum", "browser rum", "mobile rum",
			"siem", "cloud siem", "cspm", "ciem",
			"synthetic", "synthetics",
			"incident management", "on-call",
			"ci visibility", "test visibility",
		},
	}
}

// ExtractPlan reads the plan tier out of a product name. "Enterprise"
// beats "Pro"; anything else is available to all plans.
func ExtractPlan(name string) string {
	nameLower := strings.ToLower(name)
	switch {
	case strings.Contains(nameLower, "enterprise"):
		return domain.PlanEnterprise
	case strings.Contains(nameLower, "pro"):
		return domain.PlanPro
	default:
		return domain.PlanAll
	}
}

// ClassifyProductType decides whether a product is a base subscription or a
// usage-based addon. Checks run in fixed order, first match wins: tiered
// plan, host/session billing unit, curated main-product names, then addon.
func (r Rules) ClassifyProductType(name, plan, billingUnit string) string {
	if plan == domain.PlanPro || plan == domain.PlanEnterprise {
		return domain.ProductTypeMain
	}

	unitLower := strings.ToLower(billingUnit)
	for _, u := range r.MainUnits {
		if strings.Contains(unitLower, u) {
			return domain.ProductTypeMain
		}
	}

	nameLower := strings.ToLower(name)
	for _, kw := range r.MainProducts {
		if strings.Contains(nameLower, kw) {
			return domain.ProductTypeMain
		}
	}

	return domain.ProductTypeAddon
}

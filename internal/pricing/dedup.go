package pricing

import "pricehound/scraper/internal/domain"

// Deduplicate collapses duplicate rows within one extraction pass. Rows are
// keyed by the normalized (name, billing unit) pair, the same key the ID is
// derived from; the first row for a key wins and input order is preserved.
func Deduplicate(products []domain.Product) []domain.Product {
	seen := make(map[string]struct{}, len(products))
	unique := make([]domain.Product, 0, len(products))

	for _, p := range products {
		key := NormalizeKey(p.Product) + "|" + NormalizeKey(p.BillingUnit)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}

	return unique
}

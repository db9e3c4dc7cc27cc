package pricing

import (
	"strings"

	"pricehound/scraper/internal/domain"
)

// FallbackCategory collects products no category claims.
const FallbackCategory = "Specific"

// MatchCategory finds the display category for a product name. Phase one
// checks each category's exact product list with case-insensitive substring
// containment in either direction; phase two falls back to keywords, where
// short keywords (3 chars or less) must match a whole word of the name and
// longer keywords match by substring. Category list order is precedence.
// Products nothing claims land in the "Specific" category.
func MatchCategory(name string, categories []domain.Category) string {
	nameLower := strings.ToLower(name)

	words := make(map[string]struct{})
	for _, w := range strings.Fields(nameLower) {
		words[w] = struct{}{}
	}

	for _, category := range categories {
		for _, prod := range category.Products {
			prodLower := strings.ToLower(prod)
			if strings.Contains(nameLower, prodLower) || strings.Contains(prodLower, nameLower) {
				return category.Name
			}
		}
	}

	for _, category := range categories {
		for _, keyword := range category.Keywords {
			keywordLower := strings.ToLower(keyword)
			if len(keywordLower) <= 3 {
				if _, ok := words[keywordLower]; ok {
					return category.Name
				}
			} else if strings.Contains(nameLower, keywordLower) {
				return category.Name
			}
		}
	}

	return FallbackCategory
}

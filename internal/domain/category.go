package domain

// Category maps products to a display group. Scraped categories carry a
// Products list for exact matching; the built-in fallback table carries
// Keywords instead. Categories are shared across all regions.
type Category struct {
	Name     string   `json:"name"`
	Order    int      `json:"order"`
	Products []string `json:"products,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

package client

import (
	"fmt"
	"regexp"
	"strings"

	"pricehound/scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

type pageParser struct{}

func newPageParser() *pageParser {
	return &pageParser{}
}

// ParsePricingTables extracts candidate product rows from every table on
// the listing page. Column 0 is the product name, column 1 the billing
// unit, columns 2-4 the three price cells. Rows with no name, header text
// or no price at all are skipped; a row failure never aborts the page.
func (p *pageParser) ParsePricingTables(html string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []Row

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		table.Find("tr").Each(func(j int, tr *goquery.Selection) {
			if row, ok := p.parseRow(tr); ok {
				rows = append(rows, row)
			}
		})
	})

	log.Debugf("Parsed %d candidate rows from pricing tables", len(rows))
	return rows, nil
}

func (p *pageParser) parseRow(tr *goquery.Selection) (Row, bool) {
	cells := tr.Find("td, th")
	if cells.Length() < 2 {
		return Row{}, false
	}

	name := strings.TrimSpace(cells.Eq(0).Text())
	billingUnit := strings.TrimSpace(cells.Eq(1).Text())

	// Skip header rows and empty/placeholder names.
	switch strings.ToLower(name) {
	case "", "product", "nan":
		return Row{}, false
	}

	// Some rows repeat the billing unit inside the name cell.
	if billingUnit != "" && strings.Contains(name, billingUnit) {
		name = strings.TrimSpace(strings.ReplaceAll(name, billingUnit, ""))
	}

	name = strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
	billingUnit = strings.TrimSpace(strings.ReplaceAll(billingUnit, "*", ""))
	if name == "" {
		return Row{}, false
	}
	if billingUnit == "" {
		billingUnit = "per unit"
	}

	row := Row{
		Product:            name,
		BillingUnit:        billingUnit,
		BilledAnnually:     cellText(cells, 2),
		BilledMonthToMonth: cellText(cells, 3),
		OnDemand:           cellText(cells, 4),
	}

	// A row without a single price is decoration, not a product.
	if row.BilledAnnually == nil && row.BilledMonthToMonth == nil && row.OnDemand == nil {
		return Row{}, false
	}

	return row, true
}

// cellText returns the trimmed text of the cell at idx, or nil when the
// cell is missing or blank. Absent is not zero.
func cellText(cells *goquery.Selection, idx int) *string {
	if idx >= cells.Length() {
		return nil
	}
	text := strings.TrimSpace(cells.Eq(idx).Text())
	if text == "" {
		return nil
	}
	return &text
}

var sidebarClassPattern = regexp.MustCompile(`(?i)nav|sidebar|menu|pricing`)

// ParseCategorySidebar extracts product categories from the pricing page
// navigation: headings inside nav-like containers, each followed by a list
// of product links. Order is assigned by position. An empty result is left
// to the caller, which falls back to the static default table.
func (p *pageParser) ParseCategorySidebar(html string) ([]domain.Category, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var categories []domain.Category

	doc.Find("nav, aside, div").Each(func(i int, container *goquery.Selection) {
		class, _ := container.Attr("class")
		if !sidebarClassPattern.MatchString(class) {
			return
		}

		container.Find("h2, h3, h4").Each(func(j int, heading *goquery.Selection) {
			name := strings.TrimSpace(heading.Text())
			if len(name) < 2 {
				return
			}

			list := heading.NextAllFiltered("ul, div").First()
			if list.Length() == 0 {
				return
			}

			var products []string
			list.Find("a").EachWithBreak(func(k int, link *goquery.Selection) bool {
				if len(products) >= 20 {
					return false
				}
				productName := strings.TrimSpace(link.Text())
				if len(productName) > 2 {
					products = append(products, productName)
				}
				return true
			})

			if len(products) > 0 {
				categories = append(categories, domain.Category{
					Name:     name,
					Products: products,
				})
			}
		})
	})

	for i := range categories {
		categories[i].Order = i + 1
	}

	return categories, nil
}

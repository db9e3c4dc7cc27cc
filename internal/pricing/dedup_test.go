package pricing

import (
	"testing"

	"pricehound/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicateFirstWins(t *testing.T) {
	first := "$15"
	second := "$99"
	products := []domain.Product{
		{Product: "APM", BillingUnit: "per host", BilledAnnually: &first},
		{Product: "Log Management", BillingUnit: "per GB"},
		{Product: "APM", BillingUnit: "per host", BilledAnnually: &second},
	}

	unique := Deduplicate(products)

	require.Len(t, unique, 2)
	assert.Equal(t, "APM", unique[0].Product)
	assert.Equal(t, &first, unique[0].BilledAnnually)
	assert.Equal(t, "Log Management", unique[1].Product)
}

func TestDeduplicateNormalizedKey(t *testing.T) {
	products := []domain.Product{
		{Product: "APM", BillingUnit: "per host"},
		{Product: "  apm ", BillingUnit: "PER HOST"},
	}

	assert.Len(t, Deduplicate(products), 1)
}

func TestDeduplicateSameNameDifferentUnit(t *testing.T) {
	products := []domain.Product{
		{Product: "APM", BillingUnit: "per host"},
		{Product: "APM", BillingUnit: "per span"},
	}

	assert.Len(t, Deduplicate(products), 2)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}

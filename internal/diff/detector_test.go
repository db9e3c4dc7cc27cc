package diff

import (
	"testing"

	"pricehound/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimestamp = "2026-08-31T12:00:00Z"

func strPtr(s string) *string { return &s }

func product(id, name string, annually, monthly, onDemand *string) domain.Product {
	return domain.Product{
		ID:                 id,
		Region:             "us",
		Product:            name,
		Category:           "Infrastructure",
		BillingUnit:        "per host",
		BilledAnnually:     annually,
		BilledMonthToMonth: monthly,
		OnDemand:           onDemand,
	}
}

func TestDetectPriceChange(t *testing.T) {
	oldData := []domain.Product{product("abc123", "Infrastructure Pro", strPtr("15"), strPtr("18"), nil)}
	newData := []domain.Product{product("abc123", "Infrastructure Pro", strPtr("18"), strPtr("18"), nil)}

	changes := Detect(oldData, newData, "us", testTimestamp)

	require.Len(t, changes, 1)
	change := changes[0]
	assert.Equal(t, domain.ChangePriceChange, change.Type)
	assert.Equal(t, "abc123", change.ProductID)
	assert.Equal(t, domain.FieldBilledAnnually, change.Field)
	assert.Equal(t, strPtr("15"), change.OldValue)
	assert.Equal(t, strPtr("18"), change.NewValue)
	assert.Equal(t, testTimestamp, change.Timestamp)
	assert.Nil(t, change.Data)
}

func TestDetectTwoFieldsTwoEvents(t *testing.T) {
	oldData := []domain.Product{product("abc123", "APM", strPtr("31"), strPtr("36"), nil)}
	newData := []domain.Product{product("abc123", "APM", strPtr("35"), strPtr("40"), nil)}

	changes := Detect(oldData, newData, "us", testTimestamp)

	require.Len(t, changes, 2)
	assert.Equal(t, domain.FieldBilledAnnually, changes[0].Field)
	assert.Equal(t, domain.FieldBilledMonthToMonth, changes[1].Field)
}

func TestDetectNilToValueIsChange(t *testing.T) {
	oldData := []domain.Product{product("abc123", "APM", nil, nil, nil)}
	newData := []domain.Product{product("abc123", "APM", nil, nil, strPtr("2.60"))}

	changes := Detect(oldData, newData, "us", testTimestamp)

	require.Len(t, changes, 1)
	assert.Equal(t, domain.FieldOnDemand, changes[0].Field)
	assert.Nil(t, changes[0].OldValue)
	assert.Equal(t, strPtr("2.60"), changes[0].NewValue)
}

func TestDetectAddition(t *testing.T) {
	oldData := []domain.Product{product("abc123", "APM", strPtr("31"), nil, nil)}
	newData := []domain.Product{
		product("abc123", "APM", strPtr("31"), nil, nil),
		product("def456", "Flex Logs", strPtr("0.60"), strPtr("0.75"), strPtr("1.00")),
	}

	changes := Detect(oldData, newData, "us", testTimestamp)

	require.Len(t, changes, 1)
	change := changes[0]
	assert.Equal(t, domain.ChangeProductAdded, change.Type)
	assert.Equal(t, "def456", change.ProductID)
	require.NotNil(t, change.Data)
	assert.Equal(t, strPtr("0.60"), change.Data.BilledAnnually)
	assert.Equal(t, strPtr("0.75"), change.Data.BilledMonthToMonth)
	assert.Equal(t, strPtr("1.00"), change.Data.OnDemand)
	assert.Empty(t, change.Field)
}

func TestDetectRemoval(t *testing.T) {
	oldData := []domain.Product{
		product("abc123", "APM", strPtr("31"), nil, nil),
		product("ghi789", "Legacy Product", strPtr("5"), strPtr("6"), nil),
	}
	newData := []domain.Product{product("abc123", "APM", strPtr("31"), nil, nil)}

	changes := Detect(oldData, newData, "us", testTimestamp)

	require.Len(t, changes, 1)
	change := changes[0]
	assert.Equal(t, domain.ChangeProductRemoved, change.Type)
	assert.Equal(t, "ghi789", change.ProductID)
	require.NotNil(t, change.Data)
	assert.Equal(t, strPtr("5"), change.Data.BilledAnnually)
	assert.Equal(t, strPtr("6"), change.Data.BilledMonthToMonth)
	assert.Nil(t, change.Data.OnDemand)
}

func TestDetectNoChanges(t *testing.T) {
	snapshot := []domain.Product{
		product("abc123", "APM", strPtr("31"), nil, nil),
		product("def456", "Flex Logs", nil, strPtr("0.75"), nil),
	}

	assert.Empty(t, Detect(snapshot, snapshot, "us", testTimestamp))
}

func TestDetectEmptyPrevious(t *testing.T) {
	newData := []domain.Product{
		product("abc123", "APM", strPtr("31"), nil, nil),
		product("def456", "Flex Logs", nil, strPtr("0.75"), nil),
	}

	changes := Detect(nil, newData, "us", testTimestamp)

	require.Len(t, changes, 2)
	for _, change := range changes {
		assert.Equal(t, domain.ChangeProductAdded, change.Type)
		assert.Equal(t, testTimestamp, change.Timestamp)
		assert.Equal(t, "us", change.Region)
	}
}

func TestDetectSkipsMalformedRecords(t *testing.T) {
	oldData := []domain.Product{{Product: "No ID"}}
	newData := []domain.Product{{Product: "Also no ID"}}

	assert.Empty(t, Detect(oldData, newData, "us", testTimestamp))
}

// Package diff compares two pricing snapshots of one region and reports the
// differences as change events. The comparison is pure: it never touches
// storage, and all events of one run share the caller's timestamp.
package diff

import "pricehound/scraper/internal/domain"

// Detect diffs the previous and new snapshot by product ID. IDs only in the
// new snapshot become product_added events carrying all three prices; IDs in
// both are compared field by field, one price_change event per differing
// price (nil-vs-value counts as a change); IDs only in the old snapshot
// become product_removed events with the old prices. Records without an ID
// are treated as absent.
func Detect(oldData, newData []domain.Product, region, timestamp string) []domain.Change {
	var changes []domain.Change

	oldByID := indexByID(oldData)
	newByID := indexByID(newData)

	for _, newItem := range newData {
		if newItem.ID == "" {
			continue
		}

		oldItem, ok := oldByID[newItem.ID]
		if !ok {
			changes = append(changes, domain.Change{
				Timestamp: timestamp,
				Region:    region,
				Type:      domain.ChangeProductAdded,
				Product:   newItem.Product,
				ProductID: newItem.ID,
				Category:  newItem.Category,
				Data:      priceSet(newItem),
			})
			continue
		}

		for _, field := range priceFields(oldItem, newItem) {
			if !equal(field.oldValue, field.newValue) {
				changes = append(changes, domain.Change{
					Timestamp: timestamp,
					Region:    region,
					Type:      domain.ChangePriceChange,
					Product:   newItem.Product,
					ProductID: newItem.ID,
					Category:  newItem.Category,
					Field:     field.name,
					OldValue:  field.oldValue,
					NewValue:  field.newValue,
				})
			}
		}
	}

	for _, oldItem := range oldData {
		if oldItem.ID == "" {
			continue
		}
		if _, ok := newByID[oldItem.ID]; !ok {
			changes = append(changes, domain.Change{
				Timestamp: timestamp,
				Region:    region,
				Type:      domain.ChangeProductRemoved,
				Product:   oldItem.Product,
				ProductID: oldItem.ID,
				Category:  oldItem.Category,
				Data:      priceSet(oldItem),
			})
		}
	}

	return changes
}

type fieldPair struct {
	name     string
	oldValue *string
	newValue *string
}

func priceFields(oldItem, newItem domain.Product) []fieldPair {
	return []fieldPair{
		{domain.FieldBilledAnnually, oldItem.BilledAnnually, newItem.BilledAnnually},
		{domain.FieldBilledMonthToMonth, oldItem.BilledMonthToMonth, newItem.BilledMonthToMonth},
		{domain.FieldOnDemand, oldItem.OnDemand, newItem.OnDemand},
	}
}

func priceSet(p domain.Product) *domain.PriceSet {
	return &domain.PriceSet{
		BilledAnnually:     p.BilledAnnually,
		BilledMonthToMonth: p.BilledMonthToMonth,
		OnDemand:           p.OnDemand,
	}
}

func indexByID(products []domain.Product) map[string]domain.Product {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if p.ID != "" {
			byID[p.ID] = p
		}
	}
	return byID
}

func equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

package domain

// Change event types.
const (
	ChangeProductAdded   = "product_added"
	ChangePriceChange    = "price_change"
	ChangeProductRemoved = "product_removed"
)

// PriceSet carries all three price fields of a product, used as the payload
// of add/remove events.
type PriceSet struct {
	BilledAnnually     *string `json:"billed_annually"`
	BilledMonthToMonth *string `json:"billed_month_to_month"`
	OnDemand           *string `json:"on_demand"`
}

// Change is one detected difference between two consecutive snapshots of a
// region. Add/remove events carry Data; price changes carry Field with the
// old and new values. Records are immutable once written to the history.
type Change struct {
	Timestamp string    `json:"timestamp"`
	Region    string    `json:"region"`
	Type      string    `json:"type"`
	Product   string    `json:"product"`
	ProductID string    `json:"product_id"`
	Category  string    `json:"category"`
	Data      *PriceSet `json:"data,omitempty"`
	Field     string    `json:"field,omitempty"`
	OldValue  *string   `json:"old_value,omitempty"`
	NewValue  *string   `json:"new_value,omitempty"`
}

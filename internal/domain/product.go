package domain

// Plan tiers, in precedence order.
const (
	PlanEnterprise = "Enterprise"
	PlanPro        = "Pro"
	PlanAll        = "All"
)

// Product types.
const (
	ProductTypeMain  = "main"
	ProductTypeAddon = "addon"
)

// Price field names as they appear in persisted records and change events.
const (
	FieldBilledAnnually     = "billed_annually"
	FieldBilledMonthToMonth = "billed_month_to_month"
	FieldOnDemand           = "on_demand"
)

// Product is one normalized pricing listing row. Price fields hold the raw
// price text from the page and are nil when the cell was absent.
type Product struct {
	ID                 string  `json:"id"`
	Region             string  `json:"region"`
	Product            string  `json:"product"`
	Category           string  `json:"category"`
	Plan               string  `json:"plan"`
	ProductType        string  `json:"product_type"`
	BillingUnit        string  `json:"billing_unit"`
	BilledAnnually     *string `json:"billed_annually"`
	BilledMonthToMonth *string `json:"billed_month_to_month"`
	OnDemand           *string `json:"on_demand"`
}

// Metadata describes the last successful sync for one region. It is replaced
// whole on every sync.
type Metadata struct {
	Region        string `json:"region"`
	RegionName    string `json:"region_name"`
	Site          string `json:"site"`
	LastSync      string `json:"last_sync"`
	ProductsCount int    `json:"products_count"`
	SourceURL     string `json:"source_url"`
}

package entities

import "time"

// PricingStatus tags how a quote's price was obtained.
//
//   - official: the drop-off matched a region in the fixed pricing table
//     (or its override layer); distance is informational only.
//   - estimated: no region matched; the price was derived from routed or
//     great-circle distance.

type PricingStatus string

const (
	PricingStatusOfficial  PricingStatus = "official"
	PricingStatusEstimated PricingStatus = "estimated"
)

// Quote is the computed answer to "what does this shipment cost and how long
// will it take". Quotes are transient: they are folded into a Draft or an
// Order, never persisted standalone.
//
// DistanceKm and DurationMin are rounded to the nearest whole kilometre and
// minute when the route is measured, so a quote read back from a draft
// compares equal to the one computed at quote time.
type Quote struct {
	DistanceKm     int           `json:"distance_km"`
	Cost           float64       `json:"cost"`
	DurationMin    int           `json:"duration_min,omitempty"`
	RoutePolyline  string        `json:"route_polyline,omitempty"`
	PricingRegion  string        `json:"pricing_region,omitempty"`
	PricingStatus  PricingStatus `json:"pricing_status"`
	FulfillDaysMin int           `json:"fulfillment_days_min,omitempty"`
	FulfillDaysMax int           `json:"fulfillment_days_max,omitempty"`
}

// Valid reports whether the quote may be checked out. A finalized quote must
// carry a positive price.
func (q Quote) Valid() bool {
	return q.Cost > 0
}

// Totals is the computed tax breakdown for a subtotal in a region. The
// computation is pure: quote time and checkout time must produce identical
// values for the charged amount to match the displayed one.
type Totals struct {
	Currency string  `json:"currency"`
	Subtotal float64 `json:"subtotal"`
	TaxRate  float64 `json:"tax_rate"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	TaxNote  string  `json:"tax_note"`
}

// Receipt is the generated text record of a completed payment. At most one
// receipt exists per (user, order code); the pair is the storage key.
//
// Storage model (DynamoDB):
//   - PK: user_id, SK: order_code
type Receipt struct {
	UserID    string    `json:"user_id"`
	OrderCode string    `json:"order_code"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// BillingProfile memoizes the payment provider's customer reference for a
// user. Lookup failures default to "no profile"; it is never user-visible.
type BillingProfile struct {
	UserID             string    `json:"user_id"`
	ProviderCustomerID string    `json:"provider_customer_id,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

package request

import "strings"

// PricingOverrideRequest sets or clears a per-region price override.
type PricingOverrideRequest struct {
	Region string  `json:"region" binding:"required"`
	Price  float64 `json:"price"`
}

func (r PricingOverrideRequest) ResolveRegion() string {
	return strings.TrimSpace(r.Region)
}

package response

import (
	"easydrive_booking/internal/domain/pricing"
)

type RegionPriceResponse struct {
	Region     string  `json:"region"`
	TotalPrice float64 `json:"total_price"`
	DaysMin    int     `json:"fulfillment_days_min"`
	DaysMax    int     `json:"fulfillment_days_max"`
}

func FromRegionPrices(prices []pricing.RegionPrice) []RegionPriceResponse {
	out := make([]RegionPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, RegionPriceResponse{
			Region:     p.Region,
			TotalPrice: p.TotalPrice,
			DaysMin:    p.DaysMin,
			DaysMax:    p.DaysMax,
		})
	}
	return out
}

type PricingOverridesResponse struct {
	Overrides map[string]float64 `json:"overrides"`
}

func FromOverrides(overrides pricing.Overrides) PricingOverridesResponse {
	out := make(map[string]float64, len(overrides))
	for region, price := range overrides {
		out[region] = price
	}
	return PricingOverridesResponse{Overrides: out}
}

package response

import (
	"easydrive_booking/internal/domain/entities"
)

type QuoteResponse struct {
	DistanceKm     int     `json:"distance_km"`
	Cost           float64 `json:"cost"`
	Currency       string  `json:"currency"`
	DurationMin    int     `json:"duration_min,omitempty"`
	RoutePolyline  string  `json:"route_polyline,omitempty"`
	PricingRegion  string  `json:"pricing_region,omitempty"`
	PricingStatus  string  `json:"pricing_status"`
	FulfillDaysMin int     `json:"fulfillment_days_min,omitempty"`
	FulfillDaysMax int     `json:"fulfillment_days_max,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		DistanceKm:     q.DistanceKm,
		Cost:           q.Cost,
		Currency:       "CAD",
		DurationMin:    q.DurationMin,
		RoutePolyline:  q.RoutePolyline,
		PricingRegion:  q.PricingRegion,
		PricingStatus:  string(q.PricingStatus),
		FulfillDaysMin: q.FulfillDaysMin,
		FulfillDaysMax: q.FulfillDaysMax,
	}
}

// ExtractionResponse returns the normalized form produced from an uploaded
// document.
type ExtractionResponse struct {
	Form entities.ShipmentForm `json:"form"`
}

package request

import (
	"easydrive_booking/internal/domain/entities"
)

// QuoteRequest carries the shipment form plus optional pickup coordinates
// already resolved by the caller. When the coordinates are absent the pickup
// address is geocoded server-side.
type QuoteRequest struct {
	Form      entities.ShipmentForm `json:"form" binding:"required"`
	PickupLat *float64              `json:"pickup_lat"`
	PickupLng *float64              `json:"pickup_lng"`
}

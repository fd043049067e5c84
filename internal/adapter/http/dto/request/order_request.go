package request

import (
	"strings"

	"easydrive_booking/internal/domain/entities"
)

// CreateOrderRequest confirms a booking. Either DraftID references a stored
// draft (form, quote and documents come from it) or Form+Quote are supplied
// inline. Disclosures must be accepted either way.
type CreateOrderRequest struct {
	DraftID             string                 `json:"draft_id"`
	CustomerName        string                 `json:"customer_name"`
	CustomerEmail       string                 `json:"customer_email"`
	Form                *entities.ShipmentForm `json:"form"`
	Quote               *entities.Quote        `json:"quote"`
	DisclosuresAccepted bool                   `json:"disclosures_accepted"`
}

func (r CreateOrderRequest) ResolveDraftID() string {
	return strings.TrimSpace(r.DraftID)
}

// UpdateOrderStatusRequest advances an order through its lifecycle. Note is
// appended to the order history alongside the new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

package request

import "strings"

// CheckoutSessionRequest starts payment for an order the caller owns.
type CheckoutSessionRequest struct {
	OrderCode string `json:"order_code" binding:"required"`
}

func (r CheckoutSessionRequest) ResolveOrderCode() string {
	return strings.TrimSpace(r.OrderCode)
}

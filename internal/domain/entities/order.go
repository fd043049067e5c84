package entities

import "time"

// OrderStatus represents the delivery lifecycle of a confirmed order.
//
// Domain notes:
//   - Scheduled -> Picked Up -> In Transit -> Out for Delivery -> Delivered.
//   - Delayed is a side branch, not a terminal state.
//   - Staff may set any status; no skipping is enforced here. Every change
//     appends an immutable StatusEvent and the order's current status must
//     always equal the most recent event's status.

type OrderStatus string

const (
	OrderStatusScheduled      OrderStatus = "Scheduled"
	OrderStatusPickedUp       OrderStatus = "Picked Up"
	OrderStatusInTransit      OrderStatus = "In Transit"
	OrderStatusDelayed        OrderStatus = "Delayed"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// ValidOrderStatuses lists every status staff may set, in lifecycle order.
var ValidOrderStatuses = []OrderStatus{
	OrderStatusScheduled,
	OrderStatusPickedUp,
	OrderStatusInTransit,
	OrderStatusDelayed,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

func (s OrderStatus) IsValid() bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentStatus represents the payment side of the order lifecycle.
//
// unpaid -> pending -> paid, or pending -> failed (retry re-enters pending).
// paid is dominant: a late "pending" write never reverts a paid order.

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// StatusEvent is one immutable entry in an order's timeline. Events are never
// mutated or removed; storage preserves insertion order, display is newest
// first.
type StatusEvent struct {
	Status OrderStatus `json:"status"`
	Note   string      `json:"note,omitempty"`
	At     time.Time   `json:"at"`
}

// Order is a confirmed, payable shipment persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - orders: PK id; GSI order_code-index: order_code; GSI user_id-index: user_id
//   - order_events: PK order_id, SK seq (append-only)
//
// OrderCode is the human-readable code handed to the customer
// (EDC-YYYYMMDD-XXXXXX); uniqueness is checked against the code index before
// the conditional create.
type Order struct {
	ID             string        `json:"id"`
	OrderCode      string        `json:"order_code"`
	UserID         string        `json:"user_id"`
	CustomerName   string        `json:"customer_name,omitempty"`
	CustomerEmail  string        `json:"customer_email,omitempty"`
	RouteArea      string        `json:"route_area"`
	ServiceType    ServiceType   `json:"service_type"`
	VehicleType    VehicleType   `json:"vehicle_type"`
	PriceBeforeTax float64       `json:"price_before_tax"`
	Currency       string        `json:"currency"`
	Status         OrderStatus   `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`

	// Provider references, filled in as checkout progresses.
	CheckoutSessionID string `json:"checkout_session_id,omitempty"`
	PaymentIntentID   string `json:"payment_intent_id,omitempty"`

	FormData  *ShipmentForm   `json:"form_data,omitempty"`
	Documents []OrderDocument `json:"documents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderDocument is the manifest entry for an uploaded document. The binary
// itself lives in the blob store, never on the order row.
type OrderDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

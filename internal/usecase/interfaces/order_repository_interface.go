package interfaces

import (
	"context"
	"easydrive_booking/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order and its
// append-only status event log.
//
// The booking-service must be able to:
//   - create an order exactly once per id (conditional put)
//   - look an order up by internal id or by its public order code
//   - list a customer's own orders and, for staff, every order
//   - mutate delivery status and payment state independently
//   - append and replay status events in insertion order
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByOrderCode(ctx context.Context, orderCode string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	UpdatePayment(ctx context.Context, id string, payment entities.PaymentStatus, checkoutSessionID string, paymentIntentID string) (entities.Order, error)
	AppendEvent(ctx context.Context, orderID string, event entities.StatusEvent) error
	ListEvents(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
}

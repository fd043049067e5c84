package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderCode   = errors.New("invalid order code")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrQuoteRequired      = errors.New("valid quote required")
	ErrOrderCodeExhausted = errors.New("could not allocate a unique order code")
)

// CreateOrderInput carries everything needed to confirm a booking. The
// quote's cost becomes the order's price before tax; the draft id, when set,
// names a draft to consume after the order lands.
type CreateOrderInput struct {
	UserID        string
	CustomerName  string
	CustomerEmail string
	Form          *entities.ShipmentForm
	Quote         entities.Quote
	Documents     []entities.OrderDocument
	DraftID       string
}

// IOrderUseCase exposes the order lifecycle:
//   - CreateOrder confirms a draft+quote into a tracked order
//   - AdvanceStatus moves delivery status (staff, any transition, with note)
//   - MarkPending / MarkPaid / MarkFailed reflect payment progress
//   - GetTimeline replays status events newest-first
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByOrderCode(ctx context.Context, orderCode string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	AdvanceStatus(ctx context.Context, id string, status entities.OrderStatus, note string) (entities.Order, error)
	MarkPending(ctx context.Context, id string, checkoutSessionID string) (entities.Order, error)
	MarkPaid(ctx context.Context, id string, paymentIntentID string) (entities.Order, error)
	MarkFailed(ctx context.Context, id string, paymentIntentID string) (entities.Order, error)
	GetTimeline(ctx context.Context, orderCode string) (entities.Order, []entities.StatusEvent, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	drafts interfaces.IDraftRepository
	docs   interfaces.IDocumentStore
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, drafts interfaces.IDraftRepository, docs interfaces.IDocumentStore) *OrderUseCase {
	return &OrderUseCase{repo: repo, drafts: drafts, docs: docs}
}

const orderCodeAttempts = 3

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	if !in.Quote.Valid() {
		return entities.Order{}, ErrQuoteRequired
	}

	routeArea := in.Quote.PricingRegion
	if routeArea == "" && in.Form != nil {
		routeArea = strings.TrimSpace(in.Form.DropoffLocation.ServiceArea)
	}

	serviceType := entities.ServiceTypePickup
	vehicleType := entities.VehicleTypeStandard
	if in.Form != nil {
		if in.Form.Service.ServiceType != "" {
			serviceType = in.Form.Service.ServiceType
		}
		if in.Form.Service.VehicleType != "" {
			vehicleType = in.Form.Service.VehicleType
		}
	}

	var created entities.Order
	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		code, err := newOrderCode(time.Now().UTC())
		if err != nil {
			return entities.Order{}, err
		}

		if existing, err := u.repo.GetByOrderCode(ctx, code); err != nil {
			return entities.Order{}, err
		} else if existing.ID != "" {
			continue
		}

		now := time.Now().UTC()
		o := entities.Order{
			ID:             uuid.NewString(),
			OrderCode:      code,
			UserID:         in.UserID,
			CustomerName:   strings.TrimSpace(in.CustomerName),
			CustomerEmail:  strings.TrimSpace(in.CustomerEmail),
			RouteArea:      routeArea,
			ServiceType:    serviceType,
			VehicleType:    vehicleType,
			PriceBeforeTax: in.Quote.Cost,
			Currency:       "CAD",
			Status:         entities.OrderStatusScheduled,
			PaymentStatus:  entities.PaymentStatusUnpaid,
			FormData:       in.Form,
			Documents:      in.Documents,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		created, err = u.repo.Create(ctx, o)
		if err != nil {
			return entities.Order{}, err
		}
		if created.ID != "" {
			break
		}
	}
	if created.ID == "" {
		return entities.Order{}, ErrOrderCodeExhausted
	}

	if err := u.repo.AppendEvent(ctx, created.ID, entities.StatusEvent{
		Status: entities.OrderStatusScheduled,
		Note:   "Order created",
		At:     created.CreatedAt,
	}); err != nil {
		return entities.Order{}, err
	}

	u.consumeDraft(ctx, in.DraftID)
	return created, nil
}

// consumeDraft removes the source draft once an order exists. Failure here
// leaves a stale draft behind, which the owner can delete; it never fails
// the order.
func (u *OrderUseCase) consumeDraft(ctx context.Context, draftID string) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" || u.drafts == nil {
		return
	}
	if u.docs != nil {
		if err := u.docs.DeleteAll(ctx, draftID); err != nil {
			log.Printf("[booking][usecase] draft %s blob cleanup failed: %v", draftID, err)
			return
		}
	}
	if err := u.drafts.Delete(ctx, draftID); err != nil {
		log.Printf("[booking][usecase] draft %s delete failed: %v", draftID, err)
	}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByOrderCode(ctx context.Context, orderCode string) (entities.Order, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return entities.Order{}, ErrInvalidOrderCode
	}

	o, err := u.repo.GetByOrderCode(ctx, orderCode)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *OrderUseCase) ListAll(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListAll(ctx)
}

func (u *OrderUseCase) AdvanceStatus(ctx context.Context, id string, status entities.OrderStatus, note string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	// The event log is appended first: the denormalized status on the order
	// row must never run ahead of its most recent event.
	if err := u.repo.AppendEvent(ctx, o.ID, entities.StatusEvent{
		Status: status,
		Note:   strings.TrimSpace(note),
		At:     time.Now().UTC(),
	}); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, status)
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// MarkPending records an opened checkout session. Paid orders are left
// untouched: a late or duplicate session must never regress a settled
// payment.
func (u *OrderUseCase) MarkPending(ctx context.Context, id string, checkoutSessionID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return o, nil
	}

	updated, err := u.repo.UpdatePayment(ctx, o.ID, entities.PaymentStatusPending, checkoutSessionID, o.PaymentIntentID)
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// MarkPaid is idempotent: a redelivered confirmation neither rewrites the
// order nor appends a second event. First confirmation forces delivery
// status back to Scheduled and logs "Payment received".
func (u *OrderUseCase) MarkPaid(ctx context.Context, id string, paymentIntentID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return o, nil
	}

	updated, err := u.repo.UpdatePayment(ctx, o.ID, entities.PaymentStatusPaid, o.CheckoutSessionID, paymentIntentID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := u.repo.AppendEvent(ctx, updated.ID, entities.StatusEvent{
		Status: entities.OrderStatusScheduled,
		Note:   "Payment received",
		At:     time.Now().UTC(),
	}); err != nil {
		return entities.Order{}, err
	}
	updated, err = u.repo.UpdateStatus(ctx, updated.ID, entities.OrderStatusScheduled)
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// MarkFailed flags the payment without touching delivery status; the
// customer can retry checkout, which moves it back to pending.
func (u *OrderUseCase) MarkFailed(ctx context.Context, id string, paymentIntentID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		return o, nil
	}

	updated, err := u.repo.UpdatePayment(ctx, o.ID, entities.PaymentStatusFailed, o.CheckoutSessionID, paymentIntentID)
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// GetTimeline resolves an order by its public code and returns its events
// newest-first. Storage keeps insertion order, so reversal happens here.
func (u *OrderUseCase) GetTimeline(ctx context.Context, orderCode string) (entities.Order, []entities.StatusEvent, error) {
	o, err := u.GetByOrderCode(ctx, orderCode)
	if err != nil {
		return entities.Order{}, nil, err
	}

	events, err := u.repo.ListEvents(ctx, o.ID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return o, events, nil
}

const orderCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderCode builds a public code like EDC-20260830-7K2M9X: a date stamp
// plus six random base36 characters.
func newOrderCode(now time.Time) (string, error) {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(orderCodeAlphabet[n.Int64()])
	}
	return fmt.Sprintf("EDC-%s-%s", now.Format("20060102"), b.String()), nil
}

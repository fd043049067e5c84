package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/domain/pricing"
	"easydrive_booking/internal/usecase/interfaces"
)

var (
	ErrOrderNotPayable  = errors.New("order has no payable amount")
	ErrInvalidPaymentID = errors.New("invalid payment id")
)

// IPaymentUseCase exposes the checkout and webhook flows.
//
// CreateCheckoutSession reads the amount from the stored order row, never
// from the request, and flips payment status to pending only after the
// provider session exists. ConfirmPayment is driven by a verified webhook
// notification: it fetches the payment from the provider and applies the
// matching payment transition, writing the receipt and billing-profile memo
// on first confirmation.
type IPaymentUseCase interface {
	CreateCheckoutSession(ctx context.Context, userID string, orderCode string) (interfaces.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, paymentID string) (entities.Order, error)
}

type PaymentUseCase struct {
	orders   IOrderUseCase
	gateway  interfaces.IPaymentGateway
	receipts interfaces.IReceiptRepository
	profiles interfaces.IBillingProfileRepository

	successURL string
	failureURL string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders IOrderUseCase, gateway interfaces.IPaymentGateway, receipts interfaces.IReceiptRepository, profiles interfaces.IBillingProfileRepository, successURL, failureURL string) *PaymentUseCase {
	return &PaymentUseCase{
		orders:     orders,
		gateway:    gateway,
		receipts:   receipts,
		profiles:   profiles,
		successURL: successURL,
		failureURL: failureURL,
	}
}

func (u *PaymentUseCase) CreateCheckoutSession(ctx context.Context, userID string, orderCode string) (interfaces.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return interfaces.CheckoutSession{}, ErrInvalidUserID
	}

	o, err := u.orders.GetByOrderCode(ctx, orderCode)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	if o.UserID != userID {
		return interfaces.CheckoutSession{}, ErrOrderNotFound
	}
	if o.PriceBeforeTax <= 0 {
		return interfaces.CheckoutSession{}, ErrOrderNotPayable
	}

	totals := pricing.ComputeTotals(o.PriceBeforeTax, o.RouteArea)

	// A known provider customer is a hint, not a requirement: lookup
	// failure just means the provider creates a fresh one.
	customerID := ""
	if u.profiles != nil {
		if p, err := u.profiles.Get(ctx, userID); err != nil {
			log.Printf("[booking][usecase] billing profile lookup failed for user %s: %v", userID, err)
		} else {
			customerID = p.ProviderCustomerID
		}
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, o, totals, customerID, u.successURL, u.failureURL)
	if err != nil {
		// Payment status untouched, checkout stays retryable.
		return interfaces.CheckoutSession{}, err
	}

	if _, err := u.orders.MarkPending(ctx, o.ID, session.SessionID); err != nil {
		return interfaces.CheckoutSession{}, err
	}
	return session, nil
}

func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, paymentID string) (entities.Order, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Order{}, ErrInvalidPaymentID
	}

	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.Order{}, err
	}

	o, err := u.orders.GetByOrderCode(ctx, p.ExternalReference)
	if err != nil {
		return entities.Order{}, err
	}

	switch p.Status {
	case "approved":
		alreadyPaid := o.PaymentStatus == entities.PaymentStatusPaid
		updated, err := u.orders.MarkPaid(ctx, o.ID, p.PaymentID)
		if err != nil {
			return entities.Order{}, err
		}
		if !alreadyPaid {
			u.writeReceipt(ctx, updated)
		}
		u.rememberPayer(ctx, updated.UserID, p.PayerID)
		return updated, nil
	case "rejected", "cancelled":
		return u.orders.MarkFailed(ctx, o.ID, p.PaymentID)
	case "pending", "in_process":
		return u.orders.MarkPending(ctx, o.ID, o.CheckoutSessionID)
	default:
		log.Printf("[booking][usecase] ignoring payment %s with status %q", p.PaymentID, p.Status)
		return o, nil
	}
}

// writeReceipt renders and stores the plain-text receipt. The conditional
// insert makes redelivered webhooks harmless; any failure is logged, never
// surfaced, since the payment itself already settled.
func (u *PaymentUseCase) writeReceipt(ctx context.Context, o entities.Order) {
	if u.receipts == nil {
		return
	}
	now := time.Now().UTC()
	r := entities.Receipt{
		UserID:    o.UserID,
		OrderCode: o.OrderCode,
		Text:      RenderReceipt(o, now),
		CreatedAt: now,
	}
	if err := u.receipts.CreateOnce(ctx, r); err != nil {
		log.Printf("[booking][usecase] receipt insert skipped for order %s: %v", o.OrderCode, err)
	}
}

func (u *PaymentUseCase) rememberPayer(ctx context.Context, userID string, payerID string) {
	if u.profiles == nil || strings.TrimSpace(payerID) == "" {
		return
	}
	err := u.profiles.Upsert(ctx, entities.BillingProfile{
		UserID:             userID,
		ProviderCustomerID: payerID,
		UpdatedAt:          time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[booking][usecase] billing profile upsert failed for user %s: %v", userID, err)
	}
}

// RenderReceipt renders the customer-facing plain-text receipt.
func RenderReceipt(o entities.Order, createdAt time.Time) string {
	totals := pricing.ComputeTotals(o.PriceBeforeTax, o.RouteArea)
	var b strings.Builder
	fmt.Fprintf(&b, "Receipt\n")
	fmt.Fprintf(&b, "Created: %s\n", createdAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Order: %s\n", o.OrderCode)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Subtotal (before tax): $%.2f\n", totals.Subtotal)
	fmt.Fprintf(&b, "Tax %s (%.3f%%): $%.2f\n", totals.TaxNote, totals.TaxRate*100, totals.Tax)
	fmt.Fprintf(&b, "Total: $%.2f\n", totals.Total)
	return b.String()
}

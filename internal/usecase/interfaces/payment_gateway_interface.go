package interfaces

import (
	"context"
	"net/http"

	"easydrive_booking/internal/domain/entities"
)

// CheckoutSession is what the provider hands back for a hosted checkout:
// the redirect URL the customer completes payment on and the session id we
// persist on the order.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// ProviderPayment is the provider's view of a payment, fetched when a
// webhook notification names its id. ExternalReference carries the order
// code the checkout session was opened for.
type ProviderPayment struct {
	PaymentID         string
	Status            string
	ExternalReference string
	PayerID           string
	Metadata          map[string]any
}

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// The booking-service uses it to open a hosted checkout for an order, to
// fetch a payment named by a webhook notification, and to verify the
// webhook's signature before trusting anything in the request body.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, order entities.Order, totals entities.Totals, providerCustomerID string, successURL string, failureURL string) (CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (ProviderPayment, error)
	VerifyWebhookSignature(header http.Header, dataID string) error
}

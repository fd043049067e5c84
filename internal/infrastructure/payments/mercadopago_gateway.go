package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

type MercadoPagoGateway struct {
	preferences   preference.Client
	payments      payment.Client
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, webhookSecret string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, webhookSecret: webhookSecret}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(cfg),
		payments:      payment.NewClient(cfg),
		webhookSecret: webhookSecret,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, order entities.Order, totals entities.Totals, providerCustomerID, successURL, failureURL string) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock session created id=%s order_code=%s", id, order.OrderCode)
		return interfaces.CheckoutSession{
			SessionID: id,
			URL:       "https://sandbox.mercadopago.local/checkout/" + id,
		}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] session create start order_code=%s amount=%.2f", order.OrderCode, totals.Total)

	metadata := map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
	}
	if providerCustomerID != "" {
		metadata["provider_customer_id"] = providerCustomerID
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      "Vehicle transport " + order.OrderCode,
				Quantity:   1,
				UnitPrice:  totals.Subtotal,
				CurrencyID: order.Currency,
			},
			{
				Title:      "Tax " + totals.TaxNote,
				Quantity:   1,
				UnitPrice:  totals.Tax,
				CurrencyID: order.Currency,
			},
		},
		ExternalReference: order.OrderCode,
		Metadata:          metadata,
		BackURLs: &preference.BackURLsRequest{
			Success: successURL,
			Failure: failureURL,
			Pending: successURL,
		},
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] session create success id=%s", resp.ID)

	return interfaces.CheckoutSession{SessionID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.ProviderPayment, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock payment lookup id=%s", paymentID)
		return interfaces.ProviderPayment{PaymentID: paymentID, Status: "approved"}, nil
	}

	if g == nil || g.payments == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("malformed payment id %q: %w", paymentID, err)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment get failed id=%s err=%v", paymentID, err)
		return interfaces.ProviderPayment{}, err
	}
	log.Printf("[payment][gateway] payment get success id=%d status=%s", resp.ID, resp.Status)

	return interfaces.ProviderPayment{
		PaymentID:         strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		PayerID:           resp.Payer.ID,
		Metadata:          resp.Metadata,
	}, nil
}

// VerifyWebhookSignature checks Mercado Pago's x-signature header: an
// HMAC-SHA256 of "id:{data.id};request-id:{x-request-id};ts:{ts};" keyed
// with the webhook secret. Notifications without a valid signature must be
// dropped before anything in them is read.
func (g *MercadoPagoGateway) VerifyWebhookSignature(header http.Header, dataID string) error {
	if g == nil || g.webhookSecret == "" {
		return ErrMercadoPagoGatewayNotConfigured
	}

	ts, v1 := parseSignatureHeader(header.Get("x-signature"))
	if ts == "" || v1 == "" {
		return ErrInvalidWebhookSignature
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;",
		strings.ToLower(strings.TrimSpace(dataID)),
		header.Get("x-request-id"),
		ts,
	)

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return ErrInvalidWebhookSignature
	}
	return nil
}

func parseSignatureHeader(value string) (ts, v1 string) {
	for _, part := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	return ts, v1
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

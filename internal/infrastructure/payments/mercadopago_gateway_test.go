package payments

import (
	"errors"
	"net/http"
	"testing"
)

func signedHeader(ts, v1, requestID string) http.Header {
	h := http.Header{}
	h.Set("x-signature", "ts="+ts+",v1="+v1)
	h.Set("x-request-id", requestID)
	return h
}

func TestVerifyWebhookSignature(t *testing.T) {
	g := &MercadoPagoGateway{webhookSecret: "test-secret"}

	// HMAC-SHA256("test-secret", "id:12345;request-id:req-1;ts:1700000000;")
	const valid = "767ca542b07f83fbe1713c55f4db7ab3a9860271816a15ac34dba8404b818588"

	t.Run("valid signature", func(t *testing.T) {
		if err := g.VerifyWebhookSignature(signedHeader("1700000000", valid, "req-1"), "12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("data id is lowercased before signing", func(t *testing.T) {
		if err := g.VerifyWebhookSignature(signedHeader("1700000000", valid, "req-1"), " 12345 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		err := g.VerifyWebhookSignature(signedHeader("1700000000", valid, "req-1"), "99999")
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("tampered timestamp", func(t *testing.T) {
		err := g.VerifyWebhookSignature(signedHeader("1700000001", valid, "req-1"), "12345")
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		err := g.VerifyWebhookSignature(http.Header{}, "12345")
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		bare := &MercadoPagoGateway{}
		err := bare.VerifyWebhookSignature(signedHeader("1700000000", valid, "req-1"), "12345")
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestParseSignatureHeader(t *testing.T) {
	ts, v1 := parseSignatureHeader("ts=1700000000, v1=abc123")
	if ts != "1700000000" || v1 != "abc123" {
		t.Fatalf("unexpected parse: ts=%q v1=%q", ts, v1)
	}

	ts, v1 = parseSignatureHeader("garbage")
	if ts != "" || v1 != "" {
		t.Fatalf("expected empty parse, got ts=%q v1=%q", ts, v1)
	}
}

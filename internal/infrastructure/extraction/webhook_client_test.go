package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookClient_Extract(t *testing.T) {
	t.Run("should post base64 payload and decode response", func(t *testing.T) {
		var gotPayload map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"output":{"vehicle":{"vin":"1FTEW1EP5MKE11111"}}}]`))
		}))
		defer server.Close()

		client := NewWebhookClientWithURL(server.Client(), server.URL)

		result, err := client.Extract(context.Background(), "bill.pdf", "application/pdf", []byte("pdf-bytes"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPayload["filename"] != "bill.pdf" {
			t.Fatalf("expected filename in payload, got %v", gotPayload["filename"])
		}
		wantData := base64.StdEncoding.EncodeToString([]byte("pdf-bytes"))
		if gotPayload["data"] != wantData {
			t.Fatalf("expected base64 document, got %v", gotPayload["data"])
		}
		if _, ok := result.([]any); !ok {
			t.Fatalf("expected decoded array, got %T", result)
		}
	})

	t.Run("should fail when webhook url is not configured", func(t *testing.T) {
		client := NewWebhookClientWithURL(http.DefaultClient, "")

		if _, err := client.Extract(context.Background(), "bill.pdf", "application/pdf", []byte("x")); err != ErrWebhookNotConfigured {
			t.Fatalf("expected ErrWebhookNotConfigured, got %v", err)
		}
	})

	t.Run("should fail on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewWebhookClientWithURL(server.Client(), server.URL)

		if _, err := client.Extract(context.Background(), "bill.pdf", "application/pdf", []byte("x")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("should fail on invalid json response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := NewWebhookClientWithURL(server.Client(), server.URL)

		if _, err := client.Extract(context.Background(), "bill.pdf", "application/pdf", []byte("x")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

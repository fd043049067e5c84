// Package extraction talks to the external document extraction workflow.
// The workflow receives the uploaded document as base64 and answers with a
// loosely-shaped JSON payload that the domain normalizer cleans up.
package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"easydrive_booking/internal/usecase/interfaces"
)

var ErrWebhookNotConfigured = errors.New("extraction webhook url not configured")

// WebhookClient posts documents to the extraction workflow webhook.
type WebhookClient struct {
	httpClient *http.Client
	webhookURL string
}

var _ interfaces.IExtractionClient = (*WebhookClient)(nil)

func NewWebhookClient() *WebhookClient {
	return &WebhookClient{
		httpClient: &http.Client{Timeout: 90 * time.Second},
		webhookURL: strings.TrimSpace(os.Getenv("EXTRACTION_WEBHOOK_URL")),
	}
}

// NewWebhookClientWithURL exists for tests pointing at a fake server.
func NewWebhookClientWithURL(client *http.Client, webhookURL string) *WebhookClient {
	return &WebhookClient{httpClient: client, webhookURL: strings.TrimSpace(webhookURL)}
}

func (c *WebhookClient) Extract(ctx context.Context, filename, contentType string, data []byte) (any, error) {
	if c.webhookURL == "" {
		return nil, ErrWebhookNotConfigured
	}

	payload := map[string]any{
		"filename":     filename,
		"content_type": contentType,
		"data":         base64.StdEncoding.EncodeToString(data),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction webhook status %d", resp.StatusCode)
	}

	var result any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("extraction webhook returned invalid json: %w", err)
	}
	return result, nil
}

// Package identity resolves bearer tokens against the account service.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"easydrive_booking/internal/usecase/interfaces"
)

var (
	ErrIdentityNotConfigured = errors.New("identity service url not configured")
	ErrInvalidToken          = errors.New("invalid or expired token")
)

// HTTPProvider calls the account service's introspection endpoint with the
// caller's bearer token and maps the response to an Identity.
type HTTPProvider struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IIdentityProvider = (*HTTPProvider)(nil)

func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(strings.TrimSpace(os.Getenv("IDENTITY_URL")), "/"),
	}
}

// NewHTTPProviderWithBase exists for tests pointing at a fake server.
func NewHTTPProviderWithBase(client *http.Client, baseURL string) *HTTPProvider {
	return &HTTPProvider{httpClient: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *HTTPProvider) Resolve(ctx context.Context, token string) (interfaces.Identity, error) {
	if p.baseURL == "" {
		return interfaces.Identity{}, ErrIdentityNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.Identity{}, ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/me", nil)
	if err != nil {
		return interfaces.Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return interfaces.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return interfaces.Identity{}, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return interfaces.Identity{}, fmt.Errorf("identity service status %d", resp.StatusCode)
	}

	var body struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Staff  bool   `json:"staff"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.Identity{}, err
	}
	if strings.TrimSpace(body.UserID) == "" {
		return interfaces.Identity{}, ErrInvalidToken
	}

	return interfaces.Identity{
		UserID: body.UserID,
		Email:  body.Email,
		Staff:  body.Staff,
	}, nil
}

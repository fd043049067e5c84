// Package geo holds the HTTP clients for geocoding and routing plus the
// straight-line fallback. Providers are free-tier public services; every
// client degrades with an error and lets the caller move down the chain.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"easydrive_booking/internal/usecase/interfaces"
)

const defaultArcGISBaseURL = "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer"

var ErrNoGeocodeMatch = errors.New("no geocode match")

// ArcGISGeocoder resolves free-text addresses via the ArcGIS World
// findAddressCandidates endpoint.
type ArcGISGeocoder struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IGeocoder = (*ArcGISGeocoder)(nil)

func NewArcGISGeocoder() *ArcGISGeocoder {
	return &ArcGISGeocoder{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultArcGISBaseURL,
	}
}

// NewArcGISGeocoderWithBase exists for tests pointing at a fake server.
func NewArcGISGeocoderWithBase(client *http.Client, baseURL string) *ArcGISGeocoder {
	return &ArcGISGeocoder{httpClient: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *ArcGISGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	query := normalizeAddressQuery(address)
	if query == "" {
		return 0, 0, ErrNoGeocodeMatch
	}

	u := fmt.Sprintf("%s/findAddressCandidates?f=json&maxLocations=1&singleLine=%s",
		g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("arcgis status %d", resp.StatusCode)
	}

	var body struct {
		Candidates []struct {
			Location struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"location"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, err
	}
	if len(body.Candidates) == 0 {
		log.Printf("[booking][geo] no geocode candidate for %q", query)
		return 0, 0, ErrNoGeocodeMatch
	}

	loc := body.Candidates[0].Location
	return loc.Y, loc.X, nil
}

// normalizeAddressQuery drops leading comma-separated segments until one
// carries a street number, so "Lakeview Auto, 200 King St W, Oshawa"
// geocodes from the civic address rather than the business name.
func normalizeAddressQuery(address string) string {
	parts := strings.Split(address, ",")
	for i, part := range parts {
		if strings.ContainsAny(part, "0123456789") {
			return strings.TrimSpace(strings.Join(parts[i:], ","))
		}
	}
	return strings.TrimSpace(address)
}

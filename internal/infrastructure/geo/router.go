package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"easydrive_booking/internal/usecase/interfaces"
)

const (
	defaultOSRMBaseURL   = "https://router.project-osrm.org"
	defaultMapboxBaseURL = "https://api.mapbox.com"
)

var ErrNoRoute = errors.New("no route found")

// OSRMRouter queries the public OSRM demo server for a driving route.
type OSRMRouter struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IRouter = (*OSRMRouter)(nil)

func NewOSRMRouter() *OSRMRouter {
	return &OSRMRouter{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultOSRMBaseURL,
	}
}

func NewOSRMRouterWithBase(client *http.Client, baseURL string) *OSRMRouter {
	return &OSRMRouter{httpClient: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *OSRMRouter) Route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (interfaces.RouteLeg, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=polyline",
		r.baseURL, fromLng, fromLat, toLng, toLat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return interfaces.RouteLeg{}, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return interfaces.RouteLeg{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.RouteLeg{}, fmt.Errorf("osrm status %d", resp.StatusCode)
	}

	var body struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry string  `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.RouteLeg{}, err
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return interfaces.RouteLeg{}, ErrNoRoute
	}

	route := body.Routes[0]
	return interfaces.RouteLeg{
		DistanceKm:  route.Distance / 1000,
		DurationMin: route.Duration / 60,
		Polyline:    route.Geometry,
	}, nil
}

// MapboxRouter queries the Mapbox Directions API. It only participates in
// the chain when an access token is configured.
type MapboxRouter struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

var _ interfaces.IRouter = (*MapboxRouter)(nil)

func NewMapboxRouter(accessToken string) *MapboxRouter {
	return &MapboxRouter{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     defaultMapboxBaseURL,
		accessToken: strings.TrimSpace(accessToken),
	}
}

func NewMapboxRouterWithBase(client *http.Client, baseURL, accessToken string) *MapboxRouter {
	return &MapboxRouter{
		httpClient:  client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: strings.TrimSpace(accessToken),
	}
}

func (r *MapboxRouter) Route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (interfaces.RouteLeg, error) {
	if r.accessToken == "" {
		return interfaces.RouteLeg{}, errors.New("mapbox access token not configured")
	}

	u := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f?overview=full&geometries=polyline&access_token=%s",
		r.baseURL, fromLng, fromLat, toLng, toLat, url.QueryEscape(r.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return interfaces.RouteLeg{}, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return interfaces.RouteLeg{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.RouteLeg{}, fmt.Errorf("mapbox status %d", resp.StatusCode)
	}

	var body struct {
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry string  `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.RouteLeg{}, err
	}
	if len(body.Routes) == 0 {
		return interfaces.RouteLeg{}, ErrNoRoute
	}

	route := body.Routes[0]
	return interfaces.RouteLeg{
		DistanceKm:  route.Distance / 1000,
		DurationMin: route.Duration / 60,
		Polyline:    route.Geometry,
	}, nil
}

// HaversineRouter computes the great-circle distance between the two points
// and assumes 60 km/h. It never fails, which makes it the terminal entry of
// the routing chain.
type HaversineRouter struct{}

var _ interfaces.IRouter = (*HaversineRouter)(nil)

func NewHaversineRouter() *HaversineRouter {
	return &HaversineRouter{}
}

const earthRadiusKm = 6371

func (r *HaversineRouter) Route(_ context.Context, fromLat, fromLng, toLat, toLng float64) (interfaces.RouteLeg, error) {
	km := haversineKm(fromLat, fromLng, toLat, toLng)
	return interfaces.RouteLeg{
		DistanceKm:  km,
		DurationMin: km, // 60 km/h
	}, nil
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

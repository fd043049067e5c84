package interfaces

import "context"

// RouteLeg is a driving route between two coordinate pairs.
type RouteLeg struct {
	DistanceKm  float64
	DurationMin float64
	Polyline    string
}

// IGeocoder resolves a free-text address to coordinates. A miss is an
// error; callers fall back to the next step of the routing chain.
type IGeocoder interface {
	Geocode(ctx context.Context, address string) (lat float64, lng float64, err error)
}

// IRouter computes a driving route. Implementations are tried in order
// (primary, then secondary, then straight-line) by the quote engine.
type IRouter interface {
	Route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (RouteLeg, error)
}

package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/domain/pricing"
	"easydrive_booking/internal/usecase/interfaces"
)

var (
	ErrFormRequired  = errors.New("shipment form required")
	ErrRouteRequired = errors.New("route required for quote")
)

// IQuoteUseCase exposes quote computation.
//
// Price resolution order:
//   - explicit drop-off service area, matched against the pricing table
//   - address keyword inference against the same table
//   - distance-based estimate, only when no official region price applies
//
// When an official price applies, route distance is informational and a
// routing failure never blocks the quote. When neither an official price nor
// a route is available the quote fails with ErrRouteRequired.
type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, form *entities.ShipmentForm, pickupLat, pickupLng *float64) (entities.Quote, error)
}

type QuoteUseCase struct {
	overrides interfaces.IPricingOverrideRepository
	geocoder  interfaces.IGeocoder
	routers   []interfaces.IRouter
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the quote engine. Routers are tried in order; the
// last one is expected to be the straight-line fallback, which cannot fail
// once both endpoints have coordinates.
func NewQuoteUseCase(overrides interfaces.IPricingOverrideRepository, geocoder interfaces.IGeocoder, routers ...interfaces.IRouter) *QuoteUseCase {
	return &QuoteUseCase{overrides: overrides, geocoder: geocoder, routers: routers}
}

func (u *QuoteUseCase) ComputeQuote(ctx context.Context, form *entities.ShipmentForm, pickupLat, pickupLng *float64) (entities.Quote, error) {
	if form == nil {
		return entities.Quote{}, ErrFormRequired
	}

	ov := u.loadOverrides(ctx)

	region := pricing.ForServiceArea(form.DropoffLocation.ServiceArea, ov)
	if region == nil {
		addr := strings.TrimSpace(form.DropoffLocation.Address + " " + form.DropoffLocation.Name)
		region = pricing.ForAddress(addr, ov)
	}

	leg, haveLeg := u.computeRoute(ctx, form, pickupLat, pickupLng)

	q := entities.Quote{}
	if haveLeg {
		q.DistanceKm = int(math.Round(leg.DistanceKm))
		q.DurationMin = int(math.Round(leg.DurationMin))
		q.RoutePolyline = leg.Polyline
	}

	switch {
	case region != nil:
		q.Cost = region.TotalPrice
		q.PricingRegion = region.Region
		q.PricingStatus = entities.PricingStatusOfficial
		q.FulfillDaysMin = region.DaysMin
		q.FulfillDaysMax = region.DaysMax
	case haveLeg:
		q.Cost = pricing.EstimateCost(leg.DistanceKm)
		q.PricingStatus = entities.PricingStatusEstimated
		q.FulfillDaysMin, q.FulfillDaysMax = pricing.DefaultFulfillmentDays()
	default:
		return entities.Quote{}, ErrRouteRequired
	}
	return q, nil
}

// loadOverrides tolerates repository failure: a quote with built-in prices
// beats no quote.
func (u *QuoteUseCase) loadOverrides(ctx context.Context) pricing.Overrides {
	if u.overrides == nil {
		return nil
	}
	ov, err := u.overrides.Load(ctx)
	if err != nil {
		log.Printf("[booking][usecase] pricing overrides unavailable, using built-in table: %v", err)
		return nil
	}
	return ov
}

func (u *QuoteUseCase) computeRoute(ctx context.Context, form *entities.ShipmentForm, pickupLat, pickupLng *float64) (interfaces.RouteLeg, bool) {
	fromLat, fromLng, ok := u.resolvePickup(ctx, form, pickupLat, pickupLng)
	if !ok {
		return interfaces.RouteLeg{}, false
	}
	toLat, toLng, ok := u.resolveDropoff(ctx, form)
	if !ok {
		return interfaces.RouteLeg{}, false
	}

	for _, r := range u.routers {
		leg, err := r.Route(ctx, fromLat, fromLng, toLat, toLng)
		if err != nil {
			log.Printf("[booking][usecase] router failed, trying next: %v", err)
			continue
		}
		return leg, true
	}
	return interfaces.RouteLeg{}, false
}

func (u *QuoteUseCase) resolvePickup(ctx context.Context, form *entities.ShipmentForm, lat, lng *float64) (float64, float64, bool) {
	if lat != nil && lng != nil {
		return *lat, *lng, true
	}
	return u.geocode(ctx, form.PickupLocation.Address)
}

func (u *QuoteUseCase) resolveDropoff(ctx context.Context, form *entities.ShipmentForm) (float64, float64, bool) {
	if lat, lng, ok := form.DropoffLocation.Coordinates(); ok {
		return lat, lng, true
	}
	return u.geocode(ctx, form.DropoffLocation.Address)
}

func (u *QuoteUseCase) geocode(ctx context.Context, address string) (float64, float64, bool) {
	address = strings.TrimSpace(address)
	if address == "" || u.geocoder == nil {
		return 0, 0, false
	}
	lat, lng, err := u.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Printf("[booking][usecase] geocode miss for %q: %v", address, err)
		return 0, 0, false
	}
	return lat, lng, true
}

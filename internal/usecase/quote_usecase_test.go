package usecase

import (
	"context"
	"errors"
	"testing"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/domain/pricing"
	"easydrive_booking/internal/usecase/interfaces"
	mock_interfaces "easydrive_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func formWithDropoff(area, address string) *entities.ShipmentForm {
	return &entities.ShipmentForm{
		DropoffLocation: entities.DropoffPlace{ServiceArea: area, Address: address},
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	t.Run("nil form", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.ComputeQuote(context.Background(), nil, nil, nil)
		if !errors.Is(err, ErrFormRequired) {
			t.Fatalf("expected ErrFormRequired, got %v", err)
		}
	})

	t.Run("official price from explicit service area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, nil)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)

		q, err := uc.ComputeQuote(context.Background(), formWithDropoff("Toronto", ""), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 435 || q.PricingRegion != "Toronto" || q.PricingStatus != entities.PricingStatusOfficial {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if q.FulfillDaysMin != 3 || q.FulfillDaysMax != 8 {
			t.Fatalf("unexpected fulfillment window: %+v", q)
		}
	})

	t.Run("override applied to official price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, nil)

		overrides.EXPECT().Load(gomock.Any()).Return(pricing.Overrides{"Hamilton": 600}, nil)

		q, err := uc.ComputeQuote(context.Background(), formWithDropoff("Hamilton", ""), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 600 || q.PricingRegion != "Hamilton" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("address inference when no explicit area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, nil)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)

		q, err := uc.ComputeQuote(context.Background(), formWithDropoff("", "200 King St, Oshawa ON"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 385 || q.PricingRegion != "Oshawa" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("overrides load failure falls back to built-in table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, nil)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, errors.New("dynamo down"))

		q, err := uc.ComputeQuote(context.Background(), formWithDropoff("Montreal", ""), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 285 || q.FulfillDaysMin != 1 || q.FulfillDaysMax != 2 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("distance estimate when no region matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		router := mock_interfaces.NewMockIRouter(ctrl)
		uc := NewQuoteUseCase(overrides, nil, router)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)
		router.EXPECT().Route(gomock.Any(), 43.7, -79.4, 44.2, -78.3).
			Return(interfaces.RouteLeg{DistanceKm: 200, DurationMin: 180, Polyline: "poly"}, nil)

		form := formWithDropoff("", "unlisted place")
		form.DropoffLocation.Lat = "44.2"
		form.DropoffLocation.Lng = "-78.3"

		q, err := uc.ComputeQuote(context.Background(), form, floatPtr(43.7), floatPtr(-79.4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 500 || q.PricingStatus != entities.PricingStatusEstimated {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if q.DistanceKm != 200 || q.RoutePolyline != "poly" {
			t.Fatalf("unexpected route data: %+v", q)
		}
	})

	t.Run("fractional route leg rounds to whole km and minutes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		router := mock_interfaces.NewMockIRouter(ctrl)
		uc := NewQuoteUseCase(overrides, nil, router)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)
		router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.RouteLeg{DistanceKm: 199.62, DurationMin: 180.4, Polyline: ""}, nil)

		form := formWithDropoff("", "unlisted place")
		form.DropoffLocation.Lat = "44.2"
		form.DropoffLocation.Lng = "-78.3"

		q, err := uc.ComputeQuote(context.Background(), form, floatPtr(43.7), floatPtr(-79.4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.DistanceKm != 200 || q.DurationMin != 180 {
			t.Fatalf("expected 200 km over 180 minutes, got %d km over %d", q.DistanceKm, q.DurationMin)
		}
	})

	t.Run("second router used when first fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		primary := mock_interfaces.NewMockIRouter(ctrl)
		secondary := mock_interfaces.NewMockIRouter(ctrl)
		uc := NewQuoteUseCase(overrides, nil, primary, secondary)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)
		primary.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.RouteLeg{DistanceKm: 0, DurationMin: 0, Polyline: ""}, errors.New("timeout"))
		secondary.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.RouteLeg{DistanceKm: 40, DurationMin: 45, Polyline: ""}, nil)

		form := formWithDropoff("", "unlisted place")
		form.DropoffLocation.Lat = "44.2"
		form.DropoffLocation.Lng = "-78.3"

		q, err := uc.ComputeQuote(context.Background(), form, floatPtr(43.7), floatPtr(-79.4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 40 km * 2.50 is below the 150 floor.
		if q.Cost != 150 {
			t.Fatalf("expected floor price 150, got %v", q.Cost)
		}
	})

	t.Run("route required when nothing resolves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewQuoteUseCase(overrides, nil)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)

		_, err := uc.ComputeQuote(context.Background(), formWithDropoff("", "unlisted place"), nil, nil)
		if !errors.Is(err, ErrRouteRequired) {
			t.Fatalf("expected ErrRouteRequired, got %v", err)
		}
	})

	t.Run("routing failure never blocks an official quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overrides := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		router := mock_interfaces.NewMockIRouter(ctrl)
		uc := NewQuoteUseCase(overrides, nil, router)

		overrides.EXPECT().Load(gomock.Any()).Return(nil, nil)
		router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.RouteLeg{DistanceKm: 0, DurationMin: 0, Polyline: ""}, errors.New("osrm down"))

		form := formWithDropoff("Windsor", "")
		form.DropoffLocation.Lat = "42.3"
		form.DropoffLocation.Lng = "-83.0"

		q, err := uc.ComputeQuote(context.Background(), form, floatPtr(43.7), floatPtr(-79.4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Cost != 635 || q.DistanceKm != 0 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

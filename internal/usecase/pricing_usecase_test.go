package usecase

import (
	"context"
	"errors"
	"testing"

	"easydrive_booking/internal/domain/pricing"
	mock_interfaces "easydrive_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPricingUseCase_SetOverride(t *testing.T) {
	t.Run("unknown region", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		err := uc.SetOverride(context.Background(), "Atlantis", 500)
		if !errors.Is(err, ErrUnknownRegion) {
			t.Fatalf("expected ErrUnknownRegion, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		err := uc.SetOverride(context.Background(), "Toronto", 0)
		if !errors.Is(err, ErrInvalidOverridePrice) {
			t.Fatalf("expected ErrInvalidOverridePrice, got %v", err)
		}
	})

	t.Run("fractional price", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		err := uc.SetOverride(context.Background(), "Toronto", 435.50)
		if !errors.Is(err, ErrInvalidOverridePrice) {
			t.Fatalf("expected ErrInvalidOverridePrice, got %v", err)
		}
	})

	t.Run("persists valid override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewPricingUseCase(repo)

		repo.EXPECT().Set(gomock.Any(), "Hamilton", 600.0).Return(nil)

		if err := uc.SetOverride(context.Background(), " Hamilton ", 600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingUseCase_ClearOverride(t *testing.T) {
	t.Run("unknown region", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		err := uc.ClearOverride(context.Background(), "Atlantis")
		if !errors.Is(err, ErrUnknownRegion) {
			t.Fatalf("expected ErrUnknownRegion, got %v", err)
		}
	})

	t.Run("clears known region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
		uc := NewPricingUseCase(repo)

		repo.EXPECT().Clear(gomock.Any(), "Hamilton").Return(nil)

		if err := uc.ClearOverride(context.Background(), "Hamilton"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingUseCase_ServiceAreas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPricingOverrideRepository(ctrl)
	uc := NewPricingUseCase(repo)

	repo.EXPECT().Load(gomock.Any()).Return(pricing.Overrides{"Toronto": 500}, nil)

	areas, err := uc.ServiceAreas(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(areas) != len(pricing.Regions) {
		t.Fatalf("expected full table, got %d entries", len(areas))
	}
	for _, a := range areas {
		if a.Region == "Toronto" && a.TotalPrice != 500 {
			t.Fatalf("override not applied: %+v", a)
		}
	}
}

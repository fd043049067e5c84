package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"easydrive_booking/internal/domain/pricing"
	"easydrive_booking/internal/usecase/interfaces"
)

var (
	ErrUnknownRegion        = errors.New("unknown pricing region")
	ErrInvalidOverridePrice = errors.New("override price must be a positive whole amount")
)

// IPricingUseCase exposes the override admin surface plus the effective
// service-area list with overrides applied.
type IPricingUseCase interface {
	ServiceAreas(ctx context.Context) ([]pricing.RegionPrice, error)
	ListOverrides(ctx context.Context) (pricing.Overrides, error)
	SetOverride(ctx context.Context, region string, price float64) error
	ClearOverride(ctx context.Context, region string) error
}

type PricingUseCase struct {
	repo interfaces.IPricingOverrideRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingOverrideRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

func (u *PricingUseCase) ServiceAreas(ctx context.Context) ([]pricing.RegionPrice, error) {
	ov, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.PriceList(ov), nil
}

func (u *PricingUseCase) ListOverrides(ctx context.Context) (pricing.Overrides, error) {
	return u.repo.Load(ctx)
}

func (u *PricingUseCase) SetOverride(ctx context.Context, region string, price float64) error {
	region = strings.TrimSpace(region)
	if pricing.ForServiceArea(region, nil) == nil {
		return ErrUnknownRegion
	}
	if price <= 0 || price != math.Trunc(price) {
		return ErrInvalidOverridePrice
	}
	return u.repo.Set(ctx, region, price)
}

func (u *PricingUseCase) ClearOverride(ctx context.Context, region string) error {
	region = strings.TrimSpace(region)
	if pricing.ForServiceArea(region, nil) == nil {
		return ErrUnknownRegion
	}
	return u.repo.Clear(ctx, region)
}

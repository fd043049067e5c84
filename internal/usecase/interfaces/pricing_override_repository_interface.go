package interfaces

import (
	"context"
	"easydrive_booking/internal/domain/pricing"
)

// IPricingOverrideRepository abstracts DynamoDB persistence for per-region
// price overrides. Load returns the full map; quote reads apply it on top of
// the built-in table without mutating it.
type IPricingOverrideRepository interface {
	Load(ctx context.Context) (pricing.Overrides, error)
	Set(ctx context.Context, region string, price float64) error
	Clear(ctx context.Context, region string) error
}

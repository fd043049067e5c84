package interfaces

import (
	"context"
	"easydrive_booking/internal/domain/entities"
)

// IBillingProfileRepository abstracts DynamoDB persistence for the
// per-user payment-provider customer memo.
type IBillingProfileRepository interface {
	Get(ctx context.Context, userID string) (entities.BillingProfile, error)
	Upsert(ctx context.Context, p entities.BillingProfile) error
}

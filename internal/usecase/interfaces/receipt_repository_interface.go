package interfaces

import (
	"context"
	"easydrive_booking/internal/domain/entities"
)

// IReceiptRepository abstracts DynamoDB persistence for receipts.
// CreateOnce must refuse a second receipt for the same (user, order code)
// pair so webhook redelivery never duplicates one.
type IReceiptRepository interface {
	CreateOnce(ctx context.Context, r entities.Receipt) error
	ListByUser(ctx context.Context, userID string) ([]entities.Receipt, error)
	Delete(ctx context.Context, userID string, orderCode string) error
}

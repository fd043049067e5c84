package interfaces

import (
	"context"
	"easydrive_booking/internal/domain/entities"
)

// IDraftRepository abstracts DynamoDB persistence for Draft metadata.
// Document binaries never pass through here, see IDocumentStore.
type IDraftRepository interface {
	Save(ctx context.Context, d entities.Draft) (entities.Draft, error)
	GetByID(ctx context.Context, id string) (entities.Draft, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Draft, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/domain/extraction"
	"easydrive_booking/internal/usecase/interfaces"
)

var (
	ErrExtractionUnavailable = errors.New("extraction provider unavailable")
	ErrDocumentRequired      = errors.New("document required")
)

// IExtractionUseCase turns an uploaded release-form document into a
// normalized shipment form.
type IExtractionUseCase interface {
	ExtractForm(ctx context.Context, filename string, contentType string, data []byte) (*entities.ShipmentForm, error)
}

type ExtractionUseCase struct {
	client interfaces.IExtractionClient
}

var _ IExtractionUseCase = (*ExtractionUseCase)(nil)

func NewExtractionUseCase(client interfaces.IExtractionClient) *ExtractionUseCase {
	return &ExtractionUseCase{client: client}
}

func (u *ExtractionUseCase) ExtractForm(ctx context.Context, filename string, contentType string, data []byte) (*entities.ShipmentForm, error) {
	if len(data) == 0 || strings.TrimSpace(filename) == "" {
		return nil, ErrDocumentRequired
	}

	raw, err := u.client.Extract(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionUnavailable, err)
	}

	form := extraction.Normalize(extraction.UnwrapOutput(raw))
	if form == nil {
		return nil, fmt.Errorf("%w: empty extraction result", ErrExtractionUnavailable)
	}
	return form, nil
}

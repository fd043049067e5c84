package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "easydrive_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExtractionUseCase_ExtractForm(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		uc := NewExtractionUseCase(nil)
		_, err := uc.ExtractForm(context.Background(), "release.pdf", "application/pdf", nil)
		if !errors.Is(err, ErrDocumentRequired) {
			t.Fatalf("expected ErrDocumentRequired, got %v", err)
		}
	})

	t.Run("provider failure maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIExtractionClient(ctrl)
		uc := NewExtractionUseCase(client)

		client.EXPECT().Extract(gomock.Any(), "release.pdf", "application/pdf", gomock.Any()).
			Return(nil, errors.New("502"))

		_, err := uc.ExtractForm(context.Background(), "release.pdf", "application/pdf", []byte("pdf"))
		if !errors.Is(err, ErrExtractionUnavailable) {
			t.Fatalf("expected ErrExtractionUnavailable, got %v", err)
		}
	})

	t.Run("empty provider result maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIExtractionClient(ctrl)
		uc := NewExtractionUseCase(client)

		client.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]any{}, nil)

		_, err := uc.ExtractForm(context.Background(), "release.pdf", "application/pdf", []byte("pdf"))
		if !errors.Is(err, ErrExtractionUnavailable) {
			t.Fatalf("expected ErrExtractionUnavailable, got %v", err)
		}
	})

	t.Run("wrapped provider output is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIExtractionClient(ctrl)
		uc := NewExtractionUseCase(client)

		client.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]any{map[string]any{
				"output": map[string]any{
					"vehicle":          map[string]any{"vin": "1HGCM82633A004352"},
					"dropoff_location": map[string]any{"address": "200 King St W, Oshawa, ON"},
				},
			}}, nil)

		form, err := uc.ExtractForm(context.Background(), "release.pdf", "application/pdf", []byte("pdf"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Vehicle.VIN != "1HGCM82633A004352" {
			t.Fatalf("unexpected vin %q", form.Vehicle.VIN)
		}
		if form.DropoffLocation.ServiceArea != "Oshawa" {
			t.Fatalf("unexpected service area %q", form.DropoffLocation.ServiceArea)
		}
	})
}

package usecase

import (
	"context"
	"strings"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"
)

// IReceiptUseCase exposes a customer's receipts. Receipts are written by
// the payment flow, never here.
type IReceiptUseCase interface {
	ListReceipts(ctx context.Context, userID string) ([]entities.Receipt, error)
	DeleteReceipt(ctx context.Context, userID string, orderCode string) error
}

type ReceiptUseCase struct {
	repo interfaces.IReceiptRepository
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(repo interfaces.IReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo}
}

func (u *ReceiptUseCase) ListReceipts(ctx context.Context, userID string) ([]entities.Receipt, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *ReceiptUseCase) DeleteReceipt(ctx context.Context, userID string, orderCode string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return ErrInvalidOrderCode
	}
	return u.repo.Delete(ctx, userID, orderCode)
}

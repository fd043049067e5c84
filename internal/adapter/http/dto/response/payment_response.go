package response

import (
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"
)

type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

func FromCheckoutSession(s interfaces.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{SessionID: s.SessionID, URL: s.URL}
}

type ReceiptResponse struct {
	OrderCode string    `json:"order_code"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	return ReceiptResponse{OrderCode: r.OrderCode, Text: r.Text, CreatedAt: r.CreatedAt}
}

func FromReceipts(receipts []entities.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, FromReceipt(r))
	}
	return out
}

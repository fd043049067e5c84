package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase/interfaces"
	mock_interfaces "easydrive_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paymentFixtures(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIReceiptRepository, *mock_interfaces.MockIBillingProfileRepository, *PaymentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	receipts := mock_interfaces.NewMockIReceiptRepository(ctrl)
	profiles := mock_interfaces.NewMockIBillingProfileRepository(ctrl)
	orders := NewOrderUseCase(repo, nil, nil)
	uc := NewPaymentUseCase(orders, gateway, receipts, profiles, "https://app.example/pay/success", "https://app.example/pay/failure")
	return ctrl, repo, gateway, receipts, profiles, uc
}

func payableOrder() entities.Order {
	return entities.Order{
		ID:             "o-1",
		OrderCode:      "EDC-20260801-AAAAAA",
		UserID:         "u-1",
		CustomerName:   "Dana",
		RouteArea:      "Oshawa",
		PriceBeforeTax: 385,
		Currency:       "CAD",
		Status:         entities.OrderStatusScheduled,
		PaymentStatus:  entities.PaymentStatusUnpaid,
	}
}

func TestPaymentUseCase_CreateCheckoutSession(t *testing.T) {
	t.Run("order of another user reads as not found", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		o.UserID = "someone-else"
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "u-1", o.OrderCode)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("zero price order is not payable", func(t *testing.T) {
		ctrl, repo, _, _, _, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		o.PriceBeforeTax = 0
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "u-1", o.OrderCode)
		if !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})

	t.Run("session created, then pending", func(t *testing.T) {
		ctrl, repo, gateway, _, profiles, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		profiles.EXPECT().Get(gomock.Any(), "u-1").Return(entities.BillingProfile{UserID: "u-1", ProviderCustomerID: "cust-5"}, nil)
		gomock.InOrder(
			gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any(), "cust-5", "https://app.example/pay/success", "https://app.example/pay/failure").
				DoAndReturn(func(_ context.Context, got entities.Order, totals entities.Totals, _, _, _ string) (interfaces.CheckoutSession, error) {
					// Amount comes from the stored row, tax from the table.
					if got.PriceBeforeTax != 385 || totals.Tax != 50.05 || totals.Total != 435.05 {
						t.Fatalf("unexpected amounts: %+v %+v", got, totals)
					}
					return interfaces.CheckoutSession{SessionID: "sess-9", URL: "https://pay.example/sess-9"}, nil
				}),
			repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil),
		)
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusPending, "sess-9", "").
			Return(entities.Order{ID: "o-1", PaymentStatus: entities.PaymentStatusPending}, nil)

		session, err := uc.CreateCheckoutSession(context.Background(), "u-1", o.OrderCode)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.SessionID != "sess-9" || session.URL == "" {
			t.Fatalf("unexpected session %+v", session)
		}
	})

	t.Run("profile lookup failure is tolerated", func(t *testing.T) {
		ctrl, repo, gateway, _, profiles, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		profiles.EXPECT().Get(gomock.Any(), "u-1").Return(entities.BillingProfile{}, errors.New("dynamo down"))
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any(), "", gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{SessionID: "sess-9", URL: "u"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusPending, "sess-9", "").
			Return(entities.Order{ID: "o-1"}, nil)

		if _, err := uc.CreateCheckoutSession(context.Background(), "u-1", o.OrderCode); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure leaves payment status untouched", func(t *testing.T) {
		ctrl, repo, gateway, _, profiles, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		profiles.EXPECT().Get(gomock.Any(), "u-1").Return(entities.BillingProfile{}, nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.CheckoutSession{}, errors.New("provider 500"))

		_, err := uc.CreateCheckoutSession(context.Background(), "u-1", o.OrderCode)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPaymentUseCase_ConfirmPayment(t *testing.T) {
	t.Run("approved payment writes receipt and profile", func(t *testing.T) {
		ctrl, repo, gateway, receipts, profiles, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		o.PaymentStatus = entities.PaymentStatusPending
		paid := o
		paid.PaymentStatus = entities.PaymentStatusPaid

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-77").Return(interfaces.ProviderPayment{
			PaymentID:         "pay-77",
			Status:            "approved",
			ExternalReference: o.OrderCode,
			PayerID:           "payer-3",
		}, nil)
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusPaid, "", "pay-77").Return(paid, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusScheduled).Return(paid, nil)
		repo.EXPECT().AppendEvent(gomock.Any(), "o-1", gomock.Any()).Return(nil)
		receipts.EXPECT().CreateOnce(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Receipt) error {
				if r.UserID != "u-1" || r.OrderCode != o.OrderCode {
					t.Fatalf("unexpected receipt keys %+v", r)
				}
				if !strings.Contains(r.Text, "Subtotal (before tax): $385.00") ||
					!strings.Contains(r.Text, "Tax ON (HST) (13.000%): $50.05") ||
					!strings.Contains(r.Text, "Total: $435.05") {
					t.Fatalf("unexpected receipt text:\n%s", r.Text)
				}
				return nil
			})
		profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingProfile) error {
				if p.UserID != "u-1" || p.ProviderCustomerID != "payer-3" {
					t.Fatalf("unexpected profile %+v", p)
				}
				return nil
			})

		got, err := uc.ConfirmPayment(context.Background(), "pay-77")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected payment status %q", got.PaymentStatus)
		}
	})

	t.Run("redelivered approval writes no second receipt", func(t *testing.T) {
		ctrl, repo, gateway, _, profiles, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		o.PaymentStatus = entities.PaymentStatusPaid

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-77").Return(interfaces.ProviderPayment{
			PaymentID:         "pay-77",
			Status:            "approved",
			ExternalReference: o.OrderCode,
			PayerID:           "payer-3",
		}, nil)
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)
		profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.ConfirmPayment(context.Background(), "pay-77"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected payment marks failed, delivery untouched", func(t *testing.T) {
		ctrl, repo, gateway, _, _, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		o.Status = entities.OrderStatusInTransit
		o.PaymentStatus = entities.PaymentStatusPending
		o.CheckoutSessionID = "sess-9"

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-77").Return(interfaces.ProviderPayment{
			PaymentID:         "pay-77",
			Status:            "rejected",
			ExternalReference: o.OrderCode,
		}, nil)
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusFailed, "sess-9", "pay-77").
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusInTransit, PaymentStatus: entities.PaymentStatusFailed}, nil)

		got, err := uc.ConfirmPayment(context.Background(), "pay-77")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusInTransit {
			t.Fatalf("delivery status changed to %q", got.Status)
		}
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		ctrl, repo, gateway, _, _, uc := paymentFixtures(t)
		defer ctrl.Finish()

		o := payableOrder()
		gateway.EXPECT().GetPayment(gomock.Any(), "pay-77").Return(interfaces.ProviderPayment{
			PaymentID:         "pay-77",
			Status:            "charged_back",
			ExternalReference: o.OrderCode,
		}, nil)
		repo.EXPECT().GetByOrderCode(gomock.Any(), o.OrderCode).Return(o, nil)

		got, err := uc.ConfirmPayment(context.Background(), "pay-77")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusUnpaid {
			t.Fatalf("unexpected payment status %q", got.PaymentStatus)
		}
	})
}

func TestRenderReceipt(t *testing.T) {
	o := entities.Order{
		OrderCode:      "EDC-20260801-AAAAAA",
		CustomerName:   "Dana",
		RouteArea:      "Montreal",
		PriceBeforeTax: 285,
	}
	created := time.Date(2026, 8, 1, 15, 4, 5, 0, time.UTC)

	text := RenderReceipt(o, created)
	want := "Receipt\n" +
		"Created: 2026-08-01T15:04:05Z\n" +
		"Order: EDC-20260801-AAAAAA\n" +
		"Customer: Dana\n" +
		"\n" +
		"Subtotal (before tax): $285.00\n" +
		"Tax QC (GST+QST) (14.975%): $42.68\n" +
		"Total: $327.68\n"
	if text != want {
		t.Fatalf("unexpected receipt:\n%q\nwant:\n%q", text, want)
	}
}

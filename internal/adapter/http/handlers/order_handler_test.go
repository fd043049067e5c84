package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"easydrive_booking/internal/adapter/http/handlers/mocks"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, interfaces.Identity{UserID: userID})
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"disclosures_accepted":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("disclosures not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.POST("/v1/orders", asUser("user-1"), h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"quote":{"cost":435}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DISCLOSURES_REQUIRED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("inline quote success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.POST("/v1/orders", asUser("user-1"), h.CreateOrder)

		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.UserID != "user-1" || in.Quote.Cost != 435 || in.DraftID != "" {
					t.Errorf("unexpected input: %+v", in)
				}
				return entities.Order{ID: "order-1", OrderCode: "EDC-20260830-A1B2C3", Status: entities.OrderStatusScheduled}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"disclosures_accepted":true,"customer_name":"Jordan Lee","quote":{"cost":435,"pricing_status":"official"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_code"] != "EDC-20260830-A1B2C3" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("draft supplies form quote and documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.POST("/v1/orders", asUser("user-1"), h.CreateOrder)

		form := &entities.ShipmentForm{}
		drafts.EXPECT().ResumeDraft(gomock.Any(), "user-1", "draft-1").Return(entities.Draft{
			ID:       "draft-1",
			FormData: form,
			Quote:    &entities.Quote{Cost: 385, PricingRegion: "Oshawa", PricingStatus: entities.PricingStatusOfficial},
		}, nil)
		drafts.EXPECT().ListDocuments(gomock.Any(), "user-1", "draft-1").Return([]interfaces.StoredDocument{
			{Key: "drafts/draft-1/0_bill.pdf", Name: "bill.pdf", ContentType: "application/pdf", Size: 1024},
		}, nil)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.Form != form || in.Quote.Cost != 385 {
					t.Errorf("expected draft form and quote, got %+v", in)
				}
				if len(in.Documents) != 1 || in.Documents[0].Name != "bill.pdf" {
					t.Errorf("expected document manifest from draft, got %+v", in.Documents)
				}
				return entities.Order{ID: "order-1", OrderCode: "EDC-20260830-XYZ012"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"disclosures_accepted":true,"draft_id":"draft-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.POST("/v1/orders", asUser("user-1"), h.CreateOrder)

		drafts.EXPECT().ResumeDraft(gomock.Any(), "user-1", "draft-9").Return(entities.Draft{}, usecase.ErrDraftNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"disclosures_accepted":true,"draft_id":"draft-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		orders.EXPECT().AdvanceStatus(gomock.Any(), "order-1", entities.OrderStatusInTransit, "Left terminal").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusInTransit}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"in_transit","note":"Left terminal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		orders.EXPECT().AdvanceStatus(gomock.Any(), "order-1", entities.OrderStatus("warp"), "").
			Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"warp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Track(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success hides customer details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.GET("/v1/track", h.Track)

		orders.EXPECT().GetTimeline(gomock.Any(), "EDC-20260830-A1B2C3").Return(
			entities.Order{
				OrderCode:     "EDC-20260830-A1B2C3",
				CustomerName:  "Jordan Lee",
				CustomerEmail: "jordan@dealer.example",
				RouteArea:     "Montreal",
				Status:        entities.OrderStatusInTransit,
				PaymentStatus: entities.PaymentStatusPaid,
			},
			[]entities.StatusEvent{
				{Status: entities.OrderStatusInTransit, Note: "Left terminal"},
				{Status: entities.OrderStatusScheduled, Note: "Order created"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?order_code=EDC-20260830-A1B2C3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_code"] != "EDC-20260830-A1B2C3" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, present := body["customer_email"]; present {
			t.Fatalf("customer details leaked: %s", w.Body.String())
		}
		events, _ := body["events"].([]any)
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %s", w.Body.String())
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewOrderHandler(orders, drafts)

		r := gin.New()
		r.GET("/v1/track", h.Track)

		orders.EXPECT().GetTimeline(gomock.Any(), "EDC-20260830-000000").Return(entities.Order{}, nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?order_code=EDC-20260830-000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

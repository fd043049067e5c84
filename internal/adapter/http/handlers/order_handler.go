package handlers

import (
	"context"
	"errors"
	request "easydrive_booking/internal/adapter/http/dto/request"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for confirmed orders, including the
// public tracking endpoint.

type OrderHandler struct {
	orders usecase.IOrderUseCase
	drafts usecase.IDraftUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, drafts usecase.IDraftUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, drafts: drafts}
}

// CreateOrder confirms a booking, either from a stored draft or from an
// inline form plus quote. Disclosures must be accepted.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if !payload.DisclosuresAccepted {
		appErr := pkg.NewDomainErrorSimple("DISCLOSURES_REQUIRED", "Disclosures must be accepted before booking", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in := usecase.CreateOrderInput{
		UserID:        id.UserID,
		CustomerName:  strings.TrimSpace(payload.CustomerName),
		CustomerEmail: strings.TrimSpace(payload.CustomerEmail),
		Form:          payload.Form,
		DraftID:       payload.ResolveDraftID(),
	}
	if payload.Quote != nil {
		in.Quote = *payload.Quote
	}

	if in.DraftID != "" {
		if err := h.fillFromDraft(c.Request.Context(), id.UserID, &in); err != nil {
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// fillFromDraft pulls form, quote and document manifest from the referenced
// draft. Inline payload fields win when both are present.
func (h *OrderHandler) fillFromDraft(ctx context.Context, userID string, in *usecase.CreateOrderInput) error {
	draft, err := h.drafts.ResumeDraft(ctx, userID, in.DraftID)
	if err != nil {
		return err
	}

	if in.Form == nil {
		in.Form = draft.FormData
	}
	if !in.Quote.Valid() && draft.Quote != nil {
		in.Quote = *draft.Quote
	}

	docs, err := h.drafts.ListDocuments(ctx, userID, in.DraftID)
	if err != nil {
		log.Printf("[order][handler] draft document listing failed draft_id=%s err=%v", in.DraftID, err)
		return nil
	}
	for _, doc := range docs {
		in.Documents = append(in.Documents, entities.OrderDocument{
			ID:   doc.Key,
			Name: doc.Name,
			Mime: doc.ContentType,
			Size: doc.Size,
		})
	}
	return nil
}

// ListOrders returns the caller's orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), id.UserID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListAllOrders returns every order for staff review.
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus advances an order's lifecycle status with a note.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.AdvanceStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(strings.TrimSpace(payload.Status)), payload.Note)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Track is the public tracking endpoint, keyed by order code.
func (h *OrderHandler) Track(c *gin.Context) {
	orderCode := strings.TrimSpace(c.Query("order_code"))

	order, events, err := h.orders.GetTimeline(c.Request.Context(), orderCode)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(order, events))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderCode),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrQuoteRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	request "easydrive_booking/internal/adapter/http/dto/request"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/internal/usecase/interfaces"
	"easydrive_booking/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles checkout sessions and the provider webhook.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	gateway interfaces.IPaymentGateway
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, gateway interfaces.IPaymentGateway) *PaymentHandler {
	return &PaymentHandler{usecase: uc, gateway: gateway}
}

// CreateCheckoutSession starts payment for an order the caller owns.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	orderCode := payload.ResolveOrderCode()
	if orderCode == "" {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] checkout start order_code=%s user_id=%s", orderCode, id.UserID)
	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), id.UserID, orderCode)
	if err != nil {
		log.Printf("[payment][handler] checkout failed order_code=%s err=%v", orderCode, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success order_code=%s session_id=%s", orderCode, session.SessionID)

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// Webhook receives provider payment notifications. The signature is checked
// before anything else is read; a bad signature never reaches the usecase.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	dataID := c.Query("data.id")

	if err := h.gateway.VerifyWebhookSignature(c.Request.Header, dataID); err != nil {
		log.Printf("[payment][handler] webhook signature rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if eventType := strings.TrimSpace(c.Query("type")); eventType != "" && eventType != "payment" {
		log.Printf("[payment][handler] webhook ignored type=%s", eventType)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	log.Printf("[payment][handler] webhook start payment_id=%s", dataID)
	order, err := h.usecase.ConfirmPayment(c.Request.Context(), dataID)
	if err != nil {
		log.Printf("[payment][handler] webhook failed payment_id=%s err=%v", dataID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook processed payment_id=%s order_code=%s payment_status=%s", dataID, order.OrderCode, order.PaymentStatus)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderCode), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order has no payable amount", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

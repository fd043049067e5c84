package handlers

import (
	"errors"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles HTTP requests for payment receipts.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// ListReceipts returns the caller's receipts.
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	receipts, err := h.usecase.ListReceipts(c.Request.Context(), id.UserID)
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipts(receipts))
}

// DeleteReceipt removes one of the caller's receipts by order code.
func (h *ReceiptHandler) DeleteReceipt(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteReceipt(c.Request.Context(), id.UserID, c.Param("order_code")); err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidOrderCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

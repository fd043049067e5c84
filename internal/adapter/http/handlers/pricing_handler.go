package handlers

import (
	"errors"
	request "easydrive_booking/internal/adapter/http/dto/request"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler exposes the public price list and the staff override admin.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// ListRegions returns the full per-region price list with overrides applied.
func (h *PricingHandler) ListRegions(c *gin.Context) {
	prices, err := h.usecase.ServiceAreas(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegionPrices(prices))
}

// ListOverrides returns the raw override map.
func (h *PricingHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.usecase.ListOverrides(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOverrides(overrides))
}

// PutOverride sets a per-region price override.
func (h *PricingHandler) PutOverride(c *gin.Context) {
	var payload request.PricingOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetOverride(c.Request.Context(), payload.ResolveRegion(), payload.Price); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOverride clears the override for the region in the query string.
func (h *PricingHandler) DeleteOverride(c *gin.Context) {
	region := strings.TrimSpace(c.Query("region"))
	if region == "" {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ClearOverride(c.Request.Context(), region); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownRegion):
		return pkg.NewDomainErrorSimple("UNKNOWN_REGION", "Region is not part of the pricing table", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOverridePrice):
		return pkg.NewDomainErrorSimple("INVALID_OVERRIDE_PRICE", "Override price must be a positive whole amount", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

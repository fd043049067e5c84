package handlers

import (
	"errors"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/pkg"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxExtractionDocumentBytes = 15 << 20

// ExtractionHandler handles document extraction requests.

type ExtractionHandler struct {
	usecase usecase.IExtractionUseCase
}

func NewExtractionHandler(uc usecase.IExtractionUseCase) *ExtractionHandler {
	return &ExtractionHandler{usecase: uc}
}

// ExtractDocument receives a multipart document and returns the normalized
// shipment form extracted from it.
func (h *ExtractionHandler) ExtractDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("DOCUMENT_REQUIRED", "A document file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxExtractionDocumentBytes {
		appErr := pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document exceeds the size limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	form, err := h.usecase.ExtractForm(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		log.Printf("[extraction][handler] extract failed file=%s err=%v", fileHeader.Filename, err)
		appErr := mapExtractionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ExtractionResponse{Form: *form})
}

func mapExtractionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDocumentRequired):
		return pkg.NewDomainErrorSimple("DOCUMENT_REQUIRED", "A document file is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExtractionUnavailable):
		return pkg.NewDomainErrorSimple("EXTRACTION_UNAVAILABLE", "Document extraction is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

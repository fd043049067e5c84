package handlers

import (
	"errors"
	request "easydrive_booking/internal/adapter/http/dto/request"
	response "easydrive_booking/internal/adapter/http/dto/response"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/pkg"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errMissingIdentity     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// DraftHandler handles HTTP requests for order drafts and their documents.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// SaveDraft creates or replaces a draft owned by the caller.
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.SaveDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SaveDraft(c.Request.Context(), payload.ToDraft(id.UserID))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

// ListDrafts returns the caller's drafts, newest first.
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	drafts, err := h.usecase.ListDrafts(c.Request.Context(), id.UserID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDrafts(drafts))
}

// GetDraft resumes a single draft.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	draft, err := h.usecase.ResumeDraft(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// DeleteDraft removes a draft and its stored documents.
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteDraft(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachDocuments stores the uploaded multipart files against the draft.
func (h *DraftHandler) AttachDocuments(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["documents"]) == 0 {
		appErr := pkg.NewDomainErrorSimple("DOCUMENT_REQUIRED", "At least one document file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	docs := make([]usecase.DraftDocument, 0, len(form.File["documents"]))
	for _, fileHeader := range form.File["documents"] {
		file, err := fileHeader.Open()
		if err != nil {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		docs = append(docs, usecase.DraftDocument{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	draft, err := h.usecase.AttachDocuments(c.Request.Context(), id.UserID, c.Param("id"), docs)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// ListDocuments returns the stored document manifest for a draft.
func (h *DraftHandler) ListDocuments(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	docs, err := h.usecase.ListDocuments(c.Request.Context(), id.UserID, c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredDocuments(docs))
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrDraftNoForm):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	request "portail_immigration/internal/adapter/http/dto/request"
	response "portail_immigration/internal/adapter/http/dto/response"
	"portail_immigration/internal/usecase"
	"portail_immigration/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles document status changes and upload URLs.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// UpdateStatus godoc
// @Summary Change a document status
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param payload body request.UpdateDocumentStatusRequest true "Status"
// @Success 200 {object} response.DocumentResponse
// @Router /documents/{document_id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("document_id"), payload.DocumentStatus())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(updated))
}

// RequestUploadURL godoc
// @Summary Presigned PUT URL for a document file
// @Tags documents
// @Accept json
// @Produce json
// @Param case_id path string true "Case ID"
// @Param document_id path string true "Document ID"
// @Param payload body request.UploadURLRequest true "File"
// @Success 200 {object} response.UploadTicketResponse
// @Router /cases/{case_id}/documents/{document_id}/upload-url [post]
func (h *DocumentHandler) RequestUploadURL(c *gin.Context) {
	caseID, documentID := c.Param("case_id"), c.Param("document_id")
	var payload request.UploadURLRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.RequestUpload(c.Request.Context(), caseID, documentID, payload.Filename, payload.ContentType)
	if err != nil {
		log.Printf("[document][handler] upload-url failed case_id=%s document_id=%s err=%v", caseID, documentID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUploadTicket(ticket))
}

// CompleteUpload godoc
// @Summary Confirm that the document file was uploaded
// @Tags documents
// @Produce json
// @Param case_id path string true "Case ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} response.DocumentResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /cases/{case_id}/documents/{document_id}/upload-complete [post]
func (h *DocumentHandler) CompleteUpload(c *gin.Context) {
	caseID, documentID := c.Param("case_id"), c.Param("document_id")

	doc, err := h.usecase.CompleteUpload(c.Request.Context(), caseID, documentID)
	if err != nil {
		log.Printf("[document][handler] upload-complete failed case_id=%s document_id=%s err=%v", caseID, documentID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidDocumentStatus), errors.Is(err, usecase.ErrInvalidFilename):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound), errors.Is(err, usecase.ErrDocumentCaseMismatch):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPendingUpload):
		return pkg.NewDomainErrorSimple("NO_PENDING_UPLOAD", "Request an upload URL first", http.StatusConflict)
	case errors.Is(err, usecase.ErrUploadNotReceived):
		return pkg.NewDomainErrorSimple("UPLOAD_NOT_RECEIVED", "The file has not been received yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrPresignerNotConfigured):
		return pkg.NewDomainErrorSimple("UPLOADS_UNAVAILABLE", "Document uploads are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

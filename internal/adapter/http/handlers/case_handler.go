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
	errInvalidCasePayload = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)
)

// CaseHandler handles HTTP requests for immigration cases.

type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

// OpenCase godoc
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Param payload body request.OpenCaseRequest true "Case"
// @Success 201 {object} response.OpenCaseResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /cases [post]
func (h *CaseHandler) OpenCase(c *gin.Context) {
	var payload request.OpenCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	created, docs, err := h.usecase.OpenCase(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[case][handler] open failed candidate_id=%s err=%v", payload.CandidateID, err)
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[case][handler] open success case_id=%s documents=%d", created.ID, len(docs))

	c.JSON(http.StatusCreated, response.FromOpenedCase(created, docs))
}

// ListCases godoc
// @Summary List cases
// @Tags cases
// @Produce json
// @Success 200 {array} response.CaseResponse
// @Router /cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	cases, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CaseResponse, 0, len(cases))
	for _, cs := range cases {
		out = append(out, response.FromCase(cs))
	}
	c.JSON(http.StatusOK, out)
}

// GetCase godoc
// @Summary Get a case
// @Tags cases
// @Produce json
// @Param case_id path string true "Case ID"
// @Success 200 {object} response.CaseResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /cases/{case_id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("case_id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCase(found))
}

// UpdateNotes godoc
// @Summary Replace the case notes
// @Tags cases
// @Accept json
// @Produce json
// @Param case_id path string true "Case ID"
// @Param payload body request.UpdateNotesRequest true "Notes"
// @Success 200 {object} response.CaseResponse
// @Router /cases/{case_id}/notes [patch]
func (h *CaseHandler) UpdateNotes(c *gin.Context) {
	var payload request.UpdateNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateNotes(c.Request.Context(), c.Param("case_id"), payload.Notes)
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCase(updated))
}

// GetProgress godoc
// @Summary Case completion percentage
// @Tags cases
// @Produce json
// @Param case_id path string true "Case ID"
// @Success 200 {object} response.ProgressResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /cases/{case_id}/progress [get]
func (h *CaseHandler) GetProgress(c *gin.Context) {
	p, err := h.usecase.GetProgress(c.Request.Context(), c.Param("case_id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCaseProgress(p))
}

// ListDocuments godoc
// @Summary Documents of a case
// @Tags documents
// @Produce json
// @Param case_id path string true "Case ID"
// @Success 200 {array} response.DocumentResponse
// @Router /cases/{case_id}/documents [get]
func (h *CaseHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.ListDocuments(c.Request.Context(), c.Param("case_id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// GetHistory godoc
// @Summary Audit trail of the case's candidate
// @Tags cases
// @Produce json
// @Param case_id path string true "Case ID"
// @Success 200 {array} response.HistoryResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /cases/{case_id}/history [get]
func (h *CaseHandler) GetHistory(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("case_id"))
	if err != nil {
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistories(entries))
}

// ApproveCase godoc
// @Summary Approve a case, record history and email the applicant
// @Description A 502 still carries the approval state: the status change is never rolled back.
// @Tags cases
// @Accept json
// @Produce json
// @Param case_id path string true "Case ID"
// @Param payload body request.ApproveCaseRequest true "Approver"
// @Success 200 {object} response.ApprovalResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} response.ApprovalResponse
// @Router /cases/{case_id}/approve [post]
func (h *CaseHandler) ApproveCase(c *gin.Context) {
	caseID := c.Param("case_id")
	var payload request.ApproveCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCasePayload.HTTPStatus, errInvalidCasePayload.ToHTTPError())
		return
	}
	log.Printf("[case][handler] approve start case_id=%s user_id=%s", caseID, payload.UserID)

	result, err := h.usecase.Approve(c.Request.Context(), caseID, payload.UserID)
	if err != nil {
		log.Printf("[case][handler] approve failed case_id=%s err=%v", caseID, err)
		appErr := mapCaseError(err)
		if result.Case.ID != "" {
			body := response.FromApprovalResult(result)
			body.Error = appErr.Code
			c.JSON(appErr.HTTPStatus, body)
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[case][handler] approve success case_id=%s", caseID)

	c.JSON(http.StatusOK, response.FromApprovalResult(result))
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidCandidateID),
		errors.Is(err, usecase.ErrInvalidVisaCategory), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Case cannot be approved from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalHistoryFailed):
		return pkg.NewDomainError("APPROVAL_HISTORY_FAILED", "Case approved but the history entry could not be written", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrApprovalEmailFailed):
		return pkg.NewDomainError("APPROVAL_EMAIL_FAILED", "Case approved but the applicant email could not be sent", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

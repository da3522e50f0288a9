package handlers

import (
	"errors"
	"log"
	"net/http"

	request "portail_immigration/internal/adapter/http/dto/request"
	response "portail_immigration/internal/adapter/http/dto/response"
	"portail_immigration/internal/adapter/notification"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
	"portail_immigration/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPermanentResidencePayload = pkg.NewDomainErrorSimple("INVALID_PERMANENT_RESIDENCE_INPUT", "Invalid permanent residence payload", http.StatusBadRequest)
)

// PermanentResidenceHandler serves the spouse and dependents form of residence_permanente cases.
// Every request runs its own editing session; messages raised by it are returned in the body.

type PermanentResidenceHandler struct {
	usecase usecase.IPermanentResidenceUseCase
}

func NewPermanentResidenceHandler(uc usecase.IPermanentResidenceUseCase) *PermanentResidenceHandler {
	return &PermanentResidenceHandler{usecase: uc}
}

// Get godoc
// @Summary Stored permanent residence details and dependents
// @Tags permanent-residence
// @Produce json
// @Param case_id path string true "Case ID"
// @Success 200 {object} response.PermanentResidenceResponse
// @Router /cases/{case_id}/permanent-residence [get]
func (h *PermanentResidenceHandler) Get(c *gin.Context) {
	session, err := h.usecase.OpenSession(c.Request.Context(), c.Param("case_id"), nil)
	if err != nil {
		appErr := mapPermanentResidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionSnapshot(session.Snapshot()))
}

// Save godoc
// @Summary Save the full form: details, new dependents and edited dependents
// @Description New rows carry no id or a temp- id. Failed edits of existing rows are listed in failed_updates.
// @Tags permanent-residence
// @Accept json
// @Produce json
// @Param case_id path string true "Case ID"
// @Param payload body request.PermanentResidenceRequest true "Form state"
// @Success 200 {object} response.SavePermanentResidenceResponse
// @Failure 502 {object} response.NotifiedErrorResponse
// @Router /cases/{case_id}/permanent-residence [put]
func (h *PermanentResidenceHandler) Save(c *gin.Context) {
	caseID := c.Param("case_id")
	var payload request.PermanentResidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPermanentResidencePayload.HTTPStatus, errInvalidPermanentResidencePayload.ToHTTPError())
		return
	}
	input, err := payload.ToInput()
	if err != nil {
		appErr := mapPermanentResidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	collector := notification.NewCollector()
	result, err := h.usecase.Save(c.Request.Context(), caseID, input, collector)
	if err != nil {
		log.Printf("[dependents][handler] save failed case_id=%s err=%v", caseID, err)
		appErr := mapPermanentResidenceError(err)
		c.JSON(appErr.HTTPStatus, response.FromNotifiedError(appErr, collector.Messages()))
		return
	}
	if failed := result.FailedUpdates(); len(failed) > 0 {
		log.Printf("[dependents][handler] save partial case_id=%s failed_updates=%d", caseID, len(failed))
	}

	c.JSON(http.StatusOK, response.FromCommitResult(result, collector.Messages()))
}

// DeleteDependent godoc
// @Summary Remove one dependent
// @Description A temp- id is accepted and never reaches the store.
// @Tags permanent-residence
// @Produce json
// @Param case_id path string true "Case ID"
// @Param dependent_id path string true "Dependent ID"
// @Success 200 {object} response.RemoveDependentResponse
// @Failure 502 {object} response.NotifiedErrorResponse
// @Router /cases/{case_id}/permanent-residence/dependents/{dependent_id} [delete]
func (h *PermanentResidenceHandler) DeleteDependent(c *gin.Context) {
	caseID, dependentID := c.Param("case_id"), c.Param("dependent_id")

	collector := notification.NewCollector()
	snapshot, err := h.usecase.RemoveDependent(c.Request.Context(), caseID, dependentID, collector)
	if err != nil {
		log.Printf("[dependents][handler] delete failed case_id=%s dependent_id=%s err=%v", caseID, dependentID, err)
		appErr := mapPermanentResidenceError(err)
		c.JSON(appErr.HTTPStatus, response.FromNotifiedError(appErr, collector.Messages()))
		return
	}

	c.JSON(http.StatusOK, response.FromRemoval(snapshot, collector.Messages()))
}

func mapPermanentResidenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidProgram),
		errors.Is(err, entities.ErrInvalidDependentID), errors.Is(err, usecase.ErrInvalidDependentField),
		errors.Is(err, usecase.ErrInvalidSpouseField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateDependentID):
		return pkg.NewDomainErrorSimple("DUPLICATE_DEPENDENT", "Dependent listed more than once", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDependentOmitted):
		return pkg.NewDomainErrorSimple("DEPENDENT_OMITTED", "Every stored dependent must be submitted; use DELETE to remove one", http.StatusConflict)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDependentNotFound):
		return pkg.NewDomainErrorSimple("DEPENDENT_NOT_FOUND", "Dependent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPermanentResidenceNotFound):
		return pkg.NewDomainErrorSimple("PERMANENT_RESIDENCE_NOT_FOUND", "Permanent residence details not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotPermanentResidenceCase):
		return pkg.NewDomainErrorSimple("NOT_PERMANENT_RESIDENCE_CASE", "Case is not a permanent residence case", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDependentIndexOutOfRange), errors.Is(err, usecase.ErrDependentIDMismatch):
		return pkg.NewDomainErrorSimple("DEPENDENT_CONFLICT", "Dependent list changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDependentsCreateFailed), errors.Is(err, usecase.ErrPermanentResidenceSaveFail),
		errors.Is(err, usecase.ErrPermanentResidenceReadFail), errors.Is(err, usecase.ErrDependentDeleteFailed):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "The record store rejected the change", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"portail_immigration/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCases     = "/cases"
	PathDocuments = "/documents"
)

func addCaseRoutes(
	rg *gin.RouterGroup,
	caseHandler *handlers.CaseHandler,
	documentHandler *handlers.DocumentHandler,
	permanentResidenceHandler *handlers.PermanentResidenceHandler,
) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", caseHandler.OpenCase)
		cases.GET("", caseHandler.ListCases)
		cases.GET("/:case_id", caseHandler.GetCase)
		cases.PATCH("/:case_id/notes", caseHandler.UpdateNotes)
		cases.GET("/:case_id/progress", caseHandler.GetProgress)
		cases.POST("/:case_id/approve", caseHandler.ApproveCase)
		cases.GET("/:case_id/history", caseHandler.GetHistory)

		cases.GET("/:case_id/documents", caseHandler.ListDocuments)
		cases.POST("/:case_id/documents/:document_id/upload-url", documentHandler.RequestUploadURL)
		cases.POST("/:case_id/documents/:document_id/upload-complete", documentHandler.CompleteUpload)

		// Spouse and dependents of residence_permanente cases.
		cases.GET("/:case_id/permanent-residence", permanentResidenceHandler.Get)
		cases.PUT("/:case_id/permanent-residence", permanentResidenceHandler.Save)
		cases.DELETE("/:case_id/permanent-residence/dependents/:dependent_id", permanentResidenceHandler.DeleteDependent)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.PATCH("/:document_id/status", documentHandler.UpdateStatus)
	}
}

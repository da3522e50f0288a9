package request

import "portail_immigration/internal/domain/entities"

type UpdateDocumentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateDocumentStatusRequest) DocumentStatus() entities.DocumentStatus {
	return entities.DocumentStatus(r.Status)
}

type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

package response

import (
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
)

type DocumentResponse struct {
	ID             string     `json:"id"`
	CaseID         string     `json:"case_id"`
	DocumentTypeID string     `json:"document_type_id"`
	Name           string     `json:"name,omitempty"`
	Required       bool       `json:"required"`
	Status         string     `json:"status"`
	FileRef        *string    `json:"file_ref,omitempty"`
	PendingFileRef *string    `json:"pending_file_ref,omitempty"`
	UploadedAt     *time.Time `json:"uploaded_at,omitempty"`
}

func FromDocument(d entities.Document) DocumentResponse {
	out := DocumentResponse{
		ID:             d.ID,
		CaseID:         d.CaseID,
		DocumentTypeID: d.DocumentTypeID,
		Required:       d.IsRequired(),
		Status:         string(d.Status),
		FileRef:        d.FileRef,
		PendingFileRef: d.PendingFileRef,
		UploadedAt:     d.UploadedAt,
	}
	if d.Type != nil {
		out.Name = d.Type.Name
	}
	return out
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

type UploadTicketResponse struct {
	Document         DocumentResponse `json:"document"`
	Key              string           `json:"key"`
	UploadURL        string           `json:"upload_url"`
	Method           string           `json:"method"`
	ContentType      string           `json:"content_type"`
	ExpiresInSeconds int              `json:"expires_in_seconds"`
}

func FromUploadTicket(t usecase.UploadTicket) UploadTicketResponse {
	return UploadTicketResponse{
		Document:         FromDocument(t.Document),
		Key:              t.Key,
		UploadURL:        t.URL,
		Method:           "PUT",
		ContentType:      t.ContentType,
		ExpiresInSeconds: int(t.ExpiresIn.Seconds()),
	}
}

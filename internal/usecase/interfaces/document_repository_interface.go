package interfaces

import (
	"context"
	"portail_immigration/internal/domain/entities"
	"time"
)

// IDocumentRepository abstracts DynamoDB persistence for Document.
// Documents are never deleted.
//
// SetPendingUpload only records the issued object key. AttachFile promotes a confirmed
// key to file_ref, clears the pending key and marks the document Téléversé.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	SetPendingUpload(ctx context.Context, id string, key string) (entities.Document, error)
	AttachFile(ctx context.Context, id string, fileRef string, uploadedAt time.Time) (entities.Document, error)
}

// IDocumentTypeRepository abstracts the document type catalog table.

type IDocumentTypeRepository interface {
	Upsert(ctx context.Context, t entities.DocumentType) (entities.DocumentType, error)
	List(ctx context.Context) ([]entities.DocumentType, error)
	ListByVisaCategory(ctx context.Context, category entities.VisaCategory) ([]entities.DocumentType, error)
}

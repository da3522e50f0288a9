package usecase

import (
	"context"
	"errors"
	"log"
	"path"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrDocumentNotFound       = errors.New("document not found")
	ErrInvalidDocumentID      = errors.New("invalid document id")
	ErrInvalidDocumentStatus  = errors.New("invalid document status")
	ErrInvalidFilename        = errors.New("invalid filename")
	ErrDocumentCaseMismatch   = errors.New("document does not belong to case")
	ErrPresignerNotConfigured = errors.New("upload presigner not configured")
	ErrNoPendingUpload        = errors.New("no upload url issued for document")
	ErrUploadNotReceived      = errors.New("uploaded object not found")
)

const defaultUploadContentType = "application/octet-stream"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._\-]+`)

// UploadTicket is what a client needs to PUT a document file.
type UploadTicket struct {
	Document    entities.Document
	Key         string
	URL         string
	ExpiresIn   time.Duration
	ContentType string
}

// IDocumentUseCase exposes document operations.

type IDocumentUseCase interface {
	UpdateStatus(ctx context.Context, documentID string, status entities.DocumentStatus) (entities.Document, error)
	RequestUpload(ctx context.Context, caseID, documentID, filename, contentType string) (UploadTicket, error)
	CompleteUpload(ctx context.Context, caseID, documentID string) (entities.Document, error)
}

type DocumentUseCase struct {
	repo      interfaces.IDocumentRepository
	presigner interfaces.IUploadPresigner
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, presigner interfaces.IUploadPresigner) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, presigner: presigner}
}

func (u *DocumentUseCase) UpdateStatus(ctx context.Context, documentID string, status entities.DocumentStatus) (entities.Document, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	if !status.Valid() {
		return entities.Document{}, ErrInvalidDocumentStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, documentID, status)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return updated, nil
}

// RequestUpload presigns a PUT for the document file and records the key as pending.
// The document only counts as submitted after CompleteUpload confirms the object.
func (u *DocumentUseCase) RequestUpload(ctx context.Context, caseID, documentID, filename, contentType string) (UploadTicket, error) {
	caseID = strings.TrimSpace(caseID)
	documentID = strings.TrimSpace(documentID)
	if caseID == "" {
		return UploadTicket{}, ErrInvalidCaseID
	}
	if documentID == "" {
		return UploadTicket{}, ErrInvalidDocumentID
	}
	name := SanitizeFilename(filename)
	if name == "" {
		return UploadTicket{}, ErrInvalidFilename
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = defaultUploadContentType
	}
	if u.presigner == nil {
		return UploadTicket{}, ErrPresignerNotConfigured
	}

	if _, err := u.caseDocument(ctx, caseID, documentID); err != nil {
		return UploadTicket{}, err
	}

	key := UploadKey(caseID, documentID, ulid.Make().String(), name)
	url, ttl, err := u.presigner.PresignUpload(ctx, key, contentType)
	if err != nil {
		log.Printf("[document][usecase] presign failed case_id=%s document_id=%s err=%v", caseID, documentID, err)
		return UploadTicket{}, err
	}

	updated, err := u.repo.SetPendingUpload(ctx, documentID, key)
	if err != nil {
		return UploadTicket{}, err
	}
	if updated.ID == "" {
		return UploadTicket{}, ErrDocumentNotFound
	}
	log.Printf("[document][usecase] upload ticket issued case_id=%s document_id=%s key=%s", caseID, documentID, key)

	return UploadTicket{Document: updated, Key: key, URL: url, ExpiresIn: ttl, ContentType: contentType}, nil
}

// CompleteUpload checks that the pending object exists in the bucket, then records it
// as the stored file and marks the document Téléversé.
func (u *DocumentUseCase) CompleteUpload(ctx context.Context, caseID, documentID string) (entities.Document, error) {
	caseID = strings.TrimSpace(caseID)
	documentID = strings.TrimSpace(documentID)
	if caseID == "" {
		return entities.Document{}, ErrInvalidCaseID
	}
	if documentID == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	if u.presigner == nil {
		return entities.Document{}, ErrPresignerNotConfigured
	}

	doc, err := u.caseDocument(ctx, caseID, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if !doc.HasPendingUpload() {
		return entities.Document{}, ErrNoPendingUpload
	}
	key := *doc.PendingFileRef

	exists, err := u.presigner.ObjectExists(ctx, key)
	if err != nil {
		log.Printf("[document][usecase] head object failed case_id=%s document_id=%s key=%s err=%v", caseID, documentID, key, err)
		return entities.Document{}, err
	}
	if !exists {
		return entities.Document{}, ErrUploadNotReceived
	}

	updated, err := u.repo.AttachFile(ctx, documentID, key, time.Now().UTC())
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	log.Printf("[document][usecase] upload confirmed case_id=%s document_id=%s key=%s", caseID, documentID, key)
	return updated, nil
}

func (u *DocumentUseCase) caseDocument(ctx context.Context, caseID, documentID string) (entities.Document, error) {
	doc, err := u.repo.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	if doc.CaseID != caseID {
		return entities.Document{}, ErrDocumentCaseMismatch
	}
	return doc, nil
}

// UploadKey builds the object key of a document file.
func UploadKey(caseID, documentID, nonce, filename string) string {
	return path.Join("cases", caseID, "documents", documentID, nonce+"-"+filename)
}

// SanitizeFilename keeps the base name and replaces characters outside [a-zA-Z0-9._-].
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

package entities

import (
	"strings"
	"time"
)

// DocumentType is a catalog entry describing a kind of required evidence.
// Types are maintained through the catalog file, never by applicants.
type DocumentType struct {
	ID           string       `json:"id" toml:"id"`
	Name         string       `json:"name" toml:"name"`
	Required     bool         `json:"required" toml:"required"`
	VisaCategory VisaCategory `json:"visa_category" toml:"visa_category"`
}

type DocumentStatus string

const (
	DocumentStatusTeleverse DocumentStatus = "Téléversé"
	DocumentStatusVerifie   DocumentStatus = "Vérifié"
	DocumentStatusEnAttente DocumentStatus = "En attente"
	DocumentStatusRejete    DocumentStatus = "Rejeté"
	DocumentStatusExpire    DocumentStatus = "Expiré"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusTeleverse, DocumentStatusVerifie, DocumentStatusEnAttente, DocumentStatusRejete, DocumentStatusExpire:
		return true
	}
	return false
}

// Document is a case's instance of a DocumentType.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// Type is not persisted with the document; it is resolved from the catalog when
// the document is read for progress computation. PendingFileRef is the object key
// handed out with an upload URL; it becomes FileRef once the object is confirmed.
type Document struct {
	ID             string         `json:"id"`
	CaseID         string         `json:"case_id"`
	DocumentTypeID string         `json:"document_type_id"`
	Type           *DocumentType  `json:"type,omitempty"`
	Status         DocumentStatus `json:"status"`
	FileRef        *string        `json:"file_ref,omitempty"`
	PendingFileRef *string        `json:"pending_file_ref,omitempty"`
	UploadedAt     *time.Time     `json:"uploaded_at,omitempty"`
}

// IsRequired reports whether the resolved type is mandatory. Unresolved types are optional.
func (d Document) IsRequired() bool {
	return d.Type != nil && d.Type.Required
}

// HasFile reports whether a stored-file reference is present.
func (d Document) HasFile() bool {
	return d.FileRef != nil && strings.TrimSpace(*d.FileRef) != ""
}

// HasPendingUpload reports whether an upload URL was issued and not yet confirmed.
func (d Document) HasPendingUpload() bool {
	return d.PendingFileRef != nil && strings.TrimSpace(*d.PendingFileRef) != ""
}

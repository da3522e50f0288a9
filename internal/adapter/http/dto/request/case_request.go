package request

import (
	"strings"
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
)

// OpenCaseRequest opens a case for a candidate. SubmittedAt defaults to now.
type OpenCaseRequest struct {
	CandidateID          string     `json:"candidate_id" binding:"required"`
	CandidateEmail       string     `json:"candidate_email" binding:"required,email"`
	IdentificationNumber string     `json:"identification_number" binding:"required"`
	VisaCategory         string     `json:"visa_category" binding:"required"`
	Office               string     `json:"office"`
	Notes                string     `json:"notes"`
	SubmittedAt          *time.Time `json:"submitted_at"`
}

func (r OpenCaseRequest) ToInput() usecase.OpenCaseInput {
	in := usecase.OpenCaseInput{
		CandidateID:          strings.TrimSpace(r.CandidateID),
		CandidateEmail:       strings.TrimSpace(r.CandidateEmail),
		IdentificationNumber: strings.TrimSpace(r.IdentificationNumber),
		VisaCategory:         entities.VisaCategory(strings.TrimSpace(r.VisaCategory)),
		Office:               strings.TrimSpace(r.Office),
		Notes:                r.Notes,
	}
	if r.SubmittedAt != nil {
		in.SubmittedAt = *r.SubmittedAt
	}
	return in
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type ApproveCaseRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

package response

import (
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase"
)

type CaseResponse struct {
	ID                   string    `json:"id"`
	CandidateID          string    `json:"candidate_id"`
	CandidateEmail       string    `json:"candidate_email"`
	IdentificationNumber string    `json:"identification_number"`
	VisaCategory         string    `json:"visa_category"`
	Status               string    `json:"status"`
	SubmittedAt          time.Time `json:"submitted_at"`
	Office               string    `json:"office"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromCase(c entities.Case) CaseResponse {
	return CaseResponse{
		ID:                   c.ID,
		CandidateID:          c.CandidateID,
		CandidateEmail:       c.CandidateEmail,
		IdentificationNumber: c.IdentificationNumber,
		VisaCategory:         string(c.VisaCategory),
		Status:               string(c.Status),
		SubmittedAt:          c.SubmittedAt,
		Office:               c.Office,
		Notes:                c.Notes,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

type OpenCaseResponse struct {
	Case      CaseResponse       `json:"case"`
	Documents []DocumentResponse `json:"documents"`
}

func FromOpenedCase(c entities.Case, docs []entities.Document) OpenCaseResponse {
	return OpenCaseResponse{Case: FromCase(c), Documents: FromDocuments(docs)}
}

type ProgressResponse struct {
	CaseID    string             `json:"case_id"`
	Status    string             `json:"status"`
	Percent   int                `json:"percent"`
	Required  int                `json:"required"`
	Submitted int                `json:"submitted"`
	Documents []DocumentResponse `json:"documents"`
}

func FromCaseProgress(p usecase.CaseProgress) ProgressResponse {
	return ProgressResponse{
		CaseID:    p.Case.ID,
		Status:    string(p.Case.Status),
		Percent:   p.Percent,
		Required:  p.Required,
		Submitted: p.Submitted,
		Documents: FromDocuments(p.Documents),
	}
}

type HistoryResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Action      string    `json:"action"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
}

func FromHistory(h entities.History) HistoryResponse {
	return HistoryResponse{
		ID:          h.ID,
		CandidateID: h.CandidateID,
		Action:      h.Action,
		Date:        h.Date,
		UserID:      h.UserID,
	}
}

func FromHistories(entries []entities.History) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, FromHistory(h))
	}
	return out
}

// ApprovalResponse is also returned with 502 when a step after the status change failed.
type ApprovalResponse struct {
	Case           CaseResponse     `json:"case"`
	History        *HistoryResponse `json:"history,omitempty"`
	HistoryWritten bool             `json:"history_written"`
	EmailSent      bool             `json:"email_sent"`
	Error          string           `json:"error,omitempty"`
}

func FromApprovalResult(r usecase.ApprovalResult) ApprovalResponse {
	out := ApprovalResponse{
		Case:           FromCase(r.Case),
		HistoryWritten: r.HistoryWritten,
		EmailSent:      r.EmailSent,
	}
	if r.HistoryWritten {
		h := FromHistory(r.History)
		out.History = &h
	}
	return out
}

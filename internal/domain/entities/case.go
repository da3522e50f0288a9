package entities

import "time"

// VisaCategory is the immigration stream a case belongs to.

type VisaCategory string

const (
	VisaCategoryVisiteur            VisaCategory = "visiteur"
	VisaCategoryTravail             VisaCategory = "travail"
	VisaCategoryResidencePermanente VisaCategory = "residence_permanente"
)

func (v VisaCategory) Valid() bool {
	switch v {
	case VisaCategoryVisiteur, VisaCategoryTravail, VisaCategoryResidencePermanente:
		return true
	}
	return false
}

// CaseStatus represents the lifecycle of an immigration case (dossier).
//
// Domain notes:
//   - "En cours" is the initial status of every opened case.
//   - Complété, Rejeté and Expiré are terminal for progress reporting only; the record stays editable.
//   - The only programmatic transition is En cours/En attente => Approuvé (approval workflow).

type CaseStatus string

const (
	CaseStatusEnCours   CaseStatus = "En cours"
	CaseStatusApprouve  CaseStatus = "Approuvé"
	CaseStatusEnAttente CaseStatus = "En attente"
	CaseStatusRejete    CaseStatus = "Rejeté"
	CaseStatusComplete  CaseStatus = "Complété"
	CaseStatusExpire    CaseStatus = "Expiré"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusEnCours, CaseStatusApprouve, CaseStatusEnAttente, CaseStatusRejete, CaseStatusComplete, CaseStatusExpire:
		return true
	}
	return false
}

// IsTerminal reports whether progress is always 100 for this status.
func (s CaseStatus) IsTerminal() bool {
	switch s {
	case CaseStatusComplete, CaseStatusRejete, CaseStatusExpire:
		return true
	}
	return false
}

// CanApprove reports whether the approval workflow may move a case out of this status.
func (s CaseStatus) CanApprove() bool {
	return s == CaseStatusEnCours || s == CaseStatusEnAttente
}

// Case is an immigration application persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (candidate_id-index): candidate_id
//
// Candidate contact fields are denormalized on the case so the approval workflow
// can notify the applicant without another lookup.
type Case struct {
	ID                   string       `json:"id"`
	CandidateID          string       `json:"candidate_id"`
	CandidateEmail       string       `json:"candidate_email"`
	IdentificationNumber string       `json:"identification_number"`
	VisaCategory         VisaCategory `json:"visa_category"`
	Status               CaseStatus   `json:"status"`
	SubmittedAt          time.Time    `json:"submitted_at"`
	Office               string       `json:"office"`
	Notes                string       `json:"notes"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// HistoryActionProfileApproved is recorded when the approval workflow succeeds.
const HistoryActionProfileApproved = "Profil approuvé et email envoyé"

// History is an audit entry attached to a candidate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (candidate_id-index): candidate_id
type History struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Action      string    `json:"action"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
}

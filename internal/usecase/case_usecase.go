package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/domain/progress"
	"portail_immigration/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCaseNotFound            = errors.New("case not found")
	ErrInvalidVisaCategory     = errors.New("invalid visa category")
	ErrInvalidCandidateID      = errors.New("invalid candidate_id")
	ErrInvalidUserID           = errors.New("invalid user_id")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrApprovalHistoryFailed   = errors.New("approval history entry failed")
	ErrApprovalEmailFailed     = errors.New("approval email failed")
	ErrMailerNotConfigured     = errors.New("mailer not configured")
)

const approvalEmailSubject = "Votre dossier d'immigration a été approuvé"

// OpenCaseInput carries what an administrator provides when opening a case.
type OpenCaseInput struct {
	CandidateID          string
	CandidateEmail       string
	IdentificationNumber string
	VisaCategory         entities.VisaCategory
	Office               string
	Notes                string
	SubmittedAt          time.Time
}

// CaseProgress is the progress report of a single case.
type CaseProgress struct {
	Case      entities.Case
	Documents []entities.Document
	Required  int
	Submitted int
	Percent   int
}

// ApprovalResult reports which approval steps went through. Status is never rolled
// back when a later step fails.
type ApprovalResult struct {
	Case           entities.Case
	History        entities.History
	HistoryWritten bool
	EmailSent      bool
}

// ICaseUseCase exposes case operations.
//
//   - OpenCase => new case + one pending document per catalog type of the visa category
//   - GetProgress => completion percentage (progress.Calculate)
//   - Approve => approval workflow (status, history entry, applicant email)
//   - History => audit entries of the case's candidate, oldest first

type ICaseUseCase interface {
	OpenCase(ctx context.Context, input OpenCaseInput) (entities.Case, []entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	ListDocuments(ctx context.Context, caseID string) ([]entities.Document, error)
	GetProgress(ctx context.Context, caseID string) (CaseProgress, error)
	UpdateNotes(ctx context.Context, caseID string, notes string) (entities.Case, error)
	Approve(ctx context.Context, caseID string, userID string) (ApprovalResult, error)
	History(ctx context.Context, caseID string) ([]entities.History, error)
}

type CaseUseCase struct {
	repo        interfaces.ICaseRepository
	docRepo     interfaces.IDocumentRepository
	docTypeRepo interfaces.IDocumentTypeRepository
	historyRepo interfaces.IHistoryRepository
	mailer      interfaces.IMailer
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(
	repo interfaces.ICaseRepository,
	docRepo interfaces.IDocumentRepository,
	docTypeRepo interfaces.IDocumentTypeRepository,
	historyRepo interfaces.IHistoryRepository,
	mailer interfaces.IMailer,
) *CaseUseCase {
	return &CaseUseCase{repo: repo, docRepo: docRepo, docTypeRepo: docTypeRepo, historyRepo: historyRepo, mailer: mailer}
}

func (u *CaseUseCase) OpenCase(ctx context.Context, input OpenCaseInput) (entities.Case, []entities.Document, error) {
	candidateID := strings.TrimSpace(input.CandidateID)
	if candidateID == "" {
		return entities.Case{}, nil, ErrInvalidCandidateID
	}
	if !input.VisaCategory.Valid() {
		return entities.Case{}, nil, ErrInvalidVisaCategory
	}

	types, err := u.docTypeRepo.ListByVisaCategory(ctx, input.VisaCategory)
	if err != nil {
		return entities.Case{}, nil, err
	}

	now := time.Now().UTC()
	submittedAt := input.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = now
	}
	c := entities.Case{
		ID:                   uuid.NewString(),
		CandidateID:          candidateID,
		CandidateEmail:       strings.TrimSpace(input.CandidateEmail),
		IdentificationNumber: strings.TrimSpace(input.IdentificationNumber),
		VisaCategory:         input.VisaCategory,
		Status:               entities.CaseStatusEnCours,
		SubmittedAt:          submittedAt.UTC(),
		Office:               strings.TrimSpace(input.Office),
		Notes:                input.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Case{}, nil, err
	}
	log.Printf("[case][usecase] opened case_id=%s visa_category=%s document_types=%d", created.ID, created.VisaCategory, len(types))

	docs := make([]entities.Document, 0, len(types))
	for _, t := range types {
		t := t
		d, err := u.docRepo.Create(ctx, entities.Document{
			ID:             uuid.NewString(),
			CaseID:         created.ID,
			DocumentTypeID: t.ID,
			Status:         entities.DocumentStatusEnAttente,
		})
		if err != nil {
			log.Printf("[case][usecase] document create failed case_id=%s document_type_id=%s err=%v", created.ID, t.ID, err)
			return created, docs, err
		}
		d.Type = &t
		docs = append(docs, d)
	}
	return created, docs, nil
}

func (u *CaseUseCase) GetByID(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

func (u *CaseUseCase) List(ctx context.Context) ([]entities.Case, error) {
	return u.repo.List(ctx)
}

// ListDocuments returns the case documents with their catalog type resolved.
func (u *CaseUseCase) ListDocuments(ctx context.Context, caseID string) ([]entities.Document, error) {
	c, err := u.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return u.documentsWithTypes(ctx, c)
}

func (u *CaseUseCase) GetProgress(ctx context.Context, caseID string) (CaseProgress, error) {
	c, err := u.GetByID(ctx, caseID)
	if err != nil {
		return CaseProgress{}, err
	}
	docs, err := u.documentsWithTypes(ctx, c)
	if err != nil {
		return CaseProgress{}, err
	}

	p := CaseProgress{Case: c, Documents: docs, Percent: progress.Calculate(c.Status, docs)}
	for _, d := range docs {
		if d.IsRequired() {
			p.Required++
			if d.HasFile() {
				p.Submitted++
			}
		}
	}
	return p, nil
}

func (u *CaseUseCase) UpdateNotes(ctx context.Context, caseID string, notes string) (entities.Case, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	updated, err := u.repo.UpdateNotes(ctx, caseID, notes)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return updated, nil
}

// Approve moves a case to Approuvé, records the history entry and emails the
// applicant. The three steps fail independently: a history or email failure is
// returned alongside a result whose Case already carries the new status.
func (u *CaseUseCase) Approve(ctx context.Context, caseID string, userID string) (ApprovalResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ApprovalResult{}, ErrInvalidUserID
	}
	c, err := u.GetByID(ctx, caseID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if !c.Status.CanApprove() {
		log.Printf("[case][usecase] approve rejected case_id=%s status=%s", c.ID, c.Status)
		return ApprovalResult{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, c.ID, entities.CaseStatusApprouve)
	if err != nil {
		log.Printf("[case][usecase] approve status update failed case_id=%s err=%v", c.ID, err)
		return ApprovalResult{}, err
	}
	if updated.ID == "" {
		return ApprovalResult{}, ErrCaseNotFound
	}
	result := ApprovalResult{Case: updated}
	log.Printf("[case][usecase] approve status updated case_id=%s", c.ID)

	h, err := u.historyRepo.Create(ctx, entities.History{
		ID:          uuid.NewString(),
		CandidateID: updated.CandidateID,
		Action:      entities.HistoryActionProfileApproved,
		Date:        time.Now().UTC(),
		UserID:      userID,
	})
	if err != nil {
		log.Printf("[case][usecase] approve history failed case_id=%s err=%v", c.ID, err)
		return result, fmt.Errorf("%w: %w", ErrApprovalHistoryFailed, err)
	}
	result.History = h
	result.HistoryWritten = true

	if u.mailer == nil {
		return result, fmt.Errorf("%w: %w", ErrApprovalEmailFailed, ErrMailerNotConfigured)
	}
	if err := u.mailer.Send(ctx, approvalEmail(updated)); err != nil {
		log.Printf("[case][usecase] approve email failed case_id=%s to=%s err=%v", c.ID, updated.CandidateEmail, err)
		return result, fmt.Errorf("%w: %w", ErrApprovalEmailFailed, err)
	}
	result.EmailSent = true
	log.Printf("[case][usecase] approve success case_id=%s user_id=%s", c.ID, userID)
	return result, nil
}

func (u *CaseUseCase) History(ctx context.Context, caseID string) ([]entities.History, error) {
	c, err := u.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	entries, err := u.historyRepo.ListByCandidateID(ctx, c.CandidateID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func approvalEmail(c entities.Case) interfaces.Email {
	body := fmt.Sprintf(
		"Bonjour,\n\nVotre dossier a été approuvé.\nNuméro d'identification : %s\n\nMerci de conserver ce numéro pour toute correspondance.\n",
		c.IdentificationNumber,
	)
	return interfaces.Email{To: c.CandidateEmail, Subject: approvalEmailSubject, Body: body}
}

func (u *CaseUseCase) documentsWithTypes(ctx context.Context, c entities.Case) ([]entities.Document, error) {
	docs, err := u.docRepo.ListByCaseID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	types, err := u.docTypeRepo.ListByVisaCategory(ctx, c.VisaCategory)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.DocumentType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}
	for i := range docs {
		if t, ok := byID[docs[i].DocumentTypeID]; ok {
			t := t
			docs[i].Type = &t
		}
	}
	return docs, nil
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"
	"strings"
)

// PermanentResidenceInput is a full editing state submitted in one request.
// Dependents may carry temporary ids minted by the client.
type PermanentResidenceInput struct {
	Program         entities.ImmigrationProgram
	SpouseLastName  string
	SpouseFirstName string
	SpousePassport  string
	Dependents      []DependentDraft
}

// IPermanentResidenceUseCase drives DependentSession for request/response callers.
//
//   - OpenSession => baseline of the permanent residence form
//   - Save => replay the submitted state into a session and Commit it
//   - RemoveDependent => single dependent removal (remote first, then local), then the stored count is refreshed

type IPermanentResidenceUseCase interface {
	OpenSession(ctx context.Context, caseID string, notifier interfaces.INotifier) (*DependentSession, error)
	Save(ctx context.Context, caseID string, input PermanentResidenceInput, notifier interfaces.INotifier) (CommitResult, error)
	RemoveDependent(ctx context.Context, caseID string, dependentID string, notifier interfaces.INotifier) (SessionSnapshot, error)
}

type PermanentResidenceUseCase struct {
	caseRepo       interfaces.ICaseRepository
	detailsRepo    interfaces.IPermanentResidenceRepository
	dependentsRepo interfaces.IDependentRepository
}

var _ IPermanentResidenceUseCase = (*PermanentResidenceUseCase)(nil)

func NewPermanentResidenceUseCase(caseRepo interfaces.ICaseRepository, detailsRepo interfaces.IPermanentResidenceRepository, dependentsRepo interfaces.IDependentRepository) *PermanentResidenceUseCase {
	return &PermanentResidenceUseCase{caseRepo: caseRepo, detailsRepo: detailsRepo, dependentsRepo: dependentsRepo}
}

func (u *PermanentResidenceUseCase) OpenSession(ctx context.Context, caseID string, notifier interfaces.INotifier) (*DependentSession, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, ErrInvalidCaseID
	}

	c, err := u.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, ErrCaseNotFound
	}
	if c.VisaCategory != entities.VisaCategoryResidencePermanente {
		return nil, ErrNotPermanentResidenceCase
	}

	session := NewDependentSession(caseID, u.detailsRepo, u.dependentsRepo, notifier)

	details, err := u.detailsRepo.GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if details.ID == "" {
		return session, nil
	}
	deps, err := u.dependentsRepo.ListByPermanentResidenceID(ctx, details.ID)
	if err != nil {
		return nil, err
	}
	session.Reset(details, deps)
	return session, nil
}

func (u *PermanentResidenceUseCase) Save(ctx context.Context, caseID string, input PermanentResidenceInput, notifier interfaces.INotifier) (CommitResult, error) {
	session, err := u.OpenSession(ctx, caseID, notifier)
	if err != nil {
		return CommitResult{}, err
	}
	if err := checkSubmittedDependents(session, input.Dependents); err != nil {
		log.Printf("[dependents][usecase] save rejected case_id=%s err=%v", session.CaseID(), err)
		return CommitResult{}, err
	}

	if err := session.SetProgram(input.Program); err != nil {
		return CommitResult{}, err
	}
	spouse := []struct {
		field SpouseField
		value string
	}{
		{SpouseFieldLastName, input.SpouseLastName},
		{SpouseFieldFirstName, input.SpouseFirstName},
		{SpouseFieldPassport, input.SpousePassport},
	}
	for _, f := range spouse {
		if err := session.SetSpouseField(f.field, f.value); err != nil {
			return CommitResult{}, err
		}
	}

	session.ClearDependents()
	for _, d := range input.Dependents {
		session.AppendDependent(d)
	}

	log.Printf("[dependents][usecase] save case_id=%s record_id=%q dependents=%d person_count=%d", session.CaseID(), session.RecordID(), session.Len(), session.PersonCount())
	return session.Commit(ctx, session.CaseID(), session.RecordID(), nil)
}

// checkSubmittedDependents enforces that a submission lists each dependent once, only
// names persisted dependents of this record and omits none of them. Deleting a
// persisted dependent goes through RemoveDependent.
func checkSubmittedDependents(session *DependentSession, submitted []DependentDraft) error {
	seen := make(map[entities.DependentID]bool, len(submitted))
	for _, d := range submitted {
		if d.ID.IsZero() {
			continue
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateDependentID, d.ID)
		}
		seen[d.ID] = true
		if !d.ID.IsTemporary() && session.IndexOf(d.ID) < 0 {
			return fmt.Errorf("%w: %s", ErrDependentNotFound, d.ID)
		}
	}
	for _, d := range session.Dependents() {
		if !seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDependentOmitted, d.ID)
		}
	}
	return nil
}

func (u *PermanentResidenceUseCase) RemoveDependent(ctx context.Context, caseID string, dependentID string, notifier interfaces.INotifier) (SessionSnapshot, error) {
	id, err := entities.ParseDependentID(dependentID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	session, err := u.OpenSession(ctx, caseID, notifier)
	if err != nil {
		return SessionSnapshot{}, err
	}

	// Temporary rows only ever lived on the client.
	if id.IsTemporary() {
		return session.Snapshot(), nil
	}

	idx := session.IndexOf(id)
	if idx < 0 {
		return SessionSnapshot{}, ErrDependentNotFound
	}
	if err := session.RemoveDependent(ctx, idx, id); err != nil {
		return SessionSnapshot{}, err
	}

	// The dependent is gone either way; a failed count refresh is reported, not undone.
	saved, err := u.detailsRepo.Update(ctx, session.Details())
	if err == nil && saved.ID == "" {
		err = ErrPermanentResidenceNotFound
	}
	if err != nil {
		log.Printf("[dependents][usecase] person count refresh failed case_id=%s record_id=%s person_count=%d err=%v", session.CaseID(), session.RecordID(), session.PersonCount(), err)
		session.notify(ctx, interfaces.SeverityError, msgCountFailure)
	}
	return session.Snapshot(), nil
}

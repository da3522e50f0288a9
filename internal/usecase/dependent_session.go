package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidCaseID              = errors.New("invalid case_id")
	ErrInvalidProgram             = errors.New("invalid immigration program")
	ErrInvalidDependentField      = errors.New("invalid dependent field")
	ErrInvalidSpouseField         = errors.New("invalid spouse field")
	ErrDependentIndexOutOfRange   = errors.New("dependent index out of range")
	ErrDependentIDMismatch        = errors.New("dependent id does not match position")
	ErrDependentNotFound          = errors.New("dependent not found")
	ErrPermanentResidenceNotFound = errors.New("permanent residence details not found")
	ErrDependentsCreateFailed     = errors.New("dependents batch create failed")
	ErrPermanentResidenceSaveFail = errors.New("permanent residence details save failed")
	ErrPermanentResidenceReadFail = errors.New("permanent residence reload failed")
	ErrDependentDeleteFailed      = errors.New("dependent delete failed")
	ErrNotPermanentResidenceCase  = errors.New("case is not a permanent residence case")
	ErrDependentOmitted           = errors.New("persisted dependent missing from submission")
	ErrDuplicateDependentID       = errors.New("dependent submitted twice")
)

const (
	msgSaveSuccess   = "Informations de résidence permanente enregistrées."
	msgSaveFailure   = "Erreur lors de l'enregistrement des informations de résidence permanente."
	msgDeleteSuccess = "Enfant supprimé."
	msgDeleteFailure = "Erreur lors de la suppression de l'enfant."
	msgMissingCase   = "Identifiant du dossier manquant."
	msgCountFailure  = "Erreur lors de la mise à jour du nombre de personnes."
)

type DependentField string

const (
	DependentFieldLastName  DependentField = "last_name"
	DependentFieldFirstName DependentField = "first_name"
	DependentFieldAge       DependentField = "age"
)

type SpouseField string

const (
	SpouseFieldLastName  SpouseField = "spouse_last_name"
	SpouseFieldFirstName SpouseField = "spouse_first_name"
	SpouseFieldPassport  SpouseField = "spouse_passport"
)

// DependentDraft is a dependent as edited in a session. Age stays free text until commit.
type DependentDraft struct {
	ID        entities.DependentID `json:"id"`
	LastName  string               `json:"last_name"`
	FirstName string               `json:"first_name"`
	Age       string               `json:"age"`
}

// DependentUpdateResult is the outcome of one best-effort update during Commit.
type DependentUpdateResult struct {
	ID        entities.DependentID
	Dependent entities.Dependent
	Err       error
}

func (r DependentUpdateResult) OK() bool { return r.Err == nil }

// CommitResult holds the reloaded store state and the per-dependent update outcomes.
type CommitResult struct {
	Details    entities.PermanentResidenceDetails
	Dependents []entities.Dependent
	Created    int
	Updates    []DependentUpdateResult
}

func (r CommitResult) FailedUpdates() []DependentUpdateResult {
	var out []DependentUpdateResult
	for _, u := range r.Updates {
		if !u.OK() {
			out = append(out, u)
		}
	}
	return out
}

// SessionSnapshot is a read-only copy of a session's editing state.
type SessionSnapshot struct {
	CaseID          string                      `json:"case_id"`
	RecordID        string                      `json:"record_id,omitempty"`
	Program         entities.ImmigrationProgram `json:"program"`
	SpouseLastName  string                      `json:"spouse_last_name"`
	SpouseFirstName string                      `json:"spouse_first_name"`
	SpousePassport  string                      `json:"spouse_passport"`
	PersonCount     int                         `json:"person_count"`
	Dependents      []DependentDraft            `json:"dependents"`
}

// DependentSession owns the editing buffer of one permanent residence form: spouse
// fields, program and the ordered dependents. Person count is recomputed after every
// local mutation. A session is meant for a single editor and is not safe for
// concurrent use.
type DependentSession struct {
	details    interfaces.IPermanentResidenceRepository
	dependents interfaces.IDependentRepository
	notifier   interfaces.INotifier

	caseID          string
	recordID        string
	program         entities.ImmigrationProgram
	spouseLastName  string
	spouseFirstName string
	spousePassport  string
	drafts          []DependentDraft
	personCount     int

	nonce string
	seq   uint64
}

func NewDependentSession(caseID string, details interfaces.IPermanentResidenceRepository, dependents interfaces.IDependentRepository, notifier interfaces.INotifier) *DependentSession {
	s := &DependentSession{
		details:    details,
		dependents: dependents,
		notifier:   notifier,
		caseID:     strings.TrimSpace(caseID),
		nonce:      ulid.Make().String(),
	}
	s.recount()
	return s
}

// Reset replaces the editing state with records read from the store.
func (s *DependentSession) Reset(details entities.PermanentResidenceDetails, dependents []entities.Dependent) {
	s.recordID = details.ID
	if details.CaseID != "" {
		s.caseID = details.CaseID
	}
	s.program = details.Program
	s.spouseLastName = deref(details.SpouseLastName)
	s.spouseFirstName = deref(details.SpouseFirstName)
	s.spousePassport = deref(details.SpousePassport)

	s.drafts = make([]DependentDraft, 0, len(dependents))
	for _, d := range dependents {
		s.drafts = append(s.drafts, DependentDraft{
			ID:        d.ID,
			LastName:  d.LastName,
			FirstName: d.FirstName,
			Age:       strconv.Itoa(d.Age),
		})
	}
	s.recount()
}

func (s *DependentSession) CaseID() string   { return s.caseID }
func (s *DependentSession) RecordID() string { return s.recordID }
func (s *DependentSession) PersonCount() int { return s.personCount }
func (s *DependentSession) Len() int         { return len(s.drafts) }

func (s *DependentSession) Dependents() []DependentDraft {
	out := make([]DependentDraft, len(s.drafts))
	copy(out, s.drafts)
	return out
}

func (s *DependentSession) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		CaseID:          s.caseID,
		RecordID:        s.recordID,
		Program:         s.program,
		SpouseLastName:  s.spouseLastName,
		SpouseFirstName: s.spouseFirstName,
		SpousePassport:  s.spousePassport,
		PersonCount:     s.personCount,
		Dependents:      s.Dependents(),
	}
}

// Details returns the record as it would be written from the current editing state.
func (s *DependentSession) Details() entities.PermanentResidenceDetails {
	return entities.PermanentResidenceDetails{
		ID:              s.recordID,
		CaseID:          s.caseID,
		Program:         s.program,
		PersonCount:     s.personCount,
		SpouseLastName:  entities.NullableString(s.spouseLastName),
		SpouseFirstName: entities.NullableString(s.spouseFirstName),
		SpousePassport:  entities.NullableString(s.spousePassport),
	}
}

// IndexOf returns the position of id, or -1.
func (s *DependentSession) IndexOf(id entities.DependentID) int {
	for i, d := range s.drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// AddDependent appends an empty dependent carrying a fresh temporary id.
func (s *DependentSession) AddDependent() DependentDraft {
	s.seq++
	d := DependentDraft{ID: entities.TemporaryDependentID(fmt.Sprintf("%s-%d", s.nonce, s.seq))}
	s.drafts = append(s.drafts, d)
	s.recount()
	return d
}

// AppendDependent adds a dependent that already has an identity, e.g. one echoed back
// by a client that minted a temporary id earlier.
func (s *DependentSession) AppendDependent(d DependentDraft) {
	if d.ID.IsZero() {
		s.seq++
		d.ID = entities.TemporaryDependentID(fmt.Sprintf("%s-%d", s.nonce, s.seq))
	}
	s.drafts = append(s.drafts, d)
	s.recount()
}

// ClearDependents drops every local draft without touching the store.
func (s *DependentSession) ClearDependents() {
	s.drafts = nil
	s.recount()
}

func (s *DependentSession) UpdateDependentField(index int, field DependentField, value string) error {
	if index < 0 || index >= len(s.drafts) {
		return ErrDependentIndexOutOfRange
	}
	d := &s.drafts[index]
	switch field {
	case DependentFieldLastName:
		d.LastName = value
	case DependentFieldFirstName:
		d.FirstName = value
	case DependentFieldAge:
		d.Age = value
	default:
		return ErrInvalidDependentField
	}
	return nil
}

func (s *DependentSession) SetSpouseField(field SpouseField, value string) error {
	switch field {
	case SpouseFieldLastName:
		s.spouseLastName = value
	case SpouseFieldFirstName:
		s.spouseFirstName = value
	case SpouseFieldPassport:
		s.spousePassport = value
	default:
		return ErrInvalidSpouseField
	}
	s.recount()
	return nil
}

func (s *DependentSession) SetProgram(p entities.ImmigrationProgram) error {
	if !p.Valid() {
		return ErrInvalidProgram
	}
	s.program = p
	return nil
}

// RemoveDependent deletes a persisted dependent remotely before dropping it locally.
// When the remote delete fails the local collection is left untouched. Temporary
// dependents are dropped without any store call.
func (s *DependentSession) RemoveDependent(ctx context.Context, index int, id entities.DependentID) error {
	if index < 0 || index >= len(s.drafts) {
		return ErrDependentIndexOutOfRange
	}
	if s.drafts[index].ID != id {
		return ErrDependentIDMismatch
	}

	if !id.IsTemporary() {
		log.Printf("[dependents][session] remote delete start case_id=%s dependent_id=%s", s.caseID, id)
		if err := s.dependents.Delete(ctx, id.Key()); err != nil {
			log.Printf("[dependents][session] remote delete failed case_id=%s dependent_id=%s err=%v", s.caseID, id, err)
			s.notify(ctx, interfaces.SeverityError, msgDeleteFailure)
			return fmt.Errorf("%w: %w", ErrDependentDeleteFailed, err)
		}
		s.notify(ctx, interfaces.SeverityInfo, msgDeleteSuccess)
	}

	s.drafts = append(s.drafts[:index:index], s.drafts[index+1:]...)
	s.recount()
	return nil
}

// Commit persists the whole editing state.
//
//  1. create or update the details record (existingRecordID selects update)
//  2. create every temporary dependent in one batch; failure aborts the commit
//  3. update every persistent dependent; failures are collected, not fatal
//  4. reload details and dependents and make them the new baseline
//
// onDone, when set, receives the reloaded records.
func (s *DependentSession) Commit(ctx context.Context, caseID, existingRecordID string, onDone func(CommitResult)) (CommitResult, error) {
	caseID = strings.TrimSpace(caseID)
	existingRecordID = strings.TrimSpace(existingRecordID)
	if caseID == "" {
		s.notify(ctx, interfaces.SeverityError, msgMissingCase)
		return CommitResult{}, ErrInvalidCaseID
	}
	if !s.program.Valid() {
		s.notify(ctx, interfaces.SeverityError, msgSaveFailure)
		return CommitResult{}, ErrInvalidProgram
	}

	toCreate, toUpdate := s.partition()
	log.Printf("[dependents][session] commit start case_id=%s record_id=%q to_create=%d to_update=%d", caseID, existingRecordID, len(toCreate), len(toUpdate))

	details := s.Details()
	details.ID = existingRecordID
	details.CaseID = caseID

	saved, err := s.saveDetails(ctx, details)
	if err != nil {
		log.Printf("[dependents][session] details save failed case_id=%s err=%v", caseID, err)
		s.notify(ctx, interfaces.SeverityError, msgSaveFailure)
		return CommitResult{}, err
	}
	s.caseID = caseID
	s.recordID = saved.ID

	result := CommitResult{}
	if len(toCreate) > 0 {
		created, err := s.dependents.CreateBatch(ctx, saved.ID, toCreate)
		if err != nil {
			log.Printf("[dependents][session] batch create failed case_id=%s record_id=%s count=%d err=%v", caseID, saved.ID, len(toCreate), err)
			s.notify(ctx, interfaces.SeverityError, msgSaveFailure)
			return CommitResult{}, fmt.Errorf("%w: %w", ErrDependentsCreateFailed, err)
		}
		result.Created = len(created)
	}

	for _, d := range toUpdate {
		d.PermanentResidenceID = saved.ID
		updated, err := s.dependents.Update(ctx, d)
		if err == nil && updated.ID.IsZero() {
			err = ErrDependentNotFound
		}
		if err != nil {
			log.Printf("[dependents][session] update skipped case_id=%s dependent_id=%s err=%v", caseID, d.ID, err)
		}
		result.Updates = append(result.Updates, DependentUpdateResult{ID: d.ID, Dependent: updated, Err: err})
	}

	reloaded, deps, err := s.reload(ctx, saved.ID)
	if err != nil {
		log.Printf("[dependents][session] reload failed case_id=%s record_id=%s err=%v", caseID, saved.ID, err)
		s.notify(ctx, interfaces.SeverityError, msgSaveFailure)
		return CommitResult{}, err
	}
	s.Reset(reloaded, deps)

	result.Details = reloaded
	result.Dependents = deps
	log.Printf("[dependents][session] commit success case_id=%s record_id=%s created=%d updated=%d failed=%d", caseID, saved.ID, result.Created, len(result.Updates)-len(result.FailedUpdates()), len(result.FailedUpdates()))

	s.notify(ctx, interfaces.SeverityInfo, msgSaveSuccess)
	if onDone != nil {
		onDone(result)
	}
	return result, nil
}

func (s *DependentSession) saveDetails(ctx context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error) {
	if d.ID == "" {
		created, err := s.details.Create(ctx, d)
		if err != nil {
			return entities.PermanentResidenceDetails{}, fmt.Errorf("%w: %w", ErrPermanentResidenceSaveFail, err)
		}
		return created, nil
	}

	updated, err := s.details.Update(ctx, d)
	if err != nil {
		return entities.PermanentResidenceDetails{}, fmt.Errorf("%w: %w", ErrPermanentResidenceSaveFail, err)
	}
	if updated.ID == "" {
		return entities.PermanentResidenceDetails{}, ErrPermanentResidenceNotFound
	}
	return updated, nil
}

func (s *DependentSession) reload(ctx context.Context, recordID string) (entities.PermanentResidenceDetails, []entities.Dependent, error) {
	details, err := s.details.GetByID(ctx, recordID)
	if err != nil {
		return entities.PermanentResidenceDetails{}, nil, fmt.Errorf("%w: %w", ErrPermanentResidenceReadFail, err)
	}
	if details.ID == "" {
		return entities.PermanentResidenceDetails{}, nil, ErrPermanentResidenceNotFound
	}
	deps, err := s.dependents.ListByPermanentResidenceID(ctx, recordID)
	if err != nil {
		return entities.PermanentResidenceDetails{}, nil, fmt.Errorf("%w: %w", ErrPermanentResidenceReadFail, err)
	}
	return details, deps, nil
}

func (s *DependentSession) partition() (toCreate, toUpdate []entities.Dependent) {
	for _, d := range s.drafts {
		dep := entities.Dependent{
			ID:                   d.ID,
			LastName:             strings.TrimSpace(d.LastName),
			FirstName:            strings.TrimSpace(d.FirstName),
			Age:                  entities.ParseAge(d.Age),
			PermanentResidenceID: s.recordID,
		}
		if d.ID.IsTemporary() {
			toCreate = append(toCreate, dep)
		} else {
			toUpdate = append(toUpdate, dep)
		}
	}
	return toCreate, toUpdate
}

func (s *DependentSession) recount() {
	spouse := strings.TrimSpace(s.spouseFirstName) != "" || strings.TrimSpace(s.spouseLastName) != ""
	s.personCount = entities.PersonCount(spouse, len(s.drafts))
}

func (s *DependentSession) notify(ctx context.Context, severity interfaces.Severity, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, severity, msg)
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

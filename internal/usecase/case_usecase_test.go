package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"
	mock_interfaces "portail_immigration/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type caseMocks struct {
	repo     *mock_interfaces.MockICaseRepository
	docs     *mock_interfaces.MockIDocumentRepository
	docTypes *mock_interfaces.MockIDocumentTypeRepository
	history  *mock_interfaces.MockIHistoryRepository
	mailer   *mock_interfaces.MockIMailer
}

func newCaseUseCase(t *testing.T) (*CaseUseCase, caseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := caseMocks{
		repo:     mock_interfaces.NewMockICaseRepository(ctrl),
		docs:     mock_interfaces.NewMockIDocumentRepository(ctrl),
		docTypes: mock_interfaces.NewMockIDocumentTypeRepository(ctrl),
		history:  mock_interfaces.NewMockIHistoryRepository(ctrl),
		mailer:   mock_interfaces.NewMockIMailer(ctrl),
	}
	return NewCaseUseCase(m.repo, m.docs, m.docTypes, m.history, m.mailer), m
}

func TestCaseUseCase_OpenCase(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid candidate", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil)
		_, _, err := uc.OpenCase(ctx, OpenCaseInput{CandidateID: " ", VisaCategory: entities.VisaCategoryTravail})
		if !errors.Is(err, ErrInvalidCandidateID) {
			t.Fatalf("expected ErrInvalidCandidateID, got %v", err)
		}
	})

	t.Run("invalid visa category", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil)
		_, _, err := uc.OpenCase(ctx, OpenCaseInput{CandidateID: "cand-1", VisaCategory: "etudiant"})
		if !errors.Is(err, ErrInvalidVisaCategory) {
			t.Fatalf("expected ErrInvalidVisaCategory, got %v", err)
		}
	})

	t.Run("creates one pending document per type", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		types := []entities.DocumentType{
			{ID: "passport", Name: "Passeport", Required: true, VisaCategory: entities.VisaCategoryTravail},
			{ID: "cv", Name: "CV", Required: false, VisaCategory: entities.VisaCategoryTravail},
		}
		m.docTypes.EXPECT().ListByVisaCategory(gomock.Any(), entities.VisaCategoryTravail).Return(types, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Case{})).DoAndReturn(
			func(_ context.Context, c entities.Case) (entities.Case, error) {
				if c.ID == "" || c.Status != entities.CaseStatusEnCours || c.CandidateID != "cand-1" || c.SubmittedAt.IsZero() {
					t.Fatalf("unexpected case: %+v", c)
				}
				return c, nil
			})
		m.docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Status != entities.DocumentStatusEnAttente || d.FileRef != nil || d.CaseID == "" {
					t.Fatalf("unexpected document: %+v", d)
				}
				return d, nil
			}).Times(2)

		c, docs, err := uc.OpenCase(ctx, OpenCaseInput{CandidateID: " cand-1 ", VisaCategory: entities.VisaCategoryTravail})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 || docs[0].Type == nil || docs[0].Type.ID != "passport" || docs[1].Type.ID != "cv" {
			t.Fatalf("unexpected documents: %+v", docs)
		}
		if docs[0].CaseID != c.ID {
			t.Fatalf("document not linked to case")
		}
	})
}

func TestCaseUseCase_GetProgress(t *testing.T) {
	ctx := context.Background()
	ref := "cases/case-1/documents/d1/x.pdf"

	t.Run("not found", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{}, nil)
		if _, err := uc.GetProgress(ctx, "case-1"); !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.GetProgress(ctx, ""); !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("resolves types and computes", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusEnCours, VisaCategory: entities.VisaCategoryTravail}, nil)
		m.docs.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return([]entities.Document{
			{ID: "d1", DocumentTypeID: "passport", FileRef: &ref},
			{ID: "d2", DocumentTypeID: "diploma"},
			{ID: "d3", DocumentTypeID: "diploma2", FileRef: &ref},
			{ID: "d4", DocumentTypeID: "letter"},
			{ID: "d5", DocumentTypeID: "cv", FileRef: &ref},
		}, nil)
		m.docTypes.EXPECT().ListByVisaCategory(gomock.Any(), entities.VisaCategoryTravail).Return([]entities.DocumentType{
			{ID: "passport", Required: true},
			{ID: "diploma", Required: true},
			{ID: "diploma2", Required: true},
			{ID: "letter", Required: true},
			{ID: "cv", Required: false},
		}, nil)

		p, err := uc.GetProgress(ctx, "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Required != 4 || p.Submitted != 2 || p.Percent != 50 {
			t.Fatalf("unexpected progress: required=%d submitted=%d percent=%d", p.Required, p.Submitted, p.Percent)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)
		m.docs.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(nil, errors.New("db"))
		if _, err := uc.GetProgress(ctx, "case-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCaseUseCase_UpdateNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().UpdateNotes(gomock.Any(), "case-1", "x").Return(entities.Case{}, nil)
		if _, err := uc.UpdateNotes(ctx, " case-1 ", "x"); !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("allowed after terminal status", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().UpdateNotes(gomock.Any(), "case-1", "suivi").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusComplete, Notes: "suivi"}, nil)
		c, err := uc.UpdateNotes(ctx, "case-1", "suivi")
		if err != nil || c.Notes != "suivi" {
			t.Fatalf("unexpected result: %+v %v", c, err)
		}
	})
}

func TestCaseUseCase_Approve(t *testing.T) {
	ctx := context.Background()
	pending := entities.Case{
		ID:                   "case-1",
		CandidateID:          "cand-1",
		CandidateEmail:       "a@example.com",
		IdentificationNumber: "ID-2024-001",
		Status:               entities.CaseStatusEnAttente,
	}
	approved := pending
	approved.Status = entities.CaseStatusApprouve

	t.Run("invalid user", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.Approve(ctx, "case-1", " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("terminal status cannot be approved", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		done := pending
		done.Status = entities.CaseStatusComplete
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(done, nil)
		if _, err := uc.Approve(ctx, "case-1", "admin-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusApprouve).Return(approved, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.History) (entities.History, error) {
				if h.CandidateID != "cand-1" || h.UserID != "admin-1" || h.Action != entities.HistoryActionProfileApproved || h.Date.IsZero() {
					t.Fatalf("unexpected history: %+v", h)
				}
				return h, nil
			})
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e interfaces.Email) error {
				if e.To != "a@example.com" || !strings.Contains(e.Body, "ID-2024-001") {
					t.Fatalf("unexpected email: %+v", e)
				}
				return nil
			})

		res, err := uc.Approve(ctx, "case-1", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.HistoryWritten || !res.EmailSent || res.Case.Status != entities.CaseStatusApprouve {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("email failure keeps status", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusApprouve).Return(approved, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.History) (entities.History, error) { return h, nil })
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("ses"))

		res, err := uc.Approve(ctx, "case-1", "admin-1")
		if !errors.Is(err, ErrApprovalEmailFailed) {
			t.Fatalf("expected ErrApprovalEmailFailed, got %v", err)
		}
		if res.Case.Status != entities.CaseStatusApprouve || !res.HistoryWritten || res.EmailSent {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("history failure", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusApprouve).Return(approved, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.History{}, errors.New("db"))

		res, err := uc.Approve(ctx, "case-1", "admin-1")
		if !errors.Is(err, ErrApprovalHistoryFailed) {
			t.Fatalf("expected ErrApprovalHistoryFailed, got %v", err)
		}
		if res.Case.Status != entities.CaseStatusApprouve {
			t.Fatalf("expected status kept")
		}
	})

	t.Run("missing mailer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil, history, nil)
		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusApprouve).Return(approved, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.History{ID: "h"}, nil)

		if _, err := uc.Approve(ctx, "case-1", "admin-1"); !errors.Is(err, ErrMailerNotConfigured) {
			t.Fatalf("expected ErrMailerNotConfigured, got %v", err)
		}
	})
}

func TestCaseUseCase_GetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newCaseUseCase(t)
		if _, err := uc.GetByID(ctx, "  "); !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("missing case", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-9").Return(entities.Case{}, nil)
		if _, err := uc.GetByID(ctx, "case-9"); !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("list passes through", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().List(gomock.Any()).Return([]entities.Case{{ID: "case-1"}, {ID: "case-2"}}, nil)
		cases, err := uc.List(ctx)
		if err != nil || len(cases) != 2 {
			t.Fatalf("unexpected result: %v %v", cases, err)
		}
	})

	t.Run("documents carry their type", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		c := entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryVisiteur}
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		m.docs.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return([]entities.Document{
			{ID: "doc-1", DocumentTypeID: "vis-passport"},
			{ID: "doc-2", DocumentTypeID: "retired-type"},
		}, nil)
		m.docTypes.EXPECT().ListByVisaCategory(gomock.Any(), entities.VisaCategoryVisiteur).Return([]entities.DocumentType{
			{ID: "vis-passport", Name: "Passeport", Required: true, VisaCategory: entities.VisaCategoryVisiteur},
		}, nil)

		docs, err := uc.ListDocuments(ctx, "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if docs[0].Type == nil || docs[0].Type.Name != "Passeport" {
			t.Fatalf("expected resolved type, got %+v", docs[0])
		}
		if docs[1].Type != nil {
			t.Fatalf("unknown type should stay unresolved, got %+v", docs[1].Type)
		}
	})
}

func TestCaseUseCase_History(t *testing.T) {
	ctx := context.Background()

	t.Run("missing case", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-9").Return(entities.Case{}, nil)
		if _, err := uc.History(ctx, "case-9"); !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("candidate entries oldest first", func(t *testing.T) {
		uc, m := newCaseUseCase(t)
		early := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		late := early.Add(48 * time.Hour)
		m.repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", CandidateID: "cand-1"}, nil)
		m.history.EXPECT().ListByCandidateID(gomock.Any(), "cand-1").Return([]entities.History{
			{ID: "h2", Date: late},
			{ID: "h1", Date: early},
		}, nil)

		entries, err := uc.History(ctx, "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 || entries[0].ID != "h1" || entries[1].ID != "h2" {
			t.Fatalf("unexpected order: %+v", entries)
		}
	})
}

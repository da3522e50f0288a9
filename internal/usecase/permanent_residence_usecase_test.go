package usecase

import (
	"context"
	"errors"
	"testing"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"
	mock_interfaces "portail_immigration/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPermanentResidenceUseCase_OpenSession(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid case id", func(t *testing.T) {
		uc := NewPermanentResidenceUseCase(nil, nil, nil)
		if _, err := uc.OpenSession(ctx, " ", nil); !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("wrong visa category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewPermanentResidenceUseCase(cases, nil, nil)
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryVisiteur}, nil)

		if _, err := uc.OpenSession(ctx, "case-1", nil); !errors.Is(err, ErrNotPermanentResidenceCase) {
			t.Fatalf("expected ErrNotPermanentResidenceCase, got %v", err)
		}
	})

	t.Run("no record yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		uc := NewPermanentResidenceUseCase(cases, details, nil)
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryResidencePermanente}, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{}, nil)

		s, err := uc.OpenSession(ctx, "case-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.RecordID() != "" || s.PersonCount() != 1 || s.Len() != 0 {
			t.Fatalf("unexpected empty session: %+v", s.Snapshot())
		}
	})

	t.Run("loads baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		deps := mock_interfaces.NewMockIDependentRepository(ctrl)
		uc := NewPermanentResidenceUseCase(cases, details, deps)
		spouse := "Marie"
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryResidencePermanente}, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{ID: "pr-1", CaseID: "case-1", Program: entities.ProgramArrima, SpouseFirstName: &spouse, PersonCount: 99}, nil)
		deps.EXPECT().ListByPermanentResidenceID(gomock.Any(), "pr-1").Return([]entities.Dependent{
			{ID: entities.PersistentDependentID("dep-1"), FirstName: "Léa", Age: 7},
		}, nil)

		s, err := uc.OpenSession(ctx, "case-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap := s.Snapshot()
		if snap.RecordID != "pr-1" || snap.SpouseFirstName != "Marie" || snap.Dependents[0].Age != "7" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		// stored count is never trusted
		if snap.PersonCount != 3 {
			t.Fatalf("expected recomputed count 3, got %d", snap.PersonCount)
		}
	})
}

func TestPermanentResidenceUseCase_Save(t *testing.T) {
	ctx := context.Background()
	prCase := entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryResidencePermanente}

	t.Run("invalid program", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		uc := NewPermanentResidenceUseCase(cases, details, nil)
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(prCase, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{}, nil)

		if _, err := uc.Save(ctx, "case-1", PermanentResidenceInput{Program: "PEQ"}, nil); !errors.Is(err, ErrInvalidProgram) {
			t.Fatalf("expected ErrInvalidProgram, got %v", err)
		}
	})

	t.Run("first save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		deps := mock_interfaces.NewMockIDependentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPermanentResidenceUseCase(cases, details, deps)

		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(prCase, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{}, nil)
		details.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error) {
				if d.PersonCount != 3 || d.SpouseLastName == nil || d.SpousePassport != nil {
					t.Fatalf("unexpected details: %+v", d)
				}
				d.ID = "pr-1"
				return d, nil
			})
		deps.EXPECT().CreateBatch(gomock.Any(), "pr-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in []entities.Dependent) ([]entities.Dependent, error) {
				if len(in) != 1 || in[0].Age != 12 {
					t.Fatalf("unexpected batch: %+v", in)
				}
				return []entities.Dependent{{ID: entities.PersistentDependentID("dep-1"), Age: 12, PermanentResidenceID: "pr-1"}}, nil
			})
		details.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.PermanentResidenceDetails{ID: "pr-1", CaseID: "case-1", Program: entities.ProgramArrima, PersonCount: 3}, nil)
		deps.EXPECT().ListByPermanentResidenceID(gomock.Any(), "pr-1").Return([]entities.Dependent{{ID: entities.PersistentDependentID("dep-1"), Age: 12, PermanentResidenceID: "pr-1"}}, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

		tempID, _ := entities.ParseDependentID("temp-client-1")
		res, err := uc.Save(ctx, "case-1", PermanentResidenceInput{
			Program:        entities.ProgramArrima,
			SpouseLastName: "Roy",
			Dependents:     []DependentDraft{{ID: tempID, Age: "12"}},
		}, notifier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Created != 1 || res.Details.ID != "pr-1" || res.Dependents[0].ID.IsTemporary() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("foreign persistent id rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		deps := mock_interfaces.NewMockIDependentRepository(ctrl)
		uc := NewPermanentResidenceUseCase(cases, details, deps)

		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(prCase, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{ID: "pr-1", CaseID: "case-1", Program: entities.ProgramArrima}, nil)
		deps.EXPECT().ListByPermanentResidenceID(gomock.Any(), "pr-1").Return([]entities.Dependent{{ID: entities.PersistentDependentID("dep-1")}}, nil)

		_, err := uc.Save(ctx, "case-1", PermanentResidenceInput{
			Program:    entities.ProgramArrima,
			Dependents: []DependentDraft{{ID: entities.PersistentDependentID("dep-other"), FirstName: "Zoé"}},
		}, nil)
		if !errors.Is(err, ErrDependentNotFound) {
			t.Fatalf("expected ErrDependentNotFound, got %v", err)
		}
	})

	twoStored := func(t *testing.T) (*PermanentResidenceUseCase, *mock_interfaces.MockIPermanentResidenceRepository, *mock_interfaces.MockIDependentRepository) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		deps := mock_interfaces.NewMockIDependentRepository(ctrl)
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(prCase, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.PermanentResidenceDetails{ID: "pr-1", CaseID: "case-1", Program: entities.ProgramArrima}, nil)
		deps.EXPECT().ListByPermanentResidenceID(gomock.Any(), "pr-1").Return([]entities.Dependent{
			{ID: entities.PersistentDependentID("dep-1"), FirstName: "Léa", Age: 7, PermanentResidenceID: "pr-1"},
			{ID: entities.PersistentDependentID("dep-2"), FirstName: "Tom", Age: 4, PermanentResidenceID: "pr-1"},
		}, nil)
		details.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		deps.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		deps.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		return NewPermanentResidenceUseCase(cases, details, deps), details, deps
	}

	t.Run("omitted persisted dependent rejected before any write", func(t *testing.T) {
		uc, _, _ := twoStored(t)

		_, err := uc.Save(ctx, "case-1", PermanentResidenceInput{
			Program:    entities.ProgramArrima,
			Dependents: []DependentDraft{{ID: entities.PersistentDependentID("dep-1"), FirstName: "Léa", Age: "8"}},
		}, nil)
		if !errors.Is(err, ErrDependentOmitted) {
			t.Fatalf("expected ErrDependentOmitted, got %v", err)
		}
	})

	t.Run("empty dependent list with stored dependents rejected", func(t *testing.T) {
		uc, _, _ := twoStored(t)

		_, err := uc.Save(ctx, "case-1", PermanentResidenceInput{Program: entities.ProgramArrima}, nil)
		if !errors.Is(err, ErrDependentOmitted) {
			t.Fatalf("expected ErrDependentOmitted, got %v", err)
		}
	})

	t.Run("duplicate persisted id rejected before any write", func(t *testing.T) {
		uc, _, _ := twoStored(t)

		_, err := uc.Save(ctx, "case-1", PermanentResidenceInput{
			Program: entities.ProgramArrima,
			Dependents: []DependentDraft{
				{ID: entities.PersistentDependentID("dep-1"), FirstName: "Léa"},
				{ID: entities.PersistentDependentID("dep-1"), FirstName: "Zoé"},
				{ID: entities.PersistentDependentID("dep-2"), FirstName: "Tom"},
			},
		}, nil)
		if !errors.Is(err, ErrDuplicateDependentID) {
			t.Fatalf("expected ErrDuplicateDependentID, got %v", err)
		}
	})

	t.Run("duplicate temporary id rejected before any write", func(t *testing.T) {
		uc, _, _ := twoStored(t)
		tempID, _ := entities.ParseDependentID("temp-client-1")

		_, err := uc.Save(ctx, "case-1", PermanentResidenceInput{
			Program: entities.ProgramArrima,
			Dependents: []DependentDraft{
				{ID: entities.PersistentDependentID("dep-1")},
				{ID: entities.PersistentDependentID("dep-2")},
				{ID: tempID, FirstName: "A"},
				{ID: tempID, FirstName: "B"},
			},
		}, nil)
		if !errors.Is(err, ErrDuplicateDependentID) {
			t.Fatalf("expected ErrDuplicateDependentID, got %v", err)
		}
	})
}

func TestPermanentResidenceUseCase_RemoveDependent(t *testing.T) {
	ctx := context.Background()
	prCase := entities.Case{ID: "case-1", VisaCategory: entities.VisaCategoryResidencePermanente}
	baseline := entities.PermanentResidenceDetails{ID: "pr-1", CaseID: "case-1", Program: entities.ProgramAutre}
	stored := []entities.Dependent{{ID: entities.PersistentDependentID("dep-1")}, {ID: entities.PersistentDependentID("dep-2")}}

	setup := func(t *testing.T) (*PermanentResidenceUseCase, *mock_interfaces.MockIPermanentResidenceRepository, *mock_interfaces.MockIDependentRepository, *mock_interfaces.MockINotifier) {
		ctrl := gomock.NewController(t)
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		details := mock_interfaces.NewMockIPermanentResidenceRepository(ctrl)
		deps := mock_interfaces.NewMockIDependentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(prCase, nil)
		details.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(baseline, nil)
		deps.EXPECT().ListByPermanentResidenceID(gomock.Any(), "pr-1").Return(stored, nil)
		return NewPermanentResidenceUseCase(cases, details, deps), details, deps, notifier
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewPermanentResidenceUseCase(nil, nil, nil)
		if _, err := uc.RemoveDependent(ctx, "case-1", "temp-", nil); !errors.Is(err, entities.ErrInvalidDependentID) {
			t.Fatalf("expected ErrInvalidDependentID, got %v", err)
		}
	})

	t.Run("temporary id never deletes", func(t *testing.T) {
		uc, details, deps, notifier := setup(t)
		deps.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		snap, err := uc.RemoveDependent(ctx, "case-1", "temp-abc", notifier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Dependents) != 2 {
			t.Fatalf("expected untouched baseline")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, details, _, notifier := setup(t)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		if _, err := uc.RemoveDependent(ctx, "case-1", "dep-9", notifier); !errors.Is(err, ErrDependentNotFound) {
			t.Fatalf("expected ErrDependentNotFound, got %v", err)
		}
	})

	t.Run("delete failure keeps stored count", func(t *testing.T) {
		uc, details, deps, notifier := setup(t)
		deps.EXPECT().Delete(gomock.Any(), "dep-2").Return(errors.New("boom"))
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityError, gomock.Any())

		if _, err := uc.RemoveDependent(ctx, "case-1", "dep-2", notifier); !errors.Is(err, ErrDependentDeleteFailed) {
			t.Fatalf("expected ErrDependentDeleteFailed, got %v", err)
		}
	})

	t.Run("count refresh failure is reported", func(t *testing.T) {
		uc, details, deps, notifier := setup(t)
		deps.EXPECT().Delete(gomock.Any(), "dep-2").Return(nil)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PermanentResidenceDetails{}, errors.New("throttled"))
		gomock.InOrder(
			notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityInfo, gomock.Any()),
			notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityError, msgCountFailure),
		)

		snap, err := uc.RemoveDependent(ctx, "case-1", "dep-2", notifier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Dependents) != 1 {
			t.Fatalf("expected dependent removed locally: %+v", snap)
		}
	})

	t.Run("record vanished during refresh is reported", func(t *testing.T) {
		uc, details, deps, notifier := setup(t)
		deps.EXPECT().Delete(gomock.Any(), "dep-2").Return(nil)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PermanentResidenceDetails{}, nil)
		notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityInfo, gomock.Any())
		notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityError, msgCountFailure)

		if _, err := uc.RemoveDependent(ctx, "case-1", "dep-2", notifier); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, details, deps, notifier := setup(t)
		deps.EXPECT().Delete(gomock.Any(), "dep-2").Return(nil)
		details.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error) {
				if d.ID != "pr-1" || d.CaseID != "case-1" || d.PersonCount != 2 {
					t.Fatalf("unexpected details written: %+v", d)
				}
				return d, nil
			})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.SeverityInfo, gomock.Any())

		snap, err := uc.RemoveDependent(ctx, "case-1", "dep-2", notifier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Dependents) != 1 || snap.PersonCount != 2 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}

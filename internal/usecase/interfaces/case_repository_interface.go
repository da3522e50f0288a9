package interfaces

import (
	"context"
	"portail_immigration/internal/domain/entities"
)

// ICaseRepository abstracts DynamoDB persistence for Case.
//
// Read methods return the zero value (empty ID) and a nil error when nothing matches.

type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error)
	UpdateNotes(ctx context.Context, id string, notes string) (entities.Case, error)
}

// IHistoryRepository appends audit entries for candidates.

type IHistoryRepository interface {
	Create(ctx context.Context, h entities.History) (entities.History, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]entities.History, error)
}

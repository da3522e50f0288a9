package interfaces

import (
	"context"
	"portail_immigration/internal/domain/entities"
)

// IPermanentResidenceRepository abstracts the permanent_residence_details table.
//
// Create assigns the identifier. Update returns the zero value when the record does not exist.

type IPermanentResidenceRepository interface {
	Create(ctx context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error)
	Update(ctx context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error)
	GetByID(ctx context.Context, id string) (entities.PermanentResidenceDetails, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.PermanentResidenceDetails, error)
}

// IDependentRepository abstracts the enfants table.
//
// CreateBatch persists every dependent in a single request and returns them with
// persistent identifiers. Temporary identifiers must never reach Update or Delete.

type IDependentRepository interface {
	CreateBatch(ctx context.Context, permanentResidenceID string, dependents []entities.Dependent) ([]entities.Dependent, error)
	Update(ctx context.Context, d entities.Dependent) (entities.Dependent, error)
	Delete(ctx context.Context, id string) error
	ListByPermanentResidenceID(ctx context.Context, permanentResidenceID string) ([]entities.Dependent, error)
}

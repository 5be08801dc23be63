package interfaces

import (
	"context"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// IInspectionRepository abstracts DynamoDB persistence for Inspection.
//
// GetByToken resolves the token-index GSI; an unknown token returns a
// zero-value inspection, indistinguishable from a deleted record.
// GetByCaseID is the case_id-index repair read.
type IInspectionRepository interface {
	Create(ctx context.Context, i entities.Inspection) (entities.Inspection, error)
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	GetByToken(ctx context.Context, token string) (entities.Inspection, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Inspection, error)
	SaveDraft(ctx context.Context, id string, sections []entities.InspectionSection) (entities.Inspection, error)
	Complete(ctx context.Context, id string, sections []entities.InspectionSection, overallScore float64, at time.Time) (entities.Inspection, error)
	Delete(ctx context.Context, id string) error
}

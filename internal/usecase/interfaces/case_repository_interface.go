package interfaces

import (
	"context"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// ICaseRepository abstracts DynamoDB persistence for Case.
//
// There is no optimistic versioning: concurrent writers against the same case
// resolve last-write-wins at the item level. Granular update methods keep
// each transition's write narrow instead of rewriting the whole item.
type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateStage(ctx context.Context, id string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error)
	LinkInspection(ctx context.Context, id, inspectionID string) (entities.Case, error)
	LinkQuote(ctx context.Context, id, quoteID, estimatorUserID string) (entities.Case, error)
	LinkTransaction(ctx context.Context, id, transactionID string) (entities.Case, error)
	SetCompletion(ctx context.Context, id string, status entities.CaseStatus, completion entities.Completion) (entities.Case, error)
	Delete(ctx context.Context, id string) error
}

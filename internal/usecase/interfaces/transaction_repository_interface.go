package interfaces

import (
	"context"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	ConfirmPayoff(ctx context.Context, id string, at time.Time) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// ITimeTrackingRepository abstracts DynamoDB persistence for TimeTracking.
type ITimeTrackingRepository interface {
	Create(ctx context.Context, t entities.TimeTracking) (entities.TimeTracking, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.TimeTracking, error)
	DeleteByCaseID(ctx context.Context, caseID string) error
}

// ISigningSessionRepository abstracts DynamoDB persistence for SigningSession.
type ISigningSessionRepository interface {
	Create(ctx context.Context, s entities.SigningSession) (entities.SigningSession, error)
	GetByToken(ctx context.Context, token string) (entities.SigningSession, error)
	UpdateStatus(ctx context.Context, id string, status entities.SigningSessionStatus) (entities.SigningSession, error)
}

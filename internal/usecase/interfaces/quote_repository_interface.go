package interfaces

import (
	"context"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Quote, error)
	SetEstimator(ctx context.Context, id string, estimator entities.ContactRef, estimatorUserID string) (entities.Quote, error)
	UpdateOffer(ctx context.Context, id string, offerAmount float64, status entities.QuoteStatus) (entities.Quote, error)
	SetDecision(ctx context.Context, id string, decision entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// INotifier abstracts the outbound notification relay. The engine only hands
// over a message descriptor; delivery, templating and retries are the relay's
// concern. A failed Send never fails the transition that triggered it.
type INotifier interface {
	Send(ctx context.Context, n entities.Notification) error
}

// IDocumentRenderer abstracts the document-generation service. It produces a
// file from structured case data and returns a fetchable URL.
type IDocumentRenderer interface {
	RenderCasePDF(ctx context.Context, graph entities.CaseGraph) (string, error)
}

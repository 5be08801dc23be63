package entities

import "time"

// SigningSessionStatus is the lifecycle of a document-signing session. This is
// the only token kind with an expiry; expiry is enforced on access, flipping
// the status to expired.
type SigningSessionStatus string

const (
	SigningStatusPending   SigningSessionStatus = "pending"
	SigningStatusCompleted SigningSessionStatus = "completed"
	SigningStatusExpired   SigningSessionStatus = "expired"
)

// SigningSessionTTL is the default validity window of a signing token.
const SigningSessionTTL = 7 * 24 * time.Hour

// SigningSession is created when paperwork requests a customer signature.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI token-index: token
type SigningSession struct {
	ID            string               `json:"id"`
	CaseID        string               `json:"case_id"`
	TransactionID string               `json:"transaction_id,omitempty"`
	Token         string               `json:"token"`
	Status        SigningSessionStatus `json:"status"`
	ExpiresAt     time.Time            `json:"expires_at"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Expired reports whether the session window has passed at the given instant.
func (s SigningSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

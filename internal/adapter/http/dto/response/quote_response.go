package response

import (
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

type QuoteResponse struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`
	Token  string `json:"token"`

	EstimatorName   string `json:"estimator_name"`
	EstimatorEmail  string `json:"estimator_email"`
	EstimatorPhone  string `json:"estimator_phone,omitempty"`
	EstimatorUserID string `json:"estimator_user_id,omitempty"`

	OfferAmount   float64                 `json:"offer_amount"`
	Status        string                  `json:"status"`
	OfferDecision *entities.OfferDecision `json:"offer_decision,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		CaseID:          q.CaseID,
		Token:           q.Token,
		EstimatorName:   q.Estimator.Name,
		EstimatorEmail:  q.Estimator.Email,
		EstimatorPhone:  q.Estimator.Phone,
		EstimatorUserID: q.EstimatorUserID,
		OfferAmount:     q.OfferAmount,
		Status:          string(q.Status),
		OfferDecision:   q.OfferDecision,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// SigningSessionResponse is served to the customer-facing signing page.
type SigningSessionResponse struct {
	ID            string    `json:"id"`
	CaseID        string    `json:"case_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Token         string    `json:"token"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func FromSigningSession(s entities.SigningSession) SigningSessionResponse {
	return SigningSessionResponse{
		ID:            s.ID,
		CaseID:        s.CaseID,
		TransactionID: s.TransactionID,
		Token:         s.Token,
		Status:        string(s.Status),
		ExpiresAt:     s.ExpiresAt,
	}
}

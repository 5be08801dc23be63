package entities

import "time"

// QuoteStatus tracks the quote document itself, separately from the
// customer's decision on the offer.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusReady    QuoteStatus = "ready"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

// OfferDecisionValue is the customer's response to the offer.
type OfferDecisionValue string

const (
	DecisionPending     OfferDecisionValue = "pending"
	DecisionAccepted    OfferDecisionValue = "accepted"
	DecisionNegotiating OfferDecisionValue = "negotiating"
	DecisionDeclined    OfferDecisionValue = "declined"
)

func ValidDecision(d OfferDecisionValue) bool {
	switch d {
	case DecisionPending, DecisionAccepted, DecisionNegotiating, DecisionDeclined:
		return true
	}
	return false
}

// OfferDecision records the customer's accept/decline/negotiate response.
type OfferDecision struct {
	Decision     OfferDecisionValue `json:"decision"`
	DecisionDate time.Time          `json:"decision_date"`
	CounterOffer float64            `json:"counter_offer,omitempty"`
	FinalAmount  float64            `json:"final_amount,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// Quote is created when an estimator is assigned (stage 3→4) or lazily when
// paperwork needs one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI token-index: token
//   - GSI case_id-index: case_id
type Quote struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`
	Token  string `json:"token"`

	Estimator       ContactRef `json:"estimator"`
	EstimatorUserID string     `json:"estimator_user_id,omitempty"`

	OfferAmount   float64        `json:"offer_amount"`
	Status        QuoteStatus    `json:"status"`
	OfferDecision *OfferDecision `json:"offer_decision,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Decided reports whether a final decision has been recorded. Once true the
// quote is immutable: every write except the decision-recording action itself
// must be rejected.
func (q Quote) Decided() bool {
	if q.Status == QuoteStatusAccepted || q.Status == QuoteStatusDeclined {
		return true
	}
	if q.OfferDecision == nil {
		return false
	}
	return q.OfferDecision.Decision == DecisionAccepted || q.OfferDecision.Decision == DecisionDeclined
}

// DecidedAs returns the recorded decision, for Conflict messages.
func (q Quote) DecidedAs() OfferDecisionValue {
	if q.OfferDecision != nil &&
		(q.OfferDecision.Decision == DecisionAccepted || q.OfferDecision.Decision == DecisionDeclined) {
		return q.OfferDecision.Decision
	}
	switch q.Status {
	case QuoteStatusAccepted:
		return DecisionAccepted
	case QuoteStatusDeclined:
		return DecisionDeclined
	}
	return DecisionPending
}

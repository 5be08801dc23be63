package entities

import "time"

// CaseStatus is the overall disposition of a purchase case.
type CaseStatus string

const (
	CaseStatusNew           CaseStatus = "new"
	CaseStatusActive        CaseStatus = "active"
	CaseStatusScheduled     CaseStatus = "scheduled"
	CaseStatusQuoteReady    CaseStatus = "quote-ready"
	CaseStatusNegotiating   CaseStatus = "negotiating"
	CaseStatusQuoteDeclined CaseStatus = "quote-declined"
	CaseStatusCompleted     CaseStatus = "completed"
	CaseStatusCancelled     CaseStatus = "cancelled"
)

// DocumentRef points at an uploaded file (license, title, signed paperwork).
// Opaque to the workflow engine.
type DocumentRef struct {
	Kind       string    `json:"kind"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Completion holds terminal-state metadata set by complete-case.
type Completion struct {
	ThankYouSent bool      `json:"thank_you_sent"`
	LeaveBehinds []string  `json:"leave_behinds,omitempty"`
	PDFURL       string    `json:"pdf_url,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Case is the aggregate root of one vehicle-purchase workflow instance.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Sub-records are created lazily, at most one each; the case holds the forward
// reference and each sub-record holds case_id as the back reference. The
// engine keeps the two in sync on every create; a crash in between is
// recoverable through the case_id-index repair read.
type Case struct {
	ID string `json:"id"`

	CustomerID    string `json:"customer_id,omitempty"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	InspectionID  string `json:"inspection_id,omitempty"`
	QuoteID       string `json:"quote_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`

	// EstimatorUserID is a best-effort identity link resolved from the
	// estimator's email; the authoritative contact info lives embedded in the
	// Quote.
	EstimatorUserID string `json:"estimator_user_id,omitempty"`

	CurrentStage  int                 `json:"current_stage"`
	StageStatuses map[int]StageStatus `json:"stage_statuses"`
	Status        CaseStatus          `json:"status"`

	Documents  []DocumentRef `json:"documents,omitempty"`
	Completion *Completion   `json:"completion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the case has reached a terminal disposition.
func (c Case) Terminal() bool {
	return c.Status == CaseStatusCompleted || c.Status == CaseStatusCancelled
}

package entities

import "time"

// PayoffStatus tracks the lien payoff on the purchased vehicle.
type PayoffStatus string

const (
	PayoffStatusNone      PayoffStatus = "none"
	PayoffStatusPending   PayoffStatus = "pending"
	PayoffStatusConfirmed PayoffStatus = "confirmed"
)

// BillOfSale carries the paperwork-stage sale details.
type BillOfSale struct {
	SalePrice    float64 `json:"sale_price"`
	SaleDate     string  `json:"sale_date,omitempty"`
	SellerName   string  `json:"seller_name,omitempty"`
	PaymentType  string  `json:"payment_type,omitempty"`
	BankName     string  `json:"bank_name,omitempty"`
	LoanNumber   string  `json:"loan_number,omitempty"`
	PayoffAmount float64 `json:"payoff_amount,omitempty"`
}

// Transaction is created when an offer amount exists or when paperwork is
// first submitted. It is updated in place, never replaced, across the
// paperwork and completion stages.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI case_id-index: case_id
type Transaction struct {
	ID      string `json:"id"`
	CaseID  string `json:"case_id"`
	QuoteID string `json:"quote_id,omitempty"`

	BillOfSale BillOfSale `json:"bill_of_sale"`

	PayoffStatus      PayoffStatus `json:"payoff_status"`
	PayoffConfirmedAt *time.Time   `json:"payoff_confirmed_at,omitempty"`

	SignedDocuments  []DocumentRef `json:"signed_documents,omitempty"`
	SigningSessionID string        `json:"signing_session_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

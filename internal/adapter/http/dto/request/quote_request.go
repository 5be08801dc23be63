package request

type AssignEstimatorRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	UserID string `json:"user_id"`
}

type SubmitQuoteRequest struct {
	OfferAmount float64 `json:"offer_amount" binding:"required"`
}

type DecisionRequest struct {
	Decision     string  `json:"decision" binding:"required"`
	CounterOffer float64 `json:"counter_offer"`
	FinalAmount  float64 `json:"final_amount"`
	Notes        string  `json:"notes"`
}

// PaperworkRequest carries the paperwork-stage writes. OfferAmount, when
// present, amends the quote and is subject to the decision lock.
type PaperworkRequest struct {
	TitleNumber  string `json:"title_number"`
	TitleState   string `json:"title_state"`
	LicensePlate string `json:"license_plate"`
	TitleStatus  string `json:"title_status"`
	LoanOnTitle  bool   `json:"loan_on_title"`

	SaleDate     string  `json:"sale_date"`
	SellerName   string  `json:"seller_name"`
	PaymentType  string  `json:"payment_type"`
	BankName     string  `json:"bank_name"`
	LoanNumber   string  `json:"loan_number"`
	PayoffAmount float64 `json:"payoff_amount"`

	OfferAmount *float64 `json:"offer_amount"`

	RequestSignature bool `json:"request_signature"`
}

package entities

import "time"

// Vehicle is created together with the Case at intake. Title/registration
// fields are filled in later by the paperwork flow.
//
// Storage model (DynamoDB):
//   - PK: id
type Vehicle struct {
	ID       string `json:"id"`
	CaseID   string `json:"case_id"`
	VIN      string `json:"vin,omitempty"`
	Year     int    `json:"year"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Trim     string `json:"trim,omitempty"`
	Color    string `json:"color,omitempty"`
	Odometer int    `json:"odometer,omitempty"`

	// Title/registration details collected during paperwork.
	TitleNumber  string `json:"title_number,omitempty"`
	TitleState   string `json:"title_state,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	TitleStatus  string `json:"title_status,omitempty"`
	LoanOnTitle  bool   `json:"loan_on_title"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

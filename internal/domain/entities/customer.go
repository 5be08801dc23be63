package entities

import "time"

// Customer is created together with the Case at intake and owned by it.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package response

import (
	"strconv"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// CaseResponse projects a Case onto the wire. Stage statuses are keyed by the
// "1".."7" stage numbers.
type CaseResponse struct {
	ID string `json:"id"`

	CustomerID    string `json:"customer_id,omitempty"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	InspectionID  string `json:"inspection_id,omitempty"`
	QuoteID       string `json:"quote_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`

	EstimatorUserID string `json:"estimator_user_id,omitempty"`

	CurrentStage     int               `json:"current_stage"`
	CurrentStageName string            `json:"current_stage_name"`
	StageStatuses    map[string]string `json:"stage_statuses"`
	Status           string            `json:"status"`

	Documents  []entities.DocumentRef `json:"documents,omitempty"`
	Completion *entities.Completion   `json:"completion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCase(c entities.Case) CaseResponse {
	statuses := make(map[string]string, len(c.StageStatuses))
	for stage, st := range c.StageStatuses {
		statuses[strconv.Itoa(stage)] = string(st)
	}
	return CaseResponse{
		ID:               c.ID,
		CustomerID:       c.CustomerID,
		VehicleID:        c.VehicleID,
		InspectionID:     c.InspectionID,
		QuoteID:          c.QuoteID,
		TransactionID:    c.TransactionID,
		EstimatorUserID:  c.EstimatorUserID,
		CurrentStage:     c.CurrentStage,
		CurrentStageName: entities.StageName(c.CurrentStage),
		StageStatuses:    statuses,
		Status:           string(c.Status),
		Documents:        c.Documents,
		Completion:       c.Completion,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCases(cases []entities.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, FromCase(c))
	}
	return out
}

// CasePDFResponse carries the rendered case document location.
type CasePDFResponse struct {
	URL string `json:"url"`
}

// CaseDetailResponse is the full aggregate view served by GET /cases/:caseId.
type CaseDetailResponse struct {
	Case        CaseResponse          `json:"case"`
	Customer    *entities.Customer    `json:"customer,omitempty"`
	Vehicle     *entities.Vehicle     `json:"vehicle,omitempty"`
	Inspection  *InspectionResponse   `json:"inspection,omitempty"`
	Quote       *QuoteResponse        `json:"quote,omitempty"`
	Transaction *entities.Transaction `json:"transaction,omitempty"`
}

func FromCaseGraph(g entities.CaseGraph) CaseDetailResponse {
	out := CaseDetailResponse{
		Case:        FromCase(g.Case),
		Customer:    g.Customer,
		Vehicle:     g.Vehicle,
		Transaction: g.Transaction,
	}
	if g.Inspection != nil {
		insp := FromInspection(*g.Inspection)
		out.Inspection = &insp
	}
	if g.Quote != nil {
		q := FromQuote(*g.Quote)
		out.Quote = &q
	}
	return out
}

package entities

import "time"

// TimeTracking is a best-effort bookkeeping row recorded when a transition
// moves the active stage. It never gates a transition; failures to write it
// are logged and dropped.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI case_id-index: case_id
type TimeTracking struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	Stage     int       `json:"stage"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Seconds   int64     `json:"seconds"`
}

package entities

// NotificationKind identifies the template the delivery relay should use.
type NotificationKind string

const (
	NotifyCaseCreated         NotificationKind = "case-created"
	NotifyAdminBroadcast      NotificationKind = "admin-broadcast"
	NotifyInspectorAssigned   NotificationKind = "inspector-assigned"
	NotifyInspectionSubmitted NotificationKind = "inspection-submitted"
	NotifyEstimatorAssigned   NotificationKind = "estimator-assigned"
	NotifyQuoteReady          NotificationKind = "quote-ready"
	NotifyDecisionRecorded    NotificationKind = "decision-recorded"
	NotifyThankYou            NotificationKind = "thank-you"
)

// Notification is the message descriptor handed to the delivery relay.
// Template content is the relay's concern, not the engine's.
type Notification struct {
	Kind      NotificationKind  `json:"kind"`
	Recipient string            `json:"recipient,omitempty"`
	CaseID    string            `json:"case_id"`
	Data      map[string]string `json:"data,omitempty"`
}

// CaseGraph bundles a case with its linked sub-records; it is the unit of
// consistency the engine reasons about and the payload handed to the document
// renderer.
type CaseGraph struct {
	Case        Case         `json:"case"`
	Customer    *Customer    `json:"customer,omitempty"`
	Vehicle     *Vehicle     `json:"vehicle,omitempty"`
	Inspection  *Inspection  `json:"inspection,omitempty"`
	Quote       *Quote       `json:"quote,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

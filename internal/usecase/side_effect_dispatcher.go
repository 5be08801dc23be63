package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
)

// SideEffectDispatcher fires notification and document-generation calls after
// a transition has committed. Contract: a side-effect failure never fails or
// rolls back the originating transition. Each external call is attempted once
// and its failure logged; retries, if any, belong to the collaborators.
type SideEffectDispatcher struct {
	notifier interfaces.INotifier
	renderer interfaces.IDocumentRenderer
	baseURL  string
}

func NewSideEffectDispatcher(notifier interfaces.INotifier, renderer interfaces.IDocumentRenderer, baseURL string) *SideEffectDispatcher {
	return &SideEffectDispatcher{notifier: notifier, renderer: renderer, baseURL: baseURL}
}

func (d *SideEffectDispatcher) send(ctx context.Context, n entities.Notification) {
	if d == nil || d.notifier == nil {
		return
	}
	if err := d.notifier.Send(ctx, n); err != nil {
		log.Printf("[case][dispatch] notification failed kind=%s case_id=%s err=%v", n.Kind, n.CaseID, err)
	}
}

func (d *SideEffectDispatcher) CaseCreated(ctx context.Context, c entities.Case, customer entities.Customer) {
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyCaseCreated,
		Recipient: customer.Email,
		CaseID:    c.ID,
		Data:      map[string]string{"customer_name": customer.FirstName + " " + customer.LastName},
	})
	d.send(ctx, entities.Notification{
		Kind:   entities.NotifyAdminBroadcast,
		CaseID: c.ID,
		Data:   map[string]string{"event": "case-created"},
	})
}

func (d *SideEffectDispatcher) InspectionScheduled(ctx context.Context, c entities.Case, i entities.Inspection) {
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyInspectorAssigned,
		Recipient: i.Inspector.Email,
		CaseID:    c.ID,
		Data: map[string]string{
			"inspection_link": fmt.Sprintf("%s/inspections/%s", d.baseURL, i.Token),
			"scheduled_date":  i.ScheduledDate,
			"scheduled_time":  i.ScheduledTime,
		},
	})
}

func (d *SideEffectDispatcher) InspectionSubmitted(ctx context.Context, c entities.Case, i entities.Inspection, customerEmail string) {
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyInspectionSubmitted,
		Recipient: customerEmail,
		CaseID:    c.ID,
		Data:      map[string]string{"overall_score": fmt.Sprintf("%.1f", i.OverallScore)},
	})
	d.send(ctx, entities.Notification{
		Kind:   entities.NotifyAdminBroadcast,
		CaseID: c.ID,
		Data:   map[string]string{"event": "inspection-submitted"},
	})
}

func (d *SideEffectDispatcher) EstimatorAssigned(ctx context.Context, c entities.Case, q entities.Quote) {
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyEstimatorAssigned,
		Recipient: q.Estimator.Email,
		CaseID:    c.ID,
		Data:      map[string]string{"quote_link": fmt.Sprintf("%s/quotes/%s", d.baseURL, q.Token)},
	})
}

func (d *SideEffectDispatcher) QuoteSubmitted(ctx context.Context, c entities.Case, q entities.Quote, customerEmail string) {
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyQuoteReady,
		Recipient: customerEmail,
		CaseID:    c.ID,
		Data:      map[string]string{"offer_amount": fmt.Sprintf("%.2f", q.OfferAmount)},
	})
}

func (d *SideEffectDispatcher) DecisionRecorded(ctx context.Context, c entities.Case, q entities.Quote) {
	decision := entities.DecisionPending
	if q.OfferDecision != nil {
		decision = q.OfferDecision.Decision
	}
	d.send(ctx, entities.Notification{
		Kind:   entities.NotifyDecisionRecorded,
		CaseID: c.ID,
		Data:   map[string]string{"decision": string(decision)},
	})
}

// RenderCasePDF renders on demand for the PDF read endpoint. Unlike the
// transition side effects, the caller sees the error.
func (d *SideEffectDispatcher) RenderCasePDF(ctx context.Context, graph entities.CaseGraph) (string, error) {
	if d == nil || d.renderer == nil {
		return "", nil
	}
	return d.renderer.RenderCasePDF(ctx, graph)
}

// CaseCompleted renders the case PDF and sends the thank-you notification.
// Rendering failure is swallowed like any other side effect; the returned URL
// is empty in that case and completion proceeds without it.
func (d *SideEffectDispatcher) CaseCompleted(ctx context.Context, graph entities.CaseGraph) string {
	pdfURL := ""
	if d != nil && d.renderer != nil {
		url, err := d.renderer.RenderCasePDF(ctx, graph)
		if err != nil {
			log.Printf("[case][dispatch] pdf render failed case_id=%s err=%v", graph.Case.ID, err)
		} else {
			pdfURL = url
		}
	}

	email := ""
	if graph.Customer != nil {
		email = graph.Customer.Email
	}
	d.send(ctx, entities.Notification{
		Kind:      entities.NotifyThankYou,
		Recipient: email,
		CaseID:    graph.Case.ID,
		Data:      map[string]string{"pdf_url": pdfURL},
	})
	return pdfURL
}

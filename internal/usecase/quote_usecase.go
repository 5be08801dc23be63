package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteDecided       = errors.New("quote already decided")
	ErrInvalidOfferAmount = errors.New("invalid offer amount")
	ErrInvalidDecision    = errors.New("invalid offer decision")
	ErrSigningNotFound    = errors.New("signing session not found")
	ErrInvalidEstimator   = errors.New("invalid estimator")
	ErrInvalidQuoteRef    = errors.New("invalid quote reference")
)

// QuoteRef addresses a quote either by its access token (external estimator)
// or by case id (authenticated staff). Exactly one must be set.
type QuoteRef struct {
	Token  string
	CaseID string
}

type DecisionInput struct {
	Decision     entities.OfferDecisionValue
	CounterOffer float64
	FinalAmount  float64
	Notes        string
}

// PaperworkInput carries the paperwork-stage writes: vehicle title fields,
// bill-of-sale/bank/payoff data, an optional offer amendment (which goes
// through the decision guard) and an optional signature request.
type PaperworkInput struct {
	TitleNumber  string
	TitleState   string
	LicensePlate string
	TitleStatus  string
	LoanOnTitle  bool

	SaleDate     string
	SellerName   string
	PaymentType  string
	BankName     string
	LoanNumber   string
	PayoffAmount float64

	OfferAmount *float64

	RequestSignature bool
}

type IQuoteUseCase interface {
	AssignEstimator(ctx context.Context, caseID string, estimator entities.ContactRef, estimatorUserID string) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Quote, error)
	SubmitOffer(ctx context.Context, ref QuoteRef, offerAmount float64) (entities.Quote, error)
	RecordDecision(ctx context.Context, ref QuoteRef, in DecisionInput) (entities.Quote, error)
	SavePaperwork(ctx context.Context, ref QuoteRef, in PaperworkInput) (entities.Transaction, error)
	GetSigningSession(ctx context.Context, token string) (entities.SigningSession, error)
}

type QuoteUseCase struct {
	quotes       interfaces.IQuoteRepository
	cases        interfaces.ICaseRepository
	customers    interfaces.ICustomerRepository
	vehicles     interfaces.IVehicleRepository
	transactions interfaces.ITransactionRepository
	signing      interfaces.ISigningSessionRepository
	timeTracking interfaces.ITimeTrackingRepository
	dispatcher   *SideEffectDispatcher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	cases interfaces.ICaseRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	transactions interfaces.ITransactionRepository,
	signing interfaces.ISigningSessionRepository,
	timeTracking interfaces.ITimeTrackingRepository,
	dispatcher *SideEffectDispatcher,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:       quotes,
		cases:        cases,
		customers:    customers,
		vehicles:     vehicles,
		transactions: transactions,
		signing:      signing,
		timeTracking: timeTracking,
		dispatcher:   dispatcher,
	}
}

// AssignEstimator is an idempotent find-or-create: however many concurrent
// calls race, one quote exists per case and the case back-reference ends up
// pointing at it.
func (u *QuoteUseCase) AssignEstimator(ctx context.Context, caseID string, estimator entities.ContactRef, estimatorUserID string) (entities.Quote, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Quote{}, ErrInvalidCaseID
	}
	if estimator.Empty() {
		return entities.Quote{}, ErrInvalidEstimator
	}

	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return entities.Quote{}, err
	}
	if c.ID == "" {
		return entities.Quote{}, ErrCaseNotFound
	}

	q, err := u.quotes.GetByCaseID(ctx, c.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		now := time.Now().UTC()
		q = entities.Quote{
			ID:              uuid.NewString(),
			CaseID:          c.ID,
			Token:           pkg.NewEntityToken(),
			Estimator:       estimator,
			EstimatorUserID: estimatorUserID,
			Status:          entities.QuoteStatusDraft,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		q, err = u.quotes.Create(ctx, q)
		if err != nil {
			return entities.Quote{}, err
		}
	} else {
		q, err = u.quotes.SetEstimator(ctx, q.ID, estimator, estimatorUserID)
		if err != nil {
			return entities.Quote{}, err
		}
	}

	if c.QuoteID == "" || c.QuoteID != q.ID {
		if _, err := u.cases.LinkQuote(ctx, c.ID, q.ID, estimatorUserID); err != nil {
			return entities.Quote{}, err
		}
	}

	u.dispatcher.EstimatorAssigned(ctx, c, q)

	return q, nil
}

func (u *QuoteUseCase) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	return u.resolve(ctx, QuoteRef{Token: token})
}

func (u *QuoteUseCase) GetByCaseID(ctx context.Context, caseID string) (entities.Quote, error) {
	return u.resolve(ctx, QuoteRef{CaseID: caseID})
}

// SubmitOffer sets the offer amount and flips the quote to ready, behind the
// decision guard. The sale price is derived onto the case's transaction,
// creating it when the offer is the first financial fact on the case.
func (u *QuoteUseCase) SubmitOffer(ctx context.Context, ref QuoteRef, offerAmount float64) (entities.Quote, error) {
	if offerAmount <= 0 {
		return entities.Quote{}, ErrInvalidOfferAmount
	}

	q, err := u.resolve(ctx, ref)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Decided() {
		return entities.Quote{}, decidedErr(q)
	}

	updated, err := u.quotes.UpdateOffer(ctx, q.ID, offerAmount, entities.QuoteStatusReady)
	if err != nil {
		return entities.Quote{}, err
	}

	c, err := u.cases.GetByID(ctx, q.CaseID)
	if err != nil {
		return entities.Quote{}, err
	}
	if c.ID == "" {
		return entities.Quote{}, ErrCaseNotFound
	}

	if _, err := u.attachSalePrice(ctx, c, updated); err != nil {
		return entities.Quote{}, err
	}

	customerEmail := u.customerEmail(ctx, c)
	u.dispatcher.QuoteSubmitted(ctx, c, updated, customerEmail)

	return updated, nil
}

// RecordDecision records the customer's response. It is an idempotent
// overwrite by design: the decision guard does not apply here.
func (u *QuoteUseCase) RecordDecision(ctx context.Context, ref QuoteRef, in DecisionInput) (entities.Quote, error) {
	if !entities.ValidDecision(in.Decision) {
		return entities.Quote{}, ErrInvalidDecision
	}

	q, err := u.resolve(ctx, ref)
	if err != nil {
		return entities.Quote{}, err
	}

	c, err := u.cases.GetByID(ctx, q.CaseID)
	if err != nil {
		return entities.Quote{}, err
	}
	if c.ID == "" {
		return entities.Quote{}, ErrCaseNotFound
	}

	now := time.Now().UTC()
	decision := entities.OfferDecision{
		Decision:     in.Decision,
		DecisionDate: now,
		CounterOffer: in.CounterOffer,
		FinalAmount:  in.FinalAmount,
		Notes:        in.Notes,
	}
	if decision.Decision == entities.DecisionAccepted && decision.FinalAmount == 0 {
		if decision.CounterOffer > 0 {
			decision.FinalAmount = decision.CounterOffer
		} else {
			decision.FinalAmount = q.OfferAmount
		}
	}

	// The case update tuple is always initialized from the current state
	// before branching; each branch overwrites what it needs.
	nextStage := c.CurrentStage
	nextStatuses := c.StageStatuses
	nextStatus := c.Status
	writeCase := false

	quoteStatus := q.Status
	switch decision.Decision {
	case entities.DecisionAccepted:
		quoteStatus = entities.QuoteStatusAccepted
		nextStage = entities.StageQuote
		nextStatus = entities.CaseStatusNegotiating
		writeCase = true
	case entities.DecisionDeclined:
		quoteStatus = entities.QuoteStatusDeclined
		nextStage = entities.StagePaperwork
		nextStatuses = entities.AdvanceStages(c.StageStatuses, entities.StageQuote, entities.StagePaperwork)
		nextStatus = entities.CaseStatusQuoteDeclined
		writeCase = true
	case entities.DecisionNegotiating:
		nextStatus = entities.CaseStatusNegotiating
		writeCase = true
	case entities.DecisionPending:
		// Recorded on the quote only; the case is untouched.
	}

	updated, err := u.quotes.SetDecision(ctx, q.ID, decision, quoteStatus)
	if err != nil {
		return entities.Quote{}, err
	}
	// The conditional write reports a quote deleted between resolve and write
	// as a zero value; surface it before touching the case.
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if writeCase {
		c, err = u.cases.UpdateStage(ctx, c.ID, nextStage, nextStatuses, nextStatus)
		if err != nil {
			return entities.Quote{}, err
		}
		if decision.Decision == entities.DecisionDeclined {
			recordStageTime(ctx, u.timeTracking, c, entities.StageQuote, now)
		}
	}

	u.dispatcher.DecisionRecorded(ctx, c, updated)

	return updated, nil
}

// SavePaperwork updates the vehicle's title fields and the transaction's
// bill-of-sale/bank/payoff data. An offer amendment riding along goes through
// the decision guard; everything else is untouched by it.
func (u *QuoteUseCase) SavePaperwork(ctx context.Context, ref QuoteRef, in PaperworkInput) (entities.Transaction, error) {
	q, err := u.resolveForPaperwork(ctx, ref, in)
	if err != nil {
		return entities.Transaction{}, err
	}

	caseID := ref.CaseID
	if q.ID != "" {
		caseID = q.CaseID
	}
	c, err := u.cases.GetByID(ctx, strings.TrimSpace(caseID))
	if err != nil {
		return entities.Transaction{}, err
	}
	if c.ID == "" {
		return entities.Transaction{}, ErrCaseNotFound
	}
	if c.VehicleID == "" {
		return entities.Transaction{}, ErrCaseMissingVehicle
	}

	if in.OfferAmount != nil {
		if q.ID == "" {
			return entities.Transaction{}, ErrQuoteNotFound
		}
		if q.Decided() {
			return entities.Transaction{}, decidedErr(q)
		}
		if *in.OfferAmount <= 0 {
			return entities.Transaction{}, ErrInvalidOfferAmount
		}
		q, err = u.quotes.UpdateOffer(ctx, q.ID, *in.OfferAmount, q.Status)
		if err != nil {
			return entities.Transaction{}, err
		}
	}

	veh, err := u.vehicles.GetByID(ctx, c.VehicleID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if veh.ID == "" {
		return entities.Transaction{}, ErrCaseMissingVehicle
	}
	veh.TitleNumber = in.TitleNumber
	veh.TitleState = in.TitleState
	veh.LicensePlate = in.LicensePlate
	veh.TitleStatus = in.TitleStatus
	veh.LoanOnTitle = in.LoanOnTitle
	veh.UpdatedAt = time.Now().UTC()
	if _, err := u.vehicles.Update(ctx, veh); err != nil {
		return entities.Transaction{}, err
	}

	tx, err := u.findOrCreateTransaction(ctx, c, q)
	if err != nil {
		return entities.Transaction{}, err
	}

	tx.BillOfSale.SaleDate = in.SaleDate
	tx.BillOfSale.SellerName = in.SellerName
	tx.BillOfSale.PaymentType = in.PaymentType
	tx.BillOfSale.BankName = in.BankName
	tx.BillOfSale.LoanNumber = in.LoanNumber
	tx.BillOfSale.PayoffAmount = in.PayoffAmount
	if tx.BillOfSale.SalePrice == 0 && q.ID != "" {
		tx.BillOfSale.SalePrice = q.OfferAmount
	}
	if (in.LoanOnTitle || in.PayoffAmount > 0) && tx.PayoffStatus != entities.PayoffStatusConfirmed {
		tx.PayoffStatus = entities.PayoffStatusPending
	}

	if in.RequestSignature && tx.SigningSessionID == "" {
		now := time.Now().UTC()
		session := entities.SigningSession{
			ID:            uuid.NewString(),
			CaseID:        c.ID,
			TransactionID: tx.ID,
			Token:         pkg.NewSigningToken(),
			Status:        entities.SigningStatusPending,
			ExpiresAt:     now.Add(entities.SigningSessionTTL),
			CreatedAt:     now,
		}
		session, err = u.signing.Create(ctx, session)
		if err != nil {
			return entities.Transaction{}, err
		}
		tx.SigningSessionID = session.ID
	}

	tx.UpdatedAt = time.Now().UTC()
	return u.transactions.Update(ctx, tx)
}

// GetSigningSession enforces the 7-day expiry on access: a pending session
// past its window flips to expired before being returned.
func (u *QuoteUseCase) GetSigningSession(ctx context.Context, token string) (entities.SigningSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.SigningSession{}, ErrSigningNotFound
	}
	s, err := u.signing.GetByToken(ctx, token)
	if err != nil {
		return entities.SigningSession{}, err
	}
	if s.ID == "" {
		return entities.SigningSession{}, ErrSigningNotFound
	}
	if s.Status == entities.SigningStatusPending && s.Expired(time.Now().UTC()) {
		return u.signing.UpdateStatus(ctx, s.ID, entities.SigningStatusExpired)
	}
	return s, nil
}

// resolve maps a QuoteRef to its quote. Token resolution is namespaced to
// quotes: an inspection token can never land here, and an unknown token is
// reported as a missing quote, not an authorization failure.
func (u *QuoteUseCase) resolve(ctx context.Context, ref QuoteRef) (entities.Quote, error) {
	switch {
	case strings.TrimSpace(ref.Token) != "":
		q, err := u.quotes.GetByToken(ctx, strings.TrimSpace(ref.Token))
		if err != nil {
			return entities.Quote{}, err
		}
		if q.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return q, nil
	case strings.TrimSpace(ref.CaseID) != "":
		q, err := u.quotes.GetByCaseID(ctx, strings.TrimSpace(ref.CaseID))
		if err != nil {
			return entities.Quote{}, err
		}
		if q.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return q, nil
	}
	return entities.Quote{}, ErrInvalidQuoteRef
}

// resolveForPaperwork tolerates a missing quote on the session path: the
// quote is created lazily only when the paperwork actually amends the offer.
func (u *QuoteUseCase) resolveForPaperwork(ctx context.Context, ref QuoteRef, in PaperworkInput) (entities.Quote, error) {
	q, err := u.resolve(ctx, ref)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, ErrQuoteNotFound) || strings.TrimSpace(ref.CaseID) == "" {
		return entities.Quote{}, err
	}
	if in.OfferAmount == nil {
		return entities.Quote{}, nil
	}

	now := time.Now().UTC()
	q = entities.Quote{
		ID:        uuid.NewString(),
		CaseID:    strings.TrimSpace(ref.CaseID),
		Token:     pkg.NewEntityToken(),
		Status:    entities.QuoteStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q, err = u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if _, err := u.cases.LinkQuote(ctx, q.CaseID, q.ID, ""); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuoteUseCase) attachSalePrice(ctx context.Context, c entities.Case, q entities.Quote) (entities.Transaction, error) {
	tx, err := u.findOrCreateTransaction(ctx, c, q)
	if err != nil {
		return entities.Transaction{}, err
	}
	tx.BillOfSale.SalePrice = q.OfferAmount
	tx.UpdatedAt = time.Now().UTC()
	return u.transactions.Update(ctx, tx)
}

func (u *QuoteUseCase) findOrCreateTransaction(ctx context.Context, c entities.Case, q entities.Quote) (entities.Transaction, error) {
	var tx entities.Transaction
	var err error
	if c.TransactionID != "" {
		tx, err = u.transactions.GetByID(ctx, c.TransactionID)
	} else {
		tx, err = u.transactions.GetByCaseID(ctx, c.ID)
	}
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID != "" {
		return tx, nil
	}

	now := time.Now().UTC()
	tx = entities.Transaction{
		ID:           uuid.NewString(),
		CaseID:       c.ID,
		QuoteID:      q.ID,
		PayoffStatus: entities.PayoffStatusNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	tx, err = u.transactions.Create(ctx, tx)
	if err != nil {
		return entities.Transaction{}, err
	}
	if _, err := u.cases.LinkTransaction(ctx, c.ID, tx.ID); err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (u *QuoteUseCase) customerEmail(ctx context.Context, c entities.Case) string {
	if c.CustomerID == "" {
		return ""
	}
	cust, err := u.customers.GetByID(ctx, c.CustomerID)
	if err != nil {
		return ""
	}
	return cust.Email
}

// decidedErr wraps ErrQuoteDecided with the existing decision so the Conflict
// message names it.
func decidedErr(q entities.Quote) error {
	return fmt.Errorf("%w: %s", ErrQuoteDecided, q.DecidedAs())
}

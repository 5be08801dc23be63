package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/google/uuid"
)

var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrInvalidCaseID       = errors.New("invalid case id")
	ErrInvalidIntake       = errors.New("invalid intake payload")
	ErrCaseMissingCustomer = errors.New("case has no customer")
	ErrCaseMissingVehicle  = errors.New("case has no vehicle")
	ErrInvalidStage        = errors.New("invalid stage")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPDFUnavailable      = errors.New("case pdf unavailable")
)

// CustomerInput and VehicleInput are the intake payloads; both records are
// created atomically alongside the case.
type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
}

type VehicleInput struct {
	VIN      string
	Year     int
	Make     string
	Model    string
	Trim     string
	Color    string
	Odometer int
}

type ScheduleInspectionInput struct {
	Inspector       entities.ContactRef
	InspectorUserID string
	ScheduledDate   string
	ScheduledTime   string
}

// ICaseUseCase is the stage engine's staff-facing surface: the guarded
// transitions plus the unvalidated administrative stage override.
type ICaseUseCase interface {
	CreateCase(ctx context.Context, customer CustomerInput, vehicle VehicleInput) (entities.CaseGraph, error)
	GetCase(ctx context.Context, caseID string) (entities.CaseGraph, error)
	ListCases(ctx context.Context) ([]entities.Case, error)
	ScheduleInspection(ctx context.Context, caseID string, in ScheduleInspectionInput) (entities.Inspection, error)
	AdvanceStage(ctx context.Context, caseID string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error)
	ConfirmPayoff(ctx context.Context, caseID string) (entities.Transaction, error)
	CompleteCase(ctx context.Context, caseID string) (entities.Case, error)
	GetCasePDF(ctx context.Context, caseID string) (string, error)
	DeleteCase(ctx context.Context, caseID string) error
}

type CaseUseCase struct {
	cases        interfaces.ICaseRepository
	customers    interfaces.ICustomerRepository
	vehicles     interfaces.IVehicleRepository
	inspections  interfaces.IInspectionRepository
	quotes       interfaces.IQuoteRepository
	transactions interfaces.ITransactionRepository
	timeTracking interfaces.ITimeTrackingRepository
	dispatcher   *SideEffectDispatcher
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(
	cases interfaces.ICaseRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	inspections interfaces.IInspectionRepository,
	quotes interfaces.IQuoteRepository,
	transactions interfaces.ITransactionRepository,
	timeTracking interfaces.ITimeTrackingRepository,
	dispatcher *SideEffectDispatcher,
) *CaseUseCase {
	return &CaseUseCase{
		cases:        cases,
		customers:    customers,
		vehicles:     vehicles,
		inspections:  inspections,
		quotes:       quotes,
		transactions: transactions,
		timeTracking: timeTracking,
		dispatcher:   dispatcher,
	}
}

// CreateCase is the intake action: Customer + Vehicle + Case created together,
// intake marked complete and the case parked on inspection scheduling.
func (u *CaseUseCase) CreateCase(ctx context.Context, customer CustomerInput, vehicle VehicleInput) (entities.CaseGraph, error) {
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Email == "" || strings.TrimSpace(customer.FirstName) == "" {
		return entities.CaseGraph{}, ErrInvalidIntake
	}
	if strings.TrimSpace(vehicle.Make) == "" || strings.TrimSpace(vehicle.Model) == "" {
		return entities.CaseGraph{}, ErrInvalidIntake
	}

	now := time.Now().UTC()
	caseID := uuid.NewString()

	cust := entities.Customer{
		ID:        uuid.NewString(),
		CaseID:    caseID,
		FirstName: strings.TrimSpace(customer.FirstName),
		LastName:  strings.TrimSpace(customer.LastName),
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		State:     customer.State,
		Zip:       customer.Zip,
		CreatedAt: now,
		UpdatedAt: now,
	}
	cust, err := u.customers.Create(ctx, cust)
	if err != nil {
		return entities.CaseGraph{}, err
	}

	veh := entities.Vehicle{
		ID:        uuid.NewString(),
		CaseID:    caseID,
		VIN:       strings.TrimSpace(vehicle.VIN),
		Year:      vehicle.Year,
		Make:      strings.TrimSpace(vehicle.Make),
		Model:     strings.TrimSpace(vehicle.Model),
		Trim:      vehicle.Trim,
		Color:     vehicle.Color,
		Odometer:  vehicle.Odometer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	veh, err = u.vehicles.Create(ctx, veh)
	if err != nil {
		return entities.CaseGraph{}, err
	}

	c := entities.Case{
		ID:            caseID,
		CustomerID:    cust.ID,
		VehicleID:     veh.ID,
		CurrentStage:  entities.StageInspectionScheduling,
		StageStatuses: entities.NewStageStatuses(),
		Status:        entities.CaseStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	c, err = u.cases.Create(ctx, c)
	if err != nil {
		return entities.CaseGraph{}, err
	}

	u.dispatcher.CaseCreated(ctx, c, cust)

	return entities.CaseGraph{Case: c, Customer: &cust, Vehicle: &veh}, nil
}

func (u *CaseUseCase) GetCase(ctx context.Context, caseID string) (entities.CaseGraph, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return entities.CaseGraph{}, err
	}
	return u.assembleGraph(ctx, c)
}

func (u *CaseUseCase) ListCases(ctx context.Context) ([]entities.Case, error) {
	return u.cases.List(ctx)
}

// ScheduleInspection drives the 2→3 transition and creates the Inspection
// with its access token. If an inspection already exists for the case (e.g. a
// crash after create but before the back-reference write) it is reused.
func (u *CaseUseCase) ScheduleInspection(ctx context.Context, caseID string, in ScheduleInspectionInput) (entities.Inspection, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if c.CustomerID == "" {
		return entities.Inspection{}, ErrCaseMissingCustomer
	}
	if c.VehicleID == "" {
		return entities.Inspection{}, ErrCaseMissingVehicle
	}
	if in.Inspector.Empty() || strings.TrimSpace(in.ScheduledDate) == "" {
		return entities.Inspection{}, ErrInvalidIntake
	}

	now := time.Now().UTC()

	insp, err := u.inspections.GetByCaseID(ctx, c.ID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.ID == "" {
		insp = entities.Inspection{
			ID:              uuid.NewString(),
			CaseID:          c.ID,
			Token:           pkg.NewEntityToken(),
			Inspector:       in.Inspector,
			InspectorUserID: in.InspectorUserID,
			ScheduledDate:   in.ScheduledDate,
			ScheduledTime:   in.ScheduledTime,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		insp, err = u.inspections.Create(ctx, insp)
		if err != nil {
			return entities.Inspection{}, err
		}
	}

	if _, err := u.cases.LinkInspection(ctx, c.ID, insp.ID); err != nil {
		return entities.Inspection{}, err
	}

	statuses := entities.AdvanceStages(c.StageStatuses, entities.StageInspectionScheduling, entities.StageInspection)
	updated, err := u.cases.UpdateStage(ctx, c.ID, entities.StageInspection, statuses, entities.CaseStatusScheduled)
	if err != nil {
		return entities.Inspection{}, err
	}

	recordStageTime(ctx, u.timeTracking, c, entities.StageInspectionScheduling, now)
	u.dispatcher.InspectionScheduled(ctx, updated, insp)

	return insp, nil
}

// AdvanceStage is the administrative override: the caller-supplied stage map
// is written verbatim, with no validation against the transition table.
func (u *CaseUseCase) AdvanceStage(ctx context.Context, caseID string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}
	if !entities.ValidStage(stage) {
		return entities.Case{}, ErrInvalidStage
	}
	if statuses == nil {
		statuses = c.StageStatuses
	}
	if status == "" {
		status = c.Status
	}
	return u.cases.UpdateStage(ctx, c.ID, stage, statuses, status)
}

func (u *CaseUseCase) ConfirmPayoff(ctx context.Context, caseID string) (entities.Transaction, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return entities.Transaction{}, err
	}

	tx, err := u.findTransaction(ctx, c)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	return u.transactions.ConfirmPayoff(ctx, tx.ID, time.Now().UTC())
}

// CompleteCase renders the case PDF, marks the thank-you sent and settles the
// terminal status: cancelled when the recorded decision was declined,
// completed otherwise. PDF/notification failures never block completion.
func (u *CaseUseCase) CompleteCase(ctx context.Context, caseID string) (entities.Case, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}

	graph, err := u.assembleGraph(ctx, c)
	if err != nil {
		return entities.Case{}, err
	}

	status := entities.CaseStatusCompleted
	if graph.Quote != nil && graph.Quote.DecidedAs() == entities.DecisionDeclined {
		status = entities.CaseStatusCancelled
	}

	pdfURL := u.dispatcher.CaseCompleted(ctx, graph)

	completion := entities.Completion{
		ThankYouSent: true,
		PDFURL:       pdfURL,
		CompletedAt:  time.Now().UTC(),
	}
	return u.cases.SetCompletion(ctx, c.ID, status, completion)
}

// GetCasePDF serves the case document: the completion PDF when one was
// rendered, otherwise a fresh on-demand render of the current graph.
func (u *CaseUseCase) GetCasePDF(ctx context.Context, caseID string) (string, error) {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return "", err
	}
	if c.Completion != nil && c.Completion.PDFURL != "" {
		return c.Completion.PDFURL, nil
	}

	graph, err := u.assembleGraph(ctx, c)
	if err != nil {
		return "", err
	}
	url, err := u.dispatcher.RenderCasePDF(ctx, graph)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", ErrPDFUnavailable
	}
	return url, nil
}

// DeleteCase cascades over every linked sub-record before removing the case
// itself. Sub-records are found through the case references with a
// back-reference repair read as fallback.
func (u *CaseUseCase) DeleteCase(ctx context.Context, caseID string) error {
	c, err := u.loadCase(ctx, caseID)
	if err != nil {
		return err
	}

	if err := u.timeTracking.DeleteByCaseID(ctx, c.ID); err != nil {
		return err
	}

	q, err := u.quotes.GetByCaseID(ctx, c.ID)
	if err != nil {
		return err
	}
	if q.ID != "" {
		if err := u.quotes.Delete(ctx, q.ID); err != nil {
			return err
		}
	}

	insp, err := u.inspections.GetByCaseID(ctx, c.ID)
	if err != nil {
		return err
	}
	if insp.ID != "" {
		if err := u.inspections.Delete(ctx, insp.ID); err != nil {
			return err
		}
	}

	tx, err := u.transactions.GetByCaseID(ctx, c.ID)
	if err != nil {
		return err
	}
	if tx.ID != "" {
		if err := u.transactions.Delete(ctx, tx.ID); err != nil {
			return err
		}
	}

	if c.VehicleID != "" {
		if err := u.vehicles.Delete(ctx, c.VehicleID); err != nil {
			return err
		}
	}
	if c.CustomerID != "" {
		if err := u.customers.Delete(ctx, c.CustomerID); err != nil {
			return err
		}
	}

	return u.cases.Delete(ctx, c.ID)
}

func (u *CaseUseCase) loadCase(ctx context.Context, caseID string) (entities.Case, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Case{}, ErrInvalidCaseID
	}
	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

func (u *CaseUseCase) assembleGraph(ctx context.Context, c entities.Case) (entities.CaseGraph, error) {
	graph := entities.CaseGraph{Case: c}

	if c.CustomerID != "" {
		cust, err := u.customers.GetByID(ctx, c.CustomerID)
		if err != nil {
			return entities.CaseGraph{}, err
		}
		if cust.ID != "" {
			graph.Customer = &cust
		}
	}
	if c.VehicleID != "" {
		veh, err := u.vehicles.GetByID(ctx, c.VehicleID)
		if err != nil {
			return entities.CaseGraph{}, err
		}
		if veh.ID != "" {
			graph.Vehicle = &veh
		}
	}

	// Sub-records created by token flows may not be linked yet if a write
	// crashed between create and back-reference update; the case_id-index
	// read below doubles as the repair path.
	insp, err := u.inspections.GetByCaseID(ctx, c.ID)
	if err != nil {
		return entities.CaseGraph{}, err
	}
	if insp.ID != "" {
		graph.Inspection = &insp
	}

	q, err := u.quotes.GetByCaseID(ctx, c.ID)
	if err != nil {
		return entities.CaseGraph{}, err
	}
	if q.ID != "" {
		graph.Quote = &q
	}

	tx, err := u.transactions.GetByCaseID(ctx, c.ID)
	if err != nil {
		return entities.CaseGraph{}, err
	}
	if tx.ID != "" {
		graph.Transaction = &tx
	}

	return graph, nil
}

func (u *CaseUseCase) findTransaction(ctx context.Context, c entities.Case) (entities.Transaction, error) {
	if c.TransactionID != "" {
		return u.transactions.GetByID(ctx, c.TransactionID)
	}
	return u.transactions.GetByCaseID(ctx, c.ID)
}

// recordStageTime writes a bookkeeping row for a stage that just closed.
// Best effort only; it never gates the transition.
func recordStageTime(ctx context.Context, repo interfaces.ITimeTrackingRepository, c entities.Case, stage int, now time.Time) {
	if repo == nil {
		return
	}
	started := c.UpdatedAt
	if started.IsZero() {
		started = c.CreatedAt
	}
	entry := entities.TimeTracking{
		ID:        uuid.NewString(),
		CaseID:    c.ID,
		Stage:     stage,
		StartedAt: started,
		EndedAt:   now,
		Seconds:   int64(now.Sub(started).Seconds()),
	}
	if _, err := repo.Create(ctx, entry); err != nil {
		log.Printf("[case][usecase] time tracking write failed case_id=%s stage=%d err=%v", c.ID, stage, err)
	}
}

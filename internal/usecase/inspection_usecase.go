package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
)

var (
	ErrInspectionNotFound  = errors.New("inspection not found")
	ErrInspectionCompleted = errors.New("inspection already completed")
	ErrInvalidSections     = errors.New("invalid inspection sections")
)

// IInspectionUseCase is the token-gated external surface for inspectors. The
// token is the only credential; resolution failure is indistinguishable from a
// missing record.
type IInspectionUseCase interface {
	GetByToken(ctx context.Context, token string) (entities.Inspection, error)
	SaveDraft(ctx context.Context, token string, sections []entities.InspectionSection) (entities.Inspection, error)
	Submit(ctx context.Context, token string, sections []entities.InspectionSection) (entities.Inspection, error)
}

type InspectionUseCase struct {
	inspections  interfaces.IInspectionRepository
	cases        interfaces.ICaseRepository
	customers    interfaces.ICustomerRepository
	timeTracking interfaces.ITimeTrackingRepository
	dispatcher   *SideEffectDispatcher
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	inspections interfaces.IInspectionRepository,
	cases interfaces.ICaseRepository,
	customers interfaces.ICustomerRepository,
	timeTracking interfaces.ITimeTrackingRepository,
	dispatcher *SideEffectDispatcher,
) *InspectionUseCase {
	return &InspectionUseCase{
		inspections:  inspections,
		cases:        cases,
		customers:    customers,
		timeTracking: timeTracking,
		dispatcher:   dispatcher,
	}
}

func (u *InspectionUseCase) GetByToken(ctx context.Context, token string) (entities.Inspection, error) {
	return u.resolveToken(ctx, token)
}

// SaveDraft stores in-progress answers without touching terminal fields or
// the case stage. Drafts on a completed inspection are rejected the same way
// a submission would be.
func (u *InspectionUseCase) SaveDraft(ctx context.Context, token string, sections []entities.InspectionSection) (entities.Inspection, error) {
	insp, err := u.resolveToken(ctx, token)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.Completed {
		return entities.Inspection{}, ErrInspectionCompleted
	}
	if len(sections) == 0 {
		return entities.Inspection{}, ErrInvalidSections
	}
	return u.inspections.SaveDraft(ctx, insp.ID, sections)
}

// Submit sets the terminal fields exactly once and drives the case 3→4
// transition (stage 4 active, status quote-ready).
func (u *InspectionUseCase) Submit(ctx context.Context, token string, sections []entities.InspectionSection) (entities.Inspection, error) {
	insp, err := u.resolveToken(ctx, token)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.Completed {
		return entities.Inspection{}, ErrInspectionCompleted
	}
	if err := validateSections(sections); err != nil {
		return entities.Inspection{}, err
	}

	c, err := u.cases.GetByID(ctx, insp.CaseID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if c.ID == "" {
		return entities.Inspection{}, ErrCaseNotFound
	}

	now := time.Now().UTC()
	score := entities.ComputeOverallScore(sections)
	completed, err := u.inspections.Complete(ctx, insp.ID, sections, score, now)
	if err != nil {
		return entities.Inspection{}, err
	}

	statuses := entities.AdvanceStages(c.StageStatuses, entities.StageInspection, entities.StageQuote)
	updated, err := u.cases.UpdateStage(ctx, c.ID, entities.StageQuote, statuses, entities.CaseStatusQuoteReady)
	if err != nil {
		return entities.Inspection{}, err
	}

	recordStageTime(ctx, u.timeTracking, c, entities.StageInspection, now)

	customerEmail := ""
	if c.CustomerID != "" {
		if cust, err := u.customers.GetByID(ctx, c.CustomerID); err == nil {
			customerEmail = cust.Email
		}
	}
	u.dispatcher.InspectionSubmitted(ctx, updated, completed, customerEmail)

	return completed, nil
}

func (u *InspectionUseCase) resolveToken(ctx context.Context, token string) (entities.Inspection, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Inspection{}, ErrInspectionNotFound
	}
	insp, err := u.inspections.GetByToken(ctx, token)
	if err != nil {
		return entities.Inspection{}, err
	}
	if insp.ID == "" {
		return entities.Inspection{}, ErrInspectionNotFound
	}
	return insp, nil
}

func validateSections(sections []entities.InspectionSection) error {
	if len(sections) == 0 {
		return ErrInvalidSections
	}
	for _, s := range sections {
		if strings.TrimSpace(s.Name) == "" || len(s.Questions) == 0 {
			return ErrInvalidSections
		}
		for _, q := range s.Questions {
			if strings.TrimSpace(q.Question) == "" {
				return ErrInvalidSections
			}
		}
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	mock_interfaces "github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func noopDispatcher() *SideEffectDispatcher {
	return NewSideEffectDispatcher(nil, nil, "")
}

func TestCaseUseCase_CreateCase(t *testing.T) {
	t.Run("missing customer email", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil, nil, nil, noopDispatcher())
		_, err := uc.CreateCase(context.Background(), CustomerInput{FirstName: "Ana"}, VehicleInput{Make: "Honda", Model: "Civic"})
		if !errors.Is(err, ErrInvalidIntake) {
			t.Fatalf("expected ErrInvalidIntake, got %v", err)
		}
	})

	t.Run("missing vehicle make", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, nil, nil, nil, nil, noopDispatcher())
		_, err := uc.CreateCase(context.Background(), CustomerInput{FirstName: "Ana", Email: "ana@example.com"}, VehicleInput{Model: "Civic"})
		if !errors.Is(err, ErrInvalidIntake) {
			t.Fatalf("expected ErrInvalidIntake, got %v", err)
		}
	})

	t.Run("creates customer, vehicle and case together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, nil, nil, nil, nil, noopDispatcher())

		customerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })
		vehicleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil })
		caseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Case) (entities.Case, error) { return c, nil })

		graph, err := uc.CreateCase(context.Background(),
			CustomerInput{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"},
			VehicleInput{Make: "Honda", Model: "Civic", Year: 2019})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		c := graph.Case
		if c.CurrentStage != entities.StageInspectionScheduling {
			t.Fatalf("expected stage %d, got %d", entities.StageInspectionScheduling, c.CurrentStage)
		}
		if c.Status != entities.CaseStatusNew {
			t.Fatalf("expected status new, got %s", c.Status)
		}
		if c.StageStatuses[entities.StageIntake] != entities.StageStatusComplete {
			t.Fatalf("expected intake complete, got %s", c.StageStatuses[entities.StageIntake])
		}
		if c.StageStatuses[entities.StageInspectionScheduling] != entities.StageStatusActive {
			t.Fatalf("expected scheduling active, got %s", c.StageStatuses[entities.StageInspectionScheduling])
		}
		for s := entities.StageInspection; s <= entities.StageCompletion; s++ {
			if c.StageStatuses[s] != entities.StageStatusPending {
				t.Fatalf("expected stage %d pending, got %s", s, c.StageStatuses[s])
			}
		}
		if graph.Customer == nil || graph.Customer.CaseID != c.ID || c.CustomerID != graph.Customer.ID {
			t.Fatalf("customer cross-reference broken")
		}
		if graph.Vehicle == nil || graph.Vehicle.CaseID != c.ID || c.VehicleID != graph.Vehicle.ID {
			t.Fatalf("vehicle cross-reference broken")
		}
	})

	t.Run("notification failure does not fail the creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("relay down")).AnyTimes()
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, nil, nil, nil, nil,
			NewSideEffectDispatcher(notifier, nil, "http://localhost"))

		customerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })
		vehicleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil })
		caseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Case) (entities.Case, error) { return c, nil })

		_, err := uc.CreateCase(context.Background(),
			CustomerInput{FirstName: "Ana", Email: "ana@example.com"},
			VehicleInput{Make: "Honda", Model: "Civic"})
		if err != nil {
			t.Fatalf("expected success despite notifier failure, got %v", err)
		}
	})
}

func TestCaseUseCase_ScheduleInspection(t *testing.T) {
	baseCase := func() entities.Case {
		return entities.Case{
			ID:            "case-1",
			CustomerID:    "cust-1",
			VehicleID:     "veh-1",
			CurrentStage:  entities.StageInspectionScheduling,
			StageStatuses: entities.NewStageStatuses(),
			Status:        entities.CaseStatusNew,
			CreatedAt:     time.Now().UTC(),
			UpdatedAt:     time.Now().UTC(),
		}
	}

	t.Run("case not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		caseRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Case{}, nil)

		_, err := uc.ScheduleInspection(context.Background(), "missing", ScheduleInspectionInput{
			Inspector:     entities.ContactRef{Name: "Bob", Email: "bob@example.com"},
			ScheduledDate: "2026-09-01",
		})
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("creates inspection with token and advances 2 to 3", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		timeRepo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, inspectionRepo, nil, nil, timeRepo, noopDispatcher())

		c := baseCase()
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		inspectionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Inspection) (entities.Inspection, error) { return i, nil })
		caseRepo.EXPECT().LinkInspection(gomock.Any(), "case-1", gomock.Any()).Return(c, nil)
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageInspection, gomock.Any(), entities.CaseStatusScheduled).DoAndReturn(
			func(_ context.Context, _ string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error) {
				if statuses[entities.StageInspectionScheduling] != entities.StageStatusComplete {
					t.Fatalf("expected scheduling complete, got %s", statuses[entities.StageInspectionScheduling])
				}
				if statuses[entities.StageInspection] != entities.StageStatusActive {
					t.Fatalf("expected inspection active, got %s", statuses[entities.StageInspection])
				}
				c.CurrentStage = stage
				c.StageStatuses = statuses
				c.Status = status
				return c, nil
			})
		timeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.TimeTracking) (entities.TimeTracking, error) { return e, nil }).AnyTimes()

		insp, err := uc.ScheduleInspection(context.Background(), "case-1", ScheduleInspectionInput{
			Inspector:     entities.ContactRef{Name: "Bob", Email: "bob@example.com"},
			ScheduledDate: "2026-09-01",
			ScheduledTime: "10:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(insp.Token) != 40 {
			t.Fatalf("expected 40-char token, got %d", len(insp.Token))
		}
		if insp.CaseID != "case-1" {
			t.Fatalf("expected case back-reference, got %q", insp.CaseID)
		}
	})

	t.Run("reuses an existing unlinked inspection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, inspectionRepo, nil, nil, nil, noopDispatcher())

		c := baseCase()
		existing := entities.Inspection{ID: "insp-1", CaseID: "case-1", Token: "tok"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(existing, nil)
		caseRepo.EXPECT().LinkInspection(gomock.Any(), "case-1", "insp-1").Return(c, nil)
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageInspection, gomock.Any(), entities.CaseStatusScheduled).Return(c, nil)

		insp, err := uc.ScheduleInspection(context.Background(), "case-1", ScheduleInspectionInput{
			Inspector:     entities.ContactRef{Name: "Bob", Email: "bob@example.com"},
			ScheduledDate: "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if insp.ID != "insp-1" {
			t.Fatalf("expected existing inspection to be reused, got %q", insp.ID)
		}
	})
}

func TestCaseUseCase_AdvanceStage(t *testing.T) {
	t.Run("rejects out-of-range stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)

		_, err := uc.AdvanceStage(context.Background(), "case-1", 8, nil, "")
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("writes caller map verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", CurrentStage: 2, StageStatuses: entities.NewStageStatuses(), Status: entities.CaseStatusNew}
		// An override that no coded transition would produce: two active stages.
		override := map[int]entities.StageStatus{
			entities.StageIntake:     entities.StageStatusActive,
			entities.StagePaperwork:  entities.StageStatusActive,
			entities.StageCompletion: entities.StageStatusComplete,
		}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StagePaperwork, gomock.Any(), entities.CaseStatusActive).DoAndReturn(
			func(_ context.Context, _ string, _ int, statuses map[int]entities.StageStatus, _ entities.CaseStatus) (entities.Case, error) {
				if statuses[entities.StageIntake] != entities.StageStatusActive || statuses[entities.StagePaperwork] != entities.StageStatusActive {
					t.Fatalf("override map was not applied verbatim: %v", statuses)
				}
				return c, nil
			})

		_, err := uc.AdvanceStage(context.Background(), "case-1", entities.StagePaperwork, override, entities.CaseStatusActive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty fields default to current state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		current := entities.NewStageStatuses()
		c := entities.Case{ID: "case-1", CurrentStage: 2, StageStatuses: current, Status: entities.CaseStatusScheduled}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageDecision, gomock.Any(), entities.CaseStatusScheduled).Return(c, nil)

		_, err := uc.AdvanceStage(context.Background(), "case-1", entities.StageDecision, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCaseUseCase_ConfirmPayoff(t *testing.T) {
	t.Run("no transaction on case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, txRepo, nil, noopDispatcher())

		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)

		_, err := uc.ConfirmPayoff(context.Background(), "case-1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("confirms via forward reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, txRepo, nil, noopDispatcher())

		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", TransactionID: "tx-1"}, nil)
		txRepo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", PayoffStatus: entities.PayoffStatusPending}, nil)
		txRepo.EXPECT().ConfirmPayoff(gomock.Any(), "tx-1", gomock.Any()).Return(
			entities.Transaction{ID: "tx-1", PayoffStatus: entities.PayoffStatusConfirmed}, nil)

		tx, err := uc.ConfirmPayoff(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.PayoffStatus != entities.PayoffStatusConfirmed {
			t.Fatalf("expected confirmed payoff, got %s", tx.PayoffStatus)
		}
	})
}

func TestCaseUseCase_CompleteCase(t *testing.T) {
	setupGraph := func(ctrl *gomock.Controller, quote entities.Quote) (*CaseUseCase, *mock_interfaces.MockICaseRepository) {
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, txRepo, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", VehicleID: "veh-1", StageStatuses: entities.NewStageStatuses()}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Email: "ana@example.com"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(quote, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		return uc, caseRepo
	}

	t.Run("completed when quote accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quote := entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}
		uc, caseRepo := setupGraph(ctrl, quote)

		caseRepo.EXPECT().SetCompletion(gomock.Any(), "case-1", entities.CaseStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.CaseStatus, completion entities.Completion) (entities.Case, error) {
				if !completion.ThankYouSent {
					t.Fatalf("expected thank-you flag set")
				}
				return entities.Case{ID: "case-1", Status: status}, nil
			})

		c, err := uc.CompleteCase(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.CaseStatusCompleted {
			t.Fatalf("expected completed, got %s", c.Status)
		}
	})

	t.Run("cancelled when quote declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quote := entities.Quote{ID: "q-1", Status: entities.QuoteStatusDeclined,
			OfferDecision: &entities.OfferDecision{Decision: entities.DecisionDeclined}}
		uc, caseRepo := setupGraph(ctrl, quote)

		caseRepo.EXPECT().SetCompletion(gomock.Any(), "case-1", entities.CaseStatusCancelled, gomock.Any()).Return(
			entities.Case{ID: "case-1", Status: entities.CaseStatusCancelled}, nil)

		c, err := uc.CompleteCase(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.CaseStatusCancelled {
			t.Fatalf("expected cancelled, got %s", c.Status)
		}
	})

	t.Run("render failure does not block completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		renderer.EXPECT().RenderCasePDF(gomock.Any(), gomock.Any()).Return("", errors.New("renderer down"))
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, nil, inspectionRepo, quoteRepo, txRepo, nil,
			NewSideEffectDispatcher(notifier, renderer, ""))

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", StageStatuses: entities.NewStageStatuses()}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		caseRepo.EXPECT().SetCompletion(gomock.Any(), "case-1", entities.CaseStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.CaseStatus, completion entities.Completion) (entities.Case, error) {
				if completion.PDFURL != "" {
					t.Fatalf("expected empty pdf url after render failure, got %q", completion.PDFURL)
				}
				return entities.Case{ID: "case-1", Status: status}, nil
			})

		if _, err := uc.CompleteCase(context.Background(), "case-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCaseUseCase_DeleteCase(t *testing.T) {
	t.Run("cascades over all linked records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		timeRepo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, txRepo, timeRepo, noopDispatcher())

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", VehicleID: "veh-1"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		timeRepo.EXPECT().DeleteByCaseID(gomock.Any(), "case-1").Return(nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{ID: "q-1"}, nil)
		quoteRepo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{ID: "insp-1"}, nil)
		inspectionRepo.EXPECT().Delete(gomock.Any(), "insp-1").Return(nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{ID: "tx-1"}, nil)
		txRepo.EXPECT().Delete(gomock.Any(), "tx-1").Return(nil)
		vehicleRepo.EXPECT().Delete(gomock.Any(), "veh-1").Return(nil)
		customerRepo.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil)
		caseRepo.EXPECT().Delete(gomock.Any(), "case-1").Return(nil)

		if err := uc.DeleteCase(context.Background(), "case-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skips absent sub-records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		timeRepo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, txRepo, timeRepo, noopDispatcher())

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", VehicleID: "veh-1"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		timeRepo.EXPECT().DeleteByCaseID(gomock.Any(), "case-1").Return(nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		vehicleRepo.EXPECT().Delete(gomock.Any(), "veh-1").Return(nil)
		customerRepo.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil)
		caseRepo.EXPECT().Delete(gomock.Any(), "case-1").Return(nil)

		if err := uc.DeleteCase(context.Background(), "case-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCaseUseCase_GetCasePDF(t *testing.T) {
	t.Run("serves the completion pdf when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{
			ID:         "case-1",
			Completion: &entities.Completion{PDFURL: "mock://documents/case-case-1.pdf"},
		}, nil)

		url, err := uc.GetCasePDF(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "mock://documents/case-case-1.pdf" {
			t.Fatalf("unexpected url %q", url)
		}
	})

	t.Run("renders on demand before completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, txRepo, nil,
			NewSideEffectDispatcher(nil, renderer, ""))

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", VehicleID: "veh-1"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		renderer.EXPECT().RenderCasePDF(gomock.Any(), gomock.Any()).Return("https://docs.example.com/case-1.pdf", nil)

		url, err := uc.GetCasePDF(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://docs.example.com/case-1.pdf" {
			t.Fatalf("unexpected url %q", url)
		}
	})

	t.Run("unavailable without a renderer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		inspectionRepo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, txRepo, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", CustomerID: "cust-1", VehicleID: "veh-1"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		inspectionRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Inspection{}, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)

		_, err := uc.GetCasePDF(context.Background(), "case-1")
		if !errors.Is(err, ErrPDFUnavailable) {
			t.Fatalf("expected ErrPDFUnavailable, got %v", err)
		}
	})
}

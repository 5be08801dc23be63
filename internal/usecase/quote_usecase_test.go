package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	mock_interfaces "github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_AssignEstimator(t *testing.T) {
	estimator := entities.ContactRef{Name: "Eve", Email: "eve@example.com"}

	t.Run("empty estimator", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil, noopDispatcher())
		_, err := uc.AssignEstimator(context.Background(), "case-1", entities.ContactRef{}, "")
		if !errors.Is(err, ErrInvalidEstimator) {
			t.Fatalf("expected ErrInvalidEstimator, got %v", err)
		}
	})

	t.Run("creates quote with token on first assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", StageStatuses: entities.NewStageStatuses()}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil })
		caseRepo.EXPECT().LinkQuote(gomock.Any(), "case-1", gomock.Any(), "user-7").Return(c, nil)

		q, err := uc.AssignEstimator(context.Background(), "case-1", estimator, "user-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Token) != 40 {
			t.Fatalf("expected 40-char token, got %d", len(q.Token))
		}
		if q.Status != entities.QuoteStatusDraft {
			t.Fatalf("expected draft status, got %s", q.Status)
		}
	})

	t.Run("reassignment reuses the existing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", QuoteID: "q-1"}
		existing := entities.Quote{ID: "q-1", CaseID: "case-1", Token: "tok"}
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(existing, nil)
		quoteRepo.EXPECT().SetEstimator(gomock.Any(), "q-1", estimator, "").Return(existing, nil)

		q, err := uc.AssignEstimator(context.Background(), "case-1", estimator, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("expected existing quote, got %q", q.ID)
		}
	})
}

func TestQuoteUseCase_SubmitOffer(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil, noopDispatcher())
		_, err := uc.SubmitOffer(context.Background(), QuoteRef{Token: "tok"}, 0)
		if !errors.Is(err, ErrInvalidOfferAmount) {
			t.Fatalf("expected ErrInvalidOfferAmount, got %v", err)
		}
	})

	t.Run("rejected once the quote is decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		decided := entities.Quote{ID: "q-1", CaseID: "case-1",
			OfferDecision: &entities.OfferDecision{Decision: entities.DecisionAccepted}}
		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(decided, nil)

		_, err := uc.SubmitOffer(context.Background(), QuoteRef{Token: "tok"}, 5000)
		if !errors.Is(err, ErrQuoteDecided) {
			t.Fatalf("expected ErrQuoteDecided, got %v", err)
		}
		if !strings.Contains(err.Error(), "accepted") {
			t.Fatalf("expected error to name the decision, got %q", err.Error())
		}
	})

	t.Run("sets offer and derives the transaction sale price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, customerRepo, nil, txRepo, nil, nil, noopDispatcher())

		q := entities.Quote{ID: "q-1", CaseID: "case-1", Status: entities.QuoteStatusDraft}
		c := entities.Case{ID: "case-1", CustomerID: "cust-1"}
		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(q, nil)
		quoteRepo.EXPECT().UpdateOffer(gomock.Any(), "q-1", 7500.0, entities.QuoteStatusReady).DoAndReturn(
			func(_ context.Context, _ string, amount float64, status entities.QuoteStatus) (entities.Quote, error) {
				q.OfferAmount = amount
				q.Status = status
				return q, nil
			})
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		caseRepo.EXPECT().LinkTransaction(gomock.Any(), "case-1", gomock.Any()).Return(c, nil)
		txRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.BillOfSale.SalePrice != 7500.0 {
					t.Fatalf("expected sale price 7500, got %v", tx.BillOfSale.SalePrice)
				}
				return tx, nil
			})
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Email: "ana@example.com"}, nil)

		updated, err := uc.SubmitOffer(context.Background(), QuoteRef{Token: "tok"}, 7500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.QuoteStatusReady {
			t.Fatalf("expected ready, got %s", updated.Status)
		}
	})
}

func TestQuoteUseCase_RecordDecision(t *testing.T) {
	baseQuote := entities.Quote{ID: "q-1", CaseID: "case-1", OfferAmount: 8000, Status: entities.QuoteStatusReady}
	baseCase := entities.Case{ID: "case-1", CurrentStage: entities.StageDecision,
		StageStatuses: entities.NewStageStatuses(), Status: entities.CaseStatusQuoteReady}

	t.Run("invalid decision value", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil, noopDispatcher())
		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: "maybe"})
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("accepted settles final amount and moves case to negotiating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				if d.FinalAmount != 8000 {
					t.Fatalf("expected final amount defaulted to offer, got %v", d.FinalAmount)
				}
				q := baseQuote
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageQuote, gomock.Any(), entities.CaseStatusNegotiating).Return(baseCase, nil)

		q, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: entities.DecisionAccepted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted, got %s", q.Status)
		}
	})

	t.Run("accepted prefers counter offer for final amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusAccepted).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				if d.FinalAmount != 8500 {
					t.Fatalf("expected counter offer as final amount, got %v", d.FinalAmount)
				}
				q := baseQuote
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageQuote, gomock.Any(), entities.CaseStatusNegotiating).Return(baseCase, nil)

		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"},
			DecisionInput{Decision: entities.DecisionAccepted, CounterOffer: 8500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("declined advances straight to paperwork", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		timeRepo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, timeRepo, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusDeclined).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				q := baseQuote
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StagePaperwork, gomock.Any(), entities.CaseStatusQuoteDeclined).DoAndReturn(
			func(_ context.Context, _ string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error) {
				if statuses[entities.StageQuote] != entities.StageStatusComplete {
					t.Fatalf("expected quote stage complete, got %s", statuses[entities.StageQuote])
				}
				if statuses[entities.StagePaperwork] != entities.StageStatusActive {
					t.Fatalf("expected paperwork active, got %s", statuses[entities.StagePaperwork])
				}
				c := baseCase
				c.CurrentStage = stage
				c.Status = status
				return c, nil
			})
		timeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.TimeTracking) (entities.TimeTracking, error) { return e, nil }).AnyTimes()

		q, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: entities.DecisionDeclined})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusDeclined {
			t.Fatalf("expected declined, got %s", q.Status)
		}
	})

	t.Run("negotiating touches case status only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusReady).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				q := baseQuote
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StageDecision, gomock.Any(), entities.CaseStatusNegotiating).Return(baseCase, nil)

		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"},
			DecisionInput{Decision: entities.DecisionNegotiating, CounterOffer: 9000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pending leaves the case untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusReady).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				q := baseQuote
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		// No UpdateStage expectation: any case write would fail the test.

		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: entities.DecisionPending})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quote deleted between resolve and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(baseQuote, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		// The conditional write loses the race and reports a zero value.
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusAccepted).Return(entities.Quote{}, nil)
		// No UpdateStage expectation: the case must stay untouched.

		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: entities.DecisionAccepted})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("decision lock does not apply to decisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		decided := baseQuote
		decided.Status = entities.QuoteStatusAccepted
		decided.OfferDecision = &entities.OfferDecision{Decision: entities.DecisionAccepted}
		quoteRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(decided, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(baseCase, nil)
		quoteRepo.EXPECT().SetDecision(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusDeclined).DoAndReturn(
			func(_ context.Context, _ string, d entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
				q := decided
				q.Status = status
				q.OfferDecision = &d
				return q, nil
			})
		caseRepo.EXPECT().UpdateStage(gomock.Any(), "case-1", entities.StagePaperwork, gomock.Any(), entities.CaseStatusQuoteDeclined).Return(baseCase, nil)

		_, err := uc.RecordDecision(context.Background(), QuoteRef{Token: "tok"}, DecisionInput{Decision: entities.DecisionDeclined})
		if err != nil {
			t.Fatalf("expected overwrite to succeed, got %v", err)
		}
	})
}

func TestQuoteUseCase_TokenNamespace(t *testing.T) {
	t.Run("inspection token never resolves a quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, nil, nil, nil, nil, nil, nil, noopDispatcher())

		// The token exists — on an inspection. Quote lookups only ever hit the
		// quote table's token index, so here it is simply absent.
		inspectionToken := "11f1bbccddeeff00112233445566778899aabbcc"
		quoteRepo.EXPECT().GetByToken(gomock.Any(), inspectionToken).Return(entities.Quote{}, nil)

		_, err := uc.GetByToken(context.Background(), inspectionToken)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_SavePaperwork(t *testing.T) {
	t.Run("offer amendment rejected on decided quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, nil, nil, nil, nil, noopDispatcher())

		decided := entities.Quote{ID: "q-1", CaseID: "case-1", Status: entities.QuoteStatusAccepted}
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(decided, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(
			entities.Case{ID: "case-1", VehicleID: "veh-1"}, nil)

		amount := 9000.0
		_, err := uc.SavePaperwork(context.Background(), QuoteRef{CaseID: "case-1"}, PaperworkInput{OfferAmount: &amount})
		if !errors.Is(err, ErrQuoteDecided) {
			t.Fatalf("expected ErrQuoteDecided, got %v", err)
		}
	})

	t.Run("session path without a quote saves title and bill of sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		caseRepo := mock_interfaces.NewMockICaseRepository(ctrl)
		vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		signingRepo := mock_interfaces.NewMockISigningSessionRepository(ctrl)
		uc := NewQuoteUseCase(quoteRepo, caseRepo, nil, vehicleRepo, txRepo, signingRepo, nil, noopDispatcher())

		c := entities.Case{ID: "case-1", VehicleID: "veh-1"}
		quoteRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Quote{}, nil)
		caseRepo.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", CaseID: "case-1"}, nil)
		vehicleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.TitleNumber != "T-123" || !v.LoanOnTitle {
					t.Fatalf("title fields not applied: %+v", v)
				}
				return v, nil
			})
		txRepo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.Transaction{}, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })
		caseRepo.EXPECT().LinkTransaction(gomock.Any(), "case-1", gomock.Any()).Return(c, nil)
		signingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.SigningSession) (entities.SigningSession, error) {
				if len(s.Token) != 64 {
					t.Fatalf("expected 64-char signing token, got %d", len(s.Token))
				}
				if s.Status != entities.SigningStatusPending {
					t.Fatalf("expected pending session, got %s", s.Status)
				}
				return s, nil
			})
		txRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.BillOfSale.BankName != "First Bank" {
					t.Fatalf("bill of sale not applied: %+v", tx.BillOfSale)
				}
				if tx.PayoffStatus != entities.PayoffStatusPending {
					t.Fatalf("expected payoff pending with loan on title, got %s", tx.PayoffStatus)
				}
				if tx.SigningSessionID == "" {
					t.Fatalf("expected signing session linked")
				}
				return tx, nil
			})

		_, err := uc.SavePaperwork(context.Background(), QuoteRef{CaseID: "case-1"}, PaperworkInput{
			TitleNumber:      "T-123",
			LoanOnTitle:      true,
			BankName:         "First Bank",
			PayoffAmount:     3200,
			RequestSignature: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetSigningSession(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		signingRepo := mock_interfaces.NewMockISigningSessionRepository(ctrl)
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, signingRepo, nil, noopDispatcher())

		signingRepo.EXPECT().GetByToken(gomock.Any(), "nope").Return(entities.SigningSession{}, nil)

		_, err := uc.GetSigningSession(context.Background(), "nope")
		if !errors.Is(err, ErrSigningNotFound) {
			t.Fatalf("expected ErrSigningNotFound, got %v", err)
		}
	})

	t.Run("pending session past its window flips to expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		signingRepo := mock_interfaces.NewMockISigningSessionRepository(ctrl)
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, signingRepo, nil, noopDispatcher())

		stale := entities.SigningSession{ID: "s-1", Token: "tok", Status: entities.SigningStatusPending,
			ExpiresAt: time.Now().UTC().Add(-time.Hour)}
		signingRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(stale, nil)
		signingRepo.EXPECT().UpdateStatus(gomock.Any(), "s-1", entities.SigningStatusExpired).Return(
			entities.SigningSession{ID: "s-1", Status: entities.SigningStatusExpired}, nil)

		s, err := uc.GetSigningSession(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SigningStatusExpired {
			t.Fatalf("expected expired, got %s", s.Status)
		}
	})

	t.Run("live session returned as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		signingRepo := mock_interfaces.NewMockISigningSessionRepository(ctrl)
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, signingRepo, nil, noopDispatcher())

		live := entities.SigningSession{ID: "s-1", Token: "tok", Status: entities.SigningStatusPending,
			ExpiresAt: time.Now().UTC().Add(time.Hour)}
		signingRepo.EXPECT().GetByToken(gomock.Any(), "tok").Return(live, nil)

		s, err := uc.GetSigningSession(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SigningStatusPending {
			t.Fatalf("expected pending, got %s", s.Status)
		}
	})
}

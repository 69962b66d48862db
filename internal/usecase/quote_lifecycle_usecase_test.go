package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"visionpos/internal/domain/entities"
	"visionpos/internal/usecase/interfaces"
	mock_interfaces "visionpos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() interfaces.Clock {
	return interfaces.ClockFunc(func() time.Time { return testNow })
}

func pricedQuote(status entities.QuoteStatus) entities.Quote {
	return entities.Quote{
		ID:           "q-1",
		CustomerName: "Maria Silva",
		Status:       status,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Progressive lenses", Quantity: 1, UnitPriceCents: 45000},
		},
		LastActivityAt: testNow.Add(-time.Hour),
		CreatedAt:      testNow.Add(-time.Hour),
		UpdatedAt:      testNow.Add(-time.Hour),
		Version:        3,
	}
}

func newLifecycleMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockISignatureRepository, *mock_interfaces.MockIAuditRepository, *QuoteLifecycleUseCase) {
	ctrl := gomock.NewController(t)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	sigRepo := mock_interfaces.NewMockISignatureRepository(ctrl)
	auditRepo := mock_interfaces.NewMockIAuditRepository(ctrl)
	uc := NewQuoteLifecycleUseCase(quoteRepo, sigRepo, auditRepo, fixedClock())
	return ctrl, quoteRepo, sigRepo, auditRepo, uc
}

func TestQuoteLifecycleUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid customer name", func(t *testing.T) {
		uc := NewQuoteLifecycleUseCase(nil, nil, nil, fixedClock())
		_, err := uc.CreateQuote(context.Background(), "   ", "emp-1")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("invalid actor", func(t *testing.T) {
		uc := NewQuoteLifecycleUseCase(nil, nil, nil, fixedClock())
		_, err := uc.CreateQuote(context.Background(), "Maria Silva", "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()

		quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, events []entities.AuditEvent) (entities.Quote, error) {
				if q.ID == "" || q.CustomerName != "Maria Silva" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusBuilding || q.Version != 1 {
					t.Fatalf("expected fresh BUILDING quote at version 1, got %s v%d", q.Status, q.Version)
				}
				if !q.LastActivityAt.Equal(testNow) {
					t.Fatalf("expected activity stamp %v, got %v", testNow, q.LastActivityAt)
				}
				if len(events) != 1 || events[0].EventKind != entities.AuditEventQuoteCreated {
					t.Fatalf("unexpected events: %+v", events)
				}
				if events[0].Actor != "emp-1" || events[0].SubjectID != q.ID {
					t.Fatalf("unexpected event fields: %+v", events[0])
				}
				return q, nil
			},
		)

		q, err := uc.CreateQuote(context.Background(), " Maria Silva ", " emp-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestQuoteLifecycleUseCase_AddLineItem(t *testing.T) {
	item := entities.LineItem{Description: "Frame", Quantity: 1, UnitPriceCents: 12000}

	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuoteLifecycleUseCase(nil, nil, nil, fixedClock())
		_, err := uc.AddLineItem(context.Background(), " ", item, "emp-1")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		uc := NewQuoteLifecycleUseCase(nil, nil, nil, fixedClock())
		for _, bad := range []entities.LineItem{
			{Description: "", Quantity: 1, UnitPriceCents: 100},
			{Description: "Frame", Quantity: 0, UnitPriceCents: 100},
			{Description: "Frame", Quantity: 1, UnitPriceCents: 0},
		} {
			if _, err := uc.AddLineItem(context.Background(), "q-1", bad, "emp-1"); !errors.Is(err, ErrInvalidLineItem) {
				t.Fatalf("expected ErrInvalidLineItem for %+v, got %v", bad, err)
			}
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.AddLineItem(context.Background(), "q-1", item, "emp-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("rejected after presentation", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusPresented), nil)

		_, err := uc.AddLineItem(context.Background(), "q-1", item, "emp-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("success bumps version and appends event", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, events []entities.AuditEvent) (entities.Quote, error) {
				if q.Version != 4 || len(q.LineItems) != 2 {
					t.Fatalf("unexpected post-image: v%d items=%d", q.Version, len(q.LineItems))
				}
				if q.LineItems[1].ID == "" {
					t.Fatal("expected generated line item id")
				}
				if len(events) != 1 || events[0].EventKind != entities.AuditEventLineItemAdded {
					t.Fatalf("unexpected events: %+v", events)
				}
				return q, nil
			},
		)

		q, err := uc.AddLineItem(context.Background(), "q-1", item, "emp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.LastActivityAt.Equal(testNow) {
			t.Fatal("expected activity touch")
		}
	})

	t.Run("version conflict maps to concurrent modification", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).Return(entities.Quote{}, interfaces.ErrVersionConflict)

		_, err := uc.AddLineItem(context.Background(), "q-1", item, "emp-1")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestQuoteLifecycleUseCase_TransitionQuote(t *testing.T) {
	t.Run("invalid target status", func(t *testing.T) {
		uc := NewQuoteLifecycleUseCase(nil, nil, nil, fixedClock())
		_, err := uc.TransitionQuote(context.Background(), "q-1", "SHIPPED", TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrInvalidTargetStatus) {
			t.Fatalf("expected ErrInvalidTargetStatus, got %v", err)
		}
	})

	t.Run("illegal edge", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusCompleted, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		var te *TransitionError
		if !errors.As(err, &te) || te.From != entities.QuoteStatusBuilding || te.To != entities.QuoteStatusCompleted {
			t.Fatalf("unexpected transition error: %v", err)
		}
	})

	t.Run("terminal quote rejects everything", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusCancelled), nil).Times(len(entities.QuoteStatuses()))

		for _, target := range entities.QuoteStatuses() {
			_, err := uc.TransitionQuote(context.Background(), "q-1", target, TransitionContext{Actor: "emp-1"})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition for %s, got %v", target, err)
			}
		}
	})

	t.Run("presentation requires a priced line item", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		bare := pricedQuote(entities.QuoteStatusBuilding)
		bare.LineItems = nil
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(bare, nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusPresented, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("signed requires both signatures", func(t *testing.T) {
		ctrl, quoteRepo, sigRepo, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusPresented), nil)
		sigRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.SignatureRecord{
			{SignatureType: entities.SignatureTypeExam, IsValid: true},
		}, nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusSigned, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransitionError, got %v", err)
		}
		if len(te.MissingSignatures) != 1 || te.MissingSignatures[0] != entities.SignatureTypeMaterials {
			t.Fatalf("unexpected missing set: %v", te.MissingSignatures)
		}
	})

	t.Run("signed success stamps signed_at", func(t *testing.T) {
		ctrl, quoteRepo, sigRepo, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusPresented), nil)
		sigRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.SignatureRecord{
			{SignatureType: entities.SignatureTypeExam, IsValid: true},
			{SignatureType: entities.SignatureTypeMaterials, IsValid: true},
		}, nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, events []entities.AuditEvent) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusSigned || q.Version != 4 {
					t.Fatalf("unexpected post-image: %s v%d", q.Status, q.Version)
				}
				if q.SignedAt == nil || !q.SignedAt.Equal(testNow) {
					t.Fatalf("expected signed_at %v, got %v", testNow, q.SignedAt)
				}
				if len(events) != 1 || events[0].EventKind != entities.AuditEventStatusChanged {
					t.Fatalf("unexpected events: %+v", events)
				}
				if events[0].Detail[entities.DetailPreviousStatus] != "PRESENTED" || events[0].Detail[entities.DetailNewStatus] != "SIGNED" {
					t.Fatalf("unexpected detail: %+v", events[0].Detail)
				}
				return q, nil
			},
		)

		q, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusSigned, TransitionContext{Actor: "emp-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusSigned {
			t.Fatalf("unexpected status: %s", q.Status)
		}
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusCancelled, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("cancel rejects unknown reason", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusCancelled, TransitionContext{Actor: "emp-1", CancelReason: "changed_their_socks"})
		if !errors.Is(err, ErrInvalidCancelReason) {
			t.Fatalf("expected ErrInvalidCancelReason, got %v", err)
		}
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusSigned), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, events []entities.AuditEvent) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusCancelled || q.CancelReason == nil || *q.CancelReason != entities.CancelReasonInsuranceDenied {
					t.Fatalf("unexpected post-image: %+v", q)
				}
				if events[0].Detail[entities.DetailCancelReason] != "insurance_denied" {
					t.Fatalf("unexpected detail: %+v", events[0].Detail)
				}
				return q, nil
			},
		)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusCancelled, TransitionContext{Actor: "emp-1", CancelReason: entities.CancelReasonInsuranceDenied})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed stamps completed_at", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusSigned), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, _ []entities.AuditEvent) (entities.Quote, error) {
				if q.CompletedAt == nil || !q.CompletedAt.Equal(testNow) {
					t.Fatalf("expected completed_at %v, got %v", testNow, q.CompletedAt)
				}
				return q, nil
			},
		)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusCompleted, TransitionContext{Actor: "emp-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expiration rejects user actors", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusDraft), nil)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusExpired, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("expiration allowed for the sweeper actor", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusDraft), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, events []entities.AuditEvent) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusExpired {
					t.Fatalf("unexpected status: %s", q.Status)
				}
				if events[0].Actor != SystemExpirationActor {
					t.Fatalf("unexpected actor: %s", events[0].Actor)
				}
				return q, nil
			},
		)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusExpired, TransitionContext{Actor: SystemExpirationActor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost write race", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusDraft), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).Return(entities.Quote{}, interfaces.ErrVersionConflict)

		_, err := uc.TransitionQuote(context.Background(), "q-1", entities.QuoteStatusPresented, TransitionContext{Actor: "emp-1"})
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestQuoteLifecycleUseCase_ResumeQuote(t *testing.T) {
	t.Run("draft goes back to building", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusDraft), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, events []entities.AuditEvent) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusBuilding {
					t.Fatalf("unexpected status: %s", q.Status)
				}
				if events[0].EventKind != entities.AuditEventQuoteResumed {
					t.Fatalf("unexpected event: %+v", events[0])
				}
				if events[0].Detail[entities.DetailPreviousStatus] != "DRAFT" {
					t.Fatalf("unexpected detail: %+v", events[0].Detail)
				}
				return q, nil
			},
		)

		q, err := uc.ResumeQuote(context.Background(), "q-1", "emp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusBuilding {
			t.Fatalf("unexpected status: %s", q.Status)
		}
	})

	t.Run("building resume only touches activity", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)
		quoteRepo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ int64, _ []entities.AuditEvent) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusBuilding || !q.LastActivityAt.Equal(testNow) {
					t.Fatalf("unexpected post-image: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.ResumeQuote(context.Background(), "q-1", "emp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("presented quote cannot resume", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusPresented), nil)

		_, err := uc.ResumeQuote(context.Background(), "q-1", "emp-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.ResumeQuote(context.Background(), "q-9", "emp-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteLifecycleUseCase_Getters(t *testing.T) {
	t.Run("GetQuote not found", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.GetQuote(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("GetQuote repo error", func(t *testing.T) {
		ctrl, quoteRepo, _, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetQuote(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetWorkflowStatus projects signatures", func(t *testing.T) {
		ctrl, quoteRepo, sigRepo, _, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusPresented), nil)
		sigRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.SignatureRecord{
			{SignatureType: entities.SignatureTypeExam, IsValid: true},
			{SignatureType: entities.SignatureTypeMaterials, IsValid: true},
		}, nil)

		ws, err := uc.GetWorkflowStatus(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ws.CanTransitionToSigned {
			t.Fatalf("expected SIGNED reachable: %+v", ws)
		}
	})

	t.Run("GetQuoteHistory", func(t *testing.T) {
		ctrl, quoteRepo, _, auditRepo, uc := newLifecycleMocks(t)
		defer ctrl.Finish()
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(entities.QuoteStatusBuilding), nil)
		auditRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.AuditEvent{
			{ID: "e-1", EventKind: entities.AuditEventQuoteCreated},
		}, nil)

		events, err := uc.GetQuoteHistory(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("unexpected events: %+v", events)
		}
	})
}

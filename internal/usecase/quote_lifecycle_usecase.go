package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"visionpos/internal/domain/entities"
	"visionpos/internal/domain/workflow"
	"visionpos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidActor           = errors.New("invalid actor")
	ErrInvalidCustomerName    = errors.New("invalid customer name")
	ErrInvalidTargetStatus    = errors.New("invalid target status")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrPreconditionFailed     = errors.New("transition precondition failed")
	ErrInvalidState           = errors.New("operation not allowed in current quote state")
	ErrInvalidCancelReason    = errors.New("invalid cancel reason")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// SystemExpirationActor is the reserved actor recorded on sweeper-driven
// expirations. Transitions into EXPIRED are rejected for any other actor.
const SystemExpirationActor = "system:expiration"

// TransitionError carries enough detail for a caller to render a
// corrective message: the attempted edge, the signature types still
// missing, and a human-readable reason. It errors.Is-matches the sentinel
// it wraps.
type TransitionError struct {
	From              entities.QuoteStatus
	To                entities.QuoteStatus
	MissingSignatures []entities.SignatureType
	Reason            string
	Err               error
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("transition %s -> %s: %v", e.From, e.To, e.Err)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if len(e.MissingSignatures) > 0 {
		types := make([]string, len(e.MissingSignatures))
		for i, t := range e.MissingSignatures {
			types[i] = string(t)
		}
		msg += ": missing signatures [" + strings.Join(types, ",") + "]"
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// TransitionContext carries the caller-supplied identity and the optional
// cancel reason for a transition attempt. The engine records the actor,
// it never authenticates it.
type TransitionContext struct {
	Actor        string
	CancelReason entities.CancelReason
}

// IQuoteLifecycleUseCase is the single entry point for quote status
// changes. No other component writes a quote's status.

type IQuoteLifecycleUseCase interface {
	CreateQuote(ctx context.Context, customerName, actor string) (entities.Quote, error)
	AddLineItem(ctx context.Context, quoteID string, item entities.LineItem, actor string) (entities.Quote, error)
	TransitionQuote(ctx context.Context, quoteID string, target entities.QuoteStatus, tc TransitionContext) (entities.Quote, error)
	ResumeQuote(ctx context.Context, quoteID, actor string) (entities.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	GetWorkflowStatus(ctx context.Context, quoteID string) (entities.WorkflowStatus, error)
	GetQuoteHistory(ctx context.Context, quoteID string) ([]entities.AuditEvent, error)
}

type QuoteLifecycleUseCase struct {
	quoteRepo interfaces.IQuoteRepository
	sigRepo   interfaces.ISignatureRepository
	auditRepo interfaces.IAuditRepository
	clock     interfaces.Clock
}

var _ IQuoteLifecycleUseCase = (*QuoteLifecycleUseCase)(nil)

func NewQuoteLifecycleUseCase(
	quoteRepo interfaces.IQuoteRepository,
	sigRepo interfaces.ISignatureRepository,
	auditRepo interfaces.IAuditRepository,
	clock interfaces.Clock,
) *QuoteLifecycleUseCase {
	return &QuoteLifecycleUseCase{quoteRepo: quoteRepo, sigRepo: sigRepo, auditRepo: auditRepo, clock: clock}
}

func (u *QuoteLifecycleUseCase) CreateQuote(ctx context.Context, customerName, actor string) (entities.Quote, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return entities.Quote{}, ErrInvalidCustomerName
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Quote{}, ErrInvalidActor
	}

	now := u.clock.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		CustomerName:   customerName,
		Status:         entities.QuoteStatusBuilding,
		LastActivityAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectQuote,
		SubjectID:   q.ID,
		QuoteID:     q.ID,
		EventKind:   entities.AuditEventQuoteCreated,
		Actor:       actor,
		OccurredAt:  now,
		Seq:         q.Version,
		Detail:      map[string]string{entities.DetailNewStatus: string(q.Status)},
	}

	return u.quoteRepo.Create(ctx, q, []entities.AuditEvent{event})
}

func (u *QuoteLifecycleUseCase) AddLineItem(ctx context.Context, quoteID string, item entities.LineItem, actor string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Quote{}, ErrInvalidActor
	}
	if strings.TrimSpace(item.Description) == "" || item.Quantity <= 0 || item.UnitPriceCents <= 0 {
		return entities.Quote{}, ErrInvalidLineItem
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusBuilding && q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, fmt.Errorf("%w: line items require BUILDING or DRAFT, quote is %s", ErrInvalidState, q.Status)
	}

	now := u.clock.Now().UTC()
	expected := q.Version
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	q.LineItems = append(q.LineItems, item)
	q.LastActivityAt = now
	q.UpdatedAt = now
	q.Version++

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectQuote,
		SubjectID:   q.ID,
		QuoteID:     q.ID,
		EventKind:   entities.AuditEventLineItemAdded,
		Actor:       actor,
		OccurredAt:  now,
		Seq:         q.Version,
		Detail:      map[string]string{"line_item_id": item.ID},
	}

	updated, err := u.quoteRepo.UpdateWithVersion(ctx, q, expected, []entities.AuditEvent{event})
	if err != nil {
		return entities.Quote{}, mapVersionConflict(err)
	}
	return updated, nil
}

func (u *QuoteLifecycleUseCase) TransitionQuote(ctx context.Context, quoteID string, target entities.QuoteStatus, tc TransitionContext) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if tc.Actor = strings.TrimSpace(tc.Actor); tc.Actor == "" {
		return entities.Quote{}, ErrInvalidActor
	}
	if _, ok := entities.ParseQuoteStatus(string(target)); !ok {
		return entities.Quote{}, ErrInvalidTargetStatus
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if !workflow.CanTransition(q.Status, target) {
		return entities.Quote{}, &TransitionError{From: q.Status, To: target, Err: ErrInvalidTransition}
	}

	now := u.clock.Now().UTC()
	expected := q.Version
	detail := map[string]string{
		entities.DetailPreviousStatus: string(q.Status),
		entities.DetailNewStatus:      string(target),
	}

	switch target {
	case entities.QuoteStatusPresented:
		if !q.HasPricedLineItem() {
			return entities.Quote{}, &TransitionError{
				From: q.Status, To: target,
				Reason: "quote has no priced line item",
				Err:    ErrPreconditionFailed,
			}
		}

	case entities.QuoteStatusSigned:
		sigs, err := u.sigRepo.ListByQuoteID(ctx, q.ID)
		if err != nil {
			return entities.Quote{}, err
		}
		if missing := workflow.MissingSignatureTypes(sigs); len(missing) > 0 {
			return entities.Quote{}, &TransitionError{
				From: q.Status, To: target,
				MissingSignatures: missing,
				Err:               ErrPreconditionFailed,
			}
		}
		signedAt := now
		q.SignedAt = &signedAt

	case entities.QuoteStatusCompleted:
		completedAt := now
		q.CompletedAt = &completedAt

	case entities.QuoteStatusCancelled:
		if tc.CancelReason == "" {
			return entities.Quote{}, &TransitionError{
				From: q.Status, To: target,
				Reason: "cancel reason is required",
				Err:    ErrPreconditionFailed,
			}
		}
		if _, ok := entities.ParseCancelReason(string(tc.CancelReason)); !ok {
			return entities.Quote{}, fmt.Errorf("%w: %q", ErrInvalidCancelReason, tc.CancelReason)
		}
		reason := tc.CancelReason
		q.CancelReason = &reason
		detail[entities.DetailCancelReason] = string(reason)

	case entities.QuoteStatusExpired:
		// Expiration is never a direct user action.
		if tc.Actor != SystemExpirationActor {
			return entities.Quote{}, &TransitionError{
				From: q.Status, To: target,
				Reason: "expiration is reserved for the expiration sweeper",
				Err:    ErrInvalidTransition,
			}
		}
	}

	q.Status = target
	q.LastActivityAt = now
	q.UpdatedAt = now
	q.Version++

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectQuote,
		SubjectID:   q.ID,
		QuoteID:     q.ID,
		EventKind:   entities.AuditEventStatusChanged,
		Actor:       tc.Actor,
		OccurredAt:  now,
		Seq:         q.Version,
		Detail:      detail,
	}

	updated, err := u.quoteRepo.UpdateWithVersion(ctx, q, expected, []entities.AuditEvent{event})
	if err != nil {
		return entities.Quote{}, mapVersionConflict(err)
	}
	return updated, nil
}

// ResumeQuote re-enters the builder from a saved draft. A DRAFT quote goes
// back to BUILDING; a BUILDING quote keeps its status and only records the
// activity. Any other state rejects the resume.
func (u *QuoteLifecycleUseCase) ResumeQuote(ctx context.Context, quoteID, actor string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Quote{}, ErrInvalidActor
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	previous := q.Status
	if previous != entities.QuoteStatusBuilding && previous != entities.QuoteStatusDraft {
		return entities.Quote{}, &TransitionError{From: previous, To: entities.QuoteStatusBuilding, Err: ErrInvalidTransition}
	}

	now := u.clock.Now().UTC()
	expected := q.Version
	q.Status = entities.QuoteStatusBuilding
	q.LastActivityAt = now
	q.UpdatedAt = now
	q.Version++

	event := entities.AuditEvent{
		ID:          uuid.NewString(),
		SubjectType: entities.AuditSubjectQuote,
		SubjectID:   q.ID,
		QuoteID:     q.ID,
		EventKind:   entities.AuditEventQuoteResumed,
		Actor:       actor,
		OccurredAt:  now,
		Seq:         q.Version,
		Detail: map[string]string{
			entities.DetailPreviousStatus: string(previous),
			entities.DetailNewStatus:      string(entities.QuoteStatusBuilding),
		},
	}

	updated, err := u.quoteRepo.UpdateWithVersion(ctx, q, expected, []entities.AuditEvent{event})
	if err != nil {
		return entities.Quote{}, mapVersionConflict(err)
	}
	return updated, nil
}

func (u *QuoteLifecycleUseCase) GetQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteLifecycleUseCase) GetWorkflowStatus(ctx context.Context, quoteID string) (entities.WorkflowStatus, error) {
	q, err := u.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}

	sigs, err := u.sigRepo.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	return workflow.Project(q, sigs), nil
}

func (u *QuoteLifecycleUseCase) GetQuoteHistory(ctx context.Context, quoteID string) ([]entities.AuditEvent, error) {
	if _, err := u.GetQuote(ctx, quoteID); err != nil {
		return nil, err
	}
	return u.auditRepo.ListByQuoteID(ctx, quoteID)
}

func mapVersionConflict(err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return ErrConcurrentModification
	}
	return err
}

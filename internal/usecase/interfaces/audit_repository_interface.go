package interfaces

import (
	"context"

	"visionpos/internal/domain/entities"
)

// IAuditRepository reads the append-only audit ledger. Writes happen
// exclusively inside the quote/signature repository transactions, so there
// is no append method to misuse and no update or delete at all.

type IAuditRepository interface {
	// ListByQuoteID returns the full history for a quote (quote events
	// plus its signatures' events), ordered by occurred_at then seq.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.AuditEvent, error)

	// ListBySubject returns the events for one subject in occurrence
	// order.
	ListBySubject(ctx context.Context, subjectType entities.AuditSubjectType, subjectID string) ([]entities.AuditEvent, error)
}

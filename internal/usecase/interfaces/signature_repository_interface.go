package interfaces

import (
	"context"

	"visionpos/internal/domain/entities"
)

// SignatureCapture is the unit committed when a signature is captured:
// the new record, the optional superseded predecessor (post-image with its
// invalidation fields set), the quote post-image carrying the activity
// touch, and the audit events documenting all of it. The whole set lands
// in one DynamoDB transaction.
type SignatureCapture struct {
	Record               entities.SignatureRecord
	Superseded           *entities.SignatureRecord
	Quote                entities.Quote
	ExpectedQuoteVersion int64
	Events               []entities.AuditEvent
}

// ISignatureRepository abstracts DynamoDB persistence for SignatureRecord.
//
// Records are append-only: CommitCapture inserts, Invalidate and
// UpdateNameVerification rewrite single records guarded on is_valid, and
// nothing ever deletes.

type ISignatureRepository interface {
	GetByID(ctx context.Context, id string) (entities.SignatureRecord, error)

	// ListByQuoteID returns every record for the quote, valid or not,
	// ordered by captured_at ascending.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.SignatureRecord, error)

	// CommitCapture applies a capture atomically. Returns
	// ErrVersionConflict when the quote version guard or the superseded
	// record's is_valid guard fails.
	CommitCapture(ctx context.Context, capture SignatureCapture) error

	// Invalidate writes the invalidated post-image rec, conditioned on
	// the stored record still being valid. Returns ErrVersionConflict if
	// the record was already invalidated concurrently.
	Invalidate(ctx context.Context, rec entities.SignatureRecord, event entities.AuditEvent) error

	// UpdateNameVerification writes the name-verified post-image rec,
	// conditioned on the stored record still being valid.
	UpdateNameVerification(ctx context.Context, rec entities.SignatureRecord, event entities.AuditEvent) error
}

package interfaces

import (
	"context"
	"errors"
	"time"

	"visionpos/internal/domain/entities"
)

// ErrVersionConflict is returned when a conditional write loses the race
// on a quote's version (or on a signature's is_valid guard). Usecases map
// it to their concurrent-modification error.
var ErrVersionConflict = errors.New("version conflict")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Every mutating method takes the audit events that must be committed in
// the same transaction as the write: either both persist or neither does.
// Missing quotes are reported as zero-value entities, not errors.

type IQuoteRepository interface {
	// Create inserts a new quote, failing if the id already exists.
	Create(ctx context.Context, q entities.Quote, events []entities.AuditEvent) (entities.Quote, error)

	GetByID(ctx context.Context, id string) (entities.Quote, error)

	// UpdateWithVersion writes the full post-image q (whose Version must
	// already be expectedVersion+1) conditioned on the stored version
	// still being expectedVersion. Returns ErrVersionConflict if a
	// concurrent writer got there first.
	UpdateWithVersion(ctx context.Context, q entities.Quote, expectedVersion int64, events []entities.AuditEvent) (entities.Quote, error)

	// ListStale returns quotes in a non-terminal status whose last
	// activity is strictly older than cutoff.
	ListStale(ctx context.Context, cutoff time.Time) ([]entities.Quote, error)
}

// Clock is the injected time source. Mutating operations stamp
// lastActivityAt and audit events from it, and the expiration sweep
// compares thresholds against it.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

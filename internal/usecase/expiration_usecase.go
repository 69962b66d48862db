package usecase

import (
	"context"
	"errors"
	"time"

	"visionpos/internal/domain/entities"
	"visionpos/internal/domain/workflow"
	"visionpos/internal/infrastructure/logging"
	"visionpos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// SweepReport summarizes one expiration pass.
type SweepReport struct {
	Scanned int
	Expired int
	Skipped int
	Failed  int
}

// IExpirationUseCase forces stale quotes into EXPIRED through the same
// lifecycle entry point user actions take; there is no status bypass.

type IExpirationUseCase interface {
	SweepExpired(ctx context.Context) (SweepReport, error)
}

type ExpirationUseCase struct {
	lifecycle IQuoteLifecycleUseCase
	quoteRepo interfaces.IQuoteRepository
	clock     interfaces.Clock
	threshold time.Duration
	logger    *logrus.Logger
}

var _ IExpirationUseCase = (*ExpirationUseCase)(nil)

func NewExpirationUseCase(
	lifecycle IQuoteLifecycleUseCase,
	quoteRepo interfaces.IQuoteRepository,
	clock interfaces.Clock,
	threshold time.Duration,
	logger *logrus.Logger,
) *ExpirationUseCase {
	return &ExpirationUseCase{
		lifecycle: lifecycle,
		quoteRepo: quoteRepo,
		clock:     clock,
		threshold: threshold,
		logger:    logger,
	}
}

// SweepExpired expires every non-terminal quote whose last activity is
// older than the threshold. A quote that fails to expire (a user
// transition raced it, or it was already terminal by the time we got to
// it) is logged and skipped; the sweep never aborts the batch.
func (u *ExpirationUseCase) SweepExpired(ctx context.Context) (SweepReport, error) {
	cutoff := u.clock.Now().UTC().Add(-u.threshold)

	stale, err := u.quoteRepo.ListStale(ctx, cutoff)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{Scanned: len(stale)}
	for _, q := range stale {
		if workflow.IsTerminal(q.Status) {
			report.Skipped++
			continue
		}

		_, err := u.lifecycle.TransitionQuote(ctx, q.ID, entities.QuoteStatusExpired, TransitionContext{Actor: SystemExpirationActor})
		switch {
		case err == nil:
			report.Expired++
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrConcurrentModification), errors.Is(err, ErrQuoteNotFound):
			// Raced by a user transition; the quote is no longer ours to
			// expire.
			report.Skipped++
			u.logger.WithFields(logrus.Fields{
				"quote_id": q.ID,
				"status":   q.Status,
			}).Info("expiration sweep skipped quote")
		default:
			report.Failed++
			logging.LogError(u.logger, "expiration_usecase.go", "SweepExpired", "expiring stale quote", q.ID, err)
		}
	}
	return report, nil
}

package sweeper

import (
	"context"
	"time"

	"visionpos/internal/infrastructure/logging"
	"visionpos/internal/usecase"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically runs the expiration usecase. It is the only caller
// allowed to move quotes into EXPIRED, and it does so through the same
// lifecycle entry point as every user action.

type Sweeper struct {
	expiration usecase.IExpirationUseCase
	interval   time.Duration
	logger     *logrus.Logger
}

func New(expiration usecase.IExpirationUseCase, interval time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{expiration: expiration, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, sweeping once immediately and then on
// every tick. Callers start it in its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiration sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	report, err := s.expiration.SweepExpired(ctx)
	if err != nil {
		logging.LogError(s.logger, "sweeper.go", "sweep", "running expiration sweep", nil, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"scanned": report.Scanned,
		"expired": report.Expired,
		"skipped": report.Skipped,
		"failed":  report.Failed,
	}).Info("expiration sweep finished")
}

package workers

import (
	"context"
	"time"

	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker blanks expired password-reset tokens so stale tokens
// cannot linger in the users table.
type TokenCleanupWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, userRepo repositories.UserRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:       db,
		userRepo: userRepo,
		interval: time.Hour,
	}
}

func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			cleared, err := w.userRepo.ClearExpiredResetTokens(w.db, time.Now())
			if err != nil {
				logger.Error("Error clearing expired reset tokens", "error", err)
			} else if cleared > 0 {
				logger.Info("Cleared expired reset tokens", "count", cleared)
			}
		}
	}
}

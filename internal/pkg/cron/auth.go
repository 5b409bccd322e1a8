package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
)

// AuthJobs keeps the refresh token table small
type AuthJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	now              func() time.Time
}

func NewAuthJobs(refreshTokenRepo auth.RefreshTokenRepository, now func() time.Time) *AuthJobs {
	if now == nil {
		now = time.Now
	}
	return &AuthJobs{refreshTokenRepo: refreshTokenRepo, now: now}
}

func (j *AuthJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_refresh_tokens", 6*time.Hour, j.PruneRefreshTokens)
}

// PruneRefreshTokens deletes refresh tokens that have already expired
func (j *AuthJobs) PruneRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to prune refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: Pruned expired refresh tokens", "count", deleted)
	}
	return nil
}

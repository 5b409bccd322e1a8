package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists refresh tokens by hash.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, employeeID string, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	// IsRefreshTokenRevoked reports revoked or expired tokens as revoked.
	IsRefreshTokenRevoked(ctx context.Context, token string) (employeeID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

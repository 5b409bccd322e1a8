package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.SQLiteDB
}

func NewRefreshTokenRepository(db *database.SQLiteDB) auth.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, employeeID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO refresh_tokens (employee_id, token_hash, expires_at, user_agent, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, query,
		employeeID, auth.HashToken(token), time.Unix(expiresAt, 0).UTC(),
		sessionReq.UserAgent, sessionReq.IPAddress, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = ?
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var employeeID string
	var revokedAt *time.Time
	var expiresAt time.Time

	err := q.QueryRowContext(ctx, query, auth.HashToken(token)).Scan(&employeeID, &revokedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, auth.ErrInvalidToken
		}
		return "", false, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if revokedAt != nil || !expiresAt.After(time.Now()) {
		return employeeID, true, nil
	}
	return employeeID, false, nil
}

func (r *refreshTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked_at = ? WHERE token_hash = ? AND revoked_at IS NULL`,
		time.Now().UTC(), auth.HashToken(token),
	)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return res.RowsAffected()
}

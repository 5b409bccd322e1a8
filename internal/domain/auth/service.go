package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	// LoginWithGoogle signs in an already registered email.
	LoginWithGoogle(ctx context.Context, email string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Me(ctx context.Context, employeeID string) (MeResponse, error)
	SSEToken(ctx context.Context, employeeID string) (SSETokenResponse, error)
}

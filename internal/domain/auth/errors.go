package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrTokenExpired               = errors.New("token has expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrUserNotFound               = errors.New("user not found")
	ErrGoogleAccountNotRegistered = errors.New("no account registered for this google email")
	ErrGoogleLoginDisabled        = errors.New("google sign-in is not configured")
	ErrGoogleAccessDeniedByUser   = errors.New("google access denied by user")
	ErrStateCookieEmpty           = errors.New("state cookie is empty")
	ErrStateParamEmpty            = errors.New("state parameter is empty")
	ErrStateMismatch              = errors.New("state mismatch")
	ErrCodeValueEmpty             = errors.New("code value is empty")
	ErrManagerSignupDisabled      = errors.New("manager accounts cannot be self-registered")
)

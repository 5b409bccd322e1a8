package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	transactor         database.Transactor
	allowManagerSignup bool
	employee.EmployeeRepository
	jwt.Service
	auth.RefreshTokenRepository
}

// NewAuthService builds the auth service. Self-registration with the manager
// role is rejected unless allowManagerSignup is set.
func NewAuthService(transactor database.Transactor, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, refreshTokenRepository auth.RefreshTokenRepository, allowManagerSignup bool) auth.AuthService {
	return &AuthServiceImpl{
		transactor:             transactor,
		allowManagerSignup:     allowManagerSignup,
		EmployeeRepository:     employeeRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens creates an access/refresh pair and stores the refresh token with txCtx.
func (a *AuthServiceImpl) issueTokens(txCtx context.Context, emp employee.Employee, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.CreateRefreshToken(txCtx, emp.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}
	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := registerReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if registerReq.Role == employee.RoleManager && !a.allowManagerSignup {
		return auth.TokenResponse{}, auth.ErrManagerSignupDisabled
	}

	hashedPassword, err := a.hashPassword(registerReq.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Uniqueness of email and employee code is decided by the insert.
		newEmployee, err := a.EmployeeRepository.Create(txCtx, employee.Employee{
			Name:         registerReq.Name,
			Email:        registerReq.Email,
			PasswordHash: &hashedPassword,
			Role:         registerReq.Role,
			EmployeeCode: registerReq.EmployeeID,
			Department:   registerReq.Department,
		})
		if err != nil {
			return err
		}

		tokenResponse, err = a.issueTokens(txCtx, newEmployee, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("employee registered", "email", registerReq.Email, "role", registerReq.Role)
	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	err = a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse, err = a.issueTokens(txCtx, emp, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	emp, err := a.EmployeeRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotRegistered
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse, err = a.issueTokens(txCtx, emp, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(txCtx, token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				return auth.ErrInvalidToken
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RefreshTokenRepository.RevokeRefreshToken(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != jwt.TokenTypeRefresh {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry
	employeeID, isRevoked, err := a.RefreshTokenRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get employee
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	// 5. Generate new access token
	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, employeeID string) (auth.MeResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.MeResponse{}, auth.ErrUserNotFound
		}
		return auth.MeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return auth.MeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Role:       emp.Role,
		EmployeeID: emp.EmployeeCode,
		Department: emp.Department,
	}, nil
}

// SSEToken implements auth.AuthService.
func (a *AuthServiceImpl) SSEToken(ctx context.Context, employeeID string) (auth.SSETokenResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.SSETokenResponse{}, auth.ErrUserNotFound
		}
		return auth.SSETokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	token, expiresIn, err := a.Service.GenerateSSEToken(emp.ID, emp.Role)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to generate sse token: %w", err)
	}
	return auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}

package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token.
// It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if id, _ := claims["user_id"].(string); id == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeID returns the authenticated employee id from the access token claims.
func EmployeeID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", auth.ErrInvalidToken
	}
	return id, nil
}

// Role returns the role claim, or an empty role when it is missing.
func Role(ctx context.Context) employee.Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return employee.Role(role)
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/response"
)

// RequirePermission checks if the caller's role grants permission
func RequirePermission(permission employee.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := Role(r.Context())
			if role == "" {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !role.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

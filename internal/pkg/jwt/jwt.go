package jwt

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeSSE     = "sse"

	sseTokenTTL = 5 * time.Minute
)

type Service interface {
	GenerateAccessToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error)
	GenerateSSEToken(employeeID string, role employee.Role) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (employeeID string, role employee.Role, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, email string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": employeeID,
		"email":   email,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	// jti keeps two tokens issued in the same second distinct.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": employeeID,
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
		"type":    TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(employeeID string, role employee.Role) (token string, expiresIn int, err error) {
	expiresAt := time.Now().Add(sseTokenTTL).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": employeeID,
		"role":    string(role),
		"type":    TokenTypeSSE,
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, int(sseTokenTTL.Seconds()), nil
}

// ValidateSSEToken validates an SSE token and returns the employee ID and role
func (j *JWTService) ValidateSSEToken(tokenString string) (employeeID string, role employee.Role, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeSSE {
		return "", "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("user_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	employeeID, ok = idVal.(string)
	if !ok || employeeID == "" {
		return "", "", jwt.ErrInvalidJWT()
	}

	roleVal, _ := token.Get("role")
	roleStr, _ := roleVal.(string)
	role = employee.Role(roleStr)
	if !role.IsValid() {
		return "", "", jwt.ErrInvalidJWT()
	}

	return employeeID, role, nil
}

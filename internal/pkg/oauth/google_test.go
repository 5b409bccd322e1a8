package oauth

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleService(t *testing.T, userInfo string) GoogleService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"google-access","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			if r.Header.Get("Authorization") != "Bearer google-access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(userInfo))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	return NewGoogleService("client", "secret", "http://localhost/callback", []string{"email"},
		WithEndpoint(oauth2.Endpoint{
			AuthURL:  server.URL + "/auth",
			TokenURL: server.URL + "/token",
		}, server.URL+"/userinfo"),
	)
}

func TestGoogleService_GenerateState(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost/callback", []string{"email"})

	a := svc.GenerateState("agent")
	b := svc.GenerateState("agent")
	assert.NotEqual(t, a, b)

	decoded, err := base64.URLEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(decoded), ".agent"))
}

func TestGoogleService_RedirectURL(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost/callback", []string{"email"})

	url := svc.RedirectURL("state-123")
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "client_id=client")
}

func TestGoogleService_VerifyUser_Success(t *testing.T) {
	svc := newTestGoogleService(t, `{"id":"g-1","email":" Ana@Example.com ","verified_email":true}`)
	ctx := context.Background()

	token, err := svc.VerifyToken(ctx, "code")
	require.NoError(t, err)

	info, err := svc.VerifyUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "g-1", info.GoogleID)
	assert.Equal(t, "ana@example.com", info.Email)
}

func TestGoogleService_VerifyUser_Unverified(t *testing.T) {
	svc := newTestGoogleService(t, `{"id":"g-1","email":"ana@example.com","verified_email":false}`)
	ctx := context.Background()

	token, err := svc.VerifyToken(ctx, "code")
	require.NoError(t, err)

	_, err = svc.VerifyUser(ctx, token)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrEmailNotVerified = errors.New("google email is not verified")

type GoogleService interface {
	// GenerateState returns a random, URL safe state bound to the caller's user agent.
	GenerateState(userAgent string) string
	RedirectURL(state string) string
	// VerifyToken exchanges the authorization code for a token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches the Google profile and rejects unverified emails.
	VerifyUser(ctx context.Context, token *oauth2.Token) (GoogleInformation, error)
}

type GoogleServiceImpl struct {
	config      *oauth2.Config
	userInfoURL string
}

type Option func(*GoogleServiceImpl)

// WithEndpoint points the service at a different authorization server.
func WithEndpoint(endpoint oauth2.Endpoint, userInfoURL string) Option {
	return func(g *GoogleServiceImpl) {
		g.config.Endpoint = endpoint
		g.userInfoURL = userInfoURL
	}
}

func NewGoogleService(clientID string, clientSecret string, redirectURL string, scopes []string, opts ...Option) GoogleService {
	g := &GoogleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		userInfoURL: defaultUserInfoURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type GoogleInformation struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (g *GoogleServiceImpl) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (g *GoogleServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *GoogleServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

func (g *GoogleServiceImpl) VerifyUser(ctx context.Context, token *oauth2.Token) (GoogleInformation, error) {
	client := g.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return GoogleInformation{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return GoogleInformation{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleInformation{}, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info GoogleInformation
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleInformation{}, fmt.Errorf("failed to decode google user: %w", err)
	}
	if !info.VerifiedEmail {
		return GoogleInformation{}, ErrEmailNotVerified
	}
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))

	return info, nil
}

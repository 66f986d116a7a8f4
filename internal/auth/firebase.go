// Package auth talks to Firebase Authentication over its Identity Toolkit
// REST surface. The rest of the core only depends on two capabilities from
// here: a fresh bearer token per backend call and the signed-in identity.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"career-studio/internal/domain"
)

const (
	DefaultAuthURL  = "https://identitytoolkit.googleapis.com/v1"
	DefaultTokenURL = "https://securetoken.googleapis.com/v1"
)

// ErrNotSignedIn is returned when a token is requested with no active
// session.
var ErrNotSignedIn = errors.New("no user signed in")

// Service holds the credentials of at most one signed-in user.
type Service struct {
	apiKey   string
	authURL  string
	tokenURL string
	http     *http.Client

	mu           sync.Mutex
	refreshToken string
	identity     domain.Identity
}

// NewService creates an auth service against the given endpoints; pass the
// Default* constants outside of tests.
func NewService(apiKey, authURL, tokenURL string, timeout time.Duration) *Service {
	return &Service{
		apiKey:   apiKey,
		authURL:  authURL,
		tokenURL: tokenURL,
		http:     &http.Client{Timeout: timeout},
	}
}

type authResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
}

func (s *Service) doAuth(ctx context.Context, endpoint string, body map[string]interface{}) (*authResponse, error) {
	var out authResponse
	u := fmt.Sprintf("%s/accounts:%s?key=%s", s.authURL, endpoint, url.QueryEscape(s.apiKey))
	if err := postJSON(ctx, s.http, u, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) adopt(resp *authResponse) domain.Identity {
	id := identityFromToken(resp.IDToken)
	if id.UID == "" {
		id.UID = resp.LocalID
	}
	if id.Email == "" {
		id.Email = resp.Email
	}
	if id.Name == "" {
		id.Name = resp.DisplayName
	}
	s.mu.Lock()
	s.refreshToken = resp.RefreshToken
	s.identity = id
	s.mu.Unlock()
	return id
}

// SignUp registers an email/password account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password string) (domain.Identity, error) {
	resp, err := s.doAuth(ctx, "signUp", map[string]interface{}{
		"email": email, "password": password, "returnSecureToken": true,
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("sign up: %w", err)
	}
	return s.adopt(resp), nil
}

// SignIn authenticates an email/password account.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.Identity, error) {
	resp, err := s.doAuth(ctx, "signInWithPassword", map[string]interface{}{
		"email": email, "password": password, "returnSecureToken": true,
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("sign in: %w", err)
	}
	return s.adopt(resp), nil
}

// SignInWithIDP exchanges a social provider credential (e.g. a Google ID
// token) for a Firebase session.
func (s *Service) SignInWithIDP(ctx context.Context, providerID, providerToken string) (domain.Identity, error) {
	resp, err := s.doAuth(ctx, "signInWithIdp", map[string]interface{}{
		"postBody":            fmt.Sprintf("id_token=%s&providerId=%s", providerToken, providerID),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("social sign in: %w", err)
	}
	return s.adopt(resp), nil
}

// SignOut drops the local session. Nothing is revoked server-side.
func (s *Service) SignOut() {
	s.mu.Lock()
	s.refreshToken = ""
	s.identity = domain.Identity{}
	s.mu.Unlock()
}

// CurrentUser returns the signed-in identity, if any.
func (s *Service) CurrentUser() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.refreshToken != ""
}

// Token exchanges the session's refresh token for an ID token. Called once
// per backend request; tokens are deliberately not cached across calls.
func (s *Service) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	rt := s.refreshToken
	s.mu.Unlock()
	if rt == "" {
		return "", ErrNotSignedIn
	}

	var out struct {
		IDToken string `json:"id_token"`
	}
	u := fmt.Sprintf("%s/token?key=%s", s.tokenURL, url.QueryEscape(s.apiKey))
	body := map[string]interface{}{"grant_type": "refresh_token", "refresh_token": rt}
	if err := postJSON(ctx, s.http, u, body, &out); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if out.IDToken == "" {
		return "", errors.New("token endpoint returned no id_token")
	}
	return out.IDToken, nil
}

// identityFromToken reads the uid/email/name claims out of a Firebase ID
// token. The token comes straight from Firebase over TLS, so the signature
// is not re-verified here; the backend verifies it on every request.
func identityFromToken(idToken string) domain.Identity {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return domain.Identity{}
	}
	id := domain.Identity{}
	if v, ok := claims["user_id"].(string); ok {
		id.UID = v
	} else if v, ok := claims["sub"].(string); ok {
		id.UID = v
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		id.Name = v
	}
	return id
}

// trimAuthError shortens Identity Toolkit error bodies to their message.
func trimAuthError(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 200 {
		body = body[:200]
	}
	return body
}

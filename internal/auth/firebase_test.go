package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeIDToken builds an unsigned JWT with the given claims; the service
// only decodes, it never verifies.
func fakeIDToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	enc := func(v interface{}) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := map[string]string{"alg": "none", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "."
}

func newTestService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService("test-key", srv.URL, srv.URL, 5*time.Second), srv
}

func TestSignInAndToken(t *testing.T) {
	idToken := fakeIDToken(t, map[string]interface{}{
		"user_id": "uid-1",
		"email":   "jane@example.com",
		"name":    "Jane Doe",
	})

	var tokenCalls int
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "accounts:signInWithPassword"):
			if r.URL.Query().Get("key") != "test-key" {
				t.Errorf("api key missing: %s", r.URL.String())
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"idToken":      idToken,
				"refreshToken": "refresh-1",
				"localId":      "uid-1",
				"email":        "jane@example.com",
			})
		case strings.Contains(r.URL.Path, "/token"):
			tokenCalls++
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["grant_type"] != "refresh_token" || body["refresh_token"] != "refresh-1" {
				t.Errorf("bad token exchange body: %v", body)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"id_token": idToken})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	id, err := svc.SignIn(context.Background(), "jane@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if id.UID != "uid-1" || id.Email != "jane@example.com" || id.Name != "Jane Doe" {
		t.Fatalf("identity = %+v", id)
	}

	// fresh token per call, never cached
	for i := 0; i < 3; i++ {
		tok, err := svc.Token(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if tok != idToken {
			t.Fatalf("token = %q", tok)
		}
	}
	if tokenCalls != 3 {
		t.Fatalf("expected 3 token exchanges, got %d", tokenCalls)
	}

	if _, ok := svc.CurrentUser(); !ok {
		t.Fatal("expected a signed-in user")
	}
}

func TestTokenWithoutSession(t *testing.T) {
	svc := NewService("k", "http://invalid", "http://invalid", time.Second)
	if _, err := svc.Token(context.Background()); err != ErrNotSignedIn {
		t.Fatalf("expected ErrNotSignedIn, got %v", err)
	}
}

func TestSignOutDropsSession(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      fakeIDToken(t, map[string]interface{}{"user_id": "u"}),
			"refreshToken": "r",
			"localId":      "u",
		})
	}))
	if _, err := svc.SignUp(context.Background(), "a@b", "pw"); err != nil {
		t.Fatal(err)
	}
	svc.SignOut()
	if _, ok := svc.CurrentUser(); ok {
		t.Fatal("session survived sign out")
	}
	if _, err := svc.Token(context.Background()); err != ErrNotSignedIn {
		t.Fatalf("expected ErrNotSignedIn after sign out, got %v", err)
	}
}

func TestSignInFailureSurfacesMessage(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	_, err := svc.SignIn(context.Background(), "jane@example.com", "nope")
	if err == nil || !strings.Contains(err.Error(), "INVALID_PASSWORD") {
		t.Fatalf("expected INVALID_PASSWORD in error, got %v", err)
	}
}

package authgoogle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drafthub/drafthub/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, clientID, clientSecret string) *Handler {
	t.Helper()
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return NewHandler(sessionMgr, nil, clientID, clientSecret, "http://localhost:3000", "test-state-key-32-bytes-long!!!!", logger)
}

func TestIsConfigured(t *testing.T) {
	if newTestHandler(t, "", "").IsConfigured() {
		t.Error("expected unconfigured without client credentials")
	}
	if !newTestHandler(t, "id", "secret").IsConfigured() {
		t.Error("expected configured with client credentials")
	}
}

func TestServeLogin_UnconfiguredRedirectsToLogin(t *testing.T) {
	h := newTestHandler(t, "", "")

	rec := httptest.NewRecorder()
	h.ServeLogin(rec, httptest.NewRequest("GET", "/auth/google", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?error=google_not_configured" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestServeLogin_RedirectsToGoogleWithStateCookie(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	rec := httptest.NewRecorder()
	h.ServeLogin(rec, httptest.NewRequest("GET", "/auth/google", nil))

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("Location should point at Google, got %q", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("Location should carry a state parameter, got %q", loc)
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == stateCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a signed state cookie to be set")
	}
}

func TestServeCallback_ProviderErrorRedirects(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	rec := httptest.NewRecorder()
	h.ServeCallback(rec, httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil))

	if loc := rec.Header().Get("Location"); loc != "/login?error=google_denied" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestServeCallback_MissingStateRedirects(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	rec := httptest.NewRecorder()
	h.ServeCallback(rec, httptest.NewRequest("GET", "/auth/google/callback?code=abc", nil))

	if loc := rec.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestServeCallback_ForgedStateRejected(t *testing.T) {
	h := newTestHandler(t, "client-id", "client-secret")

	// Initiate to get a legitimate state cookie.
	rec1 := httptest.NewRecorder()
	h.ServeLogin(rec1, httptest.NewRequest("GET", "/auth/google", nil))

	// Replay the cookie with a different state value in the callback.
	req := httptest.NewRequest("GET", "/auth/google/callback?code=abc&state=forged", nil)
	for _, c := range rec1.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.ServeCallback(rec2, req)

	if loc := rec2.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestGenerateState_UniqueAndOpaque(t *testing.T) {
	a, err := generateState()
	if err != nil {
		t.Fatalf("generateState: %v", err)
	}
	b, err := generateState()
	if err != nil {
		t.Fatalf("generateState: %v", err)
	}
	if a == b {
		t.Error("two states should not collide")
	}
	if len(a) < 32 {
		t.Errorf("state too short: %d", len(a))
	}
}

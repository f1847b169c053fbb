package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	userEmailKey = "user_email"
	userNameKey  = "user_name"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is the resolved caller for one request, injected into
// r.Context() by LoadSessionUser.
//
// Role is never read from the cookie: it is re-resolved from the users
// collection on every request so that role edits made by an admin take
// effect on the subject's next page load. RoleWarning is set when that
// resolution degraded (store failure) and the user was defaulted to pending.
type SessionUser struct {
	ID          string
	Email       string
	Name        string
	Role        string
	RoleWarning bool
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context. Test helper only;
// production requests go through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| RoleResolver                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// RoleResolver maps an identity (email + opaque provider id) to a role,
// lazily creating the backing user record on first sight.
//
// degraded=true means the resolver could not trust the store (for example a
// failed pending-insert) and the returned role is a safe default; callers
// surface a warning but proceed.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email, id string) (role string, degraded bool, err error)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store and the auth middleware.
type SessionManager struct {
	store    *sessions.CookieStore
	name     string
	log      *zap.Logger
	resolver RoleResolver
}

// NewSessionManager builds a cookie-backed session manager. The `secure`
// flag controls Secure cookies and SameSite mode: prod uses Secure+None,
// local dev over http uses Lax so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (logout needs its options to
// issue a matching deletion cookie).
func (m *SessionManager) Store() *sessions.CookieStore { return m.store }

// Name returns the session cookie name.
func (m *SessionManager) Name() string { return m.name }

// GetSession returns the request's session, creating a fresh one if the
// cookie is absent or fails to decode (the error is still returned so
// callers can log decode failures).
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

// SetRoleResolver wires the store-backed role resolver. Must be called
// before the handler tree is served; without it, signed-in users resolve to
// pending with a warning.
func (m *SessionManager) SetRoleResolver(res RoleResolver) { m.resolver = res }

// SignIn writes the identity into the session. The role is intentionally
// not stored; see SessionUser.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, id, email, name string) error {
	sess, err := m.GetSession(r)
	if err != nil {
		// Decode failure on a stale cookie: proceed with the fresh session.
		m.log.Warn("session decode failed during sign-in, using fresh session", zap.Error(err))
	}
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = id
	sess.Values[userEmailKey] = email
	sess.Values[userNameKey] = name
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if they are logged in,
// resolving the current role from the store on every request.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.GetSession(r)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Email: getString(sess, userEmailKey),
				Name:  getString(sess, userNameKey),
			}
			u.Role, u.RoleWarning = m.resolveRole(r.Context(), u)
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// resolveRole maps the session identity to its current role. Store failures
// degrade to pending with a warning rather than blocking the request: the
// caller is treated as unprivileged and the UI shows a banner.
func (m *SessionManager) resolveRole(ctx context.Context, u *SessionUser) (string, bool) {
	if m.resolver == nil {
		m.log.Warn("no role resolver configured; defaulting to pending",
			zap.String("email", u.Email))
		return "pending", true
	}

	role, degraded, err := m.resolver.ResolveRole(ctx, u.Email, u.ID)
	if err != nil {
		m.log.Error("role resolution failed; defaulting to pending",
			zap.String("email", u.Email),
			zap.Error(err))
		return "pending", true
	}
	return role, degraded
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		redirectToLogin(w, r)
	})
}

// RequireRole ensures there is a user with one of the allowed roles in
// context. Unknown/invalid roles never match any allowed role, so records
// with a corrupted role value fall through to the forbidden path.
func (m *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)

			// Not signed in → 401 semantics.
			if !ok {
				redirectToLogin(w, r)
				return
			}

			// Signed in but wrong role → 403 semantics.
			if _, has := set[strings.ToLower(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(currentURI(r))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}

// Package devlogin is the simulated identity provider for development and
// testing. It fabricates an Identity deterministically from an email: the
// same email always yields the same synthetic id (UUIDv5 in the DNS
// namespace), so flows are repeatable without a real identity provider.
//
// The feature is mounted only when the dev_login config flag is set; it
// must never be reachable in production.
package devlogin

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/app/system/normalize"
	"github.com/drafthub/drafthub/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Resolver   auth.RoleResolver
}

func NewHandler(sessionMgr *auth.SessionManager, resolver auth.RoleResolver, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Resolver:   resolver,
	}
}

// SyntheticID derives the deterministic identity token for an email.
func SyntheticID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(normalize.Email(email))).String()
}

// ServeSimulate handles POST /auth/dev.
func (h *Handler) ServeSimulate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	if email == "" || !strings.Contains(email, "@") {
		http.Redirect(w, r, "/login?error=invalid_email", http.StatusSeeOther)
		return
	}

	id := SyntheticID(email)
	name := email[:strings.Index(email, "@")]

	if h.Resolver != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		if _, degraded, err := h.Resolver.ResolveRole(ctx, email, id); err != nil || degraded {
			h.Log.Warn("role resolution degraded during simulated login",
				zap.String("email", email), zap.Error(err))
		}
		cancel()
	}

	if err := h.SessionMgr.SignIn(w, r, id, email, name); err != nil {
		h.Log.Error("save session failed during simulated login",
			zap.String("email", email), zap.Error(err))
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("simulated login",
		zap.String("email", email),
		zap.String("synthetic_id", id))

	http.Redirect(w, r, urlutil.SafeReturn(r.FormValue("return"), "", "/"), http.StatusSeeOther)
}

// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type Handler struct {
	Log             *zap.Logger
	GoogleEnabled   bool // true if Google OAuth is configured
	DevLoginEnabled bool // true if the simulated-login bypass is mounted
}

func NewHandler(googleEnabled, devLoginEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Log:             logger,
		GoogleEnabled:   googleEnabled,
		DevLoginEnabled: devLoginEnabled,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error           string
	ReturnURL       string
	GoogleEnabled   bool
	DevLoginEnabled bool
}

// errorMessage maps ?error= codes set by the auth flows to user-visible
// text. Unknown codes get a generic message so the raw code never leaks
// into the page.
func errorMessage(code string) string {
	switch code {
	case "":
		return ""
	case "google_not_configured":
		return "Google sign-in is not configured on this server."
	case "google_denied":
		return "Google sign-in was cancelled or denied."
	case "invalid_state":
		return "The sign-in request expired. Please try again."
	case "token_exchange", "user_info":
		return "Google sign-in failed. Please try again."
	case "session":
		return "Your session could not be created. Please try again."
	default:
		return "Sign-in failed. Please try again."
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in: the root router picks the right view.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginFormData{
		BaseVM:          viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:           errorMessage(query.Get(r, "error")),
		ReturnURL:       query.Get(r, "return"),
		GoogleEnabled:   h.GoogleEnabled,
		DevLoginEnabled: h.DevLoginEnabled,
	}

	templates.Render(w, r, "login", data)
}

package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/drafthub/drafthub/internal/app/features/errors"
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/app/system/roles"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler routes the root page. This is where role-based routing happens:
// the view is chosen from the freshly resolved role on every request, so a
// role change takes effect on the next page load without re-login.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing & role router                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		data := struct {
			viewdata.BaseVM
		}{
			BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
		}
		templates.Render(w, r, "home", data)
		return
	}

	switch roles.ViewFor(roles.Parse(u.Role)) {
	case roles.ViewPending:
		uierrors.RenderPending(w, r)
	case roles.ViewHandbook:
		http.Redirect(w, r, "/handbook", http.StatusSeeOther)
	case roles.ViewAdminChoice:
		data := struct {
			viewdata.BaseVM
		}{
			BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
		}
		templates.Render(w, r, "admin_choice", data)
	default:
		h.Log.Warn("account with unrecognized role reached root",
			zap.String("email", u.Email),
			zap.String("role", u.Role))
		uierrors.RenderUnknownRole(w, r, u.Role)
	}
}

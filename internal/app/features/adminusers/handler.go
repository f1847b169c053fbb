// internal/app/features/adminusers/handler.go
package adminusers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/drafthub/drafthub/internal/app/features/errors"
	userstore "github.com/drafthub/drafthub/internal/app/store/users"
	"github.com/drafthub/drafthub/internal/app/system/timeouts"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
	"github.com/drafthub/drafthub/internal/domain/models"
	"go.uber.org/zap"
)

// rolePrefix keys the per-row role selects in the grid form.
const rolePrefix = "role_"

// Handler serves the user role editor. Only the role field is editable; id,
// email, and created_at are display-only.
type Handler struct {
	Log    *zap.Logger
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Users:  users,
		ErrLog: uierrors.NewErrorLogger(logger),
	}
}

type pageData struct {
	viewdata.BaseVM

	Users   []models.User
	Roles   []string
	Saved   int  // rows committed by the previous save
	ShowMsg bool // render the confirmation banner
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/users – editable role grid                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "load users for role editor", err,
			"The user list could not be loaded. Please try again.", "/")
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "User Management", "/"),
		Users:  users,
		Roles:  []string{models.RolePending, models.RoleUser, models.RoleAdmin},
	}
	if saved := r.URL.Query().Get("saved"); saved != "" {
		if n, err := strconv.Atoi(saved); err == nil && n >= 0 {
			data.Saved = n
			data.ShowMsg = true
		}
	}

	templates.Render(w, r, "admin_users", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/users – diff & commit role edits                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse role editor form", err,
			"The submitted form could not be read.", "/admin/users")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Diff against a fresh snapshot, not the grid the admin looked at: rows
	// already matching the submitted role are skipped even if another admin
	// changed them in between.
	original, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "reload users before commit", err,
			"The user list could not be reloaded. No changes were saved.", "/admin/users")
		return
	}

	changes := StageEdits(original, editedRoles(r.PostForm))

	// Commit sequentially; the first failure stops the batch. Prior updates
	// stay applied and the error names the row that failed.
	for i, ch := range changes {
		if err := h.Users.UpdateRole(ctx, ch.ID, ch.Role); err != nil {
			h.Log.Error("role update failed",
				zap.String("user_id", ch.ID),
				zap.String("email", ch.Email),
				zap.String("role", ch.Role),
				zap.Int("applied", i),
				zap.Error(err))
			msg := fmt.Sprintf(
				"Updating %s to %q failed; %d earlier change(s) were saved and the rest were not attempted.",
				ch.Email, ch.Role, i)
			uierrors.RenderError(w, r, msg, "/admin/users")
			return
		}
	}

	h.Log.Info("role edits committed", zap.Int("changed", len(changes)))
	http.Redirect(w, r, "/admin/users?saved="+url.QueryEscape(strconv.Itoa(len(changes))), http.StatusSeeOther)
}

// editedRoles extracts the submitted per-row roles from the grid form.
func editedRoles(form url.Values) map[string]string {
	edited := make(map[string]string)
	for key, vals := range form {
		if !strings.HasPrefix(key, rolePrefix) || len(vals) == 0 {
			continue
		}
		id := strings.TrimPrefix(key, rolePrefix)
		if id == "" {
			continue
		}
		edited[id] = vals[0]
	}
	return edited
}

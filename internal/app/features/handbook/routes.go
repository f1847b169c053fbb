// internal/app/features/handbook/routes.go
package handbook

import (
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole(models.RoleUser, models.RoleAdmin))
		pr.Get("/", h.ServeHandbook)
	})

	return r
}

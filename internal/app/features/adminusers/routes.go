// internal/app/features/adminusers/routes.go
package adminusers

import (
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole(models.RoleAdmin))
		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleSave)
	})

	return r
}

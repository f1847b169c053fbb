package devlogin

import "github.com/go-chi/chi/v5"

// Routes returns the router for the simulated login endpoint. Bootstrap
// mounts it only when the dev_login config flag is enabled.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeSimulate)
	return r
}

// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it defaults to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Sign in required", backURL),
		Message: "Please sign in to continue.",
	}
	templates.Render(w, r, "error_forbidden", data)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", backURL),
		Message: msg,
	}
	templates.Render(w, r, "error_forbidden", data)
}

// RenderError shows an inline error page for a failed operation. The view
// stays interactive: the back link returns the user to a retryable page.
func RenderError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", backURL),
		Message: msg,
	}
	templates.Render(w, r, "error_message", data)
}

// RenderBadRequest shows an error page for malformed input.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusBadRequest)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Bad request", backURL),
		Message: msg,
	}
	templates.Render(w, r, "error_message", data)
}

// RenderPending shows the access-denied view for accounts awaiting approval.
// No further data is fetched for pending users.
func RenderPending(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Pending approval", "/"),
		Message: "Your account is currently pending approval. Please contact the administrator.",
	}
	templates.Render(w, r, "pending", data)
}

// RenderUnknownRole shows an explicit error naming the unrecognized role
// value on the account. This is reachable (a manually edited record) and
// must not crash the app.
func RenderUnknownRole(w http.ResponseWriter, r *http.Request, role string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Unknown role", "/"),
		Message: "Your account has an unrecognized role and cannot be routed. Please contact the administrator.",
		Detail:  role,
	}
	templates.Render(w, r, "error_unknown_role", data)
}

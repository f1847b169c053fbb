// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs zap logging with user-visible error pages so handlers
// never swallow a failure silently: every path both logs and renders.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger for handlers.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogStoreError logs a failed remote-store call and renders an inline error
// page. The session survives; the user lands on a retryable view.
func (e *ErrorLogger) LogStoreError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderError(w, r, userMsg, backURL)
}

// LogBadRequest logs malformed input and renders a bad-request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Warn(msg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderBadRequest(w, r, userMsg, backURL)
}

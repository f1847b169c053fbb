// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	adminusersfeature "github.com/drafthub/drafthub/internal/app/features/adminusers"
	authgooglefeature "github.com/drafthub/drafthub/internal/app/features/authgoogle"
	devloginfeature "github.com/drafthub/drafthub/internal/app/features/devlogin"
	errorsfeature "github.com/drafthub/drafthub/internal/app/features/errors"
	handbookfeature "github.com/drafthub/drafthub/internal/app/features/handbook"
	healthfeature "github.com/drafthub/drafthub/internal/app/features/health"
	homefeature "github.com/drafthub/drafthub/internal/app/features/home"
	loginfeature "github.com/drafthub/drafthub/internal/app/features/login"
	logoutfeature "github.com/drafthub/drafthub/internal/app/features/logout"
	"github.com/drafthub/drafthub/internal/app/store/designdocs"
	userstore "github.com/drafthub/drafthub/internal/app/store/users"
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, wires the store-backed role resolver, and mounts
// feature routers for every application area: home, login, the OAuth
// endpoints, the handbook, and the admin role editor.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// The role resolver re-reads the caller's role from the users collection
	// on every request, so an admin's role edit takes effect on the
	// subject's next page load without re-login.
	users := userstore.New(deps.MongoDatabase)
	sessionMgr.SetRoleResolver(users)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for the form posts (dev login, role editor save).
	r.Use(csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page & role router
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	googleEnabled := appCfg.GoogleClientID != ""
	loginHandler := loginfeature.NewHandler(googleEnabled, appCfg.DevLogin, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	googleHandler := authgooglefeature.NewHandler(
		sessionMgr, users,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret,
		appCfg.BaseURL, appCfg.SessionKey,
		logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	if appCfg.DevLogin {
		devHandler := devloginfeature.NewHandler(sessionMgr, users, logger)
		r.Mount("/auth/dev", devloginfeature.Routes(devHandler))
		logger.Warn("simulated login endpoint enabled at /auth/dev")
	}

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Document table + viewer (user and admin roles)
	docs := designdocs.New(deps.MongoDatabase)
	handbookHandler := handbookfeature.NewHandler(docs, logger)
	r.Mount("/handbook", handbookfeature.Routes(handbookHandler, sessionMgr))

	// User role editor (admin only)
	adminHandler := adminusersfeature.NewHandler(users, logger)
	r.Mount("/admin/users", adminusersfeature.Routes(adminHandler, sessionMgr))

	return r, nil
}

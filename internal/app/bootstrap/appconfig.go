// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: framework-level settings
// like HTTP ports, TLS, and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: drafthub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration
	GoogleClientID     string // OAuth2 client ID (blank disables Google sign-in)
	GoogleClientSecret string // OAuth2 client secret

	// Base URL for the OAuth callback, e.g. "https://handbook.example.com"
	BaseURL string

	// DevLogin enables the simulated-login endpoint that fabricates a
	// deterministic identity from an email. Never enable in production.
	DevLogin bool

	// SuperAdminEmail is promoted/created as admin on startup so a fresh
	// deployment has an operator who can approve pending users.
	SuperAdminEmail string

	// SiteName is the display name used in page titles and the nav bar.
	SiteName string
}

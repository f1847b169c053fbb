// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/drafthub/drafthub/internal/app/resources"
	userstore "github.com/drafthub/drafthub/internal/app/store/users"
	"github.com/drafthub/drafthub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Besides loading shared templates, this is where the superadmin bootstrap
// runs: on a cold start the users collection is empty and nobody could ever
// be approved, so the configured superadmin_email is promoted (or created)
// as admin.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	if appCfg.SuperAdminEmail != "" {
		users := userstore.New(deps.MongoDatabase)
		if err := users.EnsureAdmin(ctx, appCfg.SuperAdminEmail); err != nil {
			return err
		}
		logger.Info("superadmin ensured", zap.String("email", appCfg.SuperAdminEmail))
	}

	return nil
}

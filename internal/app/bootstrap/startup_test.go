package bootstrap

import (
	"testing"

	userstore "github.com/drafthub/drafthub/internal/app/store/users"
	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/drafthub/drafthub/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestStartup_EnsuresSuperadmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{SuperAdminEmail: "root@example.com"}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	u, err := userstore.New(db).GetByEmail(ctx, "root@example.com")
	if err != nil {
		t.Fatalf("superadmin record missing: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want admin", u.Role)
	}
}

func TestStartup_NoSuperadminConfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := Startup(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("Startup without superadmin_email must succeed: %v", err)
	}
}

func TestEnsureSchema_UniqueEmailIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	store := userstore.New(db)
	if _, err := store.Create(ctx, models.User{Email: "dup@example.com", Role: models.RolePending}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := store.Create(ctx, models.User{Email: "DUP@example.com", Role: models.RolePending})
	if err != userstore.ErrDuplicateEmail {
		t.Errorf("second insert: got %v, want ErrDuplicateEmail", err)
	}
}

// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/drafthub/drafthub/internal/app/system/auth"
	"github.com/drafthub/drafthub/internal/app/system/roles"
	"github.com/drafthub/drafthub/internal/domain/models"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models. Embed it in your
// feature-specific view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := pageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn  bool
	Role        string
	UserName    string
	UserEmail   string
	RoleWarning bool // role resolution degraded; show a banner

	// Nav visibility, derived from the role
	CanViewHandbook bool
	CanManageUsers  bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

var siteName = models.DefaultSiteName

// Init sets the configured site name. Call once at startup from bootstrap.
func Init(name string) {
	if name != "" {
		siteName = name
	}
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    siteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		role := roles.Parse(u.Role)
		vm.IsLoggedIn = true
		vm.Role = u.Role
		vm.UserName = u.Name
		vm.UserEmail = u.Email
		vm.RoleWarning = u.RoleWarning
		vm.CanViewHandbook = roles.CanViewHandbook(role)
		vm.CanManageUsers = roles.CanManageUsers(role)
	}

	return vm
}

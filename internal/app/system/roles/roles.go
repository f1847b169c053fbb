// Package roles defines the closed set of authorization roles and the view
// each role is routed to.
//
// The role stored on the user record is the single source of truth for
// authorization; session cookies never carry a role. A record whose role
// value is outside the known set (a manually edited document, an old
// migration) parses to Invalid and is routed to an explicit error view
// rather than crashing or silently falling through.
package roles

import (
	"github.com/drafthub/drafthub/internal/app/system/normalize"
	"github.com/drafthub/drafthub/internal/domain/models"
)

// Role is the authorization level of an account.
type Role int

const (
	// Invalid is the fallback for role strings outside the known set.
	Invalid Role = iota
	Pending
	User
	Admin
)

// Parse maps a stored role string onto the closed Role set. Unknown values
// map to Invalid; they are a reachable state, not an error to panic on.
func Parse(s string) Role {
	switch normalize.Role(s) {
	case models.RolePending:
		return Pending
	case models.RoleUser:
		return User
	case models.RoleAdmin:
		return Admin
	default:
		return Invalid
	}
}

// String returns the canonical stored form of the role.
func (r Role) String() string {
	switch r {
	case Pending:
		return models.RolePending
	case User:
		return models.RoleUser
	case Admin:
		return models.RoleAdmin
	default:
		return "invalid"
	}
}

// IsValid reports whether s is one of the three assignable roles. Used when
// validating admin edits; Invalid is never assignable.
func IsValid(s string) bool {
	return Parse(s) != Invalid
}

// View identifies which top-level surface a request is routed to.
type View int

const (
	ViewLogin View = iota
	ViewPending
	ViewHandbook
	ViewAdminChoice
	ViewUnknownRole
)

// ViewFor returns the view a signed-in account with the given role lands on.
// Admins get the navigation choice between the handbook and the role editor;
// everything outside the known set gets the unknown-role error view.
func ViewFor(r Role) View {
	switch r {
	case Pending:
		return ViewPending
	case User:
		return ViewHandbook
	case Admin:
		return ViewAdminChoice
	default:
		return ViewUnknownRole
	}
}

// CanViewHandbook reports whether the role may see the document table.
func CanViewHandbook(r Role) bool {
	return r == User || r == Admin
}

// CanManageUsers reports whether the role may open the role editor.
func CanManageUsers(r Role) bool {
	return r == Admin
}

// internal/app/features/adminusers/diff.go
package adminusers

import (
	"github.com/drafthub/drafthub/internal/app/system/normalize"
	"github.com/drafthub/drafthub/internal/app/system/roles"
	"github.com/drafthub/drafthub/internal/domain/models"
)

// RoleChange is one staged edit: user id plus the new role. Email rides along
// so failure messages can name the row in operator terms.
type RoleChange struct {
	ID    string
	Email string
	Role  string
}

// StageEdits computes the changed-row set by joining the submitted roles back
// to the original snapshot on id and comparing role only; every other field
// is immutable and excluded from the comparison. Edited ids with no matching
// original row are ignored (a row deleted out-of-band between load and save),
// as are submitted values outside the assignable role set.
//
// Identical original and edited sets stage zero changes. The result preserves
// the snapshot's row order so updates commit in display order.
func StageEdits(original []models.User, edited map[string]string) []RoleChange {
	var changes []RoleChange
	for _, u := range original {
		want, ok := edited[u.ID]
		if !ok {
			continue
		}
		want = normalize.Role(want)
		if !roles.IsValid(want) || want == normalize.Role(u.Role) {
			continue
		}
		changes = append(changes, RoleChange{ID: u.ID, Email: u.Email, Role: want})
	}
	return changes
}

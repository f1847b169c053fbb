package adminusers

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/drafthub/drafthub/internal/domain/models"
)

func snapshot() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{ID: "u1", Email: "one@example.com", Role: models.RoleUser, CreatedAt: now},
		{ID: "u2", Email: "two@example.com", Role: models.RolePending, CreatedAt: now},
		{ID: "u3", Email: "three@example.com", Role: models.RoleAdmin, CreatedAt: now},
	}
}

func TestStageEdits_SingleChange(t *testing.T) {
	original := []models.User{{ID: "1", Email: "a@example.com", Role: models.RoleUser}}
	edited := map[string]string{"1": models.RoleAdmin}

	changes := StageEdits(original, edited)

	want := []RoleChange{{ID: "1", Email: "a@example.com", Role: models.RoleAdmin}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("got %v, want %v", changes, want)
	}
}

func TestStageEdits_IdenticalSetsStageNothing(t *testing.T) {
	original := snapshot()
	edited := map[string]string{
		"u1": models.RoleUser,
		"u2": models.RolePending,
		"u3": models.RoleAdmin,
	}

	if changes := StageEdits(original, edited); len(changes) != 0 {
		t.Errorf("identical sets must stage zero changes, got %v", changes)
	}
}

func TestStageEdits_ComparesNormalizedRoles(t *testing.T) {
	original := snapshot()
	edited := map[string]string{"u1": "  USER  "}

	if changes := StageEdits(original, edited); len(changes) != 0 {
		t.Errorf("case/whitespace variants of the same role must not stage a change, got %v", changes)
	}
}

func TestStageEdits_IgnoresUnknownAndMissingIDs(t *testing.T) {
	original := snapshot()
	edited := map[string]string{
		"u2":    models.RoleUser, // real change
		"ghost": models.RoleAdmin,
		"u1":    "superuser", // outside the assignable set
		// u3 not submitted at all
	}

	changes := StageEdits(original, edited)

	want := []RoleChange{{ID: "u2", Email: "two@example.com", Role: models.RoleUser}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("got %v, want %v", changes, want)
	}
}

func TestStageEdits_PreservesSnapshotOrder(t *testing.T) {
	original := snapshot()
	edited := map[string]string{
		"u3": models.RoleUser,
		"u1": models.RoleAdmin,
	}

	changes := StageEdits(original, edited)

	if len(changes) != 2 || changes[0].ID != "u1" || changes[1].ID != "u3" {
		t.Errorf("changes must follow snapshot order, got %v", changes)
	}
}

func TestEditedRoles(t *testing.T) {
	form := url.Values{
		"role_u1":            {"admin"},
		"role_u2":            {"user"},
		"role_":              {"admin"}, // malformed key, no id
		"gorilla.csrf.Token": {"abc"},
		"unrelated":          {"x"},
	}

	got := editedRoles(form)

	want := map[string]string{"u1": "admin", "u2": "user"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

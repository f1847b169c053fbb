// internal/app/features/handbook/templates.go
package handbook

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "handbook",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// internal/app/features/handbook/filters.go
package handbook

import (
	"sort"

	"github.com/drafthub/drafthub/internal/domain/models"
)

// AllOption is the sentinel option meaning "no filter" for one stage.
const AllOption = "All"

// Selections holds the three cascading filter choices. An empty string means
// no filter for that stage ("All" in the UI).
type Selections struct {
	Project   string
	Catalogue string
	Drawing   string
}

// FilterResult is the outcome of one cascade pass: the narrowed document
// slice plus the option list for each stage. Option lists are "All"-prefixed
// and computed from the output of the prior stage, so narrowing an earlier
// stage can only shrink a later stage's options.
type FilterResult struct {
	Docs             []models.DesignDocument
	ProjectOptions   []string
	CatalogueOptions []string
	DrawingOptions   []string
}

// ApplyFilters runs the three-stage cascade over docs. Each stage filters the
// output of the previous stage and never reorders rows, so the result is
// always an order-preserving subset of the input.
//
// Catalogue is null-safe: documents without a catalogue never contribute an
// option, and a concrete catalogue selection excludes them.
func ApplyFilters(docs []models.DesignDocument, sel Selections) FilterResult {
	var res FilterResult

	res.ProjectOptions = withAll(distinctSorted(docs, func(d models.DesignDocument) (string, bool) {
		return d.ProjectName, true
	}))
	working := narrow(docs, func(d models.DesignDocument) bool {
		return sel.Project == "" || d.ProjectName == sel.Project
	})

	res.CatalogueOptions = withAll(distinctSorted(working, func(d models.DesignDocument) (string, bool) {
		if d.Catalogue == nil {
			return "", false
		}
		return *d.Catalogue, true
	}))
	working = narrow(working, func(d models.DesignDocument) bool {
		return sel.Catalogue == "" || (d.Catalogue != nil && *d.Catalogue == sel.Catalogue)
	})

	res.DrawingOptions = withAll(distinctSorted(working, func(d models.DesignDocument) (string, bool) {
		return d.DrawingName, true
	}))
	working = narrow(working, func(d models.DesignDocument) bool {
		return sel.Drawing == "" || d.DrawingName == sel.Drawing
	})

	res.Docs = working
	return res
}

func narrow(docs []models.DesignDocument, keep func(models.DesignDocument) bool) []models.DesignDocument {
	out := make([]models.DesignDocument, 0, len(docs))
	for _, d := range docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func distinctSorted(docs []models.DesignDocument, get func(models.DesignDocument) (string, bool)) []string {
	seen := make(map[string]struct{}, len(docs))
	vals := make([]string, 0, len(docs))
	for _, d := range docs {
		v, ok := get(d)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

func withAll(vals []string) []string {
	return append([]string{AllOption}, vals...)
}

package handbook_test

import (
	"reflect"
	"testing"

	"github.com/drafthub/drafthub/internal/app/features/handbook"
	"github.com/drafthub/drafthub/internal/domain/models"
)

func strPtr(s string) *string { return &s }

func sampleDocs() []models.DesignDocument {
	return []models.DesignDocument{
		{ID: 1, ProjectName: "Alpha", Catalogue: strPtr("Structural"), DrawingName: "Foundation Plan"},
		{ID: 2, ProjectName: "Alpha", Catalogue: strPtr("Electrical"), DrawingName: "Wiring Layout"},
		{ID: 3, ProjectName: "Alpha", Catalogue: nil, DrawingName: "Site Overview"},
		{ID: 4, ProjectName: "Beta", Catalogue: strPtr("Structural"), DrawingName: "Beam Detail"},
		{ID: 5, ProjectName: "Beta", Catalogue: strPtr("Structural"), DrawingName: "Foundation Plan"},
	}
}

func TestApplyFilters_NoSelections(t *testing.T) {
	docs := sampleDocs()
	res := handbook.ApplyFilters(docs, handbook.Selections{})

	if len(res.Docs) != len(docs) {
		t.Fatalf("unfiltered pass changed row count: got %d, want %d", len(res.Docs), len(docs))
	}
	wantProjects := []string{"All", "Alpha", "Beta"}
	if !reflect.DeepEqual(res.ProjectOptions, wantProjects) {
		t.Errorf("project options: got %v, want %v", res.ProjectOptions, wantProjects)
	}
	// Null catalogues must not appear as an option.
	wantCatalogues := []string{"All", "Electrical", "Structural"}
	if !reflect.DeepEqual(res.CatalogueOptions, wantCatalogues) {
		t.Errorf("catalogue options: got %v, want %v", res.CatalogueOptions, wantCatalogues)
	}
}

func TestApplyFilters_CascadeNarrowsLaterOptions(t *testing.T) {
	docs := sampleDocs()

	res := handbook.ApplyFilters(docs, handbook.Selections{Project: "Beta"})

	wantCatalogues := []string{"All", "Structural"}
	if !reflect.DeepEqual(res.CatalogueOptions, wantCatalogues) {
		t.Errorf("catalogue options after project filter: got %v, want %v", res.CatalogueOptions, wantCatalogues)
	}
	wantDrawings := []string{"All", "Beam Detail", "Foundation Plan"}
	if !reflect.DeepEqual(res.DrawingOptions, wantDrawings) {
		t.Errorf("drawing options after project filter: got %v, want %v", res.DrawingOptions, wantDrawings)
	}
	for _, d := range res.Docs {
		if d.ProjectName != "Beta" {
			t.Errorf("row %d leaked through project filter", d.ID)
		}
	}
}

func TestApplyFilters_ResultIsOrderedSubset(t *testing.T) {
	docs := sampleDocs()

	selections := []handbook.Selections{
		{},
		{Project: "Alpha"},
		{Project: "Alpha", Catalogue: "Structural"},
		{Project: "Beta", Catalogue: "Structural", Drawing: "Foundation Plan"},
		{Project: "Nonexistent"},
	}

	for _, sel := range selections {
		res := handbook.ApplyFilters(docs, sel)

		if len(res.Docs) > len(docs) {
			t.Fatalf("selections %+v grew the set", sel)
		}
		// Subset and order preservation: walk the original and consume the
		// filtered rows in order.
		j := 0
		for _, d := range docs {
			if j < len(res.Docs) && res.Docs[j].ID == d.ID {
				j++
			}
		}
		if j != len(res.Docs) {
			t.Errorf("selections %+v: result is not an order-preserving subset: %v", sel, res.Docs)
		}
	}
}

func TestApplyFilters_CatalogueExcludesNullRows(t *testing.T) {
	docs := sampleDocs()

	res := handbook.ApplyFilters(docs, handbook.Selections{Project: "Alpha", Catalogue: "Structural"})

	if len(res.Docs) != 1 || res.Docs[0].ID != 1 {
		t.Fatalf("expected only doc 1, got %v", res.Docs)
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	docs := sampleDocs()
	sel := handbook.Selections{Project: "Alpha", Catalogue: "Electrical"}

	first := handbook.ApplyFilters(docs, sel)
	second := handbook.ApplyFilters(docs, sel)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical selections on an unchanged set must yield identical results")
	}
}

func TestApplyFilters_EmptyInput(t *testing.T) {
	res := handbook.ApplyFilters(nil, handbook.Selections{})

	if len(res.Docs) != 0 {
		t.Errorf("expected no rows, got %v", res.Docs)
	}
	want := []string{"All"}
	if !reflect.DeepEqual(res.ProjectOptions, want) {
		t.Errorf("project options: got %v, want %v", res.ProjectOptions, want)
	}
}

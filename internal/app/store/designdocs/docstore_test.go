package designdocs_test

import (
	"context"
	"testing"

	"github.com/drafthub/drafthub/internal/app/store/designdocs"
	"github.com/drafthub/drafthub/internal/testutil"
)

func TestList_EmptyCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designdocs.New(db)

	docs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List on an empty collection must not error: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("expected an empty slice, got %v", docs)
	}
}

func TestList_OrderedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designdocs.New(db)
	ctx := context.Background()

	fx := testutil.NewFixtures(t, db)
	fx.CreateDesignDoc(ctx, 3, "Alpha", "C", nil, nil)
	fx.CreateDesignDoc(ctx, 1, "Alpha", "A", testutil.StrPtr("Structural"), testutil.StrPtr("https://example.com/a.pdf"))
	fx.CreateDesignDoc(ctx, 2, "Beta", "B", nil, nil)

	docs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	for i, want := range []int64{1, 2, 3} {
		if docs[i].ID != want {
			t.Errorf("docs[%d].ID = %d, want %d", i, docs[i].ID, want)
		}
	}
	if docs[0].Catalogue == nil || *docs[0].Catalogue != "Structural" {
		t.Error("catalogue should round-trip")
	}
	if docs[1].Catalogue != nil {
		t.Error("nil catalogue should stay nil")
	}
}

package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/DPT/internal/models"
	"github.com/akyairhashvil/DPT/internal/testutil"
)

func TestSearch(t *testing.T) {
	db := NewTestDataBuilder(t).
		WithRecord(testutil.NewRecord("2024-01-01").
			WithGoal("g1", "Write Résumé", models.StatusNeutral).
			WithPriority("p1", "Call bank", models.StatusDone).
			WithJournal("Wrote half the resume today").
			Build()).
		WithRecord(testutil.NewRecord("2024-01-02").
			WithManualTask("o1", "resume follow-up", models.StatusNotDone).
			Build()).
		Build()
	ctx := context.Background()

	hits, err := db.Search(ctx, "resume")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d: %+v", len(hits), hits)
	}
	if hits[0].ID != "g1" || !hits[1].IsJournal() || hits[2].Date != "2024-01-02" {
		t.Fatalf("unexpected hit order %+v", hits)
	}

	hits, err = db.Search(ctx, "type:overdue status:not_done resume")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "o1" {
		t.Fatalf("filters not applied: %+v", hits)
	}

	hits, err = db.Search(ctx, "status:done")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "Call bank" {
		t.Fatalf("status-only query failed: %+v", hits)
	}
}

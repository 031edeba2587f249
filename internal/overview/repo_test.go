package overview

import (
	"context"
	"testing"

	"gemdash/internal/catalog"
	"gemdash/pkg/database"
	"gemdash/pkg/models"
)

func TestSummary(t *testing.T) {
	db, err := database.Open(database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	raw := []models.RawProduct{
		{
			ProductName: "Ring", URL: "http://x/1", BrandName: "Zar",
			Carat: "۱۸", Weight: "10 گرم", OverallScore: "4",
			Comments:  []models.RawComment{{CommentText: "a"}, {CommentText: "b"}},
			Questions: []models.RawQuestion{{QuestionText: "q"}},
		},
		{
			ProductName: "Band", URL: "http://x/2", OverallScore: "2",
		},
	}

	ctx := context.Background()
	if err := catalog.Persist(ctx, db, catalog.Flatten(raw)); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if err := catalog.Aggregate(ctx, db); err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	s, err := NewRepo(db).Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if s.TotalProducts != 2 || s.TotalComments != 2 || s.TotalQuestions != 1 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.AvgScore == nil || *s.AvgScore != 3 {
		t.Fatalf("expected avg score 3, got %v", s.AvgScore)
	}

	// products without carat/brand land in the Unknown bucket
	caratUnknown := false
	for _, b := range s.ByCarat {
		if b.Value == "Unknown" && b.Count == 1 {
			caratUnknown = true
		}
	}
	if !caratUnknown {
		t.Fatalf("expected an Unknown carat bucket, got %+v", s.ByCarat)
	}

	brandUnknown := false
	for _, b := range s.ByBrand {
		if b.Value == "Unknown" && b.Count == 1 {
			brandUnknown = true
		}
	}
	if !brandUnknown {
		t.Fatalf("expected an Unknown brand bucket, got %+v", s.ByBrand)
	}

	if len(s.SatisfactionBrand) != 1 || s.SatisfactionBrand[0].BrandName != "Zar" {
		t.Fatalf("unexpected satisfaction rollup %+v", s.SatisfactionBrand)
	}
}

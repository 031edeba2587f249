package brands

import (
	"context"
	"database/sql"
	"testing"

	"gemdash/internal/catalog"
	"gemdash/pkg/database"
	"gemdash/pkg/models"
)

func setupDB(t *testing.T, raw []models.RawProduct) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	if err := catalog.Persist(ctx, db, catalog.Flatten(raw)); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if err := catalog.Aggregate(ctx, db); err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	return db
}

func testCatalog() []models.RawProduct {
	return []models.RawProduct{
		{
			ProductName: "Ring One", URL: "http://x/1", BrandName: "X",
			Comments: []models.RawComment{
				{CommentText: "a", CommentDate: "2024-01-10"},
				{CommentText: "b", CommentDate: "2024-01-20"},
			},
			Questions: []models.RawQuestion{{QuestionText: "q"}},
		},
		{
			ProductName: "Ring Two", URL: "http://x/2", BrandName: "X",
			Comments: []models.RawComment{{CommentText: "c", CommentDate: "2024-03-05"}},
		},
		{
			ProductName: "Stray Band", URL: "http://x/3",
			Comments: []models.RawComment{{CommentText: "d"}},
		},
	}
}

func TestRollupSumsPerBrand(t *testing.T) {
	repo := NewRepo(setupDB(t, testCatalog()))

	rollup, err := repo.Get(context.Background(), "X")
	if err != nil {
		t.Fatalf("get rollup: %v", err)
	}
	if rollup == nil {
		t.Fatal("expected rollup for X")
	}
	if rollup.ProductCount != 2 {
		t.Fatalf("expected 2 products, got %d", rollup.ProductCount)
	}
	if rollup.CommentTotal != 3 {
		t.Fatalf("expected comment total 3, got %d", rollup.CommentTotal)
	}
	if rollup.QuestionTotal != 1 {
		t.Fatalf("expected question total 1, got %d", rollup.QuestionTotal)
	}
}

func TestRollupKeepsUnbrandedGroup(t *testing.T) {
	repo := NewRepo(setupDB(t, testCatalog()))

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list rollups: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 groups (X and unbranded), got %d", len(all))
	}

	var found bool
	for _, r := range all {
		if r.BrandName == "" {
			found = true
			if r.ProductCount != 1 || r.CommentTotal != 1 {
				t.Fatalf("unexpected unbranded rollup %+v", r)
			}
		}
	}
	if !found {
		t.Fatal("unbranded group was dropped")
	}
}

func TestBrandMatchingTrimsAndLowercases(t *testing.T) {
	repo := NewRepo(setupDB(t, testCatalog()))

	items, err := repo.Products(context.Background(), "  x ")
	if err != nil {
		t.Fatalf("brand products: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 products for brand x, got %d", len(items))
	}
}

func TestBrandNotFound(t *testing.T) {
	repo := NewRepo(setupDB(t, testCatalog()))

	rollup, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get rollup: %v", err)
	}
	if rollup != nil {
		t.Fatalf("expected nil rollup, got %+v", rollup)
	}
}

func TestBrandTimeSeries(t *testing.T) {
	repo := NewRepo(setupDB(t, testCatalog()))

	series, err := repo.TimeSeries(context.Background(), "X")
	if err != nil {
		t.Fatalf("time series: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	if series[0].Month != "2024-01" || series[0].Count != 2 {
		t.Fatalf("unexpected first bucket %+v", series[0])
	}
	if series[1].Month != "2024-03" || series[1].Count != 1 {
		t.Fatalf("unexpected second bucket %+v", series[1])
	}
}

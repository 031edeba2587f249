package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gemdash/internal/brands"
	"gemdash/internal/catalog"
	"gemdash/internal/comments"
	"gemdash/internal/products"
	"gemdash/pkg/database"
)

const snapshot = `[
  {
    "product_name": "A",
    "url": "http://x",
    "brand_name": "B1",
    "weight": "10 گرم",
    "comments": [
      {"comment_text": "x", "comment_date": "2024-01-01"},
      {"comment_text": "y", "comment_date": "2024-02-01"}
    ]
  }
]`

func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	n, err := catalog.Run(ctx, db, path)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// products table: 1 row, weight parsed, both counts filled
	productRepo := products.NewRepo(db)
	p, err := productRepo.GetByName(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.Weight)
	require.Equal(t, 10.0, *p.Weight)
	require.Equal(t, 2, p.CommentCount)
	require.Equal(t, 0, p.QuestionCount)

	// comments table: 2 rows, monthly buckets in ascending order
	commentRepo := comments.NewRepo(db)
	all, err := commentRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	series, err := commentRepo.TimeSeries(ctx)
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, "2024-01", series[0].Month)
	require.Equal(t, 1, series[0].Count)
	require.Equal(t, "2024-02", series[1].Month)
	require.Equal(t, 1, series[1].Count)

	// brand rollup for B1 sees both comments
	brandRepo := brands.NewRepo(db)
	rollup, err := brandRepo.Get(ctx, "B1")
	require.NoError(t, err)
	require.NotNil(t, rollup)
	require.Equal(t, 2, rollup.CommentTotal)
	require.Equal(t, 0, rollup.QuestionTotal)
	require.Equal(t, 1, rollup.ProductCount)
}

func TestPipelineCountsDefaultToZero(t *testing.T) {
	// A product with 3 comments and no questions must report 3 and 0,
	// never an absent question count.
	body := `[
      {
        "product_name": "Ring",
        "url": "http://x/ring",
        "comments": [
          {"comment_text": "a"},
          {"comment_text": "b"},
          {"comment_text": "c"}
        ]
      }
    ]`
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	_, err = catalog.Run(ctx, db, path)
	require.NoError(t, err)

	p, err := products.NewRepo(db).GetByName(ctx, "Ring")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 3, p.CommentCount)
	require.Equal(t, 0, p.QuestionCount)
}

func TestPipelineMissingCatalogIsFatal(t *testing.T) {
	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	_, err = catalog.Run(context.Background(), db, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestPipelineMalformedCatalogIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	_, err = catalog.Run(context.Background(), db, path)
	require.Error(t, err)
}

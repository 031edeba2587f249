package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Run executes the full load → flatten → persist → aggregate pipeline.
// It runs once per process start; afterwards the tables are read-only.
// Returns the number of products loaded.
func Run(ctx context.Context, db *sql.DB, path string) (int, error) {
	raw, err := Load(path)
	if err != nil {
		return 0, err
	}

	t := Flatten(raw)
	log.Printf("[catalog] flattened %d products, %d comments, %d questions",
		len(t.Products), len(t.Comments), len(t.Questions))

	if err := Persist(ctx, db, t); err != nil {
		return 0, fmt.Errorf("persist catalog: %w", err)
	}
	if err := Aggregate(ctx, db); err != nil {
		return 0, fmt.Errorf("aggregate catalog: %w", err)
	}

	return len(t.Products), nil
}

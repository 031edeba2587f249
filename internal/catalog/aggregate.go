package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Aggregate fills the derived per-product counts by counting child rows
// per product ID. Products without children keep the column default of 0
// for both counts.
func Aggregate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		UPDATE products SET comment_count = (
			SELECT COUNT(*) FROM comments c WHERE c.product_id = products.id
		)
	`); err != nil {
		return fmt.Errorf("aggregate comment counts: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		UPDATE products SET question_count = (
			SELECT COUNT(*) FROM questions q WHERE q.product_id = products.id
		)
	`); err != nil {
		return fmt.Errorf("aggregate question counts: %w", err)
	}

	return nil
}

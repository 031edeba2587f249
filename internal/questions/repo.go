package questions

import (
	"context"
	"database/sql"
	"fmt"

	"gemdash/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) List(ctx context.Context) ([]models.Question, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, product_id, product_name, product_url, text
		FROM questions
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// ForProduct returns the questions whose parent product has exactly the
// given name.
func (r *Repo) ForProduct(ctx context.Context, name string) ([]models.Question, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, product_id, product_name, product_url, text
		FROM questions
		WHERE product_id IN (SELECT id FROM products WHERE name = ?)
		ORDER BY id ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("questions for product: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	out := make([]models.Question, 0, 16)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.ProductID, &q.ProductName, &q.ProductURL, &q.Text); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

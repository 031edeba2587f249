package comments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gemdash/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const commentColumns = `id, product_id, product_name, product_url, text, comment_date`

// List returns every comment, newest first, undated rows last.
func (r *Repo) List(ctx context.Context) ([]models.Comment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		ORDER BY comment_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ForProduct returns the comments whose parent product has exactly the
// given name. A back-reference that resolves to no product never matches.
func (r *Repo) ForProduct(ctx context.Context, name string) ([]models.Comment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE product_id IN (SELECT id FROM products WHERE name = ?)
		ORDER BY comment_date DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("comments for product: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// TimeSeries buckets dated comments by calendar month, ascending.
// Rows without a parseable date are left out.
func (r *Repo) TimeSeries(ctx context.Context) ([]models.MonthCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT strftime('%Y-%m', comment_date) AS month, COUNT(*)
		FROM comments
		WHERE comment_date IS NOT NULL
		GROUP BY month
		ORDER BY month ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("comment time series: %w", err)
	}
	defer rows.Close()

	out := make([]models.MonthCount, 0, 12)
	for rows.Next() {
		var mc models.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("scan month bucket: %w", err)
		}
		out = append(out, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func scanComments(rows *sql.Rows) ([]models.Comment, error) {
	out := make([]models.Comment, 0, 16)
	for rows.Next() {
		var (
			c    models.Comment
			date sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.ProductID, &c.ProductName, &c.ProductURL, &c.Text, &date); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		if date.Valid {
			if t, err := time.Parse("2006-01-02", date.String); err == nil {
				c.Date = &t
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

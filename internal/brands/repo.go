package brands

import (
	"context"
	"database/sql"
	"fmt"

	"gemdash/internal/catalog"
	"gemdash/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Rollup is the per-brand aggregate over the products table. Products
// with no brand form their own group with an empty name; they are never
// dropped from the totals.
type Rollup struct {
	BrandName     string   `json:"brand_name"`
	ProductCount  int      `json:"product_count"`
	CommentTotal  int      `json:"comment_total"`
	QuestionTotal int      `json:"question_total"`
	AvgScore      *float64 `json:"avg_score,omitempty"`
}

// BrandProduct is the slice of product columns the brand view shows.
type BrandProduct struct {
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	Carat         string   `json:"carat,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Price         string   `json:"price,omitempty"`
	OverallScore  *float64 `json:"overall_score,omitempty"`
	CommentCount  int      `json:"comment_count"`
	QuestionCount int      `json:"question_count"`
}

// List returns the rollup for every brand group, ordered by name.
func (r *Repo) List(ctx context.Context) ([]Rollup, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT COALESCE(MAX(brand_name), '') AS brand,
		       COUNT(*),
		       SUM(comment_count),
		       SUM(question_count),
		       AVG(overall_score)
		FROM products
		GROUP BY brand_key
		ORDER BY brand ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("brand rollup query: %w", err)
	}
	defer rows.Close()

	out := make([]Rollup, 0, 8)
	for rows.Next() {
		var (
			b     Rollup
			score sql.NullFloat64
		)
		if err := rows.Scan(&b.BrandName, &b.ProductCount, &b.CommentTotal, &b.QuestionTotal, &score); err != nil {
			return nil, fmt.Errorf("scan rollup row: %w", err)
		}
		if score.Valid {
			b.AvgScore = &score.Float64
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// Get returns one brand's rollup. Brand matching trims and lowercases
// both sides. Not found is (nil, nil).
func (r *Repo) Get(ctx context.Context, brand string) (*Rollup, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(brand_name), '') AS brand,
		       COUNT(*),
		       SUM(comment_count),
		       SUM(question_count),
		       AVG(overall_score)
		FROM products
		WHERE brand_key = ?
		GROUP BY brand_key
	`, catalog.NameKey(brand))

	var (
		b     Rollup
		score sql.NullFloat64
	)
	if err := row.Scan(&b.BrandName, &b.ProductCount, &b.CommentTotal, &b.QuestionTotal, &score); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan rollup: %w", err)
	}
	if score.Valid {
		b.AvgScore = &score.Float64
	}
	return &b, nil
}

// Products returns the product rows of one brand.
func (r *Repo) Products(ctx context.Context, brand string) ([]BrandProduct, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, url, carat, weight, price, overall_score, comment_count, question_count
		FROM products
		WHERE brand_key = ?
		ORDER BY name ASC
	`, catalog.NameKey(brand))
	if err != nil {
		return nil, fmt.Errorf("brand products query: %w", err)
	}
	defer rows.Close()

	out := make([]BrandProduct, 0, 8)
	for rows.Next() {
		var (
			p      BrandProduct
			carat  sql.NullString
			weight sql.NullFloat64
			price  sql.NullString
			score  sql.NullFloat64
		)
		if err := rows.Scan(&p.Name, &p.URL, &carat, &weight, &price, &score, &p.CommentCount, &p.QuestionCount); err != nil {
			return nil, fmt.Errorf("scan brand product: %w", err)
		}
		p.Carat = carat.String
		p.Price = price.String
		if weight.Valid {
			p.Weight = &weight.Float64
		}
		if score.Valid {
			p.OverallScore = &score.Float64
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// TimeSeries buckets the dated comments across one brand's products by
// calendar month, ascending.
func (r *Repo) TimeSeries(ctx context.Context, brand string) ([]models.MonthCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT strftime('%Y-%m', c.comment_date) AS month, COUNT(*)
		FROM comments c
		JOIN products p ON p.id = c.product_id
		WHERE p.brand_key = ? AND c.comment_date IS NOT NULL
		GROUP BY month
		ORDER BY month ASC
	`, catalog.NameKey(brand))
	if err != nil {
		return nil, fmt.Errorf("brand time series: %w", err)
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

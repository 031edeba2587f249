package overview

import (
	"context"
	"database/sql"
	"fmt"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Bucket is one value of a distribution, e.g. carat "18" → 12 products.
// Absent values are reported under the "Unknown" bucket rather than
// dropped, matching what the dashboard charts show.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BrandScore pairs a brand with its average satisfaction score.
type BrandScore struct {
	BrandName string  `json:"brand_name"`
	AvgScore  float64 `json:"avg_score"`
}

// Summary is everything the Overview view renders.
type Summary struct {
	TotalProducts     int          `json:"total_products"`
	TotalComments     int          `json:"total_comments"`
	TotalQuestions    int          `json:"total_questions"`
	AvgScore          *float64     `json:"avg_score,omitempty"`
	ByWeight          []Bucket     `json:"by_weight"`
	ByCarat           []Bucket     `json:"by_carat"`
	ByBrand           []Bucket     `json:"by_brand"`
	SatisfactionBrand []BrandScore `json:"satisfaction_by_brand"`
}

func (r *Repo) Summary(ctx context.Context) (*Summary, error) {
	var s Summary

	row := r.DB.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM products),
		       (SELECT COUNT(*) FROM comments),
		       (SELECT COUNT(*) FROM questions),
		       (SELECT AVG(overall_score) FROM products)
	`)
	var avg sql.NullFloat64
	if err := row.Scan(&s.TotalProducts, &s.TotalComments, &s.TotalQuestions, &avg); err != nil {
		return nil, fmt.Errorf("scan totals: %w", err)
	}
	if avg.Valid {
		s.AvgScore = &avg.Float64
	}

	var err error
	if s.ByWeight, err = r.distribution(ctx, `
		SELECT COALESCE(CAST(weight AS TEXT), 'Unknown') AS v, COUNT(*)
		FROM products GROUP BY v ORDER BY COUNT(*) DESC, v ASC
	`); err != nil {
		return nil, fmt.Errorf("weight distribution: %w", err)
	}
	if s.ByCarat, err = r.distribution(ctx, `
		SELECT COALESCE(carat, 'Unknown') AS v, COUNT(*)
		FROM products GROUP BY v ORDER BY COUNT(*) DESC, v ASC
	`); err != nil {
		return nil, fmt.Errorf("carat distribution: %w", err)
	}
	if s.ByBrand, err = r.distribution(ctx, `
		SELECT COALESCE(brand_name, 'Unknown') AS v, COUNT(*)
		FROM products GROUP BY v ORDER BY COUNT(*) DESC, v ASC
	`); err != nil {
		return nil, fmt.Errorf("brand distribution: %w", err)
	}

	if s.SatisfactionBrand, err = r.satisfactionByBrand(ctx); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repo) distribution(ctx context.Context, query string) ([]Bucket, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Bucket, 0, 8)
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Value, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) satisfactionByBrand(ctx context.Context) ([]BrandScore, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT brand_name, AVG(overall_score) AS avg_score
		FROM products
		WHERE brand_name IS NOT NULL AND overall_score IS NOT NULL
		GROUP BY brand_key
		ORDER BY avg_score ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("satisfaction by brand: %w", err)
	}
	defer rows.Close()

	out := make([]BrandScore, 0, 8)
	for rows.Next() {
		var bs BrandScore
		if err := rows.Scan(&bs.BrandName, &bs.AvgScore); err != nil {
			return nil, fmt.Errorf("scan brand score: %w", err)
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

package products

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gemdash/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const productColumns = `
	id, name, name_key, url, brand_name, brand_key, price, carat,
	weight, overall_score, number_of_scorers, number_of_comments,
	number_of_questions, comment_count, question_count
`

// likeEscaper neutralizes LIKE metacharacters so a query like "100%"
// matches the literal text, not a wildcard pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search does a case-insensitive substring match on the product name.
// An empty query matches everything.
func (r *Repo) Search(ctx context.Context, q string) ([]models.Product, error) {
	kw := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(q))) + "%"

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE LOWER(name) LIKE ? ESCAPE '\'
		ORDER BY name ASC
	`, kw)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByName does an exact match on the product name. Not found is (nil, nil).
func (r *Repo) GetByName(ctx context.Context, name string) (*models.Product, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE name = ?
	`, name)

	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByName: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p           models.Product
		brandName   sql.NullString
		brandKey    sql.NullString
		price       sql.NullString
		carat       sql.NullString
		weight      sql.NullFloat64
		score       sql.NullFloat64
		scorers     sql.NullString
		numComments sql.NullString
		numQs       sql.NullString
	)

	if err := row.Scan(
		&p.ID, &p.Name, &p.NameKey, &p.URL, &brandName, &brandKey, &price, &carat,
		&weight, &score, &scorers, &numComments, &numQs,
		&p.CommentCount, &p.QuestionCount,
	); err != nil {
		return nil, err
	}

	p.BrandName = brandName.String
	p.BrandKey = brandKey.String
	p.Price = price.String
	p.Carat = carat.String
	if weight.Valid {
		p.Weight = &weight.Float64
	}
	if score.Valid {
		p.OverallScore = &score.Float64
	}
	p.NumberOfScorers = scorers.String
	p.NumberOfComments = numComments.String
	p.NumberOfQuestions = numQs.String

	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	out := make([]models.Product, 0, 16)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

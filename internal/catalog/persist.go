package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Persist writes the flattened tables into sqlite in one transaction.
// It assumes empty tables: the pipeline runs once per process, there is
// no upsert case.
func Persist(ctx context.Context, db *sql.DB, t Tables) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	productStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (
		  id, name, name_key, url, brand_name, brand_key,
		  price, carat, weight, overall_score,
		  number_of_scorers, number_of_comments, number_of_questions
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare products stmt: %w", err)
	}
	defer productStmt.Close()

	for _, p := range t.Products {
		var weight, score any
		if p.Weight != nil {
			weight = *p.Weight
		}
		if p.OverallScore != nil {
			score = *p.OverallScore
		}

		if _, err := productStmt.ExecContext(ctx,
			p.ID, p.Name, p.NameKey, p.URL,
			nullable(p.BrandName), nullable(p.BrandKey),
			nullable(p.Price), nullable(p.Carat), weight, score,
			nullable(p.NumberOfScorers), nullable(p.NumberOfComments), nullable(p.NumberOfQuestions),
		); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}

	commentStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO comments (product_id, product_name, product_url, text, comment_date)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare comments stmt: %w", err)
	}
	defer commentStmt.Close()

	for _, c := range t.Comments {
		var date any
		if c.Date != nil {
			date = c.Date.Format("2006-01-02")
		}
		if _, err := commentStmt.ExecContext(ctx,
			c.ProductID, c.ProductName, c.ProductURL, c.Text, date,
		); err != nil {
			return fmt.Errorf("insert comment for %s: %w", c.ProductName, err)
		}
	}

	questionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (product_id, product_name, product_url, text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare questions stmt: %w", err)
	}
	defer questionStmt.Close()

	for _, q := range t.Questions {
		if _, err := questionStmt.ExecContext(ctx,
			q.ProductID, q.ProductName, q.ProductURL, q.Text,
		); err != nil {
			return fmt.Errorf("insert question for %s: %w", q.ProductName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gemdash/internal/catalog"
	"gemdash/pkg/database"
)

func main() {
	var (
		catalogIn    = flag.String("catalog", "data/brands_catalog.json", "input catalog JSON path")
		productsOut  = flag.String("products", "data/products.csv", "output CSV path for products")
		commentsOut  = flag.String("comments", "data/comments.csv", "output CSV path for comments")
		questionsOut = flag.String("questions", "data/questions.csv", "output CSV path for questions")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.Config{Path: ":memory:"})
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if _, err := catalog.Run(ctx, db, *catalogIn); err != nil {
		log.Fatalf("catalog pipeline failed: %v", err)
	}

	if err := exportProducts(ctx, db, *productsOut); err != nil {
		log.Fatalf("export products failed: %v", err)
	}
	if err := exportComments(ctx, db, *commentsOut); err != nil {
		log.Fatalf("export comments failed: %v", err)
	}
	if err := exportQuestions(ctx, db, *questionsOut); err != nil {
		log.Fatalf("export questions failed: %v", err)
	}

	log.Printf("exported normalized tables to %s, %s, %s", *productsOut, *commentsOut, *questionsOut)
}

func exportProducts(ctx context.Context, db *sql.DB, outPath string) error {
	w, f, err := createWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{
		"id", "name", "url", "brand_name", "price", "carat", "weight",
		"overall_score", "comment_count", "question_count",
	}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, name, url, brand_name, price, carat, weight,
               overall_score, comment_count, question_count
        FROM products
        ORDER BY name
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, name, url string
			brand         sql.NullString
			price         sql.NullString
			carat         sql.NullString
			weight        sql.NullFloat64
			score         sql.NullFloat64
			commentCount  int
			questionCount int
		)
		if err := rows.Scan(&id, &name, &url, &brand, &price, &carat, &weight, &score, &commentCount, &questionCount); err != nil {
			return err
		}

		if err := w.Write([]string{
			id, name, url,
			brand.String, price.String, carat.String,
			formatFloat(weight), formatFloat(score),
			strconv.Itoa(commentCount), strconv.Itoa(questionCount),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportComments(ctx context.Context, db *sql.DB, outPath string) error {
	w, f, err := createWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"id", "product_id", "product_name", "text", "date"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, product_id, product_name, text, comment_date
        FROM comments
        ORDER BY id
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                          int64
			productID, productName, txt string
			date                        sql.NullString
		)
		if err := rows.Scan(&id, &productID, &productName, &txt, &date); err != nil {
			return err
		}
		if err := w.Write([]string{
			strconv.FormatInt(id, 10), productID, productName, txt, date.String,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportQuestions(ctx context.Context, db *sql.DB, outPath string) error {
	w, f, err := createWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"id", "product_id", "product_name", "text"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, product_id, product_name, text
        FROM questions
        ORDER BY id
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                          int64
			productID, productName, txt string
		)
		if err := rows.Scan(&id, &productID, &productName, &txt); err != nil {
			return err
		}
		if err := w.Write([]string{
			strconv.FormatInt(id, 10), productID, productName, txt,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func createWriter(outPath string) (*csv.Writer, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(f), f, nil
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

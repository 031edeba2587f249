package catalog

import (
	"log"

	"github.com/google/uuid"

	"gemdash/pkg/models"
)

// Tables holds the three normalized tables one flatten pass produces.
type Tables struct {
	Products  []models.Product
	Comments  []models.Comment
	Questions []models.Question
}

// Flatten turns the raw nested records into one product row each plus
// zero-or-more comment and question rows. Child rows carry the parent's
// generated ID as their join key and the parent's name/url for display.
// The input is never mutated.
func Flatten(raw []models.RawProduct) Tables {
	var t Tables
	t.Products = make([]models.Product, 0, len(raw))

	for _, r := range raw {
		if r.ProductName == "" || r.URL == "" {
			log.Printf("[catalog] skipping record without name/url (name=%q)", r.ProductName)
			continue
		}

		p := models.Product{
			ID:      uuid.NewString(),
			Name:    r.ProductName,
			NameKey: NameKey(r.ProductName),
			URL:     r.URL,
		}

		if r.BrandName != "" {
			p.BrandName = r.BrandName
			p.BrandKey = NameKey(r.BrandName)
		}
		if r.Price != "" {
			p.Price = NormalizeDigits(r.Price)
		}
		if r.Carat != "" {
			p.Carat = NormalizeDigits(r.Carat)
		}
		if r.NumberOfScorers != "" {
			p.NumberOfScorers = NormalizeDigits(r.NumberOfScorers)
		}
		if r.NumberOfComments != "" {
			p.NumberOfComments = NormalizeDigits(r.NumberOfComments)
		}
		if r.NumberOfQuestions != "" {
			p.NumberOfQuestions = NormalizeDigits(r.NumberOfQuestions)
		}
		if w, ok := ExtractLeadingNumber(r.Weight); ok {
			p.Weight = &w
		}
		if s, ok := ParseScore(r.OverallScore); ok {
			p.OverallScore = &s
		}

		t.Products = append(t.Products, p)

		for _, c := range r.Comments {
			row := models.Comment{
				ProductID:   p.ID,
				ProductName: p.Name,
				ProductURL:  p.URL,
				Text:        c.CommentText,
			}
			if d, ok := ParseDate(c.CommentDate); ok {
				row.Date = &d
			}
			t.Comments = append(t.Comments, row)
		}

		for _, q := range r.Questions {
			t.Questions = append(t.Questions, models.Question{
				ProductID:   p.ID,
				ProductName: p.Name,
				ProductURL:  p.URL,
				Text:        q.QuestionText,
			})
		}
	}

	return t
}

package models

// RawProduct is one product object as it appears in the scraped catalog
// snapshot. Everything except product_name and url is optional, numeric
// fields arrive as free-form text (often with persian digits), and the
// nested comment/question threads ride along on the same object.
//
// The catalog loader decodes into this structure first, then the
// flattener turns it into the normalized table rows below.
type RawProduct struct {
	ProductName       string        `json:"product_name"`
	URL               string        `json:"url"`
	BrandName         string        `json:"brand_name,omitempty"`
	Price             string        `json:"price,omitempty"`
	Carat             string        `json:"carat,omitempty"`
	OverallScore      string        `json:"overall_score,omitempty"`
	Weight            string        `json:"weight,omitempty"` // e.g. "12.5 گرم"
	NumberOfScorers   string        `json:"number_of_scorers,omitempty"`
	NumberOfComments  string        `json:"number_of_comments,omitempty"`
	NumberOfQuestions string        `json:"number_of_questions,omitempty"`
	Comments          []RawComment  `json:"comments,omitempty"`
	Questions         []RawQuestion `json:"questions,omitempty"`
}

type RawComment struct {
	CommentText string `json:"comment_text"`
	CommentDate string `json:"comment_date,omitempty"`
}

type RawQuestion struct {
	QuestionText string `json:"question_text"`
}

// Product is one normalized row in the products table. ID is generated at
// flatten time and is the only join key; NameKey/BrandKey are the
// trimmed+lowercased match keys, computed once so queries never have to
// re-derive them.
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	NameKey           string   `json:"-"`
	URL               string   `json:"url"`
	BrandName         string   `json:"brand_name,omitempty"`
	BrandKey          string   `json:"-"`
	Price             string   `json:"price,omitempty"`
	Carat             string   `json:"carat,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	OverallScore      *float64 `json:"overall_score,omitempty"`
	NumberOfScorers   string   `json:"number_of_scorers,omitempty"`
	NumberOfComments  string   `json:"number_of_comments,omitempty"`
	NumberOfQuestions string   `json:"number_of_questions,omitempty"`
	CommentCount      int      `json:"comment_count"`
	QuestionCount     int      `json:"question_count"`
}

package models

import (
	"fmt"
	"time"
)

// Comment is one normalized comment row. ProductName and ProductURL are
// carried from the parent so handlers can render a link without another
// lookup; ProductID is the join key.
type Comment struct {
	ID          int64      `json:"id"`
	ProductID   string     `json:"product_id"`
	ProductName string     `json:"product_name"`
	ProductURL  string     `json:"product_url"`
	Text        string     `json:"text"`
	Date        *time.Time `json:"date,omitempty"`
}

type Question struct {
	ID          int64  `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductURL  string `json:"product_url"`
	Text        string `json:"text"`
}

// MonthCount is one bucket of a monthly time series, Month as "2006-01".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ProductLink renders the anchor label the dashboard shows for a product.
// It is display-only: joins always go through the generated product ID.
func ProductLink(url, name string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, url, name)
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gemdash/pkg/models"
)

// Load reads the scraped catalog snapshot: a JSON array of product
// objects. A missing or malformed snapshot is fatal for the process,
// the caller decides how loudly to die.
func Load(path string) ([]models.RawProduct, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raw []models.RawProduct
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return raw, nil
}

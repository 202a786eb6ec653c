package horoscope

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyDataset is returned when the dataset file holds no records.
var ErrEmptyDataset = errors.New("horoscope: dataset is empty")

// LoadDataset reads a JSON array of records. The result is shared read-only
// by every request.
func LoadDataset(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return ParseDataset(b)
}

// ParseDataset decodes a JSON array of records.
func ParseDataset(b []byte) ([]Record, error) {
	var out []Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyDataset
	}
	return out, nil
}

// Package store persists finalized candidate records to a single JSON array
// file. One writer at a time is assumed; every append is a full
// read-modify-write with no locking.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is used when no data file is configured.
const DefaultPath = "data/candidates.json"

// Record is one persisted candidate entry. Submitted fields are stored as
// given; Append stamps an id and timestamp on top.
type Record map[string]any

// Append adds the record to the array file at path, creating the file and
// its directory when missing. Existing content that does not parse is
// treated as an empty collection, never as an error.
func Append(path string, record Record) error {
	records := readLenient(path)

	stamped := make(Record, len(record)+2)
	for key, value := range record {
		stamped[key] = value
	}
	stamped["id"] = uuid.NewString()
	stamped["saved_at"] = time.Now().UTC().Format(time.RFC3339)

	records = append(records, stamped)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	return nil
}

// Load reads all records from the array file. A missing file yields an
// empty list.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}

	return records, nil
}

func readLenient(path string) []Record {
	records, err := Load(path)
	if err != nil {
		return []Record{}
	}
	return records
}

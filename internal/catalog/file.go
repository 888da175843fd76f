package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/picture-match/internal/schemas"
	"github.com/jonathan/picture-match/internal/types"
	schemafiles "github.com/jonathan/picture-match/schemas"
)

// LoadFile reads a catalog JSON file, validates it against the catalog schema
// and the semantic checks, and returns it.
func LoadFile(path string) (*types.Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates catalog JSON.
func Parse(data []byte) (*types.Catalog, error) {
	if err := schemas.ValidateBytes(schemafiles.Catalog, data); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var c types.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := Check(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// OpenFile loads a catalog file into a MemoryStore.
func OpenFile(path string) (*MemoryStore, error) {
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(c), nil
}

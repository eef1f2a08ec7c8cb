package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a catalog from a JSON or TOML file and validates it
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var c Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.NewDecoder(file).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog data: %w", err)
		}
	case ".toml":
		if err := toml.NewDecoder(file).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog data: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &c, nil
}

// LoadOrDefault loads the catalog at path, or returns the built-in content
// when path is empty
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

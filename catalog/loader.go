package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/poiesic/prodsearch/core"
	"gopkg.in/yaml.v3"
)

// ErrLoad indicates a catalog file could not be read or parsed.
var ErrLoad = errors.New("catalog load failed")

type file struct {
	Products []core.Product `yaml:"products"`
}

// Load reads a YAML catalog file. The file must contain a top-level
// "products" list; order in the file is catalog order.
func Load(path string) ([]core.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) ([]core.Product, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := core.ValidateCatalog(f.Products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return f.Products, nil
}

// LoadOrSample returns the catalog at path, or the built-in sample when
// path is empty.
func LoadOrSample(path string) ([]core.Product, error) {
	if path == "" {
		return Sample(), nil
	}
	return Load(path)
}

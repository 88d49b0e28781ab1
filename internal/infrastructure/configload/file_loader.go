// Package configload implements the configuration source side of the ports
// package: file and environment loaders, the unified loader that folds them
// into one effective config, and storage for the result.
package configload

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
	"github.com/gqlgate/gqlgate-cli/internal/core/ports"
)

// FileLoader reads a gateway configuration document from a JSON file.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Name identifies the source in diagnostics.
func (l *FileLoader) Name() string {
	return "file:" + l.path
}

// Load reads and decodes the file. Decode failures carry the source path and
// the failing field path inside the document.
func (l *FileLoader) Load(ctx context.Context) (config.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return config.Config{}, fmt.Errorf("read %s: %w", l.path, err)
	}

	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, fmt.Errorf("decode %s: %w", l.path, err)
	}
	return cfg, nil
}

var _ ports.Loader = (*FileLoader)(nil)

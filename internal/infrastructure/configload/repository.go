package configload

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
	"github.com/gqlgate/gqlgate-cli/internal/core/ports"
)

// Repository persists the effective gateway configuration under the user
// config directory (~/.config/gqlgate/config.json by default).
type Repository struct {
	// dir overrides the storage directory when non-empty. Used by tests.
	dir string
}

// NewRepository creates a repository rooted at the default location.
func NewRepository() *Repository {
	return &Repository{}
}

// NewRepositoryAt creates a repository rooted at dir.
func NewRepositoryAt(dir string) *Repository {
	return &Repository{dir: dir}
}

// Path returns the config file location.
func (r *Repository) Path() (string, error) {
	if r.dir != "" {
		return filepath.Join(r.dir, "config.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "gqlgate", "config.json"), nil
}

// Exists reports whether a stored configuration is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	path, err := r.Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Load reads and decodes the stored configuration.
func (r *Repository) Load(ctx context.Context) (config.Config, error) {
	path, err := r.Path()
	if err != nil {
		return config.Config{}, err
	}
	return NewFileLoader(path).Load(ctx)
}

// Save writes the configuration, creating the directory if needed.
func (r *Repository) Save(ctx context.Context, cfg config.Config) error {
	path, err := r.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

var _ ports.Storage = (*Repository)(nil)

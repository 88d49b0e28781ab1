package configload

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
)

// Environment variables recognized by the EnvLoader.
const (
	EnvBaseURL      = "GQLGATE_BASE_URL"
	EnvQueryType    = "GQLGATE_QUERY_TYPE"
	EnvMutationType = "GQLGATE_MUTATION_TYPE"
	EnvVersion      = "GQLGATE_VERSION"
)

// EnvLoader overlays GQLGATE_* environment variables on top of an already
// loaded configuration. Unset variables leave the corresponding setting
// untouched; version in particular is only overridden when GQLGATE_VERSION
// is present, since a merge would otherwise clobber it with zero.
type EnvLoader struct{}

// NewEnvLoader creates an environment overlay loader.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

// Name identifies the source in diagnostics.
func (l *EnvLoader) Name() string {
	return "env"
}

// Apply returns cfg with every set GQLGATE_* variable applied on top.
func (l *EnvLoader) Apply(cfg config.Config) (config.Config, error) {
	overlay := config.New().WithVersion(cfg.Version)

	if raw := os.Getenv(EnvBaseURL); raw != "" {
		u, err := config.ParseURL(raw)
		if err != nil {
			return config.Config{}, fmt.Errorf("%s: %w", EnvBaseURL, err)
		}
		overlay = overlay.WithBaseURL(u)
	}
	if name := os.Getenv(EnvQueryType); name != "" {
		overlay = overlay.WithQuery(name)
	}
	if name := os.Getenv(EnvMutationType); name != "" {
		overlay = overlay.WithMutation(name)
	}
	if raw := os.Getenv(EnvVersion); raw != "" {
		version, err := strconv.Atoi(raw)
		if err != nil {
			return config.Config{}, fmt.Errorf("%s: invalid version %q", EnvVersion, raw)
		}
		overlay = overlay.WithVersion(version)
	}

	return cfg.MergeRight(overlay), nil
}

package configload

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
	"github.com/gqlgate/gqlgate-cli/internal/core/ports"
)

// UnifiedLoader folds an ordered list of sources into one effective
// configuration: each source is merged right onto the accumulated result, so
// later sources win on conflicts, and the environment overlay is applied
// last.
type UnifiedLoader struct {
	sources []ports.Loader
	env     *EnvLoader
	log     zerolog.Logger
}

// NewUnifiedLoader creates a loader over the given sources, in precedence
// order from lowest to highest.
func NewUnifiedLoader(log zerolog.Logger, sources ...ports.Loader) *UnifiedLoader {
	return &UnifiedLoader{
		sources: sources,
		env:     NewEnvLoader(),
		log:     log,
	}
}

// NewFileLoaders is a convenience for building one FileLoader per path.
func NewFileLoaders(paths ...string) []ports.Loader {
	loaders := make([]ports.Loader, len(paths))
	for i, path := range paths {
		loaders[i] = NewFileLoader(path)
	}
	return loaders
}

// Load folds all sources. A failing source aborts the fold: partial merges
// would silently drop the failed source's settings.
func (l *UnifiedLoader) Load(ctx context.Context) (config.Config, error) {
	effective := config.New()

	for i, source := range l.sources {
		cfg, err := source.Load(ctx)
		if err != nil {
			return config.Config{}, fmt.Errorf("load %s: %w", source.Name(), err)
		}
		if i == 0 {
			effective = cfg
		} else {
			effective = effective.MergeRight(cfg)
		}
		l.log.Debug().Str("source", source.Name()).Int("version", cfg.Version).Msg("merged configuration source")
	}

	effective, err := l.env.Apply(effective)
	if err != nil {
		return config.Config{}, fmt.Errorf("load env: %w", err)
	}
	return effective, nil
}

// Package ports defines the boundary contracts between the configuration
// core and its collaborators: sources that produce Config values, storage
// for the effective config, and the external blueprint transcoder.
package ports

import (
	"context"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
)

// Loader produces a Config from one source (a file, the environment, ...).
type Loader interface {
	// Name identifies the source in diagnostics (e.g. "file:gateway.json").
	Name() string

	// Load reads the source and decodes it into a Config.
	Load(ctx context.Context) (config.Config, error)
}

// Storage persists the effective gateway configuration.
type Storage interface {
	// Load reads the stored configuration.
	Load(ctx context.Context) (config.Config, error)

	// Save writes the configuration, creating the storage location if needed.
	Save(ctx context.Context, cfg config.Config) error

	// Exists reports whether a stored configuration is present.
	Exists(ctx context.Context) (bool, error)

	// Path returns the storage location for display purposes.
	Path() (string, error)
}

// Blueprint is the compiled, executable representation of a configuration.
// It is built and consumed by an external runtime; this core treats it as an
// opaque handle.
type Blueprint interface{}

// Transcoder turns a Config into an executable Blueprint. Implementations
// live outside this module; failures must surface as errors (ideally a
// *TranscodeError), never as panics.
type Transcoder interface {
	ToBlueprint(ctx context.Context, cfg config.Config, encodeSteps bool) (Blueprint, error)
}

// TranscodeError is the typed failure a Transcoder reports when it cannot
// produce a Blueprint from a given Config.
type TranscodeError struct {
	// Reason describes why transcoding failed.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *TranscodeError) Error() string {
	if e.Err != nil {
		return "transcode: " + e.Reason + ": " + e.Err.Error()
	}
	return "transcode: " + e.Reason
}

// Unwrap returns the underlying cause.
func (e *TranscodeError) Unwrap() error {
	return e.Err
}

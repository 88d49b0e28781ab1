package configload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
)

// TestRepository_SaveLoadRoundTrip tests persistence of the effective config
func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewRepositoryAt(t.TempDir())
	ctx := context.Background()

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "Fresh repository should be empty")

	cfg := config.New().
		WithVersion(1).
		WithBaseURL(config.MustParseURL("http://localhost:8080")).
		WithQuery("Query").
		WithType("Query", map[string]config.Field{
			"user": config.NewField("User").AsRequired(),
		})

	require.NoError(t, repo.Save(ctx, cfg))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded, "Stored configuration should round-trip")
}

// TestRepository_Path tests the storage location
func TestRepository_Path(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepositoryAt(dir)

	path, err := repo.Path()
	require.NoError(t, err)
	assert.Contains(t, path, dir)
	assert.Contains(t, path, "config.json")
}

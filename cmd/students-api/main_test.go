package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students-service/internal/config"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	for _, cfg := range []config.Storage{
		{Driver: config.DriverMemory},
		{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "students.db")},
	} {
		store, err := openStorage(ctx, cfg)
		require.NoError(t, err, cfg.Driver)
		assert.NoError(t, store.Ping(ctx), cfg.Driver)
		assert.NoError(t, store.Close(), cfg.Driver)
	}

	_, err := openStorage(ctx, config.Storage{Driver: "mongo"})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	ctx := context.Background()

	assert.False(t, setupLogger("prod").Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("staging").Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("dev").Enabled(ctx, slog.LevelDebug))
}

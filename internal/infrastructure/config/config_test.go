package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, int64(240226), cfg.Engine.ListingNumberFloor)
	assert.Equal(t, "database", cfg.Engine.ListingAllocator)
	assert.Equal(t, []string{"sold", "rented"}, cfg.Engine.Bonus.QualifyingStatuses)
	assert.Equal(t, 5*time.Minute, cfg.Engine.SLA.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Settings.CacheTTL)
	assert.Equal(t, uint64(3), cfg.Notification.Dispatch.MaxRetries)
	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ESTATEHUB_DATABASE_TYPE", "sqlite")
	t.Setenv("ESTATEHUB_ENGINE_SLA_SWEEP_WORKERS", "2")

	cfg, err := Load("test")

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 2, cfg.Engine.SLA.SweepWorkers)
	assert.Equal(t, "test", cfg.Server.Mode)
}

func TestLoad_RejectsUnknownDatabaseType(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ESTATEHUB_DATABASE_TYPE", "postgres")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoad_RejectsUnknownAllocator(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ESTATEHUB_ENGINE_LISTING_ALLOCATOR", "redis")

	_, err := Load("")

	assert.ErrorContains(t, err, "engine.listing_allocator")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 50.0, cfg.Placement.EdgeMargin)
	assert.Equal(t, 80.0, cfg.Placement.MinSeparation)
	assert.Equal(t, 10, cfg.Placement.MaxIterations)
	assert.Equal(t, 100.0, cfg.Interaction.Radius)
	assert.Equal(t, 0.4, cfg.Interaction.CloseFraction)
	assert.Equal(t, 0.8, cfg.Interaction.NearFraction)
	assert.Equal(t, 800.0, cfg.Culling.Radius)
	assert.Equal(t, 10.0, cfg.Scheduler.MoveThreshold)
	assert.Equal(t, 100, cfg.Scheduler.MaxIntervalMS)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"placement:\n  min_separation: 120\nculling:\n  radius: 1500\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Placement.MinSeparation)
	assert.Equal(t, 1500.0, cfg.Culling.Radius)
	assert.Equal(t, 50.0, cfg.Placement.EdgeMargin, "unset value falls back to default")
	assert.Equal(t, 100.0, cfg.Interaction.Radius)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestApplyDefaults_RepairsInvertedFractions(t *testing.T) {
	cfg := &Config{Interaction: Interaction{Radius: 100, CloseFraction: 0.9, NearFraction: 0.3}}
	cfg.ApplyDefaults()

	assert.Equal(t, 0.4, cfg.Interaction.CloseFraction)
	assert.Equal(t, 0.8, cfg.Interaction.NearFraction)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DUNGEON_MIN_SEPARATION", "95.5")
	t.Setenv("DUNGEON_CULL_RADIUS", "640")
	t.Setenv("DUNGEON_MAX_INTERVAL_MS", "250")
	t.Setenv("DUNGEON_MOVE_THRESHOLD", "not-a-number")

	cfg := FromEnv(Default())

	assert.Equal(t, 95.5, cfg.Placement.MinSeparation)
	assert.Equal(t, 640.0, cfg.Culling.Radius)
	assert.Equal(t, 250, cfg.Scheduler.MaxIntervalMS)
	assert.Equal(t, 10.0, cfg.Scheduler.MoveThreshold, "unparsable override is ignored")
}

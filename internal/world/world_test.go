package world

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
)

const sampleWorld = `
zones:
  - id: meadow
    terrain: grassland
    bounds: { min_x: 0, min_y: 0, max_x: 1000, max_y: 800 }
dungeons:
  - id: errand-post
    zone_id: meadow
    coordinates: { x: 200, y: 200 }
  - id: vault
    zone_id: meadow
    coordinates: { x: 600, y: 400 }
    requirements:
      trust_score: 50
      badges: [beginner]
`

func writeWorld(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	w, err := Load(writeWorld(t, sampleWorld))
	require.NoError(t, err)

	require.Len(t, w.Zones, 1)
	assert.Equal(t, model.TerrainType("grassland"), w.Zones[0].Terrain)
	assert.Equal(t, geom.Bounds{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 800}, w.Zones[0].Bounds)

	require.Len(t, w.Dungeons, 2)
	vault, ok := w.Dungeon("vault")
	require.True(t, ok)
	require.NotNil(t, vault.Requirements.TrustScore)
	assert.Equal(t, 50, *vault.Requirements.TrustScore)
	assert.Nil(t, vault.Requirements.Level)
	assert.Equal(t, []string{"beginner"}, vault.Requirements.Badges)

	post, ok := w.Dungeon("errand-post")
	require.True(t, ok)
	assert.True(t, post.Requirements.Empty())

	_, ok = w.Zone("meadow")
	assert.True(t, ok)
	_, ok = w.Zone("missing")
	assert.False(t, ok)
}

func TestLoad_DuplicateDungeonID(t *testing.T) {
	_, err := Load(writeWorld(t, `
zones:
  - id: z
    bounds: { min_x: 0, min_y: 0, max_x: 100, max_y: 100 }
dungeons:
  - id: dup
    zone_id: z
    coordinates: { x: 10, y: 10 }
  - id: dup
    zone_id: z
    coordinates: { x: 20, y: 20 }
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate dungeon id")
}

func TestLoad_DuplicateZoneID(t *testing.T) {
	_, err := Load(writeWorld(t, `
zones:
  - id: z
    bounds: { min_x: 0, min_y: 0, max_x: 100, max_y: 100 }
  - id: z
    bounds: { min_x: 100, min_y: 0, max_x: 200, max_y: 100 }
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate zone id")
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	w := World{Dungeons: []model.Dungeon{{ID: "d", ZoneID: "z"}}}
	require.NoError(t, repo.Set(ctx, w))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

package model

import "dungeonmap/internal/geom"

// ZoneID identifies a world zone.
type ZoneID string

// DungeonID identifies a dungeon.
type DungeonID string

// TerrainType labels a zone's terrain (forest, cave, ruins, ...). The engine
// treats it as opaque; the renderer picks tilesets from it.
type TerrainType string

// Zone is a rectangular world region owning a terrain type and a set of
// dungeons. Created once at world load; bounds never mutate afterwards.
type Zone struct {
	ID      ZoneID      `yaml:"id" json:"id"`
	Bounds  geom.Bounds `yaml:"bounds" json:"bounds"`
	Terrain TerrainType `yaml:"terrain" json:"terrain"`
}

// EntryRequirements gates entry into a dungeon. A nil field means "no
// constraint on that dimension". Negative thresholds and empty badge lists
// are treated the same as absent (authoring slack, not an error).
type EntryRequirements struct {
	TrustScore *int     `yaml:"trust_score,omitempty" json:"trust_score,omitempty"`
	Level      *int     `yaml:"level,omitempty" json:"level,omitempty"`
	Badges     []string `yaml:"badges,omitempty" json:"badges,omitempty"`
}

// Empty reports whether no dimension is constrained.
func (r EntryRequirements) Empty() bool {
	return r.TrustScore == nil && r.Level == nil && len(r.Badges) == 0
}

// Dungeon is a point of interest gating a category of tasks. Coordinates are
// mutable only during the one-time placement repair pass at world load.
type Dungeon struct {
	ID           DungeonID         `yaml:"id" json:"id"`
	ZoneID       ZoneID            `yaml:"zone_id" json:"zone_id"`
	Coordinates  geom.Point        `yaml:"coordinates" json:"coordinates"`
	Requirements EntryRequirements `yaml:"requirements,omitempty" json:"requirements,omitempty"`
}

// ProgressionSnapshot is a read-only copy of the user's progression supplied
// by the progression system each time state is recomputed. The engine never
// mutates it; hosts pass a fresh pointer when progression changes.
type ProgressionSnapshot struct {
	TrustScore int      `json:"trust_score"`
	Level      int      `json:"level"`
	Badges     []string `json:"badges"`
}

// HasBadge reports whether the snapshot carries the named badge.
func (p ProgressionSnapshot) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

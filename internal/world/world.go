package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dungeonmap/internal/model"
)

// World is the loaded world definition: zones and the dungeons they own.
// Loaded once from the backing store, repaired once by the placement
// validator, then effectively immutable.
type World struct {
	Zones    []model.Zone    `yaml:"zones" json:"zones"`
	Dungeons []model.Dungeon `yaml:"dungeons" json:"dungeons"`
}

// Zone returns the zone with the given id.
func (w *World) Zone(id model.ZoneID) (model.Zone, bool) {
	for _, z := range w.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return model.Zone{}, false
}

// Dungeon returns the dungeon with the given id.
func (w *World) Dungeon(id model.DungeonID) (model.Dungeon, bool) {
	for _, d := range w.Dungeons {
		if d.ID == id {
			return d, true
		}
	}
	return model.Dungeon{}, false
}

// Load reads a yaml world definition. Duplicate ids are rejected here
// because no later pass can repair them deterministically; everything else
// (out-of-bounds coordinates, unknown zone refs, degenerate bounds) is left
// for the placement validator to repair and report.
func Load(path string) (*World, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w World
	if err := yaml.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", path, err)
	}

	seenZones := make(map[model.ZoneID]bool, len(w.Zones))
	for _, z := range w.Zones {
		if seenZones[z.ID] {
			return nil, fmt.Errorf("duplicate zone id: %s", z.ID)
		}
		seenZones[z.ID] = true
	}
	seenDungeons := make(map[model.DungeonID]bool, len(w.Dungeons))
	for _, d := range w.Dungeons {
		if seenDungeons[d.ID] {
			return nil, fmt.Errorf("duplicate dungeon id: %s", d.ID)
		}
		seenDungeons[d.ID] = true
	}
	return &w, nil
}

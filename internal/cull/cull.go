// Package cull decides which dungeons are worth rendering or simulating at
// all, based on distance to the player. Transitions are reported as
// explicit events so the renderer allocates and frees presentation
// resources exactly on the edges instead of polling.
package cull

import (
	"sort"

	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
)

// Event marks one visibility transition. Visible true means the dungeon
// just entered the cull radius.
type Event struct {
	DungeonID model.DungeonID `json:"dungeon_id"`
	Visible   bool            `json:"visible"`
}

// Cull computes the visible set and the transitions relative to prev.
// A dungeon absent from prev counts as previously hidden, so the first run
// emits enter events for everything in radius. Events are sorted by
// dungeon id; repeated runs at a stable distance emit nothing.
func Cull(dungeons []model.Dungeon, player geom.Point, radius float64, prev map[model.DungeonID]bool) (map[model.DungeonID]bool, []Event) {
	visible := make(map[model.DungeonID]bool, len(dungeons))
	var events []Event

	for _, d := range dungeons {
		vis := geom.WithinRadius(player, d.Coordinates, radius)
		visible[d.ID] = vis
		if vis != prev[d.ID] {
			events = append(events, Event{DungeonID: d.ID, Visible: vis})
		}
	}

	sort.Slice(events, func(a, b int) bool {
		return events[a].DungeonID < events[b].DungeonID
	})
	return visible, events
}

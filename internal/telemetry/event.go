package telemetry

import "time"

type EventType string

const (
	// Placement validator diagnostics (load time).
	EventBoundsRepaired      EventType = "bounds_repaired"
	EventSeparationRepaired  EventType = "separation_repaired"
	EventSeparationUnsettled EventType = "separation_unresolved"
	EventZoneDegenerate      EventType = "zone_degenerate"
	EventZoneUnknown         EventType = "zone_unknown"

	// Visibility transitions (per tick).
	EventDungeonVisible EventType = "dungeon_visible"
	EventDungeonHidden  EventType = "dungeon_hidden"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}

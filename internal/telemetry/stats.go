package telemetry

import (
	"encoding/json"
	"time"
)

// Stats summarizes placement repairs and visibility churn over a period.
// Used by worldcheck to judge how dirty a world file is and how much the
// culler thrashes along a given player path.
type Stats struct {
	Period            string            `json:"period"`
	EventCounts       map[EventType]int `json:"event_counts"`
	BoundsRepairs     int               `json:"bounds_repairs"`
	SeparationRepairs int               `json:"separation_repairs"`
	UnresolvedPairs   int               `json:"unresolved_pairs"`
	DegenerateZones   int               `json:"degenerate_zones"`
	UnknownZoneRefs   int               `json:"unknown_zone_refs"`
	VisibilityShows   int               `json:"visibility_shows"`
	VisibilityHides   int               `json:"visibility_hides"`
	ChurnByDungeon    map[string]int    `json:"churn_by_dungeon"`
}

// CalculateStats computes a rollup from recorded events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:         since.Format("2006-01-02"),
		EventCounts:    make(map[EventType]int),
		ChurnByDungeon: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventBoundsRepaired:
			stats.BoundsRepairs++
		case EventSeparationRepaired:
			stats.SeparationRepairs++
		case EventSeparationUnsettled:
			stats.UnresolvedPairs++
		case EventZoneDegenerate:
			stats.DegenerateZones++
		case EventZoneUnknown:
			stats.UnknownZoneRefs++
		case EventDungeonVisible:
			stats.VisibilityShows++
			if id, ok := metadata["dungeon_id"].(string); ok {
				stats.ChurnByDungeon[id]++
			}
		case EventDungeonHidden:
			stats.VisibilityHides++
			if id, ok := metadata["dungeon_id"].(string); ok {
				stats.ChurnByDungeon[id]++
			}
		}
	}

	return stats, nil
}

// Package placement repairs static spatial conflicts in a loaded world:
// dungeons outside their zone's bounds and dungeons packed closer than the
// minimum separation. It runs exactly once, after load and before any
// interaction; repairs are reported, never thrown, because bad authoring
// must not make the world unplayable.
package placement

import (
	"sort"

	"dungeonmap/internal/config"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
	"dungeonmap/internal/telemetry"
	"dungeonmap/internal/world"
)

type DiagnosticKind string

const (
	DiagBoundsRepaired       DiagnosticKind = "bounds_repaired"
	DiagSeparationRepaired   DiagnosticKind = "separation_repaired"
	DiagSeparationUnresolved DiagnosticKind = "separation_unresolved"
	DiagZoneDegenerate       DiagnosticKind = "zone_degenerate"
	DiagZoneUnknown          DiagnosticKind = "zone_unknown"
)

// Diagnostic describes one repair or leftover violation. OtherID and
// Distance are set only for separation diagnostics.
type Diagnostic struct {
	Kind      DiagnosticKind  `json:"kind"`
	DungeonID model.DungeonID `json:"dungeon_id,omitempty"`
	OtherID   model.DungeonID `json:"other_id,omitempty"`
	ZoneID    model.ZoneID    `json:"zone_id,omitempty"`
	From      geom.Point      `json:"from,omitempty"`
	To        geom.Point      `json:"to,omitempty"`
	Distance  float64         `json:"distance,omitempty"`
}

// sepEpsilon absorbs float error when a pair sits at exactly the minimum
// separation; without it a repaired pair can re-trigger forever.
const sepEpsilon = 1e-9

// Validator repairs a world in place according to placement config.
type Validator struct {
	cfg config.Placement
	rec telemetry.Repository
}

// NewValidator creates a placement validator. The telemetry repository is
// optional; pass nil to skip event recording.
func NewValidator(cfg config.Placement, rec telemetry.Repository) *Validator {
	return &Validator{cfg: cfg, rec: rec}
}

// Repair runs bounds repair then pairwise separation repair to a fixed
// point, mutating dungeon coordinates in place. It returns every diagnostic
// in a deterministic order and is idempotent: repairing an already-valid
// world changes nothing and reports nothing.
func (v *Validator) Repair(w *world.World) []Diagnostic {
	var diags []Diagnostic
	report := func(d Diagnostic) {
		diags = append(diags, d)
		v.record(d)
	}

	zones := make(map[model.ZoneID]model.Zone, len(w.Zones))
	for _, z := range w.Zones {
		zones[z.ID] = z
	}

	// Dungeons referencing zones that do not exist cannot be repaired;
	// they are reported and excluded from both passes.
	skip := make(map[int]bool)
	degenerateSeen := make(map[model.ZoneID]bool)
	for i := range w.Dungeons {
		d := &w.Dungeons[i]
		zone, ok := zones[d.ZoneID]
		if !ok {
			skip[i] = true
			report(Diagnostic{Kind: DiagZoneUnknown, DungeonID: d.ID, ZoneID: d.ZoneID})
			continue
		}
		if !zone.Bounds.FitsMargin(v.cfg.EdgeMargin) && !degenerateSeen[zone.ID] {
			degenerateSeen[zone.ID] = true
			report(Diagnostic{Kind: DiagZoneDegenerate, ZoneID: zone.ID})
		}
	}

	// Pass 1: bounds repair.
	for i := range w.Dungeons {
		if skip[i] {
			continue
		}
		d := &w.Dungeons[i]
		zone := zones[d.ZoneID]
		if zone.Bounds.Contains(d.Coordinates, v.cfg.EdgeMargin) {
			continue
		}
		from := d.Coordinates
		clamped := geom.ClampToBounds(from, zone.Bounds, v.cfg.EdgeMargin)
		if clamped == from {
			// Degenerate zone with the dungeon already at the midpoint.
			continue
		}
		d.Coordinates = clamped
		report(Diagnostic{
			Kind:      DiagBoundsRepaired,
			DungeonID: d.ID,
			ZoneID:    zone.ID,
			From:      from,
			To:        d.Coordinates,
		})
	}

	// Pass 2: separation repair, iterated to a fixed point. Moving a
	// dungeon can create a fresh violation with a third, so the full
	// pairwise scan repeats until quiet or the iteration bound is hit.
	byZone := make(map[model.ZoneID][]int)
	for i := range w.Dungeons {
		if skip[i] {
			continue
		}
		byZone[w.Dungeons[i].ZoneID] = append(byZone[w.Dungeons[i].ZoneID], i)
	}
	zoneIDs := make([]model.ZoneID, 0, len(byZone))
	for id, members := range byZone {
		// Lower id is the anchor, higher id the mover: stable ordering
		// makes repair deterministic and idempotent across runs.
		sort.Slice(members, func(a, b int) bool {
			return w.Dungeons[members[a]].ID < w.Dungeons[members[b]].ID
		})
		byZone[id] = members
		zoneIDs = append(zoneIDs, id)
	}
	sort.Slice(zoneIDs, func(a, b int) bool { return zoneIDs[a] < zoneIDs[b] })

	for iter := 0; iter < v.cfg.MaxIterations; iter++ {
		moved := false
		for _, zid := range zoneIDs {
			zone := zones[zid]
			members := byZone[zid]
			for ai := 0; ai < len(members); ai++ {
				for bi := ai + 1; bi < len(members); bi++ {
					anchor := &w.Dungeons[members[ai]]
					mover := &w.Dungeons[members[bi]]
					dist := geom.Distance(anchor.Coordinates, mover.Coordinates)
					if dist+sepEpsilon >= v.cfg.MinSeparation {
						continue
					}
					from := mover.Coordinates
					pushed := v.pushApart(anchor.Coordinates, mover.Coordinates, dist, zone.Bounds)
					if pushed == from {
						// Clamping pinned the mover in place; the final
						// scan will flag the pair instead of spinning.
						continue
					}
					mover.Coordinates = pushed
					moved = true
					report(Diagnostic{
						Kind:      DiagSeparationRepaired,
						DungeonID: mover.ID,
						OtherID:   anchor.ID,
						ZoneID:    zid,
						From:      from,
						To:        mover.Coordinates,
					})
				}
			}
		}
		if !moved {
			break
		}
	}

	// Whatever still violates after the iteration bound stays put:
	// deterministic termination over perfect packing.
	for _, zid := range zoneIDs {
		members := byZone[zid]
		for ai := 0; ai < len(members); ai++ {
			for bi := ai + 1; bi < len(members); bi++ {
				a := w.Dungeons[members[ai]]
				b := w.Dungeons[members[bi]]
				dist := geom.Distance(a.Coordinates, b.Coordinates)
				if dist+sepEpsilon < v.cfg.MinSeparation {
					report(Diagnostic{
						Kind:      DiagSeparationUnresolved,
						DungeonID: b.ID,
						OtherID:   a.ID,
						ZoneID:    zid,
						Distance:  dist,
					})
				}
			}
		}
	}

	return diags
}

// pushApart moves the mover to exactly MinSeparation from the anchor along
// the vector connecting them, then re-clamps into the zone. A coincident
// pair has no direction, so the mover is pushed along +X.
func (v *Validator) pushApart(anchor, mover geom.Point, dist float64, bounds geom.Bounds) geom.Point {
	dirX, dirY := 1.0, 0.0
	if dist > 0 {
		dirX = (mover.X - anchor.X) / dist
		dirY = (mover.Y - anchor.Y) / dist
	}
	pushed := geom.Point{
		X: anchor.X + dirX*v.cfg.MinSeparation,
		Y: anchor.Y + dirY*v.cfg.MinSeparation,
	}
	return geom.ClampToBounds(pushed, bounds, v.cfg.EdgeMargin)
}

func (v *Validator) record(d Diagnostic) {
	if v.rec == nil {
		return
	}
	var eventType telemetry.EventType
	switch d.Kind {
	case DiagBoundsRepaired:
		eventType = telemetry.EventBoundsRepaired
	case DiagSeparationRepaired:
		eventType = telemetry.EventSeparationRepaired
	case DiagSeparationUnresolved:
		eventType = telemetry.EventSeparationUnsettled
	case DiagZoneDegenerate:
		eventType = telemetry.EventZoneDegenerate
	case DiagZoneUnknown:
		eventType = telemetry.EventZoneUnknown
	default:
		return
	}
	_ = v.rec.RecordEvent(eventType, telemetry.EventMetadata{
		"dungeon_id": string(d.DungeonID),
		"other_id":   string(d.OtherID),
		"zone_id":    string(d.ZoneID),
		"distance":   d.Distance,
	})
}

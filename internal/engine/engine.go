// Package engine ties culling, state derivation and scheduling into the
// single-threaded tick loop a host game loop drives. The engine owns no
// goroutines or timers; every call is synchronous and O(dungeons).
package engine

import (
	"time"

	"dungeonmap/internal/config"
	"dungeonmap/internal/cull"
	"dungeonmap/internal/dungeon"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
	"dungeonmap/internal/telemetry"
	"dungeonmap/internal/world"
)

// Engine recomputes dungeon visibility and state on demand. Construct it
// after the placement validator has repaired the world; dungeon
// coordinates are immutable from then on.
type Engine struct {
	cfg      *config.Config
	dungeons []model.Dungeon
	rec      telemetry.Repository

	sched      *Scheduler
	visibility map[model.DungeonID]bool
	states     map[model.DungeonID]dungeon.State
}

// TickResult is the per-tick batch handed to the renderer. States holds
// every currently visible dungeon; VisibilityEvents holds only this tick's
// transitions. Recomputed false means the scheduler skipped the tick and
// States is the previous (possibly stale) batch.
type TickResult struct {
	Recomputed       bool
	States           map[model.DungeonID]dungeon.State
	VisibilityEvents []cull.Event
}

// New creates an engine over a validated world snapshot. The telemetry
// repository is optional; pass nil to skip transition recording.
func New(cfg *config.Config, w *world.World, rec telemetry.Repository) *Engine {
	dungeons := make([]model.Dungeon, len(w.Dungeons))
	copy(dungeons, w.Dungeons)
	return &Engine{
		cfg:        cfg,
		dungeons:   dungeons,
		rec:        rec,
		sched:      NewScheduler(cfg.Scheduler),
		visibility: make(map[model.DungeonID]bool),
		states:     make(map[model.DungeonID]dungeon.State),
	}
}

// Tick runs one update: the scheduler decides whether anything recomputes,
// the culler filters the dungeon set, and state is derived only for the
// visible subset. A nil progression snapshot counts as empty progression.
func (e *Engine) Tick(player geom.Point, prog *model.ProgressionSnapshot, now time.Time) TickResult {
	if !e.sched.Due(player, prog, now) {
		return TickResult{Recomputed: false, States: e.states}
	}

	visible, events := cull.Cull(e.dungeons, player, e.cfg.Culling.Radius, e.visibility)
	e.visibility = visible
	e.recordTransitions(events)

	var snapshot model.ProgressionSnapshot
	if prog != nil {
		snapshot = *prog
	}

	// Fresh state arena each recompute; hidden dungeons simply drop out.
	states := make(map[model.DungeonID]dungeon.State, len(e.dungeons))
	for _, d := range e.dungeons {
		if !visible[d.ID] {
			continue
		}
		states[d.ID] = dungeon.ComputeState(d, snapshot, player, e.cfg.Interaction)
	}
	e.states = states

	return TickResult{Recomputed: true, States: states, VisibilityEvents: events}
}

// Dungeons returns the engine's immutable dungeon snapshot.
func (e *Engine) Dungeons() []model.Dungeon {
	out := make([]model.Dungeon, len(e.dungeons))
	copy(out, e.dungeons)
	return out
}

func (e *Engine) recordTransitions(events []cull.Event) {
	if e.rec == nil {
		return
	}
	for _, ev := range events {
		eventType := telemetry.EventDungeonHidden
		if ev.Visible {
			eventType = telemetry.EventDungeonVisible
		}
		_ = e.rec.RecordEvent(eventType, telemetry.EventMetadata{
			"dungeon_id": string(ev.DungeonID),
		})
	}
}

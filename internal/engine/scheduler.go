package engine

import (
	"time"

	"dungeonmap/internal/config"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
)

// Scheduler throttles recomputation so that per-frame ticks stay cheap on
// worlds with many dungeons. A recompute is due when the player moved more
// than the threshold, when the staleness cap elapsed, or when the
// progression snapshot reference changed. This is a debounce, not a cache
// invalidation guarantee: consumers tolerate state up to MaxInterval stale.
type Scheduler struct {
	moveThreshold float64
	maxInterval   time.Duration

	primed   bool
	lastPos  geom.Point
	lastAt   time.Time
	lastProg *model.ProgressionSnapshot
}

func NewScheduler(cfg config.Scheduler) *Scheduler {
	return &Scheduler{
		moveThreshold: cfg.MoveThreshold,
		maxInterval:   time.Duration(cfg.MaxIntervalMS) * time.Millisecond,
	}
}

// Due reports whether a recompute should happen now and, when it should,
// records the tick so the next call measures from it. The first call is
// always due.
func (s *Scheduler) Due(pos geom.Point, prog *model.ProgressionSnapshot, now time.Time) bool {
	due := !s.primed ||
		geom.Distance(s.lastPos, pos) > s.moveThreshold ||
		now.Sub(s.lastAt) > s.maxInterval ||
		prog != s.lastProg

	if due {
		s.primed = true
		s.lastPos = pos
		s.lastAt = now
		s.lastProg = prog
	}
	return due
}

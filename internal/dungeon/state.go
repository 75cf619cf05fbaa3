// Package dungeon derives per-dungeon presentation state from progression
// and player position. Everything here is a pure function of its inputs;
// the external renderer turns the resulting State into pixels.
package dungeon

import (
	"dungeonmap/internal/access"
	"dungeonmap/internal/config"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
)

// ProximityTier is the discretized distance band relative to the
// interaction radius.
type ProximityTier int

const (
	TierFar ProximityTier = iota
	TierNear
	TierClose
)

func (t ProximityTier) String() string {
	switch t {
	case TierClose:
		return "close"
	case TierNear:
		return "near"
	default:
		return "far"
	}
}

// EffectKind tags a visual effect directive.
type EffectKind string

const (
	EffectGlow      EffectKind = "glow"
	EffectScale     EffectKind = "scale"
	EffectPulse     EffectKind = "pulse"
	EffectParticles EffectKind = "particles"
)

// EffectColor is a named palette entry; the renderer maps it to actual
// tints.
type EffectColor string

const (
	ColorSuccess EffectColor = "success"
	ColorWarning EffectColor = "warning"
	ColorHint    EffectColor = "hint"
)

// VisualEffect is one renderer directive. Color is empty for kinds that
// have no color (scale, pulse).
type VisualEffect struct {
	Kind      EffectKind  `json:"kind"`
	Intensity float64     `json:"intensity"`
	Color     EffectColor `json:"color,omitempty"`
}

// State is the derived, never-persisted presentation state of one dungeon.
// Locked mirrors !Accessible because the renderer reads it directly.
type State struct {
	Accessible bool           `json:"accessible"`
	InRange    bool           `json:"in_range"`
	Locked     bool           `json:"locked"`
	Tier       ProximityTier  `json:"tier"`
	Effects    []VisualEffect `json:"effects"`
}

// ComputeState derives the state of one dungeon. Total: every input
// combination has a defined output.
func ComputeState(d model.Dungeon, prog model.ProgressionSnapshot, player geom.Point, cfg config.Interaction) State {
	dist := geom.Distance(player, d.Coordinates)
	accessible := access.Evaluate(d.Requirements, prog)
	inRange := dist <= cfg.Radius
	tier := tierFor(dist, cfg)

	return State{
		Accessible: accessible,
		InRange:    inRange,
		Locked:     !accessible,
		Tier:       tier,
		Effects:    effectsFor(accessible, inRange, tier),
	}
}

func tierFor(dist float64, cfg config.Interaction) ProximityTier {
	switch {
	case dist <= cfg.CloseFraction*cfg.Radius:
		return TierClose
	case dist <= cfg.NearFraction*cfg.Radius:
		return TierNear
	default:
		return TierFar
	}
}

// effectsFor selects the effect list for a state. Branches are mutually
// exclusive presentation states, first match wins.
func effectsFor(accessible, inRange bool, tier ProximityTier) []VisualEffect {
	switch {
	case !accessible:
		return []VisualEffect{
			{Kind: EffectGlow, Intensity: 0.4, Color: ColorWarning},
		}
	case inRange && tier == TierClose:
		return []VisualEffect{
			{Kind: EffectGlow, Intensity: 1.0, Color: ColorSuccess},
			{Kind: EffectScale, Intensity: 1.05},
			{Kind: EffectParticles, Intensity: 0.8, Color: ColorSuccess},
		}
	case inRange && tier == TierNear:
		return []VisualEffect{
			{Kind: EffectGlow, Intensity: 0.8, Color: ColorSuccess},
			{Kind: EffectPulse, Intensity: 0.6},
		}
	case !inRange && tier == TierNear:
		return []VisualEffect{
			{Kind: EffectGlow, Intensity: 0.3, Color: ColorHint},
		}
	case !inRange && tier == TierClose:
		return []VisualEffect{
			{Kind: EffectGlow, Intensity: 0.5, Color: ColorHint},
			{Kind: EffectPulse, Intensity: 0.4},
		}
	default:
		// Accessible, far, out of range: nothing to draw attention to.
		return nil
	}
}

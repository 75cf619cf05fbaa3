package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonmap/internal/config"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
)

func intPtr(v int) *int { return &v }

func testInteraction() config.Interaction {
	return config.Interaction{Radius: 100, CloseFraction: 0.4, NearFraction: 0.8}
}

func gatedDungeon(at geom.Point) model.Dungeon {
	return model.Dungeon{
		ID:          "vault",
		ZoneID:      "z1",
		Coordinates: at,
		Requirements: model.EntryRequirements{
			TrustScore: intPtr(50),
			Level:      intPtr(2),
			Badges:     []string{"beginner"},
		},
	}
}

func TestComputeState_LockedDungeon(t *testing.T) {
	d := gatedDungeon(geom.Point{X: 0, Y: 0})
	prog := model.ProgressionSnapshot{TrustScore: 30, Level: 1}

	st := ComputeState(d, prog, geom.Point{X: 10, Y: 0}, testInteraction())

	assert.False(t, st.Accessible)
	assert.True(t, st.Locked)
	require.Len(t, st.Effects, 1)
	assert.Equal(t, VisualEffect{Kind: EffectGlow, Intensity: 0.4, Color: ColorWarning}, st.Effects[0])
}

func TestComputeState_CloseAndAccessible(t *testing.T) {
	d := gatedDungeon(geom.Point{X: 0, Y: 0})
	prog := model.ProgressionSnapshot{
		TrustScore: 60,
		Level:      3,
		Badges:     []string{"beginner", "intermediate"},
	}

	st := ComputeState(d, prog, geom.Point{X: 10, Y: 0}, testInteraction())

	assert.True(t, st.Accessible)
	assert.False(t, st.Locked)
	assert.True(t, st.InRange)
	assert.Equal(t, TierClose, st.Tier)
	assert.Equal(t, []VisualEffect{
		{Kind: EffectGlow, Intensity: 1.0, Color: ColorSuccess},
		{Kind: EffectScale, Intensity: 1.05},
		{Kind: EffectParticles, Intensity: 0.8, Color: ColorSuccess},
	}, st.Effects)
}

func TestComputeState_NearAndAccessibleInRange(t *testing.T) {
	d := model.Dungeon{ID: "open", ZoneID: "z1", Coordinates: geom.Point{}}

	st := ComputeState(d, model.ProgressionSnapshot{}, geom.Point{X: 60, Y: 0}, testInteraction())

	assert.Equal(t, TierNear, st.Tier)
	assert.True(t, st.InRange)
	assert.Equal(t, []VisualEffect{
		{Kind: EffectGlow, Intensity: 0.8, Color: ColorSuccess},
		{Kind: EffectPulse, Intensity: 0.6},
	}, st.Effects)
}

func TestComputeState_FarAccessibleHasNoEffects(t *testing.T) {
	d := model.Dungeon{ID: "open", ZoneID: "z1", Coordinates: geom.Point{}}

	st := ComputeState(d, model.ProgressionSnapshot{}, geom.Point{X: 500, Y: 0}, testInteraction())

	assert.True(t, st.Accessible)
	assert.False(t, st.InRange)
	assert.Equal(t, TierFar, st.Tier)
	assert.Empty(t, st.Effects)
}

func TestComputeState_OutOfRangeTiers(t *testing.T) {
	// With the default fractions (0.8*radius < radius) the near-but-out-of-
	// range states are unreachable, so exercise the branch table directly.
	assert.Equal(t, []VisualEffect{
		{Kind: EffectGlow, Intensity: 0.3, Color: ColorHint},
	}, effectsFor(true, false, TierNear))
	assert.Equal(t, []VisualEffect{
		{Kind: EffectGlow, Intensity: 0.5, Color: ColorHint},
		{Kind: EffectPulse, Intensity: 0.4},
	}, effectsFor(true, false, TierClose))

	// And through the public surface, with per-dungeon tuning that pushes
	// the close band past the interaction radius.
	wide := config.Interaction{Radius: 100, CloseFraction: 1.2, NearFraction: 1.5}
	d := model.Dungeon{ID: "open", ZoneID: "z1", Coordinates: geom.Point{}}
	st := ComputeState(d, model.ProgressionSnapshot{}, geom.Point{X: 110, Y: 0}, wide)
	assert.False(t, st.InRange)
	assert.Equal(t, TierClose, st.Tier)
	assert.Equal(t, []VisualEffect{
		{Kind: EffectGlow, Intensity: 0.5, Color: ColorHint},
		{Kind: EffectPulse, Intensity: 0.4},
	}, st.Effects)
}

func TestTierBoundaries(t *testing.T) {
	cfg := testInteraction()
	cases := []struct {
		dist float64
		want ProximityTier
	}{
		{0, TierClose},
		{40, TierClose},
		{40.01, TierNear},
		{80, TierNear},
		{80.01, TierFar},
		{100, TierFar},
		{1000, TierFar},
	}
	for _, tc := range cases {
		if got := tierFor(tc.dist, cfg); got != tc.want {
			t.Fatalf("tierFor(%v) = %v, want %v", tc.dist, got, tc.want)
		}
	}
}

// Tier never jumps toward Far as distance shrinks.
func TestTierMonotonicity(t *testing.T) {
	cfg := testInteraction()
	prev := TierFar
	for dist := 200.0; dist >= 0; dist -= 0.5 {
		got := tierFor(dist, cfg)
		if got < prev {
			t.Fatalf("tier regressed from %v to %v at distance %v", prev, got, dist)
		}
		prev = got
	}
}

// Every combination of accessibility, range and tier has a defined effect
// list; no input panics or falls through undefined.
func TestEffectTableTotality(t *testing.T) {
	for _, accessible := range []bool{true, false} {
		for _, inRange := range []bool{true, false} {
			for _, tier := range []ProximityTier{TierFar, TierNear, TierClose} {
				effects := effectsFor(accessible, inRange, tier)
				if !accessible {
					require.Len(t, effects, 1)
					assert.Equal(t, ColorWarning, effects[0].Color)
				}
			}
		}
	}
}

func TestLockedMirrorsAccessible(t *testing.T) {
	cfg := testInteraction()
	d := gatedDungeon(geom.Point{})

	for _, prog := range []model.ProgressionSnapshot{
		{},
		{TrustScore: 60, Level: 3, Badges: []string{"beginner"}},
	} {
		st := ComputeState(d, prog, geom.Point{X: 50, Y: 0}, cfg)
		assert.Equal(t, !st.Accessible, st.Locked)
	}
}

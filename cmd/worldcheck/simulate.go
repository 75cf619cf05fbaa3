package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dungeonmap/internal/engine"
	"dungeonmap/internal/geom"
	"dungeonmap/internal/model"
	"dungeonmap/internal/placement"
	"dungeonmap/internal/telemetry"
	"dungeonmap/internal/world"
)

func simulateCmd() *cobra.Command {
	var configPath string
	var ticks int
	var startX, startY, stepX, stepY float64
	var trust, level int
	var badges []string

	cmd := &cobra.Command{
		Use:   "simulate [world-file]",
		Short: "Walk a player across the world and report visibility churn",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			prog := &model.ProgressionSnapshot{
				TrustScore: trust,
				Level:      level,
				Badges:     badges,
			}
			start := geom.Point{X: startX, Y: startY}
			step := geom.Point{X: stepX, Y: stepY}
			return runSimulate(args[0], configPath, ticks, start, step, prog)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "engine config file (defaults apply when omitted)")
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 120, "number of ticks to simulate")
	cmd.Flags().Float64Var(&startX, "start-x", 0, "player start x")
	cmd.Flags().Float64Var(&startY, "start-y", 0, "player start y")
	cmd.Flags().Float64Var(&stepX, "step-x", 8, "player x movement per tick")
	cmd.Flags().Float64Var(&stepY, "step-y", 0, "player y movement per tick")
	cmd.Flags().IntVar(&trust, "trust", 0, "progression trust score")
	cmd.Flags().IntVar(&level, "level", 0, "progression level")
	cmd.Flags().StringSliceVar(&badges, "badge", nil, "progression badge (repeatable)")
	return cmd
}

func runSimulate(worldPath, configPath string, ticks int, start, step geom.Point, prog *model.ProgressionSnapshot) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	w, err := world.Load(worldPath)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}

	rec := telemetry.NewMemoryRepository()
	diags := placement.NewValidator(cfg.Placement, rec).Repair(w)
	slog.Info("world prepared", "dungeons", len(w.Dungeons), "repairs", len(diags))

	eng := engine.New(cfg, w, rec)
	clock := engine.NewFakeClock(time.Now())
	simStart := clock.Now()

	player := start
	recomputes := 0
	for i := 0; i < ticks; i++ {
		res := eng.Tick(player, prog, clock.Now())
		if res.Recomputed {
			recomputes++
		}
		for _, ev := range res.VisibilityEvents {
			verb := "hidden"
			if ev.Visible {
				verb = "visible"
			}
			fmt.Printf("tick %3d: %s became %s\n", i, ev.DungeonID, verb)
		}
		player.X += step.X
		player.Y += step.Y
		clock.Advance(16 * time.Millisecond)
	}

	events, err := rec.GetEvents(simStart.Add(-time.Second), nil)
	if err != nil {
		return err
	}
	stats, err := telemetry.CalculateStats(events, simStart)
	if err != nil {
		return err
	}
	slog.Info("simulation complete", "ticks", ticks, "recomputes", recomputes,
		"shows", stats.VisibilityShows, "hides", stats.VisibilityHides)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

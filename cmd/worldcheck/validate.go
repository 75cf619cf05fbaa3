package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"dungeonmap/internal/config"
	"dungeonmap/internal/placement"
	"dungeonmap/internal/world"
)

func validateCmd() *cobra.Command {
	var configPath string
	var asJSON bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [world-file]",
		Short: "Run placement validation on a world file and report repairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], configPath, asJSON, strict)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "engine config file (defaults apply when omitted)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit diagnostics as json")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any repair was needed")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	return config.FromEnv(cfg), nil
}

func runValidate(worldPath, configPath string, asJSON, strict bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	w, err := world.Load(worldPath)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	slog.Info("world loaded", "zones", len(w.Zones), "dungeons", len(w.Dungeons))

	v := placement.NewValidator(cfg.Placement, nil)
	diags := v.Repair(w)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(diags); err != nil {
			return err
		}
	} else {
		for _, d := range diags {
			switch d.Kind {
			case placement.DiagSeparationUnresolved:
				fmt.Printf("%s: %s vs %s in %s still %.1f apart\n", d.Kind, d.DungeonID, d.OtherID, d.ZoneID, d.Distance)
			case placement.DiagZoneDegenerate:
				fmt.Printf("%s: zone %s too small for edge margin\n", d.Kind, d.ZoneID)
			case placement.DiagZoneUnknown:
				fmt.Printf("%s: dungeon %s references missing zone %s\n", d.Kind, d.DungeonID, d.ZoneID)
			default:
				fmt.Printf("%s: %s moved (%.1f, %.1f) -> (%.1f, %.1f)\n",
					d.Kind, d.DungeonID, d.From.X, d.From.Y, d.To.X, d.To.Y)
			}
		}
	}

	slog.Info("validation complete", "diagnostics", len(diags))
	if strict && len(diags) > 0 {
		return fmt.Errorf("%d placement diagnostics", len(diags))
	}
	return nil
}

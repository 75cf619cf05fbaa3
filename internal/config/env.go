package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides on top of cfg.
// Unset or unparsable variables leave the value alone.
func FromEnv(cfg *Config) *Config {
	if v, ok := getEnvFloat("DUNGEON_EDGE_MARGIN"); ok && v > 0 {
		cfg.Placement.EdgeMargin = v
	}
	if v, ok := getEnvFloat("DUNGEON_MIN_SEPARATION"); ok && v > 0 {
		cfg.Placement.MinSeparation = v
	}
	if v, ok := getEnvInt("DUNGEON_MAX_ITERATIONS"); ok && v > 0 {
		cfg.Placement.MaxIterations = v
	}
	if v, ok := getEnvFloat("DUNGEON_INTERACTION_RADIUS"); ok && v > 0 {
		cfg.Interaction.Radius = v
	}
	if v, ok := getEnvFloat("DUNGEON_CLOSE_FRACTION"); ok && v > 0 {
		cfg.Interaction.CloseFraction = v
	}
	if v, ok := getEnvFloat("DUNGEON_NEAR_FRACTION"); ok && v > 0 {
		cfg.Interaction.NearFraction = v
	}
	if v, ok := getEnvFloat("DUNGEON_CULL_RADIUS"); ok && v > 0 {
		cfg.Culling.Radius = v
	}
	if v, ok := getEnvFloat("DUNGEON_MOVE_THRESHOLD"); ok && v > 0 {
		cfg.Scheduler.MoveThreshold = v
	}
	if v, ok := getEnvInt("DUNGEON_MAX_INTERVAL_MS"); ok && v > 0 {
		cfg.Scheduler.MaxIntervalMS = v
	}
	return cfg
}

func getEnvInt(key string) (int, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return num, true
}

func getEnvFloat(key string) (float64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

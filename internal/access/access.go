// Package access decides dungeon eligibility from a progression snapshot.
package access

import "dungeonmap/internal/model"

// Evaluate reports whether the snapshot satisfies every requirement
// dimension that is present. Absent dimensions never constrain; badge
// requirements are a subset test. Pure and total: malformed data (negative
// thresholds, empty badge lists) counts as "no constraint" rather than an
// error, so a content mistake can never lock the world.
func Evaluate(req model.EntryRequirements, prog model.ProgressionSnapshot) bool {
	if req.TrustScore != nil && *req.TrustScore > 0 && prog.TrustScore < *req.TrustScore {
		return false
	}
	if req.Level != nil && *req.Level > 0 && prog.Level < *req.Level {
		return false
	}
	for _, badge := range req.Badges {
		if !prog.HasBadge(badge) {
			return false
		}
	}
	return true
}

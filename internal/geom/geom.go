package geom

import "math"

// Point is a position on the world map. Value type, never mutated.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Bounds is an axis-aligned rectangle. Zones own one each; bounds are
// authored data and never change after world load.
type Bounds struct {
	MinX float64 `yaml:"min_x" json:"min_x"`
	MinY float64 `yaml:"min_y" json:"min_y"`
	MaxX float64 `yaml:"max_x" json:"max_x"`
	MaxY float64 `yaml:"max_y" json:"max_y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// WithinRadius reports whether b lies within radius of a (inclusive).
func WithinRadius(a, b Point, radius float64) bool {
	return Distance(a, b) <= radius
}

// Contains reports whether p lies inside b shrunk by margin on every side.
func (b Bounds) Contains(p Point, margin float64) bool {
	return p.X >= b.MinX+margin && p.X <= b.MaxX-margin &&
		p.Y >= b.MinY+margin && p.Y <= b.MaxY-margin
}

// FitsMargin reports whether both axes leave room for the margin on each
// side. A false result means ClampToBounds will fall back to the midpoint;
// callers treat that as an authoring defect worth a diagnostic.
func (b Bounds) FitsMargin(margin float64) bool {
	return b.MaxX-margin >= b.MinX+margin && b.MaxY-margin >= b.MinY+margin
}

// ClampToBounds clamps p into b shrunk by margin. An axis too small for the
// margin clamps to that axis midpoint instead of producing an inverted range.
func ClampToBounds(p Point, b Bounds, margin float64) Point {
	return Point{
		X: clampAxis(p.X, b.MinX, b.MaxX, margin),
		Y: clampAxis(p.Y, b.MinY, b.MaxY, margin),
	}
}

func clampAxis(v, lo, hi, margin float64) float64 {
	min := lo + margin
	max := hi - margin
	if max < min {
		return (lo + hi) / 2
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

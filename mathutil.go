package hapticharts

import "math"

// epsilon guards denominators in layout math.
const epsilon = 1e-9

const fullTurn = 2 * math.Pi

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// safeDiv returns a/b, treating |b| < epsilon as epsilon.
func safeDiv(a, b float64) float64 {
	if math.Abs(b) < epsilon {
		if b < 0 {
			return a / -epsilon
		}
		return a / epsilon
	}
	return a / b
}

// sanitize replaces negative, NaN and infinite values with zero.
func sanitize(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v > 0 && !math.IsInf(v, 1) {
			out[i] = v
		}
	}
	return out
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func maxOf(values []float64) float64 {
	var m float64
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// normalizeAngle maps a to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}

// angleInRange reports whether a falls in the half-open arc [start, end),
// walking clockwise (increasing angle) from start. Arcs may wrap through 0.
// A span of a full turn or more contains every angle.
func angleInRange(a, start, end float64) bool {
	span := end - start
	if span <= 0 {
		return false
	}
	if span >= fullTurn {
		return true
	}
	d := normalizeAngle(a - start)
	return d < span
}

// polar returns the point at angle a and distance r from c.
func polar(c Vec2, a, r float64) Vec2 {
	return Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Knob ranges. Every Chart clamps its knobs into these before laying out.
const (
	maxKnob       = 1e9
	maxPadding    = 200
	maxGap        = 100
	maxPieGap     = 30 // degrees
	maxSeparation = 60
	maxDonutRatio = 0.95
	minEdgeBand   = 0.5
	maxEdgeBand   = 60
)

func countPositive(values []float64) int {
	var n int
	for _, v := range values {
		if v > 0 {
			n++
		}
	}
	return n
}

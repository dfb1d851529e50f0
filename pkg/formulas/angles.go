// Package formulas provides the numeric helpers shared by the chart builder,
// the astrological context and the strength engine.
package formulas

import "math"

// NormalizeDegrees folds an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can hand back 360 for tiny negative inputs after the shift
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngularDistance returns the shortest arc between two longitudes, in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ForwardDistance returns how far b lies ahead of a going through the zodiac, in [0, 360).
func ForwardDistance(a, b float64) float64 {
	return NormalizeDegrees(b - a)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

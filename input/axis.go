package input

import "math"

// Position is a pointer coordinate in logical (post-scale) units.
type Position struct {
	X, Y float64
}

// Scaled divides a raw device coordinate by the display scale. Callers must
// pass scale > 0.
func (p Position) Scaled(scale float64) Position {
	return Position{X: p.X / scale, Y: p.Y / scale}
}

func (p Position) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func validScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0)
}

// Axis is a continuous input normalized to [-1, 1].
type Axis struct {
	value float64
}

// Set clamps v into [-1, 1]. NaN is treated as rest.
func (a *Axis) Set(v float64) {
	a.value = clampAxis(v)
}

// Value returns the clamped value.
func (a Axis) Value() float64 {
	return a.value
}

func clampAxis(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// Deadzone zeroes a stick whose magnitude is below dz and rescales the rest
// so the output still spans the full range.
func Deadzone(x, y, dz float64) (float64, float64) {
	if dz <= 0 {
		return x, y
	}
	if dz >= 1 {
		return 0, 0
	}
	mag := math.Hypot(x, y)
	if mag < dz || mag == 0 {
		return 0, 0
	}
	scaled := math.Min(1, (mag-dz)/(1-dz))
	return x / mag * scaled, y / mag * scaled
}
